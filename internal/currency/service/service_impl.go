package service

import (
	"context"
	"strings"
	"time"

	"github.com/shutoken-mobility/ryokin/internal/cache"
	"github.com/shutoken-mobility/ryokin/internal/clock"
	"github.com/shutoken-mobility/ryokin/internal/config"
	currencydomain "github.com/shutoken-mobility/ryokin/internal/currency/domain"
	"github.com/shutoken-mobility/ryokin/internal/currency/provider"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log       *zap.Logger
	clock     clock.Clock
	cache     cache.ExchangeSnapshotCache
	providers []provider.Provider
	metrics   *Metrics
	timeout   time.Duration
}

type ServiceParam struct {
	fx.In

	Log       *zap.Logger
	Clock     clock.Clock
	Cache     cache.ExchangeSnapshotCache
	Config    config.Config
	Providers []provider.Provider
	Metrics   *Metrics
}

func NewService(p ServiceParam) currencydomain.Service {
	return &Service{
		log:       p.Log.Named("currency.service"),
		clock:     p.Clock,
		cache:     p.Cache,
		providers: p.Providers,
		metrics:   p.Metrics,
		timeout:   p.Config.Currency.FetchTimeout,
	}
}

// GetExchangeRates returns the freshest snapshot available for the base
// currency. Providers are tried in order on a cache miss; when every one
// fails the static table is served without being cached, so the next call
// retries the live chain.
func (s *Service) GetExchangeRates(ctx context.Context, baseCurrency string) currencydomain.Snapshot {
	base := strings.ToUpper(strings.TrimSpace(baseCurrency))
	if base == "" {
		base = "JPY"
	}

	if snapshot, ok := s.cache.Get(base); ok {
		s.metrics.cacheHits.Inc()
		return snapshot
	}

	for _, p := range s.providers {
		fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
		snapshot, err := p.Fetch(fetchCtx, base)
		cancel()
		if err != nil {
			s.metrics.providerErrors.WithLabelValues(p.Name()).Inc()
			s.log.Warn("exchange rate provider failed",
				zap.String("provider", p.Name()),
				zap.String("base_currency", base),
				zap.Error(err),
			)
			continue
		}

		s.metrics.providerFetches.WithLabelValues(p.Name()).Inc()
		s.cache.Set(base, snapshot)
		return snapshot
	}

	s.metrics.fallbackServes.Inc()
	s.log.Warn("all exchange rate providers failed, serving static rates",
		zap.String("base_currency", base),
	)
	return fallbackSnapshot(base, s.clock.Now())
}

// fallbackSnapshot re-bases the static JPY-relative table onto the
// requested currency. An unknown base gets the table as-is.
func fallbackSnapshot(base string, now time.Time) currencydomain.Snapshot {
	rates := make(map[string]float64, len(currencydomain.FallbackRates))
	if baseRate, ok := currencydomain.FallbackRates[base]; ok && baseRate > 0 {
		for code, rate := range currencydomain.FallbackRates {
			rates[code] = rate / baseRate
		}
	} else {
		for code, rate := range currencydomain.FallbackRates {
			rates[code] = rate
		}
	}

	return currencydomain.Snapshot{
		BaseCurrency: base,
		Rates:        rates,
		FetchedAt:    now,
		Source:       currencydomain.FallbackSource,
	}
}
