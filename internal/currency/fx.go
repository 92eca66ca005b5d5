package currency

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shutoken-mobility/ryokin/internal/clock"
	"github.com/shutoken-mobility/ryokin/internal/config"
	"github.com/shutoken-mobility/ryokin/internal/currency/provider"
	"github.com/shutoken-mobility/ryokin/internal/currency/service"
	"go.uber.org/fx"
)

// NewProviders builds the live rate chain in fallback order: primary
// first, secondary next. The static table is not a provider, the service
// reaches for it when this chain is exhausted.
func NewProviders(cfg config.Config, clk clock.Clock) []provider.Provider {
	client := &http.Client{Timeout: cfg.Currency.FetchTimeout}
	return []provider.Provider{
		provider.NewExchangeRateHost(client, cfg.Currency.PrimaryURL, clk.Now),
		provider.NewExchangeRateAPI(client, cfg.Currency.SecondaryURL, clk.Now),
	}
}

var Module = fx.Module("currency.service",
	fx.Provide(func() *prometheus.Registry {
		return prometheus.NewRegistry()
	}),
	fx.Provide(func(registry *prometheus.Registry) *service.Metrics {
		return service.NewMetrics(registry)
	}),
	fx.Provide(NewProviders),
	fx.Provide(service.NewService),
)
