package main

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/shutoken-mobility/ryokin/internal/cache"
	"github.com/shutoken-mobility/ryokin/internal/clock"
	"github.com/shutoken-mobility/ryokin/internal/config"
	"github.com/shutoken-mobility/ryokin/internal/currency"
	currencydomain "github.com/shutoken-mobility/ryokin/internal/currency/domain"
	"github.com/shutoken-mobility/ryokin/internal/logger"
	"github.com/shutoken-mobility/ryokin/internal/migration"
	"github.com/shutoken-mobility/ryokin/internal/quotation"
	"github.com/shutoken-mobility/ryokin/internal/ratecard"
	"github.com/shutoken-mobility/ryokin/internal/timerules"
	"github.com/shutoken-mobility/ryokin/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		// Core Infrastructure
		config.Module,
		logger.Module,
		clock.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		cache.Module,

		// Functional Domains
		ratecard.Module,
		timerules.Module,
		quotation.Module,
		currency.Module,

		migration.Module,
		fx.Invoke(warmExchangeRates),
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

// warmExchangeRates primes the snapshot cache for the configured base
// currency so the first quotation does not pay the fetch latency.
func warmExchangeRates(lc fx.Lifecycle, cfg config.Config, svc currencydomain.Service, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			snapshot := svc.GetExchangeRates(ctx, cfg.Currency.BaseCurrency)
			log.Info("exchange rates warmed",
				zap.String("base_currency", snapshot.BaseCurrency),
				zap.String("source", snapshot.Source),
			)
			return nil
		},
	})
}
