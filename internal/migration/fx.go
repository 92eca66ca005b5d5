package migration

import (
	"github.com/bwmarrin/snowflake"
	"github.com/shutoken-mobility/ryokin/internal/config"
	ratecarddomain "github.com/shutoken-mobility/ryokin/internal/ratecard/domain"
	"github.com/shutoken-mobility/ryokin/internal/seed"
	timerulesdomain "github.com/shutoken-mobility/ryokin/internal/timerules/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config, node *snowflake.Node) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// sqlite and mysql are development conveniences, schema
			// versioning only applies to the postgres deployments.
			if err := conn.AutoMigrate(
				&ratecarddomain.RateRow{},
				&timerulesdomain.Rule{},
			); err != nil {
				return err
			}
		}

		if cfg.Environment == "development" {
			return seed.EnsureStarterCatalog(conn, node)
		}
		return nil
	}),
)
