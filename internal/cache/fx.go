package cache

import (
	redis "github.com/redis/go-redis/v9"
	"github.com/shutoken-mobility/ryokin/internal/clock"
	"github.com/shutoken-mobility/ryokin/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type snapshotCacheParam struct {
	fx.In

	Config config.Config
	Clock  clock.Clock
	Log    *zap.Logger
}

// ProvideSnapshotCache picks redis when configured, in-memory otherwise.
func ProvideSnapshotCache(p snapshotCacheParam) ExchangeSnapshotCache {
	freshness := p.Config.Currency.FreshnessWindow
	if p.Config.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     p.Config.RedisAddr,
			Password: p.Config.RedisPassword,
			DB:       p.Config.RedisDB,
		})
		return NewRedisSnapshotCache(client, freshness, p.Log)
	}
	return NewExchangeSnapshotCache(freshness, p.Clock.Now)
}

var Module = fx.Module("cache",
	fx.Provide(ProvideSnapshotCache),
)
