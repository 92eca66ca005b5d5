package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"
	currencydomain "github.com/shutoken-mobility/ryokin/internal/currency/domain"
	"go.uber.org/zap"
)

const redisSnapshotPrefix = "ryokin:fx:"

// redisSnapshotCache shares exchange-rate snapshots across instances.
// Cache misses on redis errors; the aggregator's fallback chain absorbs them.
type redisSnapshotCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewRedisSnapshotCache(client *redis.Client, freshness time.Duration, log *zap.Logger) ExchangeSnapshotCache {
	return &redisSnapshotCache{
		client: client,
		ttl:    freshness,
		log:    log.Named("cache.redis"),
	}
}

func (c *redisSnapshotCache) Get(baseCurrency string) (currencydomain.Snapshot, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	raw, err := c.client.Get(ctx, redisSnapshotPrefix+snapshotKey(baseCurrency)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("snapshot read failed", zap.Error(err))
		}
		return currencydomain.Snapshot{}, false
	}

	var snapshot currencydomain.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		c.log.Warn("snapshot decode failed", zap.Error(err))
		return currencydomain.Snapshot{}, false
	}
	return snapshot, true
}

func (c *redisSnapshotCache) Set(baseCurrency string, snapshot currencydomain.Snapshot) {
	if snapshot.BaseCurrency == "" || len(snapshot.Rates) == 0 {
		return
	}

	raw, err := json.Marshal(snapshot)
	if err != nil {
		c.log.Warn("snapshot encode failed", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := c.client.Set(ctx, redisSnapshotPrefix+snapshotKey(baseCurrency), raw, c.ttl).Err(); err != nil {
		c.log.Warn("snapshot write failed", zap.Error(err))
	}
}
