package cache

import (
	"strings"
	"time"

	currencydomain "github.com/shutoken-mobility/ryokin/internal/currency/domain"
)

// ExchangeSnapshotCache stores exchange-rate snapshots keyed by base
// currency. A Set replaces the previous snapshot atomically; readers see
// either the old snapshot or the new one.
type ExchangeSnapshotCache interface {
	Get(baseCurrency string) (currencydomain.Snapshot, bool)
	Set(baseCurrency string, snapshot currencydomain.Snapshot)
}

type exchangeSnapshotCache struct {
	snapshots Cache[string, currencydomain.Snapshot]
	ttl       time.Duration
}

// NewExchangeSnapshotCache returns an in-memory snapshot cache whose
// entries expire after the freshness window.
func NewExchangeSnapshotCache(freshness time.Duration, now func() time.Time) ExchangeSnapshotCache {
	return &exchangeSnapshotCache{
		snapshots: NewTTLCacheWithNow[string, currencydomain.Snapshot](now),
		ttl:       freshness,
	}
}

func (c *exchangeSnapshotCache) Get(baseCurrency string) (currencydomain.Snapshot, bool) {
	return c.snapshots.Get(snapshotKey(baseCurrency))
}

func (c *exchangeSnapshotCache) Set(baseCurrency string, snapshot currencydomain.Snapshot) {
	if snapshot.BaseCurrency == "" || len(snapshot.Rates) == 0 {
		return
	}
	c.snapshots.Set(snapshotKey(baseCurrency), snapshot, c.ttl)
}

func snapshotKey(baseCurrency string) string {
	return strings.ToUpper(strings.TrimSpace(baseCurrency))
}
