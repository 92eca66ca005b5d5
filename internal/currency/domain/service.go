package domain

import "context"

// Service aggregates exchange rates from live providers with a static
// last-resort table. GetExchangeRates never fails; degraded confidence is
// visible only through the snapshot's Source and FetchedAt.
type Service interface {
	GetExchangeRates(ctx context.Context, baseCurrency string) Snapshot
}
