package domain

import "context"

// QuoteRequest is a fully-typed quotation input. Loosely-shaped records
// from the datastore are mapped into this before any arithmetic runs;
// nil percentages take the configured business defaults.
type QuoteRequest struct {
	Items              []LineItem
	Package            *PackageSelection
	Promotion          *PromotionSelection
	DiscountPercentage *float64
	TaxPercentage      *float64
}

type Service interface {
	Quote(ctx context.Context, req QuoteRequest) (*Totals, error)
}
