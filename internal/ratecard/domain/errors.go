package domain

import "errors"

var (
	ErrRateNotFound    = errors.New("rate_not_found")
	ErrInvalidDuration = errors.New("invalid_duration")
	ErrMixedCatalog    = errors.New("mixed_rate_catalog")
)
