package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

// Service resolves the daily rate for a vehicle/service pair.
// ErrRateNotFound is fatal to the pricing attempt: callers surface it as
// "pricing unavailable" and never substitute a zero price.
type Service interface {
	ResolveForVehicle(ctx context.Context, vehicleID, serviceTypeID snowflake.ID, targetHours int) (*ResolvedRate, error)
}
