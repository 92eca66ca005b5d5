package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Service resolves the time multiplier a line item carries into the
// quotation calculator. No matching rule means a neutral multiplier of 1.
type Service interface {
	MultiplierAt(ctx context.Context, at time.Time, categoryID, serviceTypeID snowflake.ID) (float64, error)
}
