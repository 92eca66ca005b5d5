package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
)

type Repository interface {
	Insert(ctx context.Context, row *RateRow) error
	ListActive(ctx context.Context, vehicleID, serviceTypeID snowflake.ID) ([]RateRow, error)
}
