package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	ratecarddomain "github.com/shutoken-mobility/ryokin/internal/ratecard/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ratecarddomain.Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, row *ratecarddomain.RateRow) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// ListActive returns the active tiers for one vehicle/service pair,
// ordered ascending so resolution can scan for the first covering tier.
func (r *repository) ListActive(ctx context.Context, vehicleID, serviceTypeID snowflake.ID) ([]ratecarddomain.RateRow, error) {
	var rows []ratecarddomain.RateRow
	err := r.db.WithContext(ctx).
		Where("vehicle_id = ? AND service_type_id = ? AND is_active = ?", vehicleID, serviceTypeID, true).
		Order("duration_hours ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
