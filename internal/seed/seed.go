package seed

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	ratecarddomain "github.com/shutoken-mobility/ryokin/internal/ratecard/domain"
	timerulesdomain "github.com/shutoken-mobility/ryokin/internal/timerules/domain"
	"gorm.io/gorm"
)

// EnsureStarterCatalog seeds a demo rate catalog and night premium rule so
// a fresh development install can produce quotes immediately. Existing
// rows are left untouched.
func EnsureStarterCatalog(db *gorm.DB, node *snowflake.Node) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}
	if node == nil {
		return errors.New("seed snowflake node is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureRateRowsTx(ctx, tx, node); err != nil {
			return err
		}
		return ensureNightRuleTx(ctx, tx, node)
	})
}

func ensureRateRowsTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&ratecarddomain.RateRow{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	vehicleID := node.Generate()
	serviceTypeID := node.Generate()

	tiers := []struct {
		hours int
		price float64
	}{
		{4, 24000},
		{8, 40000},
		{12, 54000},
	}

	for _, tier := range tiers {
		row := ratecarddomain.RateRow{
			ID:            node.Generate(),
			VehicleID:     vehicleID,
			ServiceTypeID: serviceTypeID,
			DurationHours: tier.hours,
			Price:         tier.price,
			Currency:      "JPY",
			CategoryName:  "Standard",
			Active:        true,
		}
		if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureNightRuleTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&timerulesdomain.Rule{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rule := timerulesdomain.Rule{
		ID:                   node.Generate(),
		Name:                 "Night premium",
		StartTime:            "22:00",
		EndTime:              "06:00",
		AdjustmentPercentage: 20,
		Priority:             10,
		Active:               true,
	}
	return tx.WithContext(ctx).Create(&rule).Error
}
