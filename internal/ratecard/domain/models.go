package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// RateRow is one priced offering for a (vehicle, service type, duration)
// tuple. Duration tiers are unique within a vehicle/service pair.
type RateRow struct {
	ID            snowflake.ID `json:"id" gorm:"primaryKey"`
	VehicleID     snowflake.ID `json:"vehicle_id" gorm:"column:vehicle_id;not null;uniqueIndex:ux_rate_rows_tier"`
	ServiceTypeID snowflake.ID `json:"service_type_id" gorm:"column:service_type_id;not null;uniqueIndex:ux_rate_rows_tier"`
	DurationHours int          `json:"duration_hours" gorm:"column:duration_hours;not null;uniqueIndex:ux_rate_rows_tier"`
	Price         float64      `json:"price" gorm:"type:numeric;not null"`
	Currency      string       `json:"currency" gorm:"type:text;not null;default:'JPY'"`
	CategoryName  string       `json:"category_name" gorm:"type:text"`
	Active        bool         `json:"is_active" gorm:"column:is_active;not null;default:true"`
	CreatedAt     time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (RateRow) TableName() string { return "rate_rows" }

// ResolvedRate is the outcome of a tier lookup. Extrapolated marks a price
// synthesized by scaling the largest tier rather than read from the catalog;
// for that path DurationHours carries the requested duration.
type ResolvedRate struct {
	RateRow
	Extrapolated bool `json:"extrapolated"`
}
