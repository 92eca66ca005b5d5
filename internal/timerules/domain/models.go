package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Rule is an administrator-configured pickup-time premium (night hours,
// weekends, holidays). Zero CategoryID/ServiceTypeID act as wildcards;
// a StartTime later than EndTime wraps past midnight.
type Rule struct {
	ID                   snowflake.ID `json:"id" gorm:"primaryKey"`
	Name                 string       `json:"name" gorm:"type:text;not null"`
	CategoryID           snowflake.ID `json:"category_id" gorm:"column:category_id;index"`
	ServiceTypeID        snowflake.ID `json:"service_type_id" gorm:"column:service_type_id;index"`
	DaysOfWeek           DayList      `json:"days_of_week" gorm:"column:days_of_week;type:text"`
	StartTime            string       `json:"start_time" gorm:"type:text"`
	EndTime              string       `json:"end_time" gorm:"type:text"`
	AdjustmentPercentage float64      `json:"adjustment_percentage" gorm:"not null"`
	Priority             int          `json:"priority" gorm:"not null;default:0"`
	Active               bool         `json:"is_active" gorm:"column:is_active;not null;default:true"`
	CreatedAt            time.Time    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt            time.Time    `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Rule) TableName() string { return "time_based_rules" }
