package domain

import "time"

// LineItem is one billable unit inside a quotation. Monetary fields are
// parsed to float64 at the boundary; the calculator never re-parses.
type LineItem struct {
	ServiceLabel   string  `json:"service_label"`
	BasePrice      float64 `json:"base_price"`
	DurationHours  int     `json:"duration_hours"`
	TimeMultiplier float64 `json:"time_multiplier"`
}

// NewLineItem applies the intake defaults: duration at least one hour,
// multiplier one when unset.
func NewLineItem(label string, basePrice float64, durationHours int, timeMultiplier float64) LineItem {
	if durationHours < 1 {
		durationHours = 1
	}
	if timeMultiplier == 0 {
		timeMultiplier = 1
	}
	return LineItem{
		ServiceLabel:   label,
		BasePrice:      basePrice,
		DurationHours:  durationHours,
		TimeMultiplier: timeMultiplier,
	}
}

// Total is the line's contribution to the service total.
func (i LineItem) Total() float64 {
	return i.BasePrice * float64(i.DurationHours) * i.TimeMultiplier
}

// PackageItem is informational only; a package contributes its base price
// as a single amount regardless of its contents.
type PackageItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

type PackageSelection struct {
	Name      string        `json:"name"`
	BasePrice float64       `json:"base_price"`
	Items     []PackageItem `json:"items,omitempty"`
}

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

type PromotionSelection struct {
	Code          string       `json:"code"`
	Name          string       `json:"name"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue float64      `json:"discount_value"`

	// Optional redemption constraints checked by ValidatePromotion.
	MaximumDiscount *float64   `json:"maximum_discount,omitempty"`
	MinimumAmount   *float64   `json:"minimum_amount,omitempty"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
	UsageLimit      *int       `json:"usage_limit,omitempty"`
	TimesUsed       int        `json:"times_used"`
	Active          bool       `json:"is_active"`
}

// Totals is the full itemized breakdown. Every figure an invoice renders
// comes from here; it is recomputed from its inputs, never persisted as
// the source of truth.
type Totals struct {
	ServiceBaseTotal      float64 `json:"service_base_total"`
	ServiceTimeAdjustment float64 `json:"service_time_adjustment"`
	ServiceTotal          float64 `json:"service_total"`
	PackageTotal          float64 `json:"package_total"`
	BaseTotal             float64 `json:"base_total"`
	PromotionDiscount     float64 `json:"promotion_discount"`
	RegularDiscount       float64 `json:"regular_discount"`
	TotalDiscount         float64 `json:"total_discount"`
	Subtotal              float64 `json:"subtotal"`
	TaxAmount             float64 `json:"tax_amount"`
	FinalTotal            float64 `json:"final_total"`
}

// Zero reports a nothing-to-charge quotation. Callers must branch on this
// before requesting a payment link; the gateway rejects zero amounts.
func (t Totals) Zero() bool {
	return t.FinalTotal == 0
}
