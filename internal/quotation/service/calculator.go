package service

import (
	"math"
	"time"

	quotationdomain "github.com/shutoken-mobility/ryokin/internal/quotation/domain"
)

// ComputeTotals produces the itemized breakdown for a quotation. The stage
// order is load-bearing: both discounts are taken on the base total (additive,
// not compounded) and tax applies to the discounted subtotal only. The
// subtotal floor at zero is a business rule, a quotation never shows negative
// money due before tax.
//
// Pure and safe for concurrent use. discountPercentage and taxPercentage are
// accepted un-clamped; upstream validation owns their range.
func ComputeTotals(
	items []quotationdomain.LineItem,
	pkg *quotationdomain.PackageSelection,
	promotion *quotationdomain.PromotionSelection,
	discountPercentage float64,
	taxPercentage float64,
) (quotationdomain.Totals, error) {
	var totals quotationdomain.Totals

	for _, item := range items {
		totals.ServiceBaseTotal += item.BasePrice
		totals.ServiceTotal += item.Total()
	}
	totals.ServiceTimeAdjustment = totals.ServiceTotal - totals.ServiceBaseTotal

	if pkg != nil {
		totals.PackageTotal = pkg.BasePrice
	}
	totals.BaseTotal = totals.ServiceTotal + totals.PackageTotal

	promotionDiscount, err := promotionDiscountFor(promotion, totals.BaseTotal)
	if err != nil {
		return quotationdomain.Totals{}, err
	}
	totals.PromotionDiscount = promotionDiscount
	totals.RegularDiscount = totals.BaseTotal * (discountPercentage / 100)
	totals.TotalDiscount = totals.PromotionDiscount + totals.RegularDiscount

	totals.Subtotal = math.Max(0, totals.BaseTotal-totals.TotalDiscount)
	totals.TaxAmount = totals.Subtotal * (taxPercentage / 100)
	totals.FinalTotal = totals.Subtotal + totals.TaxAmount

	return totals, nil
}

func promotionDiscountFor(promotion *quotationdomain.PromotionSelection, baseTotal float64) (float64, error) {
	if promotion == nil {
		return 0, nil
	}

	switch promotion.DiscountType {
	case quotationdomain.DiscountTypePercentage:
		if promotion.DiscountValue < 0 || promotion.DiscountValue > 100 {
			return 0, quotationdomain.ErrInvalidPromotion
		}
		discount := baseTotal * (promotion.DiscountValue / 100)
		if promotion.MaximumDiscount != nil && discount > *promotion.MaximumDiscount {
			discount = *promotion.MaximumDiscount
		}
		return discount, nil
	case quotationdomain.DiscountTypeFixed:
		if promotion.DiscountValue < 0 {
			return 0, quotationdomain.ErrInvalidPromotion
		}
		// Not capped at the base here; the subtotal floor absorbs the excess.
		return promotion.DiscountValue, nil
	default:
		return 0, quotationdomain.ErrInvalidPromotion
	}
}

// ValidatePromotion checks the redemption constraints an administrator can
// attach to a promotion. Callers run it before ComputeTotals so the user
// sees the precise rejection reason.
func ValidatePromotion(promotion *quotationdomain.PromotionSelection, baseTotal float64, now time.Time) error {
	if promotion == nil {
		return nil
	}
	if !promotion.Active {
		return quotationdomain.ErrPromotionInactive
	}
	if promotion.StartDate != nil && now.Before(*promotion.StartDate) {
		return quotationdomain.ErrPromotionNotStarted
	}
	if promotion.EndDate != nil && now.After(*promotion.EndDate) {
		return quotationdomain.ErrPromotionExpired
	}
	if promotion.UsageLimit != nil && promotion.TimesUsed >= *promotion.UsageLimit {
		return quotationdomain.ErrPromotionUsageExhausted
	}
	if promotion.MinimumAmount != nil && baseTotal < *promotion.MinimumAmount {
		return quotationdomain.ErrPromotionBelowMinimum
	}
	return nil
}
