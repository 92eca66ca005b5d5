package domain

import "errors"

var (
	ErrInvalidPromotion        = errors.New("invalid_promotion")
	ErrPromotionInactive       = errors.New("promotion_inactive")
	ErrPromotionNotStarted     = errors.New("promotion_not_started")
	ErrPromotionExpired        = errors.New("promotion_expired")
	ErrPromotionUsageExhausted = errors.New("promotion_usage_exhausted")
	ErrPromotionBelowMinimum   = errors.New("promotion_below_minimum_amount")
)
