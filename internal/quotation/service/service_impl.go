package service

import (
	"context"

	"github.com/shutoken-mobility/ryokin/internal/clock"
	"github.com/shutoken-mobility/ryokin/internal/config"
	quotationdomain "github.com/shutoken-mobility/ryokin/internal/quotation/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Service struct {
	log     *zap.Logger
	clock   clock.Clock
	pricing *config.PricingConfigHolder
}

type ServiceParam struct {
	fx.In

	Log     *zap.Logger
	Clock   clock.Clock
	Pricing *config.PricingConfigHolder
}

func NewService(p ServiceParam) quotationdomain.Service {
	return &Service{
		log:     p.Log.Named("quotation.service"),
		clock:   p.Clock,
		pricing: p.Pricing,
	}
}

// Quote validates the promotion, fills unset percentages from the pricing
// defaults, and computes the breakdown. Violated promotion constraints fail
// loudly; this path never swallows an error into a wrong price.
func (s *Service) Quote(ctx context.Context, req quotationdomain.QuoteRequest) (*quotationdomain.Totals, error) {
	_ = ctx
	defaults := s.pricing.Get()

	discountPct := defaults.DefaultDiscountPercentage
	if req.DiscountPercentage != nil {
		discountPct = *req.DiscountPercentage
	}
	taxPct := defaults.DefaultTaxPercentage
	if req.TaxPercentage != nil {
		taxPct = *req.TaxPercentage
	}

	if req.Promotion != nil {
		base := baseTotalOf(req.Items, req.Package)
		if err := ValidatePromotion(req.Promotion, base, s.clock.Now()); err != nil {
			s.log.Warn("promotion rejected",
				zap.String("code", req.Promotion.Code),
				zap.Error(err),
			)
			return nil, err
		}
	}

	totals, err := ComputeTotals(req.Items, req.Package, req.Promotion, discountPct, taxPct)
	if err != nil {
		return nil, err
	}

	if totals.Zero() {
		s.log.Info("quotation computed with nothing to charge")
	}
	return &totals, nil
}

func baseTotalOf(items []quotationdomain.LineItem, pkg *quotationdomain.PackageSelection) float64 {
	var base float64
	for _, item := range items {
		base += item.Total()
	}
	if pkg != nil {
		base += pkg.BasePrice
	}
	return base
}
