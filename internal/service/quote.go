package service

import (
	"context"
	"fmt"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/billing"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

type QuoteService struct {
	engine    *billing.Engine
	discounts *billing.DiscountPolicy
	loyalty   domain.LoyaltyConfig
}

func NewQuoteService(engine *billing.Engine, discounts *billing.DiscountPolicy, loyalty domain.LoyaltyConfig) *QuoteService {
	return &QuoteService{
		engine:    engine,
		discounts: discounts,
		loyalty:   loyalty,
	}
}

func (s *QuoteService) loyaltyAccount() *billing.LoyaltyAccount {
	return billing.NewLoyaltyAccount(s.loyalty)
}

func (s *QuoteService) Quote(_ context.Context, in domain.QuoteInput) (*domain.Quote, error) {
	q, _, err := s.quote(in)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// quote validates the requested discount and returns the quote with the
// accepted percent.
func (s *QuoteService) quote(in domain.QuoteInput) (domain.Quote, decimal.Decimal, error) {
	percent := decimal.Zero
	if in.Discount != nil {
		p, err := s.discounts.Validate(*in.Discount)
		if err != nil {
			return domain.Quote{}, decimal.Zero, fmt.Errorf("validate discount: %w", err)
		}
		percent = p
	}

	q, err := s.price(in.Stay, in.Flat, percent, in.LoyaltyPoints)
	if err != nil {
		return domain.Quote{}, decimal.Zero, err
	}
	return q, percent, nil
}

// price runs the pipeline: breakdown, then standard (flat quotes only),
// discount and loyalty steps in that order, then tax.
func (s *QuoteService) price(stay domain.StayRequest, flat *domain.FlatRate, percent decimal.Decimal, points int64) (domain.Quote, error) {
	var (
		breakdown domain.PriceBreakdown
		chain     billing.Chain
		err       error
	)

	if flat != nil {
		breakdown, err = s.engine.PriceFlat(stay)
		if err != nil {
			return domain.Quote{}, fmt.Errorf("price stay: %w", err)
		}
		std, err := billing.StandardStep(s.engine.Config(), flat.Weekend, flat.Peak)
		if err != nil {
			return domain.Quote{}, fmt.Errorf("standard rate: %w", err)
		}
		chain = append(chain, std)
	} else {
		breakdown, err = s.engine.Price(stay)
		if err != nil {
			return domain.Quote{}, fmt.Errorf("price stay: %w", err)
		}
	}

	if !percent.IsZero() {
		chain = append(chain, billing.DiscountStep(percent))
	}

	if points != 0 {
		step, err := billing.LoyaltyStep(points, s.loyalty)
		if err != nil {
			return domain.Quote{}, fmt.Errorf("redeem points: %w", err)
		}
		chain = append(chain, step)
	}

	return billing.Finalize(breakdown, chain, s.engine.Config().TaxRate), nil
}
