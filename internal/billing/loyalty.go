package billing

import (
	"fmt"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

type LoyaltyAccount struct {
	cfg domain.LoyaltyConfig
}

func NewLoyaltyAccount(cfg domain.LoyaltyConfig) *LoyaltyAccount {
	return &LoyaltyAccount{cfg: cfg}
}

// Earn returns the points accrued for amountSpent, truncated toward zero.
func (a *LoyaltyAccount) Earn(amountSpent decimal.Decimal) (int64, error) {
	if amountSpent.IsNegative() {
		return 0, fmt.Errorf("%w: spent %s", domain.ErrNegativeAmount, amountSpent)
	}
	return amountSpent.Mul(a.cfg.EarnRate).Floor().IntPart(), nil
}

func (a *LoyaltyAccount) RedemptionCredit(pointsRequested, limit int64) (decimal.Decimal, error) {
	if pointsRequested < 0 {
		return decimal.Zero, fmt.Errorf("%w: requested %d", domain.ErrNegativePoints, pointsRequested)
	}
	if limit < 0 {
		return decimal.Zero, fmt.Errorf("%w: cap %d", domain.ErrNegativePoints, limit)
	}

	points := min(pointsRequested, limit)
	return decimal.NewFromInt(points).Div(decimal.NewFromInt(a.cfg.Rate())), nil
}
