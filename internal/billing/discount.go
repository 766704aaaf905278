package billing

import (
	"fmt"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

const percentPlaces = 2

// DefaultDiscountCaps are the maximum percentages each role may grant.
var DefaultDiscountCaps = map[domain.Role]decimal.Decimal{
	domain.RoleStaff:   decimal.NewFromInt(15),
	domain.RoleManager: decimal.NewFromInt(30),
}

type DiscountPolicy struct {
	caps map[domain.Role]decimal.Decimal
}

// NewDiscountPolicy copies caps; a nil map means DefaultDiscountCaps.
func NewDiscountPolicy(caps map[domain.Role]decimal.Decimal) *DiscountPolicy {
	if caps == nil {
		caps = DefaultDiscountCaps
	}
	cp := make(map[domain.Role]decimal.Decimal, len(caps))
	for role, c := range caps {
		cp[role] = c
	}
	return &DiscountPolicy{caps: cp}
}

func (p *DiscountPolicy) Validate(req domain.DiscountRequest) (decimal.Decimal, error) {
	if req.Percent.IsNegative() || req.Percent.GreaterThan(hundred) {
		return decimal.Zero, fmt.Errorf("%w: got %s", domain.ErrPercentOutOfRange, req.Percent)
	}
	// The percent is stored as NUMERIC(5,2) and re-applied on recalculation.
	if !req.Percent.Equal(req.Percent.Round(percentPlaces)) {
		return decimal.Zero, fmt.Errorf("%w: got %s", domain.ErrPercentPrecision, req.Percent)
	}

	limit, ok := p.caps[req.Role]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrUnknownRole, req.Role)
	}
	if req.Percent.GreaterThan(limit) {
		return decimal.Zero, fmt.Errorf("%w: %s may grant at most %s%%, requested %s%%",
			domain.ErrRoleLimitExceeded, req.Role, limit, req.Percent)
	}

	return req.Percent, nil
}

func (p *DiscountPolicy) Cap(role domain.Role) (decimal.Decimal, bool) {
	c, ok := p.caps[role]
	return c, ok
}
