package billing

import (
	"fmt"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

type StepKind int

const (
	StepStandard StepKind = iota + 1
	StepDiscount
	StepLoyalty
)

func (k StepKind) String() string {
	switch k {
	case StepStandard:
		return "standard"
	case StepDiscount:
		return "discount"
	case StepLoyalty:
		return "loyalty"
	default:
		return fmt.Sprintf("step(%d)", int(k))
	}
}

var hundred = decimal.NewFromInt(100)

// Step is one amount adjustment. Only the fields of its Kind are used.
type Step struct {
	Kind StepKind

	// StepStandard
	Multiplier decimal.Decimal
	// StepDiscount, clamped to [0,100] when applied
	Percent decimal.Decimal
	// StepLoyalty
	Credit decimal.Decimal
}

// StandardStep multiplies the whole amount by a single rate chosen from
// whole-stay weekend and peak flags.
func StandardStep(cfg domain.PricingConfig, weekend, peak bool) (Step, error) {
	if cfg.WeekdayMultiplier.LessThan(domain.MinWeekdayMultiplier) {
		return Step{}, fmt.Errorf("%w: weekday multiplier %s", domain.ErrInvalidMultiplier, cfg.WeekdayMultiplier)
	}
	if cfg.WeekendMultiplier.LessThan(domain.MinWeekendMultiplier) {
		return Step{}, fmt.Errorf("%w: weekend multiplier %s", domain.ErrInvalidMultiplier, cfg.WeekendMultiplier)
	}
	if cfg.PeakMultiplier.LessThan(domain.MinPeakMultiplier) {
		return Step{}, fmt.Errorf("%w: peak multiplier %s", domain.ErrInvalidMultiplier, cfg.PeakMultiplier)
	}

	mult := cfg.WeekdayMultiplier
	if weekend {
		mult = cfg.WeekendMultiplier
	}
	if peak {
		mult = mult.Mul(cfg.PeakMultiplier)
	}
	return Step{Kind: StepStandard, Multiplier: mult}, nil
}

// DiscountStep does not validate percent; run it through DiscountPolicy first.
func DiscountStep(percent decimal.Decimal) Step {
	return Step{Kind: StepDiscount, Percent: percent}
}

func LoyaltyStep(points int64, cfg domain.LoyaltyConfig) (Step, error) {
	credit, err := NewLoyaltyAccount(cfg).RedemptionCredit(points, cfg.RedeemCap)
	if err != nil {
		return Step{}, err
	}
	return Step{Kind: StepLoyalty, Credit: credit}, nil
}

func (s Step) Apply(amount decimal.Decimal) decimal.Decimal {
	switch s.Kind {
	case StepStandard:
		return amount.Mul(s.Multiplier)
	case StepDiscount:
		pct := decimal.Min(decimal.Max(s.Percent, decimal.Zero), hundred)
		factor := decimal.NewFromInt(1).Sub(pct.Div(hundred))
		return decimal.Max(decimal.Zero, amount.Mul(factor))
	case StepLoyalty:
		return decimal.Max(decimal.Zero, amount.Sub(s.Credit))
	default:
		panic(fmt.Sprintf("billing: unknown step kind %d", int(s.Kind)))
	}
}

func (s Step) String() string {
	switch s.Kind {
	case StepStandard:
		return fmt.Sprintf("standard x%s", s.Multiplier)
	case StepDiscount:
		return fmt.Sprintf("discount %s%%", s.Percent)
	case StepLoyalty:
		return fmt.Sprintf("loyalty -%s", s.Credit.StringFixed(moneyPlaces))
	default:
		return s.Kind.String()
	}
}

// Chain applies its steps left to right. Order is significant.
type Chain []Step

func (c Chain) Apply(amount decimal.Decimal) decimal.Decimal {
	for _, s := range c {
		amount = s.Apply(amount)
	}
	return amount
}

func (c Chain) Describe() []string {
	out := make([]string, 0, len(c))
	for _, s := range c {
		out = append(out, s.String())
	}
	return out
}
