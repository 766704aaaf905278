package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type UnknownAddOnPolicy string

const (
	UnknownAddOnReject UnknownAddOnPolicy = "reject"
	UnknownAddOnSkip   UnknownAddOnPolicy = "skip"
)

var (
	MinWeekdayMultiplier = decimal.RequireFromString("0.5")
	MinWeekendMultiplier = decimal.NewFromInt(1)
	MinPeakMultiplier    = decimal.NewFromInt(1)
)

type PricingConfig struct {
	WeekdayMultiplier decimal.Decimal
	WeekendMultiplier decimal.Decimal
	PeakMultiplier    decimal.Decimal
	TaxRate           decimal.Decimal
	PeakMonths        map[time.Month]bool
	AddOnPrices       map[string]decimal.Decimal
	UnknownAddOns     UnknownAddOnPolicy
}

func (c PricingConfig) Validate() error {
	if c.WeekdayMultiplier.LessThan(MinWeekdayMultiplier) {
		return fmt.Errorf("%w: weekday multiplier %s is below %s",
			ErrInvalidMultiplier, c.WeekdayMultiplier, MinWeekdayMultiplier)
	}
	if c.WeekendMultiplier.LessThan(MinWeekendMultiplier) {
		return fmt.Errorf("%w: weekend multiplier %s is below %s",
			ErrInvalidMultiplier, c.WeekendMultiplier, MinWeekendMultiplier)
	}
	if c.PeakMultiplier.LessThan(MinPeakMultiplier) {
		return fmt.Errorf("%w: peak multiplier %s is below %s",
			ErrInvalidMultiplier, c.PeakMultiplier, MinPeakMultiplier)
	}
	if c.TaxRate.IsNegative() || c.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%w: %s", ErrInvalidTaxRate, c.TaxRate)
	}
	for name, price := range c.AddOnPrices {
		if price.IsNegative() {
			return fmt.Errorf("%w: add-on %q has negative price", ErrInvalidPricingConfig, name)
		}
	}
	switch c.UnknownAddOns {
	case "", UnknownAddOnReject, UnknownAddOnSkip:
	default:
		return fmt.Errorf("%w: unknown add-on policy %q", ErrInvalidPricingConfig, c.UnknownAddOns)
	}
	return nil
}

func (c PricingConfig) IsPeak(m time.Month) bool {
	return c.PeakMonths[m]
}

const DefaultPointsPerUnit = 100

type LoyaltyConfig struct {
	EarnRate      decimal.Decimal
	RedeemCap     int64
	PointsPerUnit int64
}

func (c LoyaltyConfig) Validate() error {
	if c.EarnRate.IsNegative() {
		return fmt.Errorf("%w: negative earn rate", ErrInvalidLoyaltyConfig)
	}
	if c.RedeemCap < 0 {
		return fmt.Errorf("%w: negative redeem cap", ErrInvalidLoyaltyConfig)
	}
	if c.PointsPerUnit < 0 {
		return fmt.Errorf("%w: negative points per unit", ErrInvalidLoyaltyConfig)
	}
	return nil
}

// Rate returns the points-per-currency-unit conversion, falling back to
// DefaultPointsPerUnit when unset.
func (c LoyaltyConfig) Rate() int64 {
	if c.PointsPerUnit <= 0 {
		return DefaultPointsPerUnit
	}
	return c.PointsPerUnit
}
