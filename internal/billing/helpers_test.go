package billing

import (
	"testing"
	"time"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2))
}

func testPricingConfig() domain.PricingConfig {
	return domain.PricingConfig{
		WeekdayMultiplier: dec("1.0"),
		WeekendMultiplier: dec("1.2"),
		PeakMultiplier:    dec("1.5"),
		TaxRate:           dec("0.10"),
		PeakMonths:        map[time.Month]bool{time.July: true, time.August: true},
		AddOnPrices: map[string]decimal.Decimal{
			"breakfast": dec("15"),
			"parking":   dec("10"),
		},
	}
}

func newTestEngine(t *testing.T, cfg domain.PricingConfig) *Engine {
	t.Helper()
	e, err := NewEngine(cfg)
	require.NoError(t, err)
	return e
}

func room(base string, qty int) domain.RoomSelection {
	return domain.RoomSelection{RoomType: "double", BasePrice: dec(base), Capacity: 2, Quantity: qty}
}
