package billing

import (
	"testing"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Price_WeekdayNight(t *testing.T) {
	cfg := testPricingConfig()
	cfg.WeekdayMultiplier = dec("0.9")
	e := newTestEngine(t, cfg)

	b, err := e.Price(domain.StayRequest{
		Rooms:    []domain.RoomSelection{room("100", 1)},
		AddOns:   []domain.AddOnSelection{{Name: "breakfast", PerNight: true}},
		CheckIn:  day("2025-03-04"), // Tuesday
		CheckOut: day("2025-03-05"),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, b.Nights)
	assertMoney(t, "90.00", b.RoomSubtotal)
	assertMoney(t, "15.00", b.AddOnSubtotal)
	assertMoney(t, "105.00", b.Subtotal)
}

func TestEngine_Price_WeekendNight(t *testing.T) {
	e := newTestEngine(t, testPricingConfig())

	b, err := e.Price(domain.StayRequest{
		Rooms:    []domain.RoomSelection{room("100", 1)},
		CheckIn:  day("2025-03-07"), // Friday
		CheckOut: day("2025-03-08"),
	})

	require.NoError(t, err)
	assertMoney(t, "120.00", b.RoomSubtotal)
}

func TestEngine_Price_PeakWeekendNight(t *testing.T) {
	e := newTestEngine(t, testPricingConfig())

	b, err := e.Price(domain.StayRequest{
		Rooms:    []domain.RoomSelection{room("100", 1)},
		CheckIn:  day("2025-07-04"), // Friday in July
		CheckOut: day("2025-07-05"),
	})

	require.NoError(t, err)
	assertMoney(t, "180.00", b.RoomSubtotal)
}

func TestEngine_Price_MixedNightsAndAddOns(t *testing.T) {
	e := newTestEngine(t, testPricingConfig())

	b, err := e.Price(domain.StayRequest{
		Rooms: []domain.RoomSelection{room("100", 2)},
		AddOns: []domain.AddOnSelection{
			{Name: "breakfast", PerNight: true},
			{Name: "parking"},
		},
		CheckIn:  day("2025-03-06"), // Thu, Fri, Sat nights
		CheckOut: day("2025-03-09"),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, b.Nights)
	assertMoney(t, "680.00", b.RoomSubtotal)
	assertMoney(t, "55.00", b.AddOnSubtotal)
	assertMoney(t, "735.00", b.Subtotal)
}

func TestEngine_Price_PerStayAddOnIgnoresRoomCount(t *testing.T) {
	e := newTestEngine(t, testPricingConfig())

	b, err := e.Price(domain.StayRequest{
		Rooms:    []domain.RoomSelection{room("100", 3), room("80", 1)},
		AddOns:   []domain.AddOnSelection{{Name: "parking"}},
		CheckIn:  day("2025-03-03"),
		CheckOut: day("2025-03-05"),
	})

	require.NoError(t, err)
	assertMoney(t, "10.00", b.AddOnSubtotal)
	assertMoney(t, "760.00", b.RoomSubtotal)
}

func TestEngine_Price_RoundsOnlyAtTheEnd(t *testing.T) {
	e := newTestEngine(t, testPricingConfig())

	b, err := e.Price(domain.StayRequest{
		Rooms:    []domain.RoomSelection{room("33.333", 1)},
		CheckIn:  day("2025-03-03"), // Mon, Tue, Wed
		CheckOut: day("2025-03-06"),
	})

	require.NoError(t, err)
	assertMoney(t, "100.00", b.RoomSubtotal)
}

func TestEngine_Price_ExplicitAddOnPrice(t *testing.T) {
	e := newTestEngine(t, testPricingConfig())

	b, err := e.Price(domain.StayRequest{
		Rooms: []domain.RoomSelection{room("100", 1)},
		AddOns: []domain.AddOnSelection{
			{Name: "breakfast", UnitPrice: decimal.NewNullDecimal(dec("20")), PerNight: true},
			{Name: "spa", UnitPrice: decimal.NewNullDecimal(dec("40"))},
		},
		CheckIn:  day("2025-03-03"),
		CheckOut: day("2025-03-05"),
	})

	require.NoError(t, err)
	assertMoney(t, "80.00", b.AddOnSubtotal)
}

func TestEngine_Price_InvalidDateRange(t *testing.T) {
	e := newTestEngine(t, testPricingConfig())

	tests := []struct {
		name    string
		in, out string
	}{
		{"same day", "2025-03-04", "2025-03-04"},
		{"reversed", "2025-03-05", "2025-03-04"},
		{"longer than a year", "2025-03-04", "2026-03-05"},
		{"centuries", "1700-01-01", "2100-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.Price(domain.StayRequest{
				Rooms:    []domain.RoomSelection{room("100", 1)},
				CheckIn:  day(tt.in),
				CheckOut: day(tt.out),
			})
			assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
		})
	}
}

func TestNights_CountsCalendarDays(t *testing.T) {
	in, nights, err := Nights(day("2025-03-04"), day("2026-03-04"))

	require.NoError(t, err)
	assert.Equal(t, 365, nights)
	assert.True(t, in.Equal(day("2025-03-04")))

	_, nights, err = Nights(day("2024-01-01"), day("2024-12-31"))
	require.NoError(t, err)
	assert.Equal(t, 365, nights)
}

func TestEngine_Price_MaxStay(t *testing.T) {
	e := newTestEngine(t, testPricingConfig())

	b, err := e.Price(domain.StayRequest{
		Rooms:    []domain.RoomSelection{room("1", 1)},
		CheckIn:  day("2025-01-01"),
		CheckOut: day("2026-01-01"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.MaxStayNights, b.Nights)
}

func TestEngine_Price_InvalidQuantity(t *testing.T) {
	e := newTestEngine(t, testPricingConfig())

	_, err := e.Price(domain.StayRequest{
		Rooms:    []domain.RoomSelection{room("100", 0)},
		CheckIn:  day("2025-03-04"),
		CheckOut: day("2025-03-05"),
	})

	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestEngine_Price_NoRooms(t *testing.T) {
	e := newTestEngine(t, testPricingConfig())

	_, err := e.Price(domain.StayRequest{
		CheckIn:  day("2025-03-04"),
		CheckOut: day("2025-03-05"),
	})

	assert.ErrorIs(t, err, domain.ErrNoRooms)
}

func TestEngine_Price_UnknownAddOnRejected(t *testing.T) {
	e := newTestEngine(t, testPricingConfig())

	_, err := e.Price(domain.StayRequest{
		Rooms:    []domain.RoomSelection{room("100", 1)},
		AddOns:   []domain.AddOnSelection{{Name: "helicopter"}},
		CheckIn:  day("2025-03-04"),
		CheckOut: day("2025-03-05"),
	})

	assert.ErrorIs(t, err, domain.ErrUnknownAddOn)
}

func TestEngine_Price_UnknownAddOnSkipped(t *testing.T) {
	cfg := testPricingConfig()
	cfg.UnknownAddOns = domain.UnknownAddOnSkip
	e := newTestEngine(t, cfg)

	b, err := e.Price(domain.StayRequest{
		Rooms:    []domain.RoomSelection{room("100", 1)},
		AddOns:   []domain.AddOnSelection{{Name: "helicopter"}, {Name: "parking"}},
		CheckIn:  day("2025-03-04"),
		CheckOut: day("2025-03-05"),
	})

	require.NoError(t, err)
	assertMoney(t, "10.00", b.AddOnSubtotal)
	assert.Equal(t, []string{"helicopter"}, b.SkippedAddOns)
}

func TestEngine_Price_Idempotent(t *testing.T) {
	e := newTestEngine(t, testPricingConfig())
	stay := domain.StayRequest{
		Rooms:    []domain.RoomSelection{room("149.99", 2)},
		AddOns:   []domain.AddOnSelection{{Name: "breakfast", PerNight: true}},
		CheckIn:  day("2025-07-30"),
		CheckOut: day("2025-08-03"),
	}

	first, err := e.Price(stay)
	require.NoError(t, err)
	second, err := e.Price(stay)
	require.NoError(t, err)

	assert.Equal(t, first.Subtotal.StringFixed(2), second.Subtotal.StringFixed(2))
	assert.Equal(t, first.RoomSubtotal.StringFixed(2), second.RoomSubtotal.StringFixed(2))
	assert.Equal(t, first.AddOnSubtotal.StringFixed(2), second.AddOnSubtotal.StringFixed(2))
	assert.Equal(t, first.Nights, second.Nights)
}

func TestEngine_PriceFlat_IgnoresCalendar(t *testing.T) {
	e := newTestEngine(t, testPricingConfig())

	b, err := e.PriceFlat(domain.StayRequest{
		Rooms:    []domain.RoomSelection{room("100", 1)},
		CheckIn:  day("2025-07-04"),
		CheckOut: day("2025-07-06"),
	})

	require.NoError(t, err)
	assertMoney(t, "200.00", b.RoomSubtotal)
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *domain.PricingConfig)
		want   error
	}{
		{"weekday below 0.5", func(c *domain.PricingConfig) { c.WeekdayMultiplier = dec("0.4") }, domain.ErrInvalidMultiplier},
		{"weekend below 1", func(c *domain.PricingConfig) { c.WeekendMultiplier = dec("0.99") }, domain.ErrInvalidMultiplier},
		{"peak below 1", func(c *domain.PricingConfig) { c.PeakMultiplier = dec("0.5") }, domain.ErrInvalidMultiplier},
		{"tax above 1", func(c *domain.PricingConfig) { c.TaxRate = dec("1.5") }, domain.ErrInvalidTaxRate},
		{"negative tax", func(c *domain.PricingConfig) { c.TaxRate = dec("-0.1") }, domain.ErrInvalidTaxRate},
		{"bad policy", func(c *domain.PricingConfig) { c.UnknownAddOns = "ignore" }, domain.ErrInvalidPricingConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testPricingConfig()
			tt.mutate(&cfg)

			_, err := NewEngine(cfg)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
