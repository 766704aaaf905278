package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxStayNights is the longest stay a single reservation may span.
const MaxStayNights = 365

type RoomSelection struct {
	RoomType  string          `json:"room_type"`
	BasePrice decimal.Decimal `json:"base_price"`
	Capacity  int             `json:"capacity"`
	Quantity  int             `json:"quantity"`
}

// AddOnSelection without a UnitPrice is priced from PricingConfig.AddOnPrices.
type AddOnSelection struct {
	Name      string              `json:"name"`
	UnitPrice decimal.NullDecimal `json:"unit_price"`
	PerNight  bool                `json:"per_night"`
}

type StayRequest struct {
	Rooms    []RoomSelection  `json:"rooms"`
	AddOns   []AddOnSelection `json:"add_ons"`
	CheckIn  time.Time        `json:"check_in"`
	CheckOut time.Time        `json:"check_out"`
}

type PriceBreakdown struct {
	Nights        int             `json:"nights"`
	RoomSubtotal  decimal.Decimal `json:"room_subtotal"`
	AddOnSubtotal decimal.Decimal `json:"add_on_subtotal"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	SkippedAddOns []string        `json:"skipped_add_ons,omitempty"`
}

// FlatRate asks for a single-rate quote: the whole stay is treated as
// weekend and/or peak instead of pricing each night.
type FlatRate struct {
	Weekend bool `json:"weekend"`
	Peak    bool `json:"peak"`
}

type Quote struct {
	Breakdown PriceBreakdown  `json:"breakdown"`
	Adjusted  decimal.Decimal `json:"adjusted"`
	Tax       decimal.Decimal `json:"tax"`
	Total     decimal.Decimal `json:"total"`
	Applied   []string        `json:"applied"`
}

type QuoteInput struct {
	Stay          StayRequest
	Discount      *DiscountRequest
	LoyaltyPoints int64
	Flat          *FlatRate
}
