package billing

import (
	"fmt"
	"time"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	moneyPlaces   = 2
	secondsPerDay = 24 * 60 * 60
)

// Engine prices stays against a fixed, validated PricingConfig.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	cfg domain.PricingConfig
}

func NewEngine(cfg domain.PricingConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("pricing config: %w", err)
	}
	if cfg.UnknownAddOns == "" {
		cfg.UnknownAddOns = domain.UnknownAddOnReject
	}
	return &Engine{cfg: cfg}, nil
}

func (e *Engine) Config() domain.PricingConfig {
	return e.cfg
}

// Price computes the per-night breakdown of a stay. Nights are the
// half-open interval [CheckIn, CheckOut); Friday and Saturday nights use the
// weekend multiplier and nights in a peak month are multiplied again.
func (e *Engine) Price(stay domain.StayRequest) (domain.PriceBreakdown, error) {
	return e.price(stay, true)
}

// PriceFlat returns the breakdown at base prices with no calendar multipliers.
// It is paired with a StandardStep for single-rate quotes.
func (e *Engine) PriceFlat(stay domain.StayRequest) (domain.PriceBreakdown, error) {
	return e.price(stay, false)
}

func (e *Engine) price(stay domain.StayRequest, calendar bool) (domain.PriceBreakdown, error) {
	checkIn, nights, err := Nights(stay.CheckIn, stay.CheckOut)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}
	if len(stay.Rooms) == 0 {
		return domain.PriceBreakdown{}, domain.ErrNoRooms
	}
	for _, r := range stay.Rooms {
		if r.Quantity < 1 {
			return domain.PriceBreakdown{}, fmt.Errorf("%w: room %q has quantity %d",
				domain.ErrInvalidQuantity, r.RoomType, r.Quantity)
		}
		if r.BasePrice.IsNegative() {
			return domain.PriceBreakdown{}, fmt.Errorf("%w: room %q has negative base price",
				domain.ErrValidation, r.RoomType)
		}
	}

	rooms := decimal.Zero
	for i := 0; i < nights; i++ {
		night := checkIn.AddDate(0, 0, i)
		mult := decimal.NewFromInt(1)
		if calendar {
			mult = e.nightMultiplier(night)
		}

		for _, r := range stay.Rooms {
			rooms = rooms.Add(r.BasePrice.Mul(mult).Mul(decimal.NewFromInt(int64(r.Quantity))))
		}
	}

	addOns, skipped, err := e.addOns(stay.AddOns, nights)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}

	// Subtotals are rounded to cents here, before discounts and tax. The final
	// total can differ from a single end rounding by up to 0.01.
	roomSubtotal := rooms.Round(moneyPlaces)
	addOnSubtotal := addOns.Round(moneyPlaces)

	return domain.PriceBreakdown{
		Nights:        nights,
		RoomSubtotal:  roomSubtotal,
		AddOnSubtotal: addOnSubtotal,
		Subtotal:      roomSubtotal.Add(addOnSubtotal),
		SkippedAddOns: skipped,
	}, nil
}

func (e *Engine) nightMultiplier(night time.Time) decimal.Decimal {
	mult := e.cfg.WeekdayMultiplier
	if IsWeekendNight(night) {
		mult = e.cfg.WeekendMultiplier
	}
	if e.cfg.IsPeak(night.Month()) {
		mult = mult.Mul(e.cfg.PeakMultiplier)
	}
	return mult
}

func (e *Engine) addOns(selected []domain.AddOnSelection, nights int) (decimal.Decimal, []string, error) {
	total := decimal.Zero
	var skipped []string

	for _, a := range selected {
		unit, ok := e.addOnPrice(a)
		if !ok {
			if e.cfg.UnknownAddOns == domain.UnknownAddOnSkip {
				skipped = append(skipped, a.Name)
				continue
			}
			return decimal.Zero, nil, fmt.Errorf("%w: %q", domain.ErrUnknownAddOn, a.Name)
		}

		if a.PerNight {
			total = total.Add(unit.Mul(decimal.NewFromInt(int64(nights))))
		} else {
			total = total.Add(unit)
		}
	}

	return total, skipped, nil
}

func (e *Engine) addOnPrice(a domain.AddOnSelection) (decimal.Decimal, bool) {
	if a.UnitPrice.Valid {
		return a.UnitPrice.Decimal, true
	}
	price, ok := e.cfg.AddOnPrices[a.Name]
	return price, ok
}

// Nights normalizes both dates to UTC midnights and returns the check-in
// date together with the number of nights between them.
func Nights(checkIn, checkOut time.Time) (time.Time, int, error) {
	in := dateOf(checkIn)
	out := dateOf(checkOut)

	days := (out.Unix() - in.Unix()) / secondsPerDay
	if days < 1 {
		return time.Time{}, 0, fmt.Errorf("%w: %s to %s",
			domain.ErrInvalidDateRange, in.Format(time.DateOnly), out.Format(time.DateOnly))
	}
	if days > domain.MaxStayNights {
		return time.Time{}, 0, fmt.Errorf("%w: %d nights, at most %d allowed",
			domain.ErrInvalidDateRange, days, domain.MaxStayNights)
	}
	return in, int(days), nil
}

func IsWeekendNight(night time.Time) bool {
	wd := night.Weekday()
	return wd == time.Friday || wd == time.Saturday
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
