package service

import (
	"testing"
	"time"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/billing"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

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

func newTestQuoteService(t *testing.T) *QuoteService {
	t.Helper()
	engine, err := billing.NewEngine(domain.PricingConfig{
		WeekdayMultiplier: dec("1"),
		WeekendMultiplier: dec("1.2"),
		PeakMultiplier:    dec("1.5"),
		TaxRate:           dec("0.10"),
		PeakMonths:        map[time.Month]bool{time.July: true},
		AddOnPrices:       map[string]decimal.Decimal{"breakfast": dec("15")},
	})
	require.NoError(t, err)

	return NewQuoteService(
		engine,
		billing.NewDiscountPolicy(nil),
		domain.LoyaltyConfig{EarnRate: dec("1"), RedeemCap: 5000, PointsPerUnit: 100},
	)
}

// tuesdayStay is one weekday night in a non-peak month.
func tuesdayStay(base string) domain.StayRequest {
	return domain.StayRequest{
		Rooms:    []domain.RoomSelection{{RoomType: "double", BasePrice: dec(base), Capacity: 2, Quantity: 1}},
		CheckIn:  day("2025-03-04"),
		CheckOut: day("2025-03-05"),
	}
}

func expectLock(locker *mocks.MockLocker, id string) {
	locker.EXPECT().Acquire(mock.Anything, reservationLockKey(id)).Return("token", nil)
	locker.EXPECT().Release(mock.Anything, reservationLockKey(id), "token").Return(nil)
}

func charge(amount string) domain.PaymentEvent {
	return domain.PaymentEvent{ID: "p-" + amount, ReservationID: "r1", Amount: dec(amount), Kind: domain.PaymentCharge}
}
