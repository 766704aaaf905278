package billing

import (
	"fmt"
	"time"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger is an append-only view over the payment events of one reservation.
// It is built per call from a snapshot and is not safe for concurrent use.
type Ledger struct {
	reservationID string
	events        []domain.PaymentEvent
}

func NewLedger(reservationID string, events []domain.PaymentEvent) *Ledger {
	cp := make([]domain.PaymentEvent, len(events))
	copy(cp, events)
	return &Ledger{reservationID: reservationID, events: cp}
}

// Record validates and appends a new event. On error the ledger is unchanged.
func (l *Ledger) Record(amount decimal.Decimal, kind domain.PaymentKind, method string, at time.Time) (domain.PaymentEvent, error) {
	if !amount.IsPositive() {
		return domain.PaymentEvent{}, fmt.Errorf("%w: got %s", domain.ErrNonPositiveAmount, amount)
	}
	amount = amount.Round(moneyPlaces)
	if !amount.IsPositive() {
		return domain.PaymentEvent{}, fmt.Errorf("%w: rounds to %s", domain.ErrNonPositiveAmount, amount.StringFixed(moneyPlaces))
	}

	switch kind {
	case domain.PaymentCharge:
	case domain.PaymentRefund:
		if paid := l.TotalPaid(); amount.GreaterThan(paid) {
			return domain.PaymentEvent{}, fmt.Errorf("%w: refund %s, paid %s",
				domain.ErrRefundExceedsPaid, amount.StringFixed(moneyPlaces), paid.StringFixed(moneyPlaces))
		}
	default:
		return domain.PaymentEvent{}, fmt.Errorf("%w: %q", domain.ErrUnknownPaymentKind, kind)
	}

	ev := domain.PaymentEvent{
		ID:            uuid.New().String(),
		ReservationID: l.reservationID,
		Amount:        amount,
		Kind:          kind,
		Method:        method,
		CreatedAt:     at.UTC(),
	}
	l.events = append(l.events, ev)

	return ev, nil
}

func (l *Ledger) Events() []domain.PaymentEvent {
	cp := make([]domain.PaymentEvent, len(l.events))
	copy(cp, l.events)
	return cp
}

func (l *Ledger) TotalPaid() decimal.Decimal {
	return TotalPaid(l.events)
}

func (l *Ledger) Balance(total decimal.Decimal) decimal.Decimal {
	return Balance(total, l.events)
}

// TotalPaid sums charges minus refunds. The result does not depend on event order.
func TotalPaid(events []domain.PaymentEvent) decimal.Decimal {
	sum := decimal.Zero
	for _, ev := range events {
		switch ev.Kind {
		case domain.PaymentCharge:
			sum = sum.Add(ev.Amount)
		case domain.PaymentRefund:
			sum = sum.Sub(ev.Amount)
		}
	}
	return sum.Round(moneyPlaces)
}

// Balance is the outstanding amount, never negative.
func Balance(total decimal.Decimal, events []domain.PaymentEvent) decimal.Decimal {
	return decimal.Max(decimal.Zero, total.Sub(TotalPaid(events))).Round(moneyPlaces)
}
