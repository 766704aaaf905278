package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentKind string

const (
	PaymentCharge PaymentKind = "CHARGE"
	PaymentRefund PaymentKind = "REFUND"
)

type PaymentEvent struct {
	ID            string          `json:"id"`
	ReservationID string          `json:"reservation_id"`
	Amount        decimal.Decimal `json:"amount"`
	Kind          PaymentKind     `json:"kind"`
	Method        string          `json:"method"`
	CreatedAt     time.Time       `json:"created_at"`
}

type RecordPaymentInput struct {
	Amount decimal.Decimal
	Kind   PaymentKind
	Method string
}
