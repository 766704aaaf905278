package domain

import "time"

type BillingEventType string

const (
	EventPaymentRecorded         BillingEventType = "payment.recorded"
	EventReservationTransitioned BillingEventType = "reservation.transitioned"
)

// BillingEvent is published to downstream consumers after a change has been persisted.
type BillingEvent struct {
	ID            string            `json:"id"`
	Type          BillingEventType  `json:"type"`
	ReservationID string            `json:"reservation_id"`
	Status        ReservationStatus `json:"status,omitempty"`
	Payment       *PaymentEvent     `json:"payment,omitempty"`
	OccurredAt    time.Time         `json:"occurred_at"`
}
