package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReservationStatus string

const (
	StatusBooked     ReservationStatus = "BOOKED"
	StatusConfirmed  ReservationStatus = "CONFIRMED"
	StatusCheckedIn  ReservationStatus = "CHECKED_IN"
	StatusCheckedOut ReservationStatus = "CHECKED_OUT"
	StatusCompleted  ReservationStatus = "COMPLETED"
	StatusCancelled  ReservationStatus = "CANCELLED"
)

// Statuses lists every reservation status in lifecycle order.
var Statuses = []ReservationStatus{
	StatusBooked,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCompleted,
	StatusCancelled,
}

func (s ReservationStatus) Valid() bool {
	for _, st := range Statuses {
		if st == s {
			return true
		}
	}
	return false
}

type Reservation struct {
	ID                 string            `json:"id"`
	GuestID            string            `json:"guest_id"`
	GuestChatID        *int64            `json:"guest_chat_id"`
	Stay               StayRequest       `json:"stay"`
	Flat               *FlatRate         `json:"flat,omitempty"`
	Status             ReservationStatus `json:"status"`
	DiscountPercent    decimal.Decimal   `json:"discount_percent"`
	PointsRedeemed     int64             `json:"points_redeemed"`
	Total              decimal.Decimal   `json:"total"`
	PointsEarned       int64             `json:"points_earned"`
	FeedbackSubmitted  bool              `json:"feedback_submitted"`
	FeedbackRating     *int              `json:"feedback_rating"`
	FeedbackComment    string            `json:"feedback_comment"`
	FeedbackRemindedAt *time.Time        `json:"feedback_reminded_at"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

type ReservationDetails struct {
	Reservation Reservation     `json:"reservation"`
	Payments    []PaymentEvent  `json:"payments"`
	Paid        decimal.Decimal `json:"paid"`
	Balance     decimal.Decimal `json:"balance"`
}

type CreateReservationInput struct {
	GuestID       string
	GuestChatID   *int64
	Stay          StayRequest
	Discount      *DiscountRequest
	LoyaltyPoints int64
	Flat          *FlatRate
}

type TransitionInput struct {
	Status   ReservationStatus
	Override bool
}

type FeedbackInput struct {
	Rating  int
	Comment string
}
