package dto

import (
	"fmt"
	"time"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of check-in and check-out dates.
const DateLayout = time.DateOnly

type RoomRequest struct {
	RoomType  string `json:"room_type" binding:"required"`
	BasePrice string `json:"base_price" binding:"required"`
	Capacity  int    `json:"capacity" binding:"gte=0"`
	Quantity  int    `json:"quantity"`
}

type AddOnRequest struct {
	Name      string  `json:"name" binding:"required"`
	UnitPrice *string `json:"unit_price"`
	PerNight  bool    `json:"per_night"`
}

type StayRequest struct {
	Rooms    []RoomRequest  `json:"rooms" binding:"required,min=1,dive"`
	AddOns   []AddOnRequest `json:"add_ons" binding:"dive"`
	CheckIn  string         `json:"check_in" binding:"required"`
	CheckOut string         `json:"check_out" binding:"required"`
}

type DiscountRequest struct {
	Percent string `json:"percent" binding:"required"`
	Role    string `json:"role" binding:"required,oneof=STAFF MANAGER"`
}

type FlatRateRequest struct {
	Weekend bool `json:"weekend"`
	Peak    bool `json:"peak"`
}

type QuoteRequest struct {
	Stay          StayRequest      `json:"stay" binding:"required"`
	Discount      *DiscountRequest `json:"discount"`
	LoyaltyPoints int64            `json:"loyalty_points" binding:"gte=0"`
	Flat          *FlatRateRequest `json:"flat"`
}

type CreateReservationRequest struct {
	GuestID       string           `json:"guest_id" binding:"required"`
	GuestChatID   *int64           `json:"guest_chat_id"`
	Stay          StayRequest      `json:"stay" binding:"required"`
	Discount      *DiscountRequest `json:"discount"`
	LoyaltyPoints int64            `json:"loyalty_points" binding:"gte=0"`
	Flat          *FlatRateRequest `json:"flat"`
}

type RecordPaymentRequest struct {
	Amount string `json:"amount" binding:"required"`
	Kind   string `json:"kind" binding:"required,oneof=CHARGE REFUND"`
	Method string `json:"method"`
}

type TransitionRequest struct {
	Status   string `json:"status" binding:"required"`
	Override bool   `json:"override"`
}

type FeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=2000"`
}

func (r QuoteRequest) ToInput() (domain.QuoteInput, error) {
	stay, err := r.Stay.toDomain()
	if err != nil {
		return domain.QuoteInput{}, err
	}
	discount, err := r.Discount.toDomain()
	if err != nil {
		return domain.QuoteInput{}, err
	}

	return domain.QuoteInput{
		Stay:          stay,
		Discount:      discount,
		LoyaltyPoints: r.LoyaltyPoints,
		Flat:          r.Flat.toDomain(),
	}, nil
}

func (r CreateReservationRequest) ToInput() (domain.CreateReservationInput, error) {
	stay, err := r.Stay.toDomain()
	if err != nil {
		return domain.CreateReservationInput{}, err
	}
	discount, err := r.Discount.toDomain()
	if err != nil {
		return domain.CreateReservationInput{}, err
	}

	return domain.CreateReservationInput{
		GuestID:       r.GuestID,
		GuestChatID:   r.GuestChatID,
		Stay:          stay,
		Discount:      discount,
		LoyaltyPoints: r.LoyaltyPoints,
		Flat:          r.Flat.toDomain(),
	}, nil
}

func (r RecordPaymentRequest) ToInput() (domain.RecordPaymentInput, error) {
	amount, err := parseMoney("amount", r.Amount)
	if err != nil {
		return domain.RecordPaymentInput{}, err
	}
	return domain.RecordPaymentInput{
		Amount: amount,
		Kind:   domain.PaymentKind(r.Kind),
		Method: r.Method,
	}, nil
}

func (r TransitionRequest) ToInput() domain.TransitionInput {
	return domain.TransitionInput{
		Status:   domain.ReservationStatus(r.Status),
		Override: r.Override,
	}
}

func (r FeedbackRequest) ToInput() domain.FeedbackInput {
	return domain.FeedbackInput{Rating: r.Rating, Comment: r.Comment}
}

func (s StayRequest) toDomain() (domain.StayRequest, error) {
	checkIn, err := parseDate("check_in", s.CheckIn)
	if err != nil {
		return domain.StayRequest{}, err
	}
	checkOut, err := parseDate("check_out", s.CheckOut)
	if err != nil {
		return domain.StayRequest{}, err
	}

	rooms := make([]domain.RoomSelection, 0, len(s.Rooms))
	for _, r := range s.Rooms {
		price, err := parseMoney("base_price", r.BasePrice)
		if err != nil {
			return domain.StayRequest{}, err
		}
		rooms = append(rooms, domain.RoomSelection{
			RoomType:  r.RoomType,
			BasePrice: price,
			Capacity:  r.Capacity,
			Quantity:  r.Quantity,
		})
	}

	addOns := make([]domain.AddOnSelection, 0, len(s.AddOns))
	for _, a := range s.AddOns {
		sel := domain.AddOnSelection{Name: a.Name, PerNight: a.PerNight}
		if a.UnitPrice != nil {
			price, err := parseMoney("unit_price", *a.UnitPrice)
			if err != nil {
				return domain.StayRequest{}, err
			}
			sel.UnitPrice = decimal.NewNullDecimal(price)
		}
		addOns = append(addOns, sel)
	}

	return domain.StayRequest{
		Rooms:    rooms,
		AddOns:   addOns,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, nil
}

func (d *DiscountRequest) toDomain() (*domain.DiscountRequest, error) {
	if d == nil {
		return nil, nil
	}
	percent, err := decimal.NewFromString(d.Percent)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid percent %q", domain.ErrValidation, d.Percent)
	}
	return &domain.DiscountRequest{Percent: percent, Role: domain.Role(d.Role)}, nil
}

func (f *FlatRateRequest) toDomain() *domain.FlatRate {
	if f == nil {
		return nil
	}
	return &domain.FlatRate{Weekend: f.Weekend, Peak: f.Peak}
}

func parseDate(field, v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid %s %q, expected YYYY-MM-DD", domain.ErrValidation, field, v)
	}
	return t, nil
}

func parseMoney(field, v string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid %s %q", domain.ErrValidation, field, v)
	}
	return d, nil
}
