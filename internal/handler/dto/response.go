package dto

import (
	"time"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/lifecycle"
	"github.com/shopspring/decimal"
)

type QuoteResponse struct {
	Nights        int      `json:"nights"`
	RoomSubtotal  string   `json:"room_subtotal"`
	AddOnSubtotal string   `json:"add_on_subtotal"`
	Subtotal      string   `json:"subtotal"`
	Adjusted      string   `json:"adjusted"`
	Tax           string   `json:"tax"`
	Total         string   `json:"total"`
	Applied       []string `json:"applied"`
	SkippedAddOns []string `json:"skipped_add_ons,omitempty"`
}

type RoomResponse struct {
	RoomType  string `json:"room_type"`
	BasePrice string `json:"base_price"`
	Capacity  int    `json:"capacity"`
	Quantity  int    `json:"quantity"`
}

type AddOnResponse struct {
	Name      string  `json:"name"`
	UnitPrice *string `json:"unit_price,omitempty"`
	PerNight  bool    `json:"per_night"`
}

type StayResponse struct {
	Rooms    []RoomResponse  `json:"rooms"`
	AddOns   []AddOnResponse `json:"add_ons"`
	CheckIn  string          `json:"check_in"`
	CheckOut string          `json:"check_out"`
}

type ReservationResponse struct {
	ID                string           `json:"id"`
	GuestID           string           `json:"guest_id"`
	Stay              StayResponse     `json:"stay"`
	Flat              *FlatRateRequest `json:"flat,omitempty"`
	Status            string           `json:"status"`
	NextStatuses      []string         `json:"next_statuses"`
	DiscountPercent   string           `json:"discount_percent"`
	PointsRedeemed    int64            `json:"points_redeemed"`
	Total             string           `json:"total"`
	PointsEarned      int64            `json:"points_earned"`
	FeedbackSubmitted bool             `json:"feedback_submitted"`
	FeedbackRating    *int             `json:"feedback_rating,omitempty"`
	CreatedAt         string           `json:"created_at"`
	UpdatedAt         string           `json:"updated_at"`
}

type ReservationDetailsResponse struct {
	Reservation ReservationResponse `json:"reservation"`
	Payments    []PaymentResponse   `json:"payments"`
	Paid        string              `json:"paid"`
	Balance     string              `json:"balance"`
}

type PaymentResponse struct {
	ID            string `json:"id"`
	ReservationID string `json:"reservation_id"`
	Amount        string `json:"amount"`
	Kind          string `json:"kind"`
	Method        string `json:"method,omitempty"`
	CreatedAt     string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	applied := q.Applied
	if applied == nil {
		applied = []string{}
	}
	return QuoteResponse{
		Nights:        q.Breakdown.Nights,
		RoomSubtotal:  money(q.Breakdown.RoomSubtotal),
		AddOnSubtotal: money(q.Breakdown.AddOnSubtotal),
		Subtotal:      money(q.Breakdown.Subtotal),
		Adjusted:      money(q.Adjusted),
		Tax:           money(q.Tax),
		Total:         money(q.Total),
		Applied:       applied,
		SkippedAddOns: q.Breakdown.SkippedAddOns,
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	next := lifecycle.Next(r.Status)
	nextStatuses := make([]string, 0, len(next))
	for _, s := range next {
		nextStatuses = append(nextStatuses, string(s))
	}

	var flat *FlatRateRequest
	if r.Flat != nil {
		flat = &FlatRateRequest{Weekend: r.Flat.Weekend, Peak: r.Flat.Peak}
	}

	return ReservationResponse{
		ID:                r.ID,
		GuestID:           r.GuestID,
		Stay:              toStayResponse(r.Stay),
		Flat:              flat,
		Status:            string(r.Status),
		NextStatuses:      nextStatuses,
		DiscountPercent:   money(r.DiscountPercent),
		PointsRedeemed:    r.PointsRedeemed,
		Total:             money(r.Total),
		PointsEarned:      r.PointsEarned,
		FeedbackSubmitted: r.FeedbackSubmitted,
		FeedbackRating:    r.FeedbackRating,
		CreatedAt:         r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToReservationDetailsResponse(d *domain.ReservationDetails) ReservationDetailsResponse {
	return ReservationDetailsResponse{
		Reservation: ToReservationResponse(&d.Reservation),
		Payments:    ToPaymentResponses(d.Payments),
		Paid:        money(d.Paid),
		Balance:     money(d.Balance),
	}
}

func ToPaymentResponse(p *domain.PaymentEvent) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		ReservationID: p.ReservationID,
		Amount:        money(p.Amount),
		Kind:          string(p.Kind),
		Method:        p.Method,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

func ToPaymentResponses(events []domain.PaymentEvent) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(events))
	for i := range events {
		out = append(out, ToPaymentResponse(&events[i]))
	}
	return out
}

func toStayResponse(s domain.StayRequest) StayResponse {
	rooms := make([]RoomResponse, 0, len(s.Rooms))
	for _, r := range s.Rooms {
		rooms = append(rooms, RoomResponse{
			RoomType:  r.RoomType,
			BasePrice: money(r.BasePrice),
			Capacity:  r.Capacity,
			Quantity:  r.Quantity,
		})
	}

	addOns := make([]AddOnResponse, 0, len(s.AddOns))
	for _, a := range s.AddOns {
		resp := AddOnResponse{Name: a.Name, PerNight: a.PerNight}
		if a.UnitPrice.Valid {
			price := money(a.UnitPrice.Decimal)
			resp.UnitPrice = &price
		}
		addOns = append(addOns, resp)
	}

	return StayResponse{
		Rooms:    rooms,
		AddOns:   addOns,
		CheckIn:  s.CheckIn.Format(DateLayout),
		CheckOut: s.CheckOut.Format(DateLayout),
	}
}
