package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/handler/dto"
	hmocks "github.com/Marcos-Ian/TestFinalProject-sub000/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type services struct {
	quotes       *hmocks.MockQuoteSvc
	reservations *hmocks.MockReservationSvc
	payments     *hmocks.MockPaymentSvc
}

func setupRouter(t *testing.T) (services, http.Handler) {
	t.Helper()
	svc := services{
		quotes:       hmocks.NewMockQuoteSvc(t),
		reservations: hmocks.NewMockReservationSvc(t),
		payments:     hmocks.NewMockPaymentSvc(t),
	}

	h := NewHandler(svc.quotes, svc.reservations, svc.payments)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/quotes", h.Quote)
		api.POST("/reservations", h.CreateReservation)
		api.GET("/reservations/:id", h.GetReservation)
		api.POST("/reservations/:id/transitions", h.TransitionReservation)
		api.POST("/reservations/:id/feedback", h.SubmitFeedback)
		api.POST("/reservations/:id/recalculate", h.RecalculateReservation)
		api.POST("/reservations/:id/payments", h.RecordPayment)
		api.GET("/reservations/:id/payments", h.ListPayments)
	}

	return svc, r
}

func serve(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

const stayJSON = `{"rooms":[{"room_type":"double","base_price":"100","capacity":2,"quantity":1}],
	"add_ons":[{"name":"breakfast","per_night":true}],"check_in":"2025-03-04","check_out":"2025-03-06"}`

func testReservation(id string, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:      id,
		GuestID: "guest-1",
		Stay: domain.StayRequest{
			Rooms:    []domain.RoomSelection{{RoomType: "double", BasePrice: dec("100"), Capacity: 2, Quantity: 1}},
			CheckIn:  time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC),
		},
		Status:    status,
		Total:     dec("220"),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// --- Quotes ---

func TestHandler_Quote_Success(t *testing.T) {
	svc, r := setupRouter(t)

	q := &domain.Quote{
		Breakdown: domain.PriceBreakdown{Nights: 2, RoomSubtotal: dec("200"), AddOnSubtotal: dec("30"), Subtotal: dec("230")},
		Adjusted:  dec("207"),
		Tax:       dec("20.7"),
		Total:     dec("227.7"),
		Applied:   []string{"discount 10%"},
	}
	svc.quotes.EXPECT().Quote(mock.Anything, mock.MatchedBy(func(in domain.QuoteInput) bool {
		return len(in.Stay.Rooms) == 1 &&
			in.Stay.Rooms[0].BasePrice.Equal(dec("100")) &&
			len(in.Stay.AddOns) == 1 && !in.Stay.AddOns[0].UnitPrice.Valid &&
			in.Discount != nil && in.Discount.Role == domain.RoleStaff &&
			in.Stay.CheckIn.Equal(time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC))
	})).Return(q, nil)

	body := []byte(`{"stay":` + stayJSON + `,"discount":{"percent":"10","role":"STAFF"}}`)
	w := serve(r, http.MethodPost, "/api/quotes", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.QuoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Nights)
	assert.Equal(t, "230.00", resp.Subtotal)
	assert.Equal(t, "20.70", resp.Tax)
	assert.Equal(t, "227.70", resp.Total)
	assert.Equal(t, []string{"discount 10%"}, resp.Applied)
}

func TestHandler_Quote_BadRequest(t *testing.T) {
	_, r := setupRouter(t)

	w := serve(r, http.MethodPost, "/api/quotes", []byte(`{"stay":{"rooms":[]}}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Quote_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"stay":{"rooms":[{"room_type":"double","base_price":"100","quantity":1}],
		"check_in":"04.03.2025","check_out":"2025-03-06"}}`)
	w := serve(r, http.MethodPost, "/api/quotes", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Quote_InvalidMoney(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"stay":{"rooms":[{"room_type":"double","base_price":"lots","quantity":1}],
		"check_in":"2025-03-04","check_out":"2025-03-06"}}`)
	w := serve(r, http.MethodPost, "/api/quotes", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Quote_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"date range", domain.ErrInvalidDateRange, http.StatusBadRequest},
		{"role limit", domain.ErrRoleLimitExceeded, http.StatusForbidden},
		{"percent precision", domain.ErrPercentPrecision, http.StatusBadRequest},
		{"unknown add-on", domain.ErrUnknownAddOn, http.StatusUnprocessableEntity},
		{"internal", assert.AnError, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := setupRouter(t)
			svc.quotes.EXPECT().Quote(mock.Anything, mock.Anything).Return(nil, tc.err)

			w := serve(r, http.MethodPost, "/api/quotes", []byte(`{"stay":`+stayJSON+`}`))

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	svc, r := setupRouter(t)

	id := uuid.New().String()
	svc.reservations.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateReservationInput) bool {
		return in.GuestID == "guest-1" && in.LoyaltyPoints == 500 && in.Flat != nil && in.Flat.Weekend
	})).Return(testReservation(id, domain.StatusBooked), nil)

	body := []byte(`{"guest_id":"guest-1","stay":` + stayJSON + `,"loyalty_points":500,"flat":{"weekend":true}}`)
	w := serve(r, http.MethodPost, "/api/reservations", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, id, resp.ID)
	assert.Equal(t, "BOOKED", resp.Status)
	assert.Equal(t, "220.00", resp.Total)
	assert.Equal(t, "2025-03-04", resp.Stay.CheckIn)
	assert.Equal(t, []string{"CONFIRMED", "CANCELLED"}, resp.NextStatuses)
}

func TestHandler_CreateReservation_MissingGuest(t *testing.T) {
	_, r := setupRouter(t)

	w := serve(r, http.MethodPost, "/api/reservations", []byte(`{"stay":`+stayJSON+`}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_UnknownRole(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"guest_id":"guest-1","stay":` + stayJSON + `,"discount":{"percent":"5","role":"INTERN"}}`)
	w := serve(r, http.MethodPost, "/api/reservations", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetReservation_Success(t *testing.T) {
	svc, r := setupRouter(t)

	id := uuid.New().String()
	details := &domain.ReservationDetails{
		Reservation: *testReservation(id, domain.StatusCheckedIn),
		Payments: []domain.PaymentEvent{
			{ID: "p1", ReservationID: id, Amount: dec("170"), Kind: domain.PaymentCharge, CreatedAt: time.Now()},
		},
		Paid:    dec("170"),
		Balance: dec("50"),
	}
	svc.reservations.EXPECT().Get(mock.Anything, id).Return(details, nil)

	w := serve(r, http.MethodGet, "/api/reservations/"+id, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "170.00", resp.Paid)
	assert.Equal(t, "50.00", resp.Balance)
	require.Len(t, resp.Payments, 1)
	assert.Equal(t, "CHARGE", resp.Payments[0].Kind)
}

func TestHandler_GetReservation_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := serve(r, http.MethodGet, "/api/reservations/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetReservation_NotFound(t *testing.T) {
	svc, r := setupRouter(t)

	id := uuid.New().String()
	svc.reservations.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrReservationNotFound)

	w := serve(r, http.MethodGet, "/api/reservations/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_TransitionReservation_Success(t *testing.T) {
	svc, r := setupRouter(t)

	id := uuid.New().String()
	svc.reservations.EXPECT().
		Transition(mock.Anything, id, domain.TransitionInput{Status: domain.StatusConfirmed}).
		Return(testReservation(id, domain.StatusConfirmed), nil)

	w := serve(r, http.MethodPost, "/api/reservations/"+id+"/transitions", []byte(`{"status":"CONFIRMED"}`))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CONFIRMED", resp.Status)
}

func TestHandler_TransitionReservation_Rejected(t *testing.T) {
	svc, r := setupRouter(t)

	id := uuid.New().String()
	rejected := &domain.TransitionError{
		From: domain.StatusCheckedIn,
		To:   domain.StatusCheckedOut,
		Err:  domain.ErrOutstandingBalance,
	}
	svc.reservations.EXPECT().Transition(mock.Anything, id, mock.Anything).Return(nil, rejected)

	w := serve(r, http.MethodPost, "/api/reservations/"+id+"/transitions", []byte(`{"status":"CHECKED_OUT"}`))

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CHECKED_IN", resp.From)
	assert.Equal(t, "CHECKED_OUT", resp.To)
}

func TestHandler_TransitionReservation_LockBusy(t *testing.T) {
	svc, r := setupRouter(t)

	id := uuid.New().String()
	svc.reservations.EXPECT().Transition(mock.Anything, id, mock.Anything).Return(nil, domain.ErrLockBusy)

	w := serve(r, http.MethodPost, "/api/reservations/"+id+"/transitions", []byte(`{"status":"CONFIRMED"}`))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SubmitFeedback_Success(t *testing.T) {
	svc, r := setupRouter(t)

	id := uuid.New().String()
	res := testReservation(id, domain.StatusCheckedOut)
	rating := 5
	res.FeedbackSubmitted = true
	res.FeedbackRating = &rating
	svc.reservations.EXPECT().
		SubmitFeedback(mock.Anything, id, domain.FeedbackInput{Rating: 5, Comment: "great"}).
		Return(res, nil)

	w := serve(r, http.MethodPost, "/api/reservations/"+id+"/feedback", []byte(`{"rating":5,"comment":"great"}`))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.FeedbackSubmitted)
}

func TestHandler_SubmitFeedback_RatingOutOfRange(t *testing.T) {
	_, r := setupRouter(t)

	id := uuid.New().String()
	w := serve(r, http.MethodPost, "/api/reservations/"+id+"/feedback", []byte(`{"rating":9}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RecalculateReservation_Success(t *testing.T) {
	svc, r := setupRouter(t)

	id := uuid.New().String()
	svc.reservations.EXPECT().Recalculate(mock.Anything, id).Return(testReservation(id, domain.StatusBooked), nil)

	w := serve(r, http.MethodPost, "/api/reservations/"+id+"/recalculate", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Payments ---

func TestHandler_RecordPayment_Success(t *testing.T) {
	svc, r := setupRouter(t)

	id := uuid.New().String()
	p := &domain.PaymentEvent{
		ID:            uuid.New().String(),
		ReservationID: id,
		Amount:        dec("50"),
		Kind:          domain.PaymentCharge,
		Method:        "card",
		CreatedAt:     time.Now(),
	}
	svc.payments.EXPECT().RecordPayment(mock.Anything, id, mock.MatchedBy(func(in domain.RecordPaymentInput) bool {
		return in.Amount.Equal(dec("50")) && in.Kind == domain.PaymentCharge && in.Method == "card"
	})).Return(p, nil)

	w := serve(r, http.MethodPost, "/api/reservations/"+id+"/payments",
		[]byte(`{"amount":"50","kind":"CHARGE","method":"card"}`))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "50.00", resp.Amount)
	assert.Equal(t, "CHARGE", resp.Kind)
}

func TestHandler_RecordPayment_UnknownKind(t *testing.T) {
	_, r := setupRouter(t)

	id := uuid.New().String()
	w := serve(r, http.MethodPost, "/api/reservations/"+id+"/payments", []byte(`{"amount":"50","kind":"GIFT"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RecordPayment_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"non-positive", domain.ErrNonPositiveAmount, http.StatusBadRequest},
		{"refund exceeds paid", domain.ErrRefundExceedsPaid, http.StatusConflict},
		{"duplicate payment", domain.ErrDuplicatePayment, http.StatusConflict},
		{"not found", domain.ErrReservationNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := setupRouter(t)
			id := uuid.New().String()
			svc.payments.EXPECT().RecordPayment(mock.Anything, id, mock.Anything).Return(nil, tc.err)

			w := serve(r, http.MethodPost, "/api/reservations/"+id+"/payments",
				[]byte(`{"amount":"10","kind":"REFUND"}`))

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestHandler_ListPayments_Success(t *testing.T) {
	svc, r := setupRouter(t)

	id := uuid.New().String()
	svc.payments.EXPECT().ListPayments(mock.Anything, id).Return([]domain.PaymentEvent{
		{ID: "p1", ReservationID: id, Amount: dec("300"), Kind: domain.PaymentCharge, CreatedAt: time.Now()},
		{ID: "p2", ReservationID: id, Amount: dec("50"), Kind: domain.PaymentRefund, CreatedAt: time.Now()},
	}, nil)

	w := serve(r, http.MethodGet, "/api/reservations/"+id+"/payments", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
