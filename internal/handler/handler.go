package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type QuoteSvc interface {
	Quote(ctx context.Context, in domain.QuoteInput) (*domain.Quote, error)
}

type ReservationSvc interface {
	Create(ctx context.Context, in domain.CreateReservationInput) (*domain.Reservation, error)
	Get(ctx context.Context, id string) (*domain.ReservationDetails, error)
	Transition(ctx context.Context, id string, in domain.TransitionInput) (*domain.Reservation, error)
	SubmitFeedback(ctx context.Context, id string, in domain.FeedbackInput) (*domain.Reservation, error)
	Recalculate(ctx context.Context, id string) (*domain.Reservation, error)
}

type PaymentSvc interface {
	RecordPayment(ctx context.Context, reservationID string, in domain.RecordPaymentInput) (*domain.PaymentEvent, error)
	ListPayments(ctx context.Context, reservationID string) ([]domain.PaymentEvent, error)
}

type Handler struct {
	quoteService       QuoteSvc
	reservationService ReservationSvc
	paymentService     PaymentSvc
}

func NewHandler(quoteService QuoteSvc, reservationService ReservationSvc, paymentService PaymentSvc) *Handler {
	return &Handler{
		quoteService:       quoteService,
		reservationService: reservationService,
		paymentService:     paymentService,
	}
}

// Quotes

func (h *Handler) Quote(c *ginext.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		h.handleError(c, err)
		return
	}

	q, err := h.quoteService.Quote(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(q))
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		h.handleError(c, err)
		return
	}

	r, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(r))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	details, err := h.reservationService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationDetailsResponse(details))
}

func (h *Handler) TransitionReservation(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	r, err := h.reservationService.Transition(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

func (h *Handler) SubmitFeedback(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	r, err := h.reservationService.SubmitFeedback(c.Request.Context(), id, req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

func (h *Handler) RecalculateReservation(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	r, err := h.reservationService.Recalculate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(r))
}

// Payments

func (h *Handler) RecordPayment(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		h.handleError(c, err)
		return
	}

	p, err := h.paymentService.RecordPayment(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(p))
}

func (h *Handler) ListPayments(c *ginext.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponses(payments))
}

func reservationID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	resp := dto.ErrorResponse{Error: err.Error()}
	if te, ok := domain.AsTransitionError(err); ok {
		resp.From = string(te.From)
		resp.To = string(te.To)
	}

	switch {
	case errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, resp)

	case errors.Is(err, domain.ErrIllegalTransition),
		errors.Is(err, domain.ErrOutstandingBalance),
		errors.Is(err, domain.ErrFeedbackPending),
		errors.Is(err, domain.ErrAlreadyCheckedIn),
		errors.Is(err, domain.ErrFeedbackNotAllowed),
		errors.Is(err, domain.ErrRefundExceedsPaid),
		errors.Is(err, domain.ErrLockBusy),
		errors.Is(err, domain.ErrReservationExists),
		errors.Is(err, domain.ErrDuplicatePayment):
		c.JSON(http.StatusConflict, resp)

	case errors.Is(err, domain.ErrRoleLimitExceeded):
		c.JSON(http.StatusForbidden, resp)

	case errors.Is(err, domain.ErrUnknownAddOn):
		c.JSON(http.StatusUnprocessableEntity, resp)

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidDateRange),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrNoRooms),
		errors.Is(err, domain.ErrPercentOutOfRange),
		errors.Is(err, domain.ErrPercentPrecision),
		errors.Is(err, domain.ErrUnknownRole),
		errors.Is(err, domain.ErrNegativePoints),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrNonPositiveAmount),
		errors.Is(err, domain.ErrUnknownPaymentKind):
		c.JSON(http.StatusBadRequest, resp)

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
