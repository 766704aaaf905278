package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/billing"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/lifecycle"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/service/ports"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
)

const (
	minRating = 1
	maxRating = 5
)

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	paymentRepo     ports.PaymentRepo
	locker          ports.Locker
	notifier        ports.GuestNotifier
	publisher       ports.EventPublisher
	quotes          *QuoteService
	policy          lifecycle.Policy
	logger          logger.Logger
	now             func() time.Time
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	paymentRepo ports.PaymentRepo,
	locker ports.Locker,
	notifier ports.GuestNotifier,
	publisher ports.EventPublisher,
	quotes *QuoteService,
	policy lifecycle.Policy,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		locker:          locker,
		notifier:        notifier,
		publisher:       publisher,
		quotes:          quotes,
		policy:          policy,
		logger:          logger,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (s *ReservationService) Create(ctx context.Context, in domain.CreateReservationInput) (*domain.Reservation, error) {
	if in.GuestID == "" {
		return nil, fmt.Errorf("%w: guest_id is required", domain.ErrValidation)
	}

	q, percent, err := s.quotes.quote(domain.QuoteInput{
		Stay:          in.Stay,
		Discount:      in.Discount,
		LoyaltyPoints: in.LoyaltyPoints,
		Flat:          in.Flat,
	})
	if err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}

	now := s.now()
	r := &domain.Reservation{
		ID:              uuid.New().String(),
		GuestID:         in.GuestID,
		GuestChatID:     in.GuestChatID,
		Stay:            in.Stay,
		Flat:            in.Flat,
		Status:          domain.StatusBooked,
		DiscountPercent: percent,
		PointsRedeemed:  in.LoyaltyPoints,
		Total:           q.Total,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err = s.reservationRepo.Create(ctx, r); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", r.ID),
		logger.String("guest_id", r.GuestID),
		logger.String("total", r.Total.StringFixed(2)),
	)

	return r, nil
}

func (s *ReservationService) Get(ctx context.Context, id string) (*domain.ReservationDetails, error) {
	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	payments, err := s.paymentRepo.ListByReservation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return &domain.ReservationDetails{
		Reservation: *r,
		Payments:    payments,
		Paid:        billing.TotalPaid(payments),
		Balance:     billing.Balance(r.Total, payments),
	}, nil
}

// Transition moves the reservation to in.Status if the lifecycle allows it
// given the current ledger balance.
func (s *ReservationService) Transition(ctx context.Context, id string, in domain.TransitionInput) (*domain.Reservation, error) {
	if !in.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, in.Status)
	}

	unlock, err := lockReservation(ctx, s.locker, s.logger, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	payments, err := s.paymentRepo.ListByReservation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	paid := billing.TotalPaid(payments)

	next, err := s.policy.Attempt(r.Status, in.Status, lifecycle.Facts{
		Balance:           billing.Balance(r.Total, payments),
		FeedbackSubmitted: r.FeedbackSubmitted,
		Override:          in.Override,
	})
	if err != nil {
		s.logger.Warn("transition rejected",
			logger.String("reservation_id", id),
			logger.String("from", string(r.Status)),
			logger.String("to", string(in.Status)),
			logger.String("reason", err.Error()),
		)
		return nil, err
	}

	if next == domain.StatusCheckedOut {
		points, err := s.quotes.loyaltyAccount().Earn(decimal.Max(paid, decimal.Zero))
		if err != nil {
			return nil, fmt.Errorf("earn points: %w", err)
		}
		r.PointsEarned = points
	}
	if next == domain.StatusCompleted && in.Override && !r.FeedbackSubmitted {
		s.logger.Warn("completion forced without feedback",
			logger.String("reservation_id", id),
		)
	}

	prev := r.Status
	r.Status = next
	r.UpdatedAt = s.now()
	if err = s.reservationRepo.Update(ctx, r); err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	s.logger.Info("reservation transitioned",
		logger.String("reservation_id", id),
		logger.String("from", string(prev)),
		logger.String("to", string(next)),
	)

	snapshot := *r
	go s.afterTransition(context.WithoutCancel(ctx), &snapshot)

	return r, nil
}

func (s *ReservationService) afterTransition(ctx context.Context, r *domain.Reservation) {
	s.notifier.NotifyStatusChanged(ctx, r)

	event := domain.BillingEvent{
		ID:            uuid.New().String(),
		Type:          domain.EventReservationTransitioned,
		ReservationID: r.ID,
		Status:        r.Status,
		OccurredAt:    r.UpdatedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish billing event",
			logger.String("reservation_id", r.ID),
			logger.String("type", string(event.Type)),
			logger.String("error", err.Error()),
		)
	}
}

func (s *ReservationService) SubmitFeedback(ctx context.Context, id string, in domain.FeedbackInput) (*domain.Reservation, error) {
	if in.Rating < minRating || in.Rating > maxRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", domain.ErrValidation, minRating, maxRating)
	}

	unlock, err := lockReservation(ctx, s.locker, s.logger, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if r.Status != domain.StatusCheckedOut && r.Status != domain.StatusCompleted {
		return nil, fmt.Errorf("%w: status is %s", domain.ErrFeedbackNotAllowed, r.Status)
	}

	rating := in.Rating
	r.FeedbackSubmitted = true
	r.FeedbackRating = &rating
	r.FeedbackComment = in.Comment
	r.UpdatedAt = s.now()

	if err = s.reservationRepo.Update(ctx, r); err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	s.logger.Info("feedback submitted",
		logger.String("reservation_id", id),
		logger.Int("rating", rating),
	)

	return r, nil
}

// Recalculate reprices the stored stay with the stored discount and
// redemption and refreshes the cached total.
func (s *ReservationService) Recalculate(ctx context.Context, id string) (*domain.Reservation, error) {
	unlock, err := lockReservation(ctx, s.locker, s.logger, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	r, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	switch r.Status {
	case domain.StatusCancelled, domain.StatusCompleted:
		return nil, fmt.Errorf("%w: reservation is %s", domain.ErrValidation, r.Status)
	}

	q, err := s.quotes.price(r.Stay, r.Flat, r.DiscountPercent, r.PointsRedeemed)
	if err != nil {
		return nil, fmt.Errorf("reprice: %w", err)
	}

	if q.Total.Equal(r.Total) {
		return r, nil
	}

	old := r.Total
	r.Total = q.Total
	r.UpdatedAt = s.now()
	if err = s.reservationRepo.Update(ctx, r); err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	s.logger.Info("reservation total recalculated",
		logger.String("reservation_id", id),
		logger.String("old_total", old.StringFixed(2)),
		logger.String("new_total", r.Total.StringFixed(2)),
	)

	return r, nil
}

// RemindPendingFeedback notifies guests of checked-out reservations that have
// not left feedback yet. Each reservation is reminded once.
func (s *ReservationService) RemindPendingFeedback(ctx context.Context) ([]*domain.Reservation, error) {
	pending, err := s.reservationRepo.ListPendingFeedback(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending feedback: %w", err)
	}
	if len(pending) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(pending))
	for _, r := range pending {
		s.notifier.NotifyFeedbackReminder(ctx, r)
		ids = append(ids, r.ID)
	}

	if err = s.reservationRepo.MarkFeedbackReminded(ctx, ids, s.now()); err != nil {
		return nil, fmt.Errorf("mark reminded: %w", err)
	}

	s.logger.Info("feedback reminders sent",
		logger.Int("count", len(ids)),
	)

	return pending, nil
}
