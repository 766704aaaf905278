package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/billing"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type PaymentService struct {
	reservationRepo ports.ReservationRepo
	paymentRepo     ports.PaymentRepo
	locker          ports.Locker
	notifier        ports.GuestNotifier
	publisher       ports.EventPublisher
	logger          logger.Logger
	now             func() time.Time
}

func NewPaymentService(
	reservationRepo ports.ReservationRepo,
	paymentRepo ports.PaymentRepo,
	locker ports.Locker,
	notifier ports.GuestNotifier,
	publisher ports.EventPublisher,
	logger logger.Logger,
) *PaymentService {
	return &PaymentService{
		reservationRepo: reservationRepo,
		paymentRepo:     paymentRepo,
		locker:          locker,
		notifier:        notifier,
		publisher:       publisher,
		logger:          logger,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

// RecordPayment appends a charge or refund to the reservation's ledger.
// Nothing is stored when validation fails.
func (s *PaymentService) RecordPayment(ctx context.Context, reservationID string, in domain.RecordPaymentInput) (*domain.PaymentEvent, error) {
	unlock, err := lockReservation(ctx, s.locker, s.logger, reservationID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	r, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if in.Kind == domain.PaymentCharge && r.Status == domain.StatusCancelled {
		return nil, fmt.Errorf("%w: cannot charge a cancelled reservation", domain.ErrValidation)
	}

	payments, err := s.paymentRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	ledger := billing.NewLedger(reservationID, payments)
	ev, err := ledger.Record(in.Amount, in.Kind, in.Method, s.now())
	if err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	if err = s.paymentRepo.Append(ctx, &ev); err != nil {
		return nil, fmt.Errorf("append payment: %w", err)
	}

	s.logger.Info("payment recorded",
		logger.String("payment_id", ev.ID),
		logger.String("reservation_id", reservationID),
		logger.String("kind", string(ev.Kind)),
		logger.String("amount", ev.Amount.StringFixed(2)),
		logger.String("balance", ledger.Balance(r.Total).StringFixed(2)),
	)

	payment := ev
	go s.afterPayment(context.WithoutCancel(ctx), r, &payment)

	return &ev, nil
}

func (s *PaymentService) afterPayment(ctx context.Context, r *domain.Reservation, p *domain.PaymentEvent) {
	s.notifier.NotifyPaymentRecorded(ctx, r, p)

	event := domain.BillingEvent{
		ID:            uuid.New().String(),
		Type:          domain.EventPaymentRecorded,
		ReservationID: r.ID,
		Status:        r.Status,
		Payment:       p,
		OccurredAt:    p.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish billing event",
			logger.String("reservation_id", r.ID),
			logger.String("type", string(event.Type)),
			logger.String("error", err.Error()),
		)
	}
}

func (s *PaymentService) ListPayments(ctx context.Context, reservationID string) ([]domain.PaymentEvent, error) {
	if _, err := s.reservationRepo.GetByID(ctx, reservationID); err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	payments, err := s.paymentRepo.ListByReservation(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}
