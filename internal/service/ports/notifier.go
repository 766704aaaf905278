package ports

import (
	"context"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
)

type GuestNotifier interface {
	NotifyPaymentRecorded(ctx context.Context, r *domain.Reservation, p *domain.PaymentEvent)
	NotifyStatusChanged(ctx context.Context, r *domain.Reservation)
	NotifyFeedbackReminder(ctx context.Context, r *domain.Reservation)
}

type EventPublisher interface {
	Publish(ctx context.Context, e domain.BillingEvent) error
}
