package ports

import (
	"context"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
)

// PaymentRepo is append-only: payment events are never updated or deleted.
type PaymentRepo interface {
	Append(ctx context.Context, p *domain.PaymentEvent) error
	ListByReservation(ctx context.Context, reservationID string) ([]domain.PaymentEvent, error)
}
