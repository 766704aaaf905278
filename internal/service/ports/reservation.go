package ports

import (
	"context"
	"time"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	ListPendingFeedback(ctx context.Context) ([]*domain.Reservation, error)
	MarkFeedbackReminded(ctx context.Context, ids []string, at time.Time) error
}
