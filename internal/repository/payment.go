package repository

import (
	"context"
	"fmt"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// PaymentRepository is append-only: events are never updated or deleted.
type PaymentRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPaymentRepo(db *dbpg.DB) *PaymentRepository {
	return &PaymentRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *PaymentRepository) Append(ctx context.Context, p *domain.PaymentEvent) error {
	query := `INSERT INTO payments (id, reservation_id, amount, kind, method, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.ReservationID, p.Amount, p.Kind, p.Method, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrDuplicatePayment, p.ID)
		}
		return fmt.Errorf("insert payment: %w", err)
	}

	return nil
}

func (r *PaymentRepository) ListByReservation(ctx context.Context, reservationID string) ([]domain.PaymentEvent, error) {
	query := `SELECT id, reservation_id, amount, kind, method, created_at
			  FROM payments
			  WHERE reservation_id = $1
			  ORDER BY created_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var out []domain.PaymentEvent
	for rows.Next() {
		var p domain.PaymentEvent
		if err = rows.Scan(&p.ID, &p.ReservationID, &p.Amount, &p.Kind, &p.Method, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, p)
	}

	return out, rows.Err()
}
