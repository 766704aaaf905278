package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `id, guest_id, guest_chat_id, stay, flat, status, discount_percent,
		points_redeemed, total, points_earned, feedback_submitted, feedback_rating,
		feedback_comment, feedback_reminded_at, created_at, updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	stay, flat, err := encodeStay(res)
	if err != nil {
		return err
	}

	query := `INSERT INTO reservations (` + reservationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.GuestID, res.GuestChatID, stay, flat, res.Status, res.DiscountPercent,
		res.PointsRedeemed, res.Total, res.PointsEarned, res.FeedbackSubmitted, res.FeedbackRating,
		res.FeedbackComment, res.FeedbackRemindedAt, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrReservationExists, res.ID)
		}
		return fmt.Errorf("insert reservation: %w", err)
	}

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return res, nil
}

// Update stores the mutable part of a reservation. Stay, guest and pricing
// inputs are fixed at creation.
func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `UPDATE reservations
			  SET status = $2,
			      total = $3,
			      points_earned = $4,
			      feedback_submitted = $5,
			      feedback_rating = $6,
			      feedback_comment = $7,
			      feedback_reminded_at = $8,
			      updated_at = $9
			  WHERE id = $1`

	result, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.Status, res.Total, res.PointsEarned, res.FeedbackSubmitted,
		res.FeedbackRating, res.FeedbackComment, res.FeedbackRemindedAt, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

// ListPendingFeedback returns checked-out reservations whose guest has neither
// left feedback nor been reminded yet.
func (r *ReservationRepository) ListPendingFeedback(ctx context.Context) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE status = $1
			    AND NOT feedback_submitted
			    AND feedback_reminded_at IS NULL
			  ORDER BY updated_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.StatusCheckedOut)
	if err != nil {
		return nil, fmt.Errorf("list pending feedback: %w", err)
	}
	defer rows.Close()

	var out []*domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		out = append(out, res)
	}

	return out, rows.Err()
}

func (r *ReservationRepository) MarkFeedbackReminded(ctx context.Context, ids []string, at time.Time) error {
	query := `UPDATE reservations
			  SET feedback_reminded_at = $2
			  WHERE id = ANY($1)`

	if _, err := r.db.ExecWithRetry(ctx, r.strategy, query, pq.Array(ids), at); err != nil {
		return fmt.Errorf("mark feedback reminded: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(s rowScanner) (*domain.Reservation, error) {
	var (
		res  domain.Reservation
		stay []byte
		flat []byte
	)

	if err := s.Scan(
		&res.ID, &res.GuestID, &res.GuestChatID, &stay, &flat, &res.Status, &res.DiscountPercent,
		&res.PointsRedeemed, &res.Total, &res.PointsEarned, &res.FeedbackSubmitted, &res.FeedbackRating,
		&res.FeedbackComment, &res.FeedbackRemindedAt, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(stay, &res.Stay); err != nil {
		return nil, fmt.Errorf("decode stay: %w", err)
	}
	if len(flat) > 0 {
		res.Flat = &domain.FlatRate{}
		if err := json.Unmarshal(flat, res.Flat); err != nil {
			return nil, fmt.Errorf("decode flat rate: %w", err)
		}
	}

	return &res, nil
}

// encodeStay renders the JSONB columns as text; lib/pq would send []byte as bytea.
func encodeStay(res *domain.Reservation) (string, sql.NullString, error) {
	stay, err := json.Marshal(res.Stay)
	if err != nil {
		return "", sql.NullString{}, fmt.Errorf("encode stay: %w", err)
	}

	var flat sql.NullString
	if res.Flat != nil {
		b, err := json.Marshal(res.Flat)
		if err != nil {
			return "", sql.NullString{}, fmt.Errorf("encode flat rate: %w", err)
		}
		flat = sql.NullString{String: string(b), Valid: true}
	}

	return string(stay), flat, nil
}
