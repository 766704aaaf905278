package notification

import (
	"context"
	"testing"
	"time"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testReservation(status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:     "r1",
		Status: status,
		Stay: domain.StayRequest{
			CheckIn:  time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
			CheckOut: time.Date(2025, 3, 6, 0, 0, 0, 0, time.UTC),
		},
	}
}

func TestPaymentText(t *testing.T) {
	r := testReservation(domain.StatusCheckedIn)

	text := paymentText(r, &domain.PaymentEvent{Amount: decimal.RequireFromString("50"), Kind: domain.PaymentCharge})
	assert.Contains(t, text, "Payment received")
	assert.Contains(t, text, "50.00")
	assert.Contains(t, text, "04.03.2025 - 06.03.2025")

	text = paymentText(r, &domain.PaymentEvent{Amount: decimal.RequireFromString("20.5"), Kind: domain.PaymentRefund})
	assert.Contains(t, text, "Refund issued")
	assert.Contains(t, text, "20.50")
}

func TestStatusText(t *testing.T) {
	r := testReservation(domain.StatusCheckedOut)
	r.PointsEarned = 300

	assert.Contains(t, statusText(r), "300 loyalty points")
	assert.Contains(t, statusText(testReservation(domain.StatusCancelled)), "cancelled")
}

func TestFeedbackText(t *testing.T) {
	assert.Contains(t, feedbackText(testReservation(domain.StatusCheckedOut)), "from 1 to 5")
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	chatID := int64(42)
	r := testReservation(domain.StatusConfirmed)
	r.GuestChatID = &chatID

	assert.NotPanics(t, func() {
		n.NotifyStatusChanged(context.Background(), r)
		n.NotifyFeedbackReminder(context.Background(), r)
		n.NotifyPaymentRecorded(context.Background(), r, &domain.PaymentEvent{Amount: decimal.NewFromInt(1)})
	})
}
