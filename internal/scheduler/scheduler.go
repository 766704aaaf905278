package scheduler

import (
	"context"
	"time"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type feedbackReminder interface {
	RemindPendingFeedback(ctx context.Context) ([]*domain.Reservation, error)
}

// Scheduler periodically reminds checked-out guests to leave feedback.
type Scheduler struct {
	reminder feedbackReminder
	interval time.Duration
	logger   logger.Logger
}

func New(
	reminder feedbackReminder,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reminder: reminder,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reminded, err := s.reminder.RemindPendingFeedback(ctx)
	if err != nil {
		s.logger.Error("failed to send feedback reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, r := range reminded {
		s.logger.Debug("feedback reminder sent",
			logger.String("reservation_id", r.ID),
			logger.String("guest_id", r.GuestID),
		)
	}
}
