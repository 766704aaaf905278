package service

import (
	"context"
	"fmt"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

func reservationLockKey(id string) string {
	return "reservation:" + id
}

// lockReservation holds the per-reservation lock; the returned func releases it.
func lockReservation(ctx context.Context, l ports.Locker, log logger.Logger, id string) (func(), error) {
	key := reservationLockKey(id)

	token, err := l.Acquire(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("lock reservation: %w", err)
	}

	return func() {
		if err := l.Release(context.WithoutCancel(ctx), key, token); err != nil {
			log.Error("failed to release reservation lock",
				logger.String("reservation_id", id),
				logger.String("error", err.Error()),
			)
		}
	}, nil
}
