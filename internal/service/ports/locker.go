package ports

import "context"

// Locker serializes operations on a single reservation.
type Locker interface {
	Acquire(ctx context.Context, key string) (string, error)
	Release(ctx context.Context, key, token string) error
}
