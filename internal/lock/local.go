package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/google/uuid"
)

// LocalLocker is an in-process keyed mutex for single-replica deployments.
type LocalLocker struct {
	mu    sync.Mutex
	slots map[string]*slot
	wait  time.Duration
}

type slot struct {
	sem   chan struct{}
	token string
	refs  int // holder plus waiters; the slot is dropped at zero
}

func NewLocalLocker(wait time.Duration) *LocalLocker {
	return &LocalLocker{
		slots: make(map[string]*slot),
		wait:  wait,
	}
}

func (l *LocalLocker) join(key string) *slot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[key]
	if !ok {
		s = &slot{sem: make(chan struct{}, 1)}
		l.slots[key] = s
	}
	s.refs++
	return s
}

// leave must be called with l.mu held.
func (l *LocalLocker) leave(key string, s *slot) {
	s.refs--
	if s.refs == 0 {
		delete(l.slots, key)
	}
}

func (l *LocalLocker) Acquire(ctx context.Context, key string) (string, error) {
	s := l.join(key)

	timer := time.NewTimer(l.wait)
	defer timer.Stop()

	var err error
	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		err = ctx.Err()
	case <-timer.C:
		err = domain.ErrLockBusy
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err != nil {
		l.leave(key, s)
		return "", err
	}

	token := uuid.New().String()
	s.token = token
	return token, nil
}

func (l *LocalLocker) Release(_ context.Context, key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, ok := l.slots[key]
	if !ok || s.token == "" || s.token != token {
		return fmt.Errorf("%w: %s", ErrNotHeld, key)
	}

	s.token = ""
	<-s.sem
	l.leave(key, s)
	return nil
}

func (l *LocalLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.slots)
}
