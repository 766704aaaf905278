package lock

import (
	"context"
	"testing"
	"time"

	"github.com/Marcos-Ian/TestFinalProject-sub000/internal/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisLocker(t *testing.T, ttl, wait time.Duration) (*RedisLocker, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	l := NewRedisLocker(client, ttl, wait)
	l.poll = 5 * time.Millisecond
	return l, mr
}

func TestRedisLocker_AcquireRelease(t *testing.T) {
	l, mr := newTestRedisLocker(t, time.Minute, time.Second)
	ctx := context.Background()

	token, err := l.Acquire(ctx, "reservation:1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := mr.Get("reservation:1")
	require.NoError(t, err)
	assert.Equal(t, token, got)

	require.NoError(t, l.Release(ctx, "reservation:1", token))
	assert.False(t, mr.Exists("reservation:1"))

	again, err := l.Acquire(ctx, "reservation:1")
	require.NoError(t, err)
	assert.NotEqual(t, token, again)
}

func TestRedisLocker_BusyAfterWait(t *testing.T) {
	l, _ := newTestRedisLocker(t, time.Minute, 30*time.Millisecond)
	ctx := context.Background()

	_, err := l.Acquire(ctx, "reservation:1")
	require.NoError(t, err)

	start := time.Now()
	_, err = l.Acquire(ctx, "reservation:1")

	assert.ErrorIs(t, err, domain.ErrLockBusy)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestRedisLocker_WaitsForRelease(t *testing.T) {
	l, _ := newTestRedisLocker(t, time.Minute, time.Second)
	ctx := context.Background()

	token, err := l.Acquire(ctx, "reservation:1")
	require.NoError(t, err)

	go func() {
		time.Sleep(20 * time.Millisecond)
		_ = l.Release(ctx, "reservation:1", token)
	}()

	next, err := l.Acquire(ctx, "reservation:1")
	require.NoError(t, err)
	assert.NotEqual(t, token, next)
}

func TestRedisLocker_ReleaseWrongToken(t *testing.T) {
	l, mr := newTestRedisLocker(t, time.Minute, time.Second)
	ctx := context.Background()

	token, err := l.Acquire(ctx, "reservation:1")
	require.NoError(t, err)

	assert.ErrorIs(t, l.Release(ctx, "reservation:1", "other"), ErrNotHeld)
	assert.ErrorIs(t, l.Release(ctx, "reservation:2", token), ErrNotHeld)

	got, err := mr.Get("reservation:1")
	require.NoError(t, err)
	assert.Equal(t, token, got)
}

func TestRedisLocker_ExpiredLeaseIsNotReleasedByOldHolder(t *testing.T) {
	l, mr := newTestRedisLocker(t, time.Second, 50*time.Millisecond)
	ctx := context.Background()

	stale, err := l.Acquire(ctx, "reservation:1")
	require.NoError(t, err)

	mr.FastForward(2 * time.Second)

	fresh, err := l.Acquire(ctx, "reservation:1")
	require.NoError(t, err)

	assert.ErrorIs(t, l.Release(ctx, "reservation:1", stale), ErrNotHeld)

	got, err := mr.Get("reservation:1")
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}
