package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"

	"github.com/estateshare/backend/internal/application/adapter"
)

const lockRetryInterval = 50 * time.Millisecond

// redisLocker implements adapter.Locker with bsm/redislock.
type redisLocker struct {
	client *redislock.Client
	ttl    time.Duration
	wait   time.Duration
}

// NewRedisLocker creates a locker whose locks expire after ttl and whose
// Acquire gives up after wait.
func NewRedisLocker(rdb *redis.Client, ttl, wait time.Duration) adapter.Locker {
	return &redisLocker{
		client: redislock.New(rdb),
		ttl:    ttl,
		wait:   wait,
	}
}

// Acquire obtains the lock for key, retrying until wait elapses.
func (l *redisLocker) Acquire(ctx context.Context, key string) (adapter.Lock, error) {
	obtainCtx, cancel := context.WithTimeout(ctx, l.wait)
	defer cancel()

	lock, err := l.client.Obtain(obtainCtx, key, l.ttl, &redislock.Options{
		RetryStrategy: redislock.LinearBackoff(lockRetryInterval),
	})
	if err != nil {
		if errors.Is(err, redislock.ErrNotObtained) || errors.Is(err, context.DeadlineExceeded) {
			return nil, adapter.ErrLockNotAcquired
		}
		return nil, err
	}
	return &redisLock{lock: lock}, nil
}

type redisLock struct {
	lock *redislock.Lock
}

// Release frees the lock. A lock that already expired is not an error.
func (l *redisLock) Release(ctx context.Context) error {
	if err := l.lock.Release(ctx); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
		return err
	}
	return nil
}
