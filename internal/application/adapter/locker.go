// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"errors"
)

// ErrLockNotAcquired is returned when a lock could not be obtained in time.
var ErrLockNotAcquired = errors.New("lock not acquired")

// Lock is a held distributed lock.
type Lock interface {
	// Release frees the lock. Releasing an expired lock is not an error.
	Release(ctx context.Context) error
}

// Locker queues concurrent writers on a shared key before they reach the database.
type Locker interface {
	// Acquire obtains the lock for key, waiting up to the configured time.
	Acquire(ctx context.Context, key string) (Lock, error)
}
