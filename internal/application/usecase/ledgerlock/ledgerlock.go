// Package ledgerlock names the distributed locks taken ahead of ledger
// units of work and acquires them on a best-effort basis.
package ledgerlock

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
)

// PropertyKey queues buyers of one property.
func PropertyKey(propertyID uuid.UUID) string {
	return "ledger:property:" + propertyID.String()
}

// StatementKey queues draft creation for one rental statement.
func StatementKey(statementID uuid.UUID) string {
	return "ledger:statement:" + statementID.String()
}

// AcquireBestEffort takes the lock when a locker is configured and returns
// its release function. Failure is logged and ignored: the row lock taken
// inside the unit of work remains the authority.
func AcquireBestEffort(ctx context.Context, locker adapter.Locker, key string) func() {
	if locker == nil {
		return func() {}
	}

	lock, err := locker.Acquire(ctx, key)
	if err != nil {
		slog.Warn("Distributed lock unavailable, relying on row lock",
			"key", key,
			"error", err,
		)
		return func() {}
	}

	return func() {
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil {
			slog.Warn("Failed to release distributed lock", "key", key, "error", err)
		}
	}
}
