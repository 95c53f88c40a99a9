// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/domain/entity"
)

// EmailQueueRepository defines the interface for the notification outbox.
type EmailQueueRepository interface {
	// Enqueue adds a job. A job whose DedupKey is already queued is ignored.
	Enqueue(ctx context.Context, job *entity.EmailJob) error

	// GetPendingJobs retrieves jobs ready to be processed, ordered by scheduled_at.
	GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error)

	// Update saves changes to an email job.
	Update(ctx context.Context, job *entity.EmailJob) error

	// GetByID retrieves a specific job by its ID.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error)

	// DeleteOldSentJobs removes sent jobs older than the given number of days.
	DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error)
}
