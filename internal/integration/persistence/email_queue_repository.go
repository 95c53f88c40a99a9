// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/integration/persistence/model"
)

// emailQueueRepository implements the adapter.EmailQueueRepository interface
// on top of the email_queue outbox table.
type emailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository creates a new email queue repository instance.
func NewEmailQueueRepository(db *gorm.DB) adapter.EmailQueueRepository {
	return &emailQueueRepository{
		db: db,
	}
}

// Enqueue adds a new email job to the outbox. A second job for the same
// dedup key is silently dropped.
func (r *emailQueueRepository) Enqueue(ctx context.Context, job *entity.EmailJob) error {
	emailModel := model.EmailQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "dedup_key"}}, DoNothing: true}).
		Create(emailModel)
	if result.Error != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailEnqueueFailed,
			"failed to create email job",
			result.Error,
		)
	}
	return nil
}

// GetPendingJobs retrieves jobs ready to be processed.
func (r *emailQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var models []model.EmailQueueModel

	result := r.db.WithContext(ctx).
		Where("status = ?", entity.EmailStatusPending).
		Where("scheduled_at <= ?", time.Now().UTC()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.EmailJob, len(models))
	for i, m := range models {
		jobs[i] = m.ToEntity()
	}

	return jobs, nil
}

// Update saves changes to an email job.
func (r *emailQueueRepository) Update(ctx context.Context, job *entity.EmailJob) error {
	emailModel := model.EmailQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Save(emailModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// GetByID retrieves a specific job by its ID.
func (r *emailQueueRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	var emailModel model.EmailQueueModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&emailModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEmailJobNotFound
		}
		return nil, result.Error
	}
	return emailModel.ToEntity(), nil
}

// DeleteOldSentJobs removes sent jobs processed more than olderThanDays ago.
func (r *emailQueueRepository) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -olderThanDays)

	result := r.db.WithContext(ctx).
		Where("status = ?", entity.EmailStatusSent).
		Where("processed_at < ?", cutoff).
		Delete(&model.EmailQueueModel{})

	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
