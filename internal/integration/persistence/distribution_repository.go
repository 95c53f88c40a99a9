// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/integration/persistence/model"
)

// distributionRepository implements the adapter.DistributionRepository interface.
type distributionRepository struct {
	db *gorm.DB
}

// NewDistributionRepository creates a new distribution repository instance.
func NewDistributionRepository(db *gorm.DB) adapter.DistributionRepository {
	return &distributionRepository{
		db: db,
	}
}

// Create inserts a distribution. The unique index on rental_statement_id
// turns a concurrent second draft into ErrDuplicateDistribution.
func (r *distributionRepository) Create(ctx context.Context, distribution *entity.Distribution) error {
	err := r.db.WithContext(ctx).Create(model.DistributionFromEntity(distribution)).Error
	if isDuplicateKey(err) {
		return domainerror.ErrDuplicateDistribution
	}
	return err
}

// FindByID retrieves a distribution by its ID.
func (r *distributionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Distribution, error) {
	return r.find(r.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a distribution and locks its row.
func (r *distributionRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Distribution, error) {
	return r.find(forUpdate(r.db.WithContext(ctx)), id)
}

func (r *distributionRepository) find(db *gorm.DB, id uuid.UUID) (*entity.Distribution, error) {
	var distributionModel model.DistributionModel
	if err := db.Where("id = ?", id).First(&distributionModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDistributionNotFound
		}
		return nil, err
	}
	return distributionModel.ToEntity(), nil
}

// ExistsForStatement reports whether a statement already has a distribution.
func (r *distributionRepository) ExistsForStatement(ctx context.Context, statementID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.DistributionModel{}).
		Where("rental_statement_id = ?", statementID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CountDeclaredByProperty counts distributions that have reached the ledger.
func (r *distributionRepository) CountDeclaredByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.DistributionModel{}).
		Where("property_id = ? AND status IN ?", propertyID, []entity.DistributionStatus{
			entity.DistributionStatusDeclared,
			entity.DistributionStatusPaid,
		}).
		Count(&count).Error
	return count, err
}

// Update saves changes to a distribution.
func (r *distributionRepository) Update(ctx context.Context, distribution *entity.Distribution) error {
	return r.db.WithContext(ctx).Save(model.DistributionFromEntity(distribution)).Error
}

// Delete removes a distribution and its payouts.
func (r *distributionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("distribution_id = ?", id).Delete(&model.PayoutModel{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id).Delete(&model.DistributionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrDistributionNotFound
	}
	return nil
}

// payoutRepository implements the adapter.PayoutRepository interface.
type payoutRepository struct {
	db *gorm.DB
}

// NewPayoutRepository creates a new payout repository instance.
func NewPayoutRepository(db *gorm.DB) adapter.PayoutRepository {
	return &payoutRepository{
		db: db,
	}
}

// CreateBatch inserts the payouts of a draft.
func (r *payoutRepository) CreateBatch(ctx context.Context, payouts []*entity.Payout) error {
	if len(payouts) == 0 {
		return nil
	}

	models := make([]*model.PayoutModel, len(payouts))
	for i, p := range payouts {
		models[i] = model.PayoutFromEntity(p)
	}
	return r.db.WithContext(ctx).CreateInBatches(models, 200).Error
}

// FindByID retrieves a payout by its ID.
func (r *payoutRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payout, error) {
	return r.find(r.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a payout and locks its row.
func (r *payoutRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Payout, error) {
	return r.find(forUpdate(r.db.WithContext(ctx)), id)
}

func (r *payoutRepository) find(db *gorm.DB, id uuid.UUID) (*entity.Payout, error) {
	var payoutModel model.PayoutModel
	if err := db.Where("id = ?", id).First(&payoutModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPayoutNotFound
		}
		return nil, err
	}
	return payoutModel.ToEntity(), nil
}

// ListByDistribution returns the payouts of a distribution ordered by user id.
func (r *payoutRepository) ListByDistribution(ctx context.Context, distributionID uuid.UUID) ([]*entity.Payout, error) {
	var models []model.PayoutModel
	err := r.db.WithContext(ctx).
		Where("distribution_id = ?", distributionID).
		Order("user_id ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	payouts := make([]*entity.Payout, len(models))
	for i := range models {
		payouts[i] = models[i].ToEntity()
	}
	return payouts, nil
}

// Update saves changes to a payout.
func (r *payoutRepository) Update(ctx context.Context, payout *entity.Payout) error {
	return r.db.WithContext(ctx).Save(model.PayoutFromEntity(payout)).Error
}

// CountUnpaid returns the number of payouts of a distribution not yet paid.
func (r *payoutRepository) CountUnpaid(ctx context.Context, distributionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.PayoutModel{}).
		Where("distribution_id = ? AND status <> ?", distributionID, entity.PayoutStatusPaid).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
