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

// propertyRepository implements the adapter.PropertyRepository interface.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository instance.
func NewPropertyRepository(db *gorm.DB) adapter.PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

// Create inserts a new property.
func (r *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	return r.db.WithContext(ctx).Create(model.PropertyFromEntity(property)).Error
}

// FindByID retrieves a property by its ID.
func (r *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	return r.find(r.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a property and locks its row.
func (r *propertyRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	return r.find(forUpdate(r.db.WithContext(ctx)), id)
}

func (r *propertyRepository) find(db *gorm.DB, id uuid.UUID) (*entity.Property, error) {
	var propertyModel model.PropertyModel
	if err := db.Where("id = ?", id).First(&propertyModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPropertyNotFound
		}
		return nil, err
	}
	return propertyModel.ToEntity(), nil
}

// List returns all properties ordered by name.
func (r *propertyRepository) List(ctx context.Context) ([]*entity.Property, error) {
	var models []model.PropertyModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, err
	}

	properties := make([]*entity.Property, len(models))
	for i := range models {
		properties[i] = models[i].ToEntity()
	}
	return properties, nil
}

// Update saves changes to a property.
func (r *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	return r.db.WithContext(ctx).Save(model.PropertyFromEntity(property)).Error
}

// Delete removes a property with its investments, statements, distributions
// and payouts. Callers must first make sure no ledger entry references them.
func (r *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)

	distributionIDs := db.Model(&model.DistributionModel{}).Select("id").Where("property_id = ?", id)
	if err := db.Where("distribution_id IN (?)", distributionIDs).Delete(&model.PayoutModel{}).Error; err != nil {
		return err
	}
	if err := db.Where("property_id = ?", id).Delete(&model.DistributionModel{}).Error; err != nil {
		return err
	}
	if err := db.Where("property_id = ?", id).Delete(&model.RentalStatementModel{}).Error; err != nil {
		return err
	}
	if err := db.Where("property_id = ?", id).Delete(&model.InvestmentModel{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id).Delete(&model.PropertyModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPropertyNotFound
	}
	return nil
}
