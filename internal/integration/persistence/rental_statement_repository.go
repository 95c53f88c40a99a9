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

// rentalStatementRepository implements the adapter.RentalStatementRepository interface.
type rentalStatementRepository struct {
	db *gorm.DB
}

// NewRentalStatementRepository creates a new rental statement repository instance.
func NewRentalStatementRepository(db *gorm.DB) adapter.RentalStatementRepository {
	return &rentalStatementRepository{
		db: db,
	}
}

// Create inserts a new statement.
func (r *rentalStatementRepository) Create(ctx context.Context, statement *entity.RentalStatement) error {
	return r.db.WithContext(ctx).Create(model.RentalStatementFromEntity(statement)).Error
}

// FindByID retrieves a statement by its ID.
func (r *rentalStatementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RentalStatement, error) {
	return r.find(r.db.WithContext(ctx), id)
}

// FindByIDForUpdate retrieves a statement and locks its row.
func (r *rentalStatementRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.RentalStatement, error) {
	return r.find(forUpdate(r.db.WithContext(ctx)), id)
}

func (r *rentalStatementRepository) find(db *gorm.DB, id uuid.UUID) (*entity.RentalStatement, error) {
	var statementModel model.RentalStatementModel
	if err := db.Where("id = ?", id).First(&statementModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrStatementNotFound
		}
		return nil, err
	}
	return statementModel.ToEntity(), nil
}

// ListByProperty returns a property's statements ordered by period.
func (r *rentalStatementRepository) ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.RentalStatement, error) {
	var models []model.RentalStatementModel
	err := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("period_start ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	statements := make([]*entity.RentalStatement, len(models))
	for i := range models {
		statements[i] = models[i].ToEntity()
	}
	return statements, nil
}
