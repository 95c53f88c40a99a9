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

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new investor profile repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Upsert creates the profile or refreshes its email and name. Role and KYC
// status are only changed through their own operations.
func (r *userRepository) Upsert(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"email":      user.Email,
				"name":       user.Name,
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(model.UserFromEntity(user)).Error
}

// FindByID retrieves a profile by its ID.
func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvestorNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// FindByIDs retrieves several profiles keyed by id.
func (r *userRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.User, error) {
	users := make(map[uuid.UUID]*entity.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	var models []model.UserModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, err
	}
	for i := range models {
		users[models[i].ID] = models[i].ToEntity()
	}
	return users, nil
}

// Update saves changes to a profile.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(model.UserFromEntity(user)).Error
}
