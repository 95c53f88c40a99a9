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

// investmentRepository implements the adapter.InvestmentRepository interface.
type investmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository instance.
func NewInvestmentRepository(db *gorm.DB) adapter.InvestmentRepository {
	return &investmentRepository{
		db: db,
	}
}

// Create inserts a new investment.
func (r *investmentRepository) Create(ctx context.Context, investment *entity.Investment) error {
	return r.db.WithContext(ctx).Create(model.InvestmentFromEntity(investment)).Error
}

// FindByIDForUpdate retrieves an investment and locks its row.
func (r *investmentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Investment, error) {
	var investmentModel model.InvestmentModel
	err := forUpdate(r.db.WithContext(ctx)).Where("id = ?", id).First(&investmentModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvestmentNotFound
		}
		return nil, err
	}
	return investmentModel.ToEntity(), nil
}

// Update saves changes to an investment.
func (r *investmentRepository) Update(ctx context.Context, investment *entity.Investment) error {
	return r.db.WithContext(ctx).Save(model.InvestmentFromEntity(investment)).Error
}

// SumConfirmedShares returns the shares held under confirmed investments.
func (r *investmentRepository) SumConfirmedShares(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.InvestmentModel{}).
		Select("COALESCE(SUM(shares), 0)").
		Where("property_id = ? AND status = ?", propertyID, entity.InvestmentStatusConfirmed).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// ConfirmedHoldings returns confirmed shares grouped per user.
func (r *investmentRepository) ConfirmedHoldings(ctx context.Context, propertyID uuid.UUID) ([]entity.Holding, error) {
	var rows []struct {
		UserID uuid.UUID
		Shares int64
	}
	err := r.db.WithContext(ctx).
		Model(&model.InvestmentModel{}).
		Select("user_id, SUM(shares) AS shares").
		Where("property_id = ? AND status = ?", propertyID, entity.InvestmentStatusConfirmed).
		Group("user_id").
		Order("user_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	holdings := make([]entity.Holding, 0, len(rows))
	for _, row := range rows {
		if row.Shares > 0 {
			holdings = append(holdings, entity.Holding{UserID: row.UserID, Shares: row.Shares})
		}
	}
	return holdings, nil
}

// ListByUser returns a user's investments, newest first.
func (r *investmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Investment, error) {
	var models []model.InvestmentModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	investments := make([]*entity.Investment, len(models))
	for i := range models {
		investments[i] = models[i].ToEntity()
	}
	return investments, nil
}
