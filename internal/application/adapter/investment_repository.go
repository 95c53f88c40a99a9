// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/domain/entity"
)

// InvestmentRepository defines the interface for investment persistence operations.
type InvestmentRepository interface {
	// Create inserts a new investment.
	Create(ctx context.Context, investment *entity.Investment) error

	// FindByIDForUpdate retrieves an investment and locks its row.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Investment, error)

	// Update saves changes to an investment.
	Update(ctx context.Context, investment *entity.Investment) error

	// SumConfirmedShares returns the number of shares held under CONFIRMED investments.
	SumConfirmedShares(ctx context.Context, propertyID uuid.UUID) (int64, error)

	// ConfirmedHoldings returns CONFIRMED shares grouped per user, ordered by user id.
	ConfirmedHoldings(ctx context.Context, propertyID uuid.UUID) ([]entity.Holding, error)

	// ListByUser returns a user's investments, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Investment, error)
}
