// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/domain/entity"
)

// DistributionRepository defines the interface for distribution persistence operations.
type DistributionRepository interface {
	// Create inserts a distribution. Returns ErrDuplicateDistribution when the
	// statement already has one.
	Create(ctx context.Context, distribution *entity.Distribution) error

	// FindByID retrieves a distribution. Returns ErrDistributionNotFound when missing.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Distribution, error)

	// FindByIDForUpdate retrieves a distribution and locks its row.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Distribution, error)

	// ExistsForStatement reports whether a statement already has a distribution.
	ExistsForStatement(ctx context.Context, statementID uuid.UUID) (bool, error)

	// CountDeclaredByProperty counts a property's DECLARED and PAID distributions.
	CountDeclaredByProperty(ctx context.Context, propertyID uuid.UUID) (int64, error)

	// Update saves changes to a distribution.
	Update(ctx context.Context, distribution *entity.Distribution) error

	// Delete removes a distribution and its payouts.
	Delete(ctx context.Context, id uuid.UUID) error
}

// PayoutRepository defines the interface for payout persistence operations.
type PayoutRepository interface {
	// CreateBatch inserts the payouts of a draft.
	CreateBatch(ctx context.Context, payouts []*entity.Payout) error

	// FindByID retrieves a payout. Returns ErrPayoutNotFound when missing.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payout, error)

	// FindByIDForUpdate retrieves a payout and locks its row.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Payout, error)

	// ListByDistribution returns the payouts of a distribution ordered by user id.
	ListByDistribution(ctx context.Context, distributionID uuid.UUID) ([]*entity.Payout, error)

	// Update saves changes to a payout.
	Update(ctx context.Context, payout *entity.Payout) error

	// CountUnpaid returns the number of payouts of a distribution not yet PAID.
	CountUnpaid(ctx context.Context, distributionID uuid.UUID) (int64, error)
}
