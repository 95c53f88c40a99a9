package distribution

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
)

// GetDistributionOutput is a distribution with its payouts.
type GetDistributionOutput struct {
	Distribution *entity.Distribution
	Payouts      []*entity.Payout
}

// GetDistributionUseCase handles distribution lookups.
type GetDistributionUseCase struct {
	uow adapter.UnitOfWork
}

// NewGetDistributionUseCase creates a new GetDistributionUseCase instance.
func NewGetDistributionUseCase(uow adapter.UnitOfWork) *GetDistributionUseCase {
	return &GetDistributionUseCase{
		uow: uow,
	}
}

// Execute returns the distribution and its payouts.
func (uc *GetDistributionUseCase) Execute(ctx context.Context, distributionID uuid.UUID) (*GetDistributionOutput, error) {
	repos := uc.uow.Repositories()

	dist, err := loadDistribution(ctx, repos.Distributions, distributionID, false)
	if err != nil {
		return nil, err
	}
	payouts, err := repos.Payouts.ListByDistribution(ctx, dist.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}

	return &GetDistributionOutput{
		Distribution: dist,
		Payouts:      payouts,
	}, nil
}
