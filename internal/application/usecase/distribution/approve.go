package distribution

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
)

// ApproveUseCase moves a DRAFT distribution to APPROVED.
type ApproveUseCase struct {
	uow adapter.UnitOfWork
}

// NewApproveUseCase creates a new ApproveUseCase instance.
func NewApproveUseCase(uow adapter.UnitOfWork) *ApproveUseCase {
	return &ApproveUseCase{
		uow: uow,
	}
}

// Execute approves the distribution.
func (uc *ApproveUseCase) Execute(ctx context.Context, distributionID uuid.UUID) (*entity.Distribution, error) {
	var approved *entity.Distribution
	err := uc.uow.Execute(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		dist, err := loadDistribution(ctx, repos.Distributions, distributionID, true)
		if err != nil {
			return err
		}

		if err := dist.Approve(); err != nil {
			return transitionError(dist, entity.DistributionStatusApproved, err)
		}
		if err := repos.Distributions.Update(ctx, dist); err != nil {
			return fmt.Errorf("failed to update distribution: %w", err)
		}
		approved = dist
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Distribution approved", "distribution_id", approved.ID)
	return approved, nil
}
