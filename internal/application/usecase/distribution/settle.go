package distribution

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/application/usecase/wallet"
	"github.com/estateshare/backend/internal/domain/entity"
)

// SettleOutput reports a settled distribution.
type SettleOutput struct {
	Distribution *entity.Distribution
	Credited     int
}

// SettleUseCase credits every outstanding payout of a DECLARED
// distribution and moves it to PAID.
type SettleUseCase struct {
	uow adapter.UnitOfWork
}

// NewSettleUseCase creates a new SettleUseCase instance.
func NewSettleUseCase(uow adapter.UnitOfWork) *SettleUseCase {
	return &SettleUseCase{
		uow: uow,
	}
}

// Execute settles the distribution in one unit of work.
func (uc *SettleUseCase) Execute(ctx context.Context, distributionID uuid.UUID) (*SettleOutput, error) {
	var output *SettleOutput
	err := uc.uow.Execute(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		dist, err := loadDistribution(ctx, repos.Distributions, distributionID, true)
		if err != nil {
			return err
		}
		if !dist.Status.CanTransitionTo(entity.DistributionStatusPaid, false) {
			return transitionError(dist, entity.DistributionStatusPaid, nil)
		}

		payouts, err := repos.Payouts.ListByDistribution(ctx, dist.ID)
		if err != nil {
			return fmt.Errorf("failed to list payouts: %w", err)
		}

		now := time.Now().UTC()
		output = &SettleOutput{Distribution: dist}
		for _, p := range payouts {
			if p.Status == entity.PayoutStatusPaid {
				continue
			}
			locked, err := repos.Payouts.FindByIDForUpdate(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("failed to lock payout: %w", err)
			}
			if _, err := wallet.CreditPayout(ctx, repos, dist, locked, now); err != nil {
				return err
			}
			output.Credited++
		}

		// Nothing was outstanding, so no credit closed the distribution.
		if dist.Status == entity.DistributionStatusDeclared {
			if err := dist.MarkPaid(now); err != nil {
				return transitionError(dist, entity.DistributionStatusPaid, err)
			}
			if err := repos.Distributions.Update(ctx, dist); err != nil {
				return fmt.Errorf("failed to update distribution: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Distribution settled",
		"distribution_id", distributionID,
		"credited", output.Credited,
	)
	return output, nil
}
