package distribution

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
)

// DiscardUseCase rolls back a DRAFT or APPROVED distribution, deleting it
// with its payouts so the statement can be drafted again.
type DiscardUseCase struct {
	uow adapter.UnitOfWork
}

// NewDiscardUseCase creates a new DiscardUseCase instance.
func NewDiscardUseCase(uow adapter.UnitOfWork) *DiscardUseCase {
	return &DiscardUseCase{
		uow: uow,
	}
}

// Execute discards the distribution.
func (uc *DiscardUseCase) Execute(ctx context.Context, distributionID uuid.UUID) error {
	var statementID uuid.UUID
	err := uc.uow.Execute(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		dist, err := loadDistribution(ctx, repos.Distributions, distributionID, true)
		if err != nil {
			return err
		}
		if !dist.IsEditable() {
			return notEditable(dist)
		}

		statementID = dist.RentalStatementID
		if err := repos.Distributions.Delete(ctx, dist.ID); err != nil {
			return fmt.Errorf("failed to delete distribution: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Distribution discarded",
		"distribution_id", distributionID,
		"rental_statement_id", statementID,
	)
	return nil
}
