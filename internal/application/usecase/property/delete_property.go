package property

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// DeletePropertyUseCase removes a property that never reached the ledger.
// Its statements and undeclared distributions cascade.
type DeletePropertyUseCase struct {
	uow adapter.UnitOfWork
}

// NewDeletePropertyUseCase creates a new DeletePropertyUseCase instance.
func NewDeletePropertyUseCase(uow adapter.UnitOfWork) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{
		uow: uow,
	}
}

// Execute deletes the property.
func (uc *DeletePropertyUseCase) Execute(ctx context.Context, propertyID uuid.UUID) error {
	err := uc.uow.Execute(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		property, err := repos.Properties.FindByIDForUpdate(ctx, propertyID)
		if err != nil {
			return notFound(err)
		}

		sold, err := repos.Investments.SumConfirmedShares(ctx, property.ID)
		if err != nil {
			return fmt.Errorf("failed to sum confirmed shares: %w", err)
		}
		if sold > 0 {
			return domainerror.NewPropertyError(
				domainerror.ErrCodePropertyHasInvestments,
				fmt.Sprintf("property has %d shares under confirmed investments", sold),
				domainerror.ErrPropertyHasInvestments,
			)
		}

		declared, err := repos.Distributions.CountDeclaredByProperty(ctx, property.ID)
		if err != nil {
			return fmt.Errorf("failed to count declared distributions: %w", err)
		}
		if declared > 0 {
			return domainerror.NewPropertyError(
				domainerror.ErrCodePropertyHasDistributions,
				fmt.Sprintf("property has %d declared distributions", declared),
				domainerror.ErrPropertyHasDistributions,
			)
		}

		// Ledger rows are append-only and must keep their investment and payout.
		booked, err := repos.Transactions.ExistsForProperty(ctx, property.ID)
		if err != nil {
			return fmt.Errorf("failed to check ledger entries: %w", err)
		}
		if booked {
			return domainerror.NewPropertyError(
				domainerror.ErrCodePropertyHasLedgerEntries,
				"property has ledger entries",
				domainerror.ErrPropertyHasLedgerEntries,
			)
		}

		if err := repos.Properties.Delete(ctx, property.ID); err != nil {
			return fmt.Errorf("failed to delete property: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.Info("Property deleted", "property_id", propertyID)
	return nil
}
