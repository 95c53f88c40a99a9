package investment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// CancelInvestmentInput represents an administrative correction of an investment.
type CancelInvestmentInput struct {
	InvestmentID uuid.UUID
	ActorID      uuid.UUID
	Reason       string
}

// CancelInvestmentUseCase cancels an investment and returns its shares to
// availability. Payouts already drafted keep their frozen share counts and
// no reversing ledger entry is written.
type CancelInvestmentUseCase struct {
	uow adapter.UnitOfWork
}

// NewCancelInvestmentUseCase creates a new CancelInvestmentUseCase instance.
func NewCancelInvestmentUseCase(uow adapter.UnitOfWork) *CancelInvestmentUseCase {
	return &CancelInvestmentUseCase{
		uow: uow,
	}
}

// Execute performs the cancellation.
func (uc *CancelInvestmentUseCase) Execute(ctx context.Context, input CancelInvestmentInput) (*entity.Investment, error) {
	var cancelled *entity.Investment
	var previous entity.InvestmentStatus

	err := uc.uow.Execute(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		inv, err := repos.Investments.FindByIDForUpdate(ctx, input.InvestmentID)
		if err != nil {
			if errors.Is(err, domainerror.ErrInvestmentNotFound) {
				return domainerror.NewShareError(
					domainerror.ErrCodeInvestmentNotFound,
					"investment not found",
					err,
				)
			}
			return fmt.Errorf("failed to load investment: %w", err)
		}

		previous = inv.Status
		if err := inv.Cancel(); err != nil {
			return domainerror.NewShareError(
				domainerror.ErrCodeInvalidInvestmentTransition,
				"investment is already cancelled",
				err,
			)
		}

		if err := repos.Investments.Update(ctx, inv); err != nil {
			return fmt.Errorf("failed to update investment: %w", err)
		}
		cancelled = inv
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Warn("Investment cancelled by administrative correction",
		"investment_id", cancelled.ID,
		"property_id", cancelled.PropertyID,
		"user_id", cancelled.UserID,
		"shares", cancelled.Shares,
		"previous_status", previous,
		"actor_id", input.ActorID,
		"reason", input.Reason,
	)

	return cancelled, nil
}
