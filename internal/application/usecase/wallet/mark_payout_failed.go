package wallet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// MarkPayoutFailedInput represents a failed external transfer.
type MarkPayoutFailedInput struct {
	PayoutID uuid.UUID
	Reason   string
}

// MarkPayoutFailedUseCase records that paying a payout failed. The payout
// can still be credited later.
type MarkPayoutFailedUseCase struct {
	uow adapter.UnitOfWork
}

// NewMarkPayoutFailedUseCase creates a new MarkPayoutFailedUseCase instance.
func NewMarkPayoutFailedUseCase(uow adapter.UnitOfWork) *MarkPayoutFailedUseCase {
	return &MarkPayoutFailedUseCase{
		uow: uow,
	}
}

// Execute moves the payout from PENDING to FAILED.
func (uc *MarkPayoutFailedUseCase) Execute(ctx context.Context, input MarkPayoutFailedInput) (*entity.Payout, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeMissingFailureReason,
			"a failure reason is required",
			nil,
		)
	}

	var failed *entity.Payout
	err := uc.uow.Execute(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		payout, err := repos.Payouts.FindByIDForUpdate(ctx, input.PayoutID)
		if err != nil {
			return payoutNotFound(err)
		}

		dist, err := repos.Distributions.FindByID(ctx, payout.DistributionID)
		if err != nil {
			return fmt.Errorf("failed to load distribution: %w", err)
		}
		if dist.Status != entity.DistributionStatusDeclared {
			return domainerror.NewWalletError(
				domainerror.ErrCodeDistributionNotDeclared,
				fmt.Sprintf("distribution is %s", dist.Status),
				domainerror.ErrDistributionNotDeclared,
			)
		}

		if err := payout.MarkFailed(reason); err != nil {
			return domainerror.NewWalletError(
				domainerror.ErrCodeInvalidPayoutTransition,
				fmt.Sprintf("payout is %s and cannot be marked failed", payout.Status),
				err,
			)
		}
		if err := repos.Payouts.Update(ctx, payout); err != nil {
			return fmt.Errorf("failed to update payout: %w", err)
		}
		failed = payout
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Warn("Payout marked failed",
		"payout_id", failed.ID,
		"user_id", failed.UserID,
		"reason", reason,
	)
	return failed, nil
}
