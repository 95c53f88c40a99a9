package wallet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
)

// CreditWalletOutput represents a credited payout.
type CreditWalletOutput struct {
	Payout       *entity.Payout
	Transaction  *entity.Transaction
	Distribution *entity.Distribution
}

// CreditWalletUseCase marks a payout PAID by crediting the investor's wallet.
type CreditWalletUseCase struct {
	uow adapter.UnitOfWork
}

// NewCreditWalletUseCase creates a new CreditWalletUseCase instance.
func NewCreditWalletUseCase(uow adapter.UnitOfWork) *CreditWalletUseCase {
	return &CreditWalletUseCase{
		uow: uow,
	}
}

// Execute credits the payout. The distribution row is locked before the
// payout row, the same order settlement uses.
func (uc *CreditWalletUseCase) Execute(ctx context.Context, payoutID uuid.UUID) (*CreditWalletOutput, error) {
	var output *CreditWalletOutput
	err := uc.uow.Execute(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		ref, err := repos.Payouts.FindByID(ctx, payoutID)
		if err != nil {
			return payoutNotFound(err)
		}

		dist, err := repos.Distributions.FindByIDForUpdate(ctx, ref.DistributionID)
		if err != nil {
			return fmt.Errorf("failed to load distribution: %w", err)
		}
		payout, err := repos.Payouts.FindByIDForUpdate(ctx, payoutID)
		if err != nil {
			return payoutNotFound(err)
		}

		entry, err := CreditPayout(ctx, repos, dist, payout, time.Now().UTC())
		if err != nil {
			return err
		}

		output = &CreditWalletOutput{
			Payout:       payout,
			Transaction:  entry,
			Distribution: dist,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Wallet credited",
		"payout_id", payoutID,
		"user_id", output.Payout.UserID,
		"amount", output.Payout.Amount.String(),
		"distribution_status", output.Distribution.Status,
	)
	return output, nil
}
