// Package wallet contains the transaction ledger and wallet use cases.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/application/usecase/notification"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// CreditPayout settles one payout inside an open unit of work. The caller
// must hold the distribution row lock. When it was the last unpaid payout
// the distribution moves to PAID.
func CreditPayout(ctx context.Context, repos adapter.Repositories, dist *entity.Distribution, payout *entity.Payout, now time.Time) (*entity.Transaction, error) {
	if payout.Status == entity.PayoutStatusPaid {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodePayoutAlreadyPaid,
			"payout is already paid",
			domainerror.ErrPayoutAlreadyPaid,
		)
	}
	if dist.Status != entity.DistributionStatusDeclared {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeDistributionNotDeclared,
			fmt.Sprintf("distribution is %s, payouts can only be credited once declared", dist.Status),
			domainerror.ErrDistributionNotDeclared,
		)
	}

	entry, err := repos.Transactions.FindByReference(ctx, entity.PayoutReference(payout.ID))
	switch {
	case errors.Is(err, domainerror.ErrTransactionNotFound):
		entry = entity.NewPayoutTransaction(payout)
		if err := repos.Transactions.Create(ctx, entry); err != nil {
			return nil, fmt.Errorf("failed to record payout transaction: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to load payout transaction: %w", err)
	}

	if err := entry.Settle(now); err != nil {
		return nil, settledError(err)
	}
	if err := repos.Transactions.MarkSettled(ctx, entry); err != nil {
		return nil, settledError(err)
	}

	if err := payout.MarkPaid(entry.ID, now); err != nil {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodePayoutAlreadyPaid,
			"payout is already paid",
			err,
		)
	}
	if err := repos.Payouts.Update(ctx, payout); err != nil {
		return nil, fmt.Errorf("failed to update payout: %w", err)
	}

	unpaid, err := repos.Payouts.CountUnpaid(ctx, dist.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unpaid payouts: %w", err)
	}
	if unpaid == 0 {
		if err := dist.MarkPaid(now); err != nil {
			return nil, fmt.Errorf("failed to close distribution: %w", err)
		}
		if err := repos.Distributions.Update(ctx, dist); err != nil {
			return nil, fmt.Errorf("failed to update distribution: %w", err)
		}
	}

	if err := queueCreditedEmail(ctx, repos, dist, payout); err != nil {
		return nil, err
	}

	return entry, nil
}

func queueCreditedEmail(ctx context.Context, repos adapter.Repositories, dist *entity.Distribution, payout *entity.Payout) error {
	user, err := repos.Users.FindByID(ctx, payout.UserID)
	if errors.Is(err, domainerror.ErrInvestorNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load investor: %w", err)
	}

	property, err := repos.Properties.FindByID(ctx, dist.PropertyID)
	if err != nil {
		return fmt.Errorf("failed to load property: %w", err)
	}

	return notification.EnqueuePayoutEmail(ctx, repos.EmailQueue, entity.TemplatePayoutCredited, payout, user, property)
}

func settledError(err error) error {
	if errors.Is(err, domainerror.ErrTransactionSettled) {
		return domainerror.NewWalletError(
			domainerror.ErrCodeTransactionSettled,
			"payout transaction is already settled",
			err,
		)
	}
	return fmt.Errorf("failed to settle payout transaction: %w", err)
}

func payoutNotFound(err error) error {
	if errors.Is(err, domainerror.ErrPayoutNotFound) {
		return domainerror.NewWalletError(
			domainerror.ErrCodeWalletPayoutNotFound,
			"payout not found",
			err,
		)
	}
	return fmt.Errorf("failed to load payout: %w", err)
}
