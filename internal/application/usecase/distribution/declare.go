package distribution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/application/usecase/notification"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// DeclareInput represents the input for declaring a distribution.
type DeclareInput struct {
	DistributionID uuid.UUID
	// BulkFastPath allows DRAFT to go straight to DECLARED.
	BulkFastPath bool
}

// DeclareOutput represents a declared distribution.
type DeclareOutput struct {
	Distribution *entity.Distribution
	Payouts      []*entity.Payout
	Transactions []*entity.Transaction
	Report       *ValidationReport
}

// DeclareUseCase declares a distribution and writes its payout ledger entries.
type DeclareUseCase struct {
	uow       adapter.UnitOfWork
	validator *Validator
}

// NewDeclareUseCase creates a new DeclareUseCase instance.
func NewDeclareUseCase(uow adapter.UnitOfWork, validator *Validator) *DeclareUseCase {
	return &DeclareUseCase{
		uow:       uow,
		validator: validator,
	}
}

// Execute declares the distribution. Status change, one PENDING PAYOUT
// transaction per owed payout and the outbox emails commit together, so a
// declaration can never run twice.
func (uc *DeclareUseCase) Execute(ctx context.Context, input DeclareInput) (*DeclareOutput, error) {
	var output *DeclareOutput
	err := uc.uow.Execute(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		dist, err := loadDistribution(ctx, repos.Distributions, input.DistributionID, true)
		if err != nil {
			return err
		}

		if dist.Status == entity.DistributionStatusDeclared || dist.Status == entity.DistributionStatusPaid {
			return transitionError(dist, entity.DistributionStatusDeclared, domainerror.ErrAlreadyDeclared)
		}
		if !dist.Status.CanTransitionTo(entity.DistributionStatusDeclared, input.BulkFastPath) {
			return transitionError(dist, entity.DistributionStatusDeclared, domainerror.ErrInvalidDistributionTransition)
		}

		payouts, err := repos.Payouts.ListByDistribution(ctx, dist.ID)
		if err != nil {
			return fmt.Errorf("failed to list payouts: %w", err)
		}

		report, err := uc.validator.evaluate(ctx, repos, dist, payouts)
		if err != nil {
			return err
		}
		if !report.IsValid {
			return &domainerror.DistributionError{
				Code:    domainerror.ErrCodeDistributionValidationFailed,
				Message: "distribution failed validation",
				Issues:  report.Errors,
				Err:     domainerror.ErrDistributionValidationFailed,
			}
		}

		now := time.Now().UTC()
		for _, w := range report.Warnings {
			dist.AddWarning(w)
		}
		if err := dist.Declare(now, input.BulkFastPath); err != nil {
			return transitionError(dist, entity.DistributionStatusDeclared, err)
		}

		property, err := repos.Properties.FindByID(ctx, dist.PropertyID)
		if err != nil {
			return fmt.Errorf("failed to load property: %w", err)
		}
		users, err := repos.Users.FindByIDs(ctx, payoutUserIDs(payouts))
		if err != nil {
			return fmt.Errorf("failed to load investors: %w", err)
		}

		entries := make([]*entity.Transaction, 0, len(payouts))
		for _, p := range payouts {
			if p.Amount.IsZero() {
				if err := p.CloseWithoutTransfer(now); err != nil {
					return fmt.Errorf("failed to close zero payout %s: %w", p.ID, err)
				}
			} else {
				entry := entity.NewPayoutTransaction(p)
				if err := repos.Transactions.Create(ctx, entry); err != nil {
					if errors.Is(err, domainerror.ErrDuplicateReference) {
						return domainerror.NewWalletError(
							domainerror.ErrCodeDuplicateReference,
							"payout transaction already exists",
							err,
						)
					}
					return fmt.Errorf("failed to record payout transaction: %w", err)
				}
				p.TransactionID = &entry.ID
				entries = append(entries, entry)

				if err := notification.EnqueuePayoutEmail(ctx, repos.EmailQueue, entity.TemplatePayoutDeclared, p, users[p.UserID], property); err != nil {
					return err
				}
			}

			if err := repos.Payouts.Update(ctx, p); err != nil {
				return fmt.Errorf("failed to update payout: %w", err)
			}
		}

		if err := repos.Distributions.Update(ctx, dist); err != nil {
			return fmt.Errorf("failed to update distribution: %w", err)
		}

		output = &DeclareOutput{
			Distribution: dist,
			Payouts:      payouts,
			Transactions: entries,
			Report:       report,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(output.Payouts) == 0 {
		slog.Warn("Distribution declared with zero payouts",
			"distribution_id", output.Distribution.ID,
			"property_id", output.Distribution.PropertyID,
		)
	}
	if len(output.Report.Warnings) > 0 {
		slog.Warn("Distribution declared with warnings",
			"distribution_id", output.Distribution.ID,
			"warnings", output.Report.Warnings,
		)
	}
	slog.Info("Distribution declared",
		"distribution_id", output.Distribution.ID,
		"bulk", input.BulkFastPath,
		"transactions", len(output.Transactions),
	)

	return output, nil
}
