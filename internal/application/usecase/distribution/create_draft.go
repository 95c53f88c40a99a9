package distribution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/application/usecase/ledgerlock"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// CreateDraftInput represents the input for drafting a distribution.
type CreateDraftInput struct {
	PropertyID        uuid.UUID
	RentalStatementID uuid.UUID
}

// CreateDraftOutput represents the drafted distribution and its payouts.
type CreateDraftOutput struct {
	Distribution *entity.Distribution
	Payouts      []*entity.Payout
}

// CreateDraftUseCase turns a rental statement into a DRAFT distribution.
type CreateDraftUseCase struct {
	uow    adapter.UnitOfWork
	locker adapter.Locker
}

// NewCreateDraftUseCase creates a new CreateDraftUseCase instance.
func NewCreateDraftUseCase(uow adapter.UnitOfWork, locker adapter.Locker) *CreateDraftUseCase {
	return &CreateDraftUseCase{
		uow:    uow,
		locker: locker,
	}
}

// Execute drafts the distribution. The statement row is locked for the
// whole unit of work and the unique index on rental_statement_id backs the
// one-distribution-per-statement rule under any race.
func (uc *CreateDraftUseCase) Execute(ctx context.Context, input CreateDraftInput) (*CreateDraftOutput, error) {
	if input.PropertyID == uuid.Nil || input.RentalStatementID == uuid.Nil {
		return nil, domainerror.NewDistributionError(
			domainerror.ErrCodeMissingDistributionFields,
			"property_id and rental_statement_id are required",
			nil,
		)
	}

	release := ledgerlock.AcquireBestEffort(ctx, uc.locker, ledgerlock.StatementKey(input.RentalStatementID))
	defer release()

	var output *CreateDraftOutput
	err := uc.uow.Execute(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		stmt, err := loadStatement(ctx, repos.Statements, input.RentalStatementID, true)
		if err != nil {
			return err
		}

		if stmt.PropertyID != input.PropertyID {
			return domainerror.NewDistributionError(
				domainerror.ErrCodeInvalidStatement,
				"rental statement does not belong to the property",
				errors.Join(domainerror.ErrInvalidStatement, domainerror.ErrStatementPropertyMismatch),
			)
		}

		exists, err := repos.Distributions.ExistsForStatement(ctx, stmt.ID)
		if err != nil {
			return fmt.Errorf("failed to check existing distribution: %w", err)
		}
		if exists {
			return duplicateDistribution()
		}

		if err := checkStatement(stmt); err != nil {
			return err
		}

		property, err := repos.Properties.FindByID(ctx, input.PropertyID)
		if err != nil {
			if errors.Is(err, domainerror.ErrPropertyNotFound) {
				return domainerror.NewDistributionError(
					domainerror.ErrCodeDistributionPropertyNotFound,
					"property not found",
					err,
				)
			}
			return fmt.Errorf("failed to load property: %w", err)
		}
		if property.Currency != stmt.Currency {
			return domainerror.NewDistributionError(
				domainerror.ErrCodeDistributionCurrency,
				fmt.Sprintf("statement currency %s does not match property currency %s", stmt.Currency, property.Currency),
				domainerror.ErrCurrencyMismatch,
			)
		}

		holdings, err := repos.Investments.ConfirmedHoldings(ctx, property.ID)
		if err != nil {
			return fmt.Errorf("failed to snapshot holdings: %w", err)
		}

		holderIDs := make([]uuid.UUID, len(holdings))
		for i, h := range holdings {
			holderIDs[i] = h.UserID
		}
		users, err := repos.Users.FindByIDs(ctx, holderIDs)
		if err != nil {
			return fmt.Errorf("failed to load investors: %w", err)
		}

		dist := entity.NewDistribution(property.ID, stmt.ID, decimal.Zero, stmt.Currency)
		payouts := make([]*entity.Payout, len(holdings))
		for i, h := range holdings {
			payouts[i] = entity.NewPayout(dist.ID, h.UserID, h.Shares, currentRole(users, h.UserID), decimal.Zero, stmt.Currency)
		}

		total, err := allocatePayouts(stmt.Net(), payouts)
		if err != nil {
			return err
		}
		dist.TotalDistributed = total

		if err := repos.Distributions.Create(ctx, dist); err != nil {
			if errors.Is(err, domainerror.ErrDuplicateDistribution) {
				return duplicateDistribution()
			}
			return fmt.Errorf("failed to create distribution: %w", err)
		}
		if len(payouts) > 0 {
			if err := repos.Payouts.CreateBatch(ctx, payouts); err != nil {
				return fmt.Errorf("failed to create payouts: %w", err)
			}
		}

		output = &CreateDraftOutput{
			Distribution: dist,
			Payouts:      payouts,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Distribution drafted",
		"distribution_id", output.Distribution.ID,
		"property_id", input.PropertyID,
		"rental_statement_id", input.RentalStatementID,
		"payouts", len(output.Payouts),
		"total_distributed", output.Distribution.TotalDistributed.String(),
	)

	return output, nil
}

// checkStatement rejects statements whose figures cannot be distributed.
func checkStatement(stmt *entity.RentalStatement) error {
	if err := stmt.ValidatePeriod(); err != nil {
		return domainerror.NewDistributionError(
			domainerror.ErrCodeInvalidStatement,
			"statement period start must be before its end",
			errors.Join(domainerror.ErrInvalidStatement, err),
		)
	}
	if err := stmt.ValidateAmounts(); err != nil {
		return domainerror.NewDistributionError(
			domainerror.ErrCodeInvalidStatement,
			"statement amounts do not reconcile",
			errors.Join(domainerror.ErrInvalidStatement, err),
		)
	}
	if !stmt.NetDistributable.IsPositive() {
		return domainerror.NewDistributionError(
			domainerror.ErrCodeInvalidStatement,
			"net distributable must be positive",
			domainerror.ErrInvalidStatement,
		)
	}
	return nil
}

func duplicateDistribution() error {
	return domainerror.NewDistributionError(
		domainerror.ErrCodeDuplicateDistribution,
		"a distribution already exists for this rental statement",
		domainerror.ErrDuplicateDistribution,
	)
}
