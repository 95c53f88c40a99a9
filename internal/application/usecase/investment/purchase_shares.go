package investment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/application/usecase/ledgerlock"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// PurchaseSharesInput represents the input for a share purchase.
type PurchaseSharesInput struct {
	UserID     uuid.UUID
	Email      string // used to create the investor profile on first purchase
	PropertyID uuid.UUID
	Shares     int64
}

// PurchaseSharesOutput represents the output of a share purchase.
type PurchaseSharesOutput struct {
	Investment      *entity.Investment
	Transaction     *entity.Transaction
	AvailableShares int64
}

// PurchaseSharesUseCase sells shares of a property without ever overselling it.
type PurchaseSharesUseCase struct {
	uow    adapter.UnitOfWork
	locker adapter.Locker
}

// NewPurchaseSharesUseCase creates a new PurchaseSharesUseCase instance.
// locker may be nil.
func NewPurchaseSharesUseCase(uow adapter.UnitOfWork, locker adapter.Locker) *PurchaseSharesUseCase {
	return &PurchaseSharesUseCase{
		uow:    uow,
		locker: locker,
	}
}

// Execute performs the purchase. The property row stays locked from the
// availability check until the investment and its ledger entry are committed.
func (uc *PurchaseSharesUseCase) Execute(ctx context.Context, input PurchaseSharesInput) (*PurchaseSharesOutput, error) {
	if input.Shares < 1 {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeInvalidShareCount,
			"share count must be at least 1",
			domainerror.ErrInvalidShareCount,
		)
	}
	if input.UserID == uuid.Nil || input.PropertyID == uuid.Nil {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeMissingPurchase,
			"user and property are required",
			nil,
		)
	}

	release := ledgerlock.AcquireBestEffort(ctx, uc.locker, ledgerlock.PropertyKey(input.PropertyID))
	defer release()

	var output *PurchaseSharesOutput
	err := uc.uow.Execute(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		property, err := repos.Properties.FindByIDForUpdate(ctx, input.PropertyID)
		if err != nil {
			return propertyNotFound(err)
		}

		if !property.IsOpen() {
			return domainerror.NewShareError(
				domainerror.ErrCodePropertyClosed,
				"property is closed for investment",
				domainerror.ErrPropertyClosed,
			)
		}

		available, err := AvailableShares(ctx, repos.Investments, property)
		if err != nil {
			return err
		}
		if input.Shares > available {
			return domainerror.NewShareError(
				domainerror.ErrCodeInsufficientShares,
				fmt.Sprintf("requested %d shares but only %d available", input.Shares, available),
				domainerror.ErrInsufficientShares,
			)
		}

		if err := ensureInvestorProfile(ctx, repos.Users, input.UserID, input.Email); err != nil {
			return err
		}

		inv := entity.NewInvestment(input.UserID, property, input.Shares)
		if err := repos.Investments.Create(ctx, inv); err != nil {
			return fmt.Errorf("failed to create investment: %w", err)
		}

		ledgerEntry := entity.NewInvestmentTransaction(inv)
		if err := repos.Transactions.Create(ctx, ledgerEntry); err != nil {
			return fmt.Errorf("failed to record investment transaction: %w", err)
		}

		output = &PurchaseSharesOutput{
			Investment:      inv,
			Transaction:     ledgerEntry,
			AvailableShares: available - input.Shares,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Shares purchased",
		"investment_id", output.Investment.ID,
		"property_id", input.PropertyID,
		"user_id", input.UserID,
		"shares", input.Shares,
		"total_amount", output.Investment.TotalAmount.String(),
	)

	return output, nil
}

// ensureInvestorProfile creates a default profile for a first-time buyer.
func ensureInvestorProfile(ctx context.Context, users adapter.UserRepository, userID uuid.UUID, email string) error {
	_, err := users.FindByID(ctx, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domainerror.ErrInvestorNotFound) {
		return fmt.Errorf("failed to load investor: %w", err)
	}
	if email == "" {
		return nil
	}

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	if err := users.Upsert(ctx, entity.NewUser(userID, email, name)); err != nil {
		return fmt.Errorf("failed to create investor profile: %w", err)
	}
	return nil
}
