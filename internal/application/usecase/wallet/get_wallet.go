package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/application/adapter"
	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/domain/valueobject"
)

// GetWalletInput represents a wallet lookup.
type GetWalletInput struct {
	UserID uuid.UUID
	// DisplayCurrency optionally converts the figures for display only.
	DisplayCurrency string
}

// DisplayAmounts are the wallet figures converted through the FX table.
type DisplayAmounts struct {
	Currency       string
	Balance        valueobject.Money
	PendingPayouts valueobject.Money
}

// GetWalletOutput is a user's wallet recomputed from the full ledger.
type GetWalletOutput struct {
	Balance        valueobject.Money
	PendingPayouts valueobject.Money
	Display        *DisplayAmounts
}

// GetWalletUseCase derives a wallet from transaction history. Nothing is
// cached, so the balance can never drift from the ledger.
type GetWalletUseCase struct {
	uow      adapter.UnitOfWork
	fx       *valueobject.FXTable
	currency string
}

// NewGetWalletUseCase creates a new GetWalletUseCase instance.
func NewGetWalletUseCase(uow adapter.UnitOfWork, fx *valueobject.FXTable, ledgerCurrency string) *GetWalletUseCase {
	return &GetWalletUseCase{
		uow:      uow,
		fx:       fx,
		currency: ledgerCurrency,
	}
}

// Balance returns the sum of payout entries minus the sum of investment
// entries. Declared payouts count before they settle.
func (uc *GetWalletUseCase) Balance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	totals, err := uc.uow.Repositories().Transactions.Totals(ctx, userID, uc.currency)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return totals.Balance(), nil
}

// Execute returns the wallet, optionally converted for display.
func (uc *GetWalletUseCase) Execute(ctx context.Context, input GetWalletInput) (*GetWalletOutput, error) {
	totals, err := uc.uow.Repositories().Transactions.Totals(ctx, input.UserID, uc.currency)
	if err != nil {
		return nil, fmt.Errorf("failed to sum transactions: %w", err)
	}

	output := &GetWalletOutput{
		Balance:        valueobject.NewMoney(totals.Balance(), uc.currency),
		PendingPayouts: valueobject.NewMoney(totals.PendingPayouts, uc.currency),
	}

	if input.DisplayCurrency == "" {
		return output, nil
	}

	display, err := valueobject.NormalizeCurrency(input.DisplayCurrency)
	if err != nil {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidWalletCurrency,
			fmt.Sprintf("unknown currency %q", input.DisplayCurrency),
			err,
		)
	}
	if uc.fx == nil {
		return nil, domainerror.NewWalletError(
			domainerror.ErrCodeInvalidWalletCurrency,
			"currency conversion is not configured",
			domainerror.ErrFXRateNotFound,
		)
	}

	balance, err := uc.fx.Convert(output.Balance, display)
	if err != nil {
		return nil, conversionError(display, err)
	}
	pending, err := uc.fx.Convert(output.PendingPayouts, display)
	if err != nil {
		return nil, conversionError(display, err)
	}

	output.Display = &DisplayAmounts{
		Currency:       display,
		Balance:        balance,
		PendingPayouts: pending,
	}
	return output, nil
}

func conversionError(currency string, err error) error {
	if errors.Is(err, domainerror.ErrFXRateNotFound) {
		return domainerror.NewWalletError(
			domainerror.ErrCodeInvalidWalletCurrency,
			fmt.Sprintf("no exchange rate to %s", currency),
			err,
		)
	}
	return fmt.Errorf("failed to convert wallet: %w", err)
}
