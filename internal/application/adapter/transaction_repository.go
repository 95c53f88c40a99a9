// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/domain/entity"
)

// WalletTotals aggregates a user's ledger history in one currency.
// PendingPayouts is the part of Payouts not yet settled.
type WalletTotals struct {
	Payouts        decimal.Decimal
	Investments    decimal.Decimal
	PendingPayouts decimal.Decimal
}

// Balance is every payout entry minus every investment entry.
func (t *WalletTotals) Balance() decimal.Decimal {
	return t.Payouts.Sub(t.Investments)
}

// TransactionRepository defines the interface for the append-only ledger.
// Rows are never deleted and the only update is PENDING to SETTLED.
type TransactionRepository interface {
	// Create appends an entry. Returns ErrDuplicateReference when the reference is taken.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByReference retrieves an entry. Returns ErrTransactionNotFound when missing.
	FindByReference(ctx context.Context, reference string) (*entity.Transaction, error)

	// MarkSettled settles a pending entry. Returns ErrTransactionSettled if it was already settled.
	MarkSettled(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser returns a user's entries, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// ExistsForProperty reports whether any entry references an investment
	// in the property or a payout of one of its distributions.
	ExistsForProperty(ctx context.Context, propertyID uuid.UUID) (bool, error)

	// Totals sums a user's full history in the given currency.
	Totals(ctx context.Context, userID uuid.UUID, currency string) (*WalletTotals, error)
}
