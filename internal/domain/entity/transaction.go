// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionTypeInvestment TransactionType = "INVESTMENT"
	TransactionTypePayout     TransactionType = "PAYOUT"
)

// TransactionStatus represents whether a ledger entry counts toward the balance.
type TransactionStatus string

const (
	TransactionStatusPending TransactionStatus = "PENDING"
	TransactionStatusSettled TransactionStatus = "SETTLED"
)

// Transaction is an append-only ledger entry. Amount is always positive;
// the type decides the sign when computing a wallet balance. The only
// mutation ever applied is PENDING to SETTLED.
type Transaction struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Type         TransactionType
	Amount       decimal.Decimal
	Currency     string
	Reference    string
	Status       TransactionStatus
	InvestmentID *uuid.UUID
	PayoutID     *uuid.UUID
	SettledAt    *time.Time
	CreatedAt    time.Time
}

// InvestmentReference returns the ledger reference of an investment.
func InvestmentReference(investmentID uuid.UUID) string {
	return "INV-" + investmentID.String()
}

// PayoutReference returns the ledger reference of a payout.
// It is deterministic so a payout can never be booked twice.
func PayoutReference(payoutID uuid.UUID) string {
	return "PAYOUT-" + payoutID.String()
}

// NewInvestmentTransaction books the purchase of an investment. It settles immediately.
func NewInvestmentTransaction(inv *Investment) *Transaction {
	now := time.Now().UTC()
	id := inv.ID
	return &Transaction{
		ID:           uuid.New(),
		UserID:       inv.UserID,
		Type:         TransactionTypeInvestment,
		Amount:       inv.TotalAmount,
		Currency:     inv.Currency,
		Reference:    InvestmentReference(inv.ID),
		Status:       TransactionStatusSettled,
		InvestmentID: &id,
		SettledAt:    &now,
		CreatedAt:    now,
	}
}

// NewPayoutTransaction books a declared payout as pending until it is credited.
func NewPayoutTransaction(p *Payout) *Transaction {
	id := p.ID
	return &Transaction{
		ID:        uuid.New(),
		UserID:    p.UserID,
		Type:      TransactionTypePayout,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Reference: PayoutReference(p.ID),
		Status:    TransactionStatusPending,
		PayoutID:  &id,
		CreatedAt: time.Now().UTC(),
	}
}

// Settle moves a pending entry to settled.
func (t *Transaction) Settle(now time.Time) error {
	if t.Status == TransactionStatusSettled {
		return domainerror.ErrTransactionSettled
	}
	t.Status = TransactionStatusSettled
	t.SettledAt = &now
	return nil
}

// SignedAmount returns the entry's effect on a wallet balance.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeInvestment {
		return t.Amount.Neg()
	}
	return t.Amount
}
