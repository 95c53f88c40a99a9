// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// PayoutStatus represents the settlement state of a payout.
type PayoutStatus string

const (
	PayoutStatusPending PayoutStatus = "PENDING"
	PayoutStatusPaid    PayoutStatus = "PAID"
	PayoutStatusFailed  PayoutStatus = "FAILED"
)

// Payout is one investor's share of a distribution.
// SharesAtRecord and InvestorRole are frozen when the draft is created.
type Payout struct {
	ID             uuid.UUID
	DistributionID uuid.UUID
	UserID         uuid.UUID
	SharesAtRecord int64
	InvestorRole   UserRole
	Amount         decimal.Decimal
	Currency       string
	Status         PayoutStatus
	PaidAt         *time.Time
	TransactionID  *uuid.UUID
	FailureReason  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPayout creates a pending payout for a holder.
func NewPayout(distributionID, userID uuid.UUID, shares int64, role UserRole, amount decimal.Decimal, currency string) *Payout {
	now := time.Now().UTC()
	return &Payout{
		ID:             uuid.New(),
		DistributionID: distributionID,
		UserID:         userID,
		SharesAtRecord: shares,
		InvestorRole:   role,
		Amount:         amount,
		Currency:       currency,
		Status:         PayoutStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// EarnsIncome reports whether the payout's role takes part in the allocation.
// Underwriter-held shares are sponsor inventory and earn nothing.
func (p *Payout) EarnsIncome() bool {
	return p.InvestorRole != UserRoleUnderwriter
}

// MarkPaid settles a pending or failed payout against its ledger transaction.
func (p *Payout) MarkPaid(transactionID uuid.UUID, now time.Time) error {
	if p.Status == PayoutStatusPaid {
		return domainerror.ErrPayoutAlreadyPaid
	}
	p.Status = PayoutStatusPaid
	p.TransactionID = &transactionID
	p.PaidAt = &now
	p.FailureReason = ""
	p.UpdatedAt = now
	return nil
}

// MarkFailed records a failed payment attempt on a pending payout.
func (p *Payout) MarkFailed(reason string) error {
	if p.Status != PayoutStatusPending {
		return domainerror.ErrInvalidPayoutTransition
	}
	p.Status = PayoutStatusFailed
	p.FailureReason = reason
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// CloseWithoutTransfer marks a zero-amount payout PAID at declaration.
// Nothing is owed so no ledger entry backs it.
func (p *Payout) CloseWithoutTransfer(now time.Time) error {
	if p.Status != PayoutStatusPending || !p.Amount.IsZero() {
		return domainerror.ErrInvalidPayoutTransition
	}
	p.Status = PayoutStatusPaid
	p.PaidAt = &now
	p.UpdatedAt = now
	return nil
}
