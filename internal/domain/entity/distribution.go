// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// DistributionStatus is the lifecycle state of a distribution.
type DistributionStatus string

const (
	DistributionStatusDraft    DistributionStatus = "DRAFT"
	DistributionStatusApproved DistributionStatus = "APPROVED"
	DistributionStatusDeclared DistributionStatus = "DECLARED"
	DistributionStatusPaid     DistributionStatus = "PAID"
)

// distributionTransitions lists the legal forward moves. DRAFT to DECLARED
// is only allowed on the administrative bulk path.
var distributionTransitions = map[DistributionStatus][]DistributionStatus{
	DistributionStatusDraft:    {DistributionStatusApproved, DistributionStatusDeclared},
	DistributionStatusApproved: {DistributionStatusDeclared},
	DistributionStatusDeclared: {DistributionStatusPaid},
}

// CanTransitionTo reports whether moving from s to next is legal.
func (s DistributionStatus) CanTransitionTo(next DistributionStatus, bulkFastPath bool) bool {
	if s == DistributionStatusDraft && next == DistributionStatusDeclared && !bulkFastPath {
		return false
	}
	for _, allowed := range distributionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Distribution turns one rental statement into payouts for a property.
type Distribution struct {
	ID                uuid.UUID
	PropertyID        uuid.UUID
	RentalStatementID uuid.UUID
	Status            DistributionStatus
	TotalDistributed  decimal.Decimal
	Currency          string
	DeclaredAt        *time.Time
	PaidAt            *time.Time
	Warnings          []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewDistribution creates a draft distribution for a statement.
func NewDistribution(propertyID, statementID uuid.UUID, total decimal.Decimal, currency string) *Distribution {
	now := time.Now().UTC()
	return &Distribution{
		ID:                uuid.New(),
		PropertyID:        propertyID,
		RentalStatementID: statementID,
		Status:            DistributionStatusDraft,
		TotalDistributed:  total,
		Currency:          currency,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// IsEditable reports whether payouts may still be recomputed or discarded.
func (d *Distribution) IsEditable() bool {
	return d.Status == DistributionStatusDraft || d.Status == DistributionStatusApproved
}

// Approve moves a draft to approved.
func (d *Distribution) Approve() error {
	return d.transition(DistributionStatusApproved, false)
}

// Declare moves the distribution to declared and stamps DeclaredAt.
func (d *Distribution) Declare(now time.Time, bulkFastPath bool) error {
	if d.Status == DistributionStatusDeclared || d.Status == DistributionStatusPaid {
		return domainerror.ErrAlreadyDeclared
	}
	if err := d.transition(DistributionStatusDeclared, bulkFastPath); err != nil {
		return err
	}
	d.DeclaredAt = &now
	return nil
}

// MarkPaid moves a declared distribution to paid. PAID is terminal.
func (d *Distribution) MarkPaid(now time.Time) error {
	if err := d.transition(DistributionStatusPaid, false); err != nil {
		return err
	}
	d.PaidAt = &now
	return nil
}

// AddWarning records a consistency warning once.
func (d *Distribution) AddWarning(code string) {
	for _, w := range d.Warnings {
		if w == code {
			return
		}
	}
	d.Warnings = append(d.Warnings, code)
}

func (d *Distribution) transition(next DistributionStatus, bulkFastPath bool) error {
	if !d.Status.CanTransitionTo(next, bulkFastPath) {
		return domainerror.ErrInvalidDistributionTransition
	}
	d.Status = next
	d.UpdatedAt = time.Now().UTC()
	return nil
}
