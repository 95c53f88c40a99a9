// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/domain/valueobject"
)

// RentalStatement records the income and costs of a property for a period.
type RentalStatement struct {
	ID               uuid.UUID
	PropertyID       uuid.UUID
	PeriodStart      time.Time
	PeriodEnd        time.Time
	GrossRevenue     decimal.Decimal
	OperatingCosts   decimal.Decimal
	ManagementFee    decimal.Decimal
	NetDistributable decimal.Decimal
	CostBreakdown    valueobject.CostBreakdown
	Currency         string
	CreatedAt        time.Time
}

// ComputedNet returns gross revenue minus operating costs and management fee.
func (s *RentalStatement) ComputedNet() decimal.Decimal {
	return s.GrossRevenue.Sub(s.OperatingCosts).Sub(s.ManagementFee)
}

// ValidatePeriod checks that the period start is strictly before its end.
func (s *RentalStatement) ValidatePeriod() error {
	if !s.PeriodStart.Before(s.PeriodEnd) {
		return domainerror.ErrInvalidStatementPeriod
	}
	return nil
}

// ValidateAmounts checks that no amount is negative and that the stored net
// equals the recomputed one. The stored net is never trusted on its own.
func (s *RentalStatement) ValidateAmounts() error {
	if s.GrossRevenue.IsNegative() || s.OperatingCosts.IsNegative() || s.ManagementFee.IsNegative() {
		return domainerror.ErrNegativeStatementAmount
	}
	if !s.NetDistributable.Equal(s.ComputedNet()) {
		return domainerror.ErrNetDistributableMismatch
	}
	if len(s.CostBreakdown) > 0 && !s.CostBreakdown.Total().Equal(s.OperatingCosts) {
		return domainerror.ErrCostBreakdownMismatch
	}
	return nil
}

// Net returns the net distributable amount as Money.
func (s *RentalStatement) Net() valueobject.Money {
	return valueobject.NewMoney(s.NetDistributable, s.Currency)
}
