// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/domain/valueobject"
)

// InvestmentStatus represents the lifecycle of a share purchase.
type InvestmentStatus string

const (
	InvestmentStatusPending   InvestmentStatus = "PENDING"
	InvestmentStatusConfirmed InvestmentStatus = "CONFIRMED"
	InvestmentStatusCancelled InvestmentStatus = "CANCELLED"
)

// Investment is a user's holding of shares in a property.
// The price per share is captured at purchase time and never changes.
type Investment struct {
	ID                      uuid.UUID
	UserID                  uuid.UUID
	PropertyID              uuid.UUID
	Shares                  int64
	PricePerShareAtPurchase decimal.Decimal
	TotalAmount             decimal.Decimal
	Currency                string
	Status                  InvestmentStatus
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// NewInvestment creates a confirmed investment priced at the property's current share price.
func NewInvestment(userID uuid.UUID, property *Property, shares int64) *Investment {
	now := time.Now().UTC()
	total := valueobject.NewMoney(property.PricePerShare, property.Currency).
		Mul(decimal.NewFromInt(shares)).
		Round()

	return &Investment{
		ID:                      uuid.New(),
		UserID:                  userID,
		PropertyID:              property.ID,
		Shares:                  shares,
		PricePerShareAtPurchase: property.PricePerShare,
		TotalAmount:             total.Amount(),
		Currency:                property.Currency,
		Status:                  InvestmentStatusConfirmed,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
}

// Confirm moves a pending investment to confirmed.
func (i *Investment) Confirm() error {
	if i.Status != InvestmentStatusPending {
		return domainerror.ErrInvalidInvestmentTransition
	}
	i.Status = InvestmentStatusConfirmed
	i.UpdatedAt = time.Now().UTC()
	return nil
}

// Cancel moves a pending or confirmed investment to cancelled.
func (i *Investment) Cancel() error {
	if i.Status == InvestmentStatusCancelled {
		return domainerror.ErrInvalidInvestmentTransition
	}
	i.Status = InvestmentStatusCancelled
	i.UpdatedAt = time.Now().UTC()
	return nil
}

// Holding is the total of confirmed shares a user holds in a property.
type Holding struct {
	UserID uuid.UUID
	Shares int64
}
