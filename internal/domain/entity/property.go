// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PropertyStatus represents whether a property accepts new investments.
type PropertyStatus string

const (
	PropertyStatusOpen   PropertyStatus = "OPEN"
	PropertyStatusClosed PropertyStatus = "CLOSED"
)

// IsValid checks if the property status is a known value.
func (s PropertyStatus) IsValid() bool {
	return s == PropertyStatusOpen || s == PropertyStatusClosed
}

// Property is a real-estate asset divided into a fixed number of shares.
// Available shares are never stored; they are derived from confirmed investments.
type Property struct {
	ID            uuid.UUID
	Name          string
	TotalShares   int64
	PricePerShare decimal.Decimal
	Currency      string
	Status        PropertyStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewProperty creates a new open Property.
func NewProperty(name string, totalShares int64, pricePerShare decimal.Decimal, currency string) *Property {
	now := time.Now().UTC()
	return &Property{
		ID:            uuid.New(),
		Name:          name,
		TotalShares:   totalShares,
		PricePerShare: pricePerShare,
		Currency:      currency,
		Status:        PropertyStatusOpen,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// IsOpen reports whether the property accepts purchases.
func (p *Property) IsOpen() bool {
	return p.Status == PropertyStatusOpen
}
