// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/domain/entity"
)

// InvestmentModel represents the investments table in the database.
type InvestmentModel struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID                  uuid.UUID       `gorm:"type:uuid;not null;index"`
	PropertyID              uuid.UUID       `gorm:"type:uuid;not null;index:idx_investments_property_status"`
	Shares                  int64           `gorm:"not null"`
	PricePerShareAtPurchase decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	TotalAmount             decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Currency                string          `gorm:"type:varchar(3);not null;default:'NGN'"`
	Status                  string          `gorm:"type:varchar(10);not null;index:idx_investments_property_status"`
	CreatedAt               time.Time       `gorm:"not null"`
	UpdatedAt               time.Time       `gorm:"not null"`
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() *entity.Investment {
	return &entity.Investment{
		ID:                      m.ID,
		UserID:                  m.UserID,
		PropertyID:              m.PropertyID,
		Shares:                  m.Shares,
		PricePerShareAtPurchase: m.PricePerShareAtPurchase,
		TotalAmount:             m.TotalAmount,
		Currency:                m.Currency,
		Status:                  entity.InvestmentStatus(m.Status),
		CreatedAt:               m.CreatedAt,
		UpdatedAt:               m.UpdatedAt,
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain Investment entity.
func InvestmentFromEntity(inv *entity.Investment) *InvestmentModel {
	return &InvestmentModel{
		ID:                      inv.ID,
		UserID:                  inv.UserID,
		PropertyID:              inv.PropertyID,
		Shares:                  inv.Shares,
		PricePerShareAtPurchase: inv.PricePerShareAtPurchase,
		TotalAmount:             inv.TotalAmount,
		Currency:                inv.Currency,
		Status:                  string(inv.Status),
		CreatedAt:               inv.CreatedAt,
		UpdatedAt:               inv.UpdatedAt,
	}
}
