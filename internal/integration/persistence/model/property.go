// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/domain/entity"
)

// PropertyModel represents the properties table in the database.
type PropertyModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	TotalShares   int64           `gorm:"not null"`
	PricePerShare decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'NGN'"`
	Status        string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PropertyModel.
func (PropertyModel) TableName() string {
	return "properties"
}

// ToEntity converts a PropertyModel to a domain Property entity.
func (m *PropertyModel) ToEntity() *entity.Property {
	return &entity.Property{
		ID:            m.ID,
		Name:          m.Name,
		TotalShares:   m.TotalShares,
		PricePerShare: m.PricePerShare,
		Currency:      m.Currency,
		Status:        entity.PropertyStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// PropertyFromEntity creates a PropertyModel from a domain Property entity.
func PropertyFromEntity(p *entity.Property) *PropertyModel {
	return &PropertyModel{
		ID:            p.ID,
		Name:          p.Name,
		TotalShares:   p.TotalShares,
		PricePerShare: p.PricePerShare,
		Currency:      p.Currency,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
