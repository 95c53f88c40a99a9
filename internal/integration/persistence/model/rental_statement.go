// Package model defines database models for persistence layer.
package model

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/domain/entity"
	"github.com/estateshare/backend/internal/domain/valueobject"
)

// RentalStatementModel represents the rental_statements table in the database.
type RentalStatementModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PropertyID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	PeriodStart      time.Time       `gorm:"type:date;not null"`
	PeriodEnd        time.Time       `gorm:"type:date;not null"`
	GrossRevenue     decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	OperatingCosts   decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	ManagementFee    decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	NetDistributable decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	CostBreakdown    string          `gorm:"type:jsonb;not null;default:'[]'"`
	Currency         string          `gorm:"type:varchar(3);not null;default:'NGN'"`
	CreatedAt        time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RentalStatementModel.
func (RentalStatementModel) TableName() string {
	return "rental_statements"
}

// ToEntity converts a RentalStatementModel to a domain RentalStatement entity.
func (m *RentalStatementModel) ToEntity() *entity.RentalStatement {
	var breakdown valueobject.CostBreakdown
	if m.CostBreakdown != "" {
		if err := json.Unmarshal([]byte(m.CostBreakdown), &breakdown); err != nil {
			slog.Warn("Failed to unmarshal cost breakdown", "error", err, "statement_id", m.ID)
		}
	}

	return &entity.RentalStatement{
		ID:               m.ID,
		PropertyID:       m.PropertyID,
		PeriodStart:      m.PeriodStart.UTC(),
		PeriodEnd:        m.PeriodEnd.UTC(),
		GrossRevenue:     m.GrossRevenue,
		OperatingCosts:   m.OperatingCosts,
		ManagementFee:    m.ManagementFee,
		NetDistributable: m.NetDistributable,
		CostBreakdown:    breakdown,
		Currency:         m.Currency,
		CreatedAt:        m.CreatedAt,
	}
}

// RentalStatementFromEntity creates a RentalStatementModel from a domain RentalStatement entity.
func RentalStatementFromEntity(s *entity.RentalStatement) *RentalStatementModel {
	breakdown := s.CostBreakdown
	if breakdown == nil {
		breakdown = valueobject.CostBreakdown{}
	}
	breakdownJSON, err := json.Marshal(breakdown)
	if err != nil {
		slog.Error("Failed to marshal cost breakdown", "error", err, "statement_id", s.ID)
		breakdownJSON = []byte("[]")
	}

	return &RentalStatementModel{
		ID:               s.ID,
		PropertyID:       s.PropertyID,
		PeriodStart:      s.PeriodStart,
		PeriodEnd:        s.PeriodEnd,
		GrossRevenue:     s.GrossRevenue,
		OperatingCosts:   s.OperatingCosts,
		ManagementFee:    s.ManagementFee,
		NetDistributable: s.NetDistributable,
		CostBreakdown:    string(breakdownJSON),
		Currency:         s.Currency,
		CreatedAt:        s.CreatedAt,
	}
}
