// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/domain/entity"
)

// DistributionModel represents the distributions table in the database.
// The unique index on rental_statement_id guarantees one distribution per statement.
type DistributionModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PropertyID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	RentalStatementID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Status            string          `gorm:"type:varchar(10);not null;index"`
	TotalDistributed  decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Currency          string          `gorm:"type:varchar(3);not null;default:'NGN'"`
	DeclaredAt        sql.NullTime    `gorm:"type:timestamptz"`
	PaidAt            sql.NullTime    `gorm:"type:timestamptz"`
	Warnings          pq.StringArray  `gorm:"type:text[]"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the DistributionModel.
func (DistributionModel) TableName() string {
	return "distributions"
}

// ToEntity converts a DistributionModel to a domain Distribution entity.
func (m *DistributionModel) ToEntity() *entity.Distribution {
	return &entity.Distribution{
		ID:                m.ID,
		PropertyID:        m.PropertyID,
		RentalStatementID: m.RentalStatementID,
		Status:            entity.DistributionStatus(m.Status),
		TotalDistributed:  m.TotalDistributed,
		Currency:          m.Currency,
		DeclaredAt:        timePtr(m.DeclaredAt),
		PaidAt:            timePtr(m.PaidAt),
		Warnings:          []string(m.Warnings),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// DistributionFromEntity creates a DistributionModel from a domain Distribution entity.
func DistributionFromEntity(d *entity.Distribution) *DistributionModel {
	return &DistributionModel{
		ID:                d.ID,
		PropertyID:        d.PropertyID,
		RentalStatementID: d.RentalStatementID,
		Status:            string(d.Status),
		TotalDistributed:  d.TotalDistributed,
		Currency:          d.Currency,
		DeclaredAt:        nullTime(d.DeclaredAt),
		PaidAt:            nullTime(d.PaidAt),
		Warnings:          pq.StringArray(d.Warnings),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

// PayoutModel represents the payouts table in the database.
type PayoutModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DistributionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	SharesAtRecord int64           `gorm:"not null"`
	InvestorRole   string          `gorm:"type:varchar(20);not null"`
	Amount         decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Currency       string          `gorm:"type:varchar(3);not null;default:'NGN'"`
	Status         string          `gorm:"type:varchar(10);not null;index"`
	PaidAt         sql.NullTime    `gorm:"type:timestamptz"`
	TransactionID  *uuid.UUID      `gorm:"type:uuid"`
	FailureReason  string          `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PayoutModel.
func (PayoutModel) TableName() string {
	return "payouts"
}

// ToEntity converts a PayoutModel to a domain Payout entity.
func (m *PayoutModel) ToEntity() *entity.Payout {
	return &entity.Payout{
		ID:             m.ID,
		DistributionID: m.DistributionID,
		UserID:         m.UserID,
		SharesAtRecord: m.SharesAtRecord,
		InvestorRole:   entity.UserRole(m.InvestorRole),
		Amount:         m.Amount,
		Currency:       m.Currency,
		Status:         entity.PayoutStatus(m.Status),
		PaidAt:         timePtr(m.PaidAt),
		TransactionID:  m.TransactionID,
		FailureReason:  m.FailureReason,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// PayoutFromEntity creates a PayoutModel from a domain Payout entity.
func PayoutFromEntity(p *entity.Payout) *PayoutModel {
	return &PayoutModel{
		ID:             p.ID,
		DistributionID: p.DistributionID,
		UserID:         p.UserID,
		SharesAtRecord: p.SharesAtRecord,
		InvestorRole:   string(p.InvestorRole),
		Amount:         p.Amount,
		Currency:       p.Currency,
		Status:         string(p.Status),
		PaidAt:         nullTime(p.PaidAt),
		TransactionID:  p.TransactionID,
		FailureReason:  p.FailureReason,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
