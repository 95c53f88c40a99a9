// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/domain/entity"
)

// TransactionModel represents the append-only transactions ledger table.
type TransactionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type         string          `gorm:"type:varchar(12);not null;index"`
	Amount       decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	Currency     string          `gorm:"type:varchar(3);not null;default:'NGN'"`
	Reference    string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Status       string          `gorm:"type:varchar(10);not null;index"`
	InvestmentID *uuid.UUID      `gorm:"type:uuid;index"`
	PayoutID     *uuid.UUID      `gorm:"type:uuid;index"`
	SettledAt    sql.NullTime    `gorm:"type:timestamptz"`
	CreatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:           m.ID,
		UserID:       m.UserID,
		Type:         entity.TransactionType(m.Type),
		Amount:       m.Amount,
		Currency:     m.Currency,
		Reference:    m.Reference,
		Status:       entity.TransactionStatus(m.Status),
		InvestmentID: m.InvestmentID,
		PayoutID:     m.PayoutID,
		SettledAt:    timePtr(m.SettledAt),
		CreatedAt:    m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:           t.ID,
		UserID:       t.UserID,
		Type:         string(t.Type),
		Amount:       t.Amount,
		Currency:     t.Currency,
		Reference:    t.Reference,
		Status:       string(t.Status),
		InvestmentID: t.InvestmentID,
		PayoutID:     t.PayoutID,
		SettledAt:    nullTime(t.SettledAt),
		CreatedAt:    t.CreatedAt,
	}
}
