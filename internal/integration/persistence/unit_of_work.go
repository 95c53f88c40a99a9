// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"database/sql"
	"strings"

	"gorm.io/gorm"

	"github.com/estateshare/backend/internal/application/adapter"
)

// unitOfWork implements adapter.UnitOfWork with one gorm transaction per call.
type unitOfWork struct {
	db     *gorm.DB
	txOpts *sql.TxOptions
}

// NewUnitOfWork creates a unit of work. isolation is "read_committed",
// "serializable" or empty for the driver default.
func NewUnitOfWork(db *gorm.DB, isolation string) adapter.UnitOfWork {
	return &unitOfWork{
		db:     db,
		txOpts: txOptions(isolation),
	}
}

// Execute runs fn inside a transaction with repositories bound to it.
func (u *unitOfWork) Execute(ctx context.Context, fn func(ctx context.Context, repos adapter.Repositories) error) error {
	run := func(tx *gorm.DB) error {
		return fn(ctx, NewRepositories(tx))
	}
	if u.txOpts == nil {
		return u.db.WithContext(ctx).Transaction(run)
	}
	return u.db.WithContext(ctx).Transaction(run, u.txOpts)
}

// Repositories returns repositories bound to the root connection pool.
func (u *unitOfWork) Repositories() adapter.Repositories {
	return NewRepositories(u.db)
}

// NewRepositories binds every repository to db.
func NewRepositories(db *gorm.DB) adapter.Repositories {
	return adapter.Repositories{
		Properties:    NewPropertyRepository(db),
		Investments:   NewInvestmentRepository(db),
		Statements:    NewRentalStatementRepository(db),
		Distributions: NewDistributionRepository(db),
		Payouts:       NewPayoutRepository(db),
		Transactions:  NewTransactionRepository(db),
		Users:         NewUserRepository(db),
		EmailQueue:    NewEmailQueueRepository(db),
	}
}

func txOptions(isolation string) *sql.TxOptions {
	switch strings.ToLower(isolation) {
	case "read_committed":
		return &sql.TxOptions{Isolation: sql.LevelReadCommitted}
	case "repeatable_read":
		return &sql.TxOptions{Isolation: sql.LevelRepeatableRead}
	case "serializable":
		return &sql.TxOptions{Isolation: sql.LevelSerializable}
	default:
		return nil
	}
}
