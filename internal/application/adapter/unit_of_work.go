// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Repositories groups the repositories bound to one database handle.
// Inside UnitOfWork.Execute they all share the same transaction.
type Repositories struct {
	Properties    PropertyRepository
	Investments   InvestmentRepository
	Statements    RentalStatementRepository
	Distributions DistributionRepository
	Payouts       PayoutRepository
	Transactions  TransactionRepository
	Users         UserRepository
	EmailQueue    EmailQueueRepository
}

// UnitOfWork runs ledger operations atomically.
type UnitOfWork interface {
	// Execute runs fn in one database transaction. Any error returned by fn
	// rolls every write back.
	Execute(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error

	// Repositories returns repositories outside a transaction, for reads.
	Repositories() Repositories
}
