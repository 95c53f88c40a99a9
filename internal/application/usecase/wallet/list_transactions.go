package wallet

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
)

// ListTransactionsUseCase returns a user's statement of account.
type ListTransactionsUseCase struct {
	uow adapter.UnitOfWork
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(uow adapter.UnitOfWork) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		uow: uow,
	}
}

// Execute lists the user's ledger entries, newest first.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	entries, err := uc.uow.Repositories().Transactions.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return entries, nil
}
