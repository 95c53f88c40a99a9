package statement

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
)

// ListStatementsUseCase lists a property's rental statements.
type ListStatementsUseCase struct {
	uow adapter.UnitOfWork
}

// NewListStatementsUseCase creates a new ListStatementsUseCase instance.
func NewListStatementsUseCase(uow adapter.UnitOfWork) *ListStatementsUseCase {
	return &ListStatementsUseCase{
		uow: uow,
	}
}

// Execute returns the statements ordered by period.
func (uc *ListStatementsUseCase) Execute(ctx context.Context, propertyID uuid.UUID) ([]*entity.RentalStatement, error) {
	statements, err := uc.uow.Repositories().Statements.ListByProperty(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rental statements: %w", err)
	}
	return statements, nil
}
