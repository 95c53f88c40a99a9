package investment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
)

// ListInvestmentsUseCase returns an investor's portfolio.
type ListInvestmentsUseCase struct {
	uow adapter.UnitOfWork
}

// NewListInvestmentsUseCase creates a new ListInvestmentsUseCase instance.
func NewListInvestmentsUseCase(uow adapter.UnitOfWork) *ListInvestmentsUseCase {
	return &ListInvestmentsUseCase{
		uow: uow,
	}
}

// Execute lists the user's investments, newest first.
func (uc *ListInvestmentsUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*entity.Investment, error) {
	investments, err := uc.uow.Repositories().Investments.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	return investments, nil
}
