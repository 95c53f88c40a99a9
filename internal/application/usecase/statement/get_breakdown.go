package statement

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/domain/valueobject"
)

// GetBreakdownOutput is the pro-rated report of a statement. Figures are
// for reporting only and never feed a payout.
type GetBreakdownOutput struct {
	Statement    *entity.RentalStatement
	PeriodDays   int
	Months       []valueobject.MonthShare
	MonthlyGross decimal.Decimal
	MonthlyNet   decimal.Decimal
}

// GetBreakdownUseCase pro-rates a statement per calendar month.
type GetBreakdownUseCase struct {
	uow adapter.UnitOfWork
}

// NewGetBreakdownUseCase creates a new GetBreakdownUseCase instance.
func NewGetBreakdownUseCase(uow adapter.UnitOfWork) *GetBreakdownUseCase {
	return &GetBreakdownUseCase{
		uow: uow,
	}
}

// Execute builds the breakdown.
func (uc *GetBreakdownUseCase) Execute(ctx context.Context, statementID uuid.UUID) (*GetBreakdownOutput, error) {
	stmt, err := uc.uow.Repositories().Statements.FindByID(ctx, statementID)
	if err != nil {
		if errors.Is(err, domainerror.ErrStatementNotFound) {
			return nil, domainerror.NewStatementError(
				domainerror.ErrCodeStatementNotFound,
				"rental statement not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to load rental statement: %w", err)
	}

	return &GetBreakdownOutput{
		Statement:    stmt,
		PeriodDays:   valueobject.PeriodDays(stmt.PeriodStart, stmt.PeriodEnd),
		Months:       valueobject.MonthlyBreakdown(stmt.PeriodStart, stmt.PeriodEnd),
		MonthlyGross: valueobject.ProrateToMonthly(stmt.GrossRevenue, stmt.PeriodStart, stmt.PeriodEnd),
		MonthlyNet:   valueobject.ProrateToMonthly(stmt.NetDistributable, stmt.PeriodStart, stmt.PeriodEnd),
	}, nil
}
