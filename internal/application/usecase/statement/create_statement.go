// Package statement contains rental statement use cases.
package statement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/domain/valueobject"
)

// CreateStatementInput represents a rental statement submitted by an administrator.
type CreateStatementInput struct {
	PropertyID     uuid.UUID
	PeriodStart    time.Time
	PeriodEnd      time.Time
	GrossRevenue   decimal.Decimal
	OperatingCosts decimal.Decimal
	ManagementFee  decimal.Decimal
	// NetDistributable is checked against the recomputed net when given.
	NetDistributable *decimal.Decimal
	CostBreakdown    valueobject.CostBreakdown
	Currency         string
}

// CreateStatementUseCase records a rental statement.
type CreateStatementUseCase struct {
	uow adapter.UnitOfWork
}

// NewCreateStatementUseCase creates a new CreateStatementUseCase instance.
func NewCreateStatementUseCase(uow adapter.UnitOfWork) *CreateStatementUseCase {
	return &CreateStatementUseCase{
		uow: uow,
	}
}

// Execute validates and stores the statement. The net is always derived
// from gross revenue, costs and fee.
func (uc *CreateStatementUseCase) Execute(ctx context.Context, input CreateStatementInput) (*entity.RentalStatement, error) {
	repos := uc.uow.Repositories()

	property, err := repos.Properties.FindByID(ctx, input.PropertyID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPropertyNotFound) {
			return nil, domainerror.NewStatementError(
				domainerror.ErrCodeStatementPropertyNotFound,
				"property not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to load property: %w", err)
	}

	if input.Currency != "" {
		currency, err := valueobject.NormalizeCurrency(input.Currency)
		if err != nil || currency != property.Currency {
			return nil, domainerror.NewStatementError(
				domainerror.ErrCodeStatementCurrency,
				fmt.Sprintf("statement currency must be %s", property.Currency),
				domainerror.ErrCurrencyMismatch,
			)
		}
	}

	if err := input.CostBreakdown.Validate(property.Currency); err != nil {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeInvalidCostBreakdown,
			err.Error(),
			err,
		)
	}

	stmt := &entity.RentalStatement{
		ID:             uuid.New(),
		PropertyID:     property.ID,
		PeriodStart:    input.PeriodStart.UTC(),
		PeriodEnd:      input.PeriodEnd.UTC(),
		GrossRevenue:   input.GrossRevenue,
		OperatingCosts: input.OperatingCosts,
		ManagementFee:  input.ManagementFee,
		CostBreakdown:  input.CostBreakdown,
		Currency:       property.Currency,
		CreatedAt:      time.Now().UTC(),
	}
	stmt.NetDistributable = stmt.ComputedNet()
	if input.NetDistributable != nil && !input.NetDistributable.Equal(stmt.NetDistributable) {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeNetDistributableMismatch,
			fmt.Sprintf("net distributable %s does not match computed %s", input.NetDistributable, stmt.NetDistributable),
			domainerror.ErrNetDistributableMismatch,
		)
	}

	if err := stmt.ValidatePeriod(); err != nil {
		return nil, domainerror.NewStatementError(
			domainerror.ErrCodeInvalidStatementPeriod,
			"period start must be before period end",
			err,
		)
	}
	if err := validateAmounts(stmt); err != nil {
		return nil, err
	}

	if err := repos.Statements.Create(ctx, stmt); err != nil {
		return nil, fmt.Errorf("failed to create rental statement: %w", err)
	}

	slog.Info("Rental statement recorded",
		"rental_statement_id", stmt.ID,
		"property_id", stmt.PropertyID,
		"period_start", stmt.PeriodStart.Format(time.DateOnly),
		"period_end", stmt.PeriodEnd.Format(time.DateOnly),
		"net_distributable", stmt.NetDistributable.String(),
	)

	return stmt, nil
}

func validateAmounts(stmt *entity.RentalStatement) error {
	for _, amount := range []decimal.Decimal{stmt.GrossRevenue, stmt.OperatingCosts, stmt.ManagementFee} {
		if _, err := valueobject.NewMoney(amount, stmt.Currency).MinorUnits(); err != nil {
			return domainerror.NewStatementError(
				domainerror.ErrCodeNegativeStatementAmount,
				"statement amounts must be whole minor units",
				err,
			)
		}
	}

	err := stmt.ValidateAmounts()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domainerror.ErrNegativeStatementAmount):
		return domainerror.NewStatementError(domainerror.ErrCodeNegativeStatementAmount, "statement amounts must not be negative", err)
	case errors.Is(err, domainerror.ErrCostBreakdownMismatch):
		return domainerror.NewStatementError(domainerror.ErrCodeCostBreakdownMismatch, "cost breakdown must sum to operating costs", err)
	default:
		return domainerror.NewStatementError(domainerror.ErrCodeNetDistributableMismatch, "net distributable does not reconcile", err)
	}
}
