package statement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/domain/valueobject"
	"github.com/estateshare/backend/internal/infra/db/dbtest"
)

func statementErrorCode(err error) domainerror.StatementErrorCode {
	var stmtErr *domainerror.StatementError
	if errors.As(err, &stmtErr) {
		return stmtErr.Code
	}
	return ""
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestCreateStatement(t *testing.T) {
	uow := dbtest.NewUnitOfWork(t)
	property := dbtest.Property(t, uow, 100, "10.00")
	uc := NewCreateStatementUseCase(uow)

	valid := func() CreateStatementInput {
		return CreateStatementInput{
			PropertyID:     property.ID,
			PeriodStart:    date(2024, time.January, 15),
			PeriodEnd:      date(2024, time.February, 10),
			GrossRevenue:   dec("5000.00"),
			OperatingCosts: dec("700.00"),
			ManagementFee:  dec("300.00"),
			CostBreakdown: valueobject.CostBreakdown{
				{Description: "Cleaning", Amount: dec("200.00")},
				{Description: "Repairs", Amount: dec("500.00")},
			},
		}
	}
	wrongNet := dec("4100.00")

	tests := []struct {
		name     string
		mutate   func(in *CreateStatementInput)
		wantCode domainerror.StatementErrorCode
	}{
		{name: "valid", mutate: func(in *CreateStatementInput) {}},
		{name: "matching declared net", mutate: func(in *CreateStatementInput) { n := dec("4000.00"); in.NetDistributable = &n }},
		{name: "unknown property", mutate: func(in *CreateStatementInput) { in.PropertyID = uuid.New() }, wantCode: domainerror.ErrCodeStatementPropertyNotFound},
		{name: "inverted period", mutate: func(in *CreateStatementInput) { in.PeriodEnd = in.PeriodStart }, wantCode: domainerror.ErrCodeInvalidStatementPeriod},
		{name: "negative fee", mutate: func(in *CreateStatementInput) { in.ManagementFee = dec("-1") }, wantCode: domainerror.ErrCodeNegativeStatementAmount},
		{name: "untrusted net", mutate: func(in *CreateStatementInput) { in.NetDistributable = &wrongNet }, wantCode: domainerror.ErrCodeNetDistributableMismatch},
		{name: "breakdown does not add up", mutate: func(in *CreateStatementInput) { in.CostBreakdown[0].Amount = dec("100.00") }, wantCode: domainerror.ErrCodeCostBreakdownMismatch},
		{name: "breakdown item without description", mutate: func(in *CreateStatementInput) { in.CostBreakdown[0].Description = "" }, wantCode: domainerror.ErrCodeInvalidCostBreakdown},
		{name: "other currency", mutate: func(in *CreateStatementInput) { in.Currency = "USD" }, wantCode: domainerror.ErrCodeStatementCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid()
			tt.mutate(&input)

			stmt, err := uc.Execute(context.Background(), input)
			if tt.wantCode != "" {
				if got := statementErrorCode(err); got != tt.wantCode {
					t.Fatalf("expected %s, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if !stmt.NetDistributable.Equal(dec("4000")) || stmt.Currency != "NGN" {
				t.Errorf("unexpected statement %+v", stmt)
			}
		})
	}

	t.Run("breakdown survives a round trip", func(t *testing.T) {
		statements, err := NewListStatementsUseCase(uow).Execute(context.Background(), property.ID)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(statements) != 2 {
			t.Fatalf("expected 2 stored statements, got %d", len(statements))
		}
		if len(statements[0].CostBreakdown) != 2 || statements[0].CostBreakdown[1].Description != "Repairs" {
			t.Errorf("unexpected breakdown %+v", statements[0].CostBreakdown)
		}
	})
}

func TestGetBreakdown(t *testing.T) {
	uow := dbtest.NewUnitOfWork(t)
	property := dbtest.Property(t, uow, 100, "10.00")
	stmt, err := NewCreateStatementUseCase(uow).Execute(context.Background(), CreateStatementInput{
		PropertyID:     property.ID,
		PeriodStart:    date(2024, time.January, 15),
		PeriodEnd:      date(2024, time.February, 10),
		GrossRevenue:   dec("2700.00"),
		OperatingCosts: dec("0"),
		ManagementFee:  dec("0"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := NewGetBreakdownUseCase(uow).Execute(context.Background(), stmt.ID)
	if err != nil {
		t.Fatalf("breakdown: %v", err)
	}
	if out.PeriodDays != 27 || len(out.Months) != 2 {
		t.Fatalf("unexpected breakdown %+v", out)
	}
	if out.Months[0].DaysInPeriod != 17 || out.Months[1].DaysInPeriod != 10 || out.Months[1].DaysInMonth != 29 {
		t.Errorf("unexpected months %+v", out.Months)
	}
	if !out.MonthlyGross.Equal(dec("3044")) {
		t.Errorf("expected 3044.00 per month, got %s", out.MonthlyGross)
	}

	if _, err := NewGetBreakdownUseCase(uow).Execute(context.Background(), uuid.New()); statementErrorCode(err) != domainerror.ErrCodeStatementNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}
