package property

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/application/usecase/distribution"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/infra/db/dbtest"
)

func propertyErrorCode(err error) domainerror.PropertyErrorCode {
	var propErr *domainerror.PropertyError
	if errors.As(err, &propErr) {
		return propErr.Code
	}
	return ""
}

func TestCreateProperty(t *testing.T) {
	uc := NewCreatePropertyUseCase(dbtest.NewUnitOfWork(t), "NGN")

	tests := []struct {
		name     string
		input    CreatePropertyInput
		wantCode domainerror.PropertyErrorCode
	}{
		{
			name:  "valid with default currency",
			input: CreatePropertyInput{Name: " Lekki Court ", TotalShares: 1000, PricePerShare: decimal.RequireFromString("250.50")},
		},
		{
			name:  "valid usd",
			input: CreatePropertyInput{Name: "Austin Duplex", TotalShares: 10, PricePerShare: decimal.NewFromInt(100), Currency: "usd"},
		},
		{
			name:     "blank name",
			input:    CreatePropertyInput{Name: "  ", TotalShares: 10, PricePerShare: decimal.NewFromInt(1)},
			wantCode: domainerror.ErrCodeInvalidPropertyName,
		},
		{
			name:     "no shares",
			input:    CreatePropertyInput{Name: "A", TotalShares: 0, PricePerShare: decimal.NewFromInt(1)},
			wantCode: domainerror.ErrCodeInvalidTotalShares,
		},
		{
			name:     "free shares",
			input:    CreatePropertyInput{Name: "A", TotalShares: 10, PricePerShare: decimal.Zero},
			wantCode: domainerror.ErrCodeInvalidPricePerShare,
		},
		{
			name:     "sub-kobo price",
			input:    CreatePropertyInput{Name: "A", TotalShares: 10, PricePerShare: decimal.RequireFromString("1.005")},
			wantCode: domainerror.ErrCodeInvalidPricePerShare,
		},
		{
			name:     "unknown currency",
			input:    CreatePropertyInput{Name: "A", TotalShares: 10, PricePerShare: decimal.NewFromInt(1), Currency: "ABC"},
			wantCode: domainerror.ErrCodeInvalidCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := uc.Execute(context.Background(), tt.input)
			if tt.wantCode != "" {
				if got := propertyErrorCode(err); got != tt.wantCode {
					t.Fatalf("expected %s, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			if p.Status != entity.PropertyStatusOpen || p.Name == "" || p.Currency == "" {
				t.Errorf("unexpected property %+v", p)
			}
		})
	}
}

func TestSetPropertyStatus(t *testing.T) {
	ctx := context.Background()
	uow := dbtest.NewUnitOfWork(t)
	p := dbtest.Property(t, uow, 10, "1.00")
	uc := NewSetPropertyStatusUseCase(uow)

	updated, err := uc.Execute(ctx, SetPropertyStatusInput{PropertyID: p.ID, Status: entity.PropertyStatusClosed})
	if err != nil {
		t.Fatalf("close: %v", err)
	}
	if updated.IsOpen() {
		t.Error("expected property closed")
	}

	if _, err := uc.Execute(ctx, SetPropertyStatusInput{PropertyID: p.ID, Status: "ARCHIVED"}); propertyErrorCode(err) != domainerror.ErrCodeInvalidPropertyStatus {
		t.Errorf("expected invalid status, got %v", err)
	}
	if _, err := uc.Execute(ctx, SetPropertyStatusInput{PropertyID: uuid.New(), Status: entity.PropertyStatusOpen}); propertyErrorCode(err) != domainerror.ErrCodePropertyNotFound {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestDeleteProperty(t *testing.T) {
	ctx := context.Background()
	uow := dbtest.NewUnitOfWork(t)
	uc := NewDeletePropertyUseCase(uow)

	cancel := func(t *testing.T, inv *entity.Investment) {
		t.Helper()
		_ = inv.Cancel()
		if err := uow.Repositories().Investments.Update(ctx, inv); err != nil {
			t.Fatalf("cancel: %v", err)
		}
	}

	tests := []struct {
		name     string
		setup    func(t *testing.T) uuid.UUID
		wantCode domainerror.PropertyErrorCode
	}{
		{
			name: "confirmed shares",
			setup: func(t *testing.T) uuid.UUID {
				p := dbtest.Property(t, uow, 10, "1.00")
				dbtest.Investment(t, uow, uuid.New(), p, 3)
				return p.ID
			},
			wantCode: domainerror.ErrCodePropertyHasInvestments,
		},
		{
			name: "cancelled investment still on the ledger",
			setup: func(t *testing.T) uuid.UUID {
				p := dbtest.Property(t, uow, 10, "1.00")
				cancel(t, dbtest.Investment(t, uow, uuid.New(), p, 3))
				return p.ID
			},
			wantCode: domainerror.ErrCodePropertyHasLedgerEntries,
		},
		{
			name: "paid distribution after holders cancelled",
			setup: func(t *testing.T) uuid.UUID {
				p := dbtest.Property(t, uow, 10, "1.00")
				holder := dbtest.Investor(t, uow, entity.UserRoleInvestor, entity.KYCStatusApproved)
				inv := dbtest.Investment(t, uow, holder.ID, p, 4)
				stmt := dbtest.Statement(t, uow, p.ID, "100.00", "10.00", "5.00")

				draft, err := distribution.NewCreateDraftUseCase(uow, nil).Execute(ctx, distribution.CreateDraftInput{PropertyID: p.ID, RentalStatementID: stmt.ID})
				if err != nil {
					t.Fatalf("draft: %v", err)
				}
				validator := distribution.NewValidator(uow, decimal.RequireFromString("0.01"))
				if _, err := distribution.NewDeclareUseCase(uow, validator).Execute(ctx, distribution.DeclareInput{DistributionID: draft.Distribution.ID, BulkFastPath: true}); err != nil {
					t.Fatalf("declare: %v", err)
				}
				if _, err := distribution.NewSettleUseCase(uow).Execute(ctx, draft.Distribution.ID); err != nil {
					t.Fatalf("settle: %v", err)
				}
				cancel(t, inv)
				return p.ID
			},
			wantCode: domainerror.ErrCodePropertyHasDistributions,
		},
		{
			name:     "unknown property",
			setup:    func(t *testing.T) uuid.UUID { return uuid.New() },
			wantCode: domainerror.ErrCodePropertyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.setup(t)
			if err := uc.Execute(ctx, id); propertyErrorCode(err) != tt.wantCode {
				t.Fatalf("expected %s, got %v", tt.wantCode, err)
			}
			if tt.wantCode == domainerror.ErrCodePropertyNotFound {
				return
			}
			if _, err := uow.Repositories().Properties.FindByID(ctx, id); err != nil {
				t.Errorf("expected property to survive, got %v", err)
			}
		})
	}

	t.Run("unsold property cascades", func(t *testing.T) {
		p := dbtest.Property(t, uow, 10, "1.00")
		dbtest.Statement(t, uow, p.ID, "100.00", "10.00", "5.00")

		if err := uc.Execute(ctx, p.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if _, err := uow.Repositories().Properties.FindByID(ctx, p.ID); !errors.Is(err, domainerror.ErrPropertyNotFound) {
			t.Errorf("expected property gone, got %v", err)
		}
		statements, err := uow.Repositories().Statements.ListByProperty(ctx, p.ID)
		if err != nil || len(statements) != 0 {
			t.Errorf("expected statements to cascade, got %d %v", len(statements), err)
		}
	})
}

func TestListProperties_ReportsAvailability(t *testing.T) {
	uow := dbtest.NewUnitOfWork(t)
	p := dbtest.Property(t, uow, 50, "1.00")
	dbtest.Investment(t, uow, uuid.New(), p, 20)

	listings, err := NewListPropertiesUseCase(uow).Execute(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listings) != 1 || listings[0].AvailableShares != 30 {
		t.Errorf("unexpected listings %+v", listings)
	}
}
