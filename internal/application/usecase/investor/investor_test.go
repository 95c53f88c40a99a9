package investor

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/infra/db/dbtest"
)

func investorErrorCode(err error) domainerror.InvestorErrorCode {
	var invErr *domainerror.InvestorError
	if errors.As(err, &invErr) {
		return invErr.Code
	}
	return ""
}

func TestUpsertInvestor(t *testing.T) {
	ctx := context.Background()
	uow := dbtest.NewUnitOfWork(t)
	uc := NewUpsertInvestorUseCase(uow)
	id := uuid.New()

	tests := []struct {
		name     string
		input    UpsertInvestorInput
		wantCode domainerror.InvestorErrorCode
	}{
		{name: "bad email", input: UpsertInvestorInput{UserID: id, Email: "not-an-email", Name: "Ada"}, wantCode: domainerror.ErrCodeInvalidInvestorEmail},
		{name: "missing name", input: UpsertInvestorInput{UserID: id, Email: "ada@example.com", Name: " "}, wantCode: domainerror.ErrCodeInvalidInvestorName},
		{name: "create", input: UpsertInvestorInput{UserID: id, Email: " Ada@Example.com ", Name: "Ada"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			if got := investorErrorCode(err); got != tt.wantCode {
				t.Fatalf("expected %q, got %v", tt.wantCode, err)
			}
		})
	}

	if _, err := NewSetKYCStatusUseCase(uow).Execute(ctx, SetKYCStatusInput{UserID: id, Status: entity.KYCStatusApproved}); err != nil {
		t.Fatalf("approve kyc: %v", err)
	}

	refreshed, err := uc.Execute(ctx, UpsertInvestorInput{UserID: id, Email: "ada@lovelace.dev", Name: "Ada Lovelace"})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.Email != "ada@lovelace.dev" || refreshed.Name != "Ada Lovelace" {
		t.Errorf("expected profile refreshed, got %+v", refreshed)
	}
	if refreshed.KYCStatus != entity.KYCStatusApproved || refreshed.Role != entity.UserRoleInvestor {
		t.Errorf("expected role and kyc kept on refresh, got %+v", refreshed)
	}
}

func TestSetRoleAndKYC(t *testing.T) {
	ctx := context.Background()
	uow := dbtest.NewUnitOfWork(t)
	user := dbtest.Investor(t, uow, entity.UserRoleInvestor, entity.KYCStatusPending)

	updated, err := NewSetRoleUseCase(uow).Execute(ctx, SetRoleInput{UserID: user.ID, Role: entity.UserRoleUnderwriter})
	if err != nil {
		t.Fatalf("set role: %v", err)
	}
	if updated.Role != entity.UserRoleUnderwriter {
		t.Errorf("expected UNDERWRITER, got %s", updated.Role)
	}

	tests := []struct {
		name     string
		run      func() error
		wantCode domainerror.InvestorErrorCode
	}{
		{
			name: "unknown role",
			run: func() error {
				_, err := NewSetRoleUseCase(uow).Execute(ctx, SetRoleInput{UserID: user.ID, Role: "OWNER"})
				return err
			},
			wantCode: domainerror.ErrCodeInvalidInvestorRole,
		},
		{
			name: "unknown kyc status",
			run: func() error {
				_, err := NewSetKYCStatusUseCase(uow).Execute(ctx, SetKYCStatusInput{UserID: user.ID, Status: "MAYBE"})
				return err
			},
			wantCode: domainerror.ErrCodeInvalidKYCStatus,
		},
		{
			name: "missing investor",
			run: func() error {
				_, err := NewSetRoleUseCase(uow).Execute(ctx, SetRoleInput{UserID: uuid.New(), Role: entity.UserRoleAdmin})
				return err
			},
			wantCode: domainerror.ErrCodeInvestorNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := investorErrorCode(tt.run()); got != tt.wantCode {
				t.Errorf("expected %s, got %s", tt.wantCode, got)
			}
		})
	}
}
