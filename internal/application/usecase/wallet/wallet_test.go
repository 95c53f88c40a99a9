package wallet_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/config"
	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/application/usecase/distribution"
	"github.com/estateshare/backend/internal/application/usecase/wallet"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/domain/valueobject"
	"github.com/estateshare/backend/internal/infra/db/dbtest"
)

func walletErrorCode(err error) domainerror.WalletErrorCode {
	var walletErr *domainerror.WalletError
	if errors.As(err, &walletErr) {
		return walletErr.Code
	}
	return ""
}

// draftFor creates a draft distributing 1000.00 to one holder of 100 of
// 100 shares priced 20.00.
func draftFor(t *testing.T, uow adapter.UnitOfWork) (*entity.User, *distribution.CreateDraftOutput) {
	t.Helper()
	property := dbtest.Property(t, uow, 100, "20.00")
	holder := dbtest.Investor(t, uow, entity.UserRoleInvestor, entity.KYCStatusApproved)
	dbtest.Investment(t, uow, holder.ID, property, 100)
	stmt := dbtest.Statement(t, uow, property.ID, "1300.00", "200.00", "100.00")

	draft, err := distribution.NewCreateDraftUseCase(uow, nil).Execute(context.Background(), distribution.CreateDraftInput{
		PropertyID:        property.ID,
		RentalStatementID: stmt.ID,
	})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	return holder, draft
}

func declare(t *testing.T, uow adapter.UnitOfWork, id uuid.UUID) {
	t.Helper()
	validator := distribution.NewValidator(uow, decimal.RequireFromString("0.01"))
	if _, err := distribution.NewDeclareUseCase(uow, validator).Execute(context.Background(), distribution.DeclareInput{DistributionID: id, BulkFastPath: true}); err != nil {
		t.Fatalf("declare: %v", err)
	}
}

func TestCreditWallet(t *testing.T) {
	ctx := context.Background()
	uow := dbtest.NewUnitOfWork(t)
	holder, draft := draftFor(t, uow)
	payoutID := draft.Payouts[0].ID
	credit := wallet.NewCreditWalletUseCase(uow)

	if _, err := credit.Execute(ctx, payoutID); walletErrorCode(err) != domainerror.ErrCodeDistributionNotDeclared {
		t.Fatalf("expected undeclared distribution to be rejected, got %v", err)
	}
	if _, err := credit.Execute(ctx, uuid.New()); walletErrorCode(err) != domainerror.ErrCodeWalletPayoutNotFound {
		t.Fatalf("expected unknown payout to be rejected, got %v", err)
	}

	declare(t, uow, draft.Distribution.ID)

	getWallet := wallet.NewGetWalletUseCase(uow, nil, "NGN")
	before, err := getWallet.Execute(ctx, wallet.GetWalletInput{UserID: holder.ID})
	if err != nil {
		t.Fatalf("wallet: %v", err)
	}
	if !before.Balance.Amount().Equal(decimal.NewFromInt(-1000)) || !before.PendingPayouts.Amount().Equal(decimal.NewFromInt(1000)) {
		t.Errorf("unexpected wallet before credit: balance %s pending %s", before.Balance, before.PendingPayouts)
	}

	out, err := credit.Execute(ctx, payoutID)
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if out.Payout.Status != entity.PayoutStatusPaid || out.Transaction.Status != entity.TransactionStatusSettled {
		t.Errorf("unexpected credit result %+v", out)
	}
	if out.Distribution.Status != entity.DistributionStatusPaid {
		t.Errorf("expected last credit to close the distribution, got %s", out.Distribution.Status)
	}

	after, err := getWallet.Execute(ctx, wallet.GetWalletInput{UserID: holder.ID})
	if err != nil {
		t.Fatalf("wallet: %v", err)
	}
	if !after.Balance.Amount().Equal(decimal.NewFromInt(-1000)) || !after.PendingPayouts.IsZero() {
		t.Errorf("unexpected wallet after credit: balance %s pending %s", after.Balance, after.PendingPayouts)
	}

	if _, err := credit.Execute(ctx, payoutID); walletErrorCode(err) != domainerror.ErrCodePayoutAlreadyPaid {
		t.Errorf("expected double credit to fail, got %v", err)
	}

	entries, err := wallet.NewListTransactionsUseCase(uow).Execute(ctx, holder.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected investment and payout entries, got %d", len(entries))
	}
}

// ledgerSum recomputes a balance from the statement of account alone.
func ledgerSum(t *testing.T, uow adapter.UnitOfWork, userID uuid.UUID) decimal.Decimal {
	t.Helper()
	entries, err := wallet.NewListTransactionsUseCase(uow).Execute(context.Background(), userID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	sum := decimal.Zero
	for _, e := range entries {
		switch e.Type {
		case entity.TransactionTypePayout:
			sum = sum.Add(e.Amount)
		case entity.TransactionTypeInvestment:
			sum = sum.Sub(e.Amount)
		}
	}
	return sum
}

func TestGetWalletBalance_MatchesTransactionList(t *testing.T) {
	ctx := context.Background()
	uow := dbtest.NewUnitOfWork(t)
	holder, draft := draftFor(t, uow)
	getWallet := wallet.NewGetWalletUseCase(uow, nil, "NGN")

	steps := []struct {
		name string
		run  func(t *testing.T)
		want string
	}{
		{name: "after purchase", run: func(t *testing.T) {}, want: "-2000"},
		{name: "after declare", run: func(t *testing.T) { declare(t, uow, draft.Distribution.ID) }, want: "-1000"},
		{name: "after credit", run: func(t *testing.T) {
			if _, err := wallet.NewCreditWalletUseCase(uow).Execute(ctx, draft.Payouts[0].ID); err != nil {
				t.Fatalf("credit: %v", err)
			}
		}, want: "-1000"},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			step.run(t)
			balance, err := getWallet.Balance(ctx, holder.ID)
			if err != nil {
				t.Fatalf("balance: %v", err)
			}
			if recomputed := ledgerSum(t, uow, holder.ID); !balance.Equal(recomputed) {
				t.Errorf("balance %s differs from transaction list sum %s", balance, recomputed)
			}
			if !balance.Equal(decimal.RequireFromString(step.want)) {
				t.Errorf("expected %s, got %s", step.want, balance)
			}
		})
	}
}

func TestMarkPayoutFailed(t *testing.T) {
	ctx := context.Background()
	uow := dbtest.NewUnitOfWork(t)
	_, draft := draftFor(t, uow)
	payoutID := draft.Payouts[0].ID
	fail := wallet.NewMarkPayoutFailedUseCase(uow)

	tests := []struct {
		name     string
		input    wallet.MarkPayoutFailedInput
		wantCode domainerror.WalletErrorCode
	}{
		{name: "missing reason", input: wallet.MarkPayoutFailedInput{PayoutID: payoutID, Reason: "  "}, wantCode: domainerror.ErrCodeMissingFailureReason},
		{name: "undeclared distribution", input: wallet.MarkPayoutFailedInput{PayoutID: payoutID, Reason: "bank offline"}, wantCode: domainerror.ErrCodeDistributionNotDeclared},
		{name: "unknown payout", input: wallet.MarkPayoutFailedInput{PayoutID: uuid.New(), Reason: "bank offline"}, wantCode: domainerror.ErrCodeWalletPayoutNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := fail.Execute(ctx, tt.input); walletErrorCode(err) != tt.wantCode {
				t.Errorf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}

	declare(t, uow, draft.Distribution.ID)

	failed, err := fail.Execute(ctx, wallet.MarkPayoutFailedInput{PayoutID: payoutID, Reason: "account closed"})
	if err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if failed.Status != entity.PayoutStatusFailed || failed.FailureReason != "account closed" {
		t.Errorf("unexpected payout %+v", failed)
	}

	if _, err := fail.Execute(ctx, wallet.MarkPayoutFailedInput{PayoutID: payoutID, Reason: "again"}); walletErrorCode(err) != domainerror.ErrCodeInvalidPayoutTransition {
		t.Errorf("expected failed payout to stay failed, got %v", err)
	}

	out, err := wallet.NewCreditWalletUseCase(uow).Execute(ctx, payoutID)
	if err != nil {
		t.Fatalf("expected failed payout to be creditable: %v", err)
	}
	if out.Payout.FailureReason != "" {
		t.Errorf("expected failure reason cleared, got %q", out.Payout.FailureReason)
	}
}

func TestGetWallet_DisplayCurrency(t *testing.T) {
	ctx := context.Background()
	uow := dbtest.NewUnitOfWork(t)
	holder, draft := draftFor(t, uow)
	declare(t, uow, draft.Distribution.ID)
	if _, err := wallet.NewCreditWalletUseCase(uow).Execute(ctx, draft.Payouts[0].ID); err != nil {
		t.Fatalf("credit: %v", err)
	}

	fx := valueobject.NewFXTable(config.ParseRates("USD:NGN=1550"))
	uc := wallet.NewGetWalletUseCase(uow, fx, "NGN")

	out, err := uc.Execute(ctx, wallet.GetWalletInput{UserID: holder.ID, DisplayCurrency: "usd"})
	if err != nil {
		t.Fatalf("wallet: %v", err)
	}
	if out.Display == nil || out.Display.Currency != "USD" {
		t.Fatalf("expected USD display, got %+v", out.Display)
	}
	// -1000 NGN / 1550 rounds to -0.65 USD.
	if !out.Display.Balance.Amount().Equal(decimal.RequireFromString("-0.65")) {
		t.Errorf("expected -0.65 USD, got %s", out.Display.Balance)
	}
	if !out.Balance.Amount().Equal(decimal.NewFromInt(-1000)) {
		t.Errorf("ledger balance must stay in NGN, got %s", out.Balance)
	}

	tests := []struct {
		name     string
		currency string
	}{
		{name: "unknown currency", currency: "XYZ"},
		{name: "no rate", currency: "EUR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, wallet.GetWalletInput{UserID: holder.ID, DisplayCurrency: tt.currency})
			if walletErrorCode(err) != domainerror.ErrCodeInvalidWalletCurrency {
				t.Errorf("expected invalid currency, got %v", err)
			}
		})
	}
}
