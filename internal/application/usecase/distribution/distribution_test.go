package distribution

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/application/usecase/wallet"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/infra/db/dbtest"
)

func distErrorCode(err error) domainerror.DistributionErrorCode {
	var distErr *domainerror.DistributionError
	if errors.As(err, &distErr) {
		return distErr.Code
	}
	return ""
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type ledger struct {
	uow       adapter.UnitOfWork
	property  *entity.Property
	statement *entity.RentalStatement
}

// newLedger seeds a property whose holders own the given share counts and
// a January statement netting net.
func newLedger(t *testing.T, totalShares int64, net string, holdings ...int64) (*ledger, []*entity.User) {
	t.Helper()
	uow := dbtest.NewUnitOfWork(t)
	property := dbtest.Property(t, uow, totalShares, "10.00")

	holders := make([]*entity.User, len(holdings))
	for i, shares := range holdings {
		holders[i] = dbtest.Investor(t, uow, entity.UserRoleInvestor, entity.KYCStatusApproved)
		dbtest.Investment(t, uow, holders[i].ID, property, shares)
	}

	gross := dec(net).Add(dec("150.00"))
	stmt := dbtest.Statement(t, uow, property.ID, gross.String(), "100.00", "50.00")

	return &ledger{uow: uow, property: property, statement: stmt}, holders
}

func (l *ledger) draft(t *testing.T) *CreateDraftOutput {
	t.Helper()
	out, err := NewCreateDraftUseCase(l.uow, nil).Execute(context.Background(), CreateDraftInput{
		PropertyID:        l.property.ID,
		RentalStatementID: l.statement.ID,
	})
	if err != nil {
		t.Fatalf("create draft: %v", err)
	}
	return out
}

func (l *ledger) declare(bulk bool, id uuid.UUID) (*DeclareOutput, error) {
	validator := NewValidator(l.uow, dec("0.01"))
	return NewDeclareUseCase(l.uow, validator).Execute(context.Background(), DeclareInput{DistributionID: id, BulkFastPath: bulk})
}

func payoutSum(payouts []*entity.Payout) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payouts {
		sum = sum.Add(p.Amount)
	}
	return sum
}

func TestCreateDraft_AllocatesNetExactly(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		net      string
		holdings []int64
		want     []string // sorted descending
	}{
		{name: "even thirds", total: 300, net: "100.00", holdings: []int64{100, 100, 100}, want: []string{"33.34", "33.33", "33.33"}},
		{name: "uneven split", total: 1000, net: "1000.00", holdings: []int64{333, 667}, want: []string{"667.00", "333.00"}},
		{name: "unsold shares earn nothing", total: 1000, net: "90.00", holdings: []int64{10, 20}, want: []string{"60.00", "30.00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newLedger(t, tt.total, tt.net, tt.holdings...)
			out := l.draft(t)

			if out.Distribution.Status != entity.DistributionStatusDraft {
				t.Errorf("expected DRAFT, got %s", out.Distribution.Status)
			}
			if len(out.Payouts) != len(tt.holdings) {
				t.Fatalf("expected %d payouts, got %d", len(tt.holdings), len(out.Payouts))
			}
			if !payoutSum(out.Payouts).Equal(dec(tt.net)) || !out.Distribution.TotalDistributed.Equal(dec(tt.net)) {
				t.Errorf("expected payouts to sum to %s, got %s", tt.net, payoutSum(out.Payouts))
			}

			stored, err := l.uow.Repositories().Payouts.ListByDistribution(context.Background(), out.Distribution.ID)
			if err != nil {
				t.Fatalf("list payouts: %v", err)
			}
			counts := make(map[string]int)
			for _, p := range stored {
				counts[p.Amount.StringFixed(2)]++
			}
			for _, w := range tt.want {
				counts[w]--
			}
			for amount, n := range counts {
				if n != 0 {
					t.Errorf("unexpected payout amounts, %s off by %d", amount, n)
				}
			}
		})
	}
}

func TestCreateDraft_Rejections(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger(t, 100, "500.00", 50)
	uc := NewCreateDraftUseCase(l.uow, nil)

	other := dbtest.Property(t, l.uow, 10, "1.00")
	breakEven := dbtest.Statement(t, l.uow, l.property.ID, "150.00", "100.00", "50.00")

	l.draft(t)

	tests := []struct {
		name     string
		input    CreateDraftInput
		wantCode domainerror.DistributionErrorCode
	}{
		{name: "missing ids", input: CreateDraftInput{}, wantCode: domainerror.ErrCodeMissingDistributionFields},
		{name: "unknown statement", input: CreateDraftInput{PropertyID: l.property.ID, RentalStatementID: uuid.New()}, wantCode: domainerror.ErrCodeDistributionStatementNotFound},
		{name: "statement of another property", input: CreateDraftInput{PropertyID: other.ID, RentalStatementID: l.statement.ID}, wantCode: domainerror.ErrCodeInvalidStatement},
		{name: "zero net", input: CreateDraftInput{PropertyID: l.property.ID, RentalStatementID: breakEven.ID}, wantCode: domainerror.ErrCodeInvalidStatement},
		{name: "second draft for a statement", input: CreateDraftInput{PropertyID: l.property.ID, RentalStatementID: l.statement.ID}, wantCode: domainerror.ErrCodeDuplicateDistribution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.input)
			if got := distErrorCode(err); got != tt.wantCode {
				t.Errorf("expected %s, got %v", tt.wantCode, err)
			}
		})
	}

	exists, err := l.uow.Repositories().Distributions.ExistsForStatement(ctx, breakEven.ID)
	if err != nil || exists {
		t.Errorf("expected rejected statement to have no distribution, got %v %v", exists, err)
	}
}

// Serialized by the single SQLite connection: this covers the duplicate
// check and the unique index, not FOR UPDATE contention.
func TestCreateDraft_ConcurrentRequestsCreateOne(t *testing.T) {
	l, _ := newLedger(t, 100, "100.00", 40, 60)
	uc := NewCreateDraftUseCase(l.uow, nil)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), CreateDraftInput{PropertyID: l.property.ID, RentalStatementID: l.statement.ID})
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		switch {
		case err == nil:
			created++
		case distErrorCode(err) != domainerror.ErrCodeDuplicateDistribution:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if created != 1 {
		t.Errorf("expected exactly one draft, got %d", created)
	}
}

func TestCreateDraft_UnderwriterEarnsNothing(t *testing.T) {
	l, holders := newLedger(t, 100, "80.00", 40)
	underwriter := dbtest.Investor(t, l.uow, entity.UserRoleUnderwriter, entity.KYCStatusApproved)
	dbtest.Investment(t, l.uow, underwriter.ID, l.property, 60)

	out := l.draft(t)
	for _, p := range out.Payouts {
		switch p.UserID {
		case underwriter.ID:
			if p.InvestorRole != entity.UserRoleUnderwriter || !p.Amount.IsZero() || p.SharesAtRecord != 60 {
				t.Errorf("unexpected underwriter payout %+v", p)
			}
		case holders[0].ID:
			if !p.Amount.Equal(dec("80")) {
				t.Errorf("expected investor to receive the whole net, got %s", p.Amount)
			}
		}
	}
}

func TestFixUnderwriterPayouts(t *testing.T) {
	ctx := context.Background()
	l, holders := newLedger(t, 100, "100.00", 50, 50)
	out := l.draft(t)

	uc := NewFixUnderwriterPayoutsUseCase(l.uow)
	fixed, err := uc.Execute(ctx, out.Distribution.ID)
	if err != nil {
		t.Fatalf("fix: %v", err)
	}
	if fixed.Fixed != 0 {
		t.Errorf("expected nothing to fix, got %d", fixed.Fixed)
	}

	sponsor := holders[1]
	sponsor.Role = entity.UserRoleUnderwriter
	if err := l.uow.Repositories().Users.Update(ctx, sponsor); err != nil {
		t.Fatalf("update role: %v", err)
	}

	fixed, err = uc.Execute(ctx, out.Distribution.ID)
	if err != nil {
		t.Fatalf("fix: %v", err)
	}
	if fixed.Fixed != 2 {
		t.Errorf("expected both payouts to change, got %d", fixed.Fixed)
	}
	for _, p := range fixed.Payouts {
		want := dec("100")
		if p.UserID == sponsor.ID {
			want = decimal.Zero
		}
		if !p.Amount.Equal(want) {
			t.Errorf("payout for %s: expected %s, got %s", p.UserID, want, p.Amount)
		}
	}
	if !fixed.Distribution.TotalDistributed.Equal(dec("100")) {
		t.Errorf("expected total 100, got %s", fixed.Distribution.TotalDistributed)
	}

	again, err := uc.Execute(ctx, out.Distribution.ID)
	if err != nil {
		t.Fatalf("fix: %v", err)
	}
	if again.Fixed != 0 {
		t.Errorf("expected fix to be idempotent, got %d", again.Fixed)
	}

	if _, err := l.declare(true, out.Distribution.ID); err != nil {
		t.Fatalf("declare: %v", err)
	}
	_, err = uc.Execute(ctx, out.Distribution.ID)
	if got := distErrorCode(err); got != domainerror.ErrCodeDistributionNotEditable {
		t.Errorf("expected declared distribution to be locked, got %v", err)
	}
}

func TestDistributionLifecycle(t *testing.T) {
	ctx := context.Background()
	l, holders := newLedger(t, 100, "300.00", 30, 70)
	draft := l.draft(t)
	id := draft.Distribution.ID

	if _, err := l.declare(false, id); distErrorCode(err) != domainerror.ErrCodeInvalidDistributionTransition {
		t.Fatalf("expected DRAFT to DECLARED to need the bulk path, got %v", err)
	}

	approved, err := NewApproveUseCase(l.uow).Execute(ctx, id)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != entity.DistributionStatusApproved {
		t.Fatalf("expected APPROVED, got %s", approved.Status)
	}

	declared, err := l.declare(false, id)
	if err != nil {
		t.Fatalf("declare: %v", err)
	}
	if declared.Distribution.Status != entity.DistributionStatusDeclared || declared.Distribution.DeclaredAt == nil {
		t.Errorf("unexpected distribution %+v", declared.Distribution)
	}
	if len(declared.Transactions) != 2 {
		t.Fatalf("expected 2 payout transactions, got %d", len(declared.Transactions))
	}

	repos := l.uow.Repositories()
	for _, p := range declared.Payouts {
		entry, err := repos.Transactions.FindByReference(ctx, entity.PayoutReference(p.ID))
		if err != nil {
			t.Fatalf("find payout transaction: %v", err)
		}
		if entry.Status != entity.TransactionStatusPending || !entry.Amount.Equal(p.Amount) {
			t.Errorf("unexpected payout transaction %+v", entry)
		}
		stored, err := repos.Payouts.FindByID(ctx, p.ID)
		if err != nil {
			t.Fatalf("find payout: %v", err)
		}
		if stored.TransactionID == nil || *stored.TransactionID != entry.ID {
			t.Errorf("expected payout linked to its transaction")
		}
	}

	jobs, err := repos.EmailQueue.GetPendingJobs(ctx, 10)
	if err != nil {
		t.Fatalf("pending emails: %v", err)
	}
	if len(jobs) != 2 {
		t.Errorf("expected 2 declaration emails, got %d", len(jobs))
	}

	if _, err := l.declare(false, id); distErrorCode(err) != domainerror.ErrCodeAlreadyDeclared {
		t.Errorf("expected re-declaration to fail, got %v", err)
	}
	if _, err := l.declare(true, id); distErrorCode(err) != domainerror.ErrCodeAlreadyDeclared {
		t.Errorf("expected bulk re-declaration to fail, got %v", err)
	}
	if _, err := NewApproveUseCase(l.uow).Execute(ctx, id); distErrorCode(err) != domainerror.ErrCodeInvalidDistributionTransition {
		t.Errorf("expected approve after declare to fail, got %v", err)
	}
	if err := NewDiscardUseCase(l.uow).Execute(ctx, id); distErrorCode(err) != domainerror.ErrCodeDistributionNotEditable {
		t.Errorf("expected discard after declare to fail, got %v", err)
	}

	credit := wallet.NewCreditWalletUseCase(l.uow)
	for i, p := range declared.Payouts {
		out, err := credit.Execute(ctx, p.ID)
		if err != nil {
			t.Fatalf("credit: %v", err)
		}
		wantStatus := entity.DistributionStatusDeclared
		if i == len(declared.Payouts)-1 {
			wantStatus = entity.DistributionStatusPaid
		}
		if out.Distribution.Status != wantStatus {
			t.Errorf("after credit %d expected %s, got %s", i+1, wantStatus, out.Distribution.Status)
		}
	}

	balance, err := wallet.NewGetWalletUseCase(l.uow, nil, "NGN").Balance(ctx, holders[1].ID)
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	// 70 shares at 10.00 bought, 210.00 received.
	if !balance.Equal(dec("-490")) {
		t.Errorf("expected balance -490, got %s", balance)
	}
}

func TestDeclare_ZeroPayoutsIsWarning(t *testing.T) {
	l, _ := newLedger(t, 100, "100.00")
	draft := l.draft(t)
	if len(draft.Payouts) != 0 || !draft.Distribution.TotalDistributed.IsZero() {
		t.Fatalf("expected empty draft, got %+v", draft)
	}

	out, err := l.declare(true, draft.Distribution.ID)
	if err != nil {
		t.Fatalf("declare: %v", err)
	}
	if out.Distribution.Status != entity.DistributionStatusDeclared {
		t.Errorf("expected DECLARED, got %s", out.Distribution.Status)
	}

	stored, err := l.uow.Repositories().Distributions.FindByID(context.Background(), draft.Distribution.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(stored.Warnings) != 1 || stored.Warnings[0] != IssueNoPayouts {
		t.Errorf("expected NO_PAYOUTS warning, got %v", stored.Warnings)
	}
}

func TestDeclare_NoIncomeEarningHolderFails(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger(t, 100, "100.00")
	underwriter := dbtest.Investor(t, l.uow, entity.UserRoleUnderwriter, entity.KYCStatusApproved)
	dbtest.Investment(t, l.uow, underwriter.ID, l.property, 100)
	draft := l.draft(t)

	_, err := l.declare(true, draft.Distribution.ID)
	var distErr *domainerror.DistributionError
	if !errors.As(err, &distErr) || distErr.Code != domainerror.ErrCodeDistributionValidationFailed {
		t.Fatalf("expected validation failure, got %v", err)
	}
	if len(distErr.Issues) != 1 || distErr.Issues[0] != IssueNoInvestors {
		t.Errorf("expected NO_INVESTORS, got %v", distErr.Issues)
	}

	stored, err := l.uow.Repositories().Distributions.FindByID(ctx, draft.Distribution.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if stored.Status != entity.DistributionStatusDraft {
		t.Errorf("expected rollback to leave DRAFT, got %s", stored.Status)
	}
	if _, err := l.uow.Repositories().Transactions.FindByReference(ctx, entity.PayoutReference(draft.Payouts[0].ID)); !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Errorf("expected no payout transaction, got %v", err)
	}
}

func TestBulkDeclare(t *testing.T) {
	l, _ := newLedger(t, 100, "100.00", 100)
	draft := l.draft(t)

	bulk := NewBulkDeclareUseCase(NewDeclareUseCase(l.uow, NewValidator(l.uow, dec("0.01"))))
	missing := uuid.New()
	results := bulk.Execute(context.Background(), []uuid.UUID{draft.Distribution.ID, missing, draft.Distribution.ID})

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Err != nil || results[0].Status != entity.DistributionStatusDeclared {
		t.Errorf("expected first declaration to succeed, got %+v", results[0])
	}
	if distErrorCode(results[1].Err) != domainerror.ErrCodeDistributionNotFound {
		t.Errorf("expected not found, got %v", results[1].Err)
	}
	if distErrorCode(results[2].Err) != domainerror.ErrCodeAlreadyDeclared {
		t.Errorf("expected duplicate declaration to fail, got %v", results[2].Err)
	}
}

func TestDiscard_FreesStatement(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger(t, 100, "100.00", 60)
	first := l.draft(t)

	if err := NewDiscardUseCase(l.uow).Execute(ctx, first.Distribution.ID); err != nil {
		t.Fatalf("discard: %v", err)
	}
	if _, err := l.uow.Repositories().Payouts.FindByID(ctx, first.Payouts[0].ID); !errors.Is(err, domainerror.ErrPayoutNotFound) {
		t.Errorf("expected payouts to be removed, got %v", err)
	}

	second := l.draft(t)
	if second.Distribution.ID == first.Distribution.ID {
		t.Error("expected a new distribution")
	}
}

func TestSettle(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger(t, 100, "100.00", 20, 30, 50)
	draft := l.draft(t)

	settle := NewSettleUseCase(l.uow)
	if _, err := settle.Execute(ctx, draft.Distribution.ID); distErrorCode(err) != domainerror.ErrCodeInvalidDistributionTransition {
		t.Fatalf("expected draft settlement to fail, got %v", err)
	}

	if _, err := l.declare(true, draft.Distribution.ID); err != nil {
		t.Fatalf("declare: %v", err)
	}
	if _, err := wallet.NewCreditWalletUseCase(l.uow).Execute(ctx, draft.Payouts[0].ID); err != nil {
		t.Fatalf("credit: %v", err)
	}

	out, err := settle.Execute(ctx, draft.Distribution.ID)
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if out.Credited != 2 || out.Distribution.Status != entity.DistributionStatusPaid || out.Distribution.PaidAt == nil {
		t.Errorf("unexpected settlement %+v", out)
	}

	unpaid, err := l.uow.Repositories().Payouts.CountUnpaid(ctx, draft.Distribution.ID)
	if err != nil || unpaid != 0 {
		t.Errorf("expected every payout paid, got %d %v", unpaid, err)
	}

	if _, err := settle.Execute(ctx, draft.Distribution.ID); distErrorCode(err) != domainerror.ErrCodeInvalidDistributionTransition {
		t.Errorf("expected PAID to be terminal, got %v", err)
	}
}

func TestValidator(t *testing.T) {
	ctx := context.Background()
	l, holders := newLedger(t, 100, "1000.00", 30, 10)
	out := l.draft(t)
	validator := NewValidator(l.uow, dec("0.01"))

	report, err := validator.ValidateDistribution(ctx, out.Distribution.ID)
	if err != nil {
		t.Fatalf("validate distribution: %v", err)
	}
	if !report.IsValid || len(report.Warnings) != 0 {
		t.Errorf("expected clean report, got %+v", report)
	}

	pending := dbtest.Investor(t, l.uow, entity.UserRoleInvestor, entity.KYCStatusPending)
	payout := out.Payouts[0]
	payout.UserID = pending.ID
	payout.Amount = payout.Amount.Add(dec("1.00"))
	if err := l.uow.Repositories().Payouts.Update(ctx, payout); err != nil {
		t.Fatalf("update payout: %v", err)
	}

	t.Run("payout", func(t *testing.T) {
		report, err := validator.ValidatePayout(ctx, payout.ID)
		if err != nil {
			t.Fatalf("validate payout: %v", err)
		}
		if !report.IsValid {
			t.Errorf("warnings must not invalidate, got %+v", report)
		}
		for _, want := range []string{IssueKYCNotApproved, IssuePayoutAmountMismatch} {
			if !contains(report.Warnings, want) {
				t.Errorf("expected warning %s, got %v", want, report.Warnings)
			}
		}
		if len(report.UnverifiedInvestors) != 1 || report.UnverifiedInvestors[0] != pending.ID {
			t.Errorf("expected %s unverified, got %v", pending.ID, report.UnverifiedInvestors)
		}
	})

	t.Run("distribution", func(t *testing.T) {
		report, err := validator.ValidateDistribution(ctx, out.Distribution.ID)
		if err != nil {
			t.Fatalf("validate distribution: %v", err)
		}
		if !contains(report.Warnings, IssuePayoutSumMismatch) {
			t.Errorf("expected %s, got %v", IssuePayoutSumMismatch, report.Warnings)
		}
		if contains(report.UnverifiedInvestors, holders[0].ID) {
			t.Errorf("approved holder reported unverified")
		}
	})

	t.Run("unknown payout", func(t *testing.T) {
		_, err := validator.ValidatePayout(ctx, uuid.New())
		if code := distErrorCode(err); code != domainerror.ErrCodePayoutNotFound {
			t.Errorf("expected %s, got %v", domainerror.ErrCodePayoutNotFound, err)
		}
	})
}

func contains[T comparable](items []T, want T) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
