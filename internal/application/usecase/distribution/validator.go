package distribution

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// Validation issue codes. Errors block declaration, warnings are recorded.
const (
	IssueNoInvestors          = "NO_INVESTORS"
	IssueNonPositiveNet       = "NON_POSITIVE_NET"
	IssueInvalidPeriod        = "INVALID_PERIOD"
	IssueNonPositiveShares    = "NON_POSITIVE_SHARES"
	IssueNegativeAmount       = "NEGATIVE_AMOUNT"
	IssueCurrencyMismatch     = "CURRENCY_MISMATCH"
	IssueKYCNotApproved       = "KYC_NOT_APPROVED"
	IssuePayoutSumMismatch    = "PAYOUT_SUM_MISMATCH"
	IssuePayoutAmountMismatch = "PAYOUT_AMOUNT_MISMATCH"
	IssueNoPayouts            = "NO_PAYOUTS"
)

// ValidationReport is the outcome of a distribution or payout check.
type ValidationReport struct {
	IsValid  bool
	Errors   []string
	Warnings []string
	// UnverifiedInvestors lists payout owners whose KYC is not approved.
	UnverifiedInvestors []uuid.UUID
}

func (r *ValidationReport) addError(code string) {
	r.Errors = appendOnce(r.Errors, code)
	r.IsValid = false
}

func (r *ValidationReport) addWarning(code string) {
	r.Warnings = appendOnce(r.Warnings, code)
}

func appendOnce(codes []string, code string) []string {
	for _, c := range codes {
		if c == code {
			return codes
		}
	}
	return append(codes, code)
}

// Validator checks distributions and payouts for consistency.
type Validator struct {
	uow       adapter.UnitOfWork
	tolerance decimal.Decimal
}

// NewValidator creates a Validator. tolerance is the largest accepted gap
// between the payout sum and the net distributable.
func NewValidator(uow adapter.UnitOfWork, tolerance decimal.Decimal) *Validator {
	return &Validator{
		uow:       uow,
		tolerance: tolerance,
	}
}

// ValidateDistribution reports on a distribution without changing it.
func (v *Validator) ValidateDistribution(ctx context.Context, distributionID uuid.UUID) (*ValidationReport, error) {
	repos := v.uow.Repositories()

	dist, err := loadDistribution(ctx, repos.Distributions, distributionID, false)
	if err != nil {
		return nil, err
	}
	payouts, err := repos.Payouts.ListByDistribution(ctx, dist.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}

	return v.evaluate(ctx, repos, dist, payouts)
}

// ValidatePayout reports on a single payout.
func (v *Validator) ValidatePayout(ctx context.Context, payoutID uuid.UUID) (*ValidationReport, error) {
	repos := v.uow.Repositories()

	payout, err := repos.Payouts.FindByID(ctx, payoutID)
	if err != nil {
		if errors.Is(err, domainerror.ErrPayoutNotFound) {
			return nil, domainerror.NewDistributionError(
				domainerror.ErrCodePayoutNotFound,
				"payout not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to load payout: %w", err)
	}

	dist, err := loadDistribution(ctx, repos.Distributions, payout.DistributionID, false)
	if err != nil {
		return nil, err
	}
	stmt, err := loadStatement(ctx, repos.Statements, dist.RentalStatementID, false)
	if err != nil {
		return nil, err
	}
	siblings, err := repos.Payouts.ListByDistribution(ctx, dist.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	users, err := repos.Users.FindByIDs(ctx, []uuid.UUID{payout.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to load investor: %w", err)
	}

	report := &ValidationReport{IsValid: true}
	checkPayout(report, dist, payout, users)

	// Recompute the whole allocation on copies so the payout's expected
	// share reflects the same residual-cent placement as the draft.
	expected := make([]*entity.Payout, len(siblings))
	for i, p := range siblings {
		clone := *p
		expected[i] = &clone
	}
	if _, err := allocatePayouts(stmt.Net(), expected); err == nil {
		for _, p := range expected {
			if p.ID == payout.ID && p.Amount.Sub(payout.Amount).Abs().GreaterThan(v.tolerance) {
				report.addWarning(IssuePayoutAmountMismatch)
			}
		}
	}

	return report, nil
}

// evaluate runs every distribution-level check against the given
// repositories, which may be bound to an open unit of work.
func (v *Validator) evaluate(ctx context.Context, repos adapter.Repositories, dist *entity.Distribution, payouts []*entity.Payout) (*ValidationReport, error) {
	report := &ValidationReport{IsValid: true}

	stmt, err := loadStatement(ctx, repos.Statements, dist.RentalStatementID, false)
	if err != nil {
		return nil, err
	}
	if stmt.ValidatePeriod() != nil {
		report.addError(IssueInvalidPeriod)
	}
	if !stmt.NetDistributable.IsPositive() {
		report.addError(IssueNonPositiveNet)
	}

	if len(payouts) == 0 {
		report.addWarning(IssueNoPayouts)
		return report, nil
	}

	users, err := repos.Users.FindByIDs(ctx, payoutUserIDs(payouts))
	if err != nil {
		return nil, fmt.Errorf("failed to load investors: %w", err)
	}

	sum := decimal.Zero
	earning := false
	for _, p := range payouts {
		checkPayout(report, dist, p, users)
		sum = sum.Add(p.Amount)
		if p.EarnsIncome() && p.SharesAtRecord > 0 {
			earning = true
		}
	}

	if !earning {
		report.addError(IssueNoInvestors)
	} else if sum.Sub(stmt.NetDistributable).Abs().GreaterThan(v.tolerance) {
		report.addWarning(IssuePayoutSumMismatch)
	}

	return report, nil
}

func checkPayout(report *ValidationReport, dist *entity.Distribution, p *entity.Payout, users map[uuid.UUID]*entity.User) {
	if p.SharesAtRecord <= 0 {
		report.addError(IssueNonPositiveShares)
	}
	if p.Amount.IsNegative() {
		report.addError(IssueNegativeAmount)
	}
	if p.Currency != dist.Currency {
		report.addError(IssueCurrencyMismatch)
	}
	if u, ok := users[p.UserID]; !ok || !u.IsKYCApproved() {
		report.addWarning(IssueKYCNotApproved)
		report.UnverifiedInvestors = append(report.UnverifiedInvestors, p.UserID)
	}
}
