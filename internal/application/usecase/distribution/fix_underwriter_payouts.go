package distribution

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
)

// FixUnderwriterPayoutsOutput reports what the fix changed.
type FixUnderwriterPayoutsOutput struct {
	Fixed        int
	Distribution *entity.Distribution
	Payouts      []*entity.Payout
}

// FixUnderwriterPayoutsUseCase refreshes the role snapshot of a draft's
// payouts and recomputes every amount from the frozen share counts.
// Running it twice changes nothing the second time.
type FixUnderwriterPayoutsUseCase struct {
	uow adapter.UnitOfWork
}

// NewFixUnderwriterPayoutsUseCase creates a new FixUnderwriterPayoutsUseCase instance.
func NewFixUnderwriterPayoutsUseCase(uow adapter.UnitOfWork) *FixUnderwriterPayoutsUseCase {
	return &FixUnderwriterPayoutsUseCase{
		uow: uow,
	}
}

// Execute applies the fix.
func (uc *FixUnderwriterPayoutsUseCase) Execute(ctx context.Context, distributionID uuid.UUID) (*FixUnderwriterPayoutsOutput, error) {
	var output *FixUnderwriterPayoutsOutput
	err := uc.uow.Execute(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		dist, err := loadDistribution(ctx, repos.Distributions, distributionID, true)
		if err != nil {
			return err
		}
		if !dist.IsEditable() {
			return notEditable(dist)
		}

		payouts, err := repos.Payouts.ListByDistribution(ctx, dist.ID)
		if err != nil {
			return fmt.Errorf("failed to list payouts: %w", err)
		}
		output = &FixUnderwriterPayoutsOutput{Distribution: dist, Payouts: payouts}

		users, err := repos.Users.FindByIDs(ctx, payoutUserIDs(payouts))
		if err != nil {
			return fmt.Errorf("failed to load investors: %w", err)
		}

		type snapshot struct {
			role   entity.UserRole
			amount decimal.Decimal
		}
		before := make([]snapshot, len(payouts))
		roleChanged := false
		for i, p := range payouts {
			before[i] = snapshot{role: p.InvestorRole, amount: p.Amount}
			if role := currentRole(users, p.UserID); role != p.InvestorRole {
				p.InvestorRole = role
				roleChanged = true
			}
		}
		if !roleChanged {
			return nil
		}

		stmt, err := loadStatement(ctx, repos.Statements, dist.RentalStatementID, false)
		if err != nil {
			return err
		}
		total, err := allocatePayouts(stmt.Net(), payouts)
		if err != nil {
			return err
		}

		for i, p := range payouts {
			if p.InvestorRole == before[i].role && p.Amount.Equal(before[i].amount) {
				continue
			}
			if err := repos.Payouts.Update(ctx, p); err != nil {
				return fmt.Errorf("failed to update payout: %w", err)
			}
			output.Fixed++
		}

		dist.TotalDistributed = total
		if err := repos.Distributions.Update(ctx, dist); err != nil {
			return fmt.Errorf("failed to update distribution: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Underwriter payouts fixed",
		"distribution_id", distributionID,
		"fixed", output.Fixed,
	)
	return output, nil
}
