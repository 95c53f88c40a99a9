// Package distribution contains the distribution engine, its lifecycle
// use cases and the distribution validator.
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
	"github.com/estateshare/backend/internal/domain/valueobject"
)

// allocatePayouts sets every payout amount from its frozen share count.
// Only income-earning holders carry weight; when none do, every amount is
// zero. The returned total is the exact sum of the amounts.
func allocatePayouts(net valueobject.Money, payouts []*entity.Payout) (decimal.Decimal, error) {
	weights := make([]int64, len(payouts))
	var eligible int64
	for i, p := range payouts {
		if p.EarnsIncome() {
			weights[i] = p.SharesAtRecord
			eligible += p.SharesAtRecord
		}
	}

	if eligible == 0 {
		for _, p := range payouts {
			p.Amount = decimal.Zero
		}
		return decimal.Zero, nil
	}

	amounts, err := valueobject.Allocate(net, weights)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to allocate net distributable: %w", err)
	}

	total := decimal.Zero
	for i, p := range payouts {
		p.Amount = amounts[i].Amount()
		total = total.Add(p.Amount)
	}
	return total, nil
}

// currentRole is the role a holder has today. Holders without a profile
// are treated as plain investors.
func currentRole(users map[uuid.UUID]*entity.User, userID uuid.UUID) entity.UserRole {
	if u, ok := users[userID]; ok && u.Role.IsValid() {
		return u.Role
	}
	return entity.UserRoleInvestor
}

func payoutUserIDs(payouts []*entity.Payout) []uuid.UUID {
	ids := make([]uuid.UUID, len(payouts))
	for i, p := range payouts {
		ids[i] = p.UserID
	}
	return ids
}

func loadDistribution(ctx context.Context, repo adapter.DistributionRepository, id uuid.UUID, forUpdate bool) (*entity.Distribution, error) {
	find := repo.FindByID
	if forUpdate {
		find = repo.FindByIDForUpdate
	}

	dist, err := find(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrDistributionNotFound) {
			return nil, domainerror.NewDistributionError(
				domainerror.ErrCodeDistributionNotFound,
				"distribution not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to load distribution: %w", err)
	}
	return dist, nil
}

func loadStatement(ctx context.Context, repo adapter.RentalStatementRepository, id uuid.UUID, forUpdate bool) (*entity.RentalStatement, error) {
	find := repo.FindByID
	if forUpdate {
		find = repo.FindByIDForUpdate
	}

	stmt, err := find(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrStatementNotFound) {
			return nil, domainerror.NewDistributionError(
				domainerror.ErrCodeDistributionStatementNotFound,
				"rental statement not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to load rental statement: %w", err)
	}
	return stmt, nil
}

func transitionError(dist *entity.Distribution, target entity.DistributionStatus, err error) error {
	if errors.Is(err, domainerror.ErrAlreadyDeclared) {
		return domainerror.NewDistributionError(
			domainerror.ErrCodeAlreadyDeclared,
			"distribution is already declared",
			err,
		)
	}
	return domainerror.NewDistributionError(
		domainerror.ErrCodeInvalidDistributionTransition,
		fmt.Sprintf("cannot move distribution from %s to %s", dist.Status, target),
		domainerror.ErrInvalidDistributionTransition,
	)
}

func notEditable(dist *entity.Distribution) error {
	return domainerror.NewDistributionError(
		domainerror.ErrCodeDistributionNotEditable,
		fmt.Sprintf("distribution is %s and can no longer be changed", dist.Status),
		domainerror.ErrDistributionNotEditable,
	)
}
