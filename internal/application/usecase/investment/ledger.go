// Package investment contains the share ledger use cases.
package investment

import (
	"context"
	"errors"
	"fmt"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// AvailableShares is the single derivation of a property's unsold shares:
// total shares minus shares held under CONFIRMED investments.
func AvailableShares(ctx context.Context, investments adapter.InvestmentRepository, property *entity.Property) (int64, error) {
	sold, err := investments.SumConfirmedShares(ctx, property.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to sum confirmed shares: %w", err)
	}
	return property.TotalShares - sold, nil
}

func propertyNotFound(err error) error {
	if errors.Is(err, domainerror.ErrPropertyNotFound) {
		return domainerror.NewShareError(
			domainerror.ErrCodeSharePropertyNotFound,
			"property not found",
			domainerror.ErrPropertyNotFound,
		)
	}
	return fmt.Errorf("failed to load property: %w", err)
}
