package property

import (
	"context"
	"fmt"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/application/usecase/investment"
	"github.com/estateshare/backend/internal/domain/entity"
)

// PropertyListing is a property with its current availability.
type PropertyListing struct {
	Property        *entity.Property
	AvailableShares int64
}

// ListPropertiesUseCase handles the property catalogue.
type ListPropertiesUseCase struct {
	uow adapter.UnitOfWork
}

// NewListPropertiesUseCase creates a new ListPropertiesUseCase instance.
func NewListPropertiesUseCase(uow adapter.UnitOfWork) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{
		uow: uow,
	}
}

// Execute lists every property ordered by name.
func (uc *ListPropertiesUseCase) Execute(ctx context.Context) ([]PropertyListing, error) {
	repos := uc.uow.Repositories()

	properties, err := repos.Properties.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	listings := make([]PropertyListing, len(properties))
	for i, p := range properties {
		available, err := investment.AvailableShares(ctx, repos.Investments, p)
		if err != nil {
			return nil, err
		}
		listings[i] = PropertyListing{Property: p, AvailableShares: available}
	}
	return listings, nil
}
