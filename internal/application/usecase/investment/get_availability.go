package investment

import (
	"context"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
)

// GetAvailabilityOutput reports how many shares of a property are unsold.
type GetAvailabilityOutput struct {
	Property        *entity.Property
	SoldShares      int64
	AvailableShares int64
}

// GetAvailabilityUseCase handles availability lookups.
type GetAvailabilityUseCase struct {
	uow adapter.UnitOfWork
}

// NewGetAvailabilityUseCase creates a new GetAvailabilityUseCase instance.
func NewGetAvailabilityUseCase(uow adapter.UnitOfWork) *GetAvailabilityUseCase {
	return &GetAvailabilityUseCase{
		uow: uow,
	}
}

// Execute returns the current availability of a property.
func (uc *GetAvailabilityUseCase) Execute(ctx context.Context, propertyID uuid.UUID) (*GetAvailabilityOutput, error) {
	repos := uc.uow.Repositories()

	property, err := repos.Properties.FindByID(ctx, propertyID)
	if err != nil {
		return nil, propertyNotFound(err)
	}

	available, err := AvailableShares(ctx, repos.Investments, property)
	if err != nil {
		return nil, err
	}

	return &GetAvailabilityOutput{
		Property:        property,
		SoldShares:      property.TotalShares - available,
		AvailableShares: available,
	}, nil
}
