package property

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
)

// SetPropertyStatusInput represents the input for opening or closing a property.
type SetPropertyStatusInput struct {
	PropertyID uuid.UUID
	Status     entity.PropertyStatus
}

// SetPropertyStatusUseCase opens or closes a property for investment.
type SetPropertyStatusUseCase struct {
	uow adapter.UnitOfWork
}

// NewSetPropertyStatusUseCase creates a new SetPropertyStatusUseCase instance.
func NewSetPropertyStatusUseCase(uow adapter.UnitOfWork) *SetPropertyStatusUseCase {
	return &SetPropertyStatusUseCase{
		uow: uow,
	}
}

// Execute changes the status under the same row lock purchases take.
func (uc *SetPropertyStatusUseCase) Execute(ctx context.Context, input SetPropertyStatusInput) (*entity.Property, error) {
	if !input.Status.IsValid() {
		return nil, domainerror.NewPropertyError(
			domainerror.ErrCodeInvalidPropertyStatus,
			fmt.Sprintf("status must be %s or %s", entity.PropertyStatusOpen, entity.PropertyStatusClosed),
			domainerror.ErrInvalidPropertyStatus,
		)
	}

	var updated *entity.Property
	err := uc.uow.Execute(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		property, err := repos.Properties.FindByIDForUpdate(ctx, input.PropertyID)
		if err != nil {
			return notFound(err)
		}

		property.Status = input.Status
		property.UpdatedAt = time.Now().UTC()
		if err := repos.Properties.Update(ctx, property); err != nil {
			return fmt.Errorf("failed to update property: %w", err)
		}
		updated = property
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Property status changed", "property_id", updated.ID, "status", updated.Status)
	return updated, nil
}

func notFound(err error) error {
	if errors.Is(err, domainerror.ErrPropertyNotFound) {
		return domainerror.NewPropertyError(
			domainerror.ErrCodePropertyNotFound,
			"property not found",
			err,
		)
	}
	return fmt.Errorf("failed to load property: %w", err)
}
