// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/domain/entity"
)

// PropertyRepository defines the interface for property persistence operations.
type PropertyRepository interface {
	// Create inserts a new property.
	Create(ctx context.Context, property *entity.Property) error

	// FindByID retrieves a property. Returns ErrPropertyNotFound when missing.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// FindByIDForUpdate retrieves a property and locks its row until the unit of work ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// List returns all properties ordered by name.
	List(ctx context.Context) ([]*entity.Property, error)

	// Update saves changes to a property.
	Update(ctx context.Context, property *entity.Property) error

	// Delete removes a property together with its investments and statements.
	Delete(ctx context.Context, id uuid.UUID) error
}
