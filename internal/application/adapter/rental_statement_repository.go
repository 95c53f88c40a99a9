// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/domain/entity"
)

// RentalStatementRepository defines the interface for rental statement persistence.
type RentalStatementRepository interface {
	// Create inserts a new statement.
	Create(ctx context.Context, statement *entity.RentalStatement) error

	// FindByID retrieves a statement. Returns ErrStatementNotFound when missing.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RentalStatement, error)

	// FindByIDForUpdate retrieves a statement and locks its row.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.RentalStatement, error)

	// ListByProperty returns a property's statements ordered by period.
	ListByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.RentalStatement, error)
}
