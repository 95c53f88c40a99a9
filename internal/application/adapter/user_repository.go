// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/domain/entity"
)

// UserRepository defines the interface for investor profile persistence.
type UserRepository interface {
	// Upsert creates the profile or refreshes its email and name.
	Upsert(ctx context.Context, user *entity.User) error

	// FindByID retrieves a profile. Returns ErrInvestorNotFound when missing.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDs retrieves several profiles keyed by id. Missing ids are omitted.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.User, error)

	// Update saves changes to a profile.
	Update(ctx context.Context, user *entity.User) error
}
