// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in an access token issued by the auth service.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	Role      string
	ExpiresAt time.Time
}

// TokenService defines the interface for access token verification.
type TokenService interface {
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
