package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainerror "github.com/estateshare/backend/internal/domain/error"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims CustomClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func claimsFor(userID uuid.UUID, tokenType string, expiresIn time.Duration) CustomClaims {
	now := time.Now().UTC()
	return CustomClaims{
		UserID:    userID.String(),
		Email:     "ada@example.com",
		Role:      "ADMIN",
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
}

func TestTokenService_ValidateAccessToken(t *testing.T) {
	service := NewTokenService(testSecret)
	userID := uuid.New()

	t.Run("valid access token", func(t *testing.T) {
		token := signToken(t, testSecret, claimsFor(userID, "access", time.Hour))
		claims, err := service.ValidateAccessToken(context.Background(), token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != userID || claims.Role != "ADMIN" || claims.Email != "ada@example.com" {
			t.Errorf("unexpected claims %+v", claims)
		}
	})

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{name: "refresh token", token: signToken(t, testSecret, claimsFor(userID, "refresh", time.Hour)), want: domainerror.ErrInvalidToken},
		{name: "expired token", token: signToken(t, testSecret, claimsFor(userID, "access", -time.Minute)), want: domainerror.ErrExpiredToken},
		{name: "wrong secret", token: signToken(t, "other-secret", claimsFor(userID, "access", time.Hour)), want: domainerror.ErrInvalidToken},
		{name: "garbage", token: "not-a-jwt", want: domainerror.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.ValidateAccessToken(context.Background(), tt.token); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
