// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/domain/entity"
	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserIDKey is the context key for the authenticated user's ID.
	UserIDKey ContextKey = "user_id"
	// UserEmailKey is the context key for the authenticated user's email.
	UserEmailKey ContextKey = "user_email"
	// UserRoleKey is the context key for the role claimed by the access token.
	UserRoleKey ContextKey = "user_role"
)

// AuthMiddleware verifies access tokens issued by the auth service.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, http.StatusUnauthorized, "Authorization header is required", domainerror.ErrCodeMissingToken)
			return
		}

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			abort(c, http.StatusUnauthorized, "Invalid authorization header format", domainerror.ErrCodeInvalidToken)
			return
		}
		if token == "" {
			abort(c, http.StatusUnauthorized, "Token is required", domainerror.ErrCodeMissingToken)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			abort(c, http.StatusUnauthorized, "Invalid or expired token", domainerror.ErrCodeInvalidToken)
			return
		}

		c.Set(string(UserIDKey), claims.UserID)
		c.Set(string(UserEmailKey), claims.Email)
		c.Set(string(UserRoleKey), entity.UserRole(claims.Role))

		c.Next()
	}
}

// RequireRole rejects callers whose token does not carry one of the roles.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := GetUserRoleFromContext(c)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		abort(c, http.StatusForbidden, "Insufficient role for this operation", domainerror.ErrCodeForbidden)
	}
}

func abort(c *gin.Context, status int, message string, code domainerror.AuthErrorCode) {
	c.AbortWithStatusJSON(status, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}

// GetUserIDFromContext extracts the user ID from the Gin context.
func GetUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(string(UserIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserEmailFromContext extracts the user email from the Gin context.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get(string(UserEmailKey))
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok
}

// GetUserRoleFromContext extracts the token role from the Gin context.
func GetUserRoleFromContext(c *gin.Context) (entity.UserRole, bool) {
	role, exists := c.Get(string(UserRoleKey))
	if !exists {
		return "", false
	}
	r, ok := role.(entity.UserRole)
	return r, ok
}
