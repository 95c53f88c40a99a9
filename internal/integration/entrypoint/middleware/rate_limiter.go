package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/estateshare/backend/internal/domain/error"
	"github.com/estateshare/backend/internal/integration/entrypoint/dto"
)

const (
	defaultMaxAttempts    = 30
	defaultWindowDuration = time.Minute
	rateLimitKeyPrefix    = "ratelimit:"
)

type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

// RateLimiter throttles requests per caller with a fixed window. Counters
// live in Redis so every API instance shares them; when Redis is absent or
// failing, an in-process window is used instead.
type RateLimiter struct {
	name           string
	client         *redis.Client
	mu             sync.Mutex
	entries        map[string]*rateLimitEntry
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a rate limiter with default settings.
func NewRateLimiter(name string, client *redis.Client) *RateLimiter {
	return NewRateLimiterWithConfig(name, client, defaultMaxAttempts, defaultWindowDuration)
}

// NewRateLimiterWithConfig creates a rate limiter with custom settings.
func NewRateLimiterWithConfig(name string, client *redis.Client, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		name:           name,
		client:         client,
		entries:        make(map[string]*rateLimitEntry),
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin handler keyed on the authenticated user, or the
// client IP for anonymous callers.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if userID, ok := GetUserIDFromContext(c); ok {
			key = userID.String()
		}

		if !rl.allow(c.Request.Context(), key) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(ctx context.Context, key string) bool {
	if rl.client != nil {
		allowed, err := rl.allowShared(ctx, key)
		if err == nil {
			return allowed
		}
		slog.Warn("Rate limiter falling back to local window", "limiter", rl.name, "error", err)
	}
	return rl.allowLocal(key)
}

func (rl *RateLimiter) allowShared(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("%s%s:%s", rateLimitKeyPrefix, rl.name, key)

	attempts, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if attempts == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			return false, err
		}
	}
	return attempts <= int64(rl.maxAttempts), nil
}

func (rl *RateLimiter) allowLocal(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()

	entry, exists := rl.entries[key]
	if !exists || now.After(entry.resetTime) {
		rl.entries[key] = &rateLimitEntry{
			attempts:  1,
			resetTime: now.Add(rl.windowDuration),
		}
		return true
	}

	if entry.attempts < rl.maxAttempts {
		entry.attempts++
		return true
	}
	return false
}

// Cleanup removes expired local entries.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, entry := range rl.entries {
		if now.After(entry.resetTime) {
			delete(rl.entries, key)
		}
	}
}
