// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker func(ctx context.Context) bool

// HealthController handles health check endpoints.
type HealthController struct {
	database HealthChecker
	redis    HealthChecker
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Redis     string `json:"redis"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. A nil
// redis checker reports Redis as disabled.
func NewHealthController(database, redis HealthChecker) *HealthController {
	return &HealthController{
		database: database,
		redis:    redis,
	}
}

// Check handles GET /health requests. Redis is optional, so only a
// database outage degrades the status.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    "ok",
		Database:  "disconnected",
		Redis:     "disabled",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if h.database != nil && h.database(ctx) {
		response.Database = "connected"
	} else {
		response.Status = "degraded"
	}

	if h.redis != nil {
		response.Redis = "disconnected"
		if h.redis(ctx) {
			response.Redis = "connected"
		}
	}

	status := http.StatusOK
	if response.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}
