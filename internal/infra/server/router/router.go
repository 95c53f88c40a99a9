// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/estateshare/backend/internal/domain/entity"
	"github.com/estateshare/backend/internal/integration/entrypoint/controller"
	"github.com/estateshare/backend/internal/integration/entrypoint/middleware"
)

// Controllers groups every HTTP controller the router mounts.
type Controllers struct {
	Health       *controller.HealthController
	Property     *controller.PropertyController
	Investment   *controller.InvestmentController
	Statement    *controller.StatementController
	Distribution *controller.DistributionController
	Wallet       *controller.WalletController
	Investor     *controller.InvestorController
}

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	controllers         Controllers
	purchaseRateLimiter *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	purchaseRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		controllers:         controllers,
		purchaseRateLimiter: purchaseRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	if environment != "test" {
		r.engine.Use(gin.Logger())
	}

	r.engine.GET("/health", r.controllers.Health.Check)
	r.setupAPIRoutes()

	return r.engine
}

func (r *Router) setupAPIRoutes() {
	c := r.controllers

	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())

	properties := v1.Group("/properties")
	{
		properties.GET("", c.Property.List)
		properties.GET("/:id/availability", c.Property.Availability)
		properties.GET("/:id/statements", c.Statement.List)
		properties.POST("/:id/purchases", r.purchaseRateLimiter.Middleware(), c.Investment.Purchase)
	}

	v1.GET("/investments", c.Investment.List)
	v1.GET("/statements/:id/breakdown", c.Statement.Breakdown)
	v1.GET("/distributions/:id", c.Distribution.Get)

	wallet := v1.Group("/wallet")
	{
		wallet.GET("", c.Wallet.Get)
		wallet.GET("/transactions", c.Wallet.Transactions)
	}

	admin := v1.Group("/admin")
	admin.Use(r.authMiddleware.RequireRole(entity.UserRoleAdmin))
	{
		admin.POST("/properties", c.Property.Create)
		admin.PATCH("/properties/:id/status", c.Property.SetStatus)
		admin.DELETE("/properties/:id", c.Property.Delete)
		admin.POST("/properties/:id/statements", c.Statement.Create)

		admin.POST("/investments/:id/cancel", c.Investment.Cancel)

		distributions := admin.Group("/distributions")
		{
			distributions.POST("", c.Distribution.Create)
			distributions.POST("/bulk-declare", c.Distribution.BulkDeclare)
			distributions.DELETE("/:id", c.Distribution.Discard)
			distributions.POST("/:id/approve", c.Distribution.Approve)
			distributions.POST("/:id/declare", c.Distribution.Declare)
			distributions.POST("/:id/settle", c.Distribution.Settle)
			distributions.POST("/:id/fix-underwriter-payouts", c.Distribution.FixUnderwriterPayouts)
			distributions.GET("/:id/validation", c.Distribution.Validate)
			distributions.GET("/:id/export", c.Distribution.Export)
		}

		payouts := admin.Group("/payouts")
		{
			payouts.GET("/:id/validation", c.Distribution.ValidatePayout)
			payouts.POST("/:id/credit", c.Wallet.Credit)
			payouts.POST("/:id/fail", c.Wallet.MarkFailed)
		}

		investors := admin.Group("/investors")
		{
			investors.PUT("/:id", c.Investor.Upsert)
			investors.PATCH("/:id/role", c.Investor.SetRole)
			investors.PATCH("/:id/kyc", c.Investor.SetKYCStatus)
		}
	}
}
