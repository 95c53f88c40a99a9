// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/estateshare/backend/config"
	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/application/usecase/distribution"
	"github.com/estateshare/backend/internal/application/usecase/investment"
	"github.com/estateshare/backend/internal/application/usecase/investor"
	"github.com/estateshare/backend/internal/application/usecase/property"
	"github.com/estateshare/backend/internal/application/usecase/statement"
	"github.com/estateshare/backend/internal/application/usecase/wallet"
	"github.com/estateshare/backend/internal/domain/valueobject"
	"github.com/estateshare/backend/internal/infra/server/router"
	"github.com/estateshare/backend/internal/integration/adapters"
	"github.com/estateshare/backend/internal/integration/entrypoint/controller"
	"github.com/estateshare/backend/internal/integration/entrypoint/middleware"
	"github.com/estateshare/backend/internal/integration/export"
	"github.com/estateshare/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	UoW    adapter.UnitOfWork
	Router *router.Router
}

// NewInjector wires every ledger use case behind the router. Redis is
// optional: without it locks are skipped and rate limits are per process.
func NewInjector(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *Injector {
	uow := persistence.NewUnitOfWork(db, cfg.Database.TxIsolation)

	var locker adapter.Locker
	if rdb != nil {
		locker = adapters.NewRedisLocker(rdb, cfg.Redis.LockTTL, cfg.Redis.LockWait)
	}
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)
	fx := valueobject.NewFXTable(cfg.Ledger.FXRates)

	// Property and share ledger
	propertyController := controller.NewPropertyController(
		property.NewListPropertiesUseCase(uow),
		investment.NewGetAvailabilityUseCase(uow),
		property.NewCreatePropertyUseCase(uow, cfg.Ledger.Currency),
		property.NewSetPropertyStatusUseCase(uow),
		property.NewDeletePropertyUseCase(uow),
	)
	investmentController := controller.NewInvestmentController(
		investment.NewPurchaseSharesUseCase(uow, locker),
		investment.NewListInvestmentsUseCase(uow),
		investment.NewCancelInvestmentUseCase(uow),
	)
	statementController := controller.NewStatementController(
		statement.NewCreateStatementUseCase(uow),
		statement.NewListStatementsUseCase(uow),
		statement.NewGetBreakdownUseCase(uow),
	)

	// Distribution engine
	validator := distribution.NewValidator(uow, cfg.Ledger.ReconciliationTolerance)
	declareUseCase := distribution.NewDeclareUseCase(uow, validator)
	distributionController := controller.NewDistributionController(controller.DistributionUseCases{
		Create:      distribution.NewCreateDraftUseCase(uow, locker),
		Get:         distribution.NewGetDistributionUseCase(uow),
		Approve:     distribution.NewApproveUseCase(uow),
		Declare:     declareUseCase,
		BulkDeclare: distribution.NewBulkDeclareUseCase(declareUseCase),
		Discard:     distribution.NewDiscardUseCase(uow),
		Settle:      distribution.NewSettleUseCase(uow),
		Fix:         distribution.NewFixUnderwriterPayoutsUseCase(uow),
		Export:      distribution.NewExportScheduleUseCase(uow, export.NewExcelExporter()),
		Validator:   validator,
	})

	// Wallet
	walletController := controller.NewWalletController(
		wallet.NewGetWalletUseCase(uow, fx, cfg.Ledger.Currency),
		wallet.NewListTransactionsUseCase(uow),
		wallet.NewCreditWalletUseCase(uow),
		wallet.NewMarkPayoutFailedUseCase(uow),
	)

	investorController := controller.NewInvestorController(
		investor.NewUpsertInvestorUseCase(uow),
		investor.NewSetRoleUseCase(uow),
		investor.NewSetKYCStatusUseCase(uow),
	)

	healthController := controller.NewHealthController(databaseChecker(db), redisChecker(rdb))

	purchaseRateLimiter := middleware.NewRateLimiterWithConfig(
		"purchase",
		rdb,
		cfg.RateLimit.PurchaseAttempts,
		cfg.RateLimit.PurchaseWindow,
	)

	r := router.NewRouter(
		router.Controllers{
			Health:       healthController,
			Property:     propertyController,
			Investment:   investmentController,
			Statement:    statementController,
			Distribution: distributionController,
			Wallet:       walletController,
			Investor:     investorController,
		},
		purchaseRateLimiter,
		middleware.NewAuthMiddleware(tokenService),
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
		UoW:    uow,
		Router: r,
	}
}

func databaseChecker(db *gorm.DB) controller.HealthChecker {
	return func(ctx context.Context) bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.PingContext(ctx) == nil
	}
}

func redisChecker(rdb *redis.Client) controller.HealthChecker {
	if rdb == nil {
		return nil
	}
	return func(ctx context.Context) bool {
		return rdb.Ping(ctx).Err() == nil
	}
}
