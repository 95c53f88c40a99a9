// Package main is the entry point for the EstateShare ledger API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/estateshare/backend/config"
	"github.com/estateshare/backend/internal/application/adapter"
	"github.com/estateshare/backend/internal/infra/cache"
	"github.com/estateshare/backend/internal/infra/db"
	"github.com/estateshare/backend/internal/infra/dependency"
	"github.com/estateshare/backend/internal/integration/email"
	"github.com/estateshare/backend/internal/integration/email/templates"
	"github.com/estateshare/backend/internal/integration/persistence"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting EstateShare ledger API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"ledger_currency", cfg.Ledger.Currency,
	)

	database, err := openDatabase(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Redis backs the distributed locks and shared rate limits. The ledger
	// stays correct without it because row locks remain authoritative.
	var rdb *redis.Client
	if cfg.Redis.URL != "" {
		rdb, err = cache.NewRedisClient(&cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable, continuing with database locks only", "error", err)
			rdb = nil
		} else {
			defer func() { _ = rdb.Close() }()
		}
	}

	injector := dependency.NewInjector(cfg, database.DB(), rdb)
	engine := injector.Router.Setup(cfg.Server.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Email.WorkerEnabled {
		worker, err := newEmailWorker(cfg, database)
		if err != nil {
			slog.Error("Failed to start email worker", "error", err)
			os.Exit(1)
		}
		go worker.Start(ctx)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

func openDatabase(cfg *config.DatabaseConfig) (*db.Database, error) {
	switch cfg.Driver {
	case "sqlite":
		return db.NewSQLiteConnection(cfg.URL)
	case "postgres", "":
		return db.NewPostgresConnection(cfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

func newEmailWorker(cfg *config.Config, database *db.Database) (*email.Worker, error) {
	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, err
	}

	var sender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		sender = email.NewResendClient(
			cfg.Email.ResendAPIKey,
			cfg.Email.FromName,
			cfg.Email.FromEmail,
			email.WithBaseURL(cfg.Email.ResendBaseURL),
		)
	} else {
		slog.Warn("RESEND_API_KEY not set, payout emails will be logged instead of sent")
		sender = email.NewLogSender()
	}

	workerCfg := email.DefaultWorkerConfig()
	workerCfg.PollInterval = cfg.Email.PollInterval
	workerCfg.BatchSize = cfg.Email.BatchSize
	workerCfg.AppBaseURL = cfg.Email.AppBaseURL

	queue := persistence.NewEmailQueueRepository(database.DB())
	return email.NewWorker(queue, sender, renderer, workerCfg), nil
}
