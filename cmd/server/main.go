package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/fintrack/internal/adapter/http"
	"github.com/iho/fintrack/internal/adapter/http/handler"
	redisRepo "github.com/iho/fintrack/internal/adapter/repository/redis"
	"github.com/iho/fintrack/internal/infrastructure/config"
	"github.com/iho/fintrack/internal/infrastructure/logger"
	"github.com/iho/fintrack/internal/infrastructure/metrics"
	redisInfra "github.com/iho/fintrack/internal/infrastructure/redis"
	"github.com/iho/fintrack/internal/ledger"
	"github.com/iho/fintrack/internal/usecase"

	redisDriver "github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to Redis when configured; without it the ledger runs
	// memory-only and state is lost on restart.
	var (
		redisClient   *redisDriver.Client
		snapshotStore usecase.SnapshotStore
	)
	if cfg.RedisURL != "" {
		redisClient, err = redisInfra.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			appLogger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		snapshotStore = redisRepo.NewSnapshotStore(redisClient, cfg.SnapshotKey)
		appLogger.Info().Msg("connected to redis")
	} else {
		appLogger.Warn().Msg("no REDIS_URL configured, running memory-only")
	}

	// Initialize ledger core and metrics
	ledgerCore := ledger.New(ledger.Config{UndoCapacity: cfg.UndoLogCapacity})
	appMetrics := metrics.New()

	// Initialize use case
	ledgerUC := usecase.NewLedgerUseCase(ledgerCore, snapshotStore, appMetrics, appLogger)
	if err := ledgerUC.Bootstrap(ctx); err != nil {
		appLogger.Fatal().Err(err).Msg("failed to restore ledger state")
	}

	// Initialize handlers
	transactionHandler := handler.NewTransactionHandler(ledgerUC)
	budgetHandler := handler.NewBudgetHandler(ledgerUC)
	billHandler := handler.NewBillHandler(ledgerUC)
	analyticsHandler := handler.NewAnalyticsHandler(ledgerUC)
	categoryHandler := handler.NewCategoryHandler(ledgerUC)
	ledgerHandler := handler.NewLedgerHandler(ledgerUC)
	healthHandler := handler.NewHealthHandler(redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		TransactionHandler: transactionHandler,
		BudgetHandler:      budgetHandler,
		BillHandler:        billHandler,
		AnalyticsHandler:   analyticsHandler,
		CategoryHandler:    categoryHandler,
		LedgerHandler:      ledgerHandler,
		HealthHandler:      healthHandler,
		Logger:             appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
