package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"

	httpAdapter "github.com/hhsxp/sla-dashboard/internal/adapters/primary/http"
	mw "github.com/hhsxp/sla-dashboard/internal/adapters/primary/http/middleware"
	"github.com/hhsxp/sla-dashboard/internal/adapters/secondary/memory"
	"github.com/hhsxp/sla-dashboard/internal/adapters/secondary/postgres"
	"github.com/hhsxp/sla-dashboard/internal/adapters/secondary/spreadsheet"
	"github.com/hhsxp/sla-dashboard/internal/config"
	"github.com/hhsxp/sla-dashboard/internal/core/ports"
	"github.com/hhsxp/sla-dashboard/internal/core/services"
	"github.com/hhsxp/sla-dashboard/internal/infrastructure/logging"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize Structured Logger
	logger := logging.NewLogger(logging.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Output:      os.Stdout,
		ServiceName: cfg.App.Name,
		Environment: cfg.App.Environment,
	})

	logger.Info("starting service",
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	// 3. Initialize Version Store (Postgres when configured, memory otherwise)
	ctx := context.Background()

	var (
		versionRepo ports.VersionRepository
		pool        *pgxpool.Pool
	)
	if cfg.HasDatabase() {
		poolConfig, err := pgxpool.ParseConfig(cfg.Database.URL)
		if err != nil {
			logger.Error("failed to parse database URL", "error", err)
			os.Exit(1)
		}
		poolConfig.MaxConns = int32(cfg.Database.MaxOpenConns)
		poolConfig.MinConns = int32(cfg.Database.MaxIdleConns)
		poolConfig.MaxConnLifetime = cfg.Database.ConnMaxLifetime
		poolConfig.MaxConnIdleTime = cfg.Database.ConnMaxIdleTime

		pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := pool.Ping(ctx); err != nil {
			logger.Error("database ping failed", "error", err)
			os.Exit(1)
		}
		logger.Info("database connection established")

		versionRepo = postgres.NewVersionRepository(pool)
	} else {
		logger.Info("no DATABASE_URL configured, version history kept in memory")
		versionRepo = memory.NewVersionStore()
	}

	// 4. Initialize Rate Limiters
	var generalRateLimiter, uploadRateLimiter *mw.RateLimiter
	if cfg.RateLimit.Enabled {
		generalRateLimiter = mw.NewRateLimiter(mw.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstSize:         cfg.RateLimit.BurstSize,
			CleanupInterval:   time.Minute,
			TTL:               3 * time.Minute,
		})

		uploadRateLimiter = mw.NewRateLimiter(mw.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.UploadRPS,
			BurstSize:         cfg.RateLimit.UploadBurst,
			CleanupInterval:   time.Minute,
			TTL:               5 * time.Minute,
		})
	}

	// 5. Dependency Injection (Wiring the Hexagon)

	// Error Handler
	errorHandler := httpAdapter.NewErrorHandler(logger)

	// Codec (Secondary Adapter)
	codec := spreadsheet.NewXLSXCodec()

	// Services (Core)
	reportService := services.NewReportService(codec, versionRepo, logger)

	// Handlers (Primary Adapters)
	uploadHandler := httpAdapter.NewUploadHandler(reportService, errorHandler, logger, cfg.Upload.MaxBytes)
	versionHandler := httpAdapter.NewVersionHandler(reportService, errorHandler, logger)
	exportHandler := httpAdapter.NewExportHandler(reportService, errorHandler, logger)
	healthHandler := httpAdapter.NewHealthHandler(poolChecker(pool), cfg.App.Version)

	// 6. Setup Router
	r := chi.NewRouter()

	// Global middleware
	r.Use(mw.RequestID)
	r.Use(mw.RequestLogger(logger))
	r.Use(mw.RecoveryLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	if generalRateLimiter != nil {
		r.Use(generalRateLimiter.Middleware)
	}

	// Health check endpoints (outside /api/v1 for standard probe paths)
	r.Get("/health", healthHandler.HandleHealth)
	r.Get("/health/live", healthHandler.HandleLiveness)
	r.Get("/health/ready", healthHandler.HandleReadiness)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Upload gets a stricter rate limit: parsing workbooks is the
		// most expensive request this service takes.
		r.Group(func(r chi.Router) {
			if uploadRateLimiter != nil {
				r.Use(uploadRateLimiter.Middleware)
			}
			r.Route("/upload", uploadHandler.RegisterRoutes)
		})

		r.Route("/versions", versionHandler.RegisterRoutes)
		r.Route("/export", exportHandler.RegisterRoutes)
	})

	// 7. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server shutdown complete")
}

// poolChecker adapts a possibly-nil pool to the health handler interface.
func poolChecker(pool *pgxpool.Pool) httpAdapter.HealthChecker {
	if pool == nil {
		return nil
	}
	return pool
}
