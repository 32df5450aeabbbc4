package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/repository/memstore"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// backend is everything the services and log sink need from storage.
type backend interface {
	services.UserStore
	services.CheckinStore
	services.TipStore
	logging.LogWriter
	logging.LogPruner
	handlers.Pinger
}

func main() {
	cfg := config.Load()

	// Structured logging (JSON to stdout)
	logging.Setup(cfg.LogLevel)

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		slog.Error("storage setup failed", "storage", cfg.Storage, "error", err)
		os.Exit(1)
	}

	// Persistent log sink (ERROR+ async batch)
	sink := logging.NewSinkHandler(store)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		logging.NewJSONHandler(os.Stdout, cfg.LogLevel),
		sink,
	)))

	cleanupDone := make(chan struct{})
	logging.StartCleanup(store, cfg.LogRetentionDays, cleanupDone)

	// Services
	accountService := services.NewAccountService(store, cfg)
	checkinService := services.NewCheckinService(store)
	insightService := services.NewInsightService(store, store)
	tipService := services.NewTipService(store)

	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := tipService.SeedDefaults(seedCtx); err != nil {
		slog.Error("tip seeding failed", "error", err)
	}
	cancel()

	// Handlers
	healthHandler := handlers.NewHealthHandler(store, cfg.Storage)
	authHandler := handlers.NewAuthHandler(accountService)
	userHandler := handlers.NewUserHandler(accountService)
	checkinHandler := handlers.NewCheckinHandler(checkinService)
	insightHandler := handlers.NewInsightHandler(insightService)
	tipHandler := handlers.NewTipHandler(tipService)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	app := newApp(cfg)
	routes.Setup(app, cfg, accountService, healthHandler, authHandler, userHandler, checkinHandler, insightHandler, tipHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "storage", cfg.Storage)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	close(cleanupDone)
	sink.Stop()
	sentry.Flush(2 * time.Second)

	if err := closeStore.Close(); err != nil {
		slog.Error("storage close error", "error", err)
	}

	slog.Info("server stopped")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openStore selects the record store named by STORAGE.
func openStore(cfg *config.Config) (backend, io.Closer, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		slog.Warn("using in-memory storage; data is lost on restart")
		return memstore.New(), closerFunc(func() error { return nil }), nil
	case config.StoragePostgres:
		if cfg.DBPassword == "" {
			return nil, nil, errors.New("DB_PASSWORD environment variable is required")
		}
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(db); err != nil {
			return nil, nil, err
		}
		return repository.NewStore(db), closerFunc(func() error { return database.Close(db) }), nil
	default:
		return nil, nil, errors.New("unknown STORAGE value " + cfg.Storage)
	}
}

// newApp builds the Fiber app with the global middleware stack. RequestLog sits
// outside recover so recovered panics are logged like any other 5xx.
func newApp(cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(requestid.New())
	app.Use(middleware.RequestLog())
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})
	return app
}
