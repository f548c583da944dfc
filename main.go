package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/giygas/protocols-api/catalog"
	"github.com/giygas/protocols-api/config"
	"github.com/giygas/protocols-api/generation"
	"github.com/giygas/protocols-api/handlers"
	"github.com/giygas/protocols-api/health"
	"github.com/giygas/protocols-api/interfaces"
	"github.com/giygas/protocols-api/logging"
	"github.com/giygas/protocols-api/scheduler"
	"github.com/giygas/protocols-api/server"
	"github.com/giygas/protocols-api/sessions"
	"github.com/giygas/protocols-api/storage"
	"github.com/giygas/protocols-api/validation"
	"github.com/joho/godotenv"
)

const (
	storageOpenTimeout = 10 * time.Second
	shutdownTimeout    = 30 * time.Second
)

// app holds the wired components of the service
type app struct {
	server    *server.Server
	scheduler *scheduler.Scheduler
	sessions  *sessions.Registry
	store     *storage.Store
}

// newApp wires every component from the configuration. A plan store that cannot
// be opened is logged and the service runs without persistence.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	cat := catalog.Default()
	validator := validation.NewDataValidator()
	if err := validator.ValidateCatalog(cat); err != nil {
		return nil, fmt.Errorf("catalog validation failed: %w", err)
	}
	validation.LogCatalogQuality(validator.ReportCatalogQuality(cat))

	a := &app{}

	openCtx, cancel := context.WithTimeout(ctx, storageOpenTimeout)
	store, err := storage.Open(openCtx, cfg.StorageDriver, cfg.StorageDSN)
	cancel()
	if err != nil {
		logging.Warn("Plan store unavailable, generated plans will not be persisted",
			"driver", cfg.StorageDriver, "error", err)
	} else {
		a.store = store
	}

	a.sessions = sessions.NewRegistry(cat,
		sessions.WithMaxSelections(cfg.MaxAilmentSelections),
		sessions.WithTransitionListener(sessions.RecordTransition),
	)

	client := generation.NewClient(cfg.GenerationBaseURL, generation.WithTimeout(cfg.GenerationTimeout))

	// keep nil stores as untyped nil interfaces
	var planStore interfaces.PlanStore
	var genStore generation.Store
	if a.store != nil {
		planStore, genStore = a.store, a.store
	}
	service := generation.NewService(client, genStore)

	healthChecker := health.NewHealthChecker(cat, a.sessions, planStore)
	handler := handlers.NewHTTPHandler(cat, a.sessions, planStore, service, validator, healthChecker)

	a.scheduler = scheduler.NewScheduler(a.sessions, planStore, cfg.SessionIdleTimeout, cfg.SessionSweepInterval)
	a.server = server.NewServer(cfg, handler)

	logging.Info("Catalog loaded",
		"ailments", len(cat.Ailments()),
		"protocols", len(cat.Protocols()),
		"persistence", a.store != nil,
	)
	return a, nil
}

// shutdown stops the server, the scheduler and closes the store
func (a *app) shutdown(ctx context.Context) error {
	var errs []error
	if err := a.server.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	a.scheduler.Stop()
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close store: %w", err))
		}
	}
	return errors.Join(errs...)
}

// loadEnv reads .env from the working directory, then from the executable directory
func loadEnv() {
	if err := godotenv.Load(); err == nil {
		return
	}
	ex, err := os.Executable()
	if err != nil {
		return
	}
	_ = godotenv.Load(filepath.Join(filepath.Dir(ex), ".env"))
}

func main() {
	loadEnv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	logSvc := logging.InitLogger(logging.Options{
		Dir:            cfg.LogDir,
		Env:            cfg.Env,
		Level:          cfg.LogLevel,
		RetentionWeeks: cfg.LogRetentionWeeks,
		MaxFileSize:    cfg.MaxLogFileSize,
	})
	defer logSvc.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg)
	if err != nil {
		logging.Error("Failed to start", "error", err)
		logSvc.Close()
		os.Exit(1)
	}

	if err := a.scheduler.Start(); err != nil {
		logging.Error("Failed to start scheduler", "error", err)
		logSvc.Close()
		os.Exit(1)
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- a.server.Start()
	}()

	select {
	case <-ctx.Done():
		logging.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			logging.Error("Server failed", "error", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.shutdown(shutdownCtx); err != nil {
		logging.Error("Shutdown finished with errors", "error", err)
	}
}
