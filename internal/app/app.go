// Package app assembles the training hub: it opens the local store, builds
// the services on top of it, seeds the course catalog and hands control to
// the interactive CLI. It also owns graceful shutdown on OS signals.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/4citeB4U/AllwaysTrucking/internal/cli"
	"github.com/4citeB4U/AllwaysTrucking/internal/config"
	"github.com/4citeB4U/AllwaysTrucking/internal/filex"
	"github.com/4citeB4U/AllwaysTrucking/internal/logging"
	"github.com/4citeB4U/AllwaysTrucking/internal/repositories/appstate"
	"github.com/4citeB4U/AllwaysTrucking/internal/services"
	"github.com/4citeB4U/AllwaysTrucking/internal/session"
	"github.com/4citeB4U/AllwaysTrucking/internal/storage"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	catalog *services.CatalogService
	cli     *cli.App
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)})
	logger := logging.NewSlogLogger(slog.New(handler))

	dir, err := filex.EnsureSubDir(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}

	dsn := filepath.Join(dir, cfg.DatabaseFile)
	db, err := storage.Open(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	logger.Info(ctx, "store ready", "path", dsn)

	sessions := session.NewCache(appstate.NewSQLiteRepository(db))

	as := services.NewAuthService(db, sessions)
	cs := services.NewCatalogService(db)
	ps := services.NewProgressService(db)

	return &App{
		config:  cfg,
		logger:  logger,
		db:      db,
		catalog: cs,
		cli:     cli.NewApp(as, cs, ps),
	}, nil
}

func (a *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run seeds the catalog, starts the CLI and blocks until the user exits or a
// termination signal arrives, then closes the store.
func (a *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	a.initSignalHandler(cancelFunc)

	a.logger.Info(ctx, "starting training hub")

	if a.config.SeedCatalog {
		if err := a.catalog.Seed(ctx); err != nil {
			a.logger.Error(ctx, "catalog seed failed", "error", err)
		}
	}

	a.cli.Run(ctx)

	a.shutdown(ctx)
}

// shutdown closes the store, giving it at most ShutdownTimeout.
func (a *App) shutdown(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		if err := a.db.Close(); err != nil {
			a.logger.Error(ctx, "error closing store", "error", err)
		}
		close(done)
	}()

	select {
	case <-done:
		a.logger.Info(ctx, "store closed")
	case <-time.After(a.config.ShutdownTimeout):
		a.logger.Warn(ctx, "shutdown timed out")
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
