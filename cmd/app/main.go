package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/DisruptPoints_Go/internal/config"
	"github.com/osse101/DisruptPoints_Go/internal/database"
	"github.com/osse101/DisruptPoints_Go/internal/database/postgres"
	"github.com/osse101/DisruptPoints_Go/internal/event"
	"github.com/osse101/DisruptPoints_Go/internal/item"
	"github.com/osse101/DisruptPoints_Go/internal/logger"
	"github.com/osse101/DisruptPoints_Go/internal/progression"
	"github.com/osse101/DisruptPoints_Go/internal/server"
	"github.com/osse101/DisruptPoints_Go/internal/worker"
	"github.com/osse101/DisruptPoints_Go/migrations"
)

const (
	dbMaxConnections = 10
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute

	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Setup(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "disrupt-points",
		Environment: os.Getenv("ENVIRONMENT"),
	})

	connString := cfg.GetDBConnString()
	if err := runMigrations(connString); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	pool, err := database.NewPool(connString, dbMaxConnections, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	catalog, err := item.LoadCatalog(cfg.ItemsPath)
	if err != nil {
		return fmt.Errorf("failed to load item catalog: %w", err)
	}

	repo := postgres.NewAccountRepository(pool)
	bus := event.NewMemoryBus()
	svc := progression.NewService(repo, catalog, bus)

	giftReset := worker.NewGiftResetWorker(repo, bus, time.Local)
	giftReset.Start()

	srv := server.NewServer(cfg.Port, cfg.APIKey, pool, svc, catalog)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	if err := giftReset.Shutdown(ctx); err != nil {
		slog.Error("Gift reset worker shutdown failed", "error", err)
	}

	slog.Info("Shutdown complete")
	return nil
}

// runMigrations brings the schema up to date with the embedded goose
// migrations before the pool opens.
func runMigrations(connString string) error {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.Up(db, ".")
}
