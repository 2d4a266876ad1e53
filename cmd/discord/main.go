package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/osse101/DisruptPoints_Go/internal/config"
	"github.com/osse101/DisruptPoints_Go/internal/database"
	"github.com/osse101/DisruptPoints_Go/internal/database/postgres"
	"github.com/osse101/DisruptPoints_Go/internal/discord"
	"github.com/osse101/DisruptPoints_Go/internal/event"
	"github.com/osse101/DisruptPoints_Go/internal/item"
	"github.com/osse101/DisruptPoints_Go/internal/logger"
	"github.com/osse101/DisruptPoints_Go/internal/progression"
	"github.com/osse101/DisruptPoints_Go/internal/scheduler"
	"github.com/osse101/DisruptPoints_Go/internal/voice"
	"github.com/osse101/DisruptPoints_Go/internal/worker"
)

const (
	dbMaxConnections = 5
	dbMaxIdleTime    = 5 * time.Minute
	dbMaxLifetime    = 30 * time.Minute

	tickWorkers   = 1
	tickQueueSize = 4

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

	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return fmt.Errorf("DISCORD_TOKEN environment variable must be set")
	}

	logger.Setup(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "disrupt-points-bot",
		Environment: os.Getenv("ENVIRONMENT"),
	})

	pool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConnections, dbMaxIdleTime, dbMaxLifetime)
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
	tracker := voice.NewTracker(svc)

	giftReset := worker.NewGiftResetWorker(repo, bus, time.Local)
	giftReset.Start()

	tickPool := worker.NewPool(tickWorkers, tickQueueSize)
	tickPool.Start()
	sched := scheduler.New(tickPool)
	sched.Schedule(cfg.VoiceTickInterval, worker.JobFunc(func(ctx context.Context) error {
		tracker.Tick()
		return nil
	}))

	bot, err := discord.New(discord.Config{Token: token}, svc, tracker, catalog)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	err = bot.Run()

	sched.Stop()
	tickPool.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := giftReset.Shutdown(ctx); shutdownErr != nil {
		slog.Error("Gift reset worker shutdown failed", "error", shutdownErr)
	}

	return err
}
