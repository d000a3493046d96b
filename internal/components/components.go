package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/wamique00786/wesalvator/internal/api"
	"github.com/wamique00786/wesalvator/internal/api/handlers/http/system"
	"github.com/wamique00786/wesalvator/internal/auth"
	"github.com/wamique00786/wesalvator/internal/config"
	"github.com/wamique00786/wesalvator/internal/realtime"
	"github.com/wamique00786/wesalvator/internal/redis"
	"github.com/wamique00786/wesalvator/internal/service"
	"github.com/wamique00786/wesalvator/internal/storage/photos"
	"github.com/wamique00786/wesalvator/internal/storage/postgres"
	"github.com/wamique00786/wesalvator/internal/workers"
	"github.com/wamique00786/wesalvator/pkg/logger"
)

const notifyBackoff = 2 * time.Second

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	NotifyQ    *redis.NotificationQueue
	Hub        *realtime.Hub

	sweeper *workers.HistorySweeper
	sender  *workers.NotificationSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres",
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	photoStore, err := photos.New(cfg.Photos.Dir, cfg.Photos.MaxSizeBytes, logger)
	if err != nil {
		storage.Pool.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to init photo store: %w", err)
	}

	tokens, err := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		storage.Pool.Close()
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to init auth: %w", err)
	}

	notifyQueue := redis.NewNotificationQueue(redisClient.Client, cfg.Notify.QueueKey)
	snapshots := redis.NewSnapshotCache(redisClient, cfg.Realtime.SnapshotTTL)
	hub := realtime.NewHub(snapshots, logger)

	notifier := service.NewNotifier(notifyQueue, logger)
	matcher := service.NewMatcher(storage.PositionStore(), storage.UserStore(), storage.ReportStore(), notifier, cfg.Matcher, logger)
	ledger := service.NewHistoryLedger(storage.HistoryStore(), cfg.History, logger)

	reportSvc := service.NewReportService(storage.ReportStore(), storage.UserStore(), photoStore, matcher, logger)
	locationSvc := service.NewLocationService(storage.PositionStore(), storage.UserStore(), ledger, snapshots, hub, cfg.History, logger)
	taskSvc := service.NewTaskService(storage.TaskStore(), storage.UserStore(), logger)
	statsSvc := service.NewStatsService(storage.Stats(), storage.ReportStore(), hub)

	srv := service.NewService(reportSvc, locationSvc, ledger, taskSvc, statsSvc)

	// Nobody is connected to a freshly started process.
	if err := locationSvc.ResetPresence(ctx); err != nil {
		logger.Warn("Failed to reset presence", slog.Any("error", err))
	}

	wsHandler := realtime.NewHandler(hub, locationSvc, tokens, cfg.Realtime, logger)

	httpServer := api.NewServer(ctx, cfg, logger, srv, api.Deps{
		Tokens:   tokens,
		Realtime: wsHandler.ServeWS,
		Pingers: map[string]system.Pinger{
			"postgres": storage,
			"redis":    redisClient,
		},
	})
	logger.Info("Initialized server")

	sweeper := workers.NewHistorySweeper(ledger, cfg.History.SweepInterval, logger)
	sender := workers.NewNotificationSender(logger, notifyQueue, workers.NewDeliverer(cfg.Notify, logger), notifyBackoff)

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		NotifyQ:    notifyQueue,
		Hub:        hub,
		sweeper:    sweeper,
		sender:     sender,
	}, nil
}

// RunWorkers blocks until ctx is done and every background worker has returned.
func (c *Components) RunWorkers(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		c.sweeper.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		c.sender.Run(ctx)
	}()
	wg.Wait()
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
