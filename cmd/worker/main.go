package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/jobportal/jobportal/internal/app"
	"github.com/jobportal/jobportal/internal/jobposting"
	"github.com/jobportal/jobportal/internal/platform/cache"
	"github.com/jobportal/jobportal/internal/platform/db"
	"github.com/jobportal/jobportal/tasks"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	listingCache := cache.NewCache(redisClient, "jobs", cfg.ListingCacheTTL)
	jobService := jobposting.NewService(jobposting.NewRepository(pool), listingCache)

	warmupJob := tasks.NewSearchWarmupJob(jobService, logger)
	warmupTask, err := tasks.NewSearchWarmupTask(tasks.SearchWarmupPayload{})
	if err != nil {
		logger.Error("build warmup task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := tasks.NewWorker(tasks.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []tasks.TaskHandler{
			{Type: tasks.TaskSearchWarmup, Handler: warmupJob.Handle},
		},
		Cron: []tasks.CronRegistration{
			{Spec: "@every 10m", Task: warmupTask},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("worker started")
	if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("worker stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
