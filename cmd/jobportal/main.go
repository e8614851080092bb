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

	"github.com/jobportal/jobportal/internal/account"
	"github.com/jobportal/jobportal/internal/app"
	"github.com/jobportal/jobportal/internal/auth"
	"github.com/jobportal/jobportal/internal/jobposting"
	"github.com/jobportal/jobportal/internal/media"
	"github.com/jobportal/jobportal/internal/platform/cache"
	"github.com/jobportal/jobportal/internal/platform/db"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
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

	if err := db.Migrate(ctx, cfg.PGDSN); err != nil {
		logger.Error("run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		// The portal serves without redis; listings just skip the cache.
		logger.Warn("redis unavailable, caching disabled", slog.Any("error", err))
		redisClient = nil
	}
	defer func() {
		if redisClient == nil {
			return
		}
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	uploader, err := media.NewS3Uploader(ctx, media.S3Config{
		Endpoint:  cfg.S3Endpoint,
		Region:    cfg.S3Region,
		Bucket:    cfg.S3Bucket,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		PublicURL: cfg.S3PublicURL,
	})
	if err != nil {
		logger.Error("init uploader", slog.Any("error", err))
		os.Exit(1)
	}

	tokens := auth.NewTokenService([]byte(cfg.JWTSecret), cfg.TokenTTL)
	gate := auth.NewGate(logger, tokens)

	accountRepo := account.NewRepository(pool)
	accountService := account.NewService(accountRepo, uploader)
	accountHandler := account.NewHandler(logger, accountService, tokens, gate, cfg.TokenTTL, cfg.IsProduction())

	listingCache := cache.NewCache(redisClient, "jobs", cfg.ListingCacheTTL)
	jobRepo := jobposting.NewRepository(pool)
	jobService := jobposting.NewService(jobRepo, listingCache)
	jobHandler := jobposting.NewHandler(logger, jobService, gate)

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		AccountHandler: accountHandler,
		JobHandler:     jobHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", slog.Any("error", err))
		}
	}()

	logger.Info("server listening", slog.String("addr", cfg.AppAddr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
