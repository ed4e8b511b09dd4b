package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"gapod/database"
	"gapod/internal/config"
	"gapod/internal/http-api/handler"
	"gapod/internal/http-api/middleware"
	"gapod/internal/http-api/repository"
	"gapod/internal/http-api/service"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// Setup structured logging
	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// Connect to the database; main owns the handle for its whole lifetime.
	db, err := database.Connect(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close(db, logger)

	// Repositories
	messageRepo := repository.NewMessageRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	// Services
	messageService := service.NewMessageService(messageRepo, cfg.RetentionWindow)
	likeService := service.NewLikeService(likeRepo, messageRepo)
	commentService := service.NewCommentService(commentRepo, messageRepo)
	retentionService := service.NewRetentionService(messageRepo, cfg.RetentionWindow, logger)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.Identity())

	writeLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	// Handlers
	messageHandler := handler.NewMessageHandler(messageService)
	likeHandler := handler.NewLikeHandler(likeService)
	commentHandler := handler.NewCommentHandler(commentService)
	cleanupHandler := handler.NewCleanupHandler(retentionService, db)

	api := r.Group("/api")
	{
		limit := writeLimiter.Middleware()
		messageHandler.RegisterRoutes(api.Group("/messages"), limit)
		likeHandler.RegisterRoutes(api.Group("/messages/:messageId/likes"), limit)
		commentHandler.RegisterRoutes(api.Group("/messages/:messageId/comments"), limit)
		cleanupHandler.RegisterRoutes(api)
	}

	// In-process retention sweeper; an external cron hitting POST
	// /api/cleanup works too, and 0 disables this loop entirely.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.SweepInterval > 0 {
		go retentionService.Run(ctx, cfg.SweepInterval)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
