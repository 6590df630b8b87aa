package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"github.com/ai-buddy/student-support-service/internal/config"
	"github.com/ai-buddy/student-support-service/internal/events"
	"github.com/ai-buddy/student-support-service/internal/handlers"
	"github.com/ai-buddy/student-support-service/internal/repositories/memory"
	"github.com/ai-buddy/student-support-service/internal/services"
	"github.com/ai-buddy/student-support-service/internal/snapshot"
	"github.com/ai-buddy/student-support-service/internal/utils"
	"github.com/ai-buddy/student-support-service/internal/validator"
	"github.com/ai-buddy/student-support-service/pkg"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(slogger)
	logger := utils.NewSlogLogger(slogger)

	slogger.Info("Starting student support service",
		"environment", cfg.Environment, "port", cfg.Port)

	// Redis is optional: without it the session snapshot is not persisted
	// and every start begins logged out.
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = pkg.NewRedisClient(cfg)
		if err != nil {
			slogger.Warn("Redis unavailable, session persistence disabled", "error", err)
			redisClient = nil
		}
	}
	snapshots := snapshot.NewRedisStore(redisClient, cfg.SessionSnapshotKey)

	repo, err := memory.NewRepository()
	if err != nil {
		slogger.Error("Failed to build repository", "error", err)
		os.Exit(1)
	}

	bus := events.NewGoChannelBus(slogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := events.RunEventLogger(ctx, bus, slogger); err != nil {
		slogger.Error("Failed to start event logger", "error", err)
		os.Exit(1)
	}

	serviceManager := services.NewServiceManager(repo, snapshots, bus, slogger, services.ServiceManagerConfig{
		LoginDelay: cfg.LoginDelay,
		ChatSeed:   cfg.ChatSeed,
	})
	if err := serviceManager.Initialize(ctx); err != nil {
		slogger.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	handlers.SetupMiddleware(router, logger)

	handlerManager := handlers.NewHandlerManager(serviceManager, validator.New(), logger)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slogger.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slogger.Error("HTTP server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slogger.Error("HTTP server shutdown failed", "error", err)
	}
	if err := serviceManager.Shutdown(shutdownCtx); err != nil {
		slogger.Error("Service shutdown failed", "error", err)
	}
	if err := bus.Close(); err != nil {
		slogger.Error("Event bus close failed", "error", err)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			slogger.Error("Redis close failed", "error", err)
		}
	}
	if err := repo.Close(); err != nil {
		slogger.Error("Repository close failed", "error", err)
	}

	slogger.Info("Shutdown complete")
}
