package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobswipe-backend/config"
	_ "go-jobswipe-backend/docs" // Important for Swagger
	"go-jobswipe-backend/internal/cache"
	v1 "go-jobswipe-backend/internal/delivery/http/v1"
	"go-jobswipe-backend/internal/notification"
	"go-jobswipe-backend/internal/repository/postgres"
	"go-jobswipe-backend/internal/usecase"
	"go-jobswipe-backend/pkg/database"
	"go-jobswipe-backend/pkg/logger"
	"go-jobswipe-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Job Swipe Match Engine API
// @version         1.0
// @description     Mutual-match consistency engine for a two-sided job-matching product.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.Debug)
	logger.Log.Info("Starting match engine backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional: rate limiting, score cache, event queue)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, falling back to in-memory/log paths", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	swipeRepo := postgres.NewSwipeRepository(dbPool)
	matchRepo := postgres.NewMatchRepository(dbPool, cfg.StorageRetryAttempts)
	snapshotRepo := postgres.NewSnapshotRepository(dbPool)

	// 6. Setup Event Dispatcher and Score Cache
	dispatcher := notification.NewQueueDispatcher(redis.Client(), cfg.EventQueueKey)
	scoreCache := cache.NewScoreCache(redis.Client(), time.Duration(cfg.ScoreCacheTTLSeconds)*time.Second)

	// 7. Setup UseCases
	validate := validator.New()
	swipeUC := usecase.NewSwipeUsecase(swipeRepo, matchRepo, snapshotRepo, dispatcher, scoreCache, validate)
	matchUC := usecase.NewMatchUsecase(matchRepo, dispatcher)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		SwipeUC: swipeUC,
		MatchUC: matchUC,
		Config:  cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
