package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/legitflash/boomquotes-backend/api/routes"
	"github.com/legitflash/boomquotes-backend/internal/config"
	"github.com/legitflash/boomquotes-backend/internal/handlers"
	"github.com/legitflash/boomquotes-backend/internal/repositories"
	mongorepo "github.com/legitflash/boomquotes-backend/internal/repositories/mongodb"
	"github.com/legitflash/boomquotes-backend/internal/services"
	"github.com/legitflash/boomquotes-backend/pkg/logger"
	"github.com/legitflash/boomquotes-backend/pkg/mongodb"
	"github.com/legitflash/boomquotes-backend/pkg/reloadly"
	"go.uber.org/zap"
)

func main() {
	// .env is optional, real deployments set environment variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is not configured")
	}

	zlog, err := logger.Init(cfg.Log.Level, cfg.Log.Path)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	mongoClient, err := mongodb.NewClient(cfg.MongoDB.URI)
	if err != nil {
		zlog.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			zlog.Error("Error disconnecting from MongoDB", zap.Error(err))
		}
	}()

	db := mongoClient.Database(cfg.MongoDB.Database)

	// Repositories
	var userRepo repositories.UserRepository = mongorepo.NewUserRepository(db)
	var checkinRepo repositories.CheckinRepository = mongorepo.NewCheckinRepository(db)
	var streakRepo repositories.StreakRepository = mongorepo.NewStreakRepository(db)
	var rewardRepo repositories.RewardRepository = mongorepo.NewRewardRepository(db)
	var quoteRepo repositories.QuoteRepository = mongorepo.NewQuoteRepository(db)
	var favoriteRepo repositories.FavoriteRepository = mongorepo.NewFavoriteRepository(db)

	// External airtime provider
	airtime := reloadly.NewClient(
		cfg.Reloadly.BaseURL,
		cfg.Reloadly.AuthURL,
		cfg.Reloadly.ClientID,
		cfg.Reloadly.ClientSecret,
		cfg.Reloadly.MockAPI,
	)

	// Services
	authService := services.NewAuthService(userRepo, cfg, zlog)
	userService := services.NewUserService(userRepo)
	streakService := services.NewStreakService(streakRepo, rewardRepo, userRepo, cfg.Checkin, zlog)
	checkinService := services.NewCheckinService(checkinRepo, streakService, cfg.Checkin, zlog)
	rewardService := services.NewRewardService(rewardRepo, userRepo, airtime, zlog)
	quoteService := services.NewQuoteService(quoteRepo, favoriteRepo, zlog)

	// Handlers
	deps := routes.HandlerDependencies{
		AuthHandler:    handlers.NewAuthHandler(authService),
		UserHandler:    handlers.NewUserHandler(userService),
		CheckinHandler: handlers.NewCheckinHandler(checkinService),
		RewardHandler:  handlers.NewRewardHandler(rewardService),
		QuoteHandler:   handlers.NewQuoteHandler(quoteService),
	}

	router := routes.SetupRouter(cfg, zlog, deps)

	// PORT wins over config so the usual PaaS convention works
	port := config.GetEnv("PORT", cfg.Server.Port)
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		zlog.Info("Server starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("listen failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zlog.Info("Server exiting")
}
