package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/legitflash/boomquotes-backend/internal/config"
	"github.com/legitflash/boomquotes-backend/internal/handlers"
	"github.com/legitflash/boomquotes-backend/internal/middleware"
	"go.uber.org/zap"
)

// HandlerDependencies bundles the handlers the router needs
type HandlerDependencies struct {
	AuthHandler    *handlers.AuthHandler
	UserHandler    *handlers.UserHandler
	CheckinHandler *handlers.CheckinHandler
	RewardHandler  *handlers.RewardHandler
	QuoteHandler   *handlers.QuoteHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, logger *zap.Logger, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedHosts,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(logger))

	// Public routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
		}

		public.GET("/quotes", deps.QuoteHandler.List)
		public.GET("/quotes/random", deps.QuoteHandler.Random)
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		checkins := protected.Group("/checkins")
		{
			checkins.GET("/today", deps.CheckinHandler.GetToday)
			checkins.POST("/click/:buttonNumber", deps.CheckinHandler.Click)
		}

		rewards := protected.Group("/rewards")
		{
			rewards.GET("", deps.RewardHandler.List)
			rewards.POST("/redeem", deps.RewardHandler.Redeem)
		}
		protected.POST("/payouts/:id/retry", deps.RewardHandler.Retry)

		users := protected.Group("/users")
		{
			users.GET("/me", deps.UserHandler.GetMe)
			users.PUT("/me/phone", deps.UserHandler.UpdatePhone)
		}

		favorites := protected.Group("/favorites")
		{
			favorites.GET("", deps.QuoteHandler.ListFavorites)
			favorites.POST("/:quoteId", deps.QuoteHandler.Favorite)
			favorites.DELETE("/:quoteId", deps.QuoteHandler.Unfavorite)
		}

		protected.POST("/quotes/seed", deps.QuoteHandler.Seed)
	}

	return router
}
