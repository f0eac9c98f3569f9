package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/chefboard/backend/internal/middleware"
	"github.com/chefboard/backend/internal/service"
)

// SetupAPI wires services and handlers onto the /api/v1 group.
func SetupAPI(router *gin.Engine, db *gorm.DB, redisClient *redis.Client, jwtSecret string, media service.ImageStore) {
	v1 := router.Group("/api/v1")
	{
		// Initialize services
		authService := service.NewAuthService(jwtSecret)
		dashboardService := service.NewDashboardService(
			service.NewCachedDashboardStore(
				service.NewDashboardStore(db, media),
				redisClient,
				service.DashboardCacheTTL,
			),
		)

		// Initialize handlers
		dashboardHandler := NewDashboardHandler(dashboardService)
		favoriteHandler := NewFavoriteHandler(db)
		imageHandler := NewImageHandler(db, media)

		// Protected routes
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(authService))
		if redisClient != nil {
			limiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
				Window: time.Minute,
				Limit:  120,
			})
			protected.Use(limiter.RateLimitMiddleware())
		}
		dashboardHandler.RegisterRoutes(protected)
		favoriteHandler.RegisterRoutes(protected)
		imageHandler.RegisterRoutes(protected)
	}
}
