package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/chefboard/backend/config"
	"github.com/chefboard/backend/internal/api"
	"github.com/chefboard/backend/internal/database"
	"github.com/chefboard/backend/internal/middleware"
	"github.com/chefboard/backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(
	cfg *config.Config,
	db *gorm.DB,
	redisClient *redis.Client,
	healthDB *database.DB,
	media service.ImageStore,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.ErrorLogger())

	router.GET("/health", healthHandler(db, healthDB, redisClient))

	api.SetupAPI(router, db, redisClient, cfg.JWTSecret, media)

	return router
}

// healthHandler reports the liveness of the server and its backing
// stores. Redis is optional; a missing client is simply not reported.
func healthHandler(db *gorm.DB, healthDB *database.DB, redisClient *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		components := gin.H{}
		healthy := true

		if err := pingDatabase(ctx, db, healthDB); err != nil {
			components["database"] = err.Error()
			healthy = false
		} else {
			components["database"] = "ok"
		}

		if redisClient != nil {
			if err := redisClient.Ping(ctx).Err(); err != nil {
				components["redis"] = err.Error()
				healthy = false
			} else {
				components["redis"] = "ok"
			}
		}

		if !healthy {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "components": components})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "components": components})
	}
}

func pingDatabase(ctx context.Context, db *gorm.DB, healthDB *database.DB) error {
	if healthDB != nil {
		return healthDB.HealthCheck(ctx)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
