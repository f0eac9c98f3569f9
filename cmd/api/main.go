package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/chefboard/backend/config"
	"github.com/chefboard/backend/internal/database"
	"github.com/chefboard/backend/internal/server"
	"github.com/chefboard/backend/internal/service"
)

func main() {
	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Raw connection kept for health checks
	healthDB, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer healthDB.Close()

	db, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis is optional: without it the dashboard store serves every
	// request from the database and rate limiting is disabled.
	var redisClient *redis.Client
	if client, err := database.NewRedisClient(cfg); err != nil {
		log.Printf("Redis unavailable, continuing without cache: %v", err)
	} else {
		redisClient = client
	}

	var media service.ImageStore
	if s3Cfg, err := config.NewS3Config(context.Background()); err != nil {
		log.Printf("S3 unavailable, serving raw image keys: %v", err)
	} else {
		if err := s3Cfg.SetupBucketPolicy(context.Background()); err != nil {
			log.Printf("Could not apply bucket policy, presigned URLs still work: %v", err)
		}
		media = service.NewMediaService(s3Cfg)
	}

	srv := server.New(cfg, db, redisClient, healthDB, media)

	log.Println("Starting server...")
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
