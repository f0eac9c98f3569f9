package main

import (
	"flag"
	"log"

	"github.com/chefboard/backend/config"
	"github.com/chefboard/backend/internal/database"
)

func main() {
	migrationsDir := flag.String("dir", "", "Override the migrations directory")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *migrationsDir != "" {
		cfg.MigrationsDir = *migrationsDir
	}

	db, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("All migrations applied successfully")
}
