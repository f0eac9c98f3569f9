package testhelpers

import (
	"context"
	"fmt"
	"os/exec"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chefboard/backend/internal/models"
)

// SetupTestDB creates an in-memory SQLite database with the full
// schema migrated, suitable for fast unit and handler tests.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := migrateAll(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// SetupPostgresTestDB starts a disposable PostgreSQL container and
// returns a migrated connection. Skipped when docker is unavailable.
func SetupPostgresTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("docker not installed, skipping container-based test")
	}

	const (
		dbUser     = "postgres"
		dbPassword = "postpass"
		dbName     = "chefboard_test"
	)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     dbUser,
				"POSTGRES_PASSWORD": dbPassword,
				"POSTGRES_DB":       dbName,
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
					return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
						dbUser, dbPassword, host, port.Port(), dbName)
				}),
			).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start container: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := container.Terminate(ctx); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get container host: %v", err)
	}
	mappedPort, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("failed to get container port: %v", err)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, mappedPort.Port(), dbUser, dbPassword, dbName)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}

	if err := migrateAll(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func migrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Recipe{},
		&models.RecipeNutrition{},
		&models.Category{},
		&models.RecipeCategory{},
		&models.RecipeFavorite{},
		&models.UserFollow{},
		&models.Review{},
	)
}

// CreateTestUser inserts a user with a matching profile and returns
// the user id.
func CreateTestUser(t *testing.T, db *gorm.DB, username string, isChef bool) uuid.UUID {
	t.Helper()
	userID := uuid.New()
	if err := db.Create(&models.User{
		ID:           userID,
		Name:         username,
		Email:        username + "@example.com",
		PasswordHash: "test-hash",
	}).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	if err := db.Create(&models.UserProfile{
		ID:       uuid.New(),
		UserID:   userID,
		Username: username,
		IsChef:   isChef,
	}).Error; err != nil {
		t.Fatalf("failed to create test profile: %v", err)
	}
	return userID
}

// CreateTestRecipe inserts an active recipe and returns its id.
func CreateTestRecipe(t *testing.T, db *gorm.DB, userID uuid.UUID, title string, rating float64) uuid.UUID {
	t.Helper()
	recipeID := uuid.New()
	ratingCount := 0
	if rating > 0 {
		ratingCount = 1
	}
	if err := db.Create(&models.Recipe{
		ID:            recipeID,
		Title:         title,
		Servings:      4,
		AverageRating: rating,
		RatingCount:   ratingCount,
		Status:        models.RecipeStatusActive,
		UserID:        userID,
	}).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	return recipeID
}
