package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "chefboard")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_NAME", "chefboard_prod")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("REDIS_URL", "redis://cache.internal:6379")
	t.Setenv("ALLOWED_ORIGINS", "https://chefboard.app, https://staging.chefboard.app")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "chefboard", cfg.DBUser)
	assert.Equal(t, "s3cret", cfg.DBPassword)
	assert.Equal(t, "chefboard_prod", cfg.DBName)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "redis://cache.internal:6379", cfg.RedisURL)
	assert.Equal(t, []string{"https://chefboard.app", "https://staging.chefboard.app"}, cfg.AllowedOrigins)
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "SERVER_HOST",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSL_MODE",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB", "REDIS_URL",
		"JWT_SECRET", "ALLOWED_ORIGINS", "ENV",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "chefboard", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "dev-secret-key", cfg.JWTSecret)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoadConfigInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidateConfigProduction(t *testing.T) {
	t.Setenv("ENV", "production")

	err := ValidateConfig(&Config{
		ServerPort: "8080",
		DBHost:     "db.internal",
		DBName:     "chefboard",
		DBPassword: "postgres",
		DBSSLMode:  "disable",
		JWTSecret:  "dev-secret-key",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "DB_PASSWORD")
	assert.Contains(t, err.Error(), "DB_SSL_MODE")
}
