package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chefboard/backend/internal/types"
)

// IDashboardService defines the interface for dashboard composition
type IDashboardService interface {
	GetDashboard(ctx context.Context, userID uuid.UUID, now time.Time) (*types.DashboardViewModel, error)
	GetStats(ctx context.Context, userID uuid.UUID) (types.UserStats, error)
	GetFeaturedChefs(ctx context.Context) ([]types.ChefSummary, error)
	GetPopularRecipes(ctx context.Context) ([]types.RecipeViewModel, error)
}

// IAuthService defines the interface for token operations
type IAuthService interface {
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(userID uuid.UUID, username string) (string, error)
}

// ImageURLResolver turns stored object keys into browser-usable URLs.
type ImageURLResolver interface {
	ResolveImageURL(key string) string
}

// ImageStore resolves, uploads, and presigns image objects.
type ImageStore interface {
	ImageURLResolver
	UploadImage(ctx context.Context, data []byte, key, contentType string) (string, error)
	PresignedImageURL(ctx context.Context, key string, expiration time.Duration) (string, error)
}
