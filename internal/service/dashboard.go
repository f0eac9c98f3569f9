package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chefboard/backend/internal/dashboard"
	"github.com/chefboard/backend/internal/types"
)

// DashboardService composes dashboard view models from a store.
type DashboardService struct {
	store    dashboard.Store
	composer *dashboard.Composer
}

// Ensure DashboardService implements IDashboardService
var _ IDashboardService = (*DashboardService)(nil)

// NewDashboardService creates a new DashboardService instance
func NewDashboardService(store dashboard.Store) *DashboardService {
	return &DashboardService{
		store:    store,
		composer: dashboard.NewComposer(store),
	}
}

// GetDashboard builds the complete dashboard snapshot for a user.
func (s *DashboardService) GetDashboard(ctx context.Context, userID uuid.UUID, now time.Time) (*types.DashboardViewModel, error) {
	return s.composer.Compose(ctx, userID, now)
}

// GetStats returns the stats section alone.
func (s *DashboardService) GetStats(ctx context.Context, userID uuid.UUID) (types.UserStats, error) {
	return s.store.GetUserStats(ctx, userID)
}

// GetFeaturedChefs returns the ranked featured-chefs section.
func (s *DashboardService) GetFeaturedChefs(ctx context.Context) ([]types.ChefSummary, error) {
	candidates, err := s.store.GetChefCandidates(ctx)
	if err != nil {
		return nil, err
	}
	return dashboard.RankChefs(candidates), nil
}

// GetPopularRecipes returns the popular-recipes section.
func (s *DashboardService) GetPopularRecipes(ctx context.Context) ([]types.RecipeViewModel, error) {
	raws, err := s.store.GetAllRecipes(ctx)
	if err != nil {
		return nil, err
	}
	return dashboard.SelectPopular(dashboard.TransformRecipes(raws)), nil
}
