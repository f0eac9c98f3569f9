package dashboard

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/chefboard/backend/internal/types"
)

// Fixed limits of the per-user dashboard lists.
const (
	MaxRecentRecipes = 4
	MaxSavedRecipes  = 4
)

// Store is the read-only data access the composer depends on. It is
// injected so tests can run against a fake instead of a live database.
type Store interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error)
	GetUserStats(ctx context.Context, userID uuid.UUID) (types.UserStats, error)
	GetOwnRecipes(ctx context.Context, userID uuid.UUID) ([]types.RawRecipeRecord, error)
	GetSavedRecipes(ctx context.Context, userID uuid.UUID) ([]types.RawRecipeRecord, error)
	GetChefCandidates(ctx context.Context) ([]types.ChefCandidate, error)
	GetAllRecipes(ctx context.Context) ([]types.RawRecipeRecord, error)
}

// Composer builds dashboard snapshots from a Store. The fetches behind
// the four recipe/chef sections are independent and run concurrently;
// a failure in one section leaves that section empty and never blocks
// the others.
type Composer struct {
	store Store
}

// NewComposer creates a new Composer instance
func NewComposer(store Store) *Composer {
	return &Composer{store: store}
}

// Compose produces one dashboard snapshot for the given user. Section
// fetch errors are logged and swallowed; the affected section renders
// empty. The only returned error is context cancellation.
func (c *Composer) Compose(ctx context.Context, userID uuid.UUID, now time.Time) (*types.DashboardViewModel, error) {
	vm := &types.DashboardViewModel{
		RecentRecipes:  []types.RecipeViewModel{},
		SavedRecipes:   []types.RecipeViewModel{},
		FeaturedChefs:  []types.ChefSummary{},
		PopularRecipes: []types.RecipeViewModel{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		profile, err := c.store.GetProfile(gctx, userID)
		if err != nil {
			log.Printf("[Dashboard] profile fetch failed for user %s: %v", userID, err)
			return nil
		}
		vm.DisplayName = profile.DisplayName
		vm.IsNewUser = IsNewUser(&profile.RegisteredAt, now)
		return nil
	})

	g.Go(func() error {
		stats, err := c.store.GetUserStats(gctx, userID)
		if err != nil {
			log.Printf("[Dashboard] stats fetch failed for user %s: %v", userID, err)
			return nil
		}
		vm.Stats = stats
		return nil
	})

	g.Go(func() error {
		raws, err := c.store.GetOwnRecipes(gctx, userID)
		if err != nil {
			log.Printf("[Dashboard] own recipes fetch failed for user %s: %v", userID, err)
			return nil
		}
		vm.RecentRecipes = TransformRecipes(raws)
		return nil
	})

	g.Go(func() error {
		raws, err := c.store.GetSavedRecipes(gctx, userID)
		if err != nil {
			log.Printf("[Dashboard] saved recipes fetch failed for user %s: %v", userID, err)
			return nil
		}
		vm.SavedRecipes = TransformRecipes(raws)
		return nil
	})

	g.Go(func() error {
		candidates, err := c.store.GetChefCandidates(gctx)
		if err != nil {
			log.Printf("[Dashboard] chef candidates fetch failed: %v", err)
			return nil
		}
		vm.FeaturedChefs = RankChefs(candidates)
		return nil
	})

	g.Go(func() error {
		raws, err := c.store.GetAllRecipes(gctx)
		if err != nil {
			log.Printf("[Dashboard] recipe feed fetch failed: %v", err)
			return nil
		}
		vm.PopularRecipes = SelectPopular(TransformRecipes(raws))
		return nil
	})

	// Section goroutines never return errors, so Wait only reflects
	// context cancellation.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return vm, nil
}
