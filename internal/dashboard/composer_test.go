package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefboard/backend/internal/types"
)

// fakeStore implements Store with overridable function fields. Nil
// fields return empty results.
type fakeStore struct {
	profile        func(userID uuid.UUID) (*types.Profile, error)
	stats          func(userID uuid.UUID) (types.UserStats, error)
	ownRecipes     func(userID uuid.UUID) ([]types.RawRecipeRecord, error)
	savedRecipes   func(userID uuid.UUID) ([]types.RawRecipeRecord, error)
	chefCandidates func() ([]types.ChefCandidate, error)
	allRecipes     func() ([]types.RawRecipeRecord, error)
}

func (f *fakeStore) GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	if f.profile == nil {
		return &types.Profile{UserID: userID}, nil
	}
	return f.profile(userID)
}

func (f *fakeStore) GetUserStats(ctx context.Context, userID uuid.UUID) (types.UserStats, error) {
	if f.stats == nil {
		return types.UserStats{}, nil
	}
	return f.stats(userID)
}

func (f *fakeStore) GetOwnRecipes(ctx context.Context, userID uuid.UUID) ([]types.RawRecipeRecord, error) {
	if f.ownRecipes == nil {
		return nil, nil
	}
	return f.ownRecipes(userID)
}

func (f *fakeStore) GetSavedRecipes(ctx context.Context, userID uuid.UUID) ([]types.RawRecipeRecord, error) {
	if f.savedRecipes == nil {
		return nil, nil
	}
	return f.savedRecipes(userID)
}

func (f *fakeStore) GetChefCandidates(ctx context.Context) ([]types.ChefCandidate, error) {
	if f.chefCandidates == nil {
		return nil, nil
	}
	return f.chefCandidates()
}

func (f *fakeStore) GetAllRecipes(ctx context.Context) ([]types.RawRecipeRecord, error) {
	if f.allRecipes == nil {
		return nil, nil
	}
	return f.allRecipes()
}

func TestComposeFullDashboard(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	registered := now.Add(-2 * time.Hour)
	avg := 4.3

	chefID := uuid.New()
	store := &fakeStore{
		profile: func(id uuid.UUID) (*types.Profile, error) {
			return &types.Profile{UserID: id, DisplayName: "casey", RegisteredAt: registered}, nil
		},
		stats: func(uuid.UUID) (types.UserStats, error) {
			return types.UserStats{RecipeCount: 3, FollowerCount: 7, ReviewCount: 11, AverageRating: &avg}, nil
		},
		ownRecipes: func(id uuid.UUID) ([]types.RawRecipeRecord, error) {
			return []types.RawRecipeRecord{{ID: uuid.New(), Title: "Own", UserID: id, Servings: 1}}, nil
		},
		savedRecipes: func(uuid.UUID) ([]types.RawRecipeRecord, error) {
			return []types.RawRecipeRecord{{ID: uuid.New(), Title: "Saved", Servings: 2}}, nil
		},
		chefCandidates: func() ([]types.ChefCandidate, error) {
			return []types.ChefCandidate{{ID: chefID, Name: "Nadia", RecipeCount: 5, FollowerCount: 40, RecipeRatings: []float64{4.8}}}, nil
		},
		allRecipes: func() ([]types.RawRecipeRecord, error) {
			return []types.RawRecipeRecord{
				{ID: uuid.New(), Rating: 4.9, Servings: 1},
				{ID: uuid.New(), Rating: 3.2, Servings: 1},
			}, nil
		},
	}

	vm, err := NewComposer(store).Compose(context.Background(), userID, now)

	require.NoError(t, err)
	assert.Equal(t, "casey", vm.DisplayName)
	assert.True(t, vm.IsNewUser)
	assert.Equal(t, 3, vm.Stats.RecipeCount)
	require.Len(t, vm.RecentRecipes, 1)
	assert.Equal(t, "Own", vm.RecentRecipes[0].Title)
	require.Len(t, vm.SavedRecipes, 1)
	assert.Equal(t, "Saved", vm.SavedRecipes[0].Title)
	require.Len(t, vm.FeaturedChefs, 1)
	assert.Equal(t, chefID, vm.FeaturedChefs[0].ID)
	require.Len(t, vm.PopularRecipes, 1)
	assert.Equal(t, 4.9, vm.PopularRecipes[0].Rating)
}

func TestComposeSectionFailureLeavesOthersIntact(t *testing.T) {
	userID := uuid.New()
	store := &fakeStore{
		chefCandidates: func() ([]types.ChefCandidate, error) {
			return nil, errors.New("store unavailable")
		},
		allRecipes: func() ([]types.RawRecipeRecord, error) {
			return []types.RawRecipeRecord{{ID: uuid.New(), Rating: 4.5, Servings: 1}}, nil
		},
	}

	vm, err := NewComposer(store).Compose(context.Background(), userID, time.Now())

	require.NoError(t, err)
	assert.Empty(t, vm.FeaturedChefs)
	require.Len(t, vm.PopularRecipes, 1)
}

func TestComposeEmptyStoreIsRenderable(t *testing.T) {
	vm, err := NewComposer(&fakeStore{}).Compose(context.Background(), uuid.New(), time.Now())

	require.NoError(t, err)
	assert.NotNil(t, vm.RecentRecipes)
	assert.NotNil(t, vm.SavedRecipes)
	assert.NotNil(t, vm.FeaturedChefs)
	assert.NotNil(t, vm.PopularRecipes)
	assert.False(t, vm.IsNewUser)
}

func TestComposeCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewComposer(&fakeStore{}).Compose(ctx, uuid.New(), time.Now())

	assert.ErrorIs(t, err, context.Canceled)
}
