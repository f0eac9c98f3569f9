package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefboard/backend/internal/testhelpers"
)

// Exercises the store against a real PostgreSQL instance so the raw
// SQL (aggregate stats, follower counts) is covered by the production
// dialect, not just SQLite. Skipped when docker is unavailable.
func TestDashboardStoreAgainstPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-based test in short mode")
	}

	db := testhelpers.SetupPostgresTestDB(t)
	store := NewDashboardStore(db, nil)
	ctx := context.Background()

	chefID := testhelpers.CreateTestUser(t, db, "nadia", true)
	viewerID := testhelpers.CreateTestUser(t, db, "casey", false)
	testhelpers.CreateTestRecipe(t, db, chefID, "Famous Pie", 4.8)
	testhelpers.CreateTestRecipe(t, db, viewerID, "My Stew", 0)

	profile, err := store.GetProfile(ctx, viewerID)
	require.NoError(t, err)
	assert.Equal(t, "casey", profile.DisplayName)

	stats, err := store.GetUserStats(ctx, viewerID)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.RecipeCount)

	candidates, err := store.GetChefCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, "nadia", candidates[0].Name)
	assert.Equal(t, 1, candidates[0].RecipeCount)

	feed, err := store.GetAllRecipes(ctx)
	require.NoError(t, err)
	assert.Len(t, feed, 2)
}
