package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefboard/backend/internal/models"
)

func TestDashboardServiceEndToEnd(t *testing.T) {
	db := setupStoreTestDB(t)
	svc := NewDashboardService(NewDashboardStore(db, nil))

	viewer := createTestUser(t, db, "casey", false)
	chef := createTestUser(t, db, "nadia", true)

	ownID := createTestRecipe(t, db, viewer, "My Stew", 0, time.Now())
	popularID := createTestRecipe(t, db, chef, "Famous Pie", 4.8, time.Now())
	createTestRecipe(t, db, chef, "Average Pie", 3.5, time.Now())

	require.NoError(t, db.Create(&models.RecipeFavorite{
		ID: uuid.New(), RecipeID: popularID, UserID: viewer,
	}).Error)

	vm, err := svc.GetDashboard(context.Background(), viewer, time.Now())

	require.NoError(t, err)
	assert.Equal(t, "casey", vm.DisplayName)
	assert.True(t, vm.IsNewUser)
	assert.Equal(t, 1, vm.Stats.RecipeCount)

	require.Len(t, vm.RecentRecipes, 1)
	assert.Equal(t, ownID, vm.RecentRecipes[0].ID)

	require.Len(t, vm.SavedRecipes, 1)
	assert.Equal(t, popularID, vm.SavedRecipes[0].ID)
	assert.Equal(t, "nadia", vm.SavedRecipes[0].Author.Name)

	require.Len(t, vm.FeaturedChefs, 1)
	assert.Equal(t, chef, vm.FeaturedChefs[0].ID)

	require.Len(t, vm.PopularRecipes, 1)
	assert.Equal(t, popularID, vm.PopularRecipes[0].ID)
}

func TestDashboardServiceSectionEndpoints(t *testing.T) {
	db := setupStoreTestDB(t)
	svc := NewDashboardService(NewDashboardStore(db, nil))

	chef := createTestUser(t, db, "nadia", true)
	createTestRecipe(t, db, chef, "Famous Pie", 4.8, time.Now())

	chefs, err := svc.GetFeaturedChefs(context.Background())
	require.NoError(t, err)
	require.Len(t, chefs, 1)
	require.NotNil(t, chefs[0].AverageRating)
	assert.Equal(t, 4.8, *chefs[0].AverageRating)

	popular, err := svc.GetPopularRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, popular, 1)

	stats, err := svc.GetStats(context.Background(), chef)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.RecipeCount)
}
