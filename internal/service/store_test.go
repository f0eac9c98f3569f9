package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/chefboard/backend/internal/models"
)

func setupStoreTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
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
	require.NoError(t, err)
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string, isChef bool) uuid.UUID {
	t.Helper()
	userID := uuid.New()
	require.NoError(t, db.Create(&models.User{
		ID:           userID,
		Name:         username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}).Error)
	require.NoError(t, db.Create(&models.UserProfile{
		ID:       uuid.New(),
		UserID:   userID,
		Username: username,
		IsChef:   isChef,
	}).Error)
	return userID
}

func createTestRecipe(t *testing.T, db *gorm.DB, userID uuid.UUID, title string, rating float64, createdAt time.Time) uuid.UUID {
	t.Helper()
	recipeID := uuid.New()
	ratingCount := 0
	if rating > 0 {
		ratingCount = 1
	}
	require.NoError(t, db.Create(&models.Recipe{
		ID:            recipeID,
		CreatedAt:     createdAt,
		Title:         title,
		Servings:      4,
		AverageRating: rating,
		RatingCount:   ratingCount,
		Status:        models.RecipeStatusActive,
		UserID:        userID,
	}).Error)
	return recipeID
}

func TestDashboardStoreGetProfile(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewDashboardStore(db, nil)
	userID := createTestUser(t, db, "casey", false)

	profile, err := store.GetProfile(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, userID, profile.UserID)
	assert.Equal(t, "casey", profile.DisplayName)
	assert.WithinDuration(t, time.Now(), profile.RegisteredAt, time.Minute)
}

func TestDashboardStoreGetProfileMissingUser(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewDashboardStore(db, nil)

	_, err := store.GetProfile(context.Background(), uuid.New())

	assert.Error(t, err)
}

func TestDashboardStoreGetOwnRecipesNewestFirstLimit(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewDashboardStore(db, nil)
	userID := createTestUser(t, db, "casey", false)

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		createTestRecipe(t, db, userID, "Recipe", 0, base.Add(time.Duration(i)*time.Hour))
	}
	// An archived recipe must not appear.
	archivedID := uuid.New()
	require.NoError(t, db.Create(&models.Recipe{
		ID:        archivedID,
		CreatedAt: base.Add(100 * time.Hour),
		Title:     "Archived",
		Servings:  1,
		Status:    models.RecipeStatusArchived,
		UserID:    userID,
	}).Error)

	raws, err := store.GetOwnRecipes(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, raws, 4)
	for i := 1; i < len(raws); i++ {
		assert.True(t, !raws[i].CreatedAt.After(raws[i-1].CreatedAt), "expected newest-first order")
	}
	for _, raw := range raws {
		assert.NotEqual(t, archivedID, raw.ID)
	}
}

func TestDashboardStoreGetSavedRecipesWithJoins(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewDashboardStore(db, nil)
	author := createTestUser(t, db, "nadia", true)
	viewer := createTestUser(t, db, "casey", false)

	recipeID := createTestRecipe(t, db, author, "Shakshuka", 4.5, time.Now())
	require.NoError(t, db.Create(&models.RecipeNutrition{
		ID:       uuid.New(),
		RecipeID: recipeID,
		Calories: 800, Protein: 40, Carbs: 50, Fat: 44,
	}).Error)
	categoryID := uuid.New()
	require.NoError(t, db.Create(&models.Category{ID: categoryID, Name: "Breakfast"}).Error)
	require.NoError(t, db.Create(&models.RecipeCategory{
		ID: uuid.New(), RecipeID: recipeID, CategoryID: categoryID,
	}).Error)
	require.NoError(t, db.Create(&models.RecipeFavorite{
		ID: uuid.New(), RecipeID: recipeID, UserID: viewer,
	}).Error)

	raws, err := store.GetSavedRecipes(context.Background(), viewer)

	require.NoError(t, err)
	require.Len(t, raws, 1)
	raw := raws[0]
	assert.Equal(t, recipeID, raw.ID)
	require.NotNil(t, raw.Nutrition)
	assert.Equal(t, 800.0, raw.Nutrition.Calories)
	require.Len(t, raw.Categories, 1)
	assert.Equal(t, "Breakfast", raw.Categories[0].Name)
	require.NotNil(t, raw.Author)
	assert.Equal(t, "nadia", raw.Author.Name)
}

func TestDashboardStoreGetChefCandidates(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewDashboardStore(db, nil)

	chef := createTestUser(t, db, "nadia", true)
	chefNoRecipes := createTestUser(t, db, "idle-chef", true)
	regular := createTestUser(t, db, "casey", false)

	createTestRecipe(t, db, chef, "One", 4.5, time.Now())
	createTestRecipe(t, db, chef, "Two", 0, time.Now())
	createTestRecipe(t, db, regular, "Not a chef recipe", 5, time.Now())

	follower := createTestUser(t, db, "fan", false)
	require.NoError(t, db.Create(&models.UserFollow{
		ID: uuid.New(), FollowerID: follower, FolloweeID: chef,
	}).Error)

	candidates, err := store.GetChefCandidates(context.Background())

	require.NoError(t, err)
	require.Len(t, candidates, 1)
	c := candidates[0]
	assert.Equal(t, chef, c.ID)
	assert.Equal(t, "nadia", c.Name)
	assert.Equal(t, 2, c.RecipeCount)
	assert.Equal(t, 1, c.FollowerCount)
	assert.ElementsMatch(t, []float64{4.5, 0}, c.RecipeRatings)
	_ = chefNoRecipes
}

func TestDashboardStoreGetUserStats(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewDashboardStore(db, nil)

	userID := createTestUser(t, db, "casey", false)
	rated := createTestRecipe(t, db, userID, "Rated", 4.0, time.Now())
	createTestRecipe(t, db, userID, "Unrated", 0, time.Now())

	reviewer := createTestUser(t, db, "reviewer", false)
	require.NoError(t, db.Create(&models.Review{
		ID: uuid.New(), RecipeID: rated, UserID: reviewer, Rating: 4,
	}).Error)
	require.NoError(t, db.Create(&models.UserFollow{
		ID: uuid.New(), FollowerID: reviewer, FolloweeID: userID,
	}).Error)

	stats, err := store.GetUserStats(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.RecipeCount)
	assert.Equal(t, 1, stats.FollowerCount)
	assert.Equal(t, 1, stats.ReviewCount)
	require.NotNil(t, stats.AverageRating)
	assert.Equal(t, 4.0, *stats.AverageRating)
}

func TestDashboardStoreStatsForUnknownUserAreZero(t *testing.T) {
	db := setupStoreTestDB(t)
	store := NewDashboardStore(db, nil)

	stats, err := store.GetUserStats(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Zero(t, stats.RecipeCount)
	assert.Zero(t, stats.FollowerCount)
	assert.Zero(t, stats.ReviewCount)
	assert.Nil(t, stats.AverageRating)
}
