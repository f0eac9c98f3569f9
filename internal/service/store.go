package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chefboard/backend/internal/dashboard"
	"github.com/chefboard/backend/internal/models"
	"github.com/chefboard/backend/internal/types"
)

// DashboardStore is the gorm-backed read side of the dashboard. It
// returns raw records with whatever joins the queries could attach;
// downstream transforms handle absent joins.
type DashboardStore struct {
	db    *gorm.DB
	media ImageURLResolver
}

// Ensure DashboardStore implements dashboard.Store
var _ dashboard.Store = (*DashboardStore)(nil)

// NewDashboardStore creates a new DashboardStore instance
func NewDashboardStore(db *gorm.DB, media ImageURLResolver) *DashboardStore {
	return &DashboardStore{
		db:    db,
		media: media,
	}
}

// GetProfile returns the display name and registration instant for a user.
func (s *DashboardStore) GetProfile(ctx context.Context, userID uuid.UUID) (*types.Profile, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}

	displayName := user.Name
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err == nil {
		displayName = profile.Username
	}

	return &types.Profile{
		UserID:       user.ID,
		DisplayName:  displayName,
		RegisteredAt: user.CreatedAt,
	}, nil
}

// GetUserStats aggregates the header numbers for a user.
func (s *DashboardStore) GetUserStats(ctx context.Context, userID uuid.UUID) (types.UserStats, error) {
	db := s.db.WithContext(ctx)
	var stats types.UserStats

	var recipeCount int64
	if err := db.Model(&models.Recipe{}).
		Where("user_id = ? AND status = ?", userID, models.RecipeStatusActive).
		Count(&recipeCount).Error; err != nil {
		return stats, fmt.Errorf("failed to count recipes: %w", err)
	}

	var followerCount int64
	if err := db.Model(&models.UserFollow{}).
		Where("followee_id = ?", userID).
		Count(&followerCount).Error; err != nil {
		return stats, fmt.Errorf("failed to count followers: %w", err)
	}

	var reviewCount int64
	if err := db.Model(&models.Review{}).
		Joins("JOIN recipes ON recipes.id = reviews.recipe_id").
		Where("recipes.user_id = ?", userID).
		Count(&reviewCount).Error; err != nil {
		return stats, fmt.Errorf("failed to count reviews: %w", err)
	}

	var avg sql.NullFloat64
	if err := db.Model(&models.Recipe{}).
		Where("user_id = ? AND rating_count > 0", userID).
		Select("AVG(average_rating)").
		Scan(&avg).Error; err != nil {
		return stats, fmt.Errorf("failed to average ratings: %w", err)
	}

	stats.RecipeCount = int(recipeCount)
	stats.FollowerCount = int(followerCount)
	stats.ReviewCount = int(reviewCount)
	if avg.Valid {
		stats.AverageRating = &avg.Float64
	}
	return stats, nil
}

// GetOwnRecipes returns the user's newest active recipes, at most four.
func (s *DashboardStore) GetOwnRecipes(ctx context.Context, userID uuid.UUID) ([]types.RawRecipeRecord, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Nutrition").
		Preload("Categories.Category").
		Where("user_id = ? AND status = ?", userID, models.RecipeStatusActive).
		Order("created_at DESC").
		Limit(dashboard.MaxRecentRecipes).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load own recipes: %w", err)
	}
	return s.toRawRecords(ctx, recipes)
}

// GetSavedRecipes returns the user's newest favorites, at most four,
// reached through the favorite join. Favorites whose recipe row is
// gone are skipped.
func (s *DashboardStore) GetSavedRecipes(ctx context.Context, userID uuid.UUID) ([]types.RawRecipeRecord, error) {
	var favorites []models.RecipeFavorite
	err := s.db.WithContext(ctx).
		Preload("Recipe.Nutrition").
		Preload("Recipe.Categories.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(dashboard.MaxSavedRecipes).
		Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load saved recipes: %w", err)
	}

	recipes := make([]models.Recipe, 0, len(favorites))
	for _, fav := range favorites {
		if fav.Recipe == nil {
			continue
		}
		recipes = append(recipes, *fav.Recipe)
	}
	return s.toRawRecords(ctx, recipes)
}

// GetChefCandidates returns every chef with at least one active recipe,
// with per-recipe ratings and follower counts attached.
func (s *DashboardStore) GetChefCandidates(ctx context.Context) ([]types.ChefCandidate, error) {
	db := s.db.WithContext(ctx)

	var chefs []models.UserProfile
	if err := db.Where("is_chef = ?", true).Find(&chefs).Error; err != nil {
		return nil, fmt.Errorf("failed to load chef profiles: %w", err)
	}
	if len(chefs) == 0 {
		return []types.ChefCandidate{}, nil
	}

	chefIDs := make([]uuid.UUID, len(chefs))
	for i, chef := range chefs {
		chefIDs[i] = chef.UserID
	}

	var recipes []models.Recipe
	if err := db.Where("user_id IN ? AND status = ?", chefIDs, models.RecipeStatusActive).
		Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to load chef recipes: %w", err)
	}
	ratingsByChef := make(map[uuid.UUID][]float64, len(chefs))
	for _, r := range recipes {
		ratingsByChef[r.UserID] = append(ratingsByChef[r.UserID], r.AverageRating)
	}

	type followerRow struct {
		FolloweeID uuid.UUID
		Count      int
	}
	var followerRows []followerRow
	if err := db.Model(&models.UserFollow{}).
		Select("followee_id, COUNT(*) as count").
		Where("followee_id IN ?", chefIDs).
		Group("followee_id").
		Scan(&followerRows).Error; err != nil {
		return nil, fmt.Errorf("failed to count chef followers: %w", err)
	}
	followersByChef := make(map[uuid.UUID]int, len(followerRows))
	for _, row := range followerRows {
		followersByChef[row.FolloweeID] = row.Count
	}

	candidates := make([]types.ChefCandidate, 0, len(chefs))
	for _, chef := range chefs {
		ratings := ratingsByChef[chef.UserID]
		if len(ratings) == 0 {
			// Eligibility requires at least one published recipe.
			continue
		}
		candidates = append(candidates, types.ChefCandidate{
			ID:            chef.UserID,
			Name:          chef.Username,
			AvatarURL:     s.resolveImage(chef.AvatarKey),
			RecipeCount:   len(ratings),
			FollowerCount: followersByChef[chef.UserID],
			RecipeRatings: ratings,
		})
	}
	return candidates, nil
}

// GetAllRecipes returns the full active recipe feed.
func (s *DashboardStore) GetAllRecipes(ctx context.Context) ([]types.RawRecipeRecord, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Nutrition").
		Preload("Categories.Category").
		Where("status = ?", models.RecipeStatusActive).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recipe feed: %w", err)
	}
	return s.toRawRecords(ctx, recipes)
}

// toRawRecords maps recipe rows to raw records, batch-attaching author
// profiles to avoid per-row lookups.
func (s *DashboardStore) toRawRecords(ctx context.Context, recipes []models.Recipe) ([]types.RawRecipeRecord, error) {
	if len(recipes) == 0 {
		return []types.RawRecipeRecord{}, nil
	}

	ownerIDs := make([]uuid.UUID, 0, len(recipes))
	seen := make(map[uuid.UUID]bool, len(recipes))
	for _, r := range recipes {
		if !seen[r.UserID] {
			seen[r.UserID] = true
			ownerIDs = append(ownerIDs, r.UserID)
		}
	}

	var profiles []models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id IN ?", ownerIDs).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to load recipe authors: %w", err)
	}
	authorsByID := make(map[uuid.UUID]*types.RecipeAuthor, len(profiles))
	for _, p := range profiles {
		authorsByID[p.UserID] = &types.RecipeAuthor{
			Name:      p.Username,
			AvatarURL: s.resolveImage(p.AvatarKey),
		}
	}

	raws := make([]types.RawRecipeRecord, len(recipes))
	for i, r := range recipes {
		raw := types.RawRecipeRecord{
			ID:              r.ID,
			Title:           r.Title,
			Description:     r.Description,
			ImageURL:        s.resolveImage(r.ImageKey),
			PrepTimeMinutes: r.PrepTimeMinutes,
			Servings:        r.Servings,
			Difficulty:      r.Difficulty,
			Rating:          r.AverageRating,
			RatingCount:     r.RatingCount,
			CreatedAt:       r.CreatedAt,
			UserID:          r.UserID,
			Author:          authorsByID[r.UserID],
		}
		if r.Nutrition != nil {
			raw.Nutrition = &types.NutritionTotals{
				Calories: r.Nutrition.Calories,
				Protein:  r.Nutrition.Protein,
				Carbs:    r.Nutrition.Carbs,
				Fat:      r.Nutrition.Fat,
			}
		}
		for _, link := range r.Categories {
			name := ""
			if link.Category != nil {
				name = link.Category.Name
			}
			raw.Categories = append(raw.Categories, types.RecipeCategoryLink{Name: name})
		}
		raws[i] = raw
	}
	return raws, nil
}

func (s *DashboardStore) resolveImage(key string) string {
	if key == "" || s.media == nil {
		return key
	}
	return s.media.ResolveImageURL(key)
}
