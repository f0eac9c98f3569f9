package types

import (
	"time"

	"github.com/google/uuid"
)

// RawRecipeRecord is a recipe as the store returns it: the recipe row
// plus whatever joined sub-records the query managed to attach. Any of
// the joins may be absent; consumers apply documented defaults instead
// of assuming presence.
type RawRecipeRecord struct {
	ID              uuid.UUID
	Title           string
	Description     string
	ImageURL        string
	PrepTimeMinutes int
	Servings        int
	Difficulty      string
	Rating          float64 // average rating in [0,5]; 0 means unrated
	RatingCount     int
	CreatedAt       time.Time
	UserID          uuid.UUID
	Author          *RecipeAuthor
	Categories      []RecipeCategoryLink
	Nutrition       *NutritionTotals
}

// RecipeAuthor is the joined author sub-record.
type RecipeAuthor struct {
	Name      string
	AvatarURL string
}

// RecipeCategoryLink is one joined category-link row. Name may be
// empty when the linked category row is missing.
type RecipeCategoryLink struct {
	Name string
}

// NutritionTotals holds whole-recipe macro totals, not per-serving.
type NutritionTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// ChefCandidate is a chef eligible for the featured ranking, already
// filtered upstream to users flagged as chefs with at least one
// published recipe. RecipeRatings holds the per-recipe average
// ratings; values <= 0 mean the recipe is unrated.
type ChefCandidate struct {
	ID            uuid.UUID
	Name          string
	AvatarURL     string
	RecipeCount   int
	FollowerCount int
	RecipeRatings []float64
}

// Profile is the slice of the user record the dashboard needs.
type Profile struct {
	UserID       uuid.UUID
	DisplayName  string
	RegisteredAt time.Time
}
