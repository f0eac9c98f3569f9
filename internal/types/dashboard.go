package types

import (
	"time"

	"github.com/google/uuid"
)

// MacroSummary holds per-serving macro values, rounded to whole units.
type MacroSummary struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// AuthorSummary is the flattened author info shown next to a recipe card.
type AuthorSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url"`
}

// RecipeViewModel is the UI-ready shape of a recipe, flattened from the
// raw record and its joins.
type RecipeViewModel struct {
	ID              uuid.UUID     `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	ImageURL        string        `json:"image_url"`
	PrepTimeMinutes int           `json:"prep_time_minutes"`
	Servings        int           `json:"servings"`
	Difficulty      string        `json:"difficulty"`
	Rating          float64       `json:"rating"`
	RatingCount     int           `json:"rating_count"`
	CreatedAt       time.Time     `json:"created_at"`
	OwnerID         uuid.UUID     `json:"owner_id"`
	Author          AuthorSummary `json:"author"`
	Categories      []string      `json:"categories"`
	Macros          MacroSummary  `json:"macros"`
}

// ChefSummary is one entry of the featured-chefs ranking.
// AverageRating is nil when no recipe of the chef has a positive rating.
type ChefSummary struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	AvatarURL     string    `json:"avatar_url"`
	RecipeCount   int       `json:"recipe_count"`
	FollowerCount int       `json:"follower_count"`
	AverageRating *float64  `json:"average_rating"`
}

// UserStats holds the aggregate numbers in the dashboard header.
type UserStats struct {
	RecipeCount   int      `json:"recipe_count"`
	FollowerCount int      `json:"follower_count"`
	ReviewCount   int      `json:"review_count"`
	AverageRating *float64 `json:"average_rating"`
}

// DashboardViewModel is the complete dashboard snapshot for one user.
// Every list is independently computed; an empty list is a valid state,
// not an error.
type DashboardViewModel struct {
	DisplayName    string            `json:"display_name"`
	IsNewUser      bool              `json:"is_new_user"`
	Stats          UserStats         `json:"stats"`
	RecentRecipes  []RecipeViewModel `json:"recent_recipes"`
	SavedRecipes   []RecipeViewModel `json:"saved_recipes"`
	FeaturedChefs  []ChefSummary     `json:"featured_chefs"`
	PopularRecipes []RecipeViewModel `json:"popular_recipes"`
}
