package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RecipeStatusActive   = "active"
	RecipeStatusArchived = "archived"
)

type Recipe struct {
	ID              uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`
	Title           string           `gorm:"size:255;not null" json:"title"`
	Description     string           `gorm:"type:text" json:"description"`
	ImageKey        string           `gorm:"size:255" json:"image_key"`
	PrepTimeMinutes int              `gorm:"not null;default:0" json:"prep_time_minutes"`
	Servings        int              `gorm:"not null;default:1" json:"servings"`
	Difficulty      string           `gorm:"size:20" json:"difficulty"`
	AverageRating   float64          `gorm:"type:float;not null;default:0" json:"average_rating"`
	RatingCount     int              `gorm:"not null;default:0" json:"rating_count"`
	Status          string           `gorm:"size:20;not null;default:'active';index" json:"status"`
	UserID          uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Nutrition       *RecipeNutrition `gorm:"foreignKey:RecipeID" json:"nutrition,omitempty"`
	Categories      []RecipeCategory `gorm:"foreignKey:RecipeID" json:"categories,omitempty"`
}

// RecipeNutrition holds whole-recipe macro totals, one optional row
// per recipe.
type RecipeNutrition struct {
	ID       uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	RecipeID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"recipe_id"`
	Calories float64   `gorm:"type:float;not null;default:0" json:"calories"`
	Protein  float64   `gorm:"type:float;not null;default:0" json:"protein"`
	Carbs    float64   `gorm:"type:float;not null;default:0" json:"carbs"`
	Fat      float64   `gorm:"type:float;not null;default:0" json:"fat"`
}

func (RecipeNutrition) TableName() string {
	return "recipe_nutrition"
}

type Category struct {
	ID   uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Name string    `gorm:"size:50;not null;uniqueIndex" json:"name"`
}

// RecipeCategory links a recipe to a category.
type RecipeCategory struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	RecipeID   uuid.UUID `gorm:"type:varchar(36);not null;index" json:"recipe_id"`
	CategoryID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (RecipeCategory) TableName() string {
	return "recipe_categories"
}
