package main

import (
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/chefboard/backend/config"
	"github.com/chefboard/backend/internal/database"
	"github.com/chefboard/backend/internal/models"
)

type seedUser struct {
	name     string
	email    string
	username string
	isChef   bool
}

type seedRecipe struct {
	title      string
	author     string // username
	prepTime   int
	servings   int
	difficulty string
	categories []string
	nutrition  *models.RecipeNutrition
	ratings    []int // one review per rating, by the non-chef users
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	log.Println("Seed data created successfully")
}

func seed(db *gorm.DB) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("demopassword123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []seedUser{
		{name: "Nadia Romero", email: "nadia@example.com", username: "nadia", isChef: true},
		{name: "Marco Chen", email: "marco@example.com", username: "marco", isChef: true},
		{name: "Priya Patel", email: "priya@example.com", username: "priya", isChef: true},
		{name: "Casey Morgan", email: "casey@example.com", username: "casey", isChef: false},
		{name: "Sam Fisher", email: "sam@example.com", username: "sam", isChef: false},
	}

	userIDs := make(map[string]uuid.UUID, len(users))
	for _, u := range users {
		var existing models.User
		err := db.Where("email = ?", u.email).First(&existing).Error
		if err == nil {
			userIDs[u.username] = existing.ID
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		id := uuid.New()
		if err := db.Create(&models.User{
			ID:           id,
			Name:         u.name,
			Email:        u.email,
			PasswordHash: string(hashedPassword),
		}).Error; err != nil {
			return err
		}
		if err := db.Create(&models.UserProfile{
			ID:       uuid.New(),
			UserID:   id,
			Username: u.username,
			IsChef:   u.isChef,
		}).Error; err != nil {
			return err
		}
		userIDs[u.username] = id
		log.Printf("Created user %s", u.username)
	}

	categoryIDs := make(map[string]uuid.UUID)
	for _, name := range []string{"Italian", "Indian", "Dessert", "Vegetarian", "Quick", "Comfort Food"} {
		var existing models.Category
		err := db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			categoryIDs[name] = existing.ID
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		id := uuid.New()
		if err := db.Create(&models.Category{ID: id, Name: name}).Error; err != nil {
			return err
		}
		categoryIDs[name] = id
	}

	recipes := []seedRecipe{
		{
			title: "Wild Mushroom Risotto", author: "nadia",
			prepTime: 45, servings: 4, difficulty: "medium",
			categories: []string{"Italian", "Vegetarian"},
			nutrition:  &models.RecipeNutrition{Calories: 1840, Protein: 48, Carbs: 260, Fat: 62},
			ratings:    []int{5, 5, 4},
		},
		{
			title: "Butter Chicken", author: "priya",
			prepTime: 60, servings: 6, difficulty: "medium",
			categories: []string{"Indian", "Comfort Food"},
			nutrition:  &models.RecipeNutrition{Calories: 3120, Protein: 198, Carbs: 96, Fat: 210},
			ratings:    []int{5, 4, 5, 5},
		},
		{
			title: "Five-Minute Chocolate Mug Cake", author: "marco",
			prepTime: 5, servings: 1, difficulty: "easy",
			categories: []string{"Dessert", "Quick"},
			nutrition:  &models.RecipeNutrition{Calories: 420, Protein: 7, Carbs: 58, Fat: 18},
			ratings:    []int{4, 4},
		},
		{
			title: "Weeknight Tomato Pasta", author: "casey",
			prepTime: 25, servings: 2, difficulty: "easy",
			categories: []string{"Italian", "Quick"},
		},
		{
			title: "Saffron Panna Cotta", author: "nadia",
			prepTime: 30, servings: 6, difficulty: "hard",
			categories: []string{"Dessert"},
			nutrition:  &models.RecipeNutrition{Calories: 2100, Protein: 30, Carbs: 180, Fat: 138},
			ratings:    []int{5, 5, 5},
		},
	}

	reviewers := []string{"casey", "sam", "marco", "priya"}
	for _, r := range recipes {
		var existing models.Recipe
		err := db.Where("title = ?", r.title).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		recipeID := uuid.New()
		recipe := models.Recipe{
			ID:              recipeID,
			Title:           r.title,
			PrepTimeMinutes: r.prepTime,
			Servings:        r.servings,
			Difficulty:      r.difficulty,
			Status:          models.RecipeStatusActive,
			UserID:          userIDs[r.author],
		}
		if len(r.ratings) > 0 {
			var sum int
			for _, rating := range r.ratings {
				sum += rating
			}
			recipe.AverageRating = float64(sum) / float64(len(r.ratings))
			recipe.RatingCount = len(r.ratings)
		}
		if err := db.Create(&recipe).Error; err != nil {
			return err
		}

		if r.nutrition != nil {
			r.nutrition.ID = uuid.New()
			r.nutrition.RecipeID = recipeID
			if err := db.Create(r.nutrition).Error; err != nil {
				return err
			}
		}

		for _, cat := range r.categories {
			if err := db.Create(&models.RecipeCategory{
				ID:         uuid.New(),
				RecipeID:   recipeID,
				CategoryID: categoryIDs[cat],
			}).Error; err != nil {
				return err
			}
		}

		for i, rating := range r.ratings {
			reviewer := reviewers[i%len(reviewers)]
			if err := db.Create(&models.Review{
				ID:       uuid.New(),
				RecipeID: recipeID,
				UserID:   userIDs[reviewer],
				Rating:   rating,
			}).Error; err != nil {
				return err
			}
		}
		log.Printf("Created recipe %q", r.title)
	}

	follows := []struct{ follower, followee string }{
		{"casey", "nadia"},
		{"casey", "priya"},
		{"sam", "nadia"},
		{"sam", "marco"},
		{"marco", "nadia"},
	}
	for _, f := range follows {
		var count int64
		if err := db.Model(&models.UserFollow{}).
			Where("follower_id = ? AND followee_id = ?", userIDs[f.follower], userIDs[f.followee]).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&models.UserFollow{
			ID:         uuid.New(),
			FollowerID: userIDs[f.follower],
			FolloweeID: userIDs[f.followee],
		}).Error; err != nil {
			return err
		}
	}

	// One saved recipe so a fresh dashboard has every section populated
	var saved int64
	if err := db.Model(&models.RecipeFavorite{}).
		Where("user_id = ?", userIDs["casey"]).Count(&saved).Error; err != nil {
		return err
	}
	if saved == 0 {
		var favorite models.Recipe
		if err := db.Where("title = ?", "Butter Chicken").First(&favorite).Error; err == nil {
			if err := db.Create(&models.RecipeFavorite{
				ID:       uuid.New(),
				RecipeID: favorite.ID,
				UserID:   userIDs["casey"],
			}).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
