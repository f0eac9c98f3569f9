package dashboard

import (
	"sort"

	"github.com/chefboard/backend/internal/types"
)

const (
	// MaxPopularRecipes caps the popular-recipes section.
	MaxPopularRecipes = 4
	// PopularRatingFloor is the exclusive rating threshold. There is no
	// rating-count minimum: a single 5-star review qualifies a recipe.
	PopularRatingFloor = 4.0
)

// SelectPopular filters the feed to recipes rated strictly above
// PopularRatingFloor, sorts by rating descending (stable, so ties keep
// feed order) and returns at most MaxPopularRecipes entries.
func SelectPopular(feed []types.RecipeViewModel) []types.RecipeViewModel {
	popular := make([]types.RecipeViewModel, 0, len(feed))
	for _, r := range feed {
		if r.Rating > PopularRatingFloor {
			popular = append(popular, r)
		}
	}

	sort.SliceStable(popular, func(i, j int) bool {
		return popular[i].Rating > popular[j].Rating
	})

	if len(popular) > MaxPopularRecipes {
		popular = popular[:MaxPopularRecipes]
	}
	return popular
}
