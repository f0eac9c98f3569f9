package dashboard

import (
	"github.com/chefboard/backend/internal/types"
)

// AnonymousChefName is shown when a recipe's author join is missing.
const AnonymousChefName = "Anonymous Chef"

// TransformRecipe flattens a raw recipe record and its optional joins
// into a RecipeViewModel. It is total for well-formed input: missing
// joins degrade to defaults rather than failing.
func TransformRecipe(raw types.RawRecipeRecord) types.RecipeViewModel {
	vm := types.RecipeViewModel{
		ID:              raw.ID,
		Title:           raw.Title,
		Description:     raw.Description,
		ImageURL:        raw.ImageURL,
		PrepTimeMinutes: raw.PrepTimeMinutes,
		Servings:        raw.Servings,
		Difficulty:      raw.Difficulty,
		Rating:          raw.Rating,
		RatingCount:     raw.RatingCount,
		CreatedAt:       raw.CreatedAt,
		OwnerID:         raw.UserID,
		Author: types.AuthorSummary{
			ID:   raw.UserID,
			Name: AnonymousChefName,
		},
		Categories: categoryNames(raw.Categories),
		Macros:     PerServing(raw.Nutrition, raw.Servings),
	}

	if raw.Author != nil {
		if raw.Author.Name != "" {
			vm.Author.Name = raw.Author.Name
		}
		vm.Author.AvatarURL = raw.Author.AvatarURL
	}

	return vm
}

// TransformRecipes applies TransformRecipe to a slice, preserving order.
func TransformRecipes(raws []types.RawRecipeRecord) []types.RecipeViewModel {
	vms := make([]types.RecipeViewModel, len(raws))
	for i, raw := range raws {
		vms[i] = TransformRecipe(raw)
	}
	return vms
}

// categoryNames flattens category-link rows to their names, dropping
// empties. Source order is preserved.
func categoryNames(links []types.RecipeCategoryLink) []string {
	names := make([]string, 0, len(links))
	for _, link := range links {
		if link.Name == "" {
			continue
		}
		names = append(names, link.Name)
	}
	return names
}
