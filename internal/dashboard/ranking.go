package dashboard

import (
	"math"
	"sort"

	"github.com/chefboard/backend/internal/types"
)

// MaxFeaturedChefs is the length cap of the featured-chefs ranking.
const MaxFeaturedChefs = 4

// EffectiveRating averages a chef's per-recipe ratings, counting only
// ratings strictly greater than 0. The result is rounded to one
// decimal place. It is nil, never 0, when no positive rating exists.
func EffectiveRating(ratings []float64) *float64 {
	var sum float64
	var count int
	for _, r := range ratings {
		if r > 0 {
			sum += r
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := math.Floor(sum/float64(count)*10+0.5) / 10
	return &avg
}

// RankChefs ranks chef candidates and returns the top entries, at most
// MaxFeaturedChefs. Rated chefs sort before unrated ones, then by
// rating descending, then by follower count descending. The sort is
// stable, so remaining ties keep input order.
func RankChefs(candidates []types.ChefCandidate) []types.ChefSummary {
	summaries := make([]types.ChefSummary, len(candidates))
	for i, c := range candidates {
		summaries[i] = types.ChefSummary{
			ID:            c.ID,
			Name:          c.Name,
			AvatarURL:     c.AvatarURL,
			RecipeCount:   c.RecipeCount,
			FollowerCount: c.FollowerCount,
			AverageRating: EffectiveRating(c.RecipeRatings),
		}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		switch {
		case a.AverageRating != nil && b.AverageRating == nil:
			return true
		case a.AverageRating == nil && b.AverageRating != nil:
			return false
		case a.AverageRating != nil && *a.AverageRating != *b.AverageRating:
			return *a.AverageRating > *b.AverageRating
		}
		return a.FollowerCount > b.FollowerCount
	})

	if len(summaries) > MaxFeaturedChefs {
		summaries = summaries[:MaxFeaturedChefs]
	}
	return summaries
}
