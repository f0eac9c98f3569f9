package dashboard

import (
	"math"

	"github.com/chefboard/backend/internal/types"
)

// PerServing derives per-serving macro values from whole-recipe totals,
// rounding half up. Missing totals or a servings count below 1 yield
// the zero vector; the two cases are indistinguishable from the output
// alone, which matches the "no nutrition data" default.
func PerServing(totals *types.NutritionTotals, servings int) types.MacroSummary {
	if totals == nil || servings < 1 {
		return types.MacroSummary{}
	}
	return types.MacroSummary{
		Calories: roundPerServing(totals.Calories, servings),
		Protein:  roundPerServing(totals.Protein, servings),
		Carbs:    roundPerServing(totals.Carbs, servings),
		Fat:      roundPerServing(totals.Fat, servings),
	}
}

func roundPerServing(total float64, servings int) int {
	return int(math.Floor(total/float64(servings) + 0.5))
}
