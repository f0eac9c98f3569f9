package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chefboard/backend/internal/types"
)

func TestPerServingDividesAndRounds(t *testing.T) {
	totals := &types.NutritionTotals{Calories: 1000, Protein: 100, Carbs: 120, Fat: 40}

	macros := PerServing(totals, 4)

	assert.Equal(t, types.MacroSummary{Calories: 250, Protein: 25, Carbs: 30, Fat: 10}, macros)
}

func TestPerServingRoundsHalfUp(t *testing.T) {
	totals := &types.NutritionTotals{Calories: 5, Protein: 3, Carbs: 1, Fat: 0}

	// 5/2 = 2.5 rounds to 3, 3/2 = 1.5 rounds to 2, 1/2 = 0.5 rounds to 1
	macros := PerServing(totals, 2)

	assert.Equal(t, types.MacroSummary{Calories: 3, Protein: 2, Carbs: 1, Fat: 0}, macros)
}

func TestPerServingMissingTotals(t *testing.T) {
	assert.Equal(t, types.MacroSummary{}, PerServing(nil, 4))
}

func TestPerServingDegenerateServings(t *testing.T) {
	totals := &types.NutritionTotals{Calories: 1000, Protein: 100, Carbs: 120, Fat: 40}

	assert.Equal(t, types.MacroSummary{}, PerServing(totals, 0))
	assert.Equal(t, types.MacroSummary{}, PerServing(totals, -1))
}

func TestPerServingSingleServing(t *testing.T) {
	totals := &types.NutritionTotals{Calories: 512.4, Protein: 30.5, Carbs: 60.2, Fat: 12.9}

	macros := PerServing(totals, 1)

	assert.Equal(t, types.MacroSummary{Calories: 512, Protein: 31, Carbs: 60, Fat: 13}, macros)
}
