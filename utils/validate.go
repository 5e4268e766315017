package utils

import (
	"math"

	"github.com/scmlewis/eatwise-ai-sub000/models"
)

// ValidateNutrition applies the sanity pass every aggregated vector goes
// through before leaving the engine:
//   - negative fields are clamped to zero,
//   - a zero-carb vector that still reports fiber gets its carbs repaired
//     to max(3, fiber*2), since fiber is itself a carbohydrate,
//   - every field is rounded to one decimal.
//
// Macro-calorie consistency is deliberately NOT enforced here: pure oils
// and similar edge-case foods would be silently distorted. That check
// lives in the test suite as a plausibility property instead.
func ValidateNutrition(v models.NutrientVector) models.NutrientVector {
	v = clampNonNegative(v)
	if v.Carbs == 0 && v.Fiber > 0 {
		v.Carbs = math.Max(3, v.Fiber*2)
	}
	return v.Rounded()
}

func clampNonNegative(v models.NutrientVector) models.NutrientVector {
	v.Calories = math.Max(0, v.Calories)
	v.Protein = math.Max(0, v.Protein)
	v.Carbs = math.Max(0, v.Carbs)
	v.Fat = math.Max(0, v.Fat)
	v.Fiber = math.Max(0, v.Fiber)
	v.Sodium = math.Max(0, v.Sodium)
	v.Sugar = math.Max(0, v.Sugar)
	return v
}
