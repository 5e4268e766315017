package utils

import (
	"testing"

	"github.com/scmlewis/eatwise-ai-sub000/models"
)

func TestValidateRepairsZeroCarbWithFiber(t *testing.T) {
	cases := []struct {
		fiber     float64
		wantCarbs float64
	}{
		{1, 3},   // max(3, 2) floors at 3
		{1.5, 3}, // max(3, 3) still 3
		{5, 10},  // fiber*2 wins
		{8.2, 16.4},
	}
	for _, tc := range cases {
		got := ValidateNutrition(models.NutrientVector{Fiber: tc.fiber})
		if got.Carbs != tc.wantCarbs {
			t.Errorf("fiber %v: carbs = %v, want %v", tc.fiber, got.Carbs, tc.wantCarbs)
		}
	}
}

func TestValidateLeavesConsistentVectorsAlone(t *testing.T) {
	in := models.NutrientVector{Calories: 247.5, Protein: 46.5, Carbs: 12, Fat: 5.4, Fiber: 1, Sodium: 111, Sugar: 0.5}
	if got := ValidateNutrition(in); got != in {
		t.Fatalf("got %+v, want unchanged %+v", got, in)
	}
}

func TestValidateRounding(t *testing.T) {
	in := models.NutrientVector{Calories: 100.04, Protein: 9.96, Carbs: 3.333, Fat: 0.05, Sodium: 12.25}
	got := ValidateNutrition(in)
	if got.Calories != 100 || got.Protein != 10 || got.Carbs != 3.3 {
		t.Fatalf("rounding wrong: %+v", got)
	}
}

func TestValidateClampsNegatives(t *testing.T) {
	got := ValidateNutrition(models.NutrientVector{Calories: -5, Protein: -1, Sodium: -20})
	if got.Calories != 0 || got.Protein != 0 || got.Sodium != 0 {
		t.Fatalf("negatives survived validation: %+v", got)
	}
}

// No macro-calorie enforcement: a pure-oil profile passes through as-is.
func TestValidateDoesNotEnforceMacroCalories(t *testing.T) {
	in := models.NutrientVector{Calories: 884, Fat: 100}
	if got := ValidateNutrition(in); got != in {
		t.Fatalf("got %+v, want untouched %+v", got, in)
	}
}
