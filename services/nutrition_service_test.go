package services

import (
	"math"
	"testing"

	"github.com/scmlewis/eatwise-ai-sub000/models"
)

func ing(name string, quantity float64, unit string) models.Ingredient {
	return models.Ingredient{Name: name, Quantity: quantity, Unit: unit}
}

func TestAggregateSingleKnownIngredient(t *testing.T) {
	// chicken breast is 165 kcal / 31g protein per 100g; 150g scales by 1.5.
	got := Aggregate([]models.Ingredient{ing("chicken breast", 150, "g")})
	if got.Protein != 46.5 {
		t.Errorf("protein = %v, want 46.5", got.Protein)
	}
	if got.Calories != 247.5 {
		t.Errorf("calories = %v, want 247.5", got.Calories)
	}
}

func TestAggregateEmptyList(t *testing.T) {
	got := Aggregate(nil)
	if got != (models.NutrientVector{}) {
		t.Fatalf("aggregate of empty list = %+v, want all-zero vector", got)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := Aggregate([]models.Ingredient{
		ing("chicken breast", 150, "g"),
		ing("rice", 200, "g"),
	})
	b := Aggregate([]models.Ingredient{
		ing("rice", 200, "g"),
		ing("chicken breast", 150, "g"),
	})
	if a != b {
		t.Fatalf("order changed the total: %+v vs %+v", a, b)
	}
}

func TestAggregateDeterministic(t *testing.T) {
	meal := []models.Ingredient{
		ing("chicken breast", 150, "g"),
		ing("brown rice", 1, "cup"),
		ing("zzqqexoticfood", 2, "medium"),
		ing("olive oil", 1, "tbsp"),
	}
	first := Aggregate(meal)
	for i := 0; i < 10; i++ {
		if got := Aggregate(meal); got != first {
			t.Fatalf("call %d produced %+v, want %+v", i, got, first)
		}
	}
}

func TestAggregateNonNegative(t *testing.T) {
	meals := [][]models.Ingredient{
		nil,
		{ing("chicken breast", 150, "g")},
		{ing("zzqqexoticfood", 0.001, "tsp")},
		{ing("", 0, "")},
		{ing("olive oil", 3, "tbsp"), ing("lettuce", 50, "g"), ing("mystery stew", 1, "bowl")},
	}
	for _, meal := range meals {
		v := Aggregate(meal)
		for field, val := range map[string]float64{
			"calories": v.Calories, "protein": v.Protein, "carbs": v.Carbs,
			"fat": v.Fat, "fiber": v.Fiber, "sodium": v.Sodium, "sugar": v.Sugar,
		} {
			if val < 0 {
				t.Errorf("meal %+v: negative %s %v", meal, field, val)
			}
		}
	}
}

func TestAggregateUnknownFallsToEstimator(t *testing.T) {
	got := Aggregate([]models.Ingredient{ing("zzqqexoticfood", 100, "g")})
	want := models.NutrientVector{Calories: 40, Protein: 2, Carbs: 8, Fat: 0.3, Fiber: 2, Sodium: 30, Sugar: 2}
	if got != want {
		t.Fatalf("got %+v, want vegetable default %+v", got, want)
	}
}

// A fully malformed ingredient degrades to a 100g default-category
// estimate rather than an error.
func TestAggregateMalformedIngredientDefaults(t *testing.T) {
	got := Aggregate([]models.Ingredient{{}})
	want := models.NutrientVector{Calories: 40, Protein: 2, Carbs: 8, Fat: 0.3, Fiber: 2, Sodium: 30, Sugar: 2}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestAggregateNegativeQuantityTreatedAsMissing(t *testing.T) {
	a := Aggregate([]models.Ingredient{ing("rice", -50, "g")})
	b := Aggregate([]models.Ingredient{ing("rice", 100, "g")})
	if a != b {
		t.Fatalf("negative quantity %+v, want same as 100g default %+v", a, b)
	}
}

func TestAggregateRoundsToOneDecimal(t *testing.T) {
	v := Aggregate([]models.Ingredient{ing("banana", 123, "g"), ing("almonds", 17, "g")})
	for _, val := range []float64{v.Calories, v.Protein, v.Carbs, v.Fat, v.Fiber, v.Sodium, v.Sugar} {
		if math.Abs(val*10-math.Round(val*10)) > 1e-9 {
			t.Errorf("field %v not rounded to one decimal", val)
		}
	}
}

func TestAggregateMealProvenance(t *testing.T) {
	meal := AggregateMeal([]models.Ingredient{
		ing("chicken breast", 150, "g"),
		ing("zzqqexoticfood", 1, "bowl"),
	})
	if len(meal.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(meal.Items))
	}

	first := meal.Items[0]
	if first.Source != models.SourceDatabase || first.MatchedAs != "chicken breast" {
		t.Errorf("first item provenance %+v", first)
	}
	if first.Grams != 150 {
		t.Errorf("first item grams = %v, want 150", first.Grams)
	}

	second := meal.Items[1]
	if second.Source != models.SourceEstimated || second.Category != CategoryVegetable {
		t.Errorf("second item provenance %+v", second)
	}
	if second.Grams != 250 {
		t.Errorf("second item grams = %v, want 250", second.Grams)
	}
}

// The aggregator always uses the first match, which for a query that is a
// substring of several keys is the earliest table entry.
func TestAggregateUsesFirstMatch(t *testing.T) {
	meal := AggregateMeal([]models.Ingredient{ing("grilled chicken breast", 100, "g")})
	if meal.Items[0].MatchedAs != "chicken breast" {
		t.Fatalf("matched %q, want %q", meal.Items[0].MatchedAs, "chicken breast")
	}
}
