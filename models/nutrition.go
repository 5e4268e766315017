package models

import "math"

// NutrientVector is the seven-field nutrition record used everywhere in
// the engine. Units: kcal, g, g, g, g, mg, g. Values are per 100g when the
// vector comes from the reference table, absolute otherwise.
type NutrientVector struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
	Sugar    float64 `json:"sugar"`
}

// Add returns the field-wise sum of v and o.
func (v NutrientVector) Add(o NutrientVector) NutrientVector {
	return NutrientVector{
		Calories: v.Calories + o.Calories,
		Protein:  v.Protein + o.Protein,
		Carbs:    v.Carbs + o.Carbs,
		Fat:      v.Fat + o.Fat,
		Fiber:    v.Fiber + o.Fiber,
		Sodium:   v.Sodium + o.Sodium,
		Sugar:    v.Sugar + o.Sugar,
	}
}

// Scale returns every field multiplied by factor.
func (v NutrientVector) Scale(factor float64) NutrientVector {
	return NutrientVector{
		Calories: v.Calories * factor,
		Protein:  v.Protein * factor,
		Carbs:    v.Carbs * factor,
		Fat:      v.Fat * factor,
		Fiber:    v.Fiber * factor,
		Sodium:   v.Sodium * factor,
		Sugar:    v.Sugar * factor,
	}
}

// Rounded returns every field rounded to one decimal place.
func (v NutrientVector) Rounded() NutrientVector {
	return NutrientVector{
		Calories: round1(v.Calories),
		Protein:  round1(v.Protein),
		Carbs:    round1(v.Carbs),
		Fat:      round1(v.Fat),
		Fiber:    round1(v.Fiber),
		Sodium:   round1(v.Sodium),
		Sugar:    round1(v.Sugar),
	}
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

// Ingredient is a single structured guess from the extraction layer
// (LLM, photo labels, or a manual entry). Name is free text and matched
// case-insensitively. Preparation is carried through untouched; the
// engine does not use it.
type Ingredient struct {
	Name        string  `json:"name"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Preparation string  `json:"preparation,omitempty"`
}

// FoodMatch is one reference-table hit for a queried name.
type FoodMatch struct {
	Name      string         `json:"name"`
	Nutrients NutrientVector `json:"nutrients"`
}

// Per-ingredient provenance values.
const (
	SourceDatabase  = "database"
	SourceEstimated = "estimated"
)

// IngredientSource records how a single ingredient was resolved: against
// the reference table (MatchedAs set) or through the category estimator
// (Category set).
type IngredientSource struct {
	Name      string         `json:"name"`
	Source    string         `json:"source"`
	MatchedAs string         `json:"matched_as,omitempty"`
	Category  string         `json:"category,omitempty"`
	Grams     float64        `json:"grams"`
	Nutrients NutrientVector `json:"nutrients"`
}

// MealTotal is the aggregator's output: the validated, rounded total plus
// the provenance the coverage scorer and the UI consume. Built fresh per
// call, never persisted here.
type MealTotal struct {
	Total NutrientVector     `json:"total"`
	Items []IngredientSource `json:"items"`
}

// CoverageReport says what fraction of a meal's ingredients resolved
// against the reference table. Advisory only.
type CoverageReport struct {
	InDatabase         int     `json:"in_database"`
	Estimated          int     `json:"estimated"`
	Total              int     `json:"total"`
	CoveragePercentage float64 `json:"coverage_percentage"`
}
