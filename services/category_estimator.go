package services

import (
	"strings"

	"github.com/scmlewis/eatwise-ai-sub000/models"
)

// Category tags for the estimator of last resort.
const (
	CategoryMeat      = "meat"
	CategoryFish      = "fish"
	CategoryFruit     = "fruit"
	CategoryGrain     = "grain"
	CategoryLegume    = "legume"
	CategoryDairy     = "dairy"
	CategoryOil       = "oil"
	CategoryVegetable = "vegetable"
)

type categoryRule struct {
	tag      string
	keywords []string
}

// categoryRules is evaluated top to bottom and the first keyword hit wins,
// so the order encodes priority: "chicken bean soup" classifies as meat,
// not legume. Vegetable is the fallback and has no keyword set.
var categoryRules = []categoryRule{
	{CategoryMeat, []string{
		"chicken", "beef", "pork", "turkey", "lamb", "bacon", "sausage",
		"ham", "steak", "mutton", "duck", "veal", "meat",
	}},
	{CategoryFish, []string{
		"fish", "salmon", "tuna", "shrimp", "prawn", "cod", "tilapia",
		"sardine", "mackerel", "anchovy", "trout", "crab", "lobster",
		"seafood", "oyster", "squid",
	}},
	{CategoryFruit, []string{
		"apple", "banana", "orange", "berry", "berries", "mango", "grape",
		"melon", "peach", "pear", "pineapple", "kiwi", "plum", "cherry",
		"apricot", "fig", "fruit",
	}},
	{CategoryGrain, []string{
		"rice", "bread", "pasta", "noodle", "oat", "wheat", "cereal",
		"quinoa", "barley", "corn", "tortilla", "bagel", "cracker",
		"couscous", "grain",
	}},
	{CategoryLegume, []string{
		"bean", "lentil", "chickpea", "pea", "soy", "tofu", "edamame",
		"hummus", "legume",
	}},
	{CategoryDairy, []string{
		"milk", "cheese", "yogurt", "yoghurt", "curd", "cream", "kefir",
		"paneer", "dairy",
	}},
	{CategoryOil, []string{
		"oil", "butter", "ghee", "margarine", "lard", "mayonnaise",
		"dressing",
	}},
}

// categoryVectors holds one generic per-100g vector per category.
var categoryVectors = map[string]models.NutrientVector{
	CategoryMeat:      nv(200, 26, 0, 10, 0, 70, 0),
	CategoryFish:      nv(150, 22, 0, 6, 0, 60, 0),
	CategoryFruit:     nv(60, 0.8, 15, 0.2, 2.5, 1, 12),
	CategoryGrain:     nv(150, 4, 30, 1, 2, 5, 0.5),
	CategoryLegume:    nv(120, 8, 20, 0.5, 7, 5, 1),
	CategoryDairy:     nv(80, 5, 6, 4, 0, 50, 6),
	CategoryOil:       nv(850, 0, 0, 94, 0, 2, 0),
	CategoryVegetable: nv(40, 2, 8, 0.3, 2, 30, 2),
}

// Classify assigns a food name to one of the eight coarse categories.
func Classify(foodName string) string {
	name := strings.ToLower(strings.TrimSpace(foodName))
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(name, kw) {
				return rule.tag
			}
		}
	}
	return CategoryVegetable
}

// EstimateNutrition produces a generic estimate for a food the reference
// table does not know: classify the name, scale the category's per-100g
// vector by the requested portion, round to one decimal. It always
// returns a usable vector; unreliability is reported through the coverage
// scorer instead of an error.
func EstimateNutrition(foodName string, quantity float64, unit string) models.NutrientVector {
	grams := GramsFor(quantity, unit)
	base := categoryVectors[Classify(foodName)]
	return base.Scale(grams / 100).Rounded()
}

// CategoryVector exposes the generic per-100g vector for a category tag.
// Unknown tags fall back to the vegetable vector.
func CategoryVector(tag string) models.NutrientVector {
	if v, ok := categoryVectors[tag]; ok {
		return v
	}
	return categoryVectors[CategoryVegetable]
}
