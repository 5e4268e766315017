package services

import (
	"strings"

	"github.com/scmlewis/eatwise-ai-sub000/models"
	"github.com/scmlewis/eatwise-ai-sub000/utils"
)

// defaultQuantity stands in for a missing or non-positive quantity. A
// guess without a portion is treated as a standard 100 of whatever unit
// it carries (grams when the unit is missing too).
const defaultQuantity = 100

// normalizeIngredient applies the safe defaults the engine guarantees for
// malformed input: no quantity means 100, and name/unit are trimmed. The
// engine never rejects an ingredient.
func normalizeIngredient(ing models.Ingredient) models.Ingredient {
	ing.Name = strings.TrimSpace(ing.Name)
	ing.Unit = strings.TrimSpace(ing.Unit)
	if ing.Quantity <= 0 {
		ing.Quantity = defaultQuantity
	}
	return ing
}

// AggregateMeal runs the full hybrid pipeline over a list of ingredient
// guesses: match each name against the reference table, scale the first
// match by the normalized portion, fall back to the category estimator
// when nothing matches, sum everything, then validate and round the
// total. The result is identical for any permutation of the input and
// across repeated calls; the only shared state is the read-only tables,
// so concurrent callers need no coordination.
func AggregateMeal(ingredients []models.Ingredient) *models.MealTotal {
	total := models.NutrientVector{}
	items := make([]models.IngredientSource, 0, len(ingredients))

	for _, raw := range ingredients {
		ing := normalizeIngredient(raw)
		grams := GramsFor(ing.Quantity, ing.Unit)

		matches := FindMatches(ing.Name)
		if len(matches) > 0 {
			// First match is authoritative; see FindMatches.
			m := matches[0]
			scaled := m.Nutrients.Scale(ing.Quantity * Multiplier(ing.Unit))
			total = total.Add(scaled)
			items = append(items, models.IngredientSource{
				Name:      ing.Name,
				Source:    models.SourceDatabase,
				MatchedAs: m.Name,
				Grams:     grams,
				Nutrients: scaled.Rounded(),
			})
			continue
		}

		est := EstimateNutrition(ing.Name, ing.Quantity, ing.Unit)
		total = total.Add(est)
		items = append(items, models.IngredientSource{
			Name:      ing.Name,
			Source:    models.SourceEstimated,
			Category:  Classify(ing.Name),
			Grams:     grams,
			Nutrients: est,
		})
	}

	return &models.MealTotal{
		Total: utils.ValidateNutrition(total),
		Items: items,
	}
}

// Aggregate is the plain-vector form of AggregateMeal.
func Aggregate(ingredients []models.Ingredient) models.NutrientVector {
	return AggregateMeal(ingredients).Total
}
