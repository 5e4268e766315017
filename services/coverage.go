package services

import (
	"math"

	"github.com/scmlewis/eatwise-ai-sub000/models"
)

// Coverage reports how many of a meal's ingredients resolved against the
// reference table versus falling to the category estimator. Quantity and
// unit play no part here, only the name. The report never blocks or
// alters aggregation; it exists so callers can discount low-trust
// estimates.
func Coverage(ingredients []models.Ingredient) models.CoverageReport {
	report := models.CoverageReport{Total: len(ingredients)}
	for _, ing := range ingredients {
		if IsKnown(ing.Name) {
			report.InDatabase++
		} else {
			report.Estimated++
		}
	}
	if report.Total > 0 {
		pct := float64(report.InDatabase) / float64(report.Total) * 100
		report.CoveragePercentage = math.Round(pct*10) / 10
	}
	return report
}
