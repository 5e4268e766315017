package utils

import (
	"testing"

	"github.com/scmlewis/eatwise-ai-sub000/models"
)

func hasCode(ws []Warning, code string) bool {
	for _, w := range ws {
		if w.Code == code {
			return true
		}
	}
	return false
}

func TestAssessMealEmptyVector(t *testing.T) {
	ws := AssessMeal("", models.NutrientVector{}, 0, AssessmentContext{})
	if len(ws) != 0 {
		t.Fatalf("empty vector produced warnings: %+v", ws)
	}
	if HealthScore(ws) != 100 {
		t.Fatalf("empty meal score = %d, want 100", HealthScore(ws))
	}
}

func TestAssessMealSodium(t *testing.T) {
	// 1200mg against the adult 2300mg CDRR is a >40% share.
	v := models.NutrientVector{Calories: 600, Protein: 30, Carbs: 60, Fat: 20, Sodium: 1200}
	ws := AssessMeal("", v, 0, AssessmentContext{})
	if !hasCode(ws, "sodium_very_high") {
		t.Fatalf("expected sodium_very_high, got %+v", ws)
	}

	// The same meal for a toddler trips the lower age limit harder.
	ws = AssessMeal("", v, 0, AssessmentContext{AgeYears: 3})
	if !hasCode(ws, "sodium_very_high") {
		t.Fatalf("expected sodium_very_high for age 3, got %+v", ws)
	}
}

func TestAssessMealSugar(t *testing.T) {
	// 45g sugar on a 2000 kcal target is 90% of the 50g daily limit.
	v := models.NutrientVector{Calories: 500, Protein: 5, Carbs: 90, Fat: 10, Sugar: 45}
	ws := AssessMeal("", v, 0, AssessmentContext{})
	if !hasCode(ws, "sugars_very_high_daily_share") {
		t.Fatalf("expected sugars_very_high_daily_share, got %+v", ws)
	}
	if !hasCode(ws, "sugars_high_meal") {
		t.Fatalf("expected sugars_high_meal, got %+v", ws)
	}
}

func TestAssessMealGrainHeuristics(t *testing.T) {
	v := models.NutrientVector{Calories: 250, Protein: 9, Carbs: 48, Fat: 3, Fiber: 6}
	ws := AssessMeal("brown rice bowl", v, 0, AssessmentContext{})
	if !hasCode(ws, "whole_grain_positive") {
		t.Fatalf("expected whole_grain_positive, got %+v", ws)
	}

	ws = AssessMeal("white rice bowl", v, 0, AssessmentContext{})
	if !hasCode(ws, "refined_grain_nudge") {
		t.Fatalf("expected refined_grain_nudge, got %+v", ws)
	}
}

func TestAssessMealEnergyDensity(t *testing.T) {
	v := models.NutrientVector{Calories: 600, Protein: 20, Carbs: 60, Fat: 30}
	ws := AssessMeal("", v, 150, AssessmentContext{})
	if !hasCode(ws, "energy_density_very_high") {
		t.Fatalf("expected energy_density_very_high at 400 kcal/100g, got %+v", ws)
	}
}

func TestHealthScoreSeverityWeights(t *testing.T) {
	ws := []Warning{
		{Severity: High},
		{Severity: Caution},
		{Severity: Info},
	}
	if got := HealthScore(ws); got != 62 {
		t.Fatalf("score = %d, want 62", got)
	}
}

func TestHealthScoreNeverNegative(t *testing.T) {
	ws := make([]Warning, 10)
	for i := range ws {
		ws[i] = Warning{Severity: High}
	}
	if got := HealthScore(ws); got != 0 {
		t.Fatalf("score = %d, want floor of 0", got)
	}
}
