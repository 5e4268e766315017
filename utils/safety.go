package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/scmlewis/eatwise-ai-sub000/models"
)

// AssessmentContext carries the optional per-user inputs the assessment
// rules use for daily-limit conversions.
type AssessmentContext struct {
	AgeYears      int
	CalorieTarget float64 // if 0, engine assumes 2000 kcal for % of day conversions
}

// WarningSeverity categorizes how serious the flag is.
type WarningSeverity string

const (
	Info    WarningSeverity = "info"
	Caution WarningSeverity = "caution"
	High    WarningSeverity = "high"
)

// Warning is a structured finding surfaced to the API / UI.
type Warning struct {
	Code           string          `json:"code"`
	Severity       WarningSeverity `json:"severity"`
	Message        string          `json:"message"`
	Metric         string          `json:"metric,omitempty"`
	Value          float64         `json:"value,omitempty"`
	Limit          float64         `json:"limit,omitempty"`
	PercentOfLimit float64         `json:"percent_of_limit,omitempty"`
	Reference      string          `json:"reference,omitempty"`
}

// AssessMeal runs the DGA 2020–2025 aligned rule set over an aggregated
// meal vector. servingG is the total meal weight in grams (0 if unknown);
// mealName feeds the grain heuristics and may be empty. Only emits
// findings when the relevant inputs are present.
func AssessMeal(mealName string, v models.NutrientVector, servingG float64, ctx AssessmentContext) []Warning {
	warnings := []Warning{}

	kcal := v.Calories
	if kcal <= 0 {
		kcal = energyFromMacros(v.Carbs, v.Protein, v.Fat)
	}

	kcalTarget := ctx.CalorieTarget
	if kcalTarget <= 0 {
		kcalTarget = 2000
	}
	sugarDailyLimitG := (0.10 * kcalTarget) / 4.0 // <10% kcal/day
	sodLimit := sodiumLimitByAge(ctx.AgeYears)

	// 1) Sugars — <10% kcal/day. Only total sugar is tracked, so this is
	// a proxy screen that may include intrinsic sugars.
	if kcal > 0 && v.Sugar > 0 {
		pct := (v.Sugar * 4.0) / kcal
		if pct >= 0.10 {
			warnings = append(warnings, Warning{
				Code:      "sugars_high_meal",
				Severity:  Caution,
				Message:   fmt.Sprintf("High sugars for this meal (%.0f%% of its calories) — may include added sugars.", pct*100),
				Metric:    "sugar_%_of_meal_kcal",
				Value:     round2(pct * 100),
				Limit:     10,
				Reference: dgaRef("Added sugars ≤10% kcal"),
			})
		}
	}
	if v.Sugar > 0 && sugarDailyLimitG > 0 {
		share := v.Sugar / sugarDailyLimitG
		switch {
		case share >= 0.80:
			warnings = append(warnings, Warning{
				Code:           "sugars_very_high_daily_share",
				Severity:       High,
				Message:        fmt.Sprintf("This meal provides ~%.0f%% of the daily added-sugar limit.", share*100),
				Metric:         "sugar_%_of_daily_limit",
				Value:          round2(share * 100),
				Limit:          100,
				PercentOfLimit: round2(share * 100),
				Reference:      dgaRef("<10% kcal/day from added sugars"),
			})
		case share >= 0.40:
			warnings = append(warnings, Warning{
				Code:           "sugars_high_daily_share",
				Severity:       Caution,
				Message:        fmt.Sprintf("High share of the daily added-sugar limit from one meal (~%.0f%%).", share*100),
				Metric:         "sugar_%_of_daily_limit",
				Value:          round2(share * 100),
				Limit:          100,
				PercentOfLimit: round2(share * 100),
				Reference:      dgaRef("<10% kcal/day from added sugars"),
			})
		}
	}

	// 2) Sodium — age-aware CDRR; gates at ~20%/40% of the daily limit.
	if v.Sodium > 0 && sodLimit > 0 {
		share := v.Sodium / sodLimit
		if share >= 0.40 {
			warnings = append(warnings, Warning{
				Code:           "sodium_very_high",
				Severity:       High,
				Message:        fmt.Sprintf("Very high sodium for one meal (≈%.0f%% of the daily limit).", share*100),
				Metric:         "sodium_%_of_daily_limit",
				Value:          round2(share * 100),
				Limit:          100,
				PercentOfLimit: round2(share * 100),
				Reference:      dgaRef("Limit sodium (CDRR)"),
			})
		} else if share >= 0.20 {
			warnings = append(warnings, Warning{
				Code:           "sodium_high",
				Severity:       Caution,
				Message:        fmt.Sprintf("High sodium for one meal (≈%.0f%% of the daily limit).", share*100),
				Metric:         "sodium_%_of_daily_limit",
				Value:          round2(share * 100),
				Limit:          100,
				PercentOfLimit: round2(share * 100),
				Reference:      dgaRef("Limit sodium (CDRR)"),
			})
		}
		// Sodium density (mg/100 kcal) — higher density is harder to fit.
		if kcal > 0 {
			naPer100kcal := (v.Sodium / kcal) * 100.0
			if naPer100kcal >= 400 {
				warnings = append(warnings, Warning{
					Code:      "sodium_dense",
					Severity:  Info,
					Message:   "High sodium density relative to calories — consider lower-sodium alternatives.",
					Metric:    "sodium_mg_per_100kcal",
					Value:     round2(naPer100kcal),
					Reference: dgaRef("Reduce sodium; choose lower-sodium options"),
				})
			}
		}
	}

	// 3) AMDR (macronutrient distribution) — per-meal macro calories.
	if kcal > 0 && (v.Carbs > 0 || v.Protein > 0 || v.Fat > 0) {
		totalFromMacros := 4*v.Carbs + 4*v.Protein + 9*v.Fat
		if totalFromMacros > 0 {
			cPct := (4 * v.Carbs) / totalFromMacros
			pPct := (4 * v.Protein) / totalFromMacros
			fPct := (9 * v.Fat) / totalFromMacros

			if cPct < 0.45 || cPct > 0.65 {
				warnings = append(warnings, Warning{
					Code:      "amdr_carbs_out_of_range",
					Severity:  Info,
					Message:   fmt.Sprintf("Carbohydrates ~%.0f%% of macro calories (AMDR 45–65%%).", cPct*100),
					Metric:    "carb_%_of_macro_kcal",
					Value:     round2(cPct * 100),
					Reference: dgaRef("AMDR: Carbs 45–65% kcal"),
				})
			}
			if pPct < 0.10 || pPct > 0.35 {
				warnings = append(warnings, Warning{
					Code:      "amdr_protein_out_of_range",
					Severity:  Info,
					Message:   fmt.Sprintf("Protein ~%.0f%% of macro calories (AMDR 10–35%%).", pPct*100),
					Metric:    "protein_%_of_macro_kcal",
					Value:     round2(pPct * 100),
					Reference: dgaRef("AMDR: Protein 10–35% kcal"),
				})
			}
			if fPct < 0.20 || fPct > 0.35 {
				warnings = append(warnings, Warning{
					Code:      "amdr_fat_out_of_range",
					Severity:  Info,
					Message:   fmt.Sprintf("Fat ~%.0f%% of macro calories (AMDR 20–35%%).", fPct*100),
					Metric:    "fat_%_of_macro_kcal",
					Value:     round2(fPct * 100),
					Reference: dgaRef("AMDR: Fat 20–35% kcal"),
				})
			}
		}
	}

	// 4) Fiber density (nudges for underconsumed dietary fiber).
	if kcal > 0 && v.Carbs >= 15 && v.Fiber > 0 {
		fiberPer100kcal := (v.Fiber / kcal) * 100.0
		if fiberPer100kcal < 1.0 {
			warnings = append(warnings, Warning{
				Code:      "fiber_low_nudge",
				Severity:  Info,
				Message:   "Low dietary fiber for a carbohydrate meal — consider whole grains, fruits, or vegetables.",
				Metric:    "fiber_g_per_100kcal",
				Value:     round2(fiberPer100kcal),
				Reference: dgaRef("Fiber is underconsumed; emphasize fiber-rich foods"),
			})
		} else if fiberPer100kcal >= 2.5 {
			warnings = append(warnings, Warning{
				Code:      "fiber_high_positive",
				Severity:  Info,
				Message:   "Good fiber density — supports a healthy dietary pattern.",
				Metric:    "fiber_g_per_100kcal",
				Value:     round2(fiberPer100kcal),
				Reference: dgaRef("Emphasize fiber-rich foods"),
			})
		}
	}

	// 5) Whole vs. refined grains (name heuristics).
	lower := strings.ToLower(mealName)
	if isLikelyWholeGrain(lower) {
		warnings = append(warnings, Warning{
			Code:      "whole_grain_positive",
			Severity:  Info,
			Message:   "Whole-grain choice supports fiber and nutrient density.",
			Reference: dgaRef("Make at least half of grains whole"),
		})
	} else if isLikelyRefinedGrain(lower) {
		warnings = append(warnings, Warning{
			Code:      "refined_grain_nudge",
			Severity:  Info,
			Message:   "Refined-grain item — consider swapping for whole-grain options (≥½ of grains should be whole).",
			Reference: dgaRef("Make at least half of grains whole"),
		})
	}

	// 6) Energy density (when the meal weight is known).
	if servingG > 0 && kcal > 0 {
		kcalPer100g := (kcal / servingG) * 100.0
		switch {
		case kcalPer100g >= 275:
			warnings = append(warnings, Warning{
				Code:      "energy_density_very_high",
				Severity:  Info,
				Message:   "Very energy-dense meal — mindful portions can help fit it into a healthy pattern.",
				Metric:    "kcal_per_100g",
				Value:     round2(kcalPer100g),
				Reference: dgaRef("Focus on nutrient density; moderate high-energy-density foods"),
			})
		case kcalPer100g >= 150:
			warnings = append(warnings, Warning{
				Code:      "energy_density_high",
				Severity:  Info,
				Message:   "High energy density — balance with lower-calorie, nutrient-dense sides (vegetables/fruits).",
				Metric:    "kcal_per_100g",
				Value:     round2(kcalPer100g),
				Reference: dgaRef("Emphasize nutrient-dense foods"),
			})
		}
	}

	return warnings
}

// AssessMealMessages keeps a plain-strings variant for simple surfaces.
func AssessMealMessages(mealName string, v models.NutrientVector, servingG float64, ctx AssessmentContext) []string {
	ws := AssessMeal(mealName, v, servingG, ctx)
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.Message)
	}
	return out
}

// HealthScore condenses the findings into a 0–100 score for the UI:
// start from 100 and charge each finding by severity.
func HealthScore(warnings []Warning) int {
	score := 100
	for _, w := range warnings {
		switch w.Severity {
		case High:
			score -= 25
		case Caution:
			score -= 10
		case Info:
			score -= 3
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

// -----------------------------
// Helpers
// -----------------------------

func energyFromMacros(carbG, protG, fatG float64) float64 {
	if carbG <= 0 && protG <= 0 && fatG <= 0 {
		return 0
	}
	return 4.0*carbG + 4.0*protG + 9.0*fatG
}

func sodiumLimitByAge(age int) float64 {
	switch {
	case age > 0 && age <= 3:
		return 1200 // mg/day
	case age >= 4 && age <= 8:
		return 1500
	case age >= 9 && age <= 13:
		return 1800
	default:
		return 2300
	}
}

func dgaRef(where string) string {
	return "Dietary Guidelines for Americans, 2020–2025 — " + where
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Whole/refined grain heuristics
func isLikelyWholeGrain(name string) bool {
	return containsAny(name, "whole wheat", "whole-grain", "whole grain", "brown rice", "oat", "oats", "quinoa", "bulgur", "rye", "wholemeal")
}
func isLikelyRefinedGrain(name string) bool {
	return containsAny(name, "white bread", "white rice", "refined flour", "all-purpose flour", "maida", "cake", "pastry", "cracker", "biscuit")
}
