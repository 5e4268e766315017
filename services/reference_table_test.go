package services

import (
	"math"
	"strings"
	"testing"
)

func TestReferenceTableSize(t *testing.T) {
	if n := ReferenceTableSize(); n < 90 {
		t.Fatalf("reference table has %d entries, want at least 90", n)
	}
}

func TestReferenceTableKeysCanonical(t *testing.T) {
	seen := map[string]bool{}
	for _, e := range ReferenceEntries() {
		if e.Name != strings.ToLower(strings.TrimSpace(e.Name)) {
			t.Errorf("key %q is not trimmed lowercase", e.Name)
		}
		if seen[e.Name] {
			t.Errorf("duplicate key %q", e.Name)
		}
		seen[e.Name] = true
	}
}

func TestReferenceTableNonNegative(t *testing.T) {
	for _, e := range ReferenceEntries() {
		v := e.Nutrients
		for field, val := range map[string]float64{
			"calories": v.Calories,
			"protein":  v.Protein,
			"carbs":    v.Carbs,
			"fat":      v.Fat,
			"fiber":    v.Fiber,
			"sodium":   v.Sodium,
			"sugar":    v.Sugar,
		} {
			if val < 0 {
				t.Errorf("%s: negative %s %v", e.Name, field, val)
			}
		}
	}
}

// Every curated entry must be macro-calorie plausible: calories within 40%
// of protein*4 + carbs*4 + fat*9. Exact equality is not expected because
// fiber and alcohol calories are unaccounted for.
func TestReferenceTableMacroCaloriePlausibility(t *testing.T) {
	for _, e := range ReferenceEntries() {
		v := e.Nutrients
		if v.Calories == 0 {
			continue
		}
		macroKcal := v.Protein*4 + v.Carbs*4 + v.Fat*9
		dev := math.Abs(v.Calories-macroKcal) / v.Calories
		if dev > 0.4 {
			t.Errorf("%s: calories %.0f vs macro kcal %.1f, deviation %.0f%%",
				e.Name, v.Calories, macroKcal, dev*100)
		}
	}
}
