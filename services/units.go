package services

import "strings"

// gramMultiplier is the fallback: quantity is treated as already being in
// grams, and one gram is 1/100 of a reference portion.
const gramMultiplier = 0.01

// unitMultipliers maps a serving unit to how many 100-gram reference
// portions it represents. Household units use typical kitchen weights.
// Static, loaded once, read-only.
var unitMultipliers = map[string]float64{
	"g":          gramMultiplier,
	"gram":       gramMultiplier,
	"grams":      gramMultiplier,
	"kg":         10,
	"ml":         gramMultiplier,
	"l":          10,
	"oz":         0.2835,
	"ounce":      0.2835,
	"lb":         4.536,
	"pound":      4.536,
	"cup":        2.4,
	"glass":      2,
	"tbsp":       0.15,
	"tablespoon": 0.15,
	"tsp":        0.05,
	"teaspoon":   0.05,
	"piece":      1,
	"serving":    1.5,
	"small":      0.8,
	"medium":     1.2,
	"large":      1.8,
	"slice":      0.3,
	"bowl":       2.5,
	"plate":      3,
	"handful":    0.3,
}

// Multiplier resolves a unit to its 100g multiplier. Lookup is
// case-insensitive and trimmed; anything unrecognized silently falls back
// to grams rather than failing.
func Multiplier(unit string) float64 {
	u := strings.ToLower(strings.TrimSpace(unit))
	if m, ok := unitMultipliers[u]; ok {
		return m
	}
	return gramMultiplier
}

// GramsFor converts a (quantity, unit) pair into grams.
func GramsFor(quantity float64, unit string) float64 {
	return quantity * Multiplier(unit) * 100
}
