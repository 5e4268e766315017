package services

import (
	"strings"

	"github.com/scmlewis/eatwise-ai-sub000/models"
)

// FindMatches resolves a free-text food name against the reference table.
// An exact key match wins outright and returns a single result. Otherwise
// every key that contains the query, or is contained by it, is collected
// in table order. No ranking is applied beyond that order: callers treat
// the first match as authoritative. Empty or whitespace-only input yields
// no matches.
func FindMatches(foodName string) []models.FoodMatch {
	q := strings.ToLower(strings.TrimSpace(foodName))
	if q == "" {
		return nil
	}

	if i, ok := referenceIndex[q]; ok {
		e := referenceTable[i]
		return []models.FoodMatch{{Name: e.Name, Nutrients: e.Nutrients}}
	}

	var matches []models.FoodMatch
	for _, e := range referenceTable {
		if strings.Contains(e.Name, q) || strings.Contains(q, e.Name) {
			matches = append(matches, models.FoodMatch{Name: e.Name, Nutrients: e.Nutrients})
		}
	}
	return matches
}

// IsKnown reports whether a name resolves to at least one table entry.
func IsKnown(foodName string) bool {
	return len(FindMatches(foodName)) > 0
}
