package services

import (
	"math"
	"testing"
)

func TestMultiplierKnownUnits(t *testing.T) {
	cases := []struct {
		unit string
		want float64
	}{
		{"g", 0.01},
		{"G", 0.01},
		{" grams ", 0.01},
		{"kg", 10},
		{"oz", 0.2835},
		{"cup", 2.4},
		{"tbsp", 0.15},
		{"tsp", 0.05},
		{"medium", 1.2},
		{"slice", 0.3},
	}
	for _, tc := range cases {
		if got := Multiplier(tc.unit); got != tc.want {
			t.Errorf("Multiplier(%q) = %v, want %v", tc.unit, got, tc.want)
		}
	}
}

func TestUnknownUnitFallsBackToGrams(t *testing.T) {
	for _, q := range []float64{0, 1, 42.5, 100, 1234.5} {
		want := GramsFor(q, "g")
		got := GramsFor(q, "unrecognized_unit")
		if got != want {
			t.Errorf("GramsFor(%v, unrecognized) = %v, want %v", q, got, want)
		}
	}
}

func TestGramsFor(t *testing.T) {
	cases := []struct {
		quantity float64
		unit     string
		want     float64
	}{
		{150, "g", 150},
		{1, "kg", 1000},
		{2, "oz", 56.7},
		{1, "cup", 240},
		{3, "tbsp", 45},
	}
	for _, tc := range cases {
		got := GramsFor(tc.quantity, tc.unit)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("GramsFor(%v, %q) = %v, want %v", tc.quantity, tc.unit, got, tc.want)
		}
	}
}
