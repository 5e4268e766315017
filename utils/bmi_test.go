package utils

import "testing"

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 75)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bmi != 23.1 {
		t.Fatalf("bmi = %v, want 23.1", bmi)
	}
	if got := BMICategory(bmi); got != "Normal weight" {
		t.Fatalf("category = %q, want Normal weight", got)
	}
}

func TestCalculateBMIRejectsImplausibleInput(t *testing.T) {
	cases := []struct {
		height, weight float64
	}{
		{0, 75},
		{180, 0},
		{-180, 75},
		{300, 75},
		{180, 900},
	}
	for _, tc := range cases {
		if _, err := CalculateBMI(tc.height, tc.weight); err == nil {
			t.Errorf("CalculateBMI(%v, %v) accepted implausible input", tc.height, tc.weight)
		}
	}
}
