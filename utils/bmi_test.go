package utils

import (
	"math"
	"testing"
)

func TestCalculateBMI(t *testing.T) {
	cases := []struct {
		name     string
		heightCm float64
		weightKg float64
		want     float64
		wantErr  bool
	}{
		{"normal", 175, 70, 22.857, false},
		{"zero height", 0, 70, 0, true},
		{"zero weight", 175, 0, 0, true},
		{"implausible height", 40, 70, 0, true},
		{"implausible weight", 175, 500, 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CalculateBMI(tc.heightCm, tc.weightKg)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("CalculateBMI: %v", err)
			}
			if math.Abs(got-tc.want) > 0.001 {
				t.Errorf("CalculateBMI = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBMICategory(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{17, "Underweight"},
		{22, "Normal weight"},
		{27, "Overweight"},
		{32, "Obesity class I"},
		{37, "Obesity class II"},
		{45, "Obesity class III"},
	}
	for _, tc := range cases {
		if got := BMICategory(tc.bmi); got != tc.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}
