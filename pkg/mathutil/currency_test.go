package mathutil

import (
	"math"
	"testing"
)

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Zero", 0.0, true},
		{"Large positive", 1e300, true},
		{"Negative", -12345.678, true},
		{"Positive infinity", math.Inf(1), false},
		{"Negative infinity", math.Inf(-1), false},
		{"NaN", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsFinite(tt.input); result != tt.expected {
				t.Errorf("IsFinite(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"Exact match", 100.0, 100.0, 0.01, true},
		{"Within tolerance", 1970.30, 1970.0, 1.0, true},
		{"Exactly at tolerance", 100.0, 101.0, 1.0, true},
		{"Outside tolerance", 100.0, 101.5, 1.0, false},
		{"Negative values", -50.0, -50.005, 0.01, true},
		{"Zero tolerance mismatch", 1.0, 1.0001, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithinTolerance(tt.val1, tt.val2, tt.tolerance)
			if result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v",
					tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}

func TestMax(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"First larger", 10.0, 5.0, 10.0},
		{"Second larger", -3.0, 0.0, 0.0},
		{"Equal", 7.5, 7.5, 7.5},
		{"Clamp negative remainder", -226063.1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Max(tt.a, tt.b); result != tt.expected {
				t.Errorf("Max(%v, %v) = %v, expected %v", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestPercentConversions(t *testing.T) {
	tests := []struct {
		percent  float64
		fraction float64
	}{
		{7, 0.07},
		{7.5, 0.075},
		{0, 0},
		{-2, -0.02},
		{100, 1},
	}

	for _, tt := range tests {
		if got := PercentToDecimal(tt.percent); math.Abs(got-tt.fraction) > 1e-12 {
			t.Errorf("PercentToDecimal(%v) = %v, expected %v", tt.percent, got, tt.fraction)
		}
		if got := DecimalToPercent(tt.fraction); math.Abs(got-tt.percent) > 1e-9 {
			t.Errorf("DecimalToPercent(%v) = %v, expected %v", tt.fraction, got, tt.percent)
		}
	}
}
