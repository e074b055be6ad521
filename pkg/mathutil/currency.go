// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/goal-planner/pkg/constants"
)

// IsFinite reports whether val is neither NaN nor an infinity.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Max returns the maximum of two float64 values
func Max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// PercentToDecimal converts a rate entered in percent (7.5) into a decimal fraction (0.075).
func PercentToDecimal(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}

// DecimalToPercent converts a decimal fraction (0.075) into percent (7.5).
func DecimalToPercent(fraction float64) float64 {
	return fraction * constants.PercentageMultiplier
}
