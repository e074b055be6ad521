// Package testutil provides common utility functions for testing.
package testutil

import (
	"math"
	"testing"
)

// RelativeClose reports whether a and b agree to within rel of the larger
// magnitude. Values near zero are compared absolutely against rel.
func RelativeClose(a, b, rel float64) bool {
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		scale = 1
	}
	return math.Abs(a-b) <= rel*scale
}

// AssertWithin fails the test when got differs from want by more than tolerance.
func AssertWithin(t testing.TB, label string, got, want, tolerance float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > tolerance {
		t.Errorf("%s = %.6f, expected %.6f (tolerance %g)", label, got, want, tolerance)
	}
}

// AssertRelative fails the test when got and want do not agree to relative precision rel.
func AssertRelative(t testing.TB, label string, got, want, rel float64) {
	t.Helper()
	if math.IsNaN(got) || !RelativeClose(got, want, rel) {
		t.Errorf("%s = %.10g, expected %.10g (relative %g)", label, got, want, rel)
	}
}
