package finance

import (
	"math"
	"testing"

	"github.com/iwvelando/goal-planner/pkg/testutil"
)

func TestMonths(t *testing.T) {
	tests := []struct {
		name     string
		years    float64
		expected int
	}{
		{"Whole years", 20, 240},
		{"Eighteen years", 18, 216},
		{"Half year", 0.5, 6},
		{"Rounds down", 1.0 / 12 * 2.4, 2},
		{"Rounds up", 1.0 / 12 * 2.6, 3},
		{"Zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Months(tt.years); got != tt.expected {
				t.Errorf("Months(%v) = %d, expected %d", tt.years, got, tt.expected)
			}
		})
	}
}

func TestEffectiveMonthlyRateCompoundsToAnnual(t *testing.T) {
	for _, annual := range []float64{-0.5, -0.01, 0, 0.01, 0.05, 0.07, 0.08, 0.25, 1.5} {
		i := EffectiveMonthlyRate(annual)
		compounded := math.Pow(1+i, 12)
		testutil.AssertRelative(t, "compounded monthly rate", compounded, 1+annual, 1e-12)
	}
}

func TestEffectiveMonthlyRateZero(t *testing.T) {
	if got := EffectiveMonthlyRate(0); got != 0 {
		t.Fatalf("EffectiveMonthlyRate(0) = %v, expected exactly 0", got)
	}
}

func TestPresentValueInvertsFutureValue(t *testing.T) {
	tests := []struct {
		name string
		pv   float64
		i    float64
		n    int
	}{
		{"Typical savings", 200000, EffectiveMonthlyRate(0.07), 240},
		{"Zero rate", 50000, 0, 120},
		{"Zero months", 1234.56, EffectiveMonthlyRate(0.05), 0},
		{"Negative rate", 10000, EffectiveMonthlyRate(-0.02), 36},
		{"Negative amount", -750, EffectiveMonthlyRate(0.03), 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv := FutureValue(tt.pv, tt.i, tt.n)
			testutil.AssertRelative(t, "PresentValue(FutureValue(pv))", PresentValue(fv, tt.i, tt.n), tt.pv, 1e-12)
		})
	}
}

func TestFutureValue(t *testing.T) {
	i := EffectiveMonthlyRate(0.07)
	testutil.AssertWithin(t, "FutureValue", FutureValue(200000, i, 240), 773936.8924972352, 1e-6)
	testutil.AssertWithin(t, "FutureValue one year", FutureValue(1000, i, 12), 1070, 1e-9)
}

func TestAnnuityPaymentInvertsFutureValueAnnuity(t *testing.T) {
	tests := []struct {
		name    string
		payment float64
		i       float64
		n       int
	}{
		{"Seven percent twenty years", 1970.30, EffectiveMonthlyRate(0.07), 240},
		{"Eight percent eighteen years", 7241.68, EffectiveMonthlyRate(0.08), 216},
		{"Single month", 500, EffectiveMonthlyRate(0.05), 1},
		{"Negative rate", 300, EffectiveMonthlyRate(-0.03), 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fv := FutureValueAnnuity(tt.payment, tt.i, tt.n)
			testutil.AssertRelative(t, "AnnuityPayment(FutureValueAnnuity(p))", AnnuityPayment(fv, tt.i, tt.n), tt.payment, 1e-10)
		})
	}
}

func TestAnnuityZeroRateIsLinear(t *testing.T) {
	if got := FutureValueAnnuity(1000, 0, 120); got != 120000 {
		t.Errorf("FutureValueAnnuity at zero rate = %v, expected 120000", got)
	}
	if got := AnnuityPayment(120000, 0, 120); got != 1000 {
		t.Errorf("AnnuityPayment at zero rate = %v, expected 1000", got)
	}
}

func TestAnnuityPaymentZeroMonthsIsNotFinite(t *testing.T) {
	got := AnnuityPayment(1000, EffectiveMonthlyRate(0.05), 0)
	if !math.IsInf(got, 0) && !math.IsNaN(got) {
		t.Errorf("AnnuityPayment over zero months = %v, expected a non-finite value", got)
	}
}

func TestDrawdownPresentValue(t *testing.T) {
	tests := []struct {
		name     string
		rent     float64
		rate     float64
		years    float64
		expected float64
	}{
		{"Thirty years at five percent", 30000, 0.05, 30, 5659787.9114206685},
		{"Scenario with eight percent accumulation", 17874, 0.05, 30, 3372101.6376244337},
		{"One year", 1000, 0.05, 1, 11688.169075806934},
		{"Zero rate", 10000, 0, 10, 1200000},
		{"Zero years", 10000, 0.05, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DrawdownPresentValue(tt.rent, tt.rate, tt.years)
			testutil.AssertWithin(t, "DrawdownPresentValue", got, tt.expected, 1e-6)
		})
	}
}

func TestDrawdownPresentValueMonotonic(t *testing.T) {
	base := DrawdownPresentValue(20000, 0.04, 25)

	if DrawdownPresentValue(20001, 0.04, 25) <= base {
		t.Error("expected required capital to increase with the monthly rent")
	}
	if DrawdownPresentValue(20000, 0.04, 26) <= base {
		t.Error("expected required capital to increase with the drawdown horizon")
	}
	if DrawdownPresentValue(20000, 0.05, 25) >= base {
		t.Error("expected required capital to decrease as the rate rises")
	}

	previous := DrawdownPresentValue(20000, -0.02, 25)
	for _, rate := range []float64{-0.01, 0, 0.01, 0.03, 0.06, 0.1} {
		current := DrawdownPresentValue(20000, rate, 25)
		if current >= previous {
			t.Errorf("DrawdownPresentValue at rate %v = %.2f, expected less than %.2f", rate, current, previous)
		}
		previous = current
	}
}

func TestGrowthFactor(t *testing.T) {
	i := EffectiveMonthlyRate(0.07)
	testutil.AssertWithin(t, "GrowthFactor over a year", GrowthFactor(i, 12), 1.07, 1e-12)

	if got := GrowthFactor(0, 240); got != 1 {
		t.Errorf("GrowthFactor at zero rate = %v, expected 1", got)
	}
	if got := GrowthFactor(i, Months(1e5)); !math.IsInf(got, 1) {
		t.Errorf("GrowthFactor over 100 000 years = %v, expected +Inf", got)
	}
}
