// Package finance provides the time-value-of-money primitives used by the
// planners: rate conversion, lump-sum compounding and discounting, and the
// annuity formulas in both directions.
//
// Every function is pure. Rates are decimal fractions (0.07 for 7 %), the
// monthly rate i is an effective rate and n is a whole number of months.
package finance

import (
	"math"

	"github.com/iwvelando/goal-planner/pkg/constants"
)

// Months converts a horizon in years into a whole number of months.
func Months(years float64) int {
	return int(math.Round(years * constants.MonthsPerYear))
}

// EffectiveMonthlyRate returns the monthly rate that compounds to the given
// annual rate over twelve months: (1+annual)^(1/12) - 1.
func EffectiveMonthlyRate(annualRate float64) float64 {
	return math.Pow(1.0+annualRate, 1.0/constants.MonthsPerYear) - 1.0
}

// GrowthFactor returns (1+i)^n, the growth of one unit over n months.
func GrowthFactor(i float64, n int) float64 {
	return math.Pow(1.0+i, float64(n))
}

// FutureValue compounds a single deposit pv for n months at rate i.
func FutureValue(pv, i float64, n int) float64 {
	return pv * GrowthFactor(i, n)
}

// PresentValue discounts fv back n months at rate i.
func PresentValue(fv, i float64, n int) float64 {
	return fv / GrowthFactor(i, n)
}

// FutureValueAnnuity returns the value after n months of depositing payment
// at the end of every month.
func FutureValueAnnuity(payment, i float64, n int) float64 {
	if i == 0 {
		return payment * float64(n)
	}
	return payment * (GrowthFactor(i, n) - 1.0) / i
}

// AnnuityPayment is the inverse of FutureValueAnnuity: the monthly deposit
// that grows to fv after n months.
func AnnuityPayment(fv, i float64, n int) float64 {
	if i == 0 {
		return fv / float64(n)
	}
	return fv * i / (GrowthFactor(i, n) - 1.0)
}

// DrawdownPresentValue returns the capital needed when withdrawals start to
// pay monthlyRent every month for years, while the remaining capital earns
// annualRate.
func DrawdownPresentValue(monthlyRent, annualRate, years float64) float64 {
	i := EffectiveMonthlyRate(annualRate)
	n := Months(years)
	if i == 0 {
		return monthlyRent * float64(n)
	}
	return monthlyRent * (1.0 - math.Pow(1.0+i, -float64(n))) / i
}
