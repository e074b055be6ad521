package plan

import (
	"fmt"

	"github.com/iwvelando/goal-planner/pkg/finance"
	"github.com/iwvelando/goal-planner/pkg/mathutil"
)

// ComputeLumpSum works out how to reach input.TargetAmount in input.Years
// years at input.AnnualRateAccum per year.
func ComputeLumpSum(input LumpSumInput) (LumpSumResult, error) {
	i := finance.EffectiveMonthlyRate(input.AnnualRateAccum)
	n := finance.Months(input.Years)

	accumulation, err := accumulate(GoalLumpSum, input.InvestmentType, input.TargetAmount, input.OneTimeInvestment, i, n)
	if err != nil {
		return LumpSumResult{}, err
	}

	result := LumpSumResult{
		TargetAmount:    input.TargetAmount,
		Years:           input.Years,
		AnnualRateAccum: input.AnnualRateAccum,
		Accumulation:    accumulation,
	}
	if err := checkFinite(result); err != nil {
		return LumpSumResult{}, err
	}
	return result, nil
}

// ComputeRenta works out the capital needed when the pension starts and then
// how to accumulate that capital over input.YearsSaving years.
func ComputeRenta(input RentaInput) (RentaResult, error) {
	requiredAtStart := finance.DrawdownPresentValue(input.MonthlyRent, input.AnnualRateRent, input.YearsRent)

	i := finance.EffectiveMonthlyRate(input.AnnualRateAccum)
	m := finance.Months(input.YearsSaving)

	accumulation, err := accumulate(GoalRenta, input.InvestmentType, requiredAtStart, input.OneTimeInvestment, i, m)
	if err != nil {
		return RentaResult{}, err
	}

	result := RentaResult{
		MonthlyRent:               input.MonthlyRent,
		YearsRent:                 input.YearsRent,
		AnnualRateRent:            input.AnnualRateRent,
		YearsSaving:               input.YearsSaving,
		AnnualRateAccum:           input.AnnualRateAccum,
		RequiredWealthAtRentStart: requiredAtStart,
		Accumulation:              accumulation,
	}
	if err := checkFinite(result); err != nil {
		return RentaResult{}, err
	}
	return result, nil
}

// accumulate plans how target is reached after n months at monthly rate i.
// A horizon whose growth factor overflows is a ComputationError.
func accumulate(goal GoalType, investmentType InvestmentType, target, oneTime, i float64, n int) (Accumulation, error) {
	if growth := finance.GrowthFactor(i, n); !mathutil.IsFinite(growth) {
		return nil, &ComputationError{Goal: goal, Field: "growth_factor", Value: growth}
	}

	switch investmentType {
	case OneTime:
		return OneTimeAccumulation{
			RequiredWealthToday: finance.PresentValue(target, i, n),
		}, nil

	case Monthly:
		return MonthlyAccumulation{
			MonthlyInvestment: finance.AnnuityPayment(target, i, n),
		}, nil

	case Combined:
		fvOneTime := finance.FutureValue(oneTime, i, n)
		// A deposit that already outgrows the target needs no monthly top-up.
		remaining := mathutil.Max(0, target-fvOneTime)
		return CombinedAccumulation{
			OneTimeInvestment:               oneTime,
			MonthlyInvestment:               finance.AnnuityPayment(remaining, i, n),
			FVOneTimeInvestment:             fvOneTime,
			TargetAmountRemainingForMonthly: remaining,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownInvestmentType, string(investmentType))
}

func checkFinite(result Result) error {
	for _, field := range result.Fields() {
		value, ok := field.Value.(float64)
		if !ok {
			continue
		}
		if !mathutil.IsFinite(value) {
			return &ComputationError{Goal: result.GoalType(), Field: field.Key, Value: value}
		}
	}
	return nil
}
