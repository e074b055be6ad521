package plan

import (
	"fmt"

	"github.com/iwvelando/goal-planner/pkg/finance"
)

// Advisories returns warnings about inputs that are computable but unusual.
// None of them prevents the plan from being computed.
func (in LumpSumInput) Advisories() []string {
	var warnings []string
	warnings = append(warnings, amountAdvisories("target_amount", in.TargetAmount)...)
	warnings = append(warnings, horizonAdvisories("years", in.Years)...)
	warnings = append(warnings, rateAdvisories("annual_rate_accum", in.AnnualRateAccum)...)
	warnings = append(warnings, oneTimeAdvisories(in.InvestmentType, in.OneTimeInvestment)...)
	return warnings
}

// Advisories returns warnings about inputs that are computable but unusual.
// None of them prevents the plan from being computed.
func (in RentaInput) Advisories() []string {
	var warnings []string
	warnings = append(warnings, amountAdvisories("monthly_rent", in.MonthlyRent)...)
	warnings = append(warnings, horizonAdvisories("years_rent", in.YearsRent)...)
	warnings = append(warnings, rateAdvisories("annual_rate_rent", in.AnnualRateRent)...)
	warnings = append(warnings, horizonAdvisories("years_saving", in.YearsSaving)...)
	warnings = append(warnings, rateAdvisories("annual_rate_accum", in.AnnualRateAccum)...)
	warnings = append(warnings, oneTimeAdvisories(in.InvestmentType, in.OneTimeInvestment)...)
	return warnings
}

func amountAdvisories(name string, amount float64) []string {
	if amount < 0 {
		return []string{fmt.Sprintf("%s is negative (%.2f)", name, amount)}
	}
	return nil
}

func horizonAdvisories(name string, years float64) []string {
	if years < 0 {
		return []string{fmt.Sprintf("%s is negative (%g)", name, years)}
	}
	if finance.Months(years) == 0 {
		return []string{fmt.Sprintf("%s of %g rounds to zero months", name, years)}
	}
	return nil
}

func rateAdvisories(name string, rate float64) []string {
	if rate <= -1 {
		return []string{fmt.Sprintf("%s of %g loses the whole capital within a year", name, rate)}
	}
	if rate < 0 {
		return []string{fmt.Sprintf("%s is negative (%g)", name, rate)}
	}
	if rate > 1 {
		return []string{fmt.Sprintf("%s of %g exceeds 100 %% a year; rates are decimal fractions (0.07 for 7 %%)", name, rate)}
	}
	return nil
}

func oneTimeAdvisories(investmentType InvestmentType, oneTime float64) []string {
	if oneTime < 0 {
		return []string{fmt.Sprintf("one_time_investment is negative (%.2f)", oneTime)}
	}
	if oneTime != 0 && investmentType != Combined {
		return []string{fmt.Sprintf("one_time_investment is ignored for investment_type %s", investmentType)}
	}
	return nil
}
