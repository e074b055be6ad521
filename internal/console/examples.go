package console

import (
	"fmt"
	"io"

	"github.com/iwvelando/goal-planner/internal/plan"
	"github.com/iwvelando/goal-planner/pkg/constants"
	"github.com/iwvelando/goal-planner/pkg/format"
	"github.com/iwvelando/goal-planner/pkg/mathutil"
)

// Scenario is a worked example with a known answer.
type Scenario struct {
	Title    string
	Label    string  // name of the figure being checked
	Expected float64 // figure quoted for the example, in whole units
	Compute  func() (float64, error)
}

// Scenarios returns the worked examples the calculator is checked against.
func Scenarios() []Scenario {
	return []Scenario{
		{
			Title:    "1 000 000 in 20 years, 7 % p.a., monthly investment",
			Label:    "monthly investment",
			Expected: 1970,
			Compute: func() (float64, error) {
				res, err := plan.ComputeLumpSum(plan.LumpSumInput{
					TargetAmount:    1_000_000,
					Years:           20,
					AnnualRateAccum: 0.07,
					InvestmentType:  plan.Monthly,
				})
				if err != nil {
					return 0, err
				}
				return monthlyInvestment(res.Accumulation)
			},
		},
		{
			Title:    "5 000 000 in 18 years (216 months), 7 % p.a., monthly investment",
			Label:    "monthly investment",
			Expected: 11879,
			Compute: func() (float64, error) {
				res, err := plan.ComputeLumpSum(plan.LumpSumInput{
					TargetAmount:    5_000_000,
					Years:           18,
					AnnualRateAccum: 0.07,
					InvestmentType:  plan.Monthly,
				})
				if err != nil {
					return 0, err
				}
				return monthlyInvestment(res.Accumulation)
			},
		},
		{
			Title:    "Pension of 30 000 for 30 years, 5 % p.a. while drawing",
			Label:    "required capital",
			Expected: 5659788,
			Compute: func() (float64, error) {
				res, err := plan.ComputeRenta(plan.RentaInput{
					MonthlyRent:     30_000,
					YearsRent:       30,
					AnnualRateRent:  0.05,
					YearsSaving:     18,
					AnnualRateAccum: 0.07,
					InvestmentType:  plan.Monthly,
				})
				if err != nil {
					return 0, err
				}
				return res.RequiredWealthAtRentStart, nil
			},
		},
		{
			Title:    "Pension capital of about 3 372 000 built in 18 years, 8 % p.a., monthly investment",
			Label:    "monthly investment",
			Expected: 7241,
			Compute: func() (float64, error) {
				res, err := plan.ComputeRenta(plan.RentaInput{
					MonthlyRent:     17_874,
					YearsRent:       30,
					AnnualRateRent:  0.05,
					YearsSaving:     18,
					AnnualRateAccum: 0.08,
					InvestmentType:  plan.Monthly,
				})
				if err != nil {
					return 0, err
				}
				return monthlyInvestment(res.Accumulation)
			},
		},
	}
}

func monthlyInvestment(a plan.Accumulation) (float64, error) {
	m, ok := a.(plan.MonthlyAccumulation)
	if !ok {
		return 0, fmt.Errorf("expected a monthly plan, got %s", a.InvestmentType())
	}
	return m.MonthlyInvestment, nil
}

// RunExamples computes every scenario and prints the expected figure next to
// the computed one.
func RunExamples(w io.Writer, currency string) error {
	for i, s := range Scenarios() {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		got, err := s.Compute()
		if err != nil {
			return fmt.Errorf("example %d: %w", i+1, err)
		}

		status := "OK"
		if !mathutil.WithinTolerance(got, s.Expected, constants.ToleranceForComparison) {
			status = "MISMATCH"
		}
		_, err = fmt.Fprintf(w, "=== EXAMPLE %d: %s ===\nExpected %s: about %s\nCalculated: %s [%s]\n",
			i+1, s.Title, s.Label,
			format.AmountWithCurrency(s.Expected, currency),
			format.AmountWithCurrency(got, currency),
			status,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
