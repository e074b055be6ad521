// Package plan computes savings plans for two kinds of goals: a lump sum
// needed at a future date, and a fixed-term monthly pension ("renta") funded
// by capital accumulated beforehand.
package plan

import (
	"fmt"
	"strings"
)

// GoalType selects which planner handles a request.
type GoalType string

const (
	// GoalLumpSum is a single target amount reached by a fixed future date.
	GoalLumpSum GoalType = "lump_sum"
	// GoalRenta is a fixed monthly payout drawn over a defined horizon.
	GoalRenta GoalType = "renta"
)

// ParseGoalType maps the wire name of a goal onto a GoalType.
func ParseGoalType(value string) (GoalType, error) {
	switch GoalType(strings.TrimSpace(value)) {
	case GoalLumpSum:
		return GoalLumpSum, nil
	case GoalRenta:
		return GoalRenta, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGoalType, value)
}

// InvestmentType determines how the required capital is funded.
type InvestmentType string

const (
	// OneTime funds the goal with a single deposit today.
	OneTime InvestmentType = "one_time"
	// Monthly funds the goal with equal deposits every month.
	Monthly InvestmentType = "monthly"
	// Combined funds part of the goal with a deposit today and the rest monthly.
	Combined InvestmentType = "combined"
)

// ParseInvestmentType maps the wire name of an investment style onto an InvestmentType.
func ParseInvestmentType(value string) (InvestmentType, error) {
	switch InvestmentType(strings.TrimSpace(value)) {
	case OneTime:
		return OneTime, nil
	case Monthly:
		return Monthly, nil
	case Combined:
		return Combined, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownInvestmentType, value)
}

// LumpSumInput holds the inputs for a lump-sum goal, e.g. 1 000 000 in 20 years.
type LumpSumInput struct {
	TargetAmount      float64
	Years             float64
	AnnualRateAccum   float64
	InvestmentType    InvestmentType
	OneTimeInvestment float64 // only used by Combined
}

// RentaInput holds the inputs for a pension drawdown goal.
type RentaInput struct {
	MonthlyRent       float64
	YearsRent         float64
	AnnualRateRent    float64
	YearsSaving       float64
	AnnualRateAccum   float64
	InvestmentType    InvestmentType
	OneTimeInvestment float64 // only used by Combined
}
