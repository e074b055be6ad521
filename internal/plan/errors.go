package plan

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownGoalType is returned for a goal type other than lump_sum or renta.
	ErrUnknownGoalType = errors.New("unknown goal_type")

	// ErrUnknownInvestmentType is returned for an investment type other than
	// one_time, monthly or combined.
	ErrUnknownInvestmentType = errors.New("unknown investment_type")
)

// ValidationError reports a request that cannot be computed as given.
type ValidationError struct {
	Goal    GoalType
	Missing []string
	Err     error
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("Missing fields for %s: %s", e.Goal, strings.Join(e.Missing, ", "))
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "invalid request"
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ComputationError reports a plan whose arithmetic did not produce a finite number.
type ComputationError struct {
	Goal  GoalType
	Field string
	Value float64
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s plan: %s is not a finite number (%v)", e.Goal, e.Field, e.Value)
}
