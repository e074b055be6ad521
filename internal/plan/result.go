package plan

import (
	"bytes"
	"encoding/json"
)

// Field is one named value of a result, in presentation order.
type Field struct {
	Key   string
	Value interface{}
}

// Accumulation is how the capital is built up. It is one of
// OneTimeAccumulation, MonthlyAccumulation or CombinedAccumulation.
type Accumulation interface {
	InvestmentType() InvestmentType
	fields() []Field
}

// OneTimeAccumulation funds the whole target with a deposit today.
type OneTimeAccumulation struct {
	RequiredWealthToday float64
}

// InvestmentType implements Accumulation.
func (OneTimeAccumulation) InvestmentType() InvestmentType { return OneTime }

func (a OneTimeAccumulation) fields() []Field {
	return []Field{{Key: "required_wealth_today", Value: a.RequiredWealthToday}}
}

// MonthlyAccumulation funds the whole target with monthly deposits.
type MonthlyAccumulation struct {
	MonthlyInvestment float64
}

// InvestmentType implements Accumulation.
func (MonthlyAccumulation) InvestmentType() InvestmentType { return Monthly }

func (a MonthlyAccumulation) fields() []Field {
	return []Field{{Key: "monthly_investment", Value: a.MonthlyInvestment}}
}

// CombinedAccumulation funds the target with a deposit today and covers what
// its future value leaves uncovered with monthly deposits.
type CombinedAccumulation struct {
	OneTimeInvestment               float64
	MonthlyInvestment               float64
	FVOneTimeInvestment             float64
	TargetAmountRemainingForMonthly float64
}

// InvestmentType implements Accumulation.
func (CombinedAccumulation) InvestmentType() InvestmentType { return Combined }

func (a CombinedAccumulation) fields() []Field {
	return []Field{
		{Key: "one_time_investment", Value: a.OneTimeInvestment},
		{Key: "monthly_investment", Value: a.MonthlyInvestment},
		{Key: "fv_one_time_investment", Value: a.FVOneTimeInvestment},
		{Key: "target_amount_remaining_for_monthly", Value: a.TargetAmountRemainingForMonthly},
	}
}

// Result is a computed plan for either goal type.
type Result interface {
	GoalType() GoalType
	AccumulationPlan() Accumulation
	// Fields lists every value of the plan in presentation order, using the
	// wire names of the HTTP API.
	Fields() []Field
}

// LumpSumResult is the plan for a lump-sum goal.
type LumpSumResult struct {
	TargetAmount    float64
	Years           float64
	AnnualRateAccum float64
	Accumulation    Accumulation
}

// GoalType implements Result.
func (LumpSumResult) GoalType() GoalType { return GoalLumpSum }

// AccumulationPlan implements Result.
func (r LumpSumResult) AccumulationPlan() Accumulation { return r.Accumulation }

// Fields implements Result.
func (r LumpSumResult) Fields() []Field {
	fields := []Field{
		{Key: "goal_type", Value: string(GoalLumpSum)},
		{Key: "target_amount", Value: r.TargetAmount},
		{Key: "years", Value: r.Years},
		{Key: "annual_rate_accum", Value: r.AnnualRateAccum},
		{Key: "investment_type", Value: string(r.Accumulation.InvestmentType())},
	}
	return append(fields, r.Accumulation.fields()...)
}

// MarshalJSON emits the fields as a JSON object in presentation order.
func (r LumpSumResult) MarshalJSON() ([]byte, error) {
	return marshalFields(r.Fields())
}

// RentaResult is the plan for a pension drawdown goal.
type RentaResult struct {
	MonthlyRent               float64
	YearsRent                 float64
	AnnualRateRent            float64
	YearsSaving               float64
	AnnualRateAccum           float64
	RequiredWealthAtRentStart float64
	Accumulation              Accumulation
}

// GoalType implements Result.
func (RentaResult) GoalType() GoalType { return GoalRenta }

// AccumulationPlan implements Result.
func (r RentaResult) AccumulationPlan() Accumulation { return r.Accumulation }

// Fields implements Result.
func (r RentaResult) Fields() []Field {
	fields := []Field{
		{Key: "goal_type", Value: string(GoalRenta)},
		{Key: "monthly_rent", Value: r.MonthlyRent},
		{Key: "years_rent", Value: r.YearsRent},
		{Key: "annual_rate_rent", Value: r.AnnualRateRent},
		{Key: "years_saving", Value: r.YearsSaving},
		{Key: "annual_rate_accum", Value: r.AnnualRateAccum},
		{Key: "investment_type", Value: string(r.Accumulation.InvestmentType())},
		{Key: "required_wealth_at_rent_start", Value: r.RequiredWealthAtRentStart},
	}
	return append(fields, r.Accumulation.fields()...)
}

// MarshalJSON emits the fields as a JSON object in presentation order.
func (r RentaResult) MarshalJSON() ([]byte, error) {
	return marshalFields(r.Fields())
}

func marshalFields(fields []Field) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for idx, field := range fields {
		if idx > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
