package plan

// Request is a calculation request as received over the wire. Numeric fields
// are pointers so that an absent field can be told apart from zero.
type Request struct {
	GoalType          string   `json:"goal_type"`
	InvestmentType    string   `json:"investment_type"`
	OneTimeInvestment *float64 `json:"one_time_investment,omitempty"`

	TargetAmount    *float64 `json:"target_amount,omitempty"`
	Years           *float64 `json:"years,omitempty"`
	AnnualRateAccum *float64 `json:"annual_rate_accum,omitempty"`

	MonthlyRent    *float64 `json:"monthly_rent,omitempty"`
	YearsRent      *float64 `json:"years_rent,omitempty"`
	AnnualRateRent *float64 `json:"annual_rate_rent,omitempty"`
	YearsSaving    *float64 `json:"years_saving,omitempty"`
}

type namedField struct {
	name  string
	value *float64
}

func (r Request) lumpSumFields() []namedField {
	return []namedField{
		{"target_amount", r.TargetAmount},
		{"years", r.Years},
		{"annual_rate_accum", r.AnnualRateAccum},
	}
}

func (r Request) rentaFields() []namedField {
	return []namedField{
		{"monthly_rent", r.MonthlyRent},
		{"years_rent", r.YearsRent},
		{"annual_rate_rent", r.AnnualRateRent},
		{"years_saving", r.YearsSaving},
		{"annual_rate_accum", r.AnnualRateAccum},
	}
}

func missingFields(fields []namedField) []string {
	var missing []string
	for _, f := range fields {
		if f.value == nil {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Validate checks that the goal and investment types are known and that every
// field the goal needs is present. Errors are *ValidationError.
func (r Request) Validate() (GoalType, InvestmentType, error) {
	goal, err := ParseGoalType(r.GoalType)
	if err != nil {
		return "", "", &ValidationError{Err: err}
	}

	investmentType, err := ParseInvestmentType(r.InvestmentType)
	if err != nil {
		return "", "", &ValidationError{Goal: goal, Err: err}
	}

	var missing []string
	switch goal {
	case GoalLumpSum:
		missing = missingFields(r.lumpSumFields())
	case GoalRenta:
		missing = missingFields(r.rentaFields())
	}
	if len(missing) > 0 {
		return "", "", &ValidationError{Goal: goal, Missing: missing}
	}
	return goal, investmentType, nil
}

// LumpSumInput builds the lump-sum input from a validated request.
func (r Request) LumpSumInput(investmentType InvestmentType) LumpSumInput {
	return LumpSumInput{
		TargetAmount:      valueOrZero(r.TargetAmount),
		Years:             valueOrZero(r.Years),
		AnnualRateAccum:   valueOrZero(r.AnnualRateAccum),
		InvestmentType:    investmentType,
		OneTimeInvestment: valueOrZero(r.OneTimeInvestment),
	}
}

// RentaInput builds the renta input from a validated request.
func (r Request) RentaInput(investmentType InvestmentType) RentaInput {
	return RentaInput{
		MonthlyRent:       valueOrZero(r.MonthlyRent),
		YearsRent:         valueOrZero(r.YearsRent),
		AnnualRateRent:    valueOrZero(r.AnnualRateRent),
		YearsSaving:       valueOrZero(r.YearsSaving),
		AnnualRateAccum:   valueOrZero(r.AnnualRateAccum),
		InvestmentType:    investmentType,
		OneTimeInvestment: valueOrZero(r.OneTimeInvestment),
	}
}

// Calculate validates the request and runs the planner for its goal type.
// It also returns the advisories raised by the inputs.
func Calculate(r Request) (Result, []string, error) {
	goal, investmentType, err := r.Validate()
	if err != nil {
		return nil, nil, err
	}

	switch goal {
	case GoalLumpSum:
		input := r.LumpSumInput(investmentType)
		result, err := ComputeLumpSum(input)
		if err != nil {
			return nil, nil, err
		}
		return result, input.Advisories(), nil
	case GoalRenta:
		input := r.RentaInput(investmentType)
		result, err := ComputeRenta(input)
		if err != nil {
			return nil, nil, err
		}
		return result, input.Advisories(), nil
	}
	return nil, nil, &ValidationError{Err: ErrUnknownGoalType}
}
