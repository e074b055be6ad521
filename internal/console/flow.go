package console

import (
	"fmt"

	"github.com/iwvelando/goal-planner/internal/plan"
	"github.com/iwvelando/goal-planner/pkg/output"
	"go.uber.org/zap"
)

var investmentChoices = []Choice{
	{Key: "1", Label: "One-time today"},
	{Key: "2", Label: "Regularly every month"},
	{Key: "3", Label: "Combination: part today, the rest monthly"},
}

// Run shows the start menu: the sample scenarios or the user's own values.
func (c *Console) Run() error {
	mode, err := c.AskChoice("\nSelect a mode:", []Choice{
		{Key: "1", Label: "Run the sample scenarios (check that the calculator is correct)"},
		{Key: "2", Label: "Enter your own values"},
	})
	if err != nil {
		return err
	}
	if mode == "1" {
		return RunExamples(c.out, c.currency)
	}
	return c.Interactive()
}

// Interactive asks which goal to plan and walks through its questions.
func (c *Console) Interactive() error {
	c.printf("\n=== GOAL PLANNER - INTERACTIVE MODE ===\n")
	goal, err := c.AskChoice("What do you want to calculate?", []Choice{
		{Key: "1", Label: "Lump-sum goal (target amount in the future)"},
		{Key: "2", Label: "Pension (monthly renta)"},
	})
	if err != nil {
		return err
	}
	if goal == "1" {
		return c.LumpSum()
	}
	return c.Renta()
}

// askInvestment asks how the capital should be built up and, for the
// combination, how much is invested today.
func (c *Console) askInvestment(prompt string) (plan.InvestmentType, float64, error) {
	choice, err := c.AskChoice(prompt, investmentChoices)
	if err != nil {
		return "", 0, err
	}

	switch choice {
	case "1":
		return plan.OneTime, 0, nil
	case "2":
		return plan.Monthly, 0, nil
	}

	oneTime, err := c.AskFloat(fmt.Sprintf("How much do you want to invest today (in %s)?", c.currencyLabel()))
	if err != nil {
		return "", 0, err
	}
	return plan.Combined, oneTime, nil
}

// LumpSum collects the inputs of a lump-sum goal and prints its plan.
func (c *Console) LumpSum() error {
	c.printf("\n=== Lump-sum goal (target amount in the future) ===\n")

	target, err := c.AskFloat(fmt.Sprintf("What target amount do you want to have (in %s)?", c.currencyLabel()))
	if err != nil {
		return err
	}
	years, err := c.AskFloat("In how many years?")
	if err != nil {
		return err
	}
	rate, err := c.AskPercent("What annual return do you expect (in %)?")
	if err != nil {
		return err
	}
	investmentType, oneTime, err := c.askInvestment("How do you want to invest?")
	if err != nil {
		return err
	}

	input := plan.LumpSumInput{
		TargetAmount:      target,
		Years:             years,
		AnnualRateAccum:   rate,
		InvestmentType:    investmentType,
		OneTimeInvestment: oneTime,
	}
	result, err := plan.ComputeLumpSum(input)
	if err != nil {
		return c.reportFailure(err)
	}
	return c.report(result, input.Advisories())
}

// Renta collects the inputs of a pension goal and prints its plan.
func (c *Console) Renta() error {
	c.printf("\n=== Pension (monthly renta) ===\n")

	rent, err := c.AskFloat(fmt.Sprintf("What monthly pension do you want to receive (in %s)?", c.currencyLabel()))
	if err != nil {
		return err
	}
	yearsRent, err := c.AskFloat("For how many years do you want to receive it?")
	if err != nil {
		return err
	}
	rateRent, err := c.AskPercent("What annual return do you expect while drawing the pension (in %)?")
	if err != nil {
		return err
	}
	yearsSaving, err := c.AskFloat("For how many years do you want to invest before that?")
	if err != nil {
		return err
	}
	rateAccum, err := c.AskPercent("What annual return do you expect while investing (in %)?")
	if err != nil {
		return err
	}
	investmentType, oneTime, err := c.askInvestment("How do you want to build up this capital?")
	if err != nil {
		return err
	}

	input := plan.RentaInput{
		MonthlyRent:       rent,
		YearsRent:         yearsRent,
		AnnualRateRent:    rateRent,
		YearsSaving:       yearsSaving,
		AnnualRateAccum:   rateAccum,
		InvestmentType:    investmentType,
		OneTimeInvestment: oneTime,
	}
	result, err := plan.ComputeRenta(input)
	if err != nil {
		return c.reportFailure(err)
	}
	return c.report(result, input.Advisories())
}

func (c *Console) report(result plan.Result, warnings []string) error {
	c.logger.Debug("plan computed",
		zap.String("op", "console.report"),
		zap.String("goalType", string(result.GoalType())),
		zap.String("investmentType", string(result.AccumulationPlan().InvestmentType())),
	)
	if err := output.Advisories(c.out, warnings); err != nil {
		return err
	}
	return output.PrettyFormat(c.out, result, c.currency)
}

// reportFailure prints a plan that cannot be computed and ends the flow
// without an error, since the inputs were accepted as typed.
func (c *Console) reportFailure(err error) error {
	c.logger.Warn("plan could not be computed",
		zap.String("op", "console.reportFailure"),
		zap.Error(err),
	)
	c.printf("\nThe plan cannot be computed: %v\n", err)
	return nil
}

func (c *Console) currencyLabel() string {
	if c.currency == "" {
		return "currency units"
	}
	return c.currency
}
