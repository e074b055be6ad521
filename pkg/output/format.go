// Package output provides utilities for formatting and displaying plan results.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iwvelando/goal-planner/internal/plan"
	"github.com/iwvelando/goal-planner/pkg/constants"
	"github.com/iwvelando/goal-planner/pkg/format"
	"github.com/iwvelando/goal-planner/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Write renders result in the requested output format.
func Write(w io.Writer, outputFormat string, result plan.Result, currency string) error {
	switch outputFormat {
	case constants.OutputFormatPretty:
		return PrettyFormat(w, result, currency)
	case constants.OutputFormatJSON:
		return JSONFormat(w, result)
	case constants.OutputFormatYAML:
		return YAMLFormat(w, result)
	}
	return fmt.Errorf("unsupported output format: %s", outputFormat)
}

// PrettyFormat outputs a human-readable summary with amounts in whole
// currency units.
func PrettyFormat(w io.Writer, result plan.Result, currency string) error {
	// Amounts are grouped by pkg/format; the printer groups the remaining
	// figures (years, rates) the English way.
	p := message.NewPrinter(language.English)
	amount := func(v float64) string { return format.AmountWithCurrency(v, currency) }

	var err error
	line := func(key message.Reference, args ...interface{}) {
		if err == nil {
			_, err = p.Fprintf(w, key, args...)
		}
	}

	line("\n--- Result ---\n")
	switch r := result.(type) {
	case plan.LumpSumResult:
		line("Target amount: %s in %.1f years.\n", amount(r.TargetAmount), r.Years)
		line("Expected annual return while saving: %.2f %%.\n", mathutil.DecimalToPercent(r.AnnualRateAccum))
	case plan.RentaResult:
		line("Desired monthly pension: %s for %.1f years.\n", amount(r.MonthlyRent), r.YearsRent)
		line("Return while drawing the pension: %.2f %% p.a.\n", mathutil.DecimalToPercent(r.AnnualRateRent))
		line("Return while saving (%.1f years): %.2f %% p.a.\n", r.YearsSaving, mathutil.DecimalToPercent(r.AnnualRateAccum))
		line("Required capital at pension start: %s\n", amount(r.RequiredWealthAtRentStart))
	default:
		return fmt.Errorf("unsupported result type %T", result)
	}

	switch a := result.AccumulationPlan().(type) {
	case plan.OneTimeAccumulation:
		line("Required one-time investment today: %s\n", amount(a.RequiredWealthToday))
	case plan.MonthlyAccumulation:
		line("Required monthly investment: %s\n", amount(a.MonthlyInvestment))
	case plan.CombinedAccumulation:
		line("One-time investment today: %s\n", amount(a.OneTimeInvestment))
		line("Estimated future value of the one-time investment: %s\n", amount(a.FVOneTimeInvestment))
		line("Remaining target for monthly investments: %s\n", amount(a.TargetAmountRemainingForMonthly))
		line("Required monthly investment: %s\n", amount(a.MonthlyInvestment))
	}
	return err
}

// Advisories prints input warnings ahead of a result.
func Advisories(w io.Writer, warnings []string) error {
	for _, warning := range warnings {
		if _, err := fmt.Fprintf(w, "Warning: %s\n", warning); err != nil {
			return err
		}
	}
	return nil
}

// JSONFormat outputs the result record as indented JSON.
func JSONFormat(w io.Writer, result plan.Result) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// YAMLFormat outputs the result record as YAML, keeping the field order.
func YAMLFormat(w io.Writer, result plan.Result) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(orderedFields(result.Fields())); err != nil {
		return err
	}
	return encoder.Close()
}

type orderedFields []plan.Field

func (o orderedFields) MarshalYAML() (interface{}, error) {
	mapNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}

	for _, field := range o {
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: field.Key,
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(field.Value); err != nil {
			return nil, err
		}
		mapNode.Content = append(mapNode.Content, keyNode, valueNode)
	}

	return mapNode, nil
}
