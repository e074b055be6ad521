package cmd

import (
	"github.com/iwvelando/goal-planner/internal/plan"
	"github.com/iwvelando/goal-planner/pkg/constants"
	"github.com/iwvelando/goal-planner/pkg/output"
	"github.com/iwvelando/goal-planner/pkg/validation"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

type calcOptions struct {
	goal         string
	investment   string
	outputFormat string
	currency     string
	values       map[string]*float64
}

// calcValueFlags maps each numeric flag to its request field.
var calcValueFlags = []struct {
	name  string
	usage string
	field func(*plan.Request) **float64
}{
	{"target-amount", "target amount of a lump-sum goal", func(r *plan.Request) **float64 { return &r.TargetAmount }},
	{"years", "years until the lump-sum goal", func(r *plan.Request) **float64 { return &r.Years }},
	{"annual-rate-accum", "annual return while saving, as a fraction (0.07)", func(r *plan.Request) **float64 { return &r.AnnualRateAccum }},
	{"monthly-rent", "desired monthly pension", func(r *plan.Request) **float64 { return &r.MonthlyRent }},
	{"years-rent", "years the pension is paid", func(r *plan.Request) **float64 { return &r.YearsRent }},
	{"annual-rate-rent", "annual return while drawing the pension, as a fraction", func(r *plan.Request) **float64 { return &r.AnnualRateRent }},
	{"years-saving", "years of saving before the pension starts", func(r *plan.Request) **float64 { return &r.YearsSaving }},
	{"one-time-investment", "amount invested today (combined plans)", func(r *plan.Request) **float64 { return &r.OneTimeInvestment }},
}

func newCalcCmd(opts *rootOptions) *cobra.Command {
	calc := &calcOptions{values: make(map[string]*float64)}

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute a single plan from flags",
		Example: `  goal-planner calc --goal lump_sum --investment monthly \
    --target-amount 1000000 --years 20 --annual-rate-accum 0.07`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.ValidateOutputFormat(calc.outputFormat); err != nil {
				return err
			}

			conf, logger, err := opts.setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			if !cmd.Flags().Changed("currency") {
				calc.currency = conf.Console.Currency
			}

			result, warnings, err := plan.Calculate(calc.request(cmd.Flags()))
			if err != nil {
				return err
			}
			for _, warning := range warnings {
				logger.Warn("input warning: "+warning,
					zap.String("op", "cmd.calc"),
				)
			}
			if calc.outputFormat == constants.OutputFormatPretty {
				if err := output.Advisories(cmd.ErrOrStderr(), warnings); err != nil {
					return err
				}
			}
			return output.Write(cmd.OutOrStdout(), calc.outputFormat, result, calc.currency)
		},
	}

	flags := calcCmd.Flags()
	flags.StringVar(&calc.goal, "goal", "", "goal type: lump_sum or renta")
	flags.StringVar(&calc.investment, "investment", "", "investment type: one_time, monthly or combined")
	flags.StringVarP(&calc.outputFormat, "output", "o", constants.OutputFormatPretty, "output format: pretty, json, yaml")
	flags.StringVar(&calc.currency, "currency", "", "currency label printed after amounts (pretty output)")
	for _, f := range calcValueFlags {
		calc.values[f.name] = flags.Float64(f.name, 0, f.usage)
	}
	_ = calcCmd.MarkFlagRequired("goal")
	_ = calcCmd.MarkFlagRequired("investment")

	return calcCmd
}

// request builds a plan request from the flags that were set, so that an
// unset flag is reported as a missing field.
func (c *calcOptions) request(flags *pflag.FlagSet) plan.Request {
	req := plan.Request{
		GoalType:       c.goal,
		InvestmentType: c.investment,
	}
	for _, f := range calcValueFlags {
		if flags.Changed(f.name) {
			*f.field(&req) = c.values[f.name]
		}
	}
	return req
}
