package cmd

import (
	"github.com/iwvelando/goal-planner/internal/console"
	"github.com/spf13/cobra"
)

func newExamplesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Print the worked examples next to the calculated figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, err := opts.setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()
			return console.RunExamples(cmd.OutOrStdout(), conf.Console.Currency)
		},
	}
}
