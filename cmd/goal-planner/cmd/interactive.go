package cmd

import (
	"errors"
	"fmt"

	"github.com/iwvelando/goal-planner/internal/console"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newInteractiveCmd(opts *rootOptions) *cobra.Command {
	var currency string

	interactiveCmd := &cobra.Command{
		Use:   "interactive",
		Short: "Answer questions in the console and get a savings plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, err := opts.setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			if !cmd.Flags().Changed("currency") {
				currency = conf.Console.Currency
			}

			c := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), currency, logger)
			err = c.Run()
			if errors.Is(err, console.ErrInputClosed) {
				logger.Debug("input closed",
					zap.String("op", "cmd.interactive"),
				)
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
				return nil
			}
			return err
		},
	}

	interactiveCmd.Flags().StringVar(&currency, "currency", "", "currency label printed after amounts")
	return interactiveCmd
}
