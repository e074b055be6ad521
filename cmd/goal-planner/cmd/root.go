// Package cmd implements the goal-planner command tree.
package cmd

import (
	"fmt"

	"github.com/iwvelando/goal-planner/internal/config"
	"github.com/iwvelando/goal-planner/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	version    string
	configFile string
	envFile    string
	logLevel   string
}

// NewRootCmd builds the goal-planner command with all of its subcommands.
func NewRootCmd(version string) *cobra.Command {
	opts := &rootOptions{version: version}

	rootCmd := &cobra.Command{
		Use:   "goal-planner",
		Short: "Savings planner for lump-sum goals and pensions",
		Long: `goal-planner computes how much to invest, once or every month, to reach
a target amount in the future or to fund a fixed-term monthly pension.

Commands:
  serve        - HTTP API (POST /calc, GET /health)
  interactive  - question-and-answer console
  calc         - one-shot calculation from flags
  examples     - worked examples with their expected figures`,
		Version:      version,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configFile, "config", constants.DefaultConfigFile, "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", constants.DefaultEnvFile, "path to a .env file loaded before the configuration")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newInteractiveCmd(opts),
		newCalcCmd(opts),
		newExamplesCmd(opts),
	)
	return rootCmd
}

// setup loads the .env file and the configuration, then builds the logger.
func (o *rootOptions) setup() (*config.Configuration, *zap.Logger, error) {
	if err := config.LoadDotEnv(o.envFile); err != nil {
		return nil, nil, err
	}

	conf, err := config.LoadConfiguration(o.configFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration at %s: %w", o.configFile, err)
	}

	logger, err := initializeLogger(conf.Logging, o.logLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return conf, logger, nil
}
