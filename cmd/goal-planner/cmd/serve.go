package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/goal-planner/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var address string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, err := opts.setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			if address != "" {
				conf.Server.Address = address
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler := server.NewHandler(logger, conf.Server, opts.version)
			if err := server.ListenAndServe(ctx, logger, conf.Server, handler); err != nil {
				logger.Error("http server failed",
					zap.String("op", "cmd.serve"),
					zap.Error(err),
				)
				return err
			}
			return nil
		},
	}

	serveCmd.Flags().StringVar(&address, "address", "", "listen address override, e.g. :8080")
	return serveCmd
}
