package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/iwvelando/goal-planner/internal/config"
	"github.com/iwvelando/goal-planner/pkg/constants"
	"go.uber.org/zap"
)

// ListenAndServe serves handler on cfg.Address until ctx is cancelled, then
// shuts down gracefully within cfg.ShutdownTimeout.
func ListenAndServe(ctx context.Context, logger *zap.Logger, cfg config.ServerConfig, handler http.Handler) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening",
			zap.String("op", "server.ListenAndServe"),
			zap.String("address", cfg.Address),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok && err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down http server",
			zap.String("op", "server.ListenAndServe"),
		)
	}

	timeout := cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = time.Duration(constants.DefaultShutdownTimeoutSeconds) * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
