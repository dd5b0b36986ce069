package ingest

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler returns a context cancelled on SIGTERM or SIGINT.
// shutdown, if non-nil, runs before the cancel. A second signal exits the
// process.
func SetupSignalHandler(logger *slog.Logger, shutdown func(context.Context)) context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigCh
		logger.Info("signal received, shutting down", "signal", sig.String())

		if shutdown != nil {
			shutdown(ctx)
		}
		cancel()

		sig = <-sigCh
		logger.Warn("second signal received, forcing exit", "signal", sig.String())
		os.Exit(1)
	}()

	return ctx
}
