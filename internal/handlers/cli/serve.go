package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/escrowwatch/internal/conditionwatch"
	"github.com/gabapcia/escrowwatch/internal/pkg/logger"
	"github.com/gabapcia/escrowwatch/internal/pkg/x/chflow"

	"github.com/urfave/cli/v3"
)

// shutdownTimeout bounds how long in-flight HTTP requests may take to drain.
const shutdownTimeout = 15 * time.Second

// Server is the subset of *http.Server used by the serve command.
type Server interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// serveCommand returns a CLI command that exposes the condition monitor over HTTP.
//
// Usage example:
//
//	escrowwatch serve
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM), then
// drains the HTTP server and cancels every live watch.
func serveCommand(monitor conditionwatch.Service, server Server) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Starts the HTTP API used to start, stop, and inspect escrow monitoring.",
		Usage:       "Runs the monitoring API. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			defer monitor.Close()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(quit)

			serveErr := make(chan error, 1)
			go func() { serveErr <- server.ListenAndServe() }()

			logger.Info(ctx, "monitoring api started")

			select {
			case err := <-serveErr:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-quit:
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}

			if err, ok := chflow.Receive(shutdownCtx, serveErr); ok && !errors.Is(err, http.ErrServerClosed) {
				return err
			}

			logger.Info(ctx, "monitoring api stopped")
			return nil
		},
	}
}
