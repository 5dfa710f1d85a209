package cli

import (
	"context"
	"os"

	"github.com/gabapcia/escrowwatch/internal/conditionwatch"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the escrowwatch CLI application.
//
// It registers all available commands, including:
//
//   - `serve`: Starts the HTTP API backed by the condition monitor.
//   - `watch`: Monitors a single escrow in-process until it settles.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - monitor: The conditionwatch service used by every command.
//   - server: The HTTP server started by the serve command.
func Run(ctx context.Context, monitor conditionwatch.Service, server Server) error {
	return newApp(monitor, server).Run(ctx, os.Args)
}

func newApp(monitor conditionwatch.Service, server Server) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "escrowwatch",
		Description:           "Command-line interface for monitoring escrow release conditions.",
		Usage:                 "escrowwatch [command] [flags]",
		Commands: []*cli.Command{
			serveCommand(monitor, server),
			watchCommand(monitor),
		},
	}
}
