package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gabapcia/escrowwatch/internal/conditionwatch"
	"github.com/gabapcia/escrowwatch/internal/verification"

	"github.com/urfave/cli/v3"
)

var (
	// ErrInvalidCondition is returned when a --condition flag cannot be parsed.
	ErrInvalidCondition = errors.New("invalid condition")

	// ErrWatchFailed is returned by the watch command when the escrow ends in the failed state.
	ErrWatchFailed = errors.New("watch failed")
)

// parseCondition parses a condition written as kind:key=value,key=value.
func parseCondition(raw string) (verification.VerifiableCondition, error) {
	kind, rawParams, _ := strings.Cut(raw, ":")
	kind = strings.TrimSpace(kind)
	if kind == "" || strings.Contains(kind, "=") {
		return verification.VerifiableCondition{}, fmt.Errorf("%w: %q: missing kind", ErrInvalidCondition, raw)
	}

	params := make(map[string]string)
	for pair := range strings.SplitSeq(rawParams, ",") {
		if strings.TrimSpace(pair) == "" {
			continue
		}

		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return verification.VerifiableCondition{}, fmt.Errorf("%w: %q: expected key=value, got %q", ErrInvalidCondition, raw, pair)
		}

		params[key] = strings.TrimSpace(value)
	}

	return verification.VerifiableCondition{
		Kind:       verification.Kind(kind),
		Parameters: params,
	}, nil
}

// startsCondition reports whether fragment opens a new condition, that is,
// it has a kind prefix before any key=value pair.
func startsCondition(fragment string) bool {
	colon := strings.Index(fragment, ":")
	eq := strings.Index(fragment, "=")
	return colon >= 0 && (eq < 0 || colon < eq)
}

// parseConditions parses every --condition value. Slice flags are split on
// commas, so fragments without a kind prefix are joined back to the
// condition that precedes them.
func parseConditions(values []string) ([]verification.VerifiableCondition, error) {
	var raws []string
	for _, v := range values {
		if len(raws) > 0 && !startsCondition(v) {
			raws[len(raws)-1] += "," + v
			continue
		}
		raws = append(raws, v)
	}

	conditions := make([]verification.VerifiableCondition, 0, len(raws))
	for _, raw := range raws {
		cond, err := parseCondition(raw)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, cond)
	}

	return conditions, nil
}

// watchCommand returns a CLI command that monitors a single escrow until its
// watch terminates, then prints the final status as JSON.
//
// Usage example:
//
//	escrowwatch watch --escrow-id esc-1 \
//	  --condition shipment:provider=fedex,tracking_id=T1 \
//	  --condition document:document_hash=abc
func watchCommand(monitor conditionwatch.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Monitor an escrow's release conditions until funds are released, the watch fails, or it is interrupted.",
		Usage:       "Watches a single escrow in-process. Must provide the escrow id and at least one condition.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "escrow-id",
				Usage:    "Escrow identifier to monitor",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:     "condition",
				Usage:    "Condition as kind:key=value,key=value (repeatable)",
				Required: true,
			},
			&cli.DurationFlag{
				Name:  "poll-interval",
				Usage: "Time between sweeps (defaults to the configured polling interval)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			escrowID := c.String("escrow-id")

			conditions, err := parseConditions(c.StringSlice("condition"))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			status, err := monitor.RunMonitoring(ctx, escrowID, conditions, c.Duration("poll-interval"))
			if errors.Is(err, context.Canceled) {
				monitor.StopMonitoring(context.WithoutCancel(ctx), escrowID)
				return err
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(c.Root().Writer)
			enc.SetIndent("", "  ")
			if err := enc.Encode(status); err != nil {
				return err
			}

			if status.State == conditionwatch.StateFailed {
				return fmt.Errorf("%w: %s", ErrWatchFailed, status.Cause)
			}

			return nil
		},
	}
}
