package conditionwatch

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/gabapcia/escrowwatch/internal/conditionwatch"

// Sweep results recorded by the conditionwatch.sweeps counter.
const (
	sweepSatisfied      = "satisfied"
	sweepUnsatisfied    = "unsatisfied"
	sweepTransientError = "transient_error"
	sweepConfigError    = "config_error"
	sweepCancelled      = "cancelled"
)

var (
	attrResult = attribute.Key("result")
	attrState  = attribute.Key("state")
)

type metrics struct {
	sweeps        metric.Int64Counter
	terminations  metric.Int64Counter
	activeWatches metric.Int64UpDownCounter
}

func newMetrics(provider metric.MeterProvider) *metrics {
	meter := provider.Meter(instrumentationName)

	sweeps, err := meter.Int64Counter("conditionwatch.sweeps",
		metric.WithDescription("Number of condition sweeps performed, by result"),
		metric.WithUnit("{sweep}"),
	)
	if err != nil {
		otel.Handle(err)
		sweeps = noop.Int64Counter{}
	}

	terminations, err := meter.Int64Counter("conditionwatch.terminations",
		metric.WithDescription("Number of watches that reached a terminal state, by state"),
		metric.WithUnit("{watch}"),
	)
	if err != nil {
		otel.Handle(err)
		terminations = noop.Int64Counter{}
	}

	activeWatches, err := meter.Int64UpDownCounter("conditionwatch.active_watches",
		metric.WithDescription("Number of watches currently running"),
		metric.WithUnit("{watch}"),
	)
	if err != nil {
		otel.Handle(err)
		activeWatches = noop.Int64UpDownCounter{}
	}

	return &metrics{
		sweeps:        sweeps,
		terminations:  terminations,
		activeWatches: activeWatches,
	}
}

func (m *metrics) recordSweep(ctx context.Context, result string) {
	m.sweeps.Add(ctx, 1, metric.WithAttributes(attrResult.String(result)))
}

func (m *metrics) recordStart(ctx context.Context) {
	m.activeWatches.Add(ctx, 1)
}

func (m *metrics) recordTermination(ctx context.Context, state State) {
	m.activeWatches.Add(ctx, -1)
	m.terminations.Add(ctx, 1, metric.WithAttributes(attrState.String(string(state))))
}
