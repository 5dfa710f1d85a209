package conditionwatch

import (
	"context"
	"fmt"

	"github.com/gabapcia/escrowwatch/internal/pkg/logger"
	"github.com/gabapcia/escrowwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/escrowwatch/internal/verification"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// run drives w until it reaches a terminal state. Sweeps are strictly
// sequential: the wait for the next one only starts after the previous sweep
// returned.
func (s *service) run(w *watch) {
	defer s.wg.Done()
	defer close(w.done)

	ctx := w.ctx
	if err := s.validateConditions(w); err != nil {
		s.finish(ctx, w, StateFailed, err)
		return
	}

	w.transition(StatePolling, nil)
	logger.Info(ctx, "watch started",
		"watch.conditions", len(w.conditions),
		"watch.poll_interval", w.pollInterval.String(),
	)

	for {
		satisfied, err := s.sweep(ctx, w)
		switch {
		case ctx.Err() != nil:
			s.finish(ctx, w, StateCancelled, nil)
			return
		case verification.IsConfigurationError(err):
			s.finish(ctx, w, StateFailed, err)
			return
		case err != nil:
			logger.Warn(ctx, "condition sweep failed, retrying on next cycle", "error", err)
		case satisfied:
			w.markSatisfied()
			if !s.beginRelease(w) {
				s.finish(ctx, w, StateCancelled, nil)
				return
			}

			if err := s.release(ctx, w); err != nil {
				s.finish(ctx, w, StateFailed, err)
				return
			}

			s.finish(ctx, w, StateSatisfied, nil)
			return
		}

		if !chflow.Sleep(ctx, w.pollInterval) {
			s.finish(ctx, w, StateCancelled, nil)
			return
		}
	}
}

// validateConditions rejects a watch holding any condition that could never be
// evaluated, before the first provider call.
func (s *service) validateConditions(w *watch) error {
	for i, cond := range w.conditions {
		if err := s.evaluator.Validate(cond); err != nil {
			return fmt.Errorf("condition %d: %w", i, err)
		}
	}

	return nil
}

// sweep evaluates every condition of w in order, stopping at the first one
// that does not hold or cannot be evaluated.
func (s *service) sweep(ctx context.Context, w *watch) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "conditionwatch.sweep", trace.WithAttributes(
		attribute.String("escrow.id", w.escrowID),
		attribute.String("watch.id", w.id),
	))
	defer span.End()

	satisfied, err := s.evaluateConditions(ctx, w)
	if ctx.Err() == nil {
		w.completeSweep()
	}

	result := sweepResult(ctx, satisfied, err)
	s.metrics.recordSweep(ctx, result)
	span.SetAttributes(attribute.String("sweep.result", result))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return satisfied, err
}

func (s *service) evaluateConditions(ctx context.Context, w *watch) (bool, error) {
	for i, cond := range w.conditions {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		ok, err := s.evaluator.Evaluate(ctx, cond)
		if err != nil {
			return false, fmt.Errorf("condition %d: %w", i, err)
		}

		if !ok {
			logger.Debug(ctx, "condition not satisfied", "condition.index", i, "condition.kind", cond.Kind)
			return false, nil
		}
	}

	return true, nil
}

func sweepResult(ctx context.Context, satisfied bool, err error) string {
	switch {
	case ctx.Err() != nil:
		return sweepCancelled
	case verification.IsConfigurationError(err):
		return sweepConfigError
	case err != nil:
		return sweepTransientError
	case satisfied:
		return sweepSatisfied
	default:
		return sweepUnsatisfied
	}
}

// release invokes the release trigger. The call is detached from the watch
// cancellation: once started, neither a stop request nor Close can abort it.
func (s *service) release(ctx context.Context, w *watch) error {
	ctx, span := s.tracer.Start(context.WithoutCancel(ctx), "conditionwatch.release", trace.WithAttributes(
		attribute.String("escrow.id", w.escrowID),
		attribute.String("watch.id", w.id),
	))
	defer span.End()

	logger.Info(ctx, "all conditions satisfied, releasing funds")

	if err := s.trigger.Release(ctx, w.escrowID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// finish moves w to its terminal state, records the outcome and removes w
// from the registry.
func (s *service) finish(ctx context.Context, w *watch, state State, cause error) {
	ctx = context.WithoutCancel(ctx)

	w.transition(state, cause)
	status := w.snapshot()

	if err := s.outcomes.SaveOutcome(ctx, status); err != nil {
		logger.Error(ctx, "failed to record watch outcome", "error", err)
	}

	s.unregister(w)
	w.cancel()
	s.metrics.recordTermination(ctx, state)

	if state == StateFailed {
		logger.Error(ctx, "watch failed", "watch.state", state, "watch.sweeps", status.Sweeps, "error", cause)
		return
	}

	logger.Info(ctx, "watch finished", "watch.state", state, "watch.sweeps", status.Sweeps)
}
