package conditionwatch

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/gabapcia/escrowwatch/internal/pkg/logger"
	"github.com/gabapcia/escrowwatch/internal/verification"

	"github.com/google/uuid"
)

// watch monitors the conditions of a single escrow. It is owned by the
// registry entry that created it.
type watch struct {
	id           string
	escrowID     string
	conditions   []verification.VerifiableCondition
	pollInterval time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{} // closed once the watch reached a terminal state

	releasing bool // guarded by the service registry lock

	mu     sync.RWMutex
	status Status
}

// newWatch creates a pending watch. The watch context inherits the values of
// parent (logger, trace) but not its cancellation.
func newWatch(parent context.Context, escrowID string, conditions []verification.VerifiableCondition, pollInterval time.Duration) *watch {
	id := uuid.Must(uuid.NewV7()).String()

	owned := make([]verification.VerifiableCondition, len(conditions))
	for i, cond := range conditions {
		owned[i] = verification.VerifiableCondition{
			Kind:       cond.Kind,
			Parameters: maps.Clone(cond.Parameters),
		}
	}

	ctx := logger.Derive(context.WithoutCancel(parent), "escrow.id", escrowID, "watch.id", id)
	ctx, cancel := context.WithCancel(ctx)

	now := time.Now().UTC()
	return &watch{
		id:           id,
		escrowID:     escrowID,
		conditions:   owned,
		pollInterval: pollInterval,
		ctx:          ctx,
		cancel:       cancel,
		done:         make(chan struct{}),
		status: Status{
			EscrowID:   escrowID,
			WatchID:    id,
			State:      StatePending,
			Conditions: len(owned),
			StartedAt:  now,
			UpdatedAt:  now,
		},
	}
}

func (w *watch) snapshot() Status {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.status
}

// transition moves the watch to state. Terminal states are final.
func (w *watch) transition(state State, cause error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.status.State.IsTerminal() {
		return
	}

	w.status.State = state
	w.status.UpdatedAt = time.Now().UTC()
	if cause != nil {
		w.status.Err = cause
		w.status.Cause = cause.Error()
	}
}

func (w *watch) completeSweep() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.status.Sweeps++
	w.status.UpdatedAt = time.Now().UTC()
}

func (w *watch) markSatisfied() {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now().UTC()
	w.status.SatisfiedAt = &now
	w.status.UpdatedAt = now
}
