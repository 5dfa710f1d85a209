package conditionwatch

import (
	"context"
	"errors"
)

// ErrOutcomeNotFound indicates that no terminal outcome was recorded for the escrow.
var ErrOutcomeNotFound = errors.New("outcome not found")

// OutcomeStorage keeps the final Status of finished watches so that terminal
// states remain observable after the watch left the registry.
type OutcomeStorage interface {
	// SaveOutcome records the terminal status of a watch, replacing any
	// previous outcome for the same escrow.
	SaveOutcome(ctx context.Context, status Status) error

	// GetOutcome returns the last recorded outcome for the escrow, or
	// ErrOutcomeNotFound.
	GetOutcome(ctx context.Context, escrowID string) (Status, error)
}

// nopOutcomeStorage is the default OutcomeStorage. Nothing is kept, so
// terminal states are only observable while the watch is registered.
type nopOutcomeStorage struct{}

func (nopOutcomeStorage) SaveOutcome(context.Context, Status) error { return nil }

func (nopOutcomeStorage) GetOutcome(context.Context, string) (Status, error) {
	return Status{}, ErrOutcomeNotFound
}
