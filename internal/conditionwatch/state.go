package conditionwatch

import "time"

// State is the lifecycle stage of a watch.
type State string

const (
	// StatePending is the initial state, before the first sweep is scheduled.
	StatePending State = "pending"

	// StatePolling means conditions are being swept periodically.
	StatePolling State = "polling"

	// StateSatisfied means every condition held within a single sweep and the
	// funds were released.
	StateSatisfied State = "satisfied"

	// StateCancelled means monitoring was stopped before completion.
	StateCancelled State = "cancelled"

	// StateFailed means the watch hit a configuration or release error.
	StateFailed State = "failed"
)

// IsTerminal reports whether no further transitions can happen from s.
func (s State) IsTerminal() bool {
	switch s {
	case StateSatisfied, StateCancelled, StateFailed:
		return true
	default:
		return false
	}
}

// Status is a point-in-time view of a watch.
type Status struct {
	EscrowID   string    `json:"escrow_id"`
	WatchID    string    `json:"watch_id"`
	State      State     `json:"state"`
	Cause      string    `json:"cause,omitempty"` // message of the error that failed the watch
	Err        error     `json:"-"`               // error that failed the watch, only available in-process
	Sweeps     int       `json:"sweeps"`
	Conditions int       `json:"conditions"`
	StartedAt  time.Time `json:"started_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// SatisfiedAt is set once every condition held within a single sweep. It
	// stays set when the release that followed failed.
	SatisfiedAt *time.Time `json:"satisfied_at,omitempty"`
}

// StartAck acknowledges a StartMonitoring request.
type StartAck struct {
	EscrowID          string
	WatchID           string
	AlreadyMonitoring bool // true when a live watch already existed for the escrow
}

// StopAck acknowledges a StopMonitoring request.
type StopAck struct {
	EscrowID string
	WatchID   string
	Stopped   bool // false when no live watch existed for the escrow or it is releasing
	Releasing bool // true when the stop was refused because the funds are being released
}
