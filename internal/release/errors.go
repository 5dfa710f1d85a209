package release

import (
	"errors"
	"fmt"
)

var (
	// ErrReleaseInProgress indicates that another process currently holds the release claim for the escrow.
	ErrReleaseInProgress = errors.New("release already in progress")

	// ErrAlreadyReleased indicates that the escrow funds were already released.
	ErrAlreadyReleased = errors.New("funds already released")
)

// ReleaseError reports that funds could not be released after every condition
// of the escrow was confirmed. The satisfied state is implied by the error
// itself and must not be discarded by callers.
type ReleaseError struct {
	EscrowID string
	Attempts int
	Cause    error
}

func (e *ReleaseError) Error() string {
	return fmt.Sprintf("release of escrow %s failed after %d attempt(s): %v", e.EscrowID, e.Attempts, e.Cause)
}

func (e *ReleaseError) Unwrap() error {
	return e.Cause
}
