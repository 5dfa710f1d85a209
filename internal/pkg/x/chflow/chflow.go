// Package chflow holds small blocking helpers that give up as soon as their
// context is done.
package chflow

import (
	"context"
	"time"
)

// Receive blocks until ch yields a value or ctx is done. ok is false when ctx
// ended first or ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Sleep pauses for d or until ctx is done. It returns false when ctx ended
// before d elapsed.
func Sleep(ctx context.Context, d time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}

	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
