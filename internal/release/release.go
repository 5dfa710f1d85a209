// Package release hands a fully satisfied escrow to the external fund-release
// mechanism, making sure the hand-off happens at most once.
package release

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/escrowwatch/internal/pkg/logger"
	"github.com/gabapcia/escrowwatch/internal/pkg/resilience/retry"
)

// FundReleaser is the external mechanism that actually moves the escrowed funds.
type FundReleaser interface {
	// ReleaseFunds releases the funds of the escrow. A nil error means the
	// release was confirmed.
	ReleaseFunds(ctx context.Context, escrowID string) error
}

// Trigger is invoked once all conditions of an escrow were observed true
// within a single sweep.
type Trigger interface {
	// Release hands the escrow off to the fund-release mechanism. Any failure
	// is returned as *ReleaseError. An escrow the guard reports as already
	// released is not released again and yields nil.
	//
	// Cancellation of ctx does not abort a release that already started; the
	// call is bounded by the configured timeout instead.
	Release(ctx context.Context, escrowID string) error
}

type config struct {
	guard    Guard
	claimTTL time.Duration
	retry    retry.Retry
	timeout  time.Duration
}

// Option configures the Trigger.
type Option func(*config)

// WithGuard sets the idempotency guard consulted before and after each release.
func WithGuard(g Guard) Option {
	return func(c *config) {
		c.guard = g
	}
}

// WithClaimTTL sets how long a release claim lives before it can be re-acquired. Default: 10 minutes.
func WithClaimTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.claimTTL = ttl
	}
}

// WithRetry enables a bounded retry of the release call. By default the
// release is attempted exactly once.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithTimeout bounds the whole release, retries included. Default: 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

type service struct {
	releaser FundReleaser
	config   config
}

var _ Trigger = (*service)(nil)

func (s *service) Release(ctx context.Context, escrowID string) error {
	ctx = logger.Derive(context.WithoutCancel(ctx), "escrow.id", escrowID)
	if s.config.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.timeout)
		defer cancel()
	}

	err := s.config.guard.ClaimRelease(ctx, escrowID, s.config.claimTTL)
	switch {
	case errors.Is(err, ErrAlreadyReleased):
		logger.Info(ctx, "escrow funds were already released")
		return nil
	case err != nil:
		return &ReleaseError{EscrowID: escrowID, Cause: err}
	}

	attempts := 0
	err = s.config.retry.Execute(ctx, func() error {
		attempts++
		return s.releaser.ReleaseFunds(ctx, escrowID)
	})
	if err != nil {
		if err := s.config.guard.AbandonRelease(context.WithoutCancel(ctx), escrowID); err != nil {
			logger.Error(ctx, "failed to abandon release claim", "error", err)
		}

		return &ReleaseError{EscrowID: escrowID, Attempts: attempts, Cause: err}
	}

	// The funds already moved at this point; a failure to persist the marker
	// is left to the claim TTL.
	if err := s.config.guard.MarkReleased(ctx, escrowID); err != nil {
		logger.Error(ctx, "failed to mark escrow as released", "error", err)
	}

	logger.Info(ctx, "escrow funds released", "release.attempts", attempts)
	return nil
}

// New creates a Trigger that releases funds through releaser.
func New(releaser FundReleaser, opts ...Option) *service {
	cfg := config{
		guard:    newLocalGuard(),
		claimTTL: 10 * time.Minute,
		retry:    retry.New(retry.WithAttempts(1)),
		timeout:  30 * time.Second,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		releaser: releaser,
		config:   cfg,
	}
}
