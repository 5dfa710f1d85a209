// Package verification decides whether a single verifiable condition holds
// by calling the external provider that matches its kind.
package verification

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Evaluator maps one condition to a boolean outcome.
type Evaluator interface {
	// Evaluate calls the provider for cond.Kind and applies its success predicate.
	//
	// It fails with *ConfigurationError when the condition can never be
	// evaluated and with *VerificationError when the provider call could not
	// be completed. It never retries.
	Evaluate(ctx context.Context, cond VerifiableCondition) (bool, error)

	// Validate fails with *ConfigurationError when cond can never be
	// evaluated. It does not call any provider.
	Validate(cond VerifiableCondition) error
}

type config struct {
	callTimeout time.Duration
	limiters    map[Kind]*rate.Limiter
}

// Option configures the Evaluator.
type Option func(*config)

// WithCallTimeout bounds every outbound provider call. Zero disables the timeout.
func WithCallTimeout(d time.Duration) Option {
	return func(c *config) {
		c.callTimeout = d
	}
}

// WithRateLimit throttles calls to the provider of the given kind.
func WithRateLimit(kind Kind, limit rate.Limit, burst int) Option {
	return func(c *config) {
		c.limiters[kind] = rate.NewLimiter(limit, burst)
	}
}

type evaluator struct {
	providers Providers
	config    config
}

var _ Evaluator = (*evaluator)(nil)

func (e *evaluator) Validate(cond VerifiableCondition) error {
	_, err := e.check(cond)
	return err
}

// check parses cond and makes sure its provider is wired.
func (e *evaluator) check(cond VerifiableCondition) (check, error) {
	c, err := parse(cond)
	if err != nil {
		return nil, err
	}

	if !c.configured(e.providers) {
		return nil, &ConfigurationError{Kind: cond.Kind, Cause: ErrProviderNotConfigured}
	}

	return c, nil
}

func (e *evaluator) Evaluate(ctx context.Context, cond VerifiableCondition) (bool, error) {
	c, err := e.check(cond)
	if err != nil {
		return false, err
	}

	if limiter, ok := e.config.limiters[cond.Kind]; ok {
		if err := limiter.Wait(ctx); err != nil {
			return false, &VerificationError{Kind: cond.Kind, Cause: err}
		}
	}

	if e.config.callTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.config.callTimeout)
		defer cancel()
	}

	ok, err := c.run(ctx, e.providers)
	if err != nil {
		return false, &VerificationError{Kind: cond.Kind, Cause: err}
	}

	return ok, nil
}

// New creates an Evaluator backed by the given providers.
func New(providers Providers, opts ...Option) *evaluator {
	cfg := config{
		callTimeout: 10 * time.Second,
		limiters:    make(map[Kind]*rate.Limiter),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return &evaluator{
		providers: providers,
		config:    cfg,
	}
}
