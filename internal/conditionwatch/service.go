// Package conditionwatch runs one background watch per monitored escrow. Each
// watch sweeps the escrow conditions periodically and triggers the release of
// the funds once, when every condition holds within a single sweep.
package conditionwatch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/escrowwatch/internal/pkg/logger"
	"github.com/gabapcia/escrowwatch/internal/verification"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrWatchNotFound    = errors.New("watch not found")
	ErrCapacityExceeded = errors.New("maximum number of watches reached")
	ErrServiceClosed    = errors.New("service closed")
	ErrEmptyEscrowID    = errors.New("escrow id must not be empty")
	ErrNoConditions     = errors.New("at least one condition is required")
)

// Evaluator decides whether a single condition currently holds.
type Evaluator interface {
	Evaluate(ctx context.Context, cond verification.VerifiableCondition) (bool, error)
	Validate(cond verification.VerifiableCondition) error
}

// ReleaseTrigger hands a satisfied escrow off to the fund-release mechanism.
type ReleaseTrigger interface {
	Release(ctx context.Context, escrowID string) error
}

type Service interface {
	// StartMonitoring registers and launches a watch for the escrow. If a live
	// watch already exists the call is a no-op that returns its identity with
	// AlreadyMonitoring set. A non-positive pollInterval selects the default.
	StartMonitoring(ctx context.Context, escrowID string, conditions []verification.VerifiableCondition, pollInterval time.Duration) (StartAck, error)

	// StopMonitoring cancels and unregisters the live watch of the escrow.
	// Stopping an escrow without a live watch is a no-op. Once the release of
	// the funds started the watch can no longer be stopped and the ack reports
	// Releasing instead of Stopped.
	StopMonitoring(ctx context.Context, escrowID string) StopAck

	// GetStatus returns the status of the live watch or, when none exists, the
	// last recorded outcome. ErrWatchNotFound is returned otherwise.
	GetStatus(ctx context.Context, escrowID string) (Status, error)

	// Await blocks until the live watch of the escrow terminates and returns
	// its final status.
	Await(ctx context.Context, escrowID string) (Status, error)

	// RunMonitoring starts monitoring like StartMonitoring and blocks until
	// the resulting watch, new or existing, terminates.
	RunMonitoring(ctx context.Context, escrowID string, conditions []verification.VerifiableCondition, pollInterval time.Duration) (Status, error)

	// Close cancels every live watch and waits for them to unwind.
	Close()
}

type service struct {
	mu      sync.Mutex
	closed  bool
	watches map[string]*watch
	wg      sync.WaitGroup

	evaluator Evaluator
	trigger   ReleaseTrigger

	maxWatches          int
	defaultPollInterval time.Duration
	outcomes            OutcomeStorage

	tracer  trace.Tracer
	metrics *metrics
}

var _ Service = (*service)(nil)

func (s *service) StartMonitoring(ctx context.Context, escrowID string, conditions []verification.VerifiableCondition, pollInterval time.Duration) (StartAck, error) {
	_, ack, err := s.start(ctx, escrowID, conditions, pollInterval)
	return ack, err
}

func (s *service) RunMonitoring(ctx context.Context, escrowID string, conditions []verification.VerifiableCondition, pollInterval time.Duration) (Status, error) {
	w, _, err := s.start(ctx, escrowID, conditions, pollInterval)
	if err != nil {
		return Status{}, err
	}

	return wait(ctx, w)
}

// start registers a watch for the escrow, or returns the live one.
func (s *service) start(ctx context.Context, escrowID string, conditions []verification.VerifiableCondition, pollInterval time.Duration) (*watch, StartAck, error) {
	if escrowID == "" {
		return nil, StartAck{}, ErrEmptyEscrowID
	}

	if len(conditions) == 0 {
		return nil, StartAck{}, ErrNoConditions
	}

	if pollInterval <= 0 {
		pollInterval = s.defaultPollInterval
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, StartAck{}, ErrServiceClosed
	}

	if w, ok := s.watches[escrowID]; ok {
		return w, StartAck{EscrowID: escrowID, WatchID: w.id, AlreadyMonitoring: true}, nil
	}

	if s.maxWatches > 0 && len(s.watches) >= s.maxWatches {
		return nil, StartAck{}, ErrCapacityExceeded
	}

	w := newWatch(ctx, escrowID, conditions, pollInterval)
	s.watches[escrowID] = w
	s.metrics.recordStart(ctx)

	s.wg.Add(1)
	go s.run(w)

	return w, StartAck{EscrowID: escrowID, WatchID: w.id}, nil
}

func (s *service) StopMonitoring(ctx context.Context, escrowID string) StopAck {
	s.mu.Lock()
	w, ok := s.watches[escrowID]
	if !ok {
		s.mu.Unlock()
		return StopAck{EscrowID: escrowID}
	}

	if w.releasing {
		s.mu.Unlock()
		logger.Warn(w.ctx, "watch stop refused, release in progress")
		return StopAck{EscrowID: escrowID, WatchID: w.id, Releasing: true}
	}

	delete(s.watches, escrowID)
	s.mu.Unlock()

	w.cancel()
	logger.Info(w.ctx, "watch stop requested")

	return StopAck{EscrowID: escrowID, WatchID: w.id, Stopped: true}
}

func (s *service) GetStatus(ctx context.Context, escrowID string) (Status, error) {
	s.mu.Lock()
	w, ok := s.watches[escrowID]
	s.mu.Unlock()

	if ok {
		return w.snapshot(), nil
	}

	status, err := s.outcomes.GetOutcome(ctx, escrowID)
	if errors.Is(err, ErrOutcomeNotFound) {
		return Status{}, ErrWatchNotFound
	}

	return status, err
}

func (s *service) Await(ctx context.Context, escrowID string) (Status, error) {
	s.mu.Lock()
	w, ok := s.watches[escrowID]
	s.mu.Unlock()

	if !ok {
		return s.GetStatus(ctx, escrowID)
	}

	return wait(ctx, w)
}

// wait blocks until w terminates or ctx is done.
func wait(ctx context.Context, w *watch) (Status, error) {
	select {
	case <-ctx.Done():
		return Status{}, ctx.Err()
	case <-w.done:
		return w.snapshot(), nil
	}
}

func (s *service) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		for _, w := range s.watches {
			w.cancel()
		}
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// beginRelease commits w to releasing the funds unless it was stopped first.
// From then on StopMonitoring leaves w registered.
func (s *service) beginRelease(w *watch) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if w.ctx.Err() != nil {
		return false
	}

	w.releasing = true
	return true
}

// unregister removes w from the registry unless it was already replaced.
func (s *service) unregister(w *watch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watches[w.escrowID] == w {
		delete(s.watches, w.escrowID)
	}
}

type config struct {
	maxWatches          int
	defaultPollInterval time.Duration
	outcomes            OutcomeStorage
	tracerProvider      trace.TracerProvider
	meterProvider       metric.MeterProvider
}

type Option func(*config)

// WithMaxWatches bounds the number of live watches. Zero means unbounded. Default: 10000.
func WithMaxWatches(n int) Option {
	return func(c *config) {
		c.maxWatches = n
	}
}

// WithDefaultPollInterval sets the interval used when StartMonitoring gets a
// non-positive one. Default: 5 minutes.
func WithDefaultPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.defaultPollInterval = d
	}
}

// WithOutcomeStorage records the final status of every watch.
func WithOutcomeStorage(storage OutcomeStorage) Option {
	return func(c *config) {
		c.outcomes = storage
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

// WithMeterProvider overrides the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

func New(evaluator Evaluator, trigger ReleaseTrigger, opts ...Option) *service {
	cfg := config{
		maxWatches:          10000,
		defaultPollInterval: 5 * time.Minute,
		outcomes:            nopOutcomeStorage{},
		tracerProvider:      otel.GetTracerProvider(),
		meterProvider:       otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		watches:             make(map[string]*watch),
		evaluator:           evaluator,
		trigger:             trigger,
		maxWatches:          cfg.maxWatches,
		defaultPollInterval: cfg.defaultPollInterval,
		outcomes:            cfg.outcomes,
		tracer:              cfg.tracerProvider.Tracer(instrumentationName),
		metrics:             newMetrics(cfg.meterProvider),
	}
}
