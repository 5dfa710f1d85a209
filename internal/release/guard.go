package release

import (
	"context"
	"sync"
	"time"
)

// Guard makes the release of an escrow idempotent across processes and restarts.
//
// The implementation is expected to support TTL semantics: a claim that is not
// finalized within the TTL (e.g., due to a crash) becomes re-acquirable.
type Guard interface {
	// ClaimRelease reserves the exclusive right to release the escrow.
	//
	// Returns ErrAlreadyReleased if the escrow was already released and
	// ErrReleaseInProgress if another claim is still alive.
	ClaimRelease(ctx context.Context, escrowID string, ttl time.Duration) error

	// MarkReleased records that the escrow funds were released. It must be
	// called only after the release mechanism confirmed the release.
	MarkReleased(ctx context.Context, escrowID string) error

	// AbandonRelease drops the claim of a release that failed, so the escrow
	// can be claimed again. Escrows already marked as released are untouched.
	AbandonRelease(ctx context.Context, escrowID string) error
}

// localGuard is the default Guard. It only protects releases issued by the
// current process.
type localGuard struct {
	mu       sync.Mutex
	claims   map[string]time.Time // escrow id -> claim expiration
	released map[string]struct{}
}

var _ Guard = (*localGuard)(nil)

func newLocalGuard() *localGuard {
	return &localGuard{
		claims:   make(map[string]time.Time),
		released: make(map[string]struct{}),
	}
}

func (g *localGuard) ClaimRelease(_ context.Context, escrowID string, ttl time.Duration) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.released[escrowID]; ok {
		return ErrAlreadyReleased
	}

	now := time.Now()
	if expiresAt, ok := g.claims[escrowID]; ok && now.Before(expiresAt) {
		return ErrReleaseInProgress
	}

	g.claims[escrowID] = now.Add(ttl)
	return nil
}

func (g *localGuard) MarkReleased(_ context.Context, escrowID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.claims, escrowID)
	g.released[escrowID] = struct{}{}
	return nil
}

func (g *localGuard) AbandonRelease(_ context.Context, escrowID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.claims, escrowID)
	return nil
}
