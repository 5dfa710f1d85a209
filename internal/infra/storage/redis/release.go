package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/escrowwatch/internal/release"

	"github.com/redis/go-redis/v9"
)

// Values stored under the release key of an escrow.
const (
	releaseClaimed = "claimed"
	releaseDone    = "done"
)

// Claim results returned by claimReleaseScript.
const (
	claimAcquired   = 1
	claimInProgress = 0
	claimDone       = 2
)

// claimReleaseScript atomically claims the release of an escrow.
// KEYS[1] = release key
// ARGV[1] = terminal value
// ARGV[2] = claim value
// ARGV[3] = claim TTL in milliseconds
var claimReleaseScript = redis.NewScript(`
local current = redis.call("GET", KEYS[1])
if current == ARGV[1] then
    return 2
end

if redis.call("SET", KEYS[1], ARGV[2], "NX", "PX", ARGV[3]) then
    return 1
end

return 0
`)

// abandonReleaseScript drops a pending claim, leaving the terminal value untouched.
// KEYS[1] = release key
// ARGV[1] = claim value
var abandonReleaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end

return 0
`)

func releaseKey(escrowID string) string {
	return fmt.Sprintf("%s:release:%s", keyPrefix, escrowID)
}

// ClaimRelease reserves the release of the escrow for ttl.
//
// Returns:
//   - nil if the claim is successful.
//   - release.ErrAlreadyReleased if the escrow was already released.
//   - release.ErrReleaseInProgress if another claim is still alive.
//   - any other error if the Redis operation fails.
func (c *client) ClaimRelease(ctx context.Context, escrowID string, ttl time.Duration) error {
	res, err := claimReleaseScript.Run(ctx, c.conn, []string{releaseKey(escrowID)}, releaseDone, releaseClaimed, ttl.Milliseconds()).Int()
	if err != nil {
		return err
	}

	switch res {
	case claimAcquired:
		return nil
	case claimDone:
		return release.ErrAlreadyReleased
	default:
		return release.ErrReleaseInProgress
	}
}

// MarkReleased stores the terminal marker with no expiration, so the escrow
// can never be claimed again.
func (c *client) MarkReleased(ctx context.Context, escrowID string) error {
	return c.conn.Set(ctx, releaseKey(escrowID), releaseDone, 0).Err()
}

// AbandonRelease frees a claim whose release failed, so the escrow can be
// claimed again without waiting for the claim TTL.
func (c *client) AbandonRelease(ctx context.Context, escrowID string) error {
	return abandonReleaseScript.Run(ctx, c.conn, []string{releaseKey(escrowID)}, releaseClaimed).Err()
}

// Ensure the client satisfies the release.Guard interface at compile time.
var _ release.Guard = new(client)
