package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/escrowwatch/internal/conditionwatch"

	"github.com/redis/go-redis/v9"
)

func outcomeKey(escrowID string) string {
	return fmt.Sprintf("%s:outcome:%s", keyPrefix, escrowID)
}

// SaveOutcome stores the terminal status of a watch as JSON, replacing any
// previous outcome of the same escrow.
func (c *client) SaveOutcome(ctx context.Context, status conditionwatch.Status) error {
	data, err := json.Marshal(status)
	if err != nil {
		return err
	}

	return c.conn.Set(ctx, outcomeKey(status.EscrowID), data, c.outcomeTTL).Err()
}

// GetOutcome loads the last outcome of the escrow, or returns
// conditionwatch.ErrOutcomeNotFound.
func (c *client) GetOutcome(ctx context.Context, escrowID string) (conditionwatch.Status, error) {
	data, err := c.conn.Get(ctx, outcomeKey(escrowID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return conditionwatch.Status{}, conditionwatch.ErrOutcomeNotFound
	}
	if err != nil {
		return conditionwatch.Status{}, err
	}

	var status conditionwatch.Status
	if err := json.Unmarshal(data, &status); err != nil {
		return conditionwatch.Status{}, fmt.Errorf("corrupted outcome for escrow %s: %w", escrowID, err)
	}

	return status, nil
}

// Ensure the client satisfies the conditionwatch.OutcomeStorage interface at compile time.
var _ conditionwatch.OutcomeStorage = new(client)
