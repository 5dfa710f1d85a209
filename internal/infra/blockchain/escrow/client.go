// Package escrow releases escrowed funds through the escrow contract gateway,
// reached over JSON-RPC.
package escrow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/escrowwatch/internal/infra/blockchain"
	"github.com/gabapcia/escrowwatch/internal/pkg/logger"
	"github.com/gabapcia/escrowwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/escrowwatch/internal/release"
)

// releaseFundsMethod is the JSON-RPC method that releases the funds of an
// escrow. Params: [contractAddress, escrowID]. Result: transaction hash.
const releaseFundsMethod = "escrow_releaseFunds"

// ErrEmptyResult indicates that the gateway answered without a transaction hash.
var ErrEmptyResult = errors.New("empty release result")

// client implements release.FundReleaser for a single escrow contract.
type client struct {
	conn            jsonrpc.Client
	contractAddress string
}

// Ensure client implements the release.FundReleaser interface at compile time.
var _ release.FundReleaser = (*client)(nil)

// ReleaseFunds asks the gateway to release the escrow funds. The release is
// only considered confirmed when the gateway answers with a valid transaction hash.
func (c *client) ReleaseFunds(ctx context.Context, escrowID string) error {
	result, err := c.conn.Fetch(ctx, releaseFundsMethod, c.contractAddress, escrowID)
	if err != nil {
		return err
	}

	if len(result) == 0 || bytes.Equal(result, []byte("null")) {
		return ErrEmptyResult
	}

	var txHash blockchain.TxHash
	if err := json.Unmarshal(result, &txHash); err != nil {
		return fmt.Errorf("unexpected %s result: %w", releaseFundsMethod, err)
	}

	logger.Info(ctx, "escrow release transaction submitted",
		"escrow.id", escrowID,
		"escrow.contract", c.contractAddress,
		"tx.hash", txHash.String(),
	)

	return nil
}

// NewClient creates a FundReleaser for the escrow contract at contractAddress
// using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client, contractAddress string) *client {
	return &client{
		conn:            conn,
		contractAddress: contractAddress,
	}
}
