package blockchain

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidTxHash indicates a value that is not a 32-byte 0x-prefixed hex string.
var ErrInvalidTxHash = errors.New("invalid transaction hash")

// TxHash is a 0x-prefixed, 32-byte hexadecimal transaction hash (e.g., "0x5c50...").
// It implements JSON unmarshaling with validation.
type TxHash string

// UnmarshalJSON parses and validates a JSON-encoded transaction hash.
func (h *TxHash) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTxHash, err)
	}

	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return fmt.Errorf("%w: must start with 0x", ErrInvalidTxHash)
	}

	decoded, err := hex.DecodeString(s[2:])
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTxHash, err)
	}

	if len(decoded) != 32 {
		return fmt.Errorf("%w: expected 32 bytes, got %d", ErrInvalidTxHash, len(decoded))
	}

	*h = TxHash(strings.ToLower(s))
	return nil
}

func (h TxHash) String() string {
	return string(h)
}
