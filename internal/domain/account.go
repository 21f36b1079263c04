package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
)

type EvmAddress string

func (a EvmAddress) Validate() error {
	raw := string(a)
	if !strings.HasPrefix(raw, "0x") && !strings.HasPrefix(raw, "0X") {
		return fmt.Errorf("evm address %q: missing 0x prefix", raw)
	}
	body := raw[2:]
	if len(body) != 40 {
		return fmt.Errorf("evm address %q: expected 40 hex characters, got %d", raw, len(body))
	}
	if _, err := hex.DecodeString(body); err != nil {
		return fmt.Errorf("evm address %q: %w", raw, err)
	}

	return nil
}

// Equal compares addresses case-insensitively, ignoring EIP-55 checksum casing.
func (a EvmAddress) Equal(other EvmAddress) bool {
	return strings.EqualFold(string(a), string(other))
}

func (a EvmAddress) String() string {
	return string(a)
}

type Account struct {
	Address    EvmAddress
	UsernameID string
	LocalName  string
	Namespace  string
	Name       string
	Bio        string
	Picture    string
	Cover      string
}

// Handle returns the local username, falling back to the display name.
func (a Account) Handle() string {
	if a.LocalName != "" {
		return a.LocalName
	}

	return a.Name
}

func (a Account) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	if a.LocalName != "" {
		return a.LocalName
	}

	return string(a.Address)
}

// AccountQuery selects an account by address or by handle. Address wins when both are set.
type AccountQuery struct {
	Address EvmAddress
	Handle  string
}

func (q AccountQuery) String() string {
	if q.Address != "" {
		return string(q.Address)
	}

	return "@" + q.Handle
}
