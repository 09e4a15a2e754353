package eth

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// AddressLength is the expected length of a textual account address,
// including the "0x" prefix.
const AddressLength = 2 + common.AddressLength*2

// ParseAddress decodes a "0x"-prefixed, 40 hex digit account address into
// its canonical 20 byte form. Hex digits are case-insensitive. Anything
// else, including unprefixed or truncated input, is rejected.
func ParseAddress(s string) (common.Address, error) {
	if len(s) != AddressLength {
		return common.Address{}, fmt.Errorf("invalid address %q: expected %d characters, got %d", s, AddressLength, len(s))
	}

	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return common.Address{}, fmt.Errorf("invalid address %q: missing 0x prefix", s)
	}

	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("invalid address %q: non-hex characters", s)
	}

	return common.HexToAddress(s), nil
}
