package provider

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// BalanceProvider is the capability the gateway needs from a chain backend:
// resolve one account to its current native balance. Implementations bound
// their own latency; callers add no retries.
type BalanceProvider interface {
	BalanceAt(ctx context.Context, account common.Address) (*big.Int, error)
	Close()
}
