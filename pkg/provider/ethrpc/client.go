package ethrpc

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// defaultTimeout is applied to every upstream call when no timeout is
// configured, so a stalled node cannot hang a request indefinitely.
const defaultTimeout = 12 * time.Second

// Config contains all configs which will be used to initialize an Ethereum
// JSON-RPC balance client.
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// Client queries account balances from an Ethereum execution node over
// JSON-RPC. It is safe for concurrent use.
type Client struct {
	eth *ethclient.Client

	timeout time.Duration
}

// NewClient dials the configured endpoint and returns a balance client.
func NewClient(ctx context.Context, cfg *Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("endpoint is empty")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	eth, err := ethclient.DialContext(ctxWithTimeout, cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	return &Client{eth: eth, timeout: timeout}, nil
}

// BalanceAt returns the given account's native balance at the latest block.
func (c *Client) BalanceAt(ctx context.Context, account common.Address) (*big.Int, error) {
	ctxWithTimeout, cancel := ctxWithTimeoutOrDefault(ctx, c.timeout)
	defer cancel()

	return c.eth.BalanceAt(ctxWithTimeout, account, nil)
}

// Close closes the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}

// ctxWithTimeoutOrDefault returns a child context bounded by the given
// timeout unless the parent already carries an earlier deadline.
func ctxWithTimeoutOrDefault(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, timeout)
}
