package ethrpc

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ethgateway/balance-gateway/pkg/eth"
)

const testAddress = "0x0000000000000000000000000000000000000000"

func TestNewClientEmptyEndpoint(t *testing.T) {
	client, err := NewClient(context.Background(), &Config{})

	require.Error(t, err)
	require.Nil(t, client)
}

// newStubNode serves canned JSON-RPC responses. The respond func receives the
// request id so replies correlate the way a real node's would.
func newStubNode(t *testing.T, respond func(id json.RawMessage) string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}

		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "eth_getBalance", req.Method)

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, respond(req.ID))
	}))
}

func TestBalanceAtStubNode(t *testing.T) {
	node := newStubNode(t, func(id json.RawMessage) string {
		// 0x3e8 == 1000 wei.
		return fmt.Sprintf(`{"jsonrpc":"2.0","id":%s,"result":"0x3e8"}`, id)
	})
	defer node.Close()

	client, err := NewClient(context.Background(), &Config{Endpoint: node.URL})
	require.NoError(t, err)
	defer client.Close()

	addr, err := eth.ParseAddress(testAddress)
	require.NoError(t, err)

	balance, err := client.BalanceAt(context.Background(), addr)

	require.NoError(t, err)
	require.Equal(t, big.NewInt(1000), balance)
}

func TestBalanceAtRespectsParentDeadline(t *testing.T) {
	node := newStubNode(t, func(id json.RawMessage) string {
		return fmt.Sprintf(`{"jsonrpc":"2.0","id":%s,"result":"0x0"}`, id)
	})
	defer node.Close()

	client, err := NewClient(context.Background(), &Config{Endpoint: node.URL})
	require.NoError(t, err)
	defer client.Close()

	addr, err := eth.ParseAddress(testAddress)
	require.NoError(t, err)

	// A caller-supplied deadline is kept rather than replaced.
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	balance, err := client.BalanceAt(ctx, addr)

	require.NoError(t, err)
	require.Equal(t, big.NewInt(0), balance)
}

func TestBalanceAtNodeError(t *testing.T) {
	node := newStubNode(t, func(id json.RawMessage) string {
		return fmt.Sprintf(`{"jsonrpc":"2.0","id":%s,"error":{"code":-32000,"message":"header not found"}}`, id)
	})
	defer node.Close()

	client, err := NewClient(context.Background(), &Config{Endpoint: node.URL})
	require.NoError(t, err)
	defer client.Close()

	addr, err := eth.ParseAddress(testAddress)
	require.NoError(t, err)

	balance, err := client.BalanceAt(context.Background(), addr)

	require.Error(t, err)
	require.Nil(t, balance)
}

func TestBalanceAtLive(t *testing.T) {
	if shouldSkipRPCTests() {
		t.Skip("Skipping as no execution node is enabled in the test context.")
	}

	client := newTestClient(t)
	defer client.Close()

	addr, err := eth.ParseAddress(testAddress)
	require.NoError(t, err)

	balance, err := client.BalanceAt(context.Background(), addr)

	require.NoError(t, err)
	require.NotNil(t, balance)
	require.GreaterOrEqual(t, balance.Sign(), 0)
}

func shouldSkipRPCTests() bool {
	if rpcEnabled, err := strconv.ParseBool(os.Getenv("ETHEREUM_RPC_ENABLED")); err == nil {
		return !rpcEnabled
	}

	return true
}

func newTestClient(t *testing.T) *Client {
	client, err := NewClient(context.Background(), &Config{
		Endpoint: os.Getenv("ETHEREUM_RPC_URL"),
		Timeout:  5 * time.Second,
	})

	require.NoError(t, err)
	require.NotNil(t, client)

	return client
}
