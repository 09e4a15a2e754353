package api

import (
	"context"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ethgateway/balance-gateway/cmd/flags"
	"github.com/ethgateway/balance-gateway/pkg/provider"
	"github.com/ethgateway/balance-gateway/pkg/provider/ethrpc"
)

type Config struct {
	HTTPPort        uint64
	RPCUrl          string
	RPCUrlIsDefault bool
	RPCTimeout      time.Duration
	CORSOrigins     []string
	MetricsEnabled  bool
	TracingEndpoint string
	LogJSON         bool
	LogDebug        bool

	OpenProviderFunc func(ctx context.Context) (provider.BalanceProvider, error)
}

// NewConfigFromCliContext creates a new config instance from command line flags.
func NewConfigFromCliContext(c *cli.Context) (*Config, error) {
	rpcURL := c.String(flags.RPCUrl.Name)
	rpcTimeout := c.Duration(flags.RPCTimeout.Name)

	return &Config{
		HTTPPort:        c.Uint64(flags.HTTPPort.Name),
		RPCUrl:          rpcURL,
		RPCUrlIsDefault: !c.IsSet(flags.RPCUrl.Name),
		RPCTimeout:      rpcTimeout,
		CORSOrigins:     strings.Split(c.String(flags.CORSOrigins.Name), ","),
		MetricsEnabled:  c.Bool(flags.MetricsEnabled.Name),
		TracingEndpoint: c.String(flags.TracingEndpoint.Name),
		LogJSON:         c.Bool(flags.LogJSON.Name),
		LogDebug:        c.Bool(flags.LogDebug.Name),
		OpenProviderFunc: func(ctx context.Context) (provider.BalanceProvider, error) {
			return ethrpc.NewClient(ctx, &ethrpc.Config{
				Endpoint: rpcURL,
				Timeout:  rpcTimeout,
			})
		},
	}, nil
}
