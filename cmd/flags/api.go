package flags

import (
	"time"

	"github.com/urfave/cli/v2"
)

var (
	HTTPPort = &cli.Uint64Flag{
		Name:     "http.port",
		Usage:    "Port to run the HTTP server on",
		Value:    3030,
		Category: apiCategory,
		EnvVars:  []string{"HTTP_PORT"},
	}
	RPCUrl = &cli.StringFlag{
		Name:     "rpc.url",
		Usage:    "RPC URL of the Ethereum execution node to query balances from",
		Value:    "http://localhost:8545",
		Category: apiCategory,
		EnvVars:  []string{"ETHEREUM_RPC_URL"},
	}
	RPCTimeout = &cli.DurationFlag{
		Name:     "rpc.timeout",
		Usage:    "Timeout for upstream RPC calls",
		Value:    12 * time.Second,
		Category: apiCategory,
		EnvVars:  []string{"RPC_TIMEOUT"},
	}
	CORSOrigins = &cli.StringFlag{
		Name:     "http.corsOrigins",
		Usage:    "Comma delimited list of CORS origins",
		Value:    "*",
		Category: apiCategory,
		EnvVars:  []string{"HTTP_CORS_ORIGINS"},
	}
	MetricsEnabled = &cli.BoolFlag{
		Name:     "metrics.enabled",
		Usage:    "Enable the Prometheus middleware and the /metrics endpoint",
		Value:    true,
		Category: apiCategory,
		EnvVars:  []string{"METRICS_ENABLED"},
	}
	TracingEndpoint = &cli.StringFlag{
		Name:     "tracing.endpoint",
		Usage:    "OTLP HTTP endpoint to export traces to, tracing is disabled when empty",
		Category: apiCategory,
		EnvVars:  []string{"TRACING_ENDPOINT"},
	}
)

var APIFlags = MergeFlags(CommonFlags, []cli.Flag{
	HTTPPort,
	RPCUrl,
	RPCTimeout,
	CORSOrigins,
	MetricsEnabled,
	TracingEndpoint,
})
