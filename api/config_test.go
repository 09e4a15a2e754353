package api

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ethgateway/balance-gateway/cmd/flags"
)

func TestNewConfigFromCliContextDefaults(t *testing.T) {
	app := cli.NewApp()
	app.Flags = flags.APIFlags

	app.Action = func(cliCtx *cli.Context) error {
		cfg, err := NewConfigFromCliContext(cliCtx)

		require.NoError(t, err)
		require.Equal(t, uint64(3030), cfg.HTTPPort)
		require.Equal(t, "http://localhost:8545", cfg.RPCUrl)
		require.True(t, cfg.RPCUrlIsDefault)
		require.Equal(t, []string{"*"}, cfg.CORSOrigins)
		require.True(t, cfg.MetricsEnabled)
		require.NotNil(t, cfg.OpenProviderFunc)

		return nil
	}

	require.NoError(t, app.Run([]string{"TestNewConfigFromCliContext"}))
}

func TestNewConfigFromCliContext(t *testing.T) {
	app := cli.NewApp()
	app.Flags = flags.APIFlags

	app.Action = func(cliCtx *cli.Context) error {
		cfg, err := NewConfigFromCliContext(cliCtx)

		require.NoError(t, err)
		require.Equal(t, uint64(8080), cfg.HTTPPort)
		require.Equal(t, "http://geth:8545", cfg.RPCUrl)
		require.False(t, cfg.RPCUrlIsDefault)
		require.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
		require.Equal(t, "otel-collector:4318", cfg.TracingEndpoint)
		require.False(t, cfg.MetricsEnabled)
		require.True(t, cfg.LogJSON)

		return nil
	}

	require.NoError(t, app.Run([]string{
		"TestNewConfigFromCliContext",
		"--" + flags.HTTPPort.Name, "8080",
		"--" + flags.RPCUrl.Name, "http://geth:8545",
		"--" + flags.CORSOrigins.Name, "http://a.test,http://b.test",
		"--" + flags.TracingEndpoint.Name, "otel-collector:4318",
		"--" + flags.MetricsEnabled.Name + "=false",
		"--" + flags.LogJSON.Name,
	}))
}
