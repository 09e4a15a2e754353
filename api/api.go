package api

import (
	"context"
	"fmt"
	nethttp "net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ethgateway/balance-gateway/internal/logger"
	"github.com/ethgateway/balance-gateway/internal/tracing"
	"github.com/ethgateway/balance-gateway/pkg/http"
	"github.com/ethgateway/balance-gateway/pkg/provider"
)

type API struct {
	srv      *http.Server
	provider provider.BalanceProvider
	tracing  *tracing.Tracing
	log      *zap.SugaredLogger
	httpPort uint64
	wg       sync.WaitGroup
}

func (api *API) InitFromCli(ctx context.Context, c *cli.Context) error {
	cfg, err := NewConfigFromCliContext(c)
	if err != nil {
		return err
	}

	return InitFromConfig(ctx, api, cfg)
}

func InitFromConfig(ctx context.Context, api *API, cfg *Config) (err error) {
	log, err := logger.New(cfg.LogJSON, cfg.LogDebug)
	if err != nil {
		return err
	}

	if cfg.RPCUrlIsDefault {
		log.Warnw("ETHEREUM_RPC_URL not set, using default", "rpcUrl", cfg.RPCUrl)
	}

	tr, err := tracing.New(ctx, "balance-gateway", cfg.TracingEndpoint)
	if err != nil {
		return err
	}

	p, err := cfg.OpenProviderFunc(ctx)
	if err != nil {
		return err
	}

	srv, err := http.NewServer(http.NewServerOpts{
		Provider:       p,
		Echo:           echo.New(),
		Log:            log,
		Tracer:         tr.Tracer(),
		CORSOrigins:    cfg.CORSOrigins,
		MetricsEnabled: cfg.MetricsEnabled,
	})
	if err != nil {
		return err
	}

	api.srv = srv
	api.provider = p
	api.tracing = tr
	api.log = log
	api.httpPort = cfg.HTTPPort

	return nil
}

func (api *API) Name() string {
	return "api"
}

func (api *API) Close(ctx context.Context) {
	if err := api.srv.Shutdown(ctx); err != nil {
		api.log.Errorw("srv shutdown", "error", err)
	}

	if err := api.tracing.Shutdown(ctx); err != nil {
		api.log.Errorw("tracing shutdown", "error", err)
	}

	api.provider.Close()

	api.wg.Wait()
}

func (api *API) Start() error {
	api.log.Infow("server starting", "port", api.httpPort)

	go func() {
		if err := api.srv.Start(fmt.Sprintf(":%v", api.httpPort)); err != nethttp.ErrServerClosed {
			api.log.Errorw("http srv start", "error", err)
		}
	}()

	return nil
}
