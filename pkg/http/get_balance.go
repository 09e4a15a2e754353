package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ethgateway/balance-gateway/internal/metrics"
	"github.com/ethgateway/balance-gateway/pkg/eth"
	"github.com/ethgateway/balance-gateway/pkg/types"
)

// errInternal is the only error detail callers ever see. Both invalid input
// and upstream failures collapse into it, keeping the 500 body opaque.
var errInternal = errors.New("internal server error")

func (srv *Server) GetBalance(c echo.Context) error {
	ctx, span := srv.tracer.Start(c.Request().Context(), "get_balance")
	defer span.End()

	raw := c.Param("address")

	srv.log.Infow("parsing address", "address", raw)

	address, err := eth.ParseAddress(raw)
	if err != nil {
		srv.log.Errorw("failed to parse address", "address", raw, "error", err)
		metrics.BalanceLookups.WithLabelValues(metrics.LookupInvalidAddress).Inc()

		return srv.returnError(c, http.StatusInternalServerError, errInternal)
	}

	srv.log.Infow("querying balance", "address", address.Hex())

	// Request context carries through so a disconnected client cancels the
	// upstream call instead of leaving it hanging.
	balance, err := srv.provider.BalanceAt(ctx, address)
	if err != nil {
		srv.log.Errorw("failed to query balance", "address", address.Hex(), "error", err)
		metrics.BalanceLookups.WithLabelValues(metrics.LookupUpstreamError).Inc()
		metrics.UpstreamErrors.Inc()

		return srv.returnError(c, http.StatusInternalServerError, errInternal)
	}

	srv.log.Infow("fetched balance", "address", address.Hex(), "balance", balance.String())
	span.AddEvent("fetched balance", trace.WithAttributes(
		attribute.String("balance", balance.String()),
	))
	metrics.BalanceLookups.WithLabelValues(metrics.LookupOK).Inc()

	return c.JSON(http.StatusOK, &types.BalanceResponse{Balance: balance.String()})
}
