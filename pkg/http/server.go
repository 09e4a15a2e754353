package http

import (
	"context"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"

	"github.com/ethgateway/balance-gateway/pkg/provider"

	echo "github.com/labstack/echo/v4"
)

type Server struct {
	provider       provider.BalanceProvider
	echo           *echo.Echo
	log            *zap.SugaredLogger
	tracer         trace.Tracer
	metricsEnabled bool
	registry       *prometheus.Registry
}

type NewServerOpts struct {
	Provider    provider.BalanceProvider
	Echo        *echo.Echo
	Log         *zap.SugaredLogger
	Tracer      trace.Tracer
	CORSOrigins []string
	// MetricsEnabled turns on the Prometheus middleware and the /metrics
	// exposition endpoint.
	MetricsEnabled bool
	// PromRegistry scopes the per-route HTTP metrics. Nil uses the process
	// default registry.
	PromRegistry *prometheus.Registry
}

func (opts NewServerOpts) Validate() error {
	if opts.Echo == nil {
		return ErrNoHTTPFramework
	}

	if opts.Provider == nil {
		return ErrNoBalanceProvider
	}

	if opts.Log == nil {
		return ErrNoLogger
	}

	return nil
}

func NewServer(opts NewServerOpts) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	tracer := opts.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("balance-gateway")
	}

	srv := &Server{
		provider:       opts.Provider,
		echo:           opts.Echo,
		log:            opts.Log,
		tracer:         tracer,
		metricsEnabled: opts.MetricsEnabled,
		registry:       opts.PromRegistry,
	}

	corsOrigins := opts.CORSOrigins
	if corsOrigins == nil {
		corsOrigins = []string{"*"}
	}

	srv.configureMiddleware(corsOrigins)
	srv.configureRoutes()

	return srv, nil
}

// Start starts the HTTP server
func (srv *Server) Start(address string) error {
	return srv.echo.Start(address)
}

// Shutdown shuts down the HTTP server
func (srv *Server) Shutdown(ctx context.Context) error {
	return srv.echo.Shutdown(ctx)
}

// ServeHTTP implements the `http.Handler` interface which serves HTTP requests
func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	srv.echo.ServeHTTP(w, r)
}

// Health endpoint for liveness probes. Always succeeds, says nothing about
// the upstream node.
func (srv *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (srv *Server) returnError(c echo.Context, statusCode int, err error) error {
	return c.JSON(statusCode, map[string]string{"error": err.Error()})
}

func LogSkipper(c echo.Context) bool {
	switch c.Request().URL.Path {
	case "/metrics":
		return true
	default:
		return false
	}
}

func (srv *Server) configureMiddleware(corsOrigins []string) {
	// CORS wraps everything else so even unmatched routes answer preflights.
	srv.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	srv.echo.Use(middleware.RequestID())

	srv.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		Skipper:     LogSkipper,
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogLatency:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Status >= http.StatusBadRequest {
				srv.log.Errorw("request failed",
					"method", v.Method,
					"uri", v.URI,
					"remote_ip", v.RemoteIP,
					"status", v.Status,
					"latency", v.Latency,
				)
			} else {
				srv.log.Infow("request",
					"method", v.Method,
					"uri", v.URI,
					"remote_ip", v.RemoteIP,
					"status", v.Status,
					"latency", v.Latency,
				)
			}

			return nil
		},
	}))

	if srv.metricsEnabled {
		promCfg := echoprometheus.MiddlewareConfig{Subsystem: "balance_gateway"}
		if srv.registry != nil {
			promCfg.Registerer = srv.registry
		}

		srv.echo.Use(echoprometheus.NewMiddlewareWithConfig(promCfg))
	}
}
