package http

import "github.com/labstack/echo-contrib/echoprometheus"

func (srv *Server) configureRoutes() {
	srv.echo.GET("/health", srv.Health)
	srv.echo.GET("/balance/:address", srv.GetBalance)

	if !srv.metricsEnabled {
		return
	}

	if srv.registry != nil {
		srv.echo.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: srv.registry,
		}))
	} else {
		srv.echo.GET("/metrics", echoprometheus.NewHandler())
	}
}
