package http

import "github.com/cyberhorsey/errors"

var (
	ErrNoHTTPFramework = errors.Validation.NewWithKeyAndDetail(
		"ERR_NO_HTTP_ENGINE",
		"HTTP framework required",
	)
	ErrNoBalanceProvider = errors.Validation.NewWithKeyAndDetail(
		"ERR_NO_BALANCE_PROVIDER",
		"balance provider required",
	)
	ErrNoLogger = errors.Validation.NewWithKeyAndDetail(
		"ERR_NO_LOGGER",
		"logger required",
	)
)
