package flags

import (
	"github.com/urfave/cli/v2"
)

var (
	commonCategory = "COMMON"
	apiCategory    = "API"
)

var (
	LogJSON = &cli.BoolFlag{
		Name:     "log.json",
		Usage:    "Format logs with JSON",
		Category: commonCategory,
		EnvVars:  []string{"LOG_JSON"},
	}
	LogDebug = &cli.BoolFlag{
		Name:     "log.debug",
		Usage:    "Enable debug logging",
		Category: commonCategory,
		EnvVars:  []string{"LOG_DEBUG"},
	}
)

// All common flags.
var CommonFlags = []cli.Flag{
	LogJSON,
	LogDebug,
}

// MergeFlags merges the given flag slices.
func MergeFlags(groups ...[]cli.Flag) []cli.Flag {
	var merged []cli.Flag
	for _, group := range groups {
		merged = append(merged, group...)
	}

	return merged
}
