// Package commands implements the phil subcommands.
package commands

import (
	"os"
	"strconv"

	"github.com/hermanshamus/Phil/internal/cli/config"
)

// getConfig returns the current configuration. It uses the loaded config if
// available, otherwise falls back to environment variables with defaults so
// commands keep working when invoked outside the root command (e.g. tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	maxVars := config.DefaultMaxVariables
	if v := os.Getenv("PHIL_MAX_VARIABLES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			maxVars = n
		}
	}

	return &config.Config{
		Output:       getEnvOrDefault("PHIL_OUTPUT", config.DefaultOutput),
		MaxVariables: maxVars,
		Explain:      os.Getenv("PHIL_EXPLAIN") == "true",
		Verbose:      os.Getenv("PHIL_VERBOSE") == "true",
		HistoryFile:  os.Getenv("PHIL_HISTORY_FILE"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
