// Package config provides configuration management for the Phil CLI.
//
// Configuration is layered with koanf. Precedence, highest to lowest:
// command-line flags > PHIL_* environment variables > phil.yaml > defaults.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Output selects the renderer: auto, table, text, markdown, json, csv.
	// auto picks table on a TTY and markdown otherwise.
	Output string `koanf:"output"`

	// MaxVariables caps the number of distinct variables per statement.
	// Rows grow as 2^n, so this is the only real resource bound.
	MaxVariables int `koanf:"max_variables"`

	// Explain adds one column per intermediate sub-expression even in
	// multi-premise mode.
	Explain bool `koanf:"explain"`

	// Verbose enables debug logging on stderr.
	Verbose bool `koanf:"verbose"`

	// HistoryFile is the REPL history location. Empty means
	// $HOME/.phil_history.
	HistoryFile string `koanf:"history_file"`
}

// Default configuration values.
const (
	DefaultOutput       = "auto"
	DefaultMaxVariables = 20
)

// OutputFormats lists the accepted values for Output.
var OutputFormats = []string{"auto", "table", "text", "markdown", "json", "csv"}
