package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hermanshamus/Phil/internal/cli/config"
)

// initFileConfig mirrors config.Config with yaml tags matching the koanf
// keys, so the written file round-trips through the loader.
type initFileConfig struct {
	Output       string `yaml:"output"`
	MaxVariables int    `yaml:"max_variables"`
	Explain      bool   `yaml:"explain"`
	HistoryFile  string `yaml:"history_file"`
}

const initFileHeader = `# phil configuration
# Precedence: flags > PHIL_* environment variables > this file > defaults.
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default phil.yaml configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
				if err := os.MkdirAll(dir, 0750); err != nil {
					return fmt.Errorf("failed to create directory %s: %w", dir, err)
				}
			}

			configPath := filepath.Join(dir, "phil.yaml")
			if _, err := os.Stat(configPath); err == nil && !force {
				return fmt.Errorf("phil.yaml already exists. Use --force to overwrite")
			}

			data, err := yaml.Marshal(initFileConfig{
				Output:       config.DefaultOutput,
				MaxVariables: config.DefaultMaxVariables,
			})
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}

			if err := os.WriteFile(configPath, append([]byte(initFileHeader), data...), 0600); err != nil {
				return fmt.Errorf("failed to write %s: %w", configPath, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing phil.yaml")

	return cmd
}
