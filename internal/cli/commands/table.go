package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/hermanshamus/Phil/internal/cli/config"
)

// NewTableCommand creates the table command.
func NewTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "table <statement>",
		Aliases: []string{"eval"},
		Short:   "Render the truth table for a logic statement",
		Long: `Parse a propositional logic statement and render its complete truth
table, including a column for every intermediate sub-expression.

Operators: ~ (NOT), & (AND), | (OR), -> (IMPLIES), <-> (IFF).

A statement may hold several premises separated by commas, and an optional
conclusion after "therefore" or "|-". Multi-premise tables gain an ALL TRUE
column that is the conjunction of the premises.`,
		Example: `  # Single formula with sub-expression columns
  phil table "(p & q) | ~p"

  # Premises and a conclusion
  phil table "p -> q, p therefore q"

  # Machine-readable output
  phil table -o json "p <-> q"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			logger := config.GetLogger(cmd.Context())

			statement := strings.Join(args, " ")
			t, err := buildTable(statement, cfg, logger)
			if err != nil {
				return err
			}

			format := resolveFormat(cfg.Output, cmd.OutOrStdout())
			return renderTruthTable(cmd.OutOrStdout(), t, format)
		},
	}
}
