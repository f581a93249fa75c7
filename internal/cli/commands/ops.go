package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewOpsCommand creates the ops command.
func NewOpsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "Show the operator and separator reference",
		Run: func(cmd *cobra.Command, _ []string) {
			printOperators(cmd.OutOrStdout())
		},
	}
}

// printOperators writes the operator reference, shared with the REPL's .ops.
func printOperators(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Operators (loosest-binding first):")
	_, _ = fmt.Fprintln(w, "  <->   IFF (biconditional)")
	_, _ = fmt.Fprintln(w, "  ->    IMPLIES (material implication)")
	_, _ = fmt.Fprintln(w, "  |     OR (disjunction)")
	_, _ = fmt.Fprintln(w, "  &     AND (conjunction)")
	_, _ = fmt.Fprintln(w, "  ~     NOT (negation, binds tightest)")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Statement separators (outside parentheses only):")
	_, _ = fmt.Fprintln(w, "  ,                  between premises")
	_, _ = fmt.Fprintln(w, "  therefore or |-    before the conclusion")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Variables match [A-Za-z][A-Za-z0-9_]*, e.g. p, q, rains_today.")
}
