package commands

import (
	"fmt"
	"log/slog"

	"github.com/hermanshamus/Phil/internal/cli/config"
	"github.com/hermanshamus/Phil/pkg/logic"
	"github.com/hermanshamus/Phil/pkg/parser"
	"github.com/hermanshamus/Phil/pkg/truthtable"
)

// buildTable runs the full pipeline: split the raw statement into premises
// and an optional conclusion, parse each formula, and generate the table.
func buildTable(raw string, cfg *config.Config, logger *slog.Logger) (*truthtable.Table, error) {
	stmt, err := parser.SplitStatement(raw)
	if err != nil {
		return nil, err
	}
	if len(stmt.Premises) == 0 {
		return nil, fmt.Errorf("empty statement")
	}

	single := len(stmt.Premises) == 1 && !stmt.HasConclusion

	premises := make([]logic.Expr, 0, len(stmt.Premises))
	for i, src := range stmt.Premises {
		e, err := parser.Parse(src)
		if err != nil {
			if single {
				return nil, err
			}
			return nil, fmt.Errorf("premise %d: %w", i+1, err)
		}
		premises = append(premises, e)
	}

	var conclusion logic.Expr
	if stmt.HasConclusion {
		conclusion, err = parser.Parse(stmt.Conclusion)
		if err != nil {
			return nil, fmt.Errorf("conclusion: %w", err)
		}
	}

	logger.Debug("parsed statement",
		"premises", len(premises),
		"conclusion", stmt.HasConclusion,
		"explain", cfg.Explain)

	return truthtable.Generate(premises, conclusion, truthtable.Options{
		MaxVariables:   cfg.MaxVariables,
		Subexpressions: cfg.Explain,
	})
}
