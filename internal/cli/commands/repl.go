package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/hermanshamus/Phil/internal/cli/config"
)

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive truth-table session",
		Long: `Start an interactive session that reads one logic statement per line and
prints its truth table. Errors are reported and the prompt returns; the
session keeps per-user history across runs.`,
		RunE: runRepl,
	}
}

func runRepl(cmd *cobra.Command, _ []string) error {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	historyFile := cfg.HistoryFile
	if historyFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".phil_history")
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "phil> ",
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "Phil - Logic Statement Truth Table Generator")
	_, _ = fmt.Fprintln(out, "Operators: ~ (NOT), & (AND), | (OR), -> (IMPLIES), <-> (IFF)")
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if line == ".quit" || line == ".exit" {
				break
			}
			handleDotCommand(out, line)
			continue
		}

		t, err := buildTable(line, cfg, logger)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}

		format := resolveFormat(cfg.Output, out)
		if err := renderTruthTable(out, t, format); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		_, _ = fmt.Fprintln(out)
	}

	return nil
}

func handleDotCommand(w io.Writer, line string) {
	switch strings.ToLower(strings.Fields(line)[0]) {
	case ".help":
		printReplHelp(w)
	case ".ops":
		printOperators(w)
	default:
		_, _ = fmt.Fprintf(w, "Unknown command %s (try .help)\n", line)
	}
}

func printReplHelp(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Enter a logic statement to print its truth table.")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Commands:")
	_, _ = fmt.Fprintln(w, "  .help    Show this help")
	_, _ = fmt.Fprintln(w, "  .ops     Show the operator reference")
	_, _ = fmt.Fprintln(w, "  .quit    Exit the session (.exit works too)")
}
