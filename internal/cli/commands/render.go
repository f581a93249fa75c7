package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/term"

	"github.com/hermanshamus/Phil/pkg/truthtable"
)

// allTrueHeader is the conjunction column's name in multi-premise tables.
const allTrueHeader = "ALL TRUE"

// resolveFormat maps "auto" to a concrete format: table on a TTY, markdown
// otherwise (pipes, redirects, tests).
func resolveFormat(format string, w io.Writer) string {
	if format != "" && format != "auto" {
		return format
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "table"
	}
	return "markdown"
}

// renderTruthTable writes the table in the requested format.
func renderTruthTable(w io.Writer, t *truthtable.Table, format string) error {
	switch format {
	case "json":
		return renderJSON(w, t)
	case "csv":
		return renderCSV(w, t)
	case "md", "markdown":
		return renderMarkdown(w, t)
	case "text":
		return renderText(w, t)
	default:
		return renderPretty(w, t)
	}
}

// headers returns the full header row: variables, then formula columns, then
// the conjunction column in multi-premise mode.
func headers(t *truthtable.Table) []string {
	hs := make([]string, 0, len(t.Variables)+len(t.Columns)+1)
	hs = append(hs, t.Variables...)
	for _, col := range t.Columns {
		hs = append(hs, col.Name)
	}
	if t.HasAllTrue {
		hs = append(hs, allTrueHeader)
	}
	return hs
}

// cells returns one row's cell values as T/F strings, aligned with headers.
func cells(t *truthtable.Table, row truthtable.Row) []string {
	cs := make([]string, 0, len(t.Variables)+len(row.Values)+1)
	for _, name := range t.Variables {
		cs = append(cs, tf(row.Assignment[name]))
	}
	for _, v := range row.Values {
		cs = append(cs, tf(v))
	}
	if t.HasAllTrue {
		cs = append(cs, tf(row.AllTrue))
	}
	return cs
}

func tf(v bool) string {
	if v {
		return "T"
	}
	return "F"
}

func renderPretty(w io.Writer, t *truthtable.Table) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	// Formula headers are case-sensitive; p and P are different variables.
	tw.Style().Format.Header = text.FormatDefault

	hs := headers(t)
	headerRow := make(table.Row, len(hs))
	for i, h := range hs {
		headerRow[i] = h
	}
	tw.AppendHeader(headerRow)

	for _, r := range t.Rows {
		cs := cells(t, r)
		row := make(table.Row, len(cs))
		for i, c := range cs {
			row[i] = c
		}
		tw.AppendRow(row)
	}

	tw.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(t.Rows))
	return nil
}

// renderText writes the classic plain format: every column padded to a
// shared width, cells centered and joined with " | ", a dashed rule under
// the header.
func renderText(w io.Writer, t *truthtable.Table) error {
	hs := headers(t)

	colWidth := 0
	for _, h := range hs {
		if len(h) > colWidth {
			colWidth = len(h)
		}
	}
	colWidth += 2

	headerCells := make([]string, len(hs))
	for i, h := range hs {
		headerCells[i] = center(h, colWidth)
	}
	headerLine := strings.Join(headerCells, " | ")
	_, _ = fmt.Fprintln(w, headerLine)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(headerLine)))

	for _, r := range t.Rows {
		cs := cells(t, r)
		for i, c := range cs {
			cs[i] = center(c, colWidth)
		}
		_, _ = fmt.Fprintln(w, strings.Join(cs, " | "))
	}
	return nil
}

// center pads s with spaces to width, splitting the padding evenly.
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func renderMarkdown(w io.Writer, t *truthtable.Table) error {
	hs := headers(t)
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(hs, " | "))

	seps := make([]string, len(hs))
	for i := range seps {
		seps[i] = "---"
	}
	_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(seps, " | "))

	for _, r := range t.Rows {
		_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(cells(t, r), " | "))
	}
	return nil
}

// jsonTable is the machine-readable shape: booleans rather than T/F cells,
// rows aligned with headers.
type jsonTable struct {
	Headers []string `json:"headers"`
	Rows    [][]bool `json:"rows"`
}

func renderJSON(w io.Writer, t *truthtable.Table) error {
	out := jsonTable{Headers: headers(t)}
	for _, r := range t.Rows {
		row := make([]bool, 0, len(out.Headers))
		for _, name := range t.Variables {
			row = append(row, r.Assignment[name])
		}
		row = append(row, r.Values...)
		if t.HasAllTrue {
			row = append(row, r.AllTrue)
		}
		out.Rows = append(out.Rows, row)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderCSV(w io.Writer, t *truthtable.Table) error {
	hs := headers(t)
	escaped := make([]string, len(hs))
	for i, h := range hs {
		escaped[i] = escapeCSV(h)
	}
	_, _ = fmt.Fprintln(w, strings.Join(escaped, ","))

	for _, r := range t.Rows {
		_, _ = fmt.Fprintln(w, strings.Join(cells(t, r), ","))
	}
	return nil
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
