package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermanshamus/Phil/pkg/logic"
	"github.com/hermanshamus/Phil/pkg/parser"
	"github.com/hermanshamus/Phil/pkg/truthtable"
)

func impliesTable(t *testing.T) *truthtable.Table {
	t.Helper()
	expr, err := parser.Parse("p -> q")
	require.NoError(t, err)
	tbl, err := truthtable.Generate([]logic.Expr{expr}, nil, truthtable.Options{})
	require.NoError(t, err)
	return tbl
}

func TestResolveFormat(t *testing.T) {
	var buf bytes.Buffer

	// Explicit formats pass through untouched.
	assert.Equal(t, "csv", resolveFormat("csv", &buf))
	assert.Equal(t, "json", resolveFormat("json", &buf))

	// A non-file writer is not a TTY, so auto falls back to markdown.
	assert.Equal(t, "markdown", resolveFormat("auto", &buf))
	assert.Equal(t, "markdown", resolveFormat("", &buf))
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTruthTable(&buf, impliesTable(t), "csv"))

	want := "p,q,(p -> q)\n" +
		"F,F,T\n" +
		"F,T,T\n" +
		"T,F,F\n" +
		"T,T,T\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTruthTable(&buf, impliesTable(t), "markdown"))

	want := "| p | q | (p -> q) |\n" +
		"| --- | --- | --- |\n" +
		"| F | F | T |\n" +
		"| F | T | T |\n" +
		"| T | F | F |\n" +
		"| T | T | T |\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTruthTable(&buf, impliesTable(t), "json"))

	var out struct {
		Headers []string `json:"headers"`
		Rows    [][]bool `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, []string{"p", "q", "(p -> q)"}, out.Headers)
	require.Len(t, out.Rows, 4)
	assert.Equal(t, []bool{false, false, true}, out.Rows[0])
	assert.Equal(t, []bool{true, false, false}, out.Rows[2])
}

func TestRenderText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTruthTable(&buf, impliesTable(t), "text"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6) // header, rule, 4 rows

	header := lines[0]
	assert.Contains(t, header, "p")
	assert.Contains(t, header, "(p -> q)")
	assert.Equal(t, strings.Repeat("-", len(header)), lines[1])

	// Every row keeps the shared column layout.
	for _, line := range lines[2:] {
		assert.Len(t, line, len(header))
		assert.Equal(t, 2, strings.Count(line, " | "))
	}
}

func TestRenderTableIncludesRowCount(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderTruthTable(&buf, impliesTable(t), "table"))
	assert.Contains(t, buf.String(), "(4 rows)")
	assert.Contains(t, buf.String(), "(p -> q)")
}

func TestRenderAllTrueColumn(t *testing.T) {
	p, err := parser.Parse("p")
	require.NoError(t, err)
	q, err := parser.Parse("q")
	require.NoError(t, err)

	tbl, err := truthtable.Generate([]logic.Expr{p, q}, nil, truthtable.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderTruthTable(&buf, tbl, "csv"))

	want := "p,q,p,q,ALL TRUE\n" +
		"F,F,F,F,F\n" +
		"F,T,F,T,F\n" +
		"T,F,T,F,F\n" +
		"T,T,T,T,T\n"
	assert.Equal(t, want, buf.String())
}

func TestCenter(t *testing.T) {
	assert.Equal(t, "  p  ", center("p", 5))
	assert.Equal(t, " p  ", center("p", 4))
	assert.Equal(t, "p", center("p", 1))
	assert.Equal(t, "long", center("long", 2))
}
