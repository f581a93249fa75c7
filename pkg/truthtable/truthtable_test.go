package truthtable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermanshamus/Phil/pkg/logic"
	"github.com/hermanshamus/Phil/pkg/parser"
)

func mustParse(t *testing.T, input string) logic.Expr {
	t.Helper()
	expr, err := parser.Parse(input)
	require.NoError(t, err)
	return expr
}

func singleTable(t *testing.T, input string, opts Options) *Table {
	t.Helper()
	tbl, err := Generate([]logic.Expr{mustParse(t, input)}, nil, opts)
	require.NoError(t, err)
	return tbl
}

// columnValues extracts one column's value per row, in row order.
func columnValues(tbl *Table, idx int) []bool {
	vals := make([]bool, len(tbl.Rows))
	for i, r := range tbl.Rows {
		vals[i] = r.Values[idx]
	}
	return vals
}

func TestGenerateRowOrder(t *testing.T) {
	tbl := singleTable(t, "p -> q", Options{})

	require.Equal(t, []string{"p", "q"}, tbl.Variables)
	require.Len(t, tbl.Rows, 4)

	// Binary counting: first variable is the most significant bit,
	// false before true.
	want := []logic.Assignment{
		{"p": false, "q": false},
		{"p": false, "q": true},
		{"p": true, "q": false},
		{"p": true, "q": true},
	}
	for i, r := range tbl.Rows {
		assert.Equal(t, want[i], r.Assignment, "row %d", i)
	}
}

func TestGenerateImplies(t *testing.T) {
	tbl := singleTable(t, "p -> q", Options{})

	require.Len(t, tbl.Columns, 1)
	assert.Equal(t, "(p -> q)", tbl.Columns[0].Name)
	assert.Equal(t, []bool{true, true, false, true}, columnValues(tbl, 0))
	assert.False(t, tbl.HasAllTrue)
}

func TestGenerateIff(t *testing.T) {
	tbl := singleTable(t, "p <-> q", Options{})

	require.Len(t, tbl.Columns, 1)
	assert.Equal(t, []bool{true, false, false, true}, columnValues(tbl, 0))
}

func TestGenerateSubexpressionColumns(t *testing.T) {
	tbl := singleTable(t, "(p & q) | ~p", Options{})

	names := make([]string, len(tbl.Columns))
	for i, c := range tbl.Columns {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"(p & q)", "~p", "((p & q) | ~p)"}, names)
}

func TestGenerateRowCountAndDistinctness(t *testing.T) {
	tbl := singleTable(t, "(a & b) | c", Options{})

	require.Equal(t, []string{"a", "b", "c"}, tbl.Variables)
	require.Len(t, tbl.Rows, 8)

	seen := make(map[string]bool)
	for _, r := range tbl.Rows {
		key := fmt.Sprintf("%v%v%v", r.Assignment["a"], r.Assignment["b"], r.Assignment["c"])
		assert.False(t, seen[key], "duplicate assignment %s", key)
		seen[key] = true
	}
}

func TestGenerateMultiPremise(t *testing.T) {
	premises := []logic.Expr{mustParse(t, "p -> q"), mustParse(t, "p")}
	conclusion := mustParse(t, "q")

	tbl, err := Generate(premises, conclusion, Options{})
	require.NoError(t, err)

	names := make([]string, len(tbl.Columns))
	for i, c := range tbl.Columns {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"(p -> q)", "p", "q"}, names)
	require.True(t, tbl.HasAllTrue)

	// ALL TRUE is the conjunction of the premises only; rows are
	// FF, FT, TF, TT over (p, q).
	allTrue := make([]bool, len(tbl.Rows))
	for i, r := range tbl.Rows {
		allTrue[i] = r.AllTrue
	}
	assert.Equal(t, []bool{false, false, false, true}, allTrue)
}

func TestGenerateSinglePremiseWithConclusionHasNoAllTrue(t *testing.T) {
	tbl, err := Generate([]logic.Expr{mustParse(t, "p")}, mustParse(t, "q"), Options{})
	require.NoError(t, err)
	assert.False(t, tbl.HasAllTrue)
	require.Len(t, tbl.Columns, 2)
	assert.Equal(t, "p", tbl.Columns[0].Name)
	assert.Equal(t, "q", tbl.Columns[1].Name)
}

func TestGenerateExplainExpandsMultiPremiseColumns(t *testing.T) {
	premises := []logic.Expr{mustParse(t, "p & q"), mustParse(t, "~p")}

	tbl, err := Generate(premises, nil, Options{Subexpressions: true})
	require.NoError(t, err)

	names := make([]string, len(tbl.Columns))
	for i, c := range tbl.Columns {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"(p & q)", "~p"}, names)

	// A deeper premise contributes all of its intermediate nodes.
	tbl, err = Generate([]logic.Expr{mustParse(t, "(p & q) | r"), mustParse(t, "p")}, nil, Options{Subexpressions: true})
	require.NoError(t, err)
	names = names[:0]
	for _, c := range tbl.Columns {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"(p & q)", "((p & q) | r)", "p"}, names)
}

func TestGenerateTooManyVariables(t *testing.T) {
	_, err := Generate([]logic.Expr{mustParse(t, "(a & b) | c")}, nil, Options{MaxVariables: 2})
	require.Error(t, err)

	var tooMany *TooManyVariablesError
	require.ErrorAs(t, err, &tooMany)
	assert.Equal(t, 3, tooMany.Count)
	assert.Equal(t, 2, tooMany.Limit)
}

func TestGenerateNoPremises(t *testing.T) {
	_, err := Generate(nil, nil, Options{})
	require.Error(t, err)
}

// constExpr is a variable-free formula; the grammar cannot produce one, but
// the engine contract still promises exactly one row for zero variables.
type constExpr bool

func (c constExpr) Eval(logic.Assignment) (bool, error) { return bool(c), nil }
func (c constExpr) Vars(map[string]struct{})            {}
func (c constExpr) String() string {
	if c {
		return "T"
	}
	return "F"
}

func TestGenerateZeroVariables(t *testing.T) {
	tbl, err := Generate([]logic.Expr{constExpr(true)}, nil, Options{})
	require.NoError(t, err)

	assert.Empty(t, tbl.Variables)
	require.Len(t, tbl.Rows, 1)
	require.Len(t, tbl.Rows[0].Values, 1)
	assert.True(t, tbl.Rows[0].Values[0])
}
