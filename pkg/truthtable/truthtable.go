// Package truthtable enumerates boolean assignments and evaluates formulas
// into structured rows. It does no printing; rendering is the CLI's job.
package truthtable

import (
	"fmt"

	"github.com/hermanshamus/Phil/pkg/logic"
)

// DefaultMaxVariables bounds table size: rows grow as 2^n in the variable
// count, so 20 variables already means 1,048,576 rows.
const DefaultMaxVariables = 20

// TooManyVariablesError reports a formula set whose variable count exceeds
// the configured limit.
type TooManyVariablesError struct {
	Count int
	Limit int
}

func (e *TooManyVariablesError) Error() string {
	return fmt.Sprintf("formula has %d variables, limit is %d (2^%d rows)", e.Count, e.Limit, e.Count)
}

// Column is one evaluated column of the table.
type Column struct {
	Name string // canonical rendering of Expr, used as the header
	Expr logic.Expr
}

// Row is the evaluation of every column under one assignment. Values is
// index-aligned with Table.Columns. AllTrue is meaningful only when the
// table's HasAllTrue is set.
type Row struct {
	Assignment logic.Assignment
	Values     []bool
	AllTrue    bool
}

// Table is a fully evaluated truth table. Row order is a total, reproducible
// function of the variable set: variables are sorted ascending and rows
// follow standard binary counting with the first variable as the most
// significant bit and false before true.
type Table struct {
	Variables  []string
	Columns    []Column
	Rows       []Row
	HasAllTrue bool
}

// Options control table generation.
type Options struct {
	// MaxVariables caps the variable count; 0 means DefaultMaxVariables.
	MaxVariables int

	// Subexpressions forces one column per intermediate sub-expression in
	// multi-premise mode. A single formula without conclusion always gets
	// sub-expression columns.
	Subexpressions bool
}

// Generate builds the truth table for the given premises and optional
// conclusion (nil for none).
//
// Column selection: a single premise with no conclusion is tabulated with
// its sub-expression columns, leaves to root. With several premises or a
// conclusion, each formula contributes its root column only (or its full
// sub-expression columns when Options.Subexpressions is set), premises
// first, conclusion last. An ALL TRUE conjunction column — the AND of the
// premise values, never the conclusion — is added when there are two or
// more premises.
func Generate(premises []logic.Expr, conclusion logic.Expr, opts Options) (*Table, error) {
	if len(premises) == 0 {
		return nil, fmt.Errorf("no premises to tabulate")
	}

	limit := opts.MaxVariables
	if limit == 0 {
		limit = DefaultMaxVariables
	}

	all := make([]logic.Expr, 0, len(premises)+1)
	all = append(all, premises...)
	if conclusion != nil {
		all = append(all, conclusion)
	}

	vars := logic.Variables(all...)
	if len(vars) > limit {
		return nil, &TooManyVariablesError{Count: len(vars), Limit: limit}
	}

	expand := opts.Subexpressions || (len(premises) == 1 && conclusion == nil)
	var columns []Column
	for _, e := range all {
		for _, sub := range columnExprs(e, expand) {
			columns = append(columns, Column{Name: sub.String(), Expr: sub})
		}
	}

	t := &Table{
		Variables:  vars,
		Columns:    columns,
		HasAllTrue: len(premises) >= 2,
	}

	n := len(vars)
	total := 1 << n // one row for the zero-variable case
	t.Rows = make([]Row, 0, total)

	for i := 0; i < total; i++ {
		env := make(logic.Assignment, n)
		for j, name := range vars {
			env[name] = (i>>(n-1-j))&1 == 1
		}

		row := Row{Assignment: env, Values: make([]bool, len(columns))}
		for c, col := range columns {
			val, err := col.Expr.Eval(env)
			if err != nil {
				return nil, err
			}
			row.Values[c] = val
		}

		if t.HasAllTrue {
			row.AllTrue = true
			for _, prem := range premises {
				val, err := prem.Eval(env)
				if err != nil {
					return nil, err
				}
				if !val {
					row.AllTrue = false
					break
				}
			}
		}

		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// columnExprs returns the column expressions contributed by one formula.
// In expanded mode a bare variable has no intermediate nodes, so the formula
// itself stands in as its only column.
func columnExprs(e logic.Expr, expand bool) []logic.Expr {
	if !expand {
		return []logic.Expr{e}
	}
	subs := logic.Subexpressions(e)
	if len(subs) == 0 {
		return []logic.Expr{e}
	}
	return subs
}
