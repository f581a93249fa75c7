package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalConnectives(t *testing.T) {
	p := &Var{Name: "p"}
	q := &Var{Name: "q"}

	tests := []struct {
		name string
		expr Expr
		want map[[2]bool]bool // {p, q} -> result
	}{
		{
			name: "and",
			expr: &And{Left: p, Right: q},
			want: map[[2]bool]bool{
				{false, false}: false, {false, true}: false,
				{true, false}: false, {true, true}: true,
			},
		},
		{
			name: "or",
			expr: &Or{Left: p, Right: q},
			want: map[[2]bool]bool{
				{false, false}: false, {false, true}: true,
				{true, false}: true, {true, true}: true,
			},
		},
		{
			name: "implies is false only for true antecedent and false consequent",
			expr: &Implies{Left: p, Right: q},
			want: map[[2]bool]bool{
				{false, false}: true, {false, true}: true,
				{true, false}: false, {true, true}: true,
			},
		},
		{
			name: "iff is agreement",
			expr: &Iff{Left: p, Right: q},
			want: map[[2]bool]bool{
				{false, false}: true, {false, true}: false,
				{true, false}: false, {true, true}: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for input, want := range tt.want {
				env := Assignment{"p": input[0], "q": input[1]}
				got, err := tt.expr.Eval(env)
				require.NoError(t, err)
				assert.Equal(t, want, got, "p=%v q=%v", input[0], input[1])
			}
		})
	}
}

func TestEvalDoubleNegation(t *testing.T) {
	p := &Var{Name: "p"}
	doubled := &Not{Operand: &Not{Operand: p}}

	for _, val := range []bool{false, true} {
		env := Assignment{"p": val}
		got, err := doubled.Eval(env)
		require.NoError(t, err)
		assert.Equal(t, val, got)
	}
}

func TestEvalUnboundVariable(t *testing.T) {
	expr := &And{Left: &Var{Name: "p"}, Right: &Var{Name: "q"}}

	// The right operand is checked even when the left is false.
	_, err := expr.Eval(Assignment{"p": false})
	require.Error(t, err)

	var unbound *UnboundVariableError
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "q", unbound.Name)
}

func TestRendering(t *testing.T) {
	p := &Var{Name: "p"}
	q := &Var{Name: "q"}

	tests := []struct {
		expr Expr
		want string
	}{
		{p, "p"},
		{&Not{Operand: p}, "~p"},
		{&And{Left: p, Right: q}, "(p & q)"},
		{&Or{Left: p, Right: q}, "(p | q)"},
		{&Implies{Left: p, Right: q}, "(p -> q)"},
		{&Iff{Left: p, Right: q}, "(p <-> q)"},
		{&Not{Operand: &And{Left: p, Right: q}}, "~(p & q)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.expr.String())
	}
}

func TestVariables(t *testing.T) {
	// Duplicates collapse, order is sorted, unions span formulas.
	a := &Implies{Left: &Var{Name: "q"}, Right: &Var{Name: "p"}}
	b := &And{Left: &Var{Name: "p"}, Right: &Var{Name: "z"}}

	assert.Equal(t, []string{"p", "q"}, Variables(a))
	assert.Equal(t, []string{"p", "q", "z"}, Variables(a, b))
}

func TestConjoin(t *testing.T) {
	p := &Var{Name: "p"}
	q := &Var{Name: "q"}
	r := &Var{Name: "r"}

	assert.Nil(t, Conjoin(nil))
	single := Conjoin([]Expr{p})
	assert.True(t, single == Expr(p), "single-formula conjunction is the formula itself")
	assert.Equal(t, "((p & q) & r)", Conjoin([]Expr{p, q, r}).String())
}
