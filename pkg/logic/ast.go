// Package logic defines the AST for propositional formulas along with
// evaluation, variable collection, and canonical rendering.
//
// Nodes form a strict tree: every node owns its operands exclusively and is
// never mutated after construction. All node types are pointers, so node
// identity is pointer identity; two syntactically identical but separately
// parsed sub-trees are distinct nodes.
package logic

import (
	"fmt"
	"sort"
)

// Assignment maps variable names to boolean values for one truth-table row.
type Assignment map[string]bool

// Expr is a propositional formula.
type Expr interface {
	// Eval evaluates the formula under the given assignment. A variable
	// missing from the assignment yields an *UnboundVariableError.
	Eval(env Assignment) (bool, error)

	// Vars adds every variable name reachable from this node to set.
	Vars(set map[string]struct{})

	// String renders the formula in fully parenthesized canonical form,
	// e.g. ((p & q) -> ~r). Re-parsing a rendering yields an equivalent tree.
	String() string
}

// UnboundVariableError reports evaluation against an assignment that is
// missing one of the formula's variables.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("unbound variable %q", e.Name)
}

// Var is a leaf node referencing a variable by name.
type Var struct {
	Name string
}

// Eval looks the variable up in the assignment.
func (v *Var) Eval(env Assignment) (bool, error) {
	val, ok := env[v.Name]
	if !ok {
		return false, &UnboundVariableError{Name: v.Name}
	}
	return val, nil
}

// Vars adds the variable's name to set.
func (v *Var) Vars(set map[string]struct{}) {
	set[v.Name] = struct{}{}
}

func (v *Var) String() string {
	return v.Name
}

// Not is logical negation.
type Not struct {
	Operand Expr
}

// Eval returns the negation of the operand.
func (n *Not) Eval(env Assignment) (bool, error) {
	val, err := n.Operand.Eval(env)
	if err != nil {
		return false, err
	}
	return !val, nil
}

// Vars adds the operand's variables to set.
func (n *Not) Vars(set map[string]struct{}) {
	n.Operand.Vars(set)
}

func (n *Not) String() string {
	return "~" + n.Operand.String()
}

// And is logical conjunction.
type And struct {
	Left, Right Expr
}

// Eval returns Left AND Right. Both operands are always evaluated so that
// unbound-variable errors surface regardless of the left operand's value.
func (a *And) Eval(env Assignment) (bool, error) {
	l, r, err := evalBoth(a.Left, a.Right, env)
	if err != nil {
		return false, err
	}
	return l && r, nil
}

// Vars adds both operands' variables to set.
func (a *And) Vars(set map[string]struct{}) {
	a.Left.Vars(set)
	a.Right.Vars(set)
}

func (a *And) String() string {
	return fmt.Sprintf("(%s & %s)", a.Left, a.Right)
}

// Or is logical disjunction.
type Or struct {
	Left, Right Expr
}

// Eval returns Left OR Right.
func (o *Or) Eval(env Assignment) (bool, error) {
	l, r, err := evalBoth(o.Left, o.Right, env)
	if err != nil {
		return false, err
	}
	return l || r, nil
}

// Vars adds both operands' variables to set.
func (o *Or) Vars(set map[string]struct{}) {
	o.Left.Vars(set)
	o.Right.Vars(set)
}

func (o *Or) String() string {
	return fmt.Sprintf("(%s | %s)", o.Left, o.Right)
}

// Implies is material implication: (l -> r) == (~l | r).
type Implies struct {
	Left, Right Expr
}

// Eval returns false exactly when Left is true and Right is false.
func (i *Implies) Eval(env Assignment) (bool, error) {
	l, r, err := evalBoth(i.Left, i.Right, env)
	if err != nil {
		return false, err
	}
	return !l || r, nil
}

// Vars adds both operands' variables to set.
func (i *Implies) Vars(set map[string]struct{}) {
	i.Left.Vars(set)
	i.Right.Vars(set)
}

func (i *Implies) String() string {
	return fmt.Sprintf("(%s -> %s)", i.Left, i.Right)
}

// Iff is the biconditional: true when both sides agree.
type Iff struct {
	Left, Right Expr
}

// Eval returns true when Left and Right evaluate to the same value.
func (i *Iff) Eval(env Assignment) (bool, error) {
	l, r, err := evalBoth(i.Left, i.Right, env)
	if err != nil {
		return false, err
	}
	return l == r, nil
}

// Vars adds both operands' variables to set.
func (i *Iff) Vars(set map[string]struct{}) {
	i.Left.Vars(set)
	i.Right.Vars(set)
}

func (i *Iff) String() string {
	return fmt.Sprintf("(%s <-> %s)", i.Left, i.Right)
}

// evalBoth evaluates both operands of a binary node.
func evalBoth(left, right Expr, env Assignment) (bool, bool, error) {
	l, err := left.Eval(env)
	if err != nil {
		return false, false, err
	}
	r, err := right.Eval(env)
	if err != nil {
		return false, false, err
	}
	return l, r, nil
}

// Variables returns the sorted union of variable names across all formulas.
func Variables(exprs ...Expr) []string {
	set := make(map[string]struct{})
	for _, e := range exprs {
		e.Vars(set)
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Conjoin folds the formulas into a single left-nested conjunction:
// Conjoin(a, b, c) == ((a & b) & c). It returns nil for an empty slice.
func Conjoin(exprs []Expr) Expr {
	if len(exprs) == 0 {
		return nil
	}
	result := exprs[0]
	for _, e := range exprs[1:] {
		result = &And{Left: result, Right: e}
	}
	return result
}
