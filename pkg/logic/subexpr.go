package logic

// Subexpressions walks the formula and returns every non-leaf node in
// post-order, so each node appears after all of its descendants and the root
// comes last. Bare Var leaves are excluded. Nodes are de-duplicated by
// identity, not by structural equality: the result is the truth table's
// sub-expression column order and must be reproducible for the same tree.
func Subexpressions(root Expr) []Expr {
	var collected []Expr
	seen := make(map[Expr]struct{})

	var walk func(Expr)
	walk = func(e Expr) {
		if _, ok := seen[e]; ok {
			return
		}
		switch n := e.(type) {
		case *Var:
			return
		case *Not:
			walk(n.Operand)
		case *And:
			walk(n.Left)
			walk(n.Right)
		case *Or:
			walk(n.Left)
			walk(n.Right)
		case *Implies:
			walk(n.Left)
			walk(n.Right)
		case *Iff:
			walk(n.Left)
			walk(n.Right)
		}
		seen[e] = struct{}{}
		collected = append(collected, e)
	}

	walk(root)
	return collected
}
