package ast

// Equal reports whether two nodes are structurally equal, ignoring position
// metadata. Two nils are equal; nil never equals a non-nil node.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Module:
		return equalStmts(x.Body, b.(*Module).Body)
	case *FunctionDef:
		y := b.(*FunctionDef)
		if x.Name != y.Name || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if x.Args[i].Name != y.Args[i].Name {
				return false
			}
		}
		return equalStmts(x.Body, y.Body)
	case *Assign:
		y := b.(*Assign)
		return equalExprs(x.Targets, y.Targets) && Equal(x.Value, y.Value)
	case *ExprStmt:
		return Equal(x.Value, b.(*ExprStmt).Value)
	case *Return:
		return equalExpr(x.Value, b.(*Return).Value)
	case *If:
		y := b.(*If)
		return Equal(x.Test, y.Test) && equalStmts(x.Body, y.Body) && equalStmts(x.OrElse, y.OrElse)
	case *While:
		y := b.(*While)
		return Equal(x.Test, y.Test) && equalStmts(x.Body, y.Body)
	case *For:
		y := b.(*For)
		return Equal(x.Target, y.Target) && Equal(x.Iter, y.Iter) && equalStmts(x.Body, y.Body)
	case *Break, *Continue, *Pass:
		return true
	case *Try:
		y := b.(*Try)
		if len(x.Handlers) != len(y.Handlers) {
			return false
		}
		for i := range x.Handlers {
			h, g := x.Handlers[i], y.Handlers[i]
			if h.Name != g.Name || !equalExpr(h.Type, g.Type) || !equalStmts(h.Body, g.Body) {
				return false
			}
		}
		return equalStmts(x.Body, y.Body) && equalStmts(x.OrElse, y.OrElse) && equalStmts(x.FinalBody, y.FinalBody)
	case *Call:
		y := b.(*Call)
		if !Equal(x.Func, y.Func) || !equalExprs(x.Args, y.Args) || len(x.Keywords) != len(y.Keywords) {
			return false
		}
		for i := range x.Keywords {
			if x.Keywords[i].Arg != y.Keywords[i].Arg || !Equal(x.Keywords[i].Value, y.Keywords[i].Value) {
				return false
			}
		}
		return true
	case *Name:
		y := b.(*Name)
		return x.ID == y.ID && x.Ctx == y.Ctx
	case *Attribute:
		y := b.(*Attribute)
		return x.Attr == y.Attr && x.Ctx == y.Ctx && Equal(x.Value, y.Value)
	case *Constant:
		return x.Value == b.(*Constant).Value
	case *BinOp:
		y := b.(*BinOp)
		return x.Op == y.Op && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Dict:
		y := b.(*Dict)
		return equalExprs(x.Keys, y.Keys) && equalExprs(x.Values, y.Values)
	case *List:
		y := b.(*List)
		return x.Ctx == y.Ctx && equalExprs(x.Elts, y.Elts)
	case *Tuple:
		y := b.(*Tuple)
		return x.Ctx == y.Ctx && equalExprs(x.Elts, y.Elts)
	case *JoinedStr:
		return equalExprs(x.Values, b.(*JoinedStr).Values)
	case *FormattedValue:
		return Equal(x.Value, b.(*FormattedValue).Value)
	default:
		return false
	}
}

func equalStmts(a, b []Stmt) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalExprs(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalExpr(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalExpr(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Equal(a, b)
}
