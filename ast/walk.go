package ast

// childNodes appends every direct child of n to buf, in field-declaration
// order (statement sequences in index order). Nil optional children are
// skipped. Unrecognized kinds contribute no children.
func childNodes(n Node, buf []Node) []Node {
	switch x := n.(type) {
	case *Module:
		buf = appendStmts(buf, x.Body)
	case *FunctionDef:
		for _, a := range x.Args {
			buf = append(buf, a)
		}
		buf = appendStmts(buf, x.Body)
	case *Assign:
		buf = appendExprs(buf, x.Targets)
		buf = appendExpr(buf, x.Value)
	case *ExprStmt:
		buf = appendExpr(buf, x.Value)
	case *Return:
		buf = appendExpr(buf, x.Value)
	case *If:
		buf = appendExpr(buf, x.Test)
		buf = appendStmts(buf, x.Body)
		buf = appendStmts(buf, x.OrElse)
	case *While:
		buf = appendExpr(buf, x.Test)
		buf = appendStmts(buf, x.Body)
	case *For:
		buf = appendExpr(buf, x.Target)
		buf = appendExpr(buf, x.Iter)
		buf = appendStmts(buf, x.Body)
	case *Try:
		buf = appendStmts(buf, x.Body)
		for _, h := range x.Handlers {
			buf = append(buf, h)
		}
		buf = appendStmts(buf, x.OrElse)
		buf = appendStmts(buf, x.FinalBody)
	case *ExceptHandler:
		buf = appendExpr(buf, x.Type)
		buf = appendStmts(buf, x.Body)
	case *Call:
		buf = appendExpr(buf, x.Func)
		buf = appendExprs(buf, x.Args)
		for _, k := range x.Keywords {
			buf = append(buf, k)
		}
	case *Keyword:
		buf = appendExpr(buf, x.Value)
	case *Attribute:
		buf = appendExpr(buf, x.Value)
	case *BinOp:
		buf = appendExpr(buf, x.Left)
		buf = appendExpr(buf, x.Right)
	case *Dict:
		buf = appendExprs(buf, x.Keys)
		buf = appendExprs(buf, x.Values)
	case *List:
		buf = appendExprs(buf, x.Elts)
	case *Tuple:
		buf = appendExprs(buf, x.Elts)
	case *JoinedStr:
		buf = appendExprs(buf, x.Values)
	case *FormattedValue:
		buf = appendExpr(buf, x.Value)
	}
	return buf
}

func appendStmts(buf []Node, stmts []Stmt) []Node {
	for _, s := range stmts {
		buf = append(buf, s)
	}
	return buf
}

func appendExprs(buf []Node, exprs []Expr) []Node {
	for _, e := range exprs {
		if e != nil {
			buf = append(buf, e)
		}
	}
	return buf
}

func appendExpr(buf []Node, e Expr) []Node {
	if e != nil {
		buf = append(buf, e)
	}
	return buf
}

// Inspect performs a depth-first pre-order walk, calling fn on every node
// exactly once. If fn returns false the children of that node are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range childNodes(n, nil) {
		Inspect(c, fn)
	}
}

// ContainsKind reports whether any node of one of the given kinds appears
// in the subtree rooted at n, including n itself.
func ContainsKind(n Node, kinds ...Kind) bool {
	found := false
	Inspect(n, func(c Node) bool {
		if found {
			return false
		}
		for _, k := range kinds {
			if c.Kind() == k {
				found = true
				return false
			}
		}
		return true
	})
	return found
}
