package ast

// Deep copy helpers. Every clone is a fully independent tree: no sub-node is
// shared with the original. Positions are copied as-is.

// CloneBody deep-copies a statement sequence.
func CloneBody(stmts []Stmt) []Stmt {
	if stmts == nil {
		return nil
	}
	out := make([]Stmt, len(stmts))
	for i, s := range stmts {
		out[i] = CloneStmt(s)
	}
	return out
}

// CloneStmt deep-copies a single statement.
func CloneStmt(s Stmt) Stmt {
	switch st := s.(type) {
	case *FunctionDef:
		args := make([]*Arg, len(st.Args))
		for i, a := range st.Args {
			cp := *a
			args[i] = &cp
		}
		return &FunctionDef{Base: st.Base, Name: st.Name, Args: args, Body: CloneBody(st.Body)}
	case *Assign:
		return &Assign{Base: st.Base, Targets: cloneExprs(st.Targets), Value: CloneExpr(st.Value)}
	case *ExprStmt:
		return &ExprStmt{Base: st.Base, Value: CloneExpr(st.Value)}
	case *Return:
		return &Return{Base: st.Base, Value: CloneExpr(st.Value)}
	case *If:
		return &If{Base: st.Base, Test: CloneExpr(st.Test), Body: CloneBody(st.Body), OrElse: CloneBody(st.OrElse)}
	case *While:
		return &While{Base: st.Base, Test: CloneExpr(st.Test), Body: CloneBody(st.Body)}
	case *For:
		return &For{Base: st.Base, Target: CloneExpr(st.Target), Iter: CloneExpr(st.Iter), Body: CloneBody(st.Body)}
	case *Break:
		cp := *st
		return &cp
	case *Continue:
		cp := *st
		return &cp
	case *Pass:
		cp := *st
		return &cp
	case *Try:
		handlers := make([]*ExceptHandler, len(st.Handlers))
		for i, h := range st.Handlers {
			handlers[i] = &ExceptHandler{Base: h.Base, Type: CloneExpr(h.Type), Name: h.Name, Body: CloneBody(h.Body)}
		}
		return &Try{Base: st.Base, Body: CloneBody(st.Body), Handlers: handlers, OrElse: CloneBody(st.OrElse), FinalBody: CloneBody(st.FinalBody)}
	default:
		return s
	}
}

// CloneExpr deep-copies a single expression. Cloning nil returns nil.
func CloneExpr(e Expr) Expr {
	if e == nil {
		return nil
	}
	switch ex := e.(type) {
	case *Call:
		kws := make([]*Keyword, len(ex.Keywords))
		for i, k := range ex.Keywords {
			kws[i] = &Keyword{Base: k.Base, Arg: k.Arg, Value: CloneExpr(k.Value)}
		}
		return &Call{Base: ex.Base, Func: CloneExpr(ex.Func), Args: cloneExprs(ex.Args), Keywords: kws}
	case *Name:
		cp := *ex
		return &cp
	case *Attribute:
		return &Attribute{Base: ex.Base, Value: CloneExpr(ex.Value), Attr: ex.Attr, Ctx: ex.Ctx}
	case *Constant:
		cp := *ex
		return &cp
	case *BinOp:
		return &BinOp{Base: ex.Base, Left: CloneExpr(ex.Left), Op: ex.Op, Right: CloneExpr(ex.Right)}
	case *Dict:
		return &Dict{Base: ex.Base, Keys: cloneExprs(ex.Keys), Values: cloneExprs(ex.Values)}
	case *List:
		return &List{Base: ex.Base, Elts: cloneExprs(ex.Elts), Ctx: ex.Ctx}
	case *Tuple:
		return &Tuple{Base: ex.Base, Elts: cloneExprs(ex.Elts), Ctx: ex.Ctx}
	case *JoinedStr:
		return &JoinedStr{Base: ex.Base, Values: cloneExprs(ex.Values)}
	case *FormattedValue:
		return &FormattedValue{Base: ex.Base, Value: CloneExpr(ex.Value)}
	default:
		return e
	}
}

func cloneExprs(exprs []Expr) []Expr {
	if exprs == nil {
		return nil
	}
	out := make([]Expr, len(exprs))
	for i, e := range exprs {
		out[i] = CloneExpr(e)
	}
	return out
}
