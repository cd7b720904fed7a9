package ast

// Rewriter carries the hooks for a rewriting walk. Either hook may be nil.
//
// The Expr hook is offered every expression, pre-order. Returning the input
// means "no match" and the walk recurses into the expression's children;
// returning anything else replaces the expression and ends recursion for
// that subtree.
//
// The Stmt hook is offered every statement in sequence context. Returning
// nil means "no match" (recurse); returning a slice splices zero, one, or
// many replacement statements into the sequence without recursing into them.
type Rewriter struct {
	Expr func(Expr) Expr
	Stmt func(Stmt) []Stmt
}

// Rewrite applies r to the module in a depth-first pre-order walk. The walk
// is copy-on-write: untouched subtrees are shared between input and output,
// changed spines are reallocated, and the input module is never mutated. If
// nothing matches, the input is returned unchanged.
func Rewrite(m *Module, r Rewriter) *Module {
	body, changed := r.rewriteBody(m.Body)
	if !changed {
		return m
	}
	cp := *m
	cp.Body = body
	return &cp
}

// RewriteBody applies r to a statement sequence. Used by passes that rewrite
// detached bodies (duplicated loop bodies, handler blocks).
func RewriteBody(stmts []Stmt, r Rewriter) []Stmt {
	out, changed := r.rewriteBody(stmts)
	if !changed {
		return stmts
	}
	return out
}

func (r Rewriter) rewriteBody(stmts []Stmt) ([]Stmt, bool) {
	var out []Stmt
	modified := false
	for i, s := range stmts {
		repl, changed := r.rewriteInSeq(s)
		if changed && !modified {
			out = make([]Stmt, 0, len(stmts))
			out = append(out, stmts[:i]...)
			modified = true
		}
		if modified {
			out = append(out, repl...)
		}
	}
	if !modified {
		return stmts, false
	}
	return out, true
}

// rewriteInSeq offers one statement to the Stmt hook, falling back to
// recursive descent when the hook declines.
func (r Rewriter) rewriteInSeq(s Stmt) ([]Stmt, bool) {
	if r.Stmt != nil {
		if res := r.Stmt(s); res != nil {
			if len(res) == 1 && res[0] == s {
				return res, false
			}
			return res, true
		}
	}
	ns := r.rewriteStmt(s)
	return []Stmt{ns}, ns != s
}

func (r Rewriter) rewriteStmt(s Stmt) Stmt {
	switch st := s.(type) {
	case *FunctionDef:
		body, bc := r.rewriteBody(st.Body)
		if !bc {
			return s
		}
		cp := *st
		cp.Body = body
		return &cp

	case *Assign:
		targets, tc := r.rewriteExprs(st.Targets)
		val := r.rewriteExpr(st.Value)
		if !tc && val == st.Value {
			return s
		}
		return &Assign{Base: st.Base, Targets: targets, Value: val}

	case *ExprStmt:
		val := r.rewriteExpr(st.Value)
		if val == st.Value {
			return s
		}
		return &ExprStmt{Base: st.Base, Value: val}

	case *Return:
		if st.Value == nil {
			return s
		}
		val := r.rewriteExpr(st.Value)
		if val == st.Value {
			return s
		}
		return &Return{Base: st.Base, Value: val}

	case *If:
		test := r.rewriteExpr(st.Test)
		body, bc := r.rewriteBody(st.Body)
		orelse, oc := r.rewriteBody(st.OrElse)
		if test == st.Test && !bc && !oc {
			return s
		}
		return &If{Base: st.Base, Test: test, Body: body, OrElse: orelse}

	case *While:
		test := r.rewriteExpr(st.Test)
		body, bc := r.rewriteBody(st.Body)
		if test == st.Test && !bc {
			return s
		}
		return &While{Base: st.Base, Test: test, Body: body}

	case *For:
		target := r.rewriteExpr(st.Target)
		iter := r.rewriteExpr(st.Iter)
		body, bc := r.rewriteBody(st.Body)
		if target == st.Target && iter == st.Iter && !bc {
			return s
		}
		return &For{Base: st.Base, Target: target, Iter: iter, Body: body}

	case *Try:
		body, bc := r.rewriteBody(st.Body)
		handlers, hc := r.rewriteHandlers(st.Handlers)
		orelse, oc := r.rewriteBody(st.OrElse)
		final, fc := r.rewriteBody(st.FinalBody)
		if !bc && !hc && !oc && !fc {
			return s
		}
		return &Try{Base: st.Base, Body: body, Handlers: handlers, OrElse: orelse, FinalBody: final}

	default:
		// Break, Continue, Pass, and unrecognized kinds pass through.
		return s
	}
}

func (r Rewriter) rewriteHandlers(handlers []*ExceptHandler) ([]*ExceptHandler, bool) {
	var out []*ExceptHandler
	modified := false
	for i, h := range handlers {
		typ := r.rewriteExpr(h.Type)
		body, bc := r.rewriteBody(h.Body)
		if typ != h.Type || bc {
			if !modified {
				out = make([]*ExceptHandler, len(handlers))
				copy(out[:i], handlers[:i])
				modified = true
			}
		}
		if modified {
			out[i] = &ExceptHandler{Base: h.Base, Type: typ, Name: h.Name, Body: body}
		}
	}
	if !modified {
		return handlers, false
	}
	return out, true
}

func (r Rewriter) rewriteExpr(e Expr) Expr {
	if e == nil {
		return nil
	}
	if r.Expr != nil {
		if ne := r.Expr(e); ne != e {
			return ne
		}
	}
	switch ex := e.(type) {
	case *Call:
		fn := r.rewriteExpr(ex.Func)
		args, ac := r.rewriteExprs(ex.Args)
		kws, kc := r.rewriteKeywords(ex.Keywords)
		if fn == ex.Func && !ac && !kc {
			return e
		}
		return &Call{Base: ex.Base, Func: fn, Args: args, Keywords: kws}

	case *Attribute:
		val := r.rewriteExpr(ex.Value)
		if val == ex.Value {
			return e
		}
		return &Attribute{Base: ex.Base, Value: val, Attr: ex.Attr, Ctx: ex.Ctx}

	case *BinOp:
		left := r.rewriteExpr(ex.Left)
		right := r.rewriteExpr(ex.Right)
		if left == ex.Left && right == ex.Right {
			return e
		}
		return &BinOp{Base: ex.Base, Left: left, Op: ex.Op, Right: right}

	case *Dict:
		keys, kc := r.rewriteExprs(ex.Keys)
		vals, vc := r.rewriteExprs(ex.Values)
		if !kc && !vc {
			return e
		}
		return &Dict{Base: ex.Base, Keys: keys, Values: vals}

	case *List:
		elts, changed := r.rewriteExprs(ex.Elts)
		if !changed {
			return e
		}
		return &List{Base: ex.Base, Elts: elts, Ctx: ex.Ctx}

	case *Tuple:
		elts, changed := r.rewriteExprs(ex.Elts)
		if !changed {
			return e
		}
		return &Tuple{Base: ex.Base, Elts: elts, Ctx: ex.Ctx}

	case *JoinedStr:
		vals, changed := r.rewriteExprs(ex.Values)
		if !changed {
			return e
		}
		return &JoinedStr{Base: ex.Base, Values: vals}

	case *FormattedValue:
		val := r.rewriteExpr(ex.Value)
		if val == ex.Value {
			return e
		}
		return &FormattedValue{Base: ex.Base, Value: val}

	default:
		// Name, Constant, and unrecognized kinds have no child expressions.
		return e
	}
}

func (r Rewriter) rewriteExprs(exprs []Expr) ([]Expr, bool) {
	var out []Expr
	modified := false
	for i, e := range exprs {
		ne := r.rewriteExpr(e)
		if ne != e {
			if !modified {
				out = make([]Expr, len(exprs))
				copy(out[:i], exprs[:i])
				modified = true
			}
		}
		if modified {
			out[i] = ne
		}
	}
	if !modified {
		return exprs, false
	}
	return out, true
}

func (r Rewriter) rewriteKeywords(kws []*Keyword) ([]*Keyword, bool) {
	var out []*Keyword
	modified := false
	for i, k := range kws {
		val := r.rewriteExpr(k.Value)
		if val != k.Value {
			if !modified {
				out = make([]*Keyword, len(kws))
				copy(out[:i], kws[:i])
				modified = true
			}
		}
		if modified {
			out[i] = &Keyword{Base: k.Base, Arg: k.Arg, Value: val}
		}
	}
	if !modified {
		return kws, false
	}
	return out, true
}
