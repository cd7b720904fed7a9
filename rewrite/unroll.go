package rewrite

import "github.com/1hpEcVns/ComplierFrontEnd/ast"

// DefaultUnrollFactor is the number of body copies per driving-loop step
// when no factor is configured.
const DefaultUnrollFactor = 4

// LoopUnroll replaces simple bounded counting loops with an equivalent
// sequence of duplicated, specialized statements. A loop
//
//	for i in range(10): body(i)
//
// unrolled by 4 becomes a driving loop over range(0, 8, 4) whose body is
// body(i); body(i+1); body(i+2); body(i+3), followed by body(8); body(9)
// emitted directly at the enclosing scope.
type LoopUnroll struct {
	Factor    int    // body copies per driving-loop step; DefaultUnrollFactor if 0
	RangeFunc string // name of the range primitive; "range" if empty
}

func (u LoopUnroll) Name() string { return "loop-unroll" }

func (u LoopUnroll) factor() int {
	if u.Factor <= 0 {
		return DefaultUnrollFactor
	}
	return u.Factor
}

func (u LoopUnroll) rangeFunc() string {
	if u.RangeFunc == "" {
		return "range"
	}
	return u.RangeFunc
}

// Apply unrolls every eligible loop. Ineligible loops pass through
// unchanged, including their bodies' nested loops, which are considered on
// their own.
func (u LoopUnroll) Apply(m *ast.Module) *ast.Module {
	return ast.Rewrite(m, ast.Rewriter{Stmt: u.rewriteFor})
}

func (u LoopUnroll) rewriteFor(s ast.Stmt) []ast.Stmt {
	loop, ok := s.(*ast.For)
	if !ok {
		return nil
	}

	// Eligibility gates, in order, short-circuiting on the first failure.
	target, ok := loop.Target.(*ast.Name)
	if !ok {
		return nil
	}
	iter, ok := loop.Iter.(*ast.Call)
	if !ok {
		return nil
	}
	callee, ok := iter.Func.(*ast.Name)
	if !ok || callee.ID != u.rangeFunc() {
		return nil
	}
	if len(iter.Args) != 1 || len(iter.Keywords) != 0 {
		return nil
	}
	bound, ok := iter.Args[0].(*ast.Constant)
	if !ok {
		return nil
	}
	n, ok := bound.Value.(int)
	if !ok {
		return nil
	}
	if ast.ContainsKind(loop, ast.KindBreak, ast.KindContinue) {
		return nil
	}

	factor := u.factor()
	if n < factor {
		// Duplication overhead would not amortize.
		return nil
	}

	loopVar := target.ID
	main := (n / factor) * factor

	var out []ast.Stmt
	if main > 0 {
		body := make([]ast.Stmt, 0, factor*len(loop.Body))
		for offset := range factor {
			body = append(body, offsetReads(ast.CloneBody(loop.Body), loopVar, offset)...)
		}
		f := ast.FactoryFor(loop)
		driving := &ast.For{
			Base:   f.At(),
			Target: f.StoreName(loopVar),
			Iter:   f.Call(f.Name(u.rangeFunc()), f.Int(0), f.Int(main), f.Int(factor)),
			Body:   body,
		}
		out = append(out, driving)
	}
	for i := main; i < n; i++ {
		out = append(out, constReads(ast.CloneBody(loop.Body), loopVar, i)...)
	}
	if out == nil {
		return nil
	}
	for _, s := range out {
		ast.FixMissingPositions(s)
	}
	return out
}

// offsetReads rewrites every read of the loop variable to name + offset.
// Offset 0 is left alone rather than emitting a no-op addition. Write
// occurrences are never touched; the loop variable cannot legally be
// re-bound inside an eligible body, but the guard costs nothing.
func offsetReads(body []ast.Stmt, name string, offset int) []ast.Stmt {
	if offset == 0 {
		return body
	}
	return ast.RewriteBody(body, ast.Rewriter{
		Expr: func(e ast.Expr) ast.Expr {
			n, ok := e.(*ast.Name)
			if !ok || n.ID != name || n.Ctx != ast.CtxLoad {
				return e
			}
			f := ast.FactoryFor(n)
			return f.BinOp(f.Name(name), "+", f.Int(offset))
		},
	})
}

// constReads rewrites every read of the loop variable to the literal value.
func constReads(body []ast.Stmt, name string, value int) []ast.Stmt {
	return ast.RewriteBody(body, ast.Rewriter{
		Expr: func(e ast.Expr) ast.Expr {
			n, ok := e.(*ast.Name)
			if !ok || n.ID != name || n.Ctx != ast.CtxLoad {
				return e
			}
			return ast.FactoryFor(n).Int(value)
		},
	})
}
