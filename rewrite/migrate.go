package rewrite

import "github.com/1hpEcVns/ComplierFrontEnd/ast"

// CallMigration rewrites every call to a deprecated operation into an
// equivalent call to its replacement, moving one keyword argument into a
// nested single-entry dict. A call like
//
//	old("msg", timestamp=ts, level=2)
//
// with Old="old", New="logging.warning", Keyword="timestamp", Wrapper="extra"
// becomes
//
//	logging.warning("msg", extra={"timestamp": ts})
//
// Keyword arguments other than the matched one are intentionally dropped:
// the replacement operation only accepts the wrapper keyword, so there is
// nothing to carry them into.
type CallMigration struct {
	Old     string // bare callee name to migrate
	New     string // dotted replacement callee, e.g. "logging.warning"
	Keyword string // keyword argument to capture
	Wrapper string // wrapper keyword on the new call, e.g. "extra"
}

func (c CallMigration) Name() string { return "call-migration" }

// Apply rewrites matching calls. Non-matching calls and every other node
// pass through unchanged.
func (c CallMigration) Apply(m *ast.Module) *ast.Module {
	return ast.Rewrite(m, ast.Rewriter{Expr: c.rewriteCall})
}

func (c CallMigration) rewriteCall(e ast.Expr) ast.Expr {
	call, ok := e.(*ast.Call)
	if !ok {
		return e
	}
	callee, ok := call.Func.(*ast.Name)
	if !ok || callee.ID != c.Old {
		return e
	}

	f := ast.FactoryFor(call)
	repl := f.Call(f.Dotted(c.New))
	if len(call.Args) > 0 {
		repl.Args = []ast.Expr{call.Args[0]}
	}
	for _, kw := range call.Keywords {
		if kw.Arg == c.Keyword {
			repl.Keywords = []*ast.Keyword{
				f.Keyword(c.Wrapper, f.Dict1(c.Keyword, kw.Value)),
			}
			break
		}
	}
	return repl
}
