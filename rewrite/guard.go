package rewrite

import (
	"fmt"
	"strings"

	"github.com/1hpEcVns/ComplierFrontEnd/ast"
)

// GuardSpec configures the protection for one risky callee: the exception
// to catch (dotted path) and the expression the target is re-assigned to
// when it fires.
type GuardSpec struct {
	Exception string
	Fallback  ast.Expr
}

// GuardInjection wraps statements whose right-hand side calls a registered
// risky operation in a try/except block. The original statement becomes the
// guarded body; the handler prints a diagnostic naming the call and the
// captured error and, for the assignment form, re-assigns the target to the
// configured fallback.
//
// Only assignments to a single bare name are guarded. Attribute targets,
// chained targets, and tuple unpacking pass through untouched: rebinding
// those from a handler would need target-shape analysis this pass
// deliberately does not do.
type GuardInjection struct {
	Registry map[string]GuardSpec // keyed by dotted callee path
}

func (g GuardInjection) Name() string { return "guard-injection" }

// Apply rewrites matching statements. Statements whose call is not in the
// registry pass through unchanged.
func (g GuardInjection) Apply(m *ast.Module) *ast.Module {
	return ast.Rewrite(m, ast.Rewriter{Stmt: g.rewriteStmt})
}

func (g GuardInjection) rewriteStmt(s ast.Stmt) []ast.Stmt {
	switch st := s.(type) {
	case *ast.Assign:
		callee, spec, ok := g.lookup(st.Value)
		if !ok {
			return nil
		}
		target, ok := simpleTarget(st)
		if !ok {
			return nil
		}
		f := ast.FactoryFor(st)
		handler := []ast.Stmt{
			g.diagnostic(f, callee),
			f.Assign1(target.ID, ast.CloneExpr(spec.Fallback)),
		}
		return []ast.Stmt{g.wrap(f, st, spec, handler)}

	case *ast.ExprStmt:
		callee, spec, ok := g.lookup(st.Value)
		if !ok {
			return nil
		}
		f := ast.FactoryFor(st)
		handler := []ast.Stmt{g.diagnostic(f, callee)}
		return []ast.Stmt{g.wrap(f, st, spec, handler)}

	default:
		return nil
	}
}

// lookup reports whether e is a call to a registered risky operation.
func (g GuardInjection) lookup(e ast.Expr) (string, GuardSpec, bool) {
	call, ok := e.(*ast.Call)
	if !ok {
		return "", GuardSpec{}, false
	}
	callee := calleePath(call.Func)
	if callee == "" {
		return "", GuardSpec{}, false
	}
	spec, ok := g.Registry[callee]
	return callee, spec, ok
}

func (g GuardInjection) wrap(f *ast.Factory, guarded ast.Stmt, spec GuardSpec, handler []ast.Stmt) *ast.Try {
	return &ast.Try{
		Base: f.At(),
		Body: []ast.Stmt{guarded},
		Handlers: []*ast.ExceptHandler{{
			Base: f.At(),
			Type: f.Dotted(spec.Exception),
			Name: "e",
			Body: handler,
		}},
	}
}

// diagnostic builds print(f"Error in <callee>: {e}").
func (g GuardInjection) diagnostic(f *ast.Factory, callee string) ast.Stmt {
	return f.ExprStmt(f.Call(
		f.Name("print"),
		f.FormatString(fmt.Sprintf("Error in %s: ", callee), f.Name("e")),
	))
}

// simpleTarget returns the bare-name target of an assignment, or ok=false
// for anything more complex.
func simpleTarget(a *ast.Assign) (*ast.Name, bool) {
	if len(a.Targets) != 1 {
		return nil, false
	}
	n, ok := a.Targets[0].(*ast.Name)
	return n, ok
}

// calleePath renders a callee as a dotted path. Only chains of attribute
// accesses rooted at a bare name qualify ("json.loads", "requests.get");
// anything else yields "".
func calleePath(e ast.Expr) string {
	var parts []string
	for {
		switch x := e.(type) {
		case *ast.Name:
			parts = append(parts, x.ID)
			for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
				parts[i], parts[j] = parts[j], parts[i]
			}
			return strings.Join(parts, ".")
		case *ast.Attribute:
			parts = append(parts, x.Attr)
			e = x.Value
		default:
			return ""
		}
	}
}
