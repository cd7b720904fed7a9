// Package analysis provides read-only diagnostics over program trees. It
// never modifies its input.
package analysis

import (
	"fmt"
	"sort"

	"github.com/1hpEcVns/ComplierFrontEnd/ast"
)

// Finding reports one variable that a function defines but never reads.
type Finding struct {
	Function string
	Line     int
	Variable string
}

func (f Finding) String() string {
	return fmt.Sprintf("in function %q (line %d): unused variable %q", f.Function, f.Line, f.Variable)
}

// scope tracks defined and used variable names for one function body.
type scope struct {
	defined map[string]bool
	used    map[string]bool
}

// UnusedVars indexes each function in the module and reports variables that
// are defined (parameters and store-context names) but never read
// (load-context names). Module-level code is not a scope and produces no
// findings. Nested functions are indexed as scopes of their own; their reads
// do not count toward the enclosing function.
//
// Results come back ordered by line, then function name, then variable, so
// output is stable for a given tree.
func UnusedVars(m *ast.Module) []Finding {
	var findings []Finding
	for _, s := range m.Body {
		fn, ok := s.(*ast.FunctionDef)
		if !ok {
			continue
		}
		findings = append(findings, indexFunction(fn)...)
	}
	sort.Slice(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		if a.Function != b.Function {
			return a.Function < b.Function
		}
		return a.Variable < b.Variable
	})
	return findings
}

func indexFunction(fn *ast.FunctionDef) []Finding {
	sc := scope{defined: map[string]bool{}, used: map[string]bool{}}
	for _, arg := range fn.Args {
		sc.defined[arg.Name] = true
	}

	var nested []Finding
	for _, s := range fn.Body {
		ast.Inspect(s, func(n ast.Node) bool {
			switch x := n.(type) {
			case *ast.FunctionDef:
				nested = append(nested, indexFunction(x)...)
				return false
			case *ast.Name:
				switch x.Ctx {
				case ast.CtxStore:
					sc.defined[x.ID] = true
				case ast.CtxLoad:
					sc.used[x.ID] = true
				}
			case *ast.ExceptHandler:
				if x.Name != "" {
					sc.defined[x.Name] = true
				}
			}
			return true
		})
	}

	var findings []Finding
	line, _ := fn.Pos()
	for name := range sc.defined {
		if !sc.used[name] {
			findings = append(findings, Finding{Function: fn.Name, Line: line, Variable: name})
		}
	}
	return append(findings, nested...)
}
