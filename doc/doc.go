// Package doc extracts documentation from program trees.
//
// A function's doc is its docstring: a leading expression statement whose
// value is a string constant. Everything else comes from the tree itself,
// so documentation stays accurate for trees that were synthesized or
// rewritten rather than parsed from a file.
package doc

import (
	"strings"

	"github.com/1hpEcVns/ComplierFrontEnd/ast"
)

// FuncDoc describes one documented function.
type FuncDoc struct {
	Name   string
	Params []string
	Doc    string
	Line   int // 1-based line of the def, 0 if the tree carries no position
}

// ModuleDoc holds extracted documentation for a whole module.
type ModuleDoc struct {
	Funcs []FuncDoc
}

// Extract collects every top-level function in declaration order. Nested
// functions are treated as implementation detail and skipped.
func Extract(m *ast.Module) *ModuleDoc {
	md := &ModuleDoc{}
	for _, s := range m.Body {
		fn, ok := s.(*ast.FunctionDef)
		if !ok {
			continue
		}
		md.Funcs = append(md.Funcs, extractFunc(fn))
	}
	return md
}

func extractFunc(fn *ast.FunctionDef) FuncDoc {
	params := make([]string, len(fn.Args))
	for i, a := range fn.Args {
		params[i] = a.Name
	}
	line, _ := fn.Pos()
	return FuncDoc{
		Name:   fn.Name,
		Params: params,
		Doc:    Docstring(fn),
		Line:   line,
	}
}

// Docstring returns a function's docstring with indentation cleaned, or ""
// when the body does not start with one.
func Docstring(fn *ast.FunctionDef) string {
	if len(fn.Body) == 0 {
		return ""
	}
	es, ok := fn.Body[0].(*ast.ExprStmt)
	if !ok {
		return ""
	}
	c, ok := es.Value.(*ast.Constant)
	if !ok {
		return ""
	}
	s, ok := c.Value.(string)
	if !ok {
		return ""
	}
	return cleanDoc(s)
}

// cleanDoc trims the common leading whitespace of continuation lines, the
// usual multi-line docstring layout.
func cleanDoc(s string) string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}

	margin := -1
	for _, ln := range lines[1:] {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		indent := len(ln) - len(strings.TrimLeft(ln, " \t"))
		if margin < 0 || indent < margin {
			margin = indent
		}
	}
	out := []string{strings.TrimSpace(lines[0])}
	for _, ln := range lines[1:] {
		if strings.TrimSpace(ln) == "" {
			out = append(out, "")
			continue
		}
		out = append(out, strings.TrimRight(ln[margin:], " \t"))
	}
	return strings.Join(out, "\n")
}
