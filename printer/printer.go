// Package printer serializes a program tree back to source text. Output is
// deterministic for a given tree: same input, same bytes.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/1hpEcVns/ComplierFrontEnd/ast"
)

// Print renders a module as source text with four-space indentation.
func Print(m *ast.Module) string {
	p := &printer{}
	for _, s := range m.Body {
		p.printStmt(s)
	}
	return p.sb.String()
}

// PrintStmts renders a statement sequence at the top level, for hosts that
// work with tree fragments rather than whole modules.
func PrintStmts(stmts []ast.Stmt) string {
	p := &printer{}
	for _, s := range stmts {
		p.printStmt(s)
	}
	return p.sb.String()
}

type printer struct {
	sb     strings.Builder
	indent int
}

func (p *printer) line(format string, args ...any) {
	for range p.indent {
		p.sb.WriteString("    ")
	}
	fmt.Fprintf(&p.sb, format, args...)
	p.sb.WriteByte('\n')
}

func (p *printer) body(stmts []ast.Stmt) {
	p.indent++
	if len(stmts) == 0 {
		p.line("pass")
	}
	for _, s := range stmts {
		p.printStmt(s)
	}
	p.indent--
}

func (p *printer) printStmt(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.FunctionDef:
		params := make([]string, len(st.Args))
		for i, a := range st.Args {
			params[i] = a.Name
		}
		p.line("def %s(%s):", st.Name, strings.Join(params, ", "))
		p.body(st.Body)
	case *ast.Assign:
		targets := make([]string, len(st.Targets))
		for i, t := range st.Targets {
			targets[i] = p.exprStr(t)
		}
		p.line("%s = %s", strings.Join(targets, " = "), p.exprStr(st.Value))
	case *ast.ExprStmt:
		p.line("%s", p.exprStr(st.Value))
	case *ast.Return:
		if st.Value != nil {
			p.line("return %s", p.exprStr(st.Value))
		} else {
			p.line("return")
		}
	case *ast.If:
		p.printIf(st)
	case *ast.While:
		p.line("while %s:", p.exprStr(st.Test))
		p.body(st.Body)
	case *ast.For:
		p.line("for %s in %s:", p.exprStr(st.Target), p.exprStr(st.Iter))
		p.body(st.Body)
	case *ast.Break:
		p.line("break")
	case *ast.Continue:
		p.line("continue")
	case *ast.Pass:
		p.line("pass")
	case *ast.Try:
		p.printTry(st)
	default:
		p.line("# <unknown statement %s>", s.Kind())
	}
}

func (p *printer) printIf(st *ast.If) {
	p.line("if %s:", p.exprStr(st.Test))
	p.body(st.Body)
	// else-if collapses to elif, matching how the tree was most likely built.
	if len(st.OrElse) == 1 {
		if elif, ok := st.OrElse[0].(*ast.If); ok {
			p.printElif(elif)
			return
		}
	}
	if len(st.OrElse) > 0 {
		p.line("else:")
		p.body(st.OrElse)
	}
}

func (p *printer) printElif(st *ast.If) {
	p.line("elif %s:", p.exprStr(st.Test))
	p.body(st.Body)
	if len(st.OrElse) == 1 {
		if elif, ok := st.OrElse[0].(*ast.If); ok {
			p.printElif(elif)
			return
		}
	}
	if len(st.OrElse) > 0 {
		p.line("else:")
		p.body(st.OrElse)
	}
}

func (p *printer) printTry(st *ast.Try) {
	p.line("try:")
	p.body(st.Body)
	for _, h := range st.Handlers {
		switch {
		case h.Type == nil:
			p.line("except:")
		case h.Name != "":
			p.line("except %s as %s:", p.exprStr(h.Type), h.Name)
		default:
			p.line("except %s:", p.exprStr(h.Type))
		}
		p.body(h.Body)
	}
	if len(st.OrElse) > 0 {
		p.line("else:")
		p.body(st.OrElse)
	}
	if len(st.FinalBody) > 0 {
		p.line("finally:")
		p.body(st.FinalBody)
	}
}

func (p *printer) exprStr(e ast.Expr) string {
	switch ex := e.(type) {
	case *ast.Name:
		return ex.ID
	case *ast.Attribute:
		return fmt.Sprintf("%s.%s", p.exprStr(ex.Value), ex.Attr)
	case *ast.Constant:
		return constantStr(ex.Value)
	case *ast.Call:
		args := make([]string, 0, len(ex.Args)+len(ex.Keywords))
		for _, a := range ex.Args {
			args = append(args, p.exprStr(a))
		}
		for _, kw := range ex.Keywords {
			args = append(args, fmt.Sprintf("%s=%s", kw.Arg, p.exprStr(kw.Value)))
		}
		return fmt.Sprintf("%s(%s)", p.exprStr(ex.Func), strings.Join(args, ", "))
	case *ast.BinOp:
		return fmt.Sprintf("%s %s %s", p.operandStr(ex.Left), ex.Op, p.operandStr(ex.Right))
	case *ast.Dict:
		pairs := make([]string, len(ex.Keys))
		for i := range ex.Keys {
			pairs[i] = fmt.Sprintf("%s: %s", p.exprStr(ex.Keys[i]), p.exprStr(ex.Values[i]))
		}
		return fmt.Sprintf("{%s}", strings.Join(pairs, ", "))
	case *ast.List:
		return fmt.Sprintf("[%s]", p.elems(ex.Elts))
	case *ast.Tuple:
		if len(ex.Elts) == 1 {
			return fmt.Sprintf("(%s,)", p.exprStr(ex.Elts[0]))
		}
		return fmt.Sprintf("(%s)", p.elems(ex.Elts))
	case *ast.JoinedStr:
		return p.fstring(ex)
	case *ast.FormattedValue:
		return fmt.Sprintf("{%s}", p.exprStr(ex.Value))
	default:
		return fmt.Sprintf("<unknown expression %s>", e.Kind())
	}
}

// operandStr parenthesizes nested binary operations instead of tracking
// precedence; the result is unambiguous even if sometimes over-bracketed.
func (p *printer) operandStr(e ast.Expr) string {
	if _, ok := e.(*ast.BinOp); ok {
		return fmt.Sprintf("(%s)", p.exprStr(e))
	}
	return p.exprStr(e)
}

func (p *printer) elems(elts []ast.Expr) string {
	parts := make([]string, len(elts))
	for i, e := range elts {
		parts[i] = p.exprStr(e)
	}
	return strings.Join(parts, ", ")
}

func (p *printer) fstring(js *ast.JoinedStr) string {
	var sb strings.Builder
	sb.WriteString(`f"`)
	for _, part := range js.Values {
		switch v := part.(type) {
		case *ast.Constant:
			s, _ := v.Value.(string)
			sb.WriteString(escapeFString(s))
		case *ast.FormattedValue:
			sb.WriteByte('{')
			sb.WriteString(p.exprStr(v.Value))
			sb.WriteByte('}')
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func escapeFString(s string) string {
	r := strings.NewReplacer(`{`, `{{`, `}`, `}}`, `"`, `\"`, `\`, `\\`)
	return r.Replace(s)
}

func constantStr(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case bool:
		if x {
			return "True"
		}
		return "False"
	case string:
		return strconv.Quote(x)
	case int:
		return strconv.Itoa(x)
	case float64:
		s := strconv.FormatFloat(x, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	default:
		return fmt.Sprintf("%v", x)
	}
}
