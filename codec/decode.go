package codec

import (
	"fmt"
	"sort"

	"github.com/1hpEcVns/ComplierFrontEnd/ast"
)

// Decode reconstructs a typed node from its mapping form. It is the exact
// inverse of Encode: Decode(Encode(t)) is structurally equal to t modulo
// position metadata. Any structural problem fails with a
// *ReconstructionError; a mapping is never partially decoded.
func Decode(m Mapping) (ast.Node, error) {
	return decodeNode(m, "$")
}

// DecodeModule decodes a mapping whose root must be a Module.
func DecodeModule(m Mapping) (*ast.Module, error) {
	n, err := Decode(m)
	if err != nil {
		return nil, err
	}
	mod, ok := n.(*ast.Module)
	if !ok {
		return nil, &ReconstructionError{Path: "$", Msg: fmt.Sprintf("expected Module root, got %s", n.Kind())}
	}
	return mod, nil
}

// constructors is the per-kind builder table. Each builder reads exactly the
// fields its kind declares; the decoder tracks consumed keys so anything
// left over is rejected afterwards.
var constructors map[ast.Kind]func(*decoder) ast.Node

func init() {
	constructors = map[ast.Kind]func(*decoder) ast.Node{
		ast.KindModule: func(d *decoder) ast.Node {
			return &ast.Module{Body: d.stmts("body")}
		},
		ast.KindFunctionDef: func(d *decoder) ast.Node {
			return &ast.FunctionDef{Name: d.str("name"), Args: d.args("args"), Body: d.stmts("body")}
		},
		ast.KindArg: func(d *decoder) ast.Node {
			return &ast.Arg{Name: d.str("name")}
		},
		ast.KindAssign: func(d *decoder) ast.Node {
			return &ast.Assign{Targets: d.exprs("targets"), Value: d.expr("value")}
		},
		ast.KindExpr: func(d *decoder) ast.Node {
			return &ast.ExprStmt{Value: d.expr("value")}
		},
		ast.KindReturn: func(d *decoder) ast.Node {
			return &ast.Return{Value: d.exprOrNil("value")}
		},
		ast.KindIf: func(d *decoder) ast.Node {
			return &ast.If{Test: d.expr("test"), Body: d.stmts("body"), OrElse: d.stmts("orelse")}
		},
		ast.KindWhile: func(d *decoder) ast.Node {
			return &ast.While{Test: d.expr("test"), Body: d.stmts("body")}
		},
		ast.KindFor: func(d *decoder) ast.Node {
			return &ast.For{Target: d.expr("target"), Iter: d.expr("iter"), Body: d.stmts("body")}
		},
		ast.KindBreak:    func(d *decoder) ast.Node { return &ast.Break{} },
		ast.KindContinue: func(d *decoder) ast.Node { return &ast.Continue{} },
		ast.KindPass:     func(d *decoder) ast.Node { return &ast.Pass{} },
		ast.KindTry: func(d *decoder) ast.Node {
			return &ast.Try{
				Body:      d.stmts("body"),
				Handlers:  d.handlers("handlers"),
				OrElse:    d.stmts("orelse"),
				FinalBody: d.stmts("finalbody"),
			}
		},
		ast.KindExceptHandler: func(d *decoder) ast.Node {
			return &ast.ExceptHandler{Type: d.exprOrNil("type"), Name: d.str("name"), Body: d.stmts("body")}
		},
		ast.KindCall: func(d *decoder) ast.Node {
			return &ast.Call{Func: d.expr("func"), Args: d.exprs("args"), Keywords: d.keywords("keywords")}
		},
		ast.KindKeyword: func(d *decoder) ast.Node {
			return &ast.Keyword{Arg: d.str("arg"), Value: d.expr("value")}
		},
		ast.KindName: func(d *decoder) ast.Node {
			return &ast.Name{ID: d.str("id"), Ctx: d.ctx("ctx")}
		},
		ast.KindAttribute: func(d *decoder) ast.Node {
			return &ast.Attribute{Value: d.expr("value"), Attr: d.str("attr"), Ctx: d.ctx("ctx")}
		},
		ast.KindConstant: func(d *decoder) ast.Node {
			return &ast.Constant{Value: d.scalar("value")}
		},
		ast.KindBinOp: func(d *decoder) ast.Node {
			return &ast.BinOp{Left: d.expr("left"), Op: d.str("op"), Right: d.expr("right")}
		},
		ast.KindDict: func(d *decoder) ast.Node {
			return &ast.Dict{Keys: d.exprs("keys"), Values: d.exprs("values")}
		},
		ast.KindList: func(d *decoder) ast.Node {
			return &ast.List{Elts: d.exprs("elts"), Ctx: d.ctx("ctx")}
		},
		ast.KindTuple: func(d *decoder) ast.Node {
			return &ast.Tuple{Elts: d.exprs("elts"), Ctx: d.ctx("ctx")}
		},
		ast.KindJoinedStr: func(d *decoder) ast.Node {
			return &ast.JoinedStr{Values: d.exprs("values")}
		},
		ast.KindFormattedValue: func(d *decoder) ast.Node {
			return &ast.FormattedValue{Value: d.expr("value")}
		},
	}
}

func decodeNode(m Mapping, path string) (ast.Node, error) {
	raw, ok := m[KeyNodeType]
	if !ok {
		return nil, &ReconstructionError{Path: path, Msg: "missing node_type"}
	}
	kind, ok := raw.(string)
	if !ok {
		return nil, &ReconstructionError{Path: path, Msg: fmt.Sprintf("node_type must be a string, got %T", raw)}
	}
	build, ok := constructors[ast.Kind(kind)]
	if !ok {
		return nil, &ReconstructionError{Path: path, Msg: fmt.Sprintf("unknown node type %q", kind)}
	}

	d := &decoder{
		m:    m,
		path: path,
		used: map[string]bool{KeyNodeType: true, KeyLine: true, KeyCol: true},
	}
	n := build(d)
	if d.err != nil {
		return nil, d.err
	}

	// Strict field policy: nothing beyond the declared fields and the
	// reserved keys may appear.
	var extra []string
	for k := range m {
		if !d.used[k] {
			extra = append(extra, k)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		return nil, &ReconstructionError{Path: path, Msg: fmt.Sprintf("unexpected key %q for %s", extra[0], kind)}
	}

	if line, ok := intValue(m[KeyLine]); ok {
		col, _ := intValue(m[KeyCol])
		n.SetPos(line, col)
	}
	return n, nil
}

// decoder reads the fields of one mapping, recording consumed keys and the
// first error encountered. Builders keep calling through after a failure;
// the zero values they receive are discarded once err is checked.
type decoder struct {
	m    Mapping
	path string
	used map[string]bool
	err  error
}

func (d *decoder) fail(key, format string, args ...any) {
	if d.err == nil {
		d.err = &ReconstructionError{
			Path: d.path + "." + key,
			Msg:  fmt.Sprintf(format, args...),
		}
	}
}

func (d *decoder) field(key string) (any, bool) {
	v, ok := d.m[key]
	if !ok {
		d.fail(key, "missing required field")
		return nil, false
	}
	d.used[key] = true
	return v, true
}

func (d *decoder) str(key string) string {
	v, ok := d.field(key)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.fail(key, "expected string, got %T", v)
		return ""
	}
	return s
}

func (d *decoder) ctx(key string) ast.Ctx {
	s := ast.Ctx(d.str(key))
	if d.err == nil && s != ast.CtxLoad && s != ast.CtxStore {
		d.fail(key, "invalid ctx %q", s)
	}
	return s
}

// scalar reads a constant value: string, bool, int, float64, or nil.
func (d *decoder) scalar(key string) any {
	v, ok := d.field(key)
	if !ok {
		return nil
	}
	switch v.(type) {
	case nil, string, bool, int, float64:
		return v
	default:
		d.fail(key, "unsupported constant of type %T", v)
		return nil
	}
}

func (d *decoder) expr(key string) ast.Expr {
	e := d.exprOrNil(key)
	if e == nil && d.err == nil {
		d.fail(key, "field must not be null")
	}
	return e
}

func (d *decoder) exprOrNil(key string) ast.Expr {
	v, ok := d.field(key)
	if !ok || v == nil {
		return nil
	}
	return d.exprAt(v, d.path+"."+key)
}

func (d *decoder) exprAt(v any, path string) ast.Expr {
	m, ok := v.(Mapping)
	if !ok {
		d.failAt(path, "expected node mapping, got %T", v)
		return nil
	}
	n, err := decodeNode(m, path)
	if err != nil {
		if d.err == nil {
			d.err = err
		}
		return nil
	}
	e, ok := n.(ast.Expr)
	if !ok {
		d.failAt(path, "expected expression, got %s", n.Kind())
		return nil
	}
	return e
}

func (d *decoder) failAt(path, format string, args ...any) {
	if d.err == nil {
		d.err = &ReconstructionError{Path: path, Msg: fmt.Sprintf(format, args...)}
	}
}

func (d *decoder) list(key string) []any {
	v, ok := d.field(key)
	if !ok {
		return nil
	}
	l, ok := v.([]any)
	if !ok {
		if v == nil {
			return nil
		}
		d.fail(key, "expected list, got %T", v)
		return nil
	}
	return l
}

func (d *decoder) stmts(key string) []ast.Stmt {
	items := d.list(key)
	out := make([]ast.Stmt, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("%s.%s[%d]", d.path, key, i)
		m, ok := item.(Mapping)
		if !ok {
			d.failAt(path, "expected node mapping, got %T", item)
			return out
		}
		n, err := decodeNode(m, path)
		if err != nil {
			if d.err == nil {
				d.err = err
			}
			return out
		}
		s, ok := n.(ast.Stmt)
		if !ok {
			d.failAt(path, "expected statement, got %s", n.Kind())
			return out
		}
		out = append(out, s)
	}
	return out
}

func (d *decoder) exprs(key string) []ast.Expr {
	items := d.list(key)
	out := make([]ast.Expr, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("%s.%s[%d]", d.path, key, i)
		e := d.exprAt(item, path)
		if d.err != nil {
			return out
		}
		out = append(out, e)
	}
	return out
}

func (d *decoder) args(key string) []*ast.Arg {
	items := d.list(key)
	out := make([]*ast.Arg, 0, len(items))
	for i, item := range items {
		n := d.childOfKind(item, fmt.Sprintf("%s.%s[%d]", d.path, key, i))
		if d.err != nil {
			return out
		}
		a, ok := n.(*ast.Arg)
		if !ok {
			d.failAt(fmt.Sprintf("%s.%s[%d]", d.path, key, i), "expected Arg, got %s", n.Kind())
			return out
		}
		out = append(out, a)
	}
	return out
}

func (d *decoder) keywords(key string) []*ast.Keyword {
	items := d.list(key)
	out := make([]*ast.Keyword, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("%s.%s[%d]", d.path, key, i)
		n := d.childOfKind(item, path)
		if d.err != nil {
			return out
		}
		k, ok := n.(*ast.Keyword)
		if !ok {
			d.failAt(path, "expected Keyword, got %s", n.Kind())
			return out
		}
		out = append(out, k)
	}
	return out
}

func (d *decoder) handlers(key string) []*ast.ExceptHandler {
	items := d.list(key)
	out := make([]*ast.ExceptHandler, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("%s.%s[%d]", d.path, key, i)
		n := d.childOfKind(item, path)
		if d.err != nil {
			return out
		}
		h, ok := n.(*ast.ExceptHandler)
		if !ok {
			d.failAt(path, "expected ExceptHandler, got %s", n.Kind())
			return out
		}
		out = append(out, h)
	}
	return out
}

func (d *decoder) childOfKind(item any, path string) ast.Node {
	m, ok := item.(Mapping)
	if !ok {
		d.failAt(path, "expected node mapping, got %T", item)
		return &ast.Pass{}
	}
	n, err := decodeNode(m, path)
	if err != nil {
		if d.err == nil {
			d.err = err
		}
		return &ast.Pass{}
	}
	return n
}

func intValue(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case float64:
		if x == float64(int(x)) {
			return int(x), true
		}
	}
	return 0, false
}
