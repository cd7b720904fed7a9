package ast

import "strings"

// Factory centralizes AST node creation for rewrite passes. Every node it
// creates carries the factory's source position, so synthesized subtrees
// come out positioned instead of relying on a later normalization pass.
type Factory struct {
	line, col int
}

// NewFactory returns a Factory stamping the given position.
func NewFactory(line, col int) *Factory {
	return &Factory{line: line, col: col}
}

// FactoryFor returns a Factory stamping the position of an existing node,
// typically the node a pass is about to replace.
func FactoryFor(n Node) *Factory {
	line, col := n.Pos()
	return &Factory{line: line, col: col}
}

func (f *Factory) base() Base { return Base{Line: f.line, Col: f.col} }

// At returns the position Base the factory stamps on new nodes, for passes
// that build node literals directly.
func (f *Factory) At() Base { return f.base() }

// Name creates a read reference.
func (f *Factory) Name(id string) *Name {
	return &Name{Base: f.base(), ID: id, Ctx: CtxLoad}
}

// StoreName creates a write target.
func (f *Factory) StoreName(id string) *Name {
	return &Name{Base: f.base(), ID: id, Ctx: CtxStore}
}

// Dotted builds the reference for a dotted path: "logging.warning" becomes
// Attribute(Name("logging"), "warning"), a bare name stays a Name.
func (f *Factory) Dotted(path string) Expr {
	parts := strings.Split(path, ".")
	var e Expr = f.Name(parts[0])
	for _, attr := range parts[1:] {
		e = &Attribute{Base: f.base(), Value: e, Attr: attr, Ctx: CtxLoad}
	}
	return e
}

// Constant creates a literal scalar.
func (f *Factory) Constant(v any) *Constant {
	return &Constant{Base: f.base(), Value: v}
}

// Int creates an integer literal.
func (f *Factory) Int(n int) *Constant { return f.Constant(n) }

// Str creates a string literal.
func (f *Factory) Str(s string) *Constant { return f.Constant(s) }

// Call creates a call with positional arguments only.
func (f *Factory) Call(fn Expr, args ...Expr) *Call {
	return &Call{Base: f.base(), Func: fn, Args: args}
}

// Keyword creates a name=value call argument.
func (f *Factory) Keyword(name string, value Expr) *Keyword {
	return &Keyword{Base: f.base(), Arg: name, Value: value}
}

// Dict1 creates a single-entry dict literal with a string key.
func (f *Factory) Dict1(key string, value Expr) *Dict {
	return &Dict{Base: f.base(), Keys: []Expr{f.Str(key)}, Values: []Expr{value}}
}

// BinOp creates a binary operation.
func (f *Factory) BinOp(left Expr, op string, right Expr) *BinOp {
	return &BinOp{Base: f.base(), Left: left, Op: op, Right: right}
}

// ExprStmt wraps an expression as a statement.
func (f *Factory) ExprStmt(e Expr) *ExprStmt {
	return &ExprStmt{Base: f.base(), Value: e}
}

// Assign1 creates a single-target assignment to a bare name.
func (f *Factory) Assign1(target string, value Expr) *Assign {
	return &Assign{Base: f.base(), Targets: []Expr{f.StoreName(target)}, Value: value}
}

// FormatString builds a JoinedStr from alternating literal and interpolated
// parts: strings become Constants, expressions become FormattedValues.
func (f *Factory) FormatString(parts ...any) *JoinedStr {
	values := make([]Expr, 0, len(parts))
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			values = append(values, f.Str(v))
		case Expr:
			values = append(values, &FormattedValue{Base: f.base(), Value: v})
		}
	}
	return &JoinedStr{Base: f.base(), Values: values}
}
