package ast

// Kind identifies a node's grammatical category. The set below is the
// declared kind set of the engine; codec decoding is closed over it, while
// traversal degrades to a silent default on anything it does not recognize.
type Kind string

const (
	KindModule         Kind = "Module"
	KindFunctionDef    Kind = "FunctionDef"
	KindArg            Kind = "Arg"
	KindAssign         Kind = "Assign"
	KindExpr           Kind = "Expr"
	KindReturn         Kind = "Return"
	KindIf             Kind = "If"
	KindWhile          Kind = "While"
	KindFor            Kind = "For"
	KindBreak          Kind = "Break"
	KindContinue       Kind = "Continue"
	KindPass           Kind = "Pass"
	KindTry            Kind = "Try"
	KindExceptHandler  Kind = "ExceptHandler"
	KindCall           Kind = "Call"
	KindKeyword        Kind = "Keyword"
	KindName           Kind = "Name"
	KindAttribute      Kind = "Attribute"
	KindConstant       Kind = "Constant"
	KindBinOp          Kind = "BinOp"
	KindDict           Kind = "Dict"
	KindList           Kind = "List"
	KindTuple          Kind = "Tuple"
	KindJoinedStr      Kind = "JoinedStr"
	KindFormattedValue Kind = "FormattedValue"
)

// Ctx marks whether a reference reads or writes its target.
type Ctx string

const (
	CtxLoad  Ctx = "Load"
	CtxStore Ctx = "Store"
)

// Node is the interface for all AST nodes.
type Node interface {
	Kind() Kind
	Pos() (line, col int)
	SetPos(line, col int)
	node()
}

// Stmt is the interface for statement nodes.
type Stmt interface {
	Node
	stmt()
}

// Expr is the interface for expression nodes.
type Expr interface {
	Node
	expr()
}

// Base provides position metadata common to all nodes. A zero Line means
// the position is missing; FixMissingPositions fills it before emission.
type Base struct {
	Line int // 1-based source line, 0 if unknown
	Col  int // 0-based source column
}

func (b *Base) Pos() (line, col int) { return b.Line, b.Col }
func (b *Base) SetPos(line, col int) { b.Line, b.Col = line, col }
func (b *Base) node()                {}

// Module is the root node.
type Module struct {
	Base
	Body []Stmt
}

func (m *Module) Kind() Kind { return KindModule }

// FunctionDef represents def name(args) body.
type FunctionDef struct {
	Base
	Name string
	Args []*Arg
	Body []Stmt
}

func (f *FunctionDef) Kind() Kind { return KindFunctionDef }
func (f *FunctionDef) stmt()      {}

// Arg is a single formal parameter of a FunctionDef.
type Arg struct {
	Base
	Name string
}

func (a *Arg) Kind() Kind { return KindArg }

// Assign represents targets = value. Multiple targets model chained
// assignment (a = b = expr); a Tuple target models destructuring.
type Assign struct {
	Base
	Targets []Expr
	Value   Expr
}

func (a *Assign) Kind() Kind { return KindAssign }
func (a *Assign) stmt()      {}

// ExprStmt is a statement consisting of a bare expression.
type ExprStmt struct {
	Base
	Value Expr
}

func (e *ExprStmt) Kind() Kind { return KindExpr }
func (e *ExprStmt) stmt()      {}

// Return represents return [value].
type Return struct {
	Base
	Value Expr // nil for a bare return
}

func (r *Return) Kind() Kind { return KindReturn }
func (r *Return) stmt()      {}

// If represents if test: body [else: orelse].
type If struct {
	Base
	Test   Expr
	Body   []Stmt
	OrElse []Stmt
}

func (i *If) Kind() Kind { return KindIf }
func (i *If) stmt()      {}

// While represents while test: body.
type While struct {
	Base
	Test Expr
	Body []Stmt
}

func (w *While) Kind() Kind { return KindWhile }
func (w *While) stmt()      {}

// For represents for target in iter: body.
type For struct {
	Base
	Target Expr
	Iter   Expr
	Body   []Stmt
}

func (f *For) Kind() Kind { return KindFor }
func (f *For) stmt()      {}

// Break represents break.
type Break struct{ Base }

func (b *Break) Kind() Kind { return KindBreak }
func (b *Break) stmt()      {}

// Continue represents continue.
type Continue struct{ Base }

func (c *Continue) Kind() Kind { return KindContinue }
func (c *Continue) stmt()      {}

// Pass represents pass.
type Pass struct{ Base }

func (p *Pass) Kind() Kind { return KindPass }
func (p *Pass) stmt()      {}

// Try represents try: body except...: handlers [else: orelse] [finally: finalbody].
type Try struct {
	Base
	Body      []Stmt
	Handlers  []*ExceptHandler
	OrElse    []Stmt
	FinalBody []Stmt
}

func (t *Try) Kind() Kind { return KindTry }
func (t *Try) stmt()      {}

// ExceptHandler is one except clause of a Try.
type ExceptHandler struct {
	Base
	Type Expr   // nil for a bare except
	Name string // bound exception variable, "" if unnamed
	Body []Stmt
}

func (e *ExceptHandler) Kind() Kind { return KindExceptHandler }

// Call represents func(args..., keywords...).
type Call struct {
	Base
	Func     Expr
	Args     []Expr
	Keywords []*Keyword
}

func (c *Call) Kind() Kind { return KindCall }
func (c *Call) expr()      {}

// Keyword is a single name=value argument of a Call.
type Keyword struct {
	Base
	Arg   string
	Value Expr
}

func (k *Keyword) Kind() Kind { return KindKeyword }

// Name is a variable or function reference.
type Name struct {
	Base
	ID  string
	Ctx Ctx
}

func (n *Name) Kind() Kind { return KindName }
func (n *Name) expr()      {}

// Attribute represents value.attr.
type Attribute struct {
	Base
	Value Expr
	Attr  string
	Ctx   Ctx
}

func (a *Attribute) Kind() Kind { return KindAttribute }
func (a *Attribute) expr()      {}

// Constant is a literal scalar: string, int, float64, bool, or nil.
type Constant struct {
	Base
	Value any
}

func (c *Constant) Kind() Kind { return KindConstant }
func (c *Constant) expr()      {}

// BinOp represents left op right. Op is the operator literal ("+", "*", ...).
type BinOp struct {
	Base
	Left  Expr
	Op    string
	Right Expr
}

func (b *BinOp) Kind() Kind { return KindBinOp }
func (b *BinOp) expr()      {}

// Dict is {key: value, ...}. Keys and Values are parallel slices.
type Dict struct {
	Base
	Keys   []Expr
	Values []Expr
}

func (d *Dict) Kind() Kind { return KindDict }
func (d *Dict) expr()      {}

// List is [elt, ...].
type List struct {
	Base
	Elts []Expr
	Ctx  Ctx
}

func (l *List) Kind() Kind { return KindList }
func (l *List) expr()      {}

// Tuple is (elt, ...). Used with CtxStore as a destructuring target.
type Tuple struct {
	Base
	Elts []Expr
	Ctx  Ctx
}

func (t *Tuple) Kind() Kind { return KindTuple }
func (t *Tuple) expr()      {}

// JoinedStr is a format string: a sequence of Constant and FormattedValue parts.
type JoinedStr struct {
	Base
	Values []Expr
}

func (j *JoinedStr) Kind() Kind { return KindJoinedStr }
func (j *JoinedStr) expr()      {}

// FormattedValue is one interpolated expression inside a JoinedStr.
type FormattedValue struct {
	Base
	Value Expr
}

func (f *FormattedValue) Kind() Kind { return KindFormattedValue }
func (f *FormattedValue) expr()      {}
