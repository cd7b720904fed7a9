package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/1hpEcVns/ComplierFrontEnd/ast"
)

func load(id string) *ast.Name  { return &ast.Name{ID: id, Ctx: ast.CtxLoad} }
func store(id string) *ast.Name { return &ast.Name{ID: id, Ctx: ast.CtxStore} }

func TestPrintFunction(t *testing.T) {
	m := &ast.Module{Body: []ast.Stmt{
		&ast.FunctionDef{
			Name: "process",
			Args: []*ast.Arg{{Name: "data"}, {Name: "config"}},
			Body: []ast.Stmt{
				&ast.Assign{
					Targets: []ast.Expr{store("result")},
					Value: &ast.Call{
						Func: load("len"),
						Args: []ast.Expr{load("data")},
					},
				},
				&ast.Return{Value: load("result")},
			},
		},
	}}
	want := "def process(data, config):\n" +
		"    result = len(data)\n" +
		"    return result\n"
	assert.Equal(t, want, Print(m))
}

func TestPrintControlFlow(t *testing.T) {
	m := &ast.Module{Body: []ast.Stmt{
		&ast.If{
			Test: &ast.BinOp{Left: load("x"), Op: ">", Right: &ast.Constant{Value: 0}},
			Body: []ast.Stmt{&ast.ExprStmt{Value: &ast.Call{
				Func: load("print"),
				Args: []ast.Expr{&ast.Constant{Value: "positive"}},
			}}},
			OrElse: []ast.Stmt{&ast.If{
				Test:   &ast.BinOp{Left: load("x"), Op: "<", Right: &ast.Constant{Value: 0}},
				Body:   []ast.Stmt{&ast.Pass{}},
				OrElse: []ast.Stmt{&ast.Break{}},
			}},
		},
	}}
	want := "if x > 0:\n" +
		"    print(\"positive\")\n" +
		"elif x < 0:\n" +
		"    pass\n" +
		"else:\n" +
		"    break\n"
	assert.Equal(t, want, Print(m))
}

func TestPrintLoops(t *testing.T) {
	m := &ast.Module{Body: []ast.Stmt{
		&ast.For{
			Target: store("i"),
			Iter: &ast.Call{
				Func: load("range"),
				Args: []ast.Expr{
					&ast.Constant{Value: 0},
					&ast.Constant{Value: 8},
					&ast.Constant{Value: 4},
				},
			},
			Body: []ast.Stmt{&ast.Continue{}},
		},
		&ast.While{
			Test: &ast.Constant{Value: true},
			Body: []ast.Stmt{&ast.Break{}},
		},
	}}
	want := "for i in range(0, 8, 4):\n" +
		"    continue\n" +
		"while True:\n" +
		"    break\n"
	assert.Equal(t, want, Print(m))
}

func TestPrintTry(t *testing.T) {
	m := &ast.Module{Body: []ast.Stmt{
		&ast.Try{
			Body: []ast.Stmt{
				&ast.Assign{
					Targets: []ast.Expr{store("data")},
					Value: &ast.Call{
						Func: &ast.Attribute{Value: load("json"), Attr: "loads", Ctx: ast.CtxLoad},
						Args: []ast.Expr{load("raw")},
					},
				},
			},
			Handlers: []*ast.ExceptHandler{{
				Type: &ast.Attribute{Value: load("json"), Attr: "JSONDecodeError", Ctx: ast.CtxLoad},
				Name: "e",
				Body: []ast.Stmt{
					&ast.Assign{
						Targets: []ast.Expr{store("data")},
						Value:   &ast.Constant{Value: nil},
					},
				},
			}},
			FinalBody: []ast.Stmt{&ast.ExprStmt{Value: &ast.Call{Func: load("cleanup")}}},
		},
	}}
	want := "try:\n" +
		"    data = json.loads(raw)\n" +
		"except json.JSONDecodeError as e:\n" +
		"    data = None\n" +
		"finally:\n" +
		"    cleanup()\n"
	assert.Equal(t, want, Print(m))
}

func TestPrintBareExcept(t *testing.T) {
	m := &ast.Module{Body: []ast.Stmt{
		&ast.Try{
			Body:     []ast.Stmt{&ast.Pass{}},
			Handlers: []*ast.ExceptHandler{{Body: []ast.Stmt{&ast.Pass{}}}},
		},
	}}
	want := "try:\n    pass\nexcept:\n    pass\n"
	assert.Equal(t, want, Print(m))
}

func TestPrintCallForms(t *testing.T) {
	cases := []struct {
		expr ast.Expr
		want string
	}{
		{&ast.Call{Func: load("f")}, "f()"},
		{
			&ast.Call{
				Func:     &ast.Attribute{Value: load("logging"), Attr: "warning", Ctx: ast.CtxLoad},
				Args:     []ast.Expr{&ast.Constant{Value: "msg"}},
				Keywords: []*ast.Keyword{{Arg: "extra", Value: &ast.Dict{Keys: []ast.Expr{&ast.Constant{Value: "timestamp"}}, Values: []ast.Expr{load("ts")}}}},
			},
			`logging.warning("msg", extra={"timestamp": ts})`,
		},
	}
	for _, tc := range cases {
		m := &ast.Module{Body: []ast.Stmt{&ast.ExprStmt{Value: tc.expr}}}
		assert.Equal(t, tc.want+"\n", Print(m))
	}
}

func TestPrintConstants(t *testing.T) {
	cases := []struct {
		value any
		want  string
	}{
		{nil, "None"},
		{true, "True"},
		{false, "False"},
		{42, "42"},
		{0.1, "0.1"},
		{10.0, "10.0"},
		{"hi", `"hi"`},
	}
	for _, tc := range cases {
		m := &ast.Module{Body: []ast.Stmt{&ast.ExprStmt{Value: &ast.Constant{Value: tc.value}}}}
		assert.Equal(t, tc.want+"\n", Print(m))
	}
}

func TestPrintCollections(t *testing.T) {
	m := &ast.Module{Body: []ast.Stmt{
		&ast.Assign{
			Targets: []ast.Expr{&ast.Tuple{
				Ctx:  ast.CtxStore,
				Elts: []ast.Expr{store("a"), store("b")},
			}},
			Value: &ast.List{Elts: []ast.Expr{
				&ast.Constant{Value: 1},
				&ast.Tuple{Elts: []ast.Expr{&ast.Constant{Value: 2}}},
			}},
		},
	}}
	assert.Equal(t, "(a, b) = [1, (2,)]\n", Print(m))
}

func TestPrintNestedBinOpParenthesized(t *testing.T) {
	m := &ast.Module{Body: []ast.Stmt{
		&ast.ExprStmt{Value: &ast.BinOp{
			Left:  &ast.BinOp{Left: load("a"), Op: "+", Right: load("b")},
			Op:    "*",
			Right: load("c"),
		}},
	}}
	assert.Equal(t, "(a + b) * c\n", Print(m))
}

func TestPrintFString(t *testing.T) {
	m := &ast.Module{Body: []ast.Stmt{
		&ast.ExprStmt{Value: &ast.Call{
			Func: load("print"),
			Args: []ast.Expr{&ast.JoinedStr{Values: []ast.Expr{
				&ast.Constant{Value: "Error in json.loads: "},
				&ast.FormattedValue{Value: load("e")},
			}}},
		}},
	}}
	assert.Equal(t, "print(f\"Error in json.loads: {e}\")\n", Print(m))
}

func TestPrintEmptyBodyGetsPass(t *testing.T) {
	m := &ast.Module{Body: []ast.Stmt{
		&ast.FunctionDef{Name: "stub"},
	}}
	assert.Equal(t, "def stub():\n    pass\n", Print(m))
}

func TestPrintChainedAssign(t *testing.T) {
	m := &ast.Module{Body: []ast.Stmt{
		&ast.Assign{
			Targets: []ast.Expr{store("a"), store("b")},
			Value:   &ast.Constant{Value: 0},
		},
	}}
	assert.Equal(t, "a = b = 0\n", Print(m))
}

func TestPrintStmtsSubset(t *testing.T) {
	stmts := []ast.Stmt{&ast.Return{}}
	assert.Equal(t, "return\n", PrintStmts(stmts))
}

func TestPrintDeterministic(t *testing.T) {
	m := &ast.Module{Body: []ast.Stmt{
		&ast.FunctionDef{
			Name: "f",
			Body: []ast.Stmt{&ast.Return{Value: &ast.Dict{
				Keys:   []ast.Expr{&ast.Constant{Value: "a"}, &ast.Constant{Value: "b"}},
				Values: []ast.Expr{&ast.Constant{Value: 1}, &ast.Constant{Value: 2}},
			}}},
		},
	}}
	assert.Equal(t, Print(m), Print(m))
}
