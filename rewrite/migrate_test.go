package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1hpEcVns/ComplierFrontEnd/ast"
)

var logMigration = CallMigration{
	Old:     "log_warning",
	New:     "logging.warning",
	Keyword: "timestamp",
	Wrapper: "extra",
}

func callStmt(call *ast.Call) *ast.Module {
	return &ast.Module{Body: []ast.Stmt{&ast.ExprStmt{Value: call}}}
}

func TestCallMigration_NoKeyword(t *testing.T) {
	m := callStmt(&ast.Call{
		Func: &ast.Name{ID: "log_warning", Ctx: ast.CtxLoad},
		Args: []ast.Expr{&ast.Constant{Value: "Data is missing!"}},
	})
	out := logMigration.Apply(m)
	require.NotSame(t, m, out)

	call := out.Body[0].(*ast.ExprStmt).Value.(*ast.Call)
	attr := call.Func.(*ast.Attribute)
	assert.Equal(t, "warning", attr.Attr)
	assert.Equal(t, "logging", attr.Value.(*ast.Name).ID)
	require.Len(t, call.Args, 1)
	assert.Equal(t, "Data is missing!", call.Args[0].(*ast.Constant).Value)
	assert.Empty(t, call.Keywords, "no matched keyword, no wrapper")
}

func TestCallMigration_WrapsMatchedKeyword(t *testing.T) {
	ts := &ast.Name{ID: "current_ts", Ctx: ast.CtxLoad}
	m := callStmt(&ast.Call{
		Func:     &ast.Name{ID: "log_warning", Ctx: ast.CtxLoad},
		Args:     []ast.Expr{&ast.Constant{Value: "An error occurred."}},
		Keywords: []*ast.Keyword{{Arg: "timestamp", Value: ts}},
	})
	out := logMigration.Apply(m)

	call := out.Body[0].(*ast.ExprStmt).Value.(*ast.Call)
	require.Len(t, call.Keywords, 1)
	kw := call.Keywords[0]
	assert.Equal(t, "extra", kw.Arg)

	dict := kw.Value.(*ast.Dict)
	require.Len(t, dict.Keys, 1)
	assert.Equal(t, "timestamp", dict.Keys[0].(*ast.Constant).Value)
	assert.Same(t, ts, dict.Values[0], "original value node is carried over")
}

func TestCallMigration_DropsUnmatchedKeywords(t *testing.T) {
	m := callStmt(&ast.Call{
		Func: &ast.Name{ID: "log_warning", Ctx: ast.CtxLoad},
		Args: []ast.Expr{&ast.Constant{Value: "msg"}},
		Keywords: []*ast.Keyword{
			{Arg: "level", Value: &ast.Constant{Value: 2}},
			{Arg: "timestamp", Value: &ast.Constant{Value: 123}},
			{Arg: "color", Value: &ast.Constant{Value: "red"}},
		},
	})
	out := logMigration.Apply(m)

	call := out.Body[0].(*ast.ExprStmt).Value.(*ast.Call)
	require.Len(t, call.Keywords, 1, "only the wrapper survives")
	assert.Equal(t, "extra", call.Keywords[0].Arg)
}

func TestCallMigration_UnrelatedCallPassThrough(t *testing.T) {
	m := callStmt(&ast.Call{
		Func: &ast.Name{ID: "log_error", Ctx: ast.CtxLoad},
		Args: []ast.Expr{&ast.Constant{Value: "msg"}},
	})
	out := logMigration.Apply(m)
	assert.Same(t, m, out, "non-matching tree comes back unchanged")
}

func TestCallMigration_QualifiedCalleePassThrough(t *testing.T) {
	// Only bare-name callees trigger; legacy.log_warning is a different
	// operation.
	m := callStmt(&ast.Call{
		Func: &ast.Attribute{
			Value: &ast.Name{ID: "legacy", Ctx: ast.CtxLoad},
			Attr:  "log_warning",
			Ctx:   ast.CtxLoad,
		},
	})
	assert.Same(t, m, logMigration.Apply(m))
}

func TestCallMigration_RewritesAtDepth(t *testing.T) {
	m := &ast.Module{Body: []ast.Stmt{
		&ast.FunctionDef{Name: "process", Body: []ast.Stmt{
			&ast.If{
				Test: &ast.Name{ID: "bad", Ctx: ast.CtxLoad},
				Body: []ast.Stmt{
					&ast.Assign{
						Targets: []ast.Expr{&ast.Name{ID: "r", Ctx: ast.CtxStore}},
						Value: &ast.Call{
							Func: &ast.Name{ID: "log_warning", Ctx: ast.CtxLoad},
							Args: []ast.Expr{&ast.Constant{Value: "deep"}},
						},
					},
				},
			},
		}},
	}}
	out := logMigration.Apply(m)
	assign := out.Body[0].(*ast.FunctionDef).Body[0].(*ast.If).Body[0].(*ast.Assign)
	call := assign.Value.(*ast.Call)
	assert.Equal(t, "warning", call.Func.(*ast.Attribute).Attr)
}

func TestCallMigration_SynthesizedNodesPositioned(t *testing.T) {
	orig := &ast.Call{
		Base: ast.Base{Line: 9, Col: 8},
		Func: &ast.Name{ID: "log_warning", Ctx: ast.CtxLoad},
		Args: []ast.Expr{&ast.Constant{Value: "msg"}},
	}
	out := logMigration.Apply(callStmt(orig))

	call := out.Body[0].(*ast.ExprStmt).Value.(*ast.Call)
	line, col := call.Pos()
	assert.Equal(t, 9, line)
	assert.Equal(t, 8, col)
	line, _ = call.Func.Pos()
	assert.Equal(t, 9, line, "replacement callee takes the call's position")
}

func TestCallMigration_Idempotent(t *testing.T) {
	m := callStmt(&ast.Call{
		Func: &ast.Name{ID: "log_warning", Ctx: ast.CtxLoad},
		Args: []ast.Expr{&ast.Constant{Value: "msg"}},
	})
	once := logMigration.Apply(m)
	twice := logMigration.Apply(once)
	assert.Same(t, once, twice, "migrated call no longer matches")
}
