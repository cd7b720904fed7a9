package doc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1hpEcVns/ComplierFrontEnd/ast"
)

func fnWithDoc(name, docstring string, params ...string) *ast.FunctionDef {
	args := make([]*ast.Arg, len(params))
	for i, p := range params {
		args[i] = &ast.Arg{Name: p}
	}
	body := []ast.Stmt{&ast.Return{Value: &ast.Constant{Value: nil}}}
	if docstring != "" {
		body = append([]ast.Stmt{
			&ast.ExprStmt{Value: &ast.Constant{Value: docstring}},
		}, body...)
	}
	return &ast.FunctionDef{Name: name, Args: args, Body: body}
}

func TestExtract_Functions(t *testing.T) {
	m := &ast.Module{Body: []ast.Stmt{
		fnWithDoc("get_user_by_id", "Look up a user by id.", "user_id", "active_only"),
		&ast.Assign{
			Targets: []ast.Expr{&ast.Name{ID: "VERSION", Ctx: ast.CtxStore}},
			Value:   &ast.Constant{Value: "1.0"},
		},
		fnWithDoc("calculate_age", "", "birth_date"),
	}}
	md := Extract(m)

	require.Len(t, md.Funcs, 2)
	assert.Equal(t, "get_user_by_id", md.Funcs[0].Name)
	assert.Equal(t, []string{"user_id", "active_only"}, md.Funcs[0].Params)
	assert.Equal(t, "Look up a user by id.", md.Funcs[0].Doc)
	assert.Equal(t, "calculate_age", md.Funcs[1].Name)
	assert.Empty(t, md.Funcs[1].Doc)
}

func TestExtract_Line(t *testing.T) {
	fn := fnWithDoc("f", "")
	fn.Line = 12
	md := Extract(&ast.Module{Body: []ast.Stmt{fn}})
	assert.Equal(t, 12, md.Funcs[0].Line)
}

func TestExtract_NestedFunctionsSkipped(t *testing.T) {
	outer := fnWithDoc("outer", "doc")
	outer.Body = append(outer.Body, fnWithDoc("inner", "hidden"))
	md := Extract(&ast.Module{Body: []ast.Stmt{outer}})
	require.Len(t, md.Funcs, 1)
	assert.Equal(t, "outer", md.Funcs[0].Name)
}

func TestDocstring_OnlyLeadingStringCounts(t *testing.T) {
	fn := &ast.FunctionDef{
		Name: "f",
		Body: []ast.Stmt{
			&ast.Pass{},
			&ast.ExprStmt{Value: &ast.Constant{Value: "too late"}},
		},
	}
	assert.Empty(t, Docstring(fn))

	fn = &ast.FunctionDef{
		Name: "g",
		Body: []ast.Stmt{
			&ast.ExprStmt{Value: &ast.Constant{Value: 42}},
		},
	}
	assert.Empty(t, Docstring(fn), "non-string leading constant is not a docstring")
}

func TestDocstring_MultilineIndentCleaned(t *testing.T) {
	raw := "\n    Look up a user by id.\n\n    Returns None when the user\n    does not exist.\n    "
	fn := &ast.FunctionDef{
		Name: "get_user",
		Body: []ast.Stmt{&ast.ExprStmt{Value: &ast.Constant{Value: raw}}},
	}
	want := "Look up a user by id.\n\nReturns None when the user\ndoes not exist."
	assert.Equal(t, want, Docstring(fn))
}

func TestMarkdown(t *testing.T) {
	md := &ModuleDoc{Funcs: []FuncDoc{
		{Name: "get_user_by_id", Params: []string{"user_id", "active_only"}, Doc: "Look up a user by id."},
		{Name: "calculate_age", Params: []string{"birth_date"}},
	}}
	out := Markdown(md)

	want := "# Code Documentation\n" +
		"\n" +
		"## Function: `get_user_by_id`\n" +
		"\n" +
		"**Signature:**\n" +
		"```python\n" +
		"def get_user_by_id(user_id, active_only)\n" +
		"```\n" +
		"\n" +
		"**Description:**\n" +
		"Look up a user by id.\n" +
		"\n" +
		"## Function: `calculate_age`\n" +
		"\n" +
		"**Signature:**\n" +
		"```python\n" +
		"def calculate_age(birth_date)\n" +
		"```\n"
	assert.Equal(t, want, out)
}

func TestMarkdown_EmptyModule(t *testing.T) {
	assert.Equal(t, "# Code Documentation\n", Markdown(&ModuleDoc{}))
}
