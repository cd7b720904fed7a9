package codec

import "github.com/1hpEcVns/ComplierFrontEnd/ast"

// Encode converts a typed node into its mapping form. It is a total
// function over shape-valid trees: every child is encoded recursively,
// sequences become ordered lists, scalars pass through unchanged, and set
// positions are carried on the reserved auxiliary keys.
func Encode(n ast.Node) Mapping {
	m := Mapping{KeyNodeType: string(n.Kind())}
	if line, col := n.Pos(); line > 0 {
		m[KeyLine] = line
		m[KeyCol] = col
	}

	switch x := n.(type) {
	case *ast.Module:
		m["body"] = encodeStmts(x.Body)
	case *ast.FunctionDef:
		m["name"] = x.Name
		args := make([]any, len(x.Args))
		for i, a := range x.Args {
			args[i] = Encode(a)
		}
		m["args"] = args
		m["body"] = encodeStmts(x.Body)
	case *ast.Arg:
		m["name"] = x.Name
	case *ast.Assign:
		m["targets"] = encodeExprs(x.Targets)
		m["value"] = encodeExpr(x.Value)
	case *ast.ExprStmt:
		m["value"] = encodeExpr(x.Value)
	case *ast.Return:
		m["value"] = encodeExpr(x.Value)
	case *ast.If:
		m["test"] = encodeExpr(x.Test)
		m["body"] = encodeStmts(x.Body)
		m["orelse"] = encodeStmts(x.OrElse)
	case *ast.While:
		m["test"] = encodeExpr(x.Test)
		m["body"] = encodeStmts(x.Body)
	case *ast.For:
		m["target"] = encodeExpr(x.Target)
		m["iter"] = encodeExpr(x.Iter)
		m["body"] = encodeStmts(x.Body)
	case *ast.Break, *ast.Continue, *ast.Pass:
		// no fields
	case *ast.Try:
		m["body"] = encodeStmts(x.Body)
		handlers := make([]any, len(x.Handlers))
		for i, h := range x.Handlers {
			handlers[i] = Encode(h)
		}
		m["handlers"] = handlers
		m["orelse"] = encodeStmts(x.OrElse)
		m["finalbody"] = encodeStmts(x.FinalBody)
	case *ast.ExceptHandler:
		m["type"] = encodeExpr(x.Type)
		m["name"] = x.Name
		m["body"] = encodeStmts(x.Body)
	case *ast.Call:
		m["func"] = encodeExpr(x.Func)
		m["args"] = encodeExprs(x.Args)
		kws := make([]any, len(x.Keywords))
		for i, k := range x.Keywords {
			kws[i] = Encode(k)
		}
		m["keywords"] = kws
	case *ast.Keyword:
		m["arg"] = x.Arg
		m["value"] = encodeExpr(x.Value)
	case *ast.Name:
		m["id"] = x.ID
		m["ctx"] = string(x.Ctx)
	case *ast.Attribute:
		m["value"] = encodeExpr(x.Value)
		m["attr"] = x.Attr
		m["ctx"] = string(x.Ctx)
	case *ast.Constant:
		m["value"] = x.Value
	case *ast.BinOp:
		m["left"] = encodeExpr(x.Left)
		m["op"] = x.Op
		m["right"] = encodeExpr(x.Right)
	case *ast.Dict:
		m["keys"] = encodeExprs(x.Keys)
		m["values"] = encodeExprs(x.Values)
	case *ast.List:
		m["elts"] = encodeExprs(x.Elts)
		m["ctx"] = string(x.Ctx)
	case *ast.Tuple:
		m["elts"] = encodeExprs(x.Elts)
		m["ctx"] = string(x.Ctx)
	case *ast.JoinedStr:
		m["values"] = encodeExprs(x.Values)
	case *ast.FormattedValue:
		m["value"] = encodeExpr(x.Value)
	}
	return m
}

func encodeStmts(stmts []ast.Stmt) []any {
	out := make([]any, len(stmts))
	for i, s := range stmts {
		out[i] = Encode(s)
	}
	return out
}

func encodeExprs(exprs []ast.Expr) []any {
	out := make([]any, len(exprs))
	for i, e := range exprs {
		out[i] = encodeExpr(e)
	}
	return out
}

func encodeExpr(e ast.Expr) any {
	if e == nil {
		return nil
	}
	return Encode(e)
}
