// Package rewrite contains the tree-to-tree passes: call migration, guard
// injection, and loop unrolling. Every pass is a pure function over the
// tree — a non-matching input always comes back unchanged, and no pass can
// fail on a well-formed tree.
package rewrite

import "github.com/1hpEcVns/ComplierFrontEnd/ast"

// Pass rewrites an AST. Implementations must not mutate the input module.
type Pass interface {
	Name() string
	Apply(m *ast.Module) *ast.Module
}

// PassFunc adapts a named function to the Pass interface.
type PassFunc struct {
	N string
	F func(*ast.Module) *ast.Module
}

func (p PassFunc) Name() string                    { return p.N }
func (p PassFunc) Apply(m *ast.Module) *ast.Module { return p.F(m) }

// Chain composes passes left-to-right into a single Pass. Each pass
// receives the output of the previous one.
func Chain(passes ...Pass) Pass {
	return PassFunc{
		N: "chain",
		F: func(m *ast.Module) *ast.Module {
			for _, p := range passes {
				m = p.Apply(m)
			}
			return m
		},
	}
}
