package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// sampleModule builds:
//
//	def f(x):
//	    y = x + 1
//	    return y
func sampleModule() *Module {
	return &Module{Body: []Stmt{
		&FunctionDef{
			Name: "f",
			Args: []*Arg{{Name: "x"}},
			Body: []Stmt{
				&Assign{
					Targets: []Expr{&Name{ID: "y", Ctx: CtxStore}},
					Value: &BinOp{
						Left:  &Name{ID: "x", Ctx: CtxLoad},
						Op:    "+",
						Right: &Constant{Value: 1},
					},
				},
				&Return{Value: &Name{ID: "y", Ctx: CtxLoad}},
			},
		},
	}}
}

func TestInspect_PreOrder(t *testing.T) {
	var kinds []Kind
	Inspect(sampleModule(), func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return true
	})
	assert.Equal(t, []Kind{
		KindModule, KindFunctionDef, KindArg,
		KindAssign, KindName, KindBinOp, KindName, KindConstant,
		KindReturn, KindName,
	}, kinds)
}

func TestInspect_VisitsEachNodeOnce(t *testing.T) {
	seen := map[Node]int{}
	Inspect(sampleModule(), func(n Node) bool {
		seen[n]++
		return true
	})
	for n, count := range seen {
		assert.Equal(t, 1, count, "node %s visited more than once", n.Kind())
	}
}

func TestInspect_SkipSubtree(t *testing.T) {
	var kinds []Kind
	Inspect(sampleModule(), func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != KindAssign
	})
	assert.Equal(t, []Kind{
		KindModule, KindFunctionDef, KindArg,
		KindAssign, KindReturn, KindName,
	}, kinds)
}

func TestContainsKind_DeeplyNested(t *testing.T) {
	loop := &For{
		Target: &Name{ID: "i", Ctx: CtxStore},
		Iter:   &Call{Func: &Name{ID: "range", Ctx: CtxLoad}, Args: []Expr{&Constant{Value: 10}}},
		Body: []Stmt{
			&If{
				Test: &Name{ID: "cond", Ctx: CtxLoad},
				Body: []Stmt{
					&While{
						Test: &Constant{Value: true},
						Body: []Stmt{&Break{}},
					},
				},
			},
		},
	}
	assert.True(t, ContainsKind(loop, KindBreak, KindContinue))
	assert.False(t, ContainsKind(loop, KindContinue))
	assert.True(t, ContainsKind(loop, KindWhile))
}

func TestContainsKind_SelfMatch(t *testing.T) {
	b := &Break{}
	assert.True(t, ContainsKind(b, KindBreak))
}

func TestFixMissingPositions_InheritsFromAncestor(t *testing.T) {
	m := &Module{Body: []Stmt{
		&ExprStmt{
			Base:  Base{Line: 7, Col: 4},
			Value: &Call{Func: &Name{ID: "g", Ctx: CtxLoad}},
		},
	}}
	FixMissingPositions(m)

	line, col := m.Pos()
	assert.Equal(t, 1, line, "root defaults to line 1")
	assert.Equal(t, 0, col)

	call := m.Body[0].(*ExprStmt).Value.(*Call)
	line, col = call.Pos()
	assert.Equal(t, 7, line, "call inherits statement position")
	assert.Equal(t, 4, col)

	line, _ = call.Func.Pos()
	assert.Equal(t, 7, line, "callee inherits through the call")
}

func TestFixMissingPositions_KeepsExisting(t *testing.T) {
	m := sampleModule()
	fn := m.Body[0].(*FunctionDef)
	fn.SetPos(3, 0)
	FixMissingPositions(m)

	line, _ := fn.Pos()
	assert.Equal(t, 3, line)
	line, _ = fn.Body[0].Pos()
	assert.Equal(t, 3, line, "children inherit the def's position")
}

func TestPositionCheck(t *testing.T) {
	m := sampleModule()
	err := (PositionCheck{}).Check(m)
	assert.Error(t, err, "unpositioned tree fails the check")

	FixMissingPositions(m)
	assert.NoError(t, (PositionCheck{}).Check(m))
}

func TestShapeCheck(t *testing.T) {
	assert.NoError(t, (ShapeCheck{}).Check(sampleModule()))

	bad := &Module{Body: []Stmt{
		&ExprStmt{Value: &Name{ID: "x", Ctx: "Del"}},
	}}
	err := (ShapeCheck{}).Check(bad)
	assert.ErrorContains(t, err, "invalid ctx")

	noTargets := &Module{Body: []Stmt{
		&Assign{Value: &Constant{Value: 1}},
	}}
	err = (ShapeCheck{}).Check(noTargets)
	assert.ErrorContains(t, err, "without targets")
}

func TestCheckChain_StopsAtFirstError(t *testing.T) {
	m := sampleModule() // valid shape, missing positions
	chain := CheckChain{ShapeCheck{}, PositionCheck{}}
	err := chain.Run(m)
	assert.ErrorContains(t, err, "missing position")
}
