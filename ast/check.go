package ast

import "fmt"

// Check validates an AST without modifying it.
type Check interface {
	Name() string
	Check(m *Module) error
}

// CheckChain runs checks in order, stopping at the first error.
type CheckChain []Check

// Run executes each check in sequence. Returns nil if all pass.
func (cc CheckChain) Run(m *Module) error {
	for _, c := range cc {
		if err := c.Check(m); err != nil {
			return err
		}
	}
	return nil
}

// ShapeCheck verifies that every node carries the children its kind
// requires: no nil mandatory sub-node, valid context tags, parallel dict
// slices. Passes may hold partially built nodes internally, but a tree
// handed to the printer or codec must satisfy this.
type ShapeCheck struct{}

func (ShapeCheck) Name() string { return "shape" }

func (ShapeCheck) Check(m *Module) error {
	var firstErr error
	Inspect(m, func(n Node) bool {
		if firstErr != nil {
			return false
		}
		if err := checkShape(n); err != nil {
			firstErr = err
			return false
		}
		return true
	})
	return firstErr
}

func checkShape(n Node) error {
	switch x := n.(type) {
	case *FunctionDef:
		if x.Name == "" {
			return shapeErr(n, "function with empty name")
		}
	case *Assign:
		if len(x.Targets) == 0 {
			return shapeErr(n, "assignment without targets")
		}
		if x.Value == nil {
			return shapeErr(n, "assignment without value")
		}
	case *ExprStmt:
		if x.Value == nil {
			return shapeErr(n, "expression statement without value")
		}
	case *If:
		if x.Test == nil {
			return shapeErr(n, "if without test")
		}
	case *While:
		if x.Test == nil {
			return shapeErr(n, "while without test")
		}
	case *For:
		if x.Target == nil || x.Iter == nil {
			return shapeErr(n, "for without target or iterable")
		}
	case *Try:
		if len(x.Handlers) == 0 && len(x.FinalBody) == 0 {
			return shapeErr(n, "try without handlers or finally")
		}
	case *Call:
		if x.Func == nil {
			return shapeErr(n, "call without callee")
		}
	case *Keyword:
		if x.Arg == "" || x.Value == nil {
			return shapeErr(n, "keyword argument without name or value")
		}
	case *Name:
		if x.ID == "" {
			return shapeErr(n, "name with empty identifier")
		}
		if x.Ctx != CtxLoad && x.Ctx != CtxStore {
			return shapeErr(n, fmt.Sprintf("name %q with invalid ctx %q", x.ID, x.Ctx))
		}
	case *Attribute:
		if x.Value == nil || x.Attr == "" {
			return shapeErr(n, "attribute without value or name")
		}
	case *BinOp:
		if x.Left == nil || x.Right == nil || x.Op == "" {
			return shapeErr(n, "binary op with missing operand or operator")
		}
	case *Dict:
		if len(x.Keys) != len(x.Values) {
			return shapeErr(n, "dict with mismatched keys and values")
		}
	case *FormattedValue:
		if x.Value == nil {
			return shapeErr(n, "formatted value without expression")
		}
	}
	return nil
}

func shapeErr(n Node, msg string) error {
	line, col := n.Pos()
	return fmt.Errorf("invalid %s at %d:%d: %s", n.Kind(), line, col, msg)
}

// PositionCheck verifies that every node carries position metadata. Run it
// after FixMissingPositions to assert a tree is ready for emission.
type PositionCheck struct{}

func (PositionCheck) Name() string { return "positions" }

func (PositionCheck) Check(m *Module) error {
	var firstErr error
	Inspect(m, func(n Node) bool {
		if firstErr != nil {
			return false
		}
		if line, _ := n.Pos(); line == 0 {
			firstErr = fmt.Errorf("%s node missing position metadata", n.Kind())
			return false
		}
		return true
	})
	return firstErr
}
