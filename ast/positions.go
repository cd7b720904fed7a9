package ast

// FixMissingPositions fills in missing position metadata across the subtree
// rooted at n. A node with no position inherits the position of its nearest
// positioned ancestor; the root defaults to line 1, column 0. Passes that
// synthesize nodes call this before the tree is printed or encoded.
func FixMissingPositions(n Node) {
	fixPositions(n, 1, 0)
}

func fixPositions(n Node, line, col int) {
	if n == nil {
		return
	}
	l, c := n.Pos()
	if l == 0 {
		n.SetPos(line, col)
		l, c = line, col
	}
	for _, child := range childNodes(n, nil) {
		fixPositions(child, l, c)
	}
}
