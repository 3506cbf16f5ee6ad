package searcher

import "math"

type uct struct {
	root *Node
}

func newUCT(root *Node) uct {
	return uct{root: root}
}

// evaluate returns the UCT score of node, or false if node has not been visited yet.
//
// The exploration term uses the win flag of the parent (or of the node itself when
// the parent is the root) as the reference visit count, not the parent's visits.
func (u uct) evaluate(node *Node) (float64, bool) {
	n := float64(node.Visits())
	if n == 0 {
		return 0, false
	}

	w := node.Win()
	t := w
	if parent := node.Parent(); parent != nil && parent != u.root {
		t = parent.Win()
	}

	exploitation := (node.Score() * w) / n
	exploration := C * math.Sqrt(math.Log(t)/n)
	return exploitation + exploration, true
}
