// Package tree holds the parent-linked search tree node shared by the searcher.
package tree

import "fmt"

// Node is a tree node holding one opaque value plus running search statistics.
//
// Children are tri-state: nil means the node has not been expanded yet, an empty
// non-nil slice marks a terminal leaf, and a non-empty slice an internal node.
type Node[V any] struct {
	parent   *Node[V]
	value    V
	children []*Node[V]

	visits int
	score  float64
	win    float64
}

// New returns a node under parent. A nil parent makes the node a root.
func New[V any](parent *Node[V], value V) *Node[V] {
	return &Node[V]{
		parent: parent,
		value:  value,
	}
}

func (n *Node[V]) Parent() *Node[V] {
	return n.parent
}

func (n *Node[V]) Value() V {
	return n.value
}

// Children returns a copy of the children, nil if the node is unexpanded.
func (n *Node[V]) Children() []*Node[V] {
	if n.children == nil {
		return nil
	}
	children := make([]*Node[V], len(n.children))
	copy(children, n.children)
	return children
}

// ChildCount returns the number of children, 0 for both unexpanded and terminal nodes.
func (n *Node[V]) ChildCount() int {
	return len(n.children)
}

// ChildAt returns the ith child.
func (n *Node[V]) ChildAt(i int) *Node[V] {
	return n.children[i]
}

// IsExpanded reports whether the children collection exists, even if empty.
func (n *Node[V]) IsExpanded() bool {
	return n.children != nil
}

// AddChildren appends children. Calling it with no children still allocates the
// collection, which is how a node with no legal moves is recorded as terminal.
func (n *Node[V]) AddChildren(children ...*Node[V]) {
	if n.children == nil {
		n.children = make([]*Node[V], 0, len(children))
	}
	n.children = append(n.children, children...)
}

// DisownChildren drops all children and reverts the node to unexpanded.
func (n *Node[V]) DisownChildren() {
	n.children = nil
}

// IsLeafNode reports whether the node is a terminal leaf: expanded with no children.
// Unexpanded nodes are not leaves.
func (n *Node[V]) IsLeafNode() bool {
	return n.children != nil && len(n.children) == 0
}

func (n *Node[V]) Visits() int {
	return n.visits
}

func (n *Node[V]) SetVisits(visits int) {
	n.visits = visits
}

// Score returns the heuristic score accumulated over all backpropagations.
func (n *Node[V]) Score() float64 {
	return n.score
}

func (n *Node[V]) SetScore(score float64) {
	n.score = score
}

func (n *Node[V]) Win() float64 {
	return n.win
}

func (n *Node[V]) SetWin(win float64) {
	n.win = win
}

func (n *Node[V]) String() string {
	return fmt.Sprintf("%v [%v:%d %v]", n.value, n.win, n.visits, n.score)
}
