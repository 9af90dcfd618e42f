// Package syntax defines the syntax-node oracle consumed by the pair
// engine's context classifiers, plus a lightweight outline parser that
// serves as the default oracle for plain-text documents.
//
// Hosts with a real incremental parser implement Resolver over their own
// tree. NullResolver degrades every tree-dependent heuristic gracefully.
package syntax

import "fmt"

// Bias selects which side of a position a resolve prefers when the
// position sits exactly on a node boundary.
type Bias int8

const (
	// BiasLeft resolves to the node touching the position from the left
	// (nodes with From < pos <= To).
	BiasLeft Bias = -1

	// BiasRight resolves to the node touching the position from the
	// right (nodes with From <= pos < To).
	BiasRight Bias = 1
)

// Node is a span of the document owned by the syntax tree.
// From/To are rune offsets; the root node has no parent.
type Node struct {
	From, To int
	Kind     string

	parent   *Node
	children []*Node
}

// Parent returns the enclosing node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's direct children.
func (n *Node) Children() []*Node {
	return n.children
}

// String returns a human-readable representation of the node.
func (n *Node) String() string {
	return fmt.Sprintf("%s[%d,%d)", n.Kind, n.From, n.To)
}

// contains reports whether pos is inside the node under the given bias.
func (n *Node) contains(pos int, bias Bias) bool {
	if bias == BiasLeft {
		return n.From < pos && pos <= n.To
	}
	return n.From <= pos && pos < n.To
}

// Resolver resolves the innermost syntax node touching a position.
// Implementations return nil when no tree is available for the position.
type Resolver interface {
	Resolve(pos int, bias Bias) *Node
}

// NullResolver is a Resolver for documents without a parser.
// It always reports "no node", degrading every tree-dependent heuristic
// to its plain fallback branch.
type NullResolver struct{}

// Resolve implements Resolver.
func (NullResolver) Resolve(pos int, bias Bias) *Node {
	return nil
}
