package tree

import "strings"

// Node is the read-only capability renderers consume: an ordered sequence
// of label lines and an ordered sequence of children.
//
// Lines must return at least one line, and no line may contain an embedded
// line break. Children returns the children in declared order; renderers
// never reorder them. An empty child slice marks a leaf.
type Node interface {
	Lines() []string
	Children() []Node
}

// StringNode is a string-labeled tree node.
//
// The zero value is not usable - use New to create nodes. StringNode is not
// safe for concurrent mutation; once construction is finished it may be
// rendered concurrently.
type StringNode struct {
	lines    []string
	children []*StringNode
}

// New creates a node with the given label and children.
// A label containing embedded newlines is split into separate display
// lines. An empty label yields a single empty line.
func New(label string, children ...*StringNode) *StringNode {
	return &StringNode{
		lines:    splitLabel(label),
		children: children,
	}
}

// Lines returns the node's display lines.
func (n *StringNode) Lines() []string { return n.lines }

// Children returns the node's children in declared order.
func (n *StringNode) Children() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Label returns the display lines rejoined with newlines.
func (n *StringNode) Label() string { return strings.Join(n.lines, "\n") }

// HasChildren reports whether the node has at least one child.
func (n *StringNode) HasChildren() bool { return len(n.children) > 0 }

// Add appends a new leaf child with the given label and returns it,
// allowing incremental construction of subtrees.
func (n *StringNode) Add(label string) *StringNode {
	child := New(label)
	n.children = append(n.children, child)
	return child
}

// AddNode appends an existing node as the last child.
func (n *StringNode) AddNode(child *StringNode) {
	n.children = append(n.children, child)
}

// Extend appends one leaf child per label, in order.
func (n *StringNode) Extend(labels ...string) {
	for _, l := range labels {
		n.Add(l)
	}
}

// splitLabel turns a label into display lines. The result always has at
// least one entry so leaves render to exactly one line per label line.
func splitLabel(label string) []string {
	return strings.Split(label, "\n")
}
