package tree

import "fmt"

// Typed is a tree node carrying an arbitrary payload. The display label is
// derived from the payload with fmt.Sprint, so any value works and types
// implementing fmt.Stringer control their own formatting.
//
// Rendering behavior is identical to [StringNode]; the payload is only
// used to produce label lines.
type Typed[T any] struct {
	value    T
	lines    []string
	children []*Typed[T]
}

// NewTyped creates a payload-carrying node with the given children.
// The label lines are captured at construction time, so later mutation of
// a pointer payload does not change the rendered output.
func NewTyped[T any](value T, children ...*Typed[T]) *Typed[T] {
	return &Typed[T]{
		value:    value,
		lines:    splitLabel(fmt.Sprint(value)),
		children: children,
	}
}

// Value returns the node's payload.
func (n *Typed[T]) Value() T { return n.value }

// Lines returns the node's display lines.
func (n *Typed[T]) Lines() []string { return n.lines }

// Children returns the node's children in declared order.
func (n *Typed[T]) Children() []Node {
	out := make([]Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Add appends a new leaf child for the given payload and returns it.
func (n *Typed[T]) Add(value T) *Typed[T] {
	child := NewTyped(value)
	n.children = append(n.children, child)
	return child
}

// AddNode appends an existing node as the last child.
func (n *Typed[T]) AddNode(child *Typed[T]) {
	n.children = append(n.children, child)
}
