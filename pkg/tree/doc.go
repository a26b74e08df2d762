// Package tree defines the node model consumed by the texttree renderers.
//
// # Overview
//
// A tree is a rooted, acyclic, single-owner hierarchy of labeled nodes.
// Renderers only depend on the [Node] capability: an ordered sequence of
// label lines and an ordered sequence of children. Two implementations are
// provided:
//
//   - [StringNode]: plain string labels, the common case
//   - [Typed]: nodes carrying an arbitrary payload, labeled via fmt.Sprint
//
// Both behave identically under rendering.
//
// # Building Trees
//
// Trees are built either up-front:
//
//	root := tree.New("root",
//	    tree.New("lib-a"),
//	    tree.New("lib-b", tree.New("lib-c")),
//	)
//
// or incrementally:
//
//	root := tree.New("root")
//	child := root.Add("lib-a")
//	child.Extend("x", "y", "z")
//
// Labels containing embedded newlines are split into display lines at
// construction time. Renderers never split lines themselves; a Node
// implementation must return lines free of line breaks.
//
// # Ownership
//
// Nodes are built and owned entirely by the caller and consumed read-only
// by the renderers. Each child belongs to exactly one parent; sharing a
// node between parents or introducing a cycle leads to undefined render
// output.
package tree
