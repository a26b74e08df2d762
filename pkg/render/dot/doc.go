// Package dot exports label trees as Graphviz node-link diagrams.
//
// This is the graphical counterpart to the text renderer: [ToDOT] turns a
// [tree.Node] hierarchy into DOT source, and [RenderSVG]/[RenderPNG]
// rasterize it through the embedded Graphviz engine (no external binary
// required).
//
//	src := dot.ToDOT(root, dot.Options{})
//	svg, err := dot.RenderSVG(src)
//
// The text renderer remains the core of texttree; this package is a
// convenience for callers that want pictures from the same trees.
//
// [tree.Node]: github.com/matzehuels/texttree/pkg/tree.Node
package dot
