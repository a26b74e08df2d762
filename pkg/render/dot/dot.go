package dot

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/texttree/pkg/tree"
)

// Options configures DOT generation.
type Options struct {
	// LeftToRight lays the tree out horizontally (rankdir=LR) instead of
	// the default top-to-bottom orientation.
	LeftToRight bool
}

// ToDOT converts a label tree to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG] or
// [RenderPNG]. Node identifiers are assigned in pre-order, so identical
// trees always produce identical DOT output. Multi-line labels keep their
// line breaks.
func ToDOT(root tree.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	if opts.LeftToRight {
		buf.WriteString("  rankdir=LR;\n")
	} else {
		buf.WriteString("  rankdir=TB;\n")
	}
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	var edges bytes.Buffer
	writeNode(&buf, &edges, root, new(int))

	buf.WriteString("\n")
	buf.Write(edges.Bytes())
	buf.WriteString("}\n")
	return buf.String()
}

// writeNode emits one node statement and records the edges to its
// children, descending pre-order. The counter assigns stable sequential
// identifiers.
func writeNode(nodes, edges *bytes.Buffer, n tree.Node, counter *int) string {
	id := fmt.Sprintf("n%d", *counter)
	*counter++

	fmt.Fprintf(nodes, "  %s [label=%q];\n", id, label(n))
	for _, child := range n.Children() {
		childID := writeNode(nodes, edges, child, counter)
		fmt.Fprintf(edges, "  %s -> %s;\n", id, childID)
	}
	return id
}

func label(n tree.Node) string {
	lines := n.Lines()
	out := lines[0]
	for _, l := range lines[1:] {
		out += "\n" + l
	}
	return out
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
