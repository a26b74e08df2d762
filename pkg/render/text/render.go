package text

import (
	"io"
	"strings"

	"github.com/matzehuels/texttree/pkg/errors"
	"github.com/matzehuels/texttree/pkg/tree"
)

// Result holds the outcome of a render pass.
type Result struct {
	// Lines are the rendered lines in emission order. Nil for streaming
	// renders, which hand lines to the sink instead of collecting them.
	Lines []string

	// Count is the number of lines emitted.
	Count int

	// Truncated reports whether a max-line cap stopped emission before
	// the tree was fully rendered.
	Truncated bool
}

// Option configures a render call.
type Option func(*options)

type options struct {
	maxLines int // 0 = unlimited
}

// WithMaxLines caps the number of emitted lines. Traversal stops as soon
// as the cap is reached and the Result reports Truncated. A cap of zero
// or less means unlimited.
func WithMaxLines(n int) Option {
	return func(o *options) {
		o.maxLines = n
	}
}

// Render lays out the tree rooted at node and returns the rendered lines.
//
// Rendering is a pure function of (node, formatting, options): identical
// inputs always produce the identical line sequence, children are visited
// strictly in declared order, and no state survives between calls.
func Render(node tree.Node, f Formatting, opts ...Option) Result {
	e := &emitter{max: buildOptions(opts).maxLines}
	walk(node, f, e)
	return Result{Lines: e.lines, Count: e.count, Truncated: e.truncated}
}

// RenderString renders the tree to a single string, one line terminator
// after every line. The result is byte-identical to what [WriteTree]
// streams to its sink.
func RenderString(node tree.Node, f Formatting, opts ...Option) string {
	res := Render(node, f, opts...)
	if len(res.Lines) == 0 {
		return ""
	}
	return strings.Join(res.Lines, "\n") + "\n"
}

// WriteTree streams the rendered lines to w, one write per line.
//
// On sink failure rendering aborts immediately and the sink's error is
// returned wrapped under the WRITE_FAILED code; whatever was already
// written stays written, and recovery is the caller's concern. The
// returned Result carries the emitted line count and truncation state
// (its Lines field is nil).
func WriteTree(w io.Writer, node tree.Node, f Formatting, opts ...Option) (Result, error) {
	e := &emitter{w: w, max: buildOptions(opts).maxLines}
	walk(node, f, e)
	return Result{Count: e.count, Truncated: e.truncated}, e.err
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// emitter collects or streams lines while enforcing the line cap.
type emitter struct {
	w         io.Writer
	lines     []string
	max       int
	count     int
	truncated bool
	err       error
}

// emit outputs one line. It returns false when traversal must stop,
// either because the cap is reached or because the sink failed.
func (e *emitter) emit(line string) bool {
	if e.max > 0 && e.count >= e.max {
		e.truncated = true
		return false
	}
	if e.w != nil {
		if _, err := io.WriteString(e.w, line+"\n"); err != nil {
			e.err = errors.Wrap(errors.ErrCodeWriteFailed, err, "write line %d", e.count+1)
			return false
		}
	} else {
		e.lines = append(e.lines, line)
	}
	e.count++
	return true
}

// frame tracks one ancestor during the depth-first walk: its remaining
// children and whether the ancestor itself still has a later sibling
// ("open"). The stack replaces call recursion so adversarially deep trees
// cannot exhaust the call stack.
type frame struct {
	children []tree.Node
	next     int
	open     bool
}

// walk performs the depth-first pre-order traversal, emitting every line
// of every node. The frame stack holds the path from the root to the
// node currently being descended into; frames below the root contribute
// the ancestor prefix columns.
func walk(root tree.Node, f Formatting, e *emitter) {
	if !emitNode(root, nil, false, true, f, e) {
		return
	}
	stack := []frame{{children: root.Children()}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.children) {
			stack = stack[:len(stack)-1]
			continue
		}
		node := top.children[top.next]
		top.next++
		open := top.next < len(top.children)

		if !emitNode(node, stack, open, false, f, e) {
			return
		}
		if children := node.Children(); len(children) > 0 {
			stack = append(stack, frame{children: children, open: open})
		}
	}
}

// emitNode writes all label lines of a single node.
//
// The first line carries the node's connector arm (branch for a child
// with a later sibling, corner for the last child; the root is bare).
// Continuation lines repeat the ancestor prefix plus the node's own
// sibling column, then a single child-axis cell governed by the anchor
// policy, then the label text.
func emitNode(node tree.Node, stack []frame, open, isRoot bool, f Formatting, e *emitter) bool {
	lines := node.Lines()
	hasChildren := len(node.Children()) > 0

	// The root frame never contributes a column; only ancestors below it do.
	var prefix strings.Builder
	for i := 1; i < len(stack); i++ {
		if stack[i].open {
			prefix.WriteString(f.openCell())
		} else {
			prefix.WriteString(f.closedCell())
		}
	}

	first := lines[0]
	if !isRoot {
		start := f.glyphs.Corner
		if open {
			start = f.glyphs.Branch
		}
		first = prefix.String() + f.armCell(start) + " " + lines[0]
	}
	if !e.emit(first) {
		return false
	}

	if len(lines) == 1 {
		return true
	}

	// The root has no connector column, so its continuation lines are
	// printed bare.
	cont := ""
	if !isRoot {
		own := f.closedCell()
		if open {
			own = f.openCell()
		}
		cell := " "
		if hasChildren && f.anchor == AnchorBottom {
			cell = f.glyphs.Vertical
		}
		cont = prefix.String() + own + cell
	}
	for _, line := range lines[1:] {
		if !e.emit(cont + line) {
			return false
		}
	}
	return true
}
