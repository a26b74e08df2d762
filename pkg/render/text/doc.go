// Package text renders label trees as multi-line monospace listings with
// directory-style connector glyphs.
//
// # Overview
//
// The renderer is a pure function of (node, formatting): one depth-first
// pre-order pass over the tree, emitting one line per label line of every
// node. The formatting configuration combines a [GlyphSet], an [Anchor]
// policy for multi-line labels, and an indent width.
//
// With the ASCII preset and the directory-tree formatting:
//
//	root
//	+-- Uncle
//	+-- Parent
//	|  +-- Child 1
//	|  |  '-- Grand Child 1
//	|  '-- Child 2
//	|     '-- Grand Child 2
//	'-- Aunt
//	   '-- Child 3
//
// and with [UnicodeGlyphs]:
//
//	root
//	├── Uncle
//	├── Parent
//	│  ├── Child 1
//	│  │  └── Grand Child 1
//	│  └── Child 2
//	│     └── Grand Child 2
//	└── Aunt
//	   └── Child 3
//
// # Layout Rules
//
// Every column is exactly Indent cells wide. A node's first label line is
// preceded by one column per ancestor below the root - the Vertical glyph
// while that ancestor still has a later sibling, blanks otherwise - and
// then by its own connector arm: Branch+Fill for a child with a later
// sibling, Corner+Fill for the last child. The root is printed bare.
//
// Continuation lines of multi-line labels repeat the ancestor columns and
// the node's own sibling column, then a single child-axis cell chosen by
// the anchor policy: [AnchorBottom] puts the Vertical glyph there for
// nodes with children, [AnchorTop] leaves it blank. See [Anchor] for the
// geometry.
//
// # Entry Points
//
//	res := text.Render(node, f)              // []string + truncation state
//	s := text.RenderString(node, f)          // one string, trailing newline
//	res, err := text.WriteTree(w, node, f)   // stream to a sink
//
// All three accept [WithMaxLines] to cap output; the cap stops traversal
// exactly at the limit and is reported through [Result].
//
// # Errors
//
// Construction of glyph sets and formatting values can fail with
// INVALID_FORMAT; a streaming render can fail with WRITE_FAILED when the
// sink rejects a write. Rendering itself is total.
package text
