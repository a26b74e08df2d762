package text

import (
	"strings"

	"github.com/matzehuels/texttree/pkg/errors"
)

// Anchor selects which label line of a multi-line node aligns with the
// vertical connector extended to its children.
type Anchor int

const (
	// AnchorTop attaches the child axis at the node's last label line:
	// continuation lines carry blank padding in the child-axis cell and
	// the axis begins beneath the final label line. This matches
	// conventional directory listings.
	AnchorTop Anchor = iota

	// AnchorBottom attaches the child axis at the node's first label line:
	// continuation lines of a node with children carry the vertical glyph
	// in the child-axis cell so the run down to the children is unbroken.
	AnchorBottom
)

// String returns "top" or "bottom".
func (a Anchor) String() string {
	if a == AnchorBottom {
		return "bottom"
	}
	return "top"
}

// DefaultIndent is the conventional column width for directory-style trees.
const DefaultIndent = 3

// Formatting is an immutable rendering configuration: a glyph set, an
// anchor policy, and an indent width. A Formatting value is reusable
// across any number of render calls.
//
// Construct with [NewFormatting] or [DirectoryTree]; the zero value is not
// usable.
type Formatting struct {
	glyphs GlyphSet
	anchor Anchor
	indent int
}

// NewFormatting creates a validated formatting configuration.
// It returns an INVALID_FORMAT error if any glyph fragment is empty or
// indent is smaller than 1.
func NewFormatting(glyphs GlyphSet, anchor Anchor, indent int) (Formatting, error) {
	if err := glyphs.validate(); err != nil {
		return Formatting{}, err
	}
	if indent < 1 {
		return Formatting{}, errors.New(errors.ErrCodeInvalidFormat, "indent must be >= 1, got %d", indent)
	}
	return Formatting{glyphs: glyphs, anchor: anchor, indent: indent}, nil
}

// DirectoryTree returns the "directory tree" preset for the given glyph
// set: top anchor, indent 3, mirroring conventional file-tree listings.
func DirectoryTree(glyphs GlyphSet) (Formatting, error) {
	return NewFormatting(glyphs, AnchorTop, DefaultIndent)
}

// DefaultFormatting returns the directory-tree preset with ASCII glyphs.
// It cannot fail and is the configuration used when the caller has no
// preference.
func DefaultFormatting() Formatting {
	return Formatting{glyphs: ASCIIGlyphs(), anchor: AnchorTop, indent: DefaultIndent}
}

// Glyphs returns the configured glyph set.
func (f Formatting) Glyphs() GlyphSet { return f.glyphs }

// Anchor returns the configured anchor policy.
func (f Formatting) Anchor() Anchor { return f.anchor }

// Indent returns the configured column width.
func (f Formatting) Indent() int { return f.indent }

// Every column the renderer emits is exactly indent cells wide; the three
// column kinds below are precomputed per render call.

// armCell builds a connector arm: the start glyph extended with repeated
// Fill and clipped to the indent width.
func (f Formatting) armCell(start string) string {
	return clipPad(start, f.glyphs.Fill, f.indent)
}

// openCell builds an ancestor continuation column: the Vertical glyph
// padded with blanks to the indent width.
func (f Formatting) openCell() string {
	return clipPad(f.glyphs.Vertical, " ", f.indent)
}

// closedCell builds a blank column of the indent width.
func (f Formatting) closedCell() string {
	return strings.Repeat(" ", f.indent)
}

// clipPad extends s with repeated pad until it is at least width runes,
// then clips to exactly width runes.
func clipPad(s, pad string, width int) string {
	r := []rune(s)
	p := []rune(pad)
	for len(r) < width {
		r = append(r, p...)
	}
	return string(r[:width])
}
