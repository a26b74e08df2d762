package text

import "github.com/matzehuels/texttree/pkg/errors"

// GlyphSet holds the four text fragments used to draw tree connectors.
//
// Branch and Corner start a node's connector arm (non-last and last child
// respectively), Vertical continues an ancestor column downward, and Fill
// extends an arm toward the label. All fragments must be non-empty; use
// [NewGlyphSet] to construct validated custom sets.
type GlyphSet struct {
	Branch   string // arm start for a child with a later sibling
	Corner   string // arm start for the last child
	Vertical string // ancestor continuation column
	Fill     string // horizontal arm fill
}

// ASCIIGlyphs returns the plain-ASCII preset:
//
//	root
//	+-- child
//	'-- last
func ASCIIGlyphs() GlyphSet {
	return GlyphSet{Branch: "+", Corner: "'", Vertical: "|", Fill: "--"}
}

// UnicodeGlyphs returns the box-drawing preset:
//
//	root
//	├── child
//	└── last
func UnicodeGlyphs() GlyphSet {
	return GlyphSet{Branch: "├", Corner: "└", Vertical: "│", Fill: "──"}
}

// NewGlyphSet creates a custom glyph set.
// It returns an INVALID_FORMAT error if any fragment is empty.
func NewGlyphSet(branch, corner, vertical, fill string) (GlyphSet, error) {
	g := GlyphSet{Branch: branch, Corner: corner, Vertical: vertical, Fill: fill}
	if err := g.validate(); err != nil {
		return GlyphSet{}, err
	}
	return g, nil
}

func (g GlyphSet) validate() error {
	switch "" {
	case g.Branch:
		return errors.New(errors.ErrCodeInvalidFormat, "glyph set: empty branch fragment")
	case g.Corner:
		return errors.New(errors.ErrCodeInvalidFormat, "glyph set: empty corner fragment")
	case g.Vertical:
		return errors.New(errors.ErrCodeInvalidFormat, "glyph set: empty vertical fragment")
	case g.Fill:
		return errors.New(errors.ErrCodeInvalidFormat, "glyph set: empty fill fragment")
	}
	return nil
}
