package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/matzehuels/texttree/pkg/errors"
	"github.com/matzehuels/texttree/pkg/render/text"
)

// Charset names accepted by --charset and preset files.
const (
	charsetASCII   = "ascii"
	charsetUnicode = "unicode"
)

// presetsFile is the TOML layout of a --config file:
//
//	[presets.wide]
//	charset = "unicode"
//	anchor = "bottom"
//	indent = 5
//
//	[presets.custom]
//	indent = 3
//	[presets.custom.glyphs]
//	branch = ">"
//	corner = "`"
//	vertical = "!"
//	fill = "~~"
type presetsFile struct {
	Presets map[string]presetConfig `toml:"presets"`
}

type presetConfig struct {
	Charset string       `toml:"charset"`
	Anchor  string       `toml:"anchor"`
	Indent  int          `toml:"indent"`
	Glyphs  *glyphConfig `toml:"glyphs"`
}

type glyphConfig struct {
	Branch   string `toml:"branch"`
	Corner   string `toml:"corner"`
	Vertical string `toml:"vertical"`
	Fill     string `toml:"fill"`
}

// loadPreset reads the preset file at path and builds the formatting for
// the named preset. Omitted fields fall back to the directory-tree
// defaults (ASCII glyphs, top anchor, indent 3). A glyphs table takes
// precedence over the charset name.
func loadPreset(path, name string) (text.Formatting, error) {
	var file presetsFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		return text.Formatting{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "preset file %s", path)
	}
	p, ok := file.Presets[name]
	if !ok {
		return text.Formatting{}, errors.New(errors.ErrCodeInvalidInput, "preset %q not found in %s", name, path)
	}
	return p.formatting()
}

func (p presetConfig) formatting() (text.Formatting, error) {
	glyphs := text.ASCIIGlyphs()
	if p.Charset != "" {
		var err error
		if glyphs, err = parseCharset(p.Charset); err != nil {
			return text.Formatting{}, err
		}
	}
	if p.Glyphs != nil {
		var err error
		if glyphs, err = text.NewGlyphSet(p.Glyphs.Branch, p.Glyphs.Corner, p.Glyphs.Vertical, p.Glyphs.Fill); err != nil {
			return text.Formatting{}, err
		}
	}

	anchor := text.AnchorTop
	if p.Anchor != "" {
		var err error
		if anchor, err = parseAnchor(p.Anchor); err != nil {
			return text.Formatting{}, err
		}
	}

	indent := text.DefaultIndent
	if p.Indent != 0 {
		indent = p.Indent
	}

	return text.NewFormatting(glyphs, anchor, indent)
}

// parseCharset maps a charset name to its glyph preset.
func parseCharset(s string) (text.GlyphSet, error) {
	switch s {
	case charsetASCII:
		return text.ASCIIGlyphs(), nil
	case charsetUnicode:
		return text.UnicodeGlyphs(), nil
	default:
		return text.GlyphSet{}, errors.New(errors.ErrCodeInvalidInput, "invalid charset: %s (must be 'ascii' or 'unicode')", s)
	}
}

// parseAnchor maps an anchor name to its policy.
func parseAnchor(s string) (text.Anchor, error) {
	switch s {
	case "top":
		return text.AnchorTop, nil
	case "bottom":
		return text.AnchorBottom, nil
	default:
		return text.AnchorTop, errors.New(errors.ErrCodeInvalidInput, "invalid anchor: %s (must be 'top' or 'bottom')", s)
	}
}
