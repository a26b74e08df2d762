package cli

import (
	"testing"

	"github.com/matzehuels/texttree/pkg/render/text"
	"github.com/matzehuels/texttree/pkg/tree"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"dot", false},
		{"svg", false},
		{"png", false},
		{"pdf", true},
		{"", true},
		{"TEXT", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := validateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestRenderOptsFormatting(t *testing.T) {
	opts := renderOpts{charset: "unicode", anchor: "bottom", indent: 4}

	f, err := opts.formatting()
	if err != nil {
		t.Fatalf("formatting() error = %v", err)
	}

	if f.Glyphs() != text.UnicodeGlyphs() {
		t.Errorf("glyphs = %+v, want unicode preset", f.Glyphs())
	}
	if f.Anchor() != text.AnchorBottom {
		t.Errorf("anchor = %v, want bottom", f.Anchor())
	}
	if f.Indent() != 4 {
		t.Errorf("indent = %d, want 4", f.Indent())
	}
}

func TestRenderOptsFormattingErrors(t *testing.T) {
	tests := []struct {
		name string
		opts renderOpts
	}{
		{"preset without config", renderOpts{preset: "wide"}},
		{"bad charset", renderOpts{charset: "latin1", anchor: "top", indent: 3}},
		{"bad anchor", renderOpts{charset: "ascii", anchor: "middle", indent: 3}},
		{"zero indent", renderOpts{charset: "ascii", anchor: "top", indent: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.opts.formatting(); err == nil {
				t.Error("formatting() expected error, got nil")
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"tree.json", "tree"},
		{"dir/tree.json", "dir/tree"},
		{"noext", "noext"},
		{"archive.tar.gz", "archive.tar"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := basePath(tt.input); got != tt.want {
				t.Errorf("basePath(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCountNodes(t *testing.T) {
	tests := []struct {
		name string
		root tree.Node
		want int
	}{
		{"single node", tree.New("root"), 1},
		{"flat", tree.New("root", tree.New("a"), tree.New("b")), 3},
		{
			"nested",
			tree.New("root",
				tree.New("a", tree.New("a1"), tree.New("a2")),
				tree.New("b", tree.New("b1")),
			),
			6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countNodes(tt.root); got != tt.want {
				t.Errorf("countNodes() = %d, want %d", got, tt.want)
			}
		})
	}
}
