package cli

import (
	"context"
	"fmt"
	stdio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/texttree/pkg/io"
	"github.com/matzehuels/texttree/pkg/render/dot"
	"github.com/matzehuels/texttree/pkg/render/text"
	"github.com/matzehuels/texttree/pkg/tree"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatPNG  = "png"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file path; empty writes text/dot to stdout
	format      string // "text", "dot", "svg", or "png"
	charset     string // "ascii" or "unicode"
	anchor      string // "top" or "bottom"
	indent      int    // column width
	maxLines    int    // line cap; 0 = unlimited
	config      string // TOML preset file
	preset      string // preset name within the config file
	leftToRight bool   // horizontal DOT layout
}

// renderCommand creates the render command for turning JSON trees into
// text listings or Graphviz diagrams.
//
// Default settings:
//   - format: text, written to stdout
//   - charset: ascii, top anchor, indent 3 (the directory-tree preset)
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{
		format:  formatText,
		charset: charsetASCII,
		anchor:  "top",
		indent:  text.DefaultIndent,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a JSON tree to text or a Graphviz diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout for text and dot)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), dot, svg, png")
	cmd.Flags().StringVarP(&opts.charset, "charset", "c", opts.charset, "glyph preset: ascii (default), unicode")
	cmd.Flags().StringVarP(&opts.anchor, "anchor", "a", opts.anchor, "multi-line label anchor: top (default), bottom")
	cmd.Flags().IntVarP(&opts.indent, "indent", "i", opts.indent, "column width")
	cmd.Flags().IntVarP(&opts.maxLines, "max-lines", "m", 0, "stop after this many lines (0 = unlimited)")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML file with named formatting presets")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "preset name from the --config file")
	cmd.Flags().BoolVar(&opts.leftToRight, "left-to-right", false, "horizontal layout (dot, svg, png)")

	return cmd
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatText: true, formatDOT: true, formatSVG: true, formatPNG: true}

// validateFormat checks that the requested format is supported.
func validateFormat(f string) error {
	if !validFormats[f] {
		return fmt.Errorf("invalid format: %s (must be 'text', 'dot', 'svg', or 'png')", f)
	}
	return nil
}

// formatting builds the render configuration from the flags, or from the
// named preset when one is requested.
func (o *renderOpts) formatting() (text.Formatting, error) {
	if o.preset != "" {
		if o.config == "" {
			return text.Formatting{}, fmt.Errorf("--preset requires --config")
		}
		return loadPreset(o.config, o.preset)
	}

	glyphs, err := parseCharset(o.charset)
	if err != nil {
		return text.Formatting{}, err
	}
	anchor, err := parseAnchor(o.anchor)
	if err != nil {
		return text.Formatting{}, err
	}
	return text.NewFormatting(glyphs, anchor, o.indent)
}

// runRender loads the tree from input and renders it to the requested
// format and destination.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	root, err := io.ImportJSON(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded tree: %d nodes", countNodes(root))

	switch opts.format {
	case formatText:
		return c.renderText(ctx, root, opts, prog)
	default:
		return c.renderGraphviz(ctx, root, input, opts, prog)
	}
}

// renderText streams the text listing to the output destination.
func (c *CLI) renderText(ctx context.Context, root tree.Node, opts *renderOpts, prog *progress) error {
	logger := loggerFromContext(ctx)

	f, err := opts.formatting()
	if err != nil {
		return err
	}

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	res, err := text.WriteTree(out, root, f, text.WithMaxLines(opts.maxLines))
	if err != nil {
		return err
	}
	if res.Truncated {
		logger.Warnf("Output truncated at %d lines", res.Count)
	}

	prog.done(fmt.Sprintf("Rendered %d lines", res.Count))
	if opts.output != "" {
		printFile(opts.output)
	}
	return nil
}

// renderGraphviz produces DOT source and, for svg/png, rasterizes it
// through the embedded Graphviz engine.
func (c *CLI) renderGraphviz(ctx context.Context, root tree.Node, input string, opts *renderOpts, prog *progress) error {
	logger := loggerFromContext(ctx)
	src := dot.ToDOT(root, dot.Options{LeftToRight: opts.leftToRight})

	if opts.format == formatDOT {
		out, err := openOutput(opts.output)
		if err != nil {
			return err
		}
		defer out.Close()
		if _, err := stdio.WriteString(out, src); err != nil {
			return err
		}
		prog.done("Generated DOT")
		if opts.output != "" {
			printFile(opts.output)
		}
		return nil
	}

	var data []byte
	var err error
	switch opts.format {
	case formatSVG:
		logger.Debug("Rendering SVG via Graphviz")
		data, err = dot.RenderSVG(src)
	case formatPNG:
		logger.Debug("Rendering PNG via Graphviz")
		data, err = dot.RenderPNG(src)
	}
	if err != nil {
		return err
	}

	path := opts.output
	if path == "" {
		path = basePath(input) + "." + opts.format
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Generated %s (%d bytes)", opts.format, len(data)))
	printFile(path)
	return nil
}

// basePath strips the extension from the input path; output filenames for
// derived artifacts are built from it.
func basePath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input))
}

// countNodes returns the number of nodes in the tree, counted iteratively.
func countNodes(root tree.Node) int {
	count := 0
	stack := []tree.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		stack = append(stack, n.Children()...)
	}
	return count
}

// nopCloser wraps a writer that must not be closed (stdout).
type nopCloser struct {
	stdio.Writer
}

func (nopCloser) Close() error { return nil }

// openOutput opens the output destination: stdout when path is empty,
// otherwise the created file.
func openOutput(path string) (stdio.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
