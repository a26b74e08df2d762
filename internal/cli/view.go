package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/texttree/pkg/io"
	"github.com/matzehuels/texttree/pkg/render/text"
	"github.com/matzehuels/texttree/pkg/tree"
)

// maxViewIndent bounds the +/- indent toggles to keep the preview sane.
const maxViewIndent = 16

// viewCommand creates the view command for interactive previews.
func (c *CLI) viewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [file]",
		Short: "Preview a JSON tree with live formatting toggles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := io.ImportJSON(args[0])
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(newViewModel(root)).Run()
			return err
		},
	}
	return cmd
}

// viewModel is the bubbletea model for the interactive preview. It keeps
// the parsed tree and the current formatting choices, re-rendering on
// every toggle.
type viewModel struct {
	root    tree.Node
	unicode bool
	anchor  text.Anchor
	indent  int

	lines  []string
	offset int
	height int
}

func newViewModel(root tree.Node) viewModel {
	m := viewModel{
		root:   root,
		anchor: text.AnchorTop,
		indent: text.DefaultIndent,
		height: 20,
	}
	m.rerender()
	return m
}

// rerender recomputes the preview lines for the current formatting.
func (m *viewModel) rerender() {
	glyphs := text.ASCIIGlyphs()
	if m.unicode {
		glyphs = text.UnicodeGlyphs()
	}
	f, err := text.NewFormatting(glyphs, m.anchor, m.indent)
	if err != nil {
		// Toggles keep the configuration inside valid bounds.
		return
	}
	m.lines = text.Render(m.root, f).Lines
	if m.offset > m.maxOffset() {
		m.offset = m.maxOffset()
	}
}

func (m viewModel) maxOffset() int {
	if len(m.lines) <= m.height {
		return 0
	}
	return len(m.lines) - m.height
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset < m.maxOffset() {
				m.offset++
			}
		case "u":
			m.unicode = !m.unicode
			m.rerender()
		case "a":
			if m.anchor == text.AnchorTop {
				m.anchor = text.AnchorBottom
			} else {
				m.anchor = text.AnchorTop
			}
			m.rerender()
		case "+", "=":
			if m.indent < maxViewIndent {
				m.indent++
				m.rerender()
			}
		case "-":
			if m.indent > 1 {
				m.indent--
				m.rerender()
			}
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 5
		if m.height < 5 {
			m.height = 5
		}
		if m.offset > m.maxOffset() {
			m.offset = m.maxOffset()
		}
	}
	return m, nil
}

func (m viewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Tree Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ scroll  u charset  a anchor  +/- indent  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.lines) {
		end = len(m.lines)
	}
	for _, line := range m.lines[m.offset:end] {
		b.WriteString(StyleValue.Render(line))
		b.WriteString("\n")
	}

	charset := charsetASCII
	if m.unicode {
		charset = charsetUnicode
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%s · anchor %s · indent %d · %d lines",
		charset, m.anchor, m.indent, len(m.lines))))
	return b.String()
}
