package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette shared by all terminal output.
var (
	colorCyan  = lipgloss.Color("36")  // Teal - primary actions
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)
)

const iconArrow = "→"

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}
