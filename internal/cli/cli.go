// Package cli implements the texttree command-line interface.
//
// This package provides commands for rendering label trees from JSON
// files as monospace text listings or Graphviz diagrams, and for
// previewing trees interactively. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Render a JSON tree as text, DOT, SVG, or PNG
//   - view: Interactive preview with live formatting toggles
//   - completion: Generate shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/texttree/pkg/buildinfo"
)

// appName is the application name used for display and completions.
const appName = "texttree"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Texttree renders label trees as monospace listings",
		Long:         `Texttree is a CLI tool for rendering trees of labeled nodes as directory-style text listings, with configurable connector glyphs, anchor policies for multi-line labels, and Graphviz export.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.completionCommand())

	return root
}
