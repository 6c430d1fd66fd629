// Package cli implements the mazegen command-line interface.
//
// Commands:
//   - view: interactive terminal window with regenerate, size and method controls
//   - print: generate a maze and print its pixel map
//   - png: generate a maze and write it as a PNG image
//   - presets: list the built-in presets and themes
//
// All commands accept --verbose (-v) for debug-level logging. The logger is
// carried in the command context.
package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. Values
// are usually injected with ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the mazegen CLI.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "mazegen",
		Short:        "mazegen generates perfect mazes",
		Long:         `mazegen carves perfect mazes on a square grid with randomized depth-first traversal and renders them as binary pixel maps.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("mazegen %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newViewCmd())
	root.AddCommand(newPrintCmd())
	root.AddCommand(newPNGCmd())
	root.AddCommand(newPresetsCmd())

	return root
}
