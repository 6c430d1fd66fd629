package cli

import (
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/samdwyer/mazegen/internal/export"
	"github.com/samdwyer/mazegen/internal/maze"
	"github.com/samdwyer/mazegen/internal/presets"
	"github.com/samdwyer/mazegen/internal/ui"
	"github.com/samdwyer/mazegen/internal/viewer"
)

// debugFile receives logs and plots while the viewer owns the terminal.
const debugFile = "mazegen-debug.log"

func newViewCmd() *cobra.Command {
	var flags genFlags

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open the interactive maze viewer",
		Long: `Open the interactive maze viewer in the terminal.

Keys: g/Enter/Space generate, +/- size, [/] size by ten, 1/2/Tab method,
arrows move the walker, q/Esc quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			theme, err := presets.MustLoadThemeRegistry().Lookup(cfg.Theme)
			if err != nil {
				return fmt.Errorf("unknown theme: %w", err)
			}

			// The terminal belongs to the viewer, so nothing may log to stderr.
			logger := newLogger(io.Discard, charmlog.InfoLevel)
			var plotter maze.Plotter
			if cfg.Debug {
				f, err := os.Create(debugFile)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", debugFile, err)
				}
				defer f.Close()
				logger = newLogger(f, charmlog.DebugLevel)
				plotter = export.NewTextPlotter(f, export.WithGlyphs("#", "."))
			}

			screen, err := ui.NewScreen()
			if err != nil {
				return fmt.Errorf("failed to open terminal: %w", err)
			}

			vcfg := viewer.Config{
				Size:    cfg.Size,
				Method:  cfg.GenerationMethod(),
				Theme:   theme,
				Seed:    cfg.Seed,
				Debug:   cfg.Debug,
				Plotter: plotter,
			}
			return viewer.New(screen, vcfg, logger).Run(cmd.Context())
		},
	}

	flags.register(cmd)
	return cmd
}
