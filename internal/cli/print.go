package cli

import (
	"github.com/spf13/cobra"

	"github.com/samdwyer/mazegen/internal/export"
	"github.com/samdwyer/mazegen/internal/maze"
)

func newDebugPlotter(cmd *cobra.Command) maze.Plotter {
	return export.NewTextPlotter(cmd.ErrOrStderr(), export.WithGlyphs("#", "."))
}

func newPrintCmd() *cobra.Command {
	var (
		flags genFlags
		raw   bool
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Generate a maze and print its pixel map",
		Long: `Generate a maze and print its (2*size+1)-square pixel map to stdout.

By default walls are drawn with block characters. --raw prints 1 for wall and 0 for path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			m, err := buildMaze(cmd.Context(), cmd, cfg)
			if err != nil {
				return err
			}

			var opts []export.TextOption
			if raw {
				opts = append(opts, export.WithRaw())
			}
			return export.WriteText(cmd.OutOrStdout(), m.Display(cfg.Debug), opts...)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&raw, "raw", false, "print 1/0 digits instead of blocks")
	return cmd
}
