package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/samdwyer/mazegen/internal/export"
)

func newPNGCmd() *cobra.Command {
	var (
		flags  genFlags
		output string
		scale  int
	)

	cmd := &cobra.Command{
		Use:   "png",
		Short: "Generate a maze and write it as a PNG image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("scale") {
				cfg.Scale = scale
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			m, err := buildMaze(cmd.Context(), cmd, cfg)
			if err != nil {
				return err
			}

			prog := newProgress(loggerFromContext(cmd.Context()))
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", output, err)
			}
			if err := export.WritePNG(f, m.Display(cfg.Debug), cfg.Scale, export.MonoPalette); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			prog.done("Wrote " + output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "maze.png", "output file")
	cmd.Flags().IntVar(&scale, "scale", 8, "pixels per maze pixel")
	return cmd
}
