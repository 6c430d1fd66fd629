package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samdwyer/mazegen/internal/config"
	"github.com/samdwyer/mazegen/internal/maze"
	"github.com/samdwyer/mazegen/internal/presets"
)

// genFlags are the generation flags shared by every command that builds a maze.
type genFlags struct {
	configPath string
	preset     string
	size       int
	method     string
	seed       int64
	theme      string
	debug      bool
}

func (f *genFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", "", "config file (default ./"+config.DefaultFile+" if present)")
	flags.StringVarP(&f.preset, "preset", "p", "", "named preset (see `mazegen presets`)")
	flags.IntVarP(&f.size, "size", "s", config.DefaultSize, fmt.Sprintf("cells per side [%d-%d]", config.MinSize, config.MaxSize))
	flags.StringVarP(&f.method, "method", "m", string(maze.DefaultMethod), "generation method: depth-first-1 or depth-first-2")
	flags.Int64Var(&f.seed, "seed", 0, "random seed (0 = time-based)")
	flags.StringVar(&f.theme, "theme", presets.DefaultThemeID, "colour theme")
	flags.BoolVar(&f.debug, "debug", false, "send the pixel map to the debug plotter on stderr")
}

// resolve layers config file, environment, preset and explicit flags, in
// that order.
func (f *genFlags) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}

	changed := cmd.Flags().Changed
	if changed("preset") {
		cfg.Preset = f.preset
	}
	if cfg.Preset != "" {
		p, err := presets.MustLoadPresetRegistry().Lookup(cfg.Preset)
		if err != nil {
			return cfg, fmt.Errorf("unknown preset: %w", err)
		}
		cfg.ApplyPreset(p)
	}

	if changed("size") {
		cfg.Size = f.size
	}
	if changed("method") {
		cfg.Method = f.method
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("theme") {
		cfg.Theme = f.theme
	}
	if changed("debug") {
		cfg.Debug = f.debug
	}

	return cfg, cfg.Validate()
}

// buildMaze constructs and generates a maze from cfg.
func buildMaze(ctx context.Context, cmd *cobra.Command, cfg config.Config) (*maze.Maze, error) {
	logger := loggerFromContext(ctx)
	opts := []maze.Option{maze.WithSeed(cfg.Seed), maze.WithLogger(logger)}
	if cfg.Debug {
		opts = append(opts, maze.WithPlotter(newDebugPlotter(cmd)))
	}

	m, err := maze.New(cfg.Size, opts...)
	if err != nil {
		return nil, err
	}

	prog := newProgress(logger)
	m.Generate(ctx, cfg.GenerationMethod())
	prog.done(fmt.Sprintf("Generated %dx%d maze", cfg.Size, cfg.Size))
	return m, nil
}
