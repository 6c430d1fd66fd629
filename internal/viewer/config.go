package viewer

import (
	"github.com/samdwyer/mazegen/internal/maze"
	"github.com/samdwyer/mazegen/internal/presets"
)

// Size limits of the size control.
const (
	MinSize = 1
	MaxSize = 100
)

// Config holds viewer options.
type Config struct {
	Size   int         // Initial maze size
	Method maze.Method // Initial generation method
	Theme  presets.ThemeDef

	// Seed for the sequence of maze seeds. A seed of 0 means a random seed
	// will be generated.
	Seed int64

	// Debug routes every generated map to the maze's plotter.
	Debug   bool
	Plotter maze.Plotter
}
