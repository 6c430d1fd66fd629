package export

import (
	"fmt"
	"io"
	"sync"

	"github.com/samdwyer/mazegen/internal/maze"
)

// TextPlotter is a maze.Plotter that writes each map it receives, framed by
// a header line, to an io.Writer.
type TextPlotter struct {
	mu    sync.Mutex
	w     io.Writer
	opts  []TextOption
	plots int
}

// NewTextPlotter creates a plotter writing to w.
func NewTextPlotter(w io.Writer, opts ...TextOption) *TextPlotter {
	return &TextPlotter{w: w, opts: opts}
}

// Plot implements maze.Plotter.
func (p *TextPlotter) Plot(pm maze.PixelMap) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.plots++
	if _, err := fmt.Fprintf(p.w, "-- plot %d (%dx%d) --\n", p.plots, pm.Side(), pm.Side()); err != nil {
		return err
	}
	return WriteText(p.w, pm, p.opts...)
}

var _ maze.Plotter = (*TextPlotter)(nil)
