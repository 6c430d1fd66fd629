// Package export writes maze pixel maps as text or PNG images.
package export

import (
	"bufio"
	"io"

	"github.com/samdwyer/mazegen/internal/maze"
)

// TextOption configures text output.
type TextOption func(*textWriter)

type textWriter struct {
	wall, path string
}

// WithRaw writes pixels as the digits 1 and 0.
func WithRaw() TextOption {
	return func(w *textWriter) { w.wall, w.path = "1", "0" }
}

// WithGlyphs sets the strings written for wall and path pixels.
func WithGlyphs(wall, path string) TextOption {
	return func(w *textWriter) { w.wall, w.path = wall, path }
}

// WriteText writes one line per pixel row. By default each pixel is two
// block or space characters wide so the maze keeps its aspect ratio.
func WriteText(w io.Writer, pm maze.PixelMap, opts ...TextOption) error {
	tw := textWriter{wall: "██", path: "  "}
	for _, opt := range opts {
		opt(&tw)
	}

	bw := bufio.NewWriter(w)
	for _, row := range pm {
		for _, px := range row {
			if px == maze.Wall {
				bw.WriteString(tw.wall)
			} else {
				bw.WriteString(tw.path)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
