package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/samdwyer/mazegen/internal/maze"
)

// Palette maps pixel values to colours.
type Palette struct {
	Wall color.Color
	Path color.Color
}

// MonoPalette draws walls black on white.
var MonoPalette = Palette{Wall: color.Black, Path: color.White}

// Image converts a pixel map to a paletted image, each pixel scaled to a
// scale×scale square.
func Image(pm maze.PixelMap, scale int, pal Palette) (*image.Paletted, error) {
	if scale < 1 {
		return nil, fmt.Errorf("invalid scale %d", scale)
	}

	side := pm.Side() * scale
	img := image.NewPaletted(image.Rect(0, 0, side, side), color.Palette{pal.Path, pal.Wall})
	for r, row := range pm {
		for c, px := range row {
			if px != maze.Wall {
				continue
			}
			for y := r * scale; y < (r+1)*scale; y++ {
				for x := c * scale; x < (c+1)*scale; x++ {
					img.SetColorIndex(x, y, 1)
				}
			}
		}
	}
	return img, nil
}

// WritePNG encodes the pixel map as a PNG image.
func WritePNG(w io.Writer, pm maze.PixelMap, scale int, pal Palette) error {
	img, err := Image(pm, scale, pal)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}
