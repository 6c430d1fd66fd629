package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mazegen/internal/maze"
	"github.com/samdwyer/mazegen/internal/presets"
)

// pixelWidth is the number of terminal columns per maze pixel; terminal
// cells are roughly twice as tall as they are wide.
const pixelWidth = 2

// Canvas is the drawing surface the renderer needs. *Screen implements it.
type Canvas interface {
	Clear()
	Show()
	SetContent(x, y int, r rune, style tcell.Style)
	Size() (width, height int)
}

// Marker is a glyph drawn over a maze pixel.
type Marker struct {
	Row, Col int // Pixel coordinates
	Symbol   rune
	Color    tcell.Color
}

// Frame is everything drawn in one refresh.
type Frame struct {
	Pixels  maze.PixelMap
	Markers []Marker
	Status  []string // Lines drawn below the maze
}

// Renderer handles drawing maze frames to a canvas.
type Renderer struct {
	canvas Canvas
	theme  presets.ThemeDef
}

// NewRenderer creates a new renderer for the given canvas and theme.
func NewRenderer(canvas Canvas, theme presets.ThemeDef) *Renderer {
	return &Renderer{canvas: canvas, theme: theme}
}

// Theme returns the active theme.
func (r *Renderer) Theme() presets.ThemeDef {
	return r.theme
}

// Render draws the maze, its markers and the status lines. Anything that
// does not fit on the canvas is clipped.
func (r *Renderer) Render(f Frame) {
	r.canvas.Clear()

	width, height := r.canvas.Size()
	wallStyle := tcell.StyleDefault.Background(r.theme.WallColor())
	pathStyle := tcell.StyleDefault.Background(r.theme.PathColor())

	for row, pixels := range f.Pixels {
		if row >= height {
			break
		}
		for col, px := range pixels {
			x := col * pixelWidth
			if x >= width {
				break
			}
			style := pathStyle
			if px == maze.Wall {
				style = wallStyle
			}
			for dx := 0; dx < pixelWidth; dx++ {
				r.canvas.SetContent(x+dx, row, ' ', style)
			}
		}
	}

	for _, m := range f.Markers {
		style := pathStyle.Foreground(m.Color).Bold(true)
		r.canvas.SetContent(m.Col*pixelWidth, m.Row, m.Symbol, style)
	}

	statusY := f.Pixels.Side()
	if statusY >= height {
		statusY = height - len(f.Status)
	}
	for i, line := range f.Status {
		r.RenderMessage(line, statusY+i)
	}

	r.canvas.Show()
}

// RenderMessage draws a line of text starting at column 0 of row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
}
