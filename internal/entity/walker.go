// Package entity provides things that move through a generated maze.
package entity

import "github.com/samdwyer/mazegen/internal/maze"

// Walker is a marker the user steers through the open pixels of a maze.
type Walker struct {
	Row, Col int  // Current pixel position
	Symbol   rune // Display symbol
	Steps    int  // Successful moves since placement
}

// NewWalker creates a walker at the given pixel position.
func NewWalker(row, col int) *Walker {
	return &Walker{
		Row:    row,
		Col:    col,
		Symbol: '@',
	}
}

// NewWalkerAt places a walker on the centre pixel of a maze cell.
func NewWalkerAt(p maze.Point) *Walker {
	return NewWalker(maze.CellPixel(p))
}

// TryMove moves by the given delta if the destination pixel is open and
// reports whether it moved.
func (w *Walker) TryMove(pm maze.PixelMap, dRow, dCol int) bool {
	row, col := w.Row+dRow, w.Col+dCol
	if pm.IsWall(row, col) {
		return false
	}
	w.Row, w.Col = row, col
	w.Steps++
	return true
}

// Position returns the current row, column coordinates.
func (w *Walker) Position() (int, int) {
	return w.Row, w.Col
}
