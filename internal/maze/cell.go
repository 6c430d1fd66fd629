// Package maze provides perfect-maze generation on a square grid and the
// transform from wall state to a binary pixel map.
package maze

import "fmt"

// Direction names one side of a cell.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the side facing d across a shared wall.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Point is a (row, column) coordinate on the grid.
type Point struct {
	Row int
	Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell represents a single unit of the maze grid.
type Cell struct {
	Walls   [4]bool // Indexed by Direction; true means the wall is present
	Visited bool    // Set once the traversal has processed this cell

	// VisitedFrom is the cell that discovered this one, nil until discovery.
	VisitedFrom *Point
}

// newCell returns a fully walled, unvisited cell.
func newCell() Cell {
	return Cell{Walls: [4]bool{true, true, true, true}}
}

// HasWall reports whether the wall on side d is present.
func (c Cell) HasWall(d Direction) bool {
	return c.Walls[d]
}

// OpenWalls returns the number of sides without a wall.
func (c Cell) OpenWalls() int {
	n := 0
	for _, w := range c.Walls {
		if !w {
			n++
		}
	}
	return n
}
