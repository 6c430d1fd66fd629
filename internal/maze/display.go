package maze

// Pixel values of a PixelMap.
const (
	Path uint8 = 0
	Wall uint8 = 1
)

// PixelMap is a square binary image of a maze. Cell (r, c) sits at pixel
// (2r+1, 2c+1); the pixels between cells hold the shared walls.
type PixelMap [][]uint8

// Side returns the side length of the map.
func (pm PixelMap) Side() int {
	return len(pm)
}

// IsWall reports whether the pixel at (row, col) is a wall. Pixels outside
// the map are walls.
func (pm PixelMap) IsWall(row, col int) bool {
	if row < 0 || row >= len(pm) || col < 0 || col >= len(pm[row]) {
		return true
	}
	return pm[row][col] == Wall
}

// Equal reports whether two maps hold the same pixels.
func (pm PixelMap) Equal(other PixelMap) bool {
	if len(pm) != len(other) {
		return false
	}
	for r := range pm {
		if len(pm[r]) != len(other[r]) {
			return false
		}
		for c := range pm[r] {
			if pm[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// CellPixel returns the pixel coordinates of the centre of cell p.
func CellPixel(p Point) (row, col int) {
	return 2*p.Row + 1, 2*p.Col + 1
}

// Plotter receives pixel maps for debug visualisation.
type Plotter interface {
	Plot(pm PixelMap) error
}

// Display renders the walls as a (2·Size+1)² pixel map, 1 for wall and 0
// for path. With debug set, the map is also handed to the configured Plotter.
func (m *Maze) Display(debug bool) PixelMap {
	side := 2*m.Size + 1
	pm := make(PixelMap, side)
	for row := range pm {
		pm[row] = make([]uint8, side)
		for col := range pm[row] {
			pm[row][col] = Wall
		}
	}

	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			switch {
			case row%2 == 1 && col%2 == 1:
				// Inside a cell.
				pm[row][col] = Path
			case row%2 == 0 && col%2 == 1:
				if row/2 < m.Size {
					pm[row][col] = wallPixel(m.grid[row/2][(col-1)/2].Walls[Up])
				} else {
					pm[row][col] = wallPixel(m.grid[m.Size-1][(col-1)/2].Walls[Down])
				}
			case row%2 == 1 && col%2 == 0:
				if col/2 < m.Size {
					pm[row][col] = wallPixel(m.grid[(row-1)/2][col/2].Walls[Left])
				} else {
					pm[row][col] = wallPixel(m.grid[(row-1)/2][m.Size-1].Walls[Right])
				}
			}
		}
	}

	if debug {
		m.plot(pm)
	}
	return pm
}

func (m *Maze) plot(pm PixelMap) {
	if m.plotter == nil {
		m.logger.Debug("No plotter configured, skipping debug plot", "side", pm.Side())
		return
	}
	if err := m.plotter.Plot(pm); err != nil {
		m.logger.Warn("Debug plot failed", "err", err)
	}
}

func wallPixel(present bool) uint8 {
	if present {
		return Wall
	}
	return Path
}
