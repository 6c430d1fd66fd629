package maze

import (
	"context"
	"errors"
	"testing"
)

type recordingPlotter struct {
	calls int
	last  PixelMap
	err   error
}

func (p *recordingPlotter) Plot(pm PixelMap) error {
	p.calls++
	p.last = pm
	return p.err
}

func TestDisplayDimensions(t *testing.T) {
	ctx := context.Background()
	for _, method := range Methods() {
		for size := 1; size <= 10; size++ {
			m := newTestMaze(t, size, int64(size))
			m.Generate(ctx, method)
			pm := m.Display(false)

			side := 2*size + 1
			if pm.Side() != side {
				t.Fatalf("size=%d: Display has %d rows, want %d", size, pm.Side(), side)
			}
			for r, row := range pm {
				if len(row) != side {
					t.Fatalf("size=%d: row %d has %d columns, want %d", size, r, len(row), side)
				}
				for c, v := range row {
					if v != Wall && v != Path {
						t.Errorf("size=%d: pixel (%d,%d) = %d, want 0 or 1", size, r, c, v)
					}
					if r%2 == 1 && c%2 == 1 && v != Path {
						t.Errorf("size=%d: cell interior (%d,%d) is a wall", size, r, c)
					}
					if r%2 == 0 && c%2 == 0 && v != Wall {
						t.Errorf("size=%d: intersection (%d,%d) is open", size, r, c)
					}
				}
			}
		}
	}
}

func TestDisplaySingleCell(t *testing.T) {
	m := newTestMaze(t, 1, 11)
	m.Generate(context.Background(), DepthFirst1)
	got := m.Display(false)

	want := PixelMap{
		{1, 0, 1},
		{1, 0, 1},
		{1, 0, 1},
	}
	if !got.Equal(want) {
		t.Errorf("Display() = %v, want %v", got, want)
	}
}

func TestDisplayMatchesWalls(t *testing.T) {
	m := newTestMaze(t, 7, 2024)
	m.Generate(context.Background(), DepthFirst2)
	pm := m.Display(false)

	for r := 0; r < m.Size; r++ {
		for c := 0; c < m.Size; c++ {
			cell := m.Cell(Point{Row: r, Col: c})
			pr, pc := CellPixel(Point{Row: r, Col: c})

			checks := []struct {
				dir Direction
				row int
				col int
			}{
				{Up, pr - 1, pc},
				{Down, pr + 1, pc},
				{Left, pr, pc - 1},
				{Right, pr, pc + 1},
			}
			for _, chk := range checks {
				if pm.IsWall(chk.row, chk.col) != cell.HasWall(chk.dir) {
					t.Errorf("cell (%d,%d) %v wall = %v but pixel (%d,%d) = %d",
						r, c, chk.dir, cell.HasWall(chk.dir), chk.row, chk.col, pm[chk.row][chk.col])
				}
			}
		}
	}
}

func TestDisplayIsIdempotent(t *testing.T) {
	m := newTestMaze(t, 12, 8)
	m.Generate(context.Background(), DepthFirst1)

	first := m.Display(false)
	second := m.Display(false)
	if !first.Equal(second) {
		t.Error("Display() returned different maps without an intervening Generate")
	}

	first[1][1] = Wall
	if m.Display(false)[1][1] != Path {
		t.Error("Display() shares storage between calls")
	}
}

func TestDisplayBeforeGenerate(t *testing.T) {
	m := newTestMaze(t, 3, 1)
	pm := m.Display(false)

	for r, row := range pm {
		for c, v := range row {
			want := Wall
			if r%2 == 1 && c%2 == 1 {
				want = Path
			}
			if v != want {
				t.Errorf("pixel (%d,%d) = %d, want %d", r, c, v, want)
			}
		}
	}
}

func TestDisplayDebugPlots(t *testing.T) {
	plotter := &recordingPlotter{}
	m := newTestMaze(t, 4, 6)
	WithPlotter(plotter)(m)
	m.Generate(context.Background(), DepthFirst1)

	m.Display(false)
	if plotter.calls != 0 {
		t.Errorf("Display(false) plotted %d times, want 0", plotter.calls)
	}

	pm := m.Display(true)
	if plotter.calls != 1 {
		t.Fatalf("Display(true) plotted %d times, want 1", plotter.calls)
	}
	if !plotter.last.Equal(pm) {
		t.Error("plotter received a different map than Display returned")
	}

	plotter.err = errors.New("no display")
	if got := m.Display(true); !got.Equal(pm) {
		t.Error("a failing plotter changed the returned map")
	}
}

func TestPixelMapIsWallOutOfBounds(t *testing.T) {
	pm := PixelMap{{0}}
	if pm.IsWall(0, 0) {
		t.Error("IsWall(0,0) = true, want false")
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}} {
		if !pm.IsWall(p[0], p[1]) {
			t.Errorf("IsWall(%d,%d) = false, want true", p[0], p[1])
		}
	}
}
