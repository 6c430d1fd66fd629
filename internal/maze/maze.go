package maze

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazegen/internal/telemetry"
)

// ErrInvalidSize is returned by New when the requested size is below 1.
var ErrInvalidSize = errors.New("invalid maze size")

// Maze is a square grid of cells. It is not safe for concurrent use; a maze
// belongs to the goroutine generating it until Generate returns.
type Maze struct {
	Size int

	grid    [][]Cell
	start   *Point
	end     *Point
	rng     *rand.Rand
	logger  *log.Logger
	plotter Plotter
}

// Option configures a Maze.
type Option func(*Maze)

// WithRand sets the random source used for start/end placement and shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(m *Maze) { m.rng = rng }
}

// WithSeed seeds a private random source. A seed of 0 keeps the time-based default.
func WithSeed(seed int64) Option {
	return func(m *Maze) {
		if seed != 0 {
			m.rng = rand.New(rand.NewSource(seed))
		}
	}
}

// WithLogger sets the logger used for diagnostics such as method fallback.
func WithLogger(l *log.Logger) Option {
	return func(m *Maze) { m.logger = l }
}

// WithPlotter sets the collaborator that receives pixel maps from Display(true).
func WithPlotter(p Plotter) Option {
	return func(m *Maze) { m.plotter = p }
}

// New creates a size×size maze with every wall present.
func New(size int, opts ...Option) (*Maze, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	m := &Maze{
		Size:   size,
		grid:   newGrid(size),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func newGrid(size int) [][]Cell {
	grid := make([][]Cell, size)
	for row := range grid {
		grid[row] = make([]Cell, size)
		for col := range grid[row] {
			grid[row][col] = newCell()
		}
	}
	return grid
}

// Generate carves the maze with the given method. Unknown methods fall back
// to DefaultMethod with a warning.
func (m *Maze) Generate(ctx context.Context, method Method) {
	tracer := telemetry.Tracer("maze")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()
	runID := uuid.NewString()

	resolved, err := ParseMethod(string(method))
	if err != nil {
		m.logger.Warn("Invalid method, using default", "method", method, "default", DefaultMethod)
		resolved = DefaultMethod
	}

	// A maze may be regenerated; every run starts from a fully walled grid.
	if m.start != nil {
		m.grid = newGrid(m.Size)
	}

	m.traverse(resolved.trackSeen())

	m.logger.Debug("Generated maze",
		"run", runID,
		"size", m.Size,
		"method", resolved,
		"start", m.start,
		"end", m.end,
		"elapsed", time.Since(startTime).Round(time.Microsecond),
	)

	span.SetAttributes(
		attribute.String("maze.run_id", runID),
		attribute.Int("maze.size", m.Size),
		attribute.String("maze.method", string(resolved)),
		attribute.Bool("maze.method_fallback", err != nil),
		attribute.String("maze.start", m.start.String()),
		attribute.String("maze.end", m.end.String()),
		attribute.Int64("maze.generation_us", time.Since(startTime).Microseconds()),
	)
}

// Start returns the entry cell chosen by the last Generate call.
func (m *Maze) Start() (Point, bool) {
	if m.start == nil {
		return Point{}, false
	}
	return *m.start, true
}

// End returns the exit cell chosen by the last Generate call.
func (m *Maze) End() (Point, bool) {
	if m.end == nil {
		return Point{}, false
	}
	return *m.end, true
}

// Cell returns a copy of the cell at p.
func (m *Maze) Cell(p Point) Cell {
	return *m.cell(p)
}

func (m *Maze) cell(p Point) *Cell {
	return &m.grid[p.Row][p.Col]
}

// InBounds reports whether p lies on the grid.
func (m *Maze) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < m.Size && p.Col >= 0 && p.Col < m.Size
}

// neighbourDeltas is the fixed candidate order; callers shuffle the result.
var neighbourDeltas = [4]Point{
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
}

// Neighbours returns the orthogonally adjacent coordinates of p that lie on the grid.
func (m *Maze) Neighbours(p Point) []Point {
	result := make([]Point, 0, len(neighbourDeltas))
	for _, d := range neighbourDeltas {
		n := Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if m.InBounds(n) {
			result = append(result, n)
		}
	}
	return result
}

// direction returns the side of a that faces b. The two points must be
// orthogonally adjacent.
func direction(a, b Point) (Direction, bool) {
	switch {
	case b.Row == a.Row+1 && b.Col == a.Col:
		return Down, true
	case b.Row == a.Row-1 && b.Col == a.Col:
		return Up, true
	case b.Col == a.Col+1 && b.Row == a.Row:
		return Right, true
	case b.Col == a.Col-1 && b.Row == a.Row:
		return Left, true
	default:
		return 0, false
	}
}

// RemoveWall opens the wall shared by two adjacent cells on both sides.
// Passing non-adjacent points is a programming error and panics.
func (m *Maze) RemoveWall(a, b Point) {
	dir, ok := direction(a, b)
	if !ok {
		panic(fmt.Sprintf("maze: remove wall between non-adjacent cells %v and %v", a, b))
	}
	m.cell(a).Walls[dir] = false
	m.cell(b).Walls[dir.Opposite()] = false
}
