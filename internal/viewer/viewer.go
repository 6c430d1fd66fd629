package viewer

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mazegen/internal/entity"
	"github.com/samdwyer/mazegen/internal/maze"
	"github.com/samdwyer/mazegen/internal/telemetry"
	"github.com/samdwyer/mazegen/internal/ui"
)

// request describes one maze to build on a worker goroutine.
type request struct {
	id     int
	size   int
	method maze.Method
	seed   int64
}

// postRetry is the pause between attempts to post into a full event queue.
const postRetry = 5 * time.Millisecond

// resultReady wakes the event loop after a worker has queued its result.
type resultReady struct{}

// result is handed back to the event loop when a worker finishes.
type result struct {
	req     request
	pixels  maze.PixelMap
	start   maze.Point
	end     maze.Point
	err     error
	elapsed time.Duration
}

// Viewer holds the entire viewer state. Everything except the worker
// goroutines runs on the event loop.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	logger   *log.Logger
	cfg      Config
	seeds    *rand.Rand

	// results holds at most one finished maze; only one worker runs at a time.
	results chan result
	workers sync.WaitGroup

	size     int
	method   maze.Method
	state    State
	requests int

	pixels maze.PixelMap
	start  maze.Point
	end    maze.Point
	walker *entity.Walker
	status string

	running bool
}

// New creates a viewer drawing to screen.
func New(screen *ui.Screen, cfg Config, logger *log.Logger) *Viewer {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	method := cfg.Method
	if _, err := maze.ParseMethod(string(method)); err != nil {
		logger.Warn("Invalid method, using default", "method", method, "default", maze.DefaultMethod)
		method = maze.DefaultMethod
	}

	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen, cfg.Theme),
		logger:   logger,
		cfg:      cfg,
		seeds:    rand.New(rand.NewSource(seed)),
		results:  make(chan result, 1),
		size:     clampSize(cfg.Size),
		method:   method,
		state:    StateIdle,
		running:  true,
	}
}

// Run executes the main loop until the user quits or ctx is cancelled. It
// returns only after any in-flight worker has finished.
func (v *Viewer) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	stopped := make(chan struct{})
	defer func() {
		close(stopped)
		cancel()
		v.workers.Wait()
		v.screen.Close()
	}()

	go func() {
		select {
		case <-ctx.Done():
			v.post(stopped, tcell.NewEventInterrupt(ctx.Err()))
		case <-stopped:
		}
	}()

	v.regenerate(ctx)

	for v.running && ctx.Err() == nil {
		v.render()

		ev := v.screen.PollEvent()
		if ev == nil {
			break
		}
		v.handleEvent(ctx, ev)
	}
	return nil
}

// regenerate starts a worker for the current size and method. It is a no-op
// while another worker is running.
func (v *Viewer) regenerate(ctx context.Context) {
	if v.state == StateGenerating {
		return
	}
	v.state = StateGenerating
	v.requests++
	req := request{
		id:     v.requests,
		size:   v.size,
		method: v.method,
		seed:   v.seeds.Int63(),
	}

	v.workers.Add(1)
	go func() {
		v.results <- v.generate(ctx, req)
		v.workers.Done()
		v.post(ctx.Done(), tcell.NewEventInterrupt(resultReady{}))
	}()
}

// post hands ev to the event loop, retrying while the queue is full. It
// gives up when stop is closed.
func (v *Viewer) post(stop <-chan struct{}, ev tcell.Event) bool {
	for {
		if err := v.screen.PostEvent(ev); err == nil {
			return true
		}
		select {
		case <-stop:
			return false
		case <-time.After(postRetry):
		}
	}
}

// collect installs the finished maze, if a worker has left one.
func (v *Viewer) collect() {
	select {
	case res := <-v.results:
		v.apply(res)
	default:
	}
}

// generate builds a maze on the calling goroutine. The maze never escapes;
// only its pixel map is handed back.
func (v *Viewer) generate(ctx context.Context, req request) result {
	tracer := telemetry.Tracer("viewer")
	ctx, span := tracer.Start(ctx, "viewer.regenerate")
	defer span.End()

	startTime := time.Now()
	opts := []maze.Option{maze.WithSeed(req.seed), maze.WithLogger(v.logger)}
	if v.cfg.Plotter != nil {
		opts = append(opts, maze.WithPlotter(v.cfg.Plotter))
	}

	m, err := maze.New(req.size, opts...)
	if err != nil {
		span.RecordError(err)
		return result{req: req, err: err}
	}
	m.Generate(ctx, req.method)

	res := result{req: req, pixels: m.Display(v.cfg.Debug), elapsed: time.Since(startTime)}
	res.start, _ = m.Start()
	res.end, _ = m.End()

	span.SetAttributes(
		attribute.Int("viewer.request", req.id),
		attribute.Int("maze.size", req.size),
		attribute.String("maze.method", string(req.method)),
		attribute.Int64("maze.seed", req.seed),
	)
	return res
}

// apply installs a finished maze.
func (v *Viewer) apply(res result) {
	v.state = StateIdle
	if res.err != nil {
		v.status = fmt.Sprintf("Generation failed: %v", res.err)
		v.logger.Error("Generation failed", "request", res.req.id, "err", res.err)
		return
	}

	v.pixels = res.pixels
	v.start, v.end = res.start, res.end
	v.walker = entity.NewWalkerAt(res.start)
	v.status = fmt.Sprintf("Generated %dx%d in %s", res.req.size, res.req.size, res.elapsed.Round(time.Millisecond))
	v.logger.Debug("Maze ready", "request", res.req.id, "size", res.req.size, "method", res.req.method, "seed", res.req.seed)
}

// handleEvent processes a single event. Any event also delivers a pending
// worker result, so a lost wake-up only delays it.
func (v *Viewer) handleEvent(ctx context.Context, ev tcell.Event) {
	v.collect()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		v.handleKey(ctx, ev.Key(), ev.Rune())
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventInterrupt:
		if _, ok := ev.Data().(error); ok {
			v.running = false
		}
	}
}

// handleKey processes keyboard input.
func (v *Viewer) handleKey(ctx context.Context, key tcell.Key, ch rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false

	case tcell.KeyEnter:
		v.regenerate(ctx)
	case tcell.KeyTab:
		v.toggleMethod()

	case tcell.KeyUp:
		v.tryMove(-1, 0)
	case tcell.KeyDown:
		v.tryMove(1, 0)
	case tcell.KeyLeft:
		v.tryMove(0, -1)
	case tcell.KeyRight:
		v.tryMove(0, 1)

	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			v.running = false
		case 'g', 'G', ' ':
			v.regenerate(ctx)
		case '+', '=':
			v.setSize(v.size + 1)
		case '-', '_':
			v.setSize(v.size - 1)
		case ']':
			v.setSize(v.size + 10)
		case '[':
			v.setSize(v.size - 10)
		case '1':
			v.method = maze.DepthFirst1
		case '2':
			v.method = maze.DepthFirst2
		}
	}
}

// setSize moves the size control; the new size applies to the next maze.
func (v *Viewer) setSize(size int) {
	v.size = clampSize(size)
}

func (v *Viewer) toggleMethod() {
	if v.method == maze.DepthFirst1 {
		v.method = maze.DepthFirst2
	} else {
		v.method = maze.DepthFirst1
	}
}

// tryMove attempts to move the walker by the given delta.
func (v *Viewer) tryMove(dRow, dCol int) {
	if v.walker == nil {
		return
	}
	v.walker.TryMove(v.pixels, dRow, dCol)
}

func (v *Viewer) render() {
	theme := v.renderer.Theme()
	frame := ui.Frame{Pixels: v.pixels}

	if v.walker != nil {
		startRow, startCol := maze.CellPixel(v.start)
		endRow, endCol := maze.CellPixel(v.end)
		frame.Markers = []ui.Marker{
			{Row: startRow, Col: startCol, Symbol: 'S', Color: theme.StartColor()},
			{Row: endRow, Col: endCol, Symbol: 'E', Color: theme.EndColor()},
			{Row: v.walker.Row, Col: v.walker.Col, Symbol: v.walker.Symbol, Color: theme.WalkerColor()},
		}
	}

	frame.Status = []string{
		fmt.Sprintf("Size: %d   Method: %s   [%s]", v.size, v.method.Label(), v.state),
		"g generate  +/- size  [/] size x10  1/2/Tab method  arrows walk  q quit",
	}
	if v.status != "" {
		frame.Status = append(frame.Status, v.status)
	}
	v.renderer.Render(frame)
}

func clampSize(size int) int {
	return max(MinSize, min(MaxSize, size))
}
