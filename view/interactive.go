package view

import (
	"fmt"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const (
	gridViewName   = "grid"
	statusViewName = "status"

	statusHeight = 2
)

// Options configures the interactive driver
type Options struct {
	Interval time.Duration
	Colors   bool
	// MaxGenerations quits the UI once reached; zero runs until the user quits
	MaxGenerations int
	// Advance returns the generation after the given one; the argument is not used afterwards
	Advance func(*model.Grid) *model.Grid
	// Reseed returns a fresh first generation
	Reseed func() (*model.Grid, error)
}

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func(*gocui.Gui, *gocui.View) error
}

// Interactive runs the simulation inside a gocui terminal UI.
// Board state is touched only from the gocui main loop goroutine.
type Interactive struct {
	opts       Options
	renderer   *model.TerminalRenderer
	grid       *model.Grid
	generation int
	paused     bool
	lastErr    error
	keys       []keyBinding

	// stop state is shared with the ticker goroutine
	mu      sync.Mutex
	stopped bool
	done    chan struct{}
}

// NewInteractive creates an interactive driver starting from grid
func NewInteractive(grid *model.Grid, opts Options) *Interactive {
	if opts.Interval <= 0 {
		opts.Interval = 100 * time.Millisecond
	}
	v := &Interactive{
		opts:     opts,
		renderer: model.NewTerminalRenderer(nil, opts.Colors),
		grid:     grid,
		done:     make(chan struct{}),
	}
	v.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "quit", v.cmdQuit},
		{'q', "q", "quit", v.cmdQuit},
		{gocui.KeySpace, "space", "pause", v.cmdTogglePause},
		{'n', "n", "step", v.cmdStep},
		{'r', "r", "reseed", v.cmdReseed},
	}
	return v
}

// Run blocks until the user quits
func (v *Interactive) Run() error {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return errors.Wrap(err, "[Interactive.Run] failed to start terminal UI")
	}
	defer g.Close()

	g.SetManagerFunc(v.layout)
	for _, k := range v.keys {
		if err := g.SetKeybinding("", k.key, gocui.ModNone, k.handler); err != nil {
			return errors.Wrapf(err, "[Interactive.Run] failed to bind key %s", k.name)
		}
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		v.tick(g)
	}()
	defer func() {
		v.stop()
		wg.Wait()
	}()

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "[Interactive.Run] main loop failed")
	}
	return v.lastErr
}

// tick schedules a generation every interval until stop is called.
// No update is queued once stopped, so none can outlive the main loop.
func (v *Interactive) tick(g *gocui.Gui) {
	ticker := time.NewTicker(v.opts.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-v.done:
			return
		case <-ticker.C:
			v.mu.Lock()
			if !v.stopped {
				g.Update(v.onTick)
			}
			v.mu.Unlock()
		}
	}
}

// stop ends the ticker; safe to call more than once
func (v *Interactive) stop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.stopped {
		v.stopped = true
		close(v.done)
	}
}

func (v *Interactive) onTick(*gocui.Gui) error {
	if v.paused {
		return nil
	}
	return v.step()
}

// step advances one generation and quits once MaxGenerations is reached
func (v *Interactive) step() error {
	v.grid = v.opts.Advance(v.grid)
	v.generation++
	if v.opts.MaxGenerations > 0 && v.generation >= v.opts.MaxGenerations {
		v.stop()
		return gocui.ErrQuit
	}
	return nil
}

func (v *Interactive) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	gv, err := g.SetView(gridViewName, 0, 0, maxX-1, maxY-statusHeight-2)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	gv.Title = " Game of Life "
	gv.Clear()
	fmt.Fprint(gv, v.renderer.Frame(v.grid))

	sv, err := g.SetView(statusViewName, 0, maxY-statusHeight-1, maxX-1, maxY-1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	sv.Frame = false
	sv.Clear()
	fmt.Fprintln(sv, v.statusLine())
	fmt.Fprintln(sv, v.helpLine())
	return nil
}

func (v *Interactive) statusLine() string {
	state := "running"
	if v.paused {
		state = "paused"
	}
	return fmt.Sprintf("Gen: %d | Living: %d | Grid: %dx%d | %s",
		v.generation, v.grid.CountLivingCells(), v.grid.Width(), v.grid.Height(), state)
}

func (v *Interactive) helpLine() string {
	line := ""
	for i, k := range v.keys {
		if i > 0 {
			line += "  "
		}
		line += k.name + " " + k.descr
	}
	return line
}

func (v *Interactive) cmdQuit(*gocui.Gui, *gocui.View) error {
	v.stop()
	return gocui.ErrQuit
}

func (v *Interactive) cmdTogglePause(*gocui.Gui, *gocui.View) error {
	v.paused = !v.paused
	return nil
}

func (v *Interactive) cmdStep(*gocui.Gui, *gocui.View) error {
	if v.paused {
		return v.step()
	}
	return nil
}

func (v *Interactive) cmdReseed(*gocui.Gui, *gocui.View) error {
	grid, err := v.opts.Reseed()
	if err != nil {
		v.lastErr = err
		v.stop()
		return gocui.ErrQuit
	}
	v.grid = grid
	v.generation = 0
	return nil
}
