package ebiten

import (
	"context"
	"errors"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"mazearena/pkg/game/state"
)

// Options configures the window
type Options struct {
	Delay    time.Duration
	TileSize int
	MaxTurns int
	Viewer   int
	Logger   log.FieldLogger
}

// New creates a renderer that advances s on a timer while the window is open
func New(ctx context.Context, s Stepper, opts Options) *EbitenRenderer {
	e := &EbitenRenderer{
		ctx:      ctx,
		stepper:  s,
		log:      opts.Logger,
		tileSize: opts.TileSize,
		viewer:   opts.Viewer,
		delay:    opts.Delay,
		maxTurns: opts.MaxTurns,
	}
	if e.log == nil {
		e.log = log.StandardLogger()
	}
	if e.tileSize == 0 {
		e.tileSize = defaultTileSize
	}
	if e.delay == 0 {
		e.delay = defaultDelay
	}
	return e
}

// Init loads the font and sets up the window
func (e *EbitenRenderer) Init() error {
	src, err := loadMonoFont()
	if err != nil {
		return err
	}
	e.monoFontSource = src
	ebiten.SetWindowTitle("Maze Arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return nil
}

// Close has nothing to release; the window closes when Run returns
func (e *EbitenRenderer) Close() error {
	return nil
}

// RenderFrame captures a snapshot for the next Draw call
func (e *EbitenRenderer) RenderFrame(s state.Snapshot) error {
	if e.viewer != 0 {
		s.Cells = state.Redact(s.Cells, e.viewer)
	}
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	e.snapshot = renderSnapshot{valid: true, snap: s}
	return nil
}

func (e *EbitenRenderer) current() renderSnapshot {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	return e.snapshot
}

// Run opens the window and blocks until it is closed, the viewer quits or
// the match fails
func (e *EbitenRenderer) Run(initial state.Snapshot) error {
	if err := e.RenderFrame(initial); err != nil {
		return err
	}
	w, h := e.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return e.err
}

// Update handles input and advances the match (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.WithFields(log.Fields{"width": w, "height": h}).Info("window opened")
	}

	if e.handleZoom() {
		return nil
	}
	if err := e.applyIntent(e.checkInput()); err != nil {
		return err
	}
	return e.tick(time.Now())
}

// tick advances one turn when the delay has passed or a step was requested
func (e *EbitenRenderer) tick(now time.Time) error {
	if e.finished {
		return nil
	}
	due := !e.paused && now.Sub(e.lastStep) >= e.delay
	if !due && !e.step {
		return nil
	}
	e.step = false
	e.lastStep = now

	if e.maxTurns > 0 && e.turns >= e.maxTurns {
		e.finished = true
		return nil
	}
	e.turns++

	res, err := e.stepper.AdvanceTurn(e.ctx)
	switch {
	case errors.Is(err, state.ErrGameOver):
		e.finished = true
	case err != nil:
		e.err = err
		return ebiten.Termination
	case res.Status == state.Finished:
		e.finished = true
	}
	return nil
}

// Layout returns the logical screen size: the board plus the HUD below it
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	snap := e.current()
	rows, cols := snap.snap.Rows, snap.snap.Cols
	hudLines := len(snap.snap.Players) + len(snap.snap.Messages) + 4
	w := cols*e.tileSize + frameBorder*2
	h := rows*e.tileSize + frameBorder*3 + hudLines*hudLineHeight
	return max(w, 320), max(h, 240)
}
