// Package ebiten provides an Ebiten window that runs and draws a match.
package ebiten

import (
	"context"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	log "github.com/sirupsen/logrus"

	"mazearena/pkg/game/state"
)

// Stepper advances a match by one turn. *state.Game implements it.
type Stepper interface {
	AdvanceTurn(ctx context.Context) (state.TurnResult, error)
}

// renderSnapshot holds a consistent copy of the match for Draw
type renderSnapshot struct {
	valid bool
	snap  state.Snapshot
}

// EbitenRenderer is the Ebiten-based graphical renderer. It is both a
// renderer.Renderer fed by game events and the ebiten.Game that paces turns.
type EbitenRenderer struct {
	ctx     context.Context
	stepper Stepper
	log     log.FieldLogger

	tileSize int
	viewer   int

	monoFontSource     *text.GoTextFaceSource
	cachedTileFace     *text.GoTextFace
	cachedTileFontSize float64
	cachedHUDFace      *text.GoTextFace

	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	delay    time.Duration
	lastStep time.Time
	paused   bool
	step     bool
	finished bool
	maxTurns int
	turns    int
	err      error

	windowOpenedLogged bool
}
