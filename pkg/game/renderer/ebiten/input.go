package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "mazearena/pkg/engine/input"
)

// keyCodes names the keys the viewer listens to with the codes used by the
// shared key bindings
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeySpace, "space"},
	{ebiten.KeyP, "p"},
	{ebiten.KeyN, "n"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyEqual, "="},
	{ebiten.KeyNumpadAdd, "numpad_add"},
	{ebiten.KeyMinus, "-"},
	{ebiten.KeyNumpadSubtract, "numpad_subtract"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
}

// checkInput returns the intent of the first bound key pressed this tick
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	for _, k := range keyCodes {
		if inpututil.IsKeyJustPressed(k.key) {
			return engineinput.MapToIntent(k.code)
		}
	}
	return engineinput.IntentNone
}

// handleZoom handles ctrl with =/- for tile size adjustment
func (e *EbitenRenderer) handleZoom() bool {
	if !ebiten.IsKeyPressed(ebiten.KeyControl) {
		return false
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		e.tileSize = min(e.tileSize+tileSizeStep, maxTileSize)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		e.tileSize = max(e.tileSize-tileSizeStep, minTileSize)
	case inpututil.IsKeyJustPressed(ebiten.Key0):
		e.tileSize = defaultTileSize
	default:
		return false
	}
	return true
}

// applyIntent updates pacing for a viewer intent. Quit ends the game loop.
func (e *EbitenRenderer) applyIntent(intent engineinput.Intent) error {
	switch intent {
	case engineinput.IntentPause:
		e.paused = !e.paused
	case engineinput.IntentStep:
		e.paused = true
		e.step = true
	case engineinput.IntentFaster:
		e.delay = max(e.delay/2, minDelay)
	case engineinput.IntentSlower:
		e.delay = min(e.delay*2, maxDelay)
	case engineinput.IntentQuit:
		return ebiten.Termination
	default:
		return nil
	}
	e.log.WithField("intent", engineinput.IntentName(intent)).Debug("viewer input")
	return nil
}
