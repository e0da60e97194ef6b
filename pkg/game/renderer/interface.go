package renderer

import (
	"mazearena/pkg/game/state"
)

// Renderer defines the interface for match display backends.
// Implementations include the terminal renderer and the Ebiten window.
type Renderer interface {
	// Init prepares the backend (colours, screen, window)
	Init() error

	// RenderFrame draws one complete frame: the grid, the roster and the
	// recent messages
	RenderFrame(s state.Snapshot) error

	// Close releases the backend
	Close() error
}

// Observe returns an observer that draws every event's snapshot with r.
// Draw errors are passed to onErr when it is not nil.
func Observe(r Renderer, onErr func(error)) state.Observer {
	return state.ObserverFunc(func(ev state.Event) {
		if err := r.RenderFrame(ev.Snapshot); err != nil && onErr != nil {
			onErr(err)
		}
	})
}
