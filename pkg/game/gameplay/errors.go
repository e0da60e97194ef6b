// Package gameplay owns the roster, the turn queue and placed ordnance, and
// resolves movement, shields, shots and explosions on the arena grid.
package gameplay

import (
	"errors"
	"fmt"
)

// ErrRejected is wrapped by every error caused by an action that is invalid
// in the current world state. The turn engine asks the player again.
var ErrRejected = errors.New("action rejected")

// ErrPrecondition is wrapped by errors caused by calling a manager with
// arguments it can never accept, such as an unknown player.
var ErrPrecondition = errors.New("precondition violated")

var (
	ErrInvalidMove      = fmt.Errorf("%w: target is a wall or off the grid", ErrRejected)
	ErrBlocked          = fmt.Errorf("%w: target is occupied", ErrRejected)
	ErrNoMunitions      = fmt.Errorf("%w: no munitions left", ErrRejected)
	ErrBadPlacement     = fmt.Errorf("%w: bomb target is not an open empty cell", ErrRejected)
	ErrAlreadyPlaced    = fmt.Errorf("%w: bomb is already armed", ErrRejected)
	ErrNoSuchWeapon     = fmt.Errorf("%w: no weapon at that index", ErrRejected)
	ErrInvalidDirection = fmt.Errorf("%w: invalid direction", ErrRejected)
)

// ErrNoOpenCell is returned when a player cannot be placed anywhere
var ErrNoOpenCell = errors.New("no open empty cell left")

func precondition(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...))
}
