// Package action describes the requests a player can make on its turn.
package action

import (
	"fmt"
	"strconv"
	"strings"

	"mazearena/pkg/engine/world"
)

// Kind identifies the type of an action
type Kind int

const (
	Unknown Kind = iota
	Noop
	Move
	Shield
	Shoot
)

// String returns the console token for the kind
func (k Kind) String() string {
	switch k {
	case Noop:
		return "noop"
	case Move:
		return "move"
	case Shield:
		return "shield"
	case Shoot:
		return "shoot"
	default:
		return "unknown"
	}
}

// NoWeapon marks a shoot action that has not selected a weapon yet
const NoWeapon = -1

// Action is a single request from a strategy or a human.
// Weapon is a zero-based index into the acting player's weapon list.
type Action struct {
	Kind      Kind
	Direction world.Direction
	Weapon    int
	Token     string
}

// NoopAction does nothing for a turn
func NoopAction() Action {
	return Action{Kind: Noop, Direction: world.Invalid, Weapon: NoWeapon}
}

// MoveAction steps one cell in the given direction
func MoveAction(dir world.Direction) Action {
	return Action{Kind: Move, Direction: dir, Weapon: NoWeapon}
}

// ShieldAction raises the player's shield
func ShieldAction() Action {
	return Action{Kind: Shield, Direction: world.Invalid, Weapon: NoWeapon}
}

// ShootAction fires (or places) the weapon at index in the given direction
func ShootAction(weapon int, dir world.Direction) Action {
	return Action{Kind: Shoot, Direction: dir, Weapon: weapon}
}

// String renders the action back to its console token
func (a Action) String() string {
	switch a.Kind {
	case Move:
		return fmt.Sprintf("move %v", a.Direction)
	case Shoot:
		if a.Weapon == NoWeapon {
			return fmt.Sprintf("shoot %v", a.Direction)
		}
		return fmt.Sprintf("shoot %d %v", a.Weapon+1, a.Direction)
	case Shield, Noop:
		return a.Kind.String()
	default:
		return fmt.Sprintf("unknown %q", a.Token)
	}
}

// Complete reports whether the action carries everything needed to dispatch it
func (a Action) Complete() bool {
	switch a.Kind {
	case Noop, Shield:
		return true
	case Move:
		return a.Direction.IsValid()
	case Shoot:
		return a.Direction.IsValid() && a.Weapon >= 0
	default:
		return false
	}
}

// Parse reads a console token such as "move up", "shield", "shoot 2 left" or "noop".
// Weapon numbers are one-based on the console. A bare "shoot" parses to an
// incomplete Shoot action so the caller can prompt for the rest.
// Anything unrecognised parses to Unknown.
func Parse(token string) Action {
	unknown := Action{Kind: Unknown, Direction: world.Invalid, Weapon: NoWeapon, Token: token}

	fields := strings.Fields(strings.ToLower(token))
	if len(fields) == 0 {
		return unknown
	}

	switch fields[0] {
	case "noop", "wait", "r":
		if len(fields) != 1 {
			return unknown
		}
		return NoopAction()
	case "shield", "s":
		if len(fields) != 1 {
			return unknown
		}
		return ShieldAction()
	case "move", "m":
		if len(fields) != 2 {
			return unknown
		}
		dir := world.ParseDirection(fields[1])
		if !dir.IsValid() {
			return unknown
		}
		return MoveAction(dir)
	case "shoot", "t":
		a := ShootAction(NoWeapon, world.Invalid)
		for _, f := range fields[1:] {
			if n, err := strconv.Atoi(f); err == nil {
				if n < 1 {
					return unknown
				}
				a.Weapon = n - 1
				continue
			}
			dir := world.ParseDirection(f)
			if !dir.IsValid() {
				return unknown
			}
			a.Direction = dir
		}
		return a
	default:
		return unknown
	}
}
