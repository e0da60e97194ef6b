// Package world provides generic 2D grid primitives: directions and maze carving.
package world

import (
	"math/rand"
	"strings"
)

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// Invalid is returned by ParseDirection for tokens it does not recognise
const Invalid Direction = -1

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

// RandomDirection picks one of the four cardinal directions uniformly
func RandomDirection(rng *rand.Rand) Direction {
	return Direction(rng.Intn(4))
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "up"
	case East:
		return "right"
	case South:
		return "down"
	case West:
		return "left"
	default:
		return "unknown"
	}
}

// IsValid returns true if the direction is a valid cardinal direction
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return d
	}
}

// Delta returns the row and column offsets for this direction
func (d Direction) Delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	case West:
		return 0, -1
	default:
		return 0, 0
	}
}

// ParseDirection accepts the console spellings of a direction:
// up/down/left/right, north/south/east/west, n/s/e/w, u/l/r and the
// legacy h/b/g/d keys. Note that "d" means right, not down.
func ParseDirection(token string) Direction {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "up", "north", "u", "n", "h":
		return North
	case "down", "south", "s", "b":
		return South
	case "left", "west", "l", "w", "g":
		return West
	case "right", "east", "r", "e", "d":
		return East
	default:
		return Invalid
	}
}
