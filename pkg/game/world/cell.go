// Package world holds the arena grid: its cells, their occupants, and the
// generation pipeline that carves and decorates a fresh maze.
package world

import (
	"fmt"

	"mazearena/pkg/game/entities"
)

// Cell is one addressable arena position. A wall cell never holds an occupant.
type Cell struct {
	Row      int
	Col      int
	Wall     bool
	Visited  bool
	Occupant entities.Occupant
}

// IsOpen returns true if the cell is not a wall
func (c *Cell) IsOpen() bool {
	return c != nil && !c.Wall
}

// IsEmpty returns true if the cell is open and holds nothing
func (c *Cell) IsEmpty() bool {
	return c.IsOpen() && c.Occupant == nil
}

// Player returns the player standing on the cell, if any
func (c *Cell) Player() (*entities.Player, bool) {
	if c == nil {
		return nil, false
	}
	p, ok := c.Occupant.(*entities.Player)
	return p, ok
}

// Bomb returns the bomb or mine placed on the cell, if any
func (c *Cell) Bomb() (*entities.Bomb, bool) {
	if c == nil {
		return nil, false
	}
	b, ok := c.Occupant.(*entities.Bomb)
	return b, ok
}

// Clear empties the cell
func (c *Cell) Clear() {
	c.Occupant = nil
}

// SetWall turns the cell into a wall, dropping whatever stood on it
func (c *Cell) SetWall() {
	c.Wall = true
	c.Occupant = nil
}

// Put places an occupant on an open cell. Returns false for walls.
func (c *Cell) Put(o entities.Occupant) bool {
	if c.Wall {
		return false
	}
	c.Occupant = o
	return true
}

func (c *Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
