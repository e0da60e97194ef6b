// Package combat resolves weapon effects on the arena grid.
package combat

import (
	"fmt"

	engineworld "mazearena/pkg/engine/world"
	"mazearena/pkg/game/entities"
	"mazearena/pkg/game/world"
)

// Hit records one player struck by a weapon
type Hit struct {
	Target   *entities.Player
	Cell     *world.Cell
	Damage   int
	Absorbed bool
	Killed   bool
}

// Behavior applies a weapon's effect starting at (row, col)
type Behavior interface {
	Fire(g *world.Grid, row, col int, dir engineworld.Direction, w *entities.Arms) []Hit
}

// Directional walks cell by cell along dir for up to Range steps. The first
// player on the line takes the damage and stops the shot. Walls do not.
type Directional struct{}

// Fire implements Behavior
func (Directional) Fire(g *world.Grid, row, col int, dir engineworld.Direction, w *entities.Arms) []Hit {
	if !dir.IsValid() {
		return nil
	}
	dr, dc := dir.Delta()
	for step := 1; step <= w.Range; step++ {
		cell := g.GetCell(row+dr*step, col+dc*step)
		if cell == nil {
			return nil
		}
		if p, ok := cell.Player(); ok {
			return []Hit{strike(p, cell, w.Damage)}
		}
	}
	return nil
}

// Explosion damages every player in the 3x3 block centred on (row, col),
// walls included.
type Explosion struct{}

// Fire implements Behavior. The direction is ignored.
func (Explosion) Fire(g *world.Grid, row, col int, _ engineworld.Direction, w *entities.Arms) []Hit {
	var hits []Hit
	for _, cell := range g.Neighborhood(row, col) {
		if p, ok := cell.Player(); ok {
			hits = append(hits, strike(p, cell, w.Damage))
		}
	}
	return hits
}

func strike(p *entities.Player, cell *world.Cell, damage int) Hit {
	absorbed, killed := p.Damage(damage)
	return Hit{Target: p, Cell: cell, Damage: damage, Absorbed: absorbed, Killed: killed}
}

// BehaviorFor returns the behaviour a weapon fires with
func BehaviorFor(w entities.Weapon) Behavior {
	switch w.(type) {
	case *entities.Gun:
		return Directional{}
	case *entities.Bomb:
		return Explosion{}
	default:
		panic(fmt.Sprintf("combat: unknown weapon type %T", w))
	}
}

// Detonate fires a bomb's explosion at the cell it sits on
func Detonate(g *world.Grid, b *entities.Bomb, at *world.Cell) []Hit {
	return Explosion{}.Fire(g, at.Row, at.Col, engineworld.Invalid, b.Stats())
}
