package world

import (
	"errors"
	"fmt"
	"math/rand"

	engineworld "mazearena/pkg/engine/world"
	"mazearena/pkg/game/entities"
)

// ErrGridConfig is wrapped by every generation configuration error
var ErrGridConfig = errors.New("invalid grid configuration")

// GridConfig controls arena generation
type GridConfig struct {
	Rows          int
	Cols          int
	WallDensity   float64
	HealthDensity float64
	AmmoDensity   float64
	Rooms         int
	RoomSize      int
	HealthAmount  int
	AmmoAmount    int
}

// Validate checks that the configuration describes a grid that can be generated
func (c GridConfig) Validate() error {
	if c.Rows < 3 || c.Cols < 3 {
		return fmt.Errorf("%w: grid must be at least 3x3, got %dx%d", ErrGridConfig, c.Rows, c.Cols)
	}
	densities := map[string]float64{
		"wall":   c.WallDensity,
		"health": c.HealthDensity,
		"ammo":   c.AmmoDensity,
	}
	for name, d := range densities {
		if d < 0 || d > 1 {
			return fmt.Errorf("%w: %s density %v outside [0,1]", ErrGridConfig, name, d)
		}
	}
	if c.HealthDensity+c.AmmoDensity > 1 {
		return fmt.Errorf("%w: pickup densities sum above 1", ErrGridConfig)
	}
	if c.Rooms < 0 || c.RoomSize < 0 {
		return fmt.Errorf("%w: negative room count or size", ErrGridConfig)
	}
	return nil
}

// Generate builds a new arena: a carved maze from (1,1), overlaid rooms,
// pillars, random walls and pickups, closed off by a solid border.
func Generate(cfg GridConfig, rng *rand.Rand) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := NewGrid(cfg.Rows, cfg.Cols)
	engineworld.CarveMaze(g, 1, 1, rng)
	g.carveRooms(cfg.Rooms, cfg.RoomSize, rng)
	g.placePillars()
	g.scatterWalls(cfg.WallDensity, rng)
	g.scatterPickups(cfg, rng)
	g.sealBorder()

	return g, nil
}

// carveRooms opens count square rooms at random anchors inside the interior.
// Rooms may overlap. Nothing is carved when a room cannot fit.
func (g *Grid) carveRooms(count, size int, rng *rand.Rand) {
	if size <= 0 || g.rows-size-1 < 1 || g.cols-size-1 < 1 {
		return
	}

	for i := 0; i < count; i++ {
		top := rng.Intn(g.rows-size-1) + 1
		left := rng.Intn(g.cols-size-1) + 1

		for row := top; row < top+size; row++ {
			for col := left; col < left+size; col++ {
				g.cells[row][col].Wall = false
			}
		}
	}
}

// placePillars re-walls every 4th interior row and column intersection
func (g *Grid) placePillars() {
	for row := 2; row < g.rows-1; row += 4 {
		for col := 2; col < g.cols-1; col += 4 {
			g.cells[row][col].SetWall()
		}
	}
}

func (g *Grid) scatterWalls(density float64, rng *rand.Rand) {
	if density <= 0 {
		return
	}
	g.ForEachCell(func(row, col int, cell *Cell) {
		if !g.IsPlayablePosition(row, col) || cell.Wall {
			return
		}
		if rng.Float64() < density {
			cell.SetWall()
		}
	})
}

// scatterPickups draws once per open empty interior cell; health is checked
// before ammo so a cell gets at most one pickup.
func (g *Grid) scatterPickups(cfg GridConfig, rng *rand.Rand) {
	g.ForEachCell(func(row, col int, cell *Cell) {
		if !g.IsPlayablePosition(row, col) || !cell.IsEmpty() {
			return
		}
		u := rng.Float64()
		switch {
		case u < cfg.HealthDensity:
			cell.Put(entities.NewHealthPickup(cfg.HealthAmount))
		case u < cfg.HealthDensity+cfg.AmmoDensity:
			cell.Put(entities.NewAmmoPickup(cfg.AmmoAmount))
		}
	})
}

func (g *Grid) sealBorder() {
	g.ForEachCell(func(row, col int, cell *Cell) {
		if g.IsOnPerimeter(row, col) {
			cell.SetWall()
		}
	})
}
