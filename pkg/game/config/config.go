// Package config holds the static settings of a simulation run.
package config

import (
	"errors"
	"flag"
	"fmt"

	"mazearena/pkg/game/world"
)

// Config is read once when a game is built and never changed by the engine
type Config struct {
	Seed    int64
	Players int

	Grid world.GridConfig

	InitialEnergy int
	MoveCost      int
	ShieldCost    int

	BombDamage int
	BombTimer  int
	MineDamage int

	// MaxActionRetries caps how often a player is asked again after a
	// rejected action, so a turn makes at most MaxActionRetries+1 attempts
	// before it is spent as a noop. 0 means no cap.
	MaxActionRetries int
}

// Default returns the stock arena settings
func Default() Config {
	return Config{
		Seed:    1,
		Players: 5,
		Grid: world.GridConfig{
			Rows:          20,
			Cols:          40,
			WallDensity:   0.05,
			HealthDensity: 0.02,
			AmmoDensity:   0.02,
			Rooms:         20,
			RoomSize:      5,
			HealthAmount:  20,
			AmmoAmount:    10,
		},
		InitialEnergy:    100,
		BombDamage:       15,
		BombTimer:        3,
		MineDamage:       15,
		MaxActionRetries: 100,
	}
}

// Validate reports every setting that cannot produce a game, joined into
// one error
func (c Config) Validate() error {
	var errs []error
	if err := c.Grid.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.Players < 1 {
		errs = append(errs, fmt.Errorf("need at least one player, got %d", c.Players))
	}
	if c.InitialEnergy < 1 {
		errs = append(errs, fmt.Errorf("initial energy must be positive, got %d", c.InitialEnergy))
	}
	if c.MoveCost < 0 || c.ShieldCost < 0 {
		errs = append(errs, errors.New("action costs cannot be negative"))
	}
	if c.BombTimer < 1 {
		errs = append(errs, fmt.Errorf("bomb timer must be at least 1, got %d", c.BombTimer))
	}
	if c.MaxActionRetries < 0 {
		errs = append(errs, fmt.Errorf("retry cap cannot be negative, got %d", c.MaxActionRetries))
	}
	return errors.Join(errs...)
}

// RegisterFlags binds every setting to a command line flag on fs, using the
// current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed for generation, placement and strategies")
	fs.IntVar(&c.Players, "players", c.Players, "number of players")

	fs.IntVar(&c.Grid.Rows, "rows", c.Grid.Rows, "grid rows")
	fs.IntVar(&c.Grid.Cols, "cols", c.Grid.Cols, "grid columns")
	fs.Float64Var(&c.Grid.WallDensity, "wall-density", c.Grid.WallDensity, "chance an open cell is walled after carving")
	fs.Float64Var(&c.Grid.HealthDensity, "health-density", c.Grid.HealthDensity, "chance an open cell holds a health pickup")
	fs.Float64Var(&c.Grid.AmmoDensity, "ammo-density", c.Grid.AmmoDensity, "chance an open cell holds an ammo pickup")
	fs.IntVar(&c.Grid.Rooms, "rooms", c.Grid.Rooms, "number of rooms carved over the maze")
	fs.IntVar(&c.Grid.RoomSize, "room-size", c.Grid.RoomSize, "side length of each room")
	fs.IntVar(&c.Grid.HealthAmount, "health-amount", c.Grid.HealthAmount, "energy restored by a health pickup")
	fs.IntVar(&c.Grid.AmmoAmount, "ammo-amount", c.Grid.AmmoAmount, "munitions added to each weapon by an ammo pickup")

	fs.IntVar(&c.InitialEnergy, "energy", c.InitialEnergy, "starting energy of every player")
	fs.IntVar(&c.MoveCost, "move-cost", c.MoveCost, "energy spent per move")
	fs.IntVar(&c.ShieldCost, "shield-cost", c.ShieldCost, "energy spent raising a shield")
	fs.IntVar(&c.BombDamage, "bomb-damage", c.BombDamage, "damage of a timed bomb")
	fs.IntVar(&c.BombTimer, "bomb-timer", c.BombTimer, "turns before a timed bomb explodes")
	fs.IntVar(&c.MineDamage, "mine-damage", c.MineDamage, "damage of a mine")
	fs.IntVar(&c.MaxActionRetries, "max-retries", c.MaxActionRetries, "times a player is asked again after a rejected action before the turn is skipped, 0 for no cap")
}
