// Package strategy holds the policies that drive computer players. Every
// policy is a pure function of the player snapshot and the random source.
package strategy

import (
	"math/rand"

	engineworld "mazearena/pkg/engine/world"
	"mazearena/pkg/game/action"
	"mazearena/pkg/game/entities"
)

// DefensiveThreshold is the energy below which Defensive raises its shield
const DefensiveThreshold = 50

// Random picks uniformly among noop, shield, shoot and move
type Random struct{}

func (Random) Name() string { return "random" }

// Decide implements entities.Strategy. A player without weapons still
// sometimes picks shoot; the engine rejects it and asks again.
func (Random) Decide(s entities.PlayerState, rng *rand.Rand) action.Action {
	switch rng.Intn(4) {
	case 0:
		return action.NoopAction()
	case 1:
		return action.ShieldAction()
	case 2:
		return shoot(s, rng)
	default:
		return move(rng)
	}
}

// Aggressive always shoots when it has a weapon, otherwise moves
type Aggressive struct{}

func (Aggressive) Name() string { return "aggressive" }

// Decide implements entities.Strategy
func (Aggressive) Decide(s entities.PlayerState, rng *rand.Rand) action.Action {
	if s.HasWeapons() {
		return shoot(s, rng)
	}
	return move(rng)
}

// Defensive shields when weak, otherwise moves
type Defensive struct{}

func (Defensive) Name() string { return "defensive" }

// Decide implements entities.Strategy
func (Defensive) Decide(s entities.PlayerState, rng *rand.Rand) action.Action {
	if s.Energy < DefensiveThreshold {
		return action.ShieldAction()
	}
	return move(rng)
}

// Offensive flips a coin between shooting and moving
type Offensive struct{}

func (Offensive) Name() string { return "offensive" }

// Decide implements entities.Strategy
func (Offensive) Decide(s entities.PlayerState, rng *rand.Rand) action.Action {
	if rng.Intn(2) == 0 && s.HasWeapons() {
		return shoot(s, rng)
	}
	return move(rng)
}

func move(rng *rand.Rand) action.Action {
	return action.MoveAction(engineworld.RandomDirection(rng))
}

func shoot(s entities.PlayerState, rng *rand.Rand) action.Action {
	weapon := action.NoWeapon
	if s.HasWeapons() {
		weapon = rng.Intn(len(s.Weapons))
	}
	return action.ShootAction(weapon, engineworld.RandomDirection(rng))
}

// ByName returns the computer policy with the given name
func ByName(name string) (entities.Strategy, bool) {
	switch name {
	case "random":
		return Random{}, true
	case "aggressive":
		return Aggressive{}, true
	case "defensive":
		return Defensive{}, true
	case "offensive":
		return Offensive{}, true
	default:
		return nil, false
	}
}
