package entities

import (
	"context"
	"errors"
	"math/rand"

	"mazearena/pkg/game/action"
)

// ErrNoStrategy is returned when a player is asked to act without a strategy
var ErrNoStrategy = errors.New("player strategy is not set")

// Strategy picks a player's next action from a snapshot of its state.
// Implementations must not keep state between calls.
type Strategy interface {
	Decide(s PlayerState, rng *rand.Rand) action.Action
	Name() string
}

// Interactive is a Strategy backed by an outside source, such as a human at
// a console, that can block and fail.
type Interactive interface {
	Strategy
	DecideContext(ctx context.Context, s PlayerState, rng *rand.Rand) (action.Action, error)
}

// Player is a combatant in the arena. Its position is tracked by the player
// manager, not here.
type Player struct {
	ID           int
	Name         string
	Energy       int
	Alive        bool
	ShieldActive bool
	Weapons      []Weapon
	Strategy     Strategy
}

// NewPlayer creates a living player with the given starting energy
func NewPlayer(id int, name string, energy int, strategy Strategy) *Player {
	return &Player{
		ID:       id,
		Name:     name,
		Energy:   energy,
		Alive:    true,
		Strategy: strategy,
	}
}

func (p *Player) Kind() Kind { return KindPlayer }

// Contact is a no-op: players never share a cell
func (p *Player) Contact(other *Player) {}

func (p *Player) occupant() {}

// Damage applies a hit. An active shield absorbs the whole hit and is
// consumed. Returns absorbed=true if the shield took it, and died=true only
// on the hit that takes the player from alive to dead.
func (p *Player) Damage(amount int) (absorbed, died bool) {
	if p.ShieldActive {
		p.ShieldActive = false
		return true, false
	}
	if amount > 0 {
		p.Energy -= amount
	}
	return false, p.checkDeath()
}

// Exert charges an energy cost for an action. Shields do not help.
// Returns true only on the call that kills the player.
func (p *Player) Exert(cost int) bool {
	if cost <= 0 {
		return false
	}
	p.Energy -= cost
	return p.checkDeath()
}

func (p *Player) checkDeath() bool {
	if p.Alive && p.Energy <= 0 {
		p.Alive = false
		return true
	}
	return false
}

// Heal restores energy. There is no upper cap.
func (p *Player) Heal(amount int) {
	if amount > 0 {
		p.Energy += amount
	}
}

// ActivateShield raises the shield. Returns false if it was already up.
func (p *Player) ActivateShield() bool {
	if p.ShieldActive {
		return false
	}
	p.ShieldActive = true
	return true
}

// AddWeapons appends weapons to the player's inventory
func (p *Player) AddWeapons(weapons ...Weapon) {
	p.Weapons = append(p.Weapons, weapons...)
}

// AddAmmo resupplies every weapon the player carries
func (p *Player) AddAmmo(amount int) {
	for _, w := range p.Weapons {
		w.Stats().Resupply(amount)
	}
}

// Weapon returns the weapon at the zero-based index
func (p *Player) Weapon(index int) (Weapon, bool) {
	if index < 0 || index >= len(p.Weapons) {
		return nil, false
	}
	return p.Weapons[index], true
}

// StrategyName returns the name of the player's strategy, or "none"
func (p *Player) StrategyName() string {
	if p.Strategy == nil {
		return "none"
	}
	return p.Strategy.Name()
}

// Decide asks the player's strategy for its next action
func (p *Player) Decide(ctx context.Context, rng *rand.Rand) (action.Action, error) {
	switch s := p.Strategy.(type) {
	case nil:
		return action.Action{}, ErrNoStrategy
	case Interactive:
		return s.DecideContext(ctx, p.State(), rng)
	default:
		return s.Decide(p.State(), rng), nil
	}
}

// WeaponState is a read-only view of a carried weapon
type WeaponState struct {
	Index     int        `json:"index"`
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Kind      WeaponKind `json:"kind"`
	Damage    int        `json:"damage"`
	Range     int        `json:"range"`
	Munitions int        `json:"munitions"`
}

// PlayerState is an immutable snapshot of a player handed to strategies and observers
type PlayerState struct {
	ID       int           `json:"id"`
	Name     string        `json:"name"`
	Energy   int           `json:"energy"`
	Alive    bool          `json:"alive"`
	Shield   bool          `json:"shield"`
	Strategy string        `json:"strategy"`
	Weapons  []WeaponState `json:"weapons"`
}

// HasWeapons returns true if the snapshot lists at least one weapon
func (s PlayerState) HasWeapons() bool {
	return len(s.Weapons) > 0
}

// State captures a snapshot of the player
func (p *Player) State() PlayerState {
	weapons := make([]WeaponState, 0, len(p.Weapons))
	for i, w := range p.Weapons {
		stats := w.Stats()
		weapons = append(weapons, WeaponState{
			Index:     i,
			ID:        w.ID(),
			Name:      stats.Name,
			Kind:      KindOf(w),
			Damage:    stats.Damage,
			Range:     stats.Range,
			Munitions: stats.Munitions,
		})
	}
	return PlayerState{
		ID:       p.ID,
		Name:     p.Name,
		Energy:   p.Energy,
		Alive:    p.Alive,
		Shield:   p.ShieldActive,
		Strategy: p.StrategyName(),
		Weapons:  weapons,
	}
}

// IDs hands out increasing identifiers, one sequence per game
type IDs struct {
	last int
}

// Next returns a fresh identifier, starting at 1
func (s *IDs) Next() int {
	s.last++
	return s.last
}
