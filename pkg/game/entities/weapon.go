package entities

import (
	"fmt"
	"math"
)

// BombResetTimer is the timer a detonated timed bomb is reset to for reuse
const BombResetTimer = 4

// MineTimer is the effectively infinite timer carried by mines
const MineTimer = math.MaxInt

// Arms holds the statistics shared by every weapon
type Arms struct {
	id        int
	Name      string
	Damage    int
	Range     int
	Munitions int
}

// ID returns the weapon's unique identifier
func (a *Arms) ID() int {
	return a.id
}

// Stats returns the shared weapon statistics
func (a *Arms) Stats() *Arms {
	return a
}

// HasMunitions returns true if the weapon can be used at least once more
func (a *Arms) HasMunitions() bool {
	return a.Munitions > 0
}

// Consume spends one munition. Returns false if none were left.
func (a *Arms) Consume() bool {
	if a.Munitions <= 0 {
		return false
	}
	a.Munitions--
	return true
}

// Resupply adds munitions
func (a *Arms) Resupply(n int) {
	if n > 0 {
		a.Munitions += n
	}
}

// String formats the weapon for the HUD
func (a *Arms) String() string {
	return fmt.Sprintf("%s, damage=%d, range=%d, munitions=%d", a.Name, a.Damage, a.Range, a.Munitions)
}

// Weapon is carried by players. Implementations are *Gun and *Bomb.
type Weapon interface {
	ID() int
	Stats() *Arms
	weapon()
}

// Gun is a directional hitscan weapon
type Gun struct {
	Arms
}

// NewGun creates a gun
func NewGun(id int, name string, damage, reach, munitions int) *Gun {
	return &Gun{Arms: Arms{id: id, Name: name, Damage: damage, Range: reach, Munitions: munitions}}
}

func (g *Gun) weapon() {}

// Bomb is a placeable explosive. A timed bomb counts down once per hazard
// tick; a mine waits until a player steps on it.
type Bomb struct {
	Arms
	Timer   int
	Mine    bool
	OwnerID int
}

// NewBomb creates a timed bomb owned by the given player
func NewBomb(id int, name string, damage, timer, ownerID int) *Bomb {
	return &Bomb{
		Arms:    Arms{id: id, Name: name, Damage: damage, Range: 1, Munitions: 1},
		Timer:   timer,
		OwnerID: ownerID,
	}
}

// NewMine creates a contact mine owned by the given player
func NewMine(id int, name string, damage, ownerID int) *Bomb {
	return &Bomb{
		Arms:    Arms{id: id, Name: name, Damage: damage, Range: 1, Munitions: 1},
		Timer:   MineTimer,
		Mine:    true,
		OwnerID: ownerID,
	}
}

func (b *Bomb) weapon() {}

func (b *Bomb) Kind() Kind { return KindBomb }

// Contact is a no-op: mines are triggered by the weapon manager before the
// player enters the cell, and timed bombs block movement.
func (b *Bomb) Contact(p *Player) {}

func (b *Bomb) occupant() {}

// IsOwnedBy returns true if the bomb was placed by the given player
func (b *Bomb) IsOwnedBy(playerID int) bool {
	return b.OwnerID == playerID
}

// Tick counts a timed bomb down by one. Mines never count down.
// Returns true once the timer has run out.
func (b *Bomb) Tick() bool {
	if b.Mine {
		return false
	}
	b.Timer--
	return b.Timer <= 0
}

// Reset rearms a detonated timed bomb so it can be placed again
func (b *Bomb) Reset() {
	if !b.Mine {
		b.Timer = BombResetTimer
	}
}

// WeaponKind classifies a carried weapon for snapshots and strategies
type WeaponKind string

const (
	WeaponGun  WeaponKind = "gun"
	WeaponBomb WeaponKind = "bomb"
	WeaponMine WeaponKind = "mine"
)

// KindOf returns the classification of a weapon
func KindOf(w Weapon) WeaponKind {
	switch w := w.(type) {
	case *Gun:
		return WeaponGun
	case *Bomb:
		if w.Mine {
			return WeaponMine
		}
		return WeaponBomb
	default:
		panic(fmt.Sprintf("entities: unknown weapon type %T", w))
	}
}
