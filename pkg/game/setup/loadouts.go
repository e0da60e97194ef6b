// Package setup builds preset weapons and players.
package setup

import (
	"fmt"
	"math/rand"

	"mazearena/pkg/game/config"
	"mazearena/pkg/game/entities"
	"mazearena/pkg/game/strategy"
)

// MaxRandomWeapons bounds the arsenal of a random player (exclusive)
const MaxRandomWeapons = 10

// Armory hands out preset weapons with ids from one sequence
type Armory struct {
	ids *entities.IDs
	rng *rand.Rand
	cfg config.Config
}

// NewArmory creates an armory drawing weapon ids from ids
func NewArmory(cfg config.Config, ids *entities.IDs, rng *rand.Rand) *Armory {
	return &Armory{ids: ids, rng: rng, cfg: cfg}
}

// Pistol is short ranged with a small magazine
func (a *Armory) Pistol() *entities.Gun {
	return entities.NewGun(a.ids.Next(), "pistol", 10, 5, 5)
}

// Kalashnikov is mid ranged with plenty of munitions
func (a *Armory) Kalashnikov() *entities.Gun {
	return entities.NewGun(a.ids.Next(), "AK-47", 15, 10, 60)
}

// Sniper reaches far and hits hard
func (a *Armory) Sniper() *entities.Gun {
	return entities.NewGun(a.ids.Next(), "sniper", 20, 20, 20)
}

// RandomGun has random damage and range
func (a *Armory) RandomGun() *entities.Gun {
	name := fmt.Sprintf("Weapon%d", a.rng.Intn(20))
	reach := a.rng.Intn(50)
	damage := a.rng.Intn(50)
	return entities.NewGun(a.ids.Next(), name, damage, reach, 60)
}

// Grenade is a timed bomb owned by ownerID
func (a *Armory) Grenade(ownerID int) *entities.Bomb {
	return entities.NewBomb(a.ids.Next(), "Grenade", a.cfg.BombDamage, a.cfg.BombTimer, ownerID)
}

// Mine is a contact mine owned by ownerID
func (a *Armory) Mine(ownerID int) *entities.Bomb {
	return entities.NewMine(a.ids.Next(), "Mine", a.cfg.MineDamage, ownerID)
}

// AnyWeapon picks one of the presets, or a random gun, uniformly
func (a *Armory) AnyWeapon(ownerID int) entities.Weapon {
	switch a.rng.Intn(6) {
	case 0:
		return a.Pistol()
	case 1:
		return a.Kalashnikov()
	case 2:
		return a.Sniper()
	case 3:
		return a.Grenade(ownerID)
	case 4:
		return a.Mine(ownerID)
	default:
		return a.RandomGun()
	}
}

// Recruiter builds preset players
type Recruiter struct {
	armory *Armory
	ids    *entities.IDs
	rng    *rand.Rand
	energy int
}

// NewRecruiter creates a recruiter; players draw ids from playerIDs
func NewRecruiter(cfg config.Config, armory *Armory, playerIDs *entities.IDs, rng *rand.Rand) *Recruiter {
	return &Recruiter{armory: armory, ids: playerIDs, rng: rng, energy: cfg.InitialEnergy}
}

func (r *Recruiter) newPlayer(prefix string, s entities.Strategy) *entities.Player {
	id := r.ids.Next()
	return entities.NewPlayer(id, fmt.Sprintf("%s%d", prefix, id), r.energy, s)
}

// Soldier carries a pistol, an AK-47 and a grenade and plays aggressively
func (r *Recruiter) Soldier() *entities.Player {
	p := r.newPlayer("S", strategy.Aggressive{})
	p.AddWeapons(r.armory.Pistol(), r.armory.Kalashnikov(), r.armory.Grenade(p.ID))
	return p
}

// Sniper carries a pistol, an AK-47 and a mine and plays offensively
func (r *Recruiter) Sniper() *entities.Player {
	p := r.newPlayer("N", strategy.Offensive{})
	p.AddWeapons(r.armory.Pistol(), r.armory.Kalashnikov(), r.armory.Mine(p.ID))
	return p
}

// Rookie carries up to nine random weapons and plays randomly
func (r *Recruiter) Rookie() *entities.Player {
	p := r.newPlayer("P", strategy.Random{})
	for n := r.rng.Intn(MaxRandomWeapons); n > 0; n-- {
		p.AddWeapons(r.armory.AnyWeapon(p.ID))
	}
	return p
}

// Human creates a named player driven by s and armed like a soldier
func (r *Recruiter) Human(name string, s entities.Strategy) *entities.Player {
	p := entities.NewPlayer(r.ids.Next(), name, r.energy, s)
	p.AddWeapons(r.armory.Pistol(), r.armory.Kalashnikov(), r.armory.Grenade(p.ID))
	return p
}

// Any builds a soldier, a sniper or a rookie with equal odds
func (r *Recruiter) Any() *entities.Player {
	switch r.rng.Intn(3) {
	case 0:
		return r.Soldier()
	case 1:
		return r.Sniper()
	default:
		return r.Rookie()
	}
}
