// Package entities defines everything that can stand on an arena cell or be
// carried by a player: players, weapons, bombs and pickups.
package entities

// Kind identifies an occupant variant
type Kind int

const (
	KindPlayer Kind = iota
	KindBomb
	KindHealth
	KindAmmo
)

// String returns the display name of the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBomb:
		return "bomb"
	case KindHealth:
		return "health"
	case KindAmmo:
		return "ammo"
	default:
		return "unknown"
	}
}

// Occupant is anything that can sit on an open cell. The set of
// implementations is closed: *Player, *Bomb, *HealthPickup and *AmmoPickup.
type Occupant interface {
	Kind() Kind

	// Contact applies the occupant's effect to a player entering its cell
	Contact(p *Player)

	occupant()
}

// HealthPickup restores energy to the player that walks over it
type HealthPickup struct {
	Amount int
}

// NewHealthPickup creates a health pickup worth amount energy
func NewHealthPickup(amount int) *HealthPickup {
	return &HealthPickup{Amount: amount}
}

func (h *HealthPickup) Kind() Kind { return KindHealth }

// Contact heals the player
func (h *HealthPickup) Contact(p *Player) {
	p.Heal(h.Amount)
}

func (h *HealthPickup) occupant() {}

// AmmoPickup adds munitions to every weapon of the player that walks over it
type AmmoPickup struct {
	Amount int
}

// NewAmmoPickup creates an ammo pickup worth amount munitions per weapon
func NewAmmoPickup(amount int) *AmmoPickup {
	return &AmmoPickup{Amount: amount}
}

func (a *AmmoPickup) Kind() Kind { return KindAmmo }

// Contact resupplies every weapon the player carries
func (a *AmmoPickup) Contact(p *Player) {
	p.AddAmmo(a.Amount)
}

func (a *AmmoPickup) occupant() {}

// IsConsumable returns true if the occupant disappears when a player enters its cell
func IsConsumable(o Occupant) bool {
	switch o.Kind() {
	case KindHealth, KindAmmo:
		return true
	case KindPlayer, KindBomb:
		return false
	default:
		return false
	}
}
