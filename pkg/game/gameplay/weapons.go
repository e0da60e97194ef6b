package gameplay

import (
	"sort"

	log "github.com/sirupsen/logrus"

	engineworld "mazearena/pkg/engine/world"
	"mazearena/pkg/game/combat"
	"mazearena/pkg/game/entities"
	"mazearena/pkg/game/world"
)

// Locator reports where a player stands
type Locator interface {
	Location(p *entities.Player) (*world.Cell, bool)
}

// Detonation records one bomb going off during a hazard tick
type Detonation struct {
	Bomb *entities.Bomb
	Cell *world.Cell
	Hits []combat.Hit
}

// WeaponManager resolves shots and tracks every armed bomb and mine
type WeaponManager struct {
	narrator

	grid    *world.Grid
	players Locator
	active  map[*entities.Bomb]*world.Cell
}

// NewWeaponManager creates a weapon manager with no armed ordnance
func NewWeaponManager(grid *world.Grid, players Locator, logger log.FieldLogger) *WeaponManager {
	return &WeaponManager{
		narrator: narrator{log: logger},
		grid:     grid,
		players:  players,
		active:   make(map[*entities.Bomb]*world.Cell),
	}
}

// SetNotifier sets the sink for player-facing messages
func (m *WeaponManager) SetNotifier(n Notifier) {
	m.notify = n
}

func (m *WeaponManager) locate(p *entities.Player) (*world.Cell, error) {
	if p == nil {
		return nil, precondition("nil player")
	}
	cell, ok := m.players.Location(p)
	if !ok {
		return nil, precondition("player %s is not on the grid", p.Name)
	}
	return cell, nil
}

// Shoot fires a gun along dir from the player's cell, or places a bomb on
// the adjacent cell in dir. Munitions are spent only when the weapon
// discharges. Returns the players hit.
func (m *WeaponManager) Shoot(p *entities.Player, dir engineworld.Direction, w entities.Weapon) ([]combat.Hit, error) {
	src, err := m.locate(p)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, precondition("nil weapon")
	}
	if !dir.IsValid() {
		return nil, ErrInvalidDirection
	}
	stats := w.Stats()
	fields := log.Fields{"player": p.Name, "weapon": stats.Name, "direction": dir.String()}
	if !stats.HasMunitions() {
		m.warn(fields, "NO_MUNITIONS", p.Name)
		return nil, ErrNoMunitions
	}

	switch w := w.(type) {
	case *entities.Bomb:
		return nil, m.PlaceBomb(p, w, dir)
	case *entities.Gun:
		hits := combat.BehaviorFor(w).Fire(m.grid, src.Row, src.Col, dir, stats)
		stats.Consume()
		m.say(fields, "SHOT_FIRED", p.Name, stats.Name, dir)
		if len(hits) == 0 {
			m.say(fields, "SHOT_MISSED")
		}
		m.reportHits(hits)
		return hits, nil
	default:
		return nil, precondition("unknown weapon type %T", w)
	}
}

// PlaceBomb arms a bomb or mine on the open empty cell next to the player
func (m *WeaponManager) PlaceBomb(p *entities.Player, b *entities.Bomb, dir engineworld.Direction) error {
	src, err := m.locate(p)
	if err != nil {
		return err
	}
	if b == nil {
		return precondition("nil bomb")
	}
	fields := log.Fields{"player": p.Name, "weapon": b.Name, "direction": dir.String()}

	if _, armed := m.active[b]; armed {
		m.warn(fields, "BOMB_ALREADY_PLACED", p.Name, b.Name)
		return ErrAlreadyPlaced
	}
	target := m.grid.GetCellRelative(src, dir)
	if !target.IsEmpty() {
		m.warn(fields, "BOMB_PLACE_FAILED", p.Name, b.Name, dir)
		return ErrBadPlacement
	}
	if !b.Consume() {
		m.warn(fields, "NO_MUNITIONS", p.Name)
		return ErrNoMunitions
	}

	target.Put(b)
	m.active[b] = target

	fields["row"], fields["col"] = target.Row, target.Col
	m.say(fields, "BOMB_PLACED", p.Name, b.Name, dir)
	return nil
}

// TickHazards counts every armed timed bomb down by one and detonates the
// ones that run out. Mines are left alone.
func (m *WeaponManager) TickHazards() []Detonation {
	var detonations []Detonation
	for _, b := range m.ActiveBombs() {
		if b.Mine || !b.Tick() {
			continue
		}
		cell := m.active[b]
		detonations = append(detonations, m.detonate(b, cell, "BOMB_EXPLODED", b.Name, cell))
	}
	return detonations
}

// CheckMineTrigger sets off a mine on target before p enters it. Returns
// the players hit, which includes p.
func (m *WeaponManager) CheckMineTrigger(p *entities.Player, target *world.Cell) []combat.Hit {
	b, ok := target.Bomb()
	if !ok || !b.Mine {
		return nil
	}
	return m.detonate(b, target, "MINE_TRIGGERED", p.Name, target).Hits
}

func (m *WeaponManager) detonate(b *entities.Bomb, cell *world.Cell, key string, args ...any) Detonation {
	m.say(log.Fields{"weapon": b.Name, "row": cell.Row, "col": cell.Col, "owner": b.OwnerID}, key, args...)

	hits := combat.Detonate(m.grid, b, cell)
	if cell.Occupant == entities.Occupant(b) {
		cell.Clear()
	}
	b.Reset()
	delete(m.active, b)

	m.reportHits(hits)
	return Detonation{Bomb: b, Cell: cell, Hits: hits}
}

// ActiveBombs returns every armed bomb and mine ordered by weapon id
func (m *WeaponManager) ActiveBombs() []*entities.Bomb {
	bombs := make([]*entities.Bomb, 0, len(m.active))
	for b := range m.active {
		bombs = append(bombs, b)
	}
	sort.Slice(bombs, func(i, j int) bool { return bombs[i].ID() < bombs[j].ID() })
	return bombs
}

// BombCell returns the cell an armed bomb sits on
func (m *WeaponManager) BombCell(b *entities.Bomb) (*world.Cell, bool) {
	cell, ok := m.active[b]
	return cell, ok
}
