package gameplay

import (
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	engineworld "mazearena/pkg/engine/world"
	"mazearena/pkg/game/combat"
	"mazearena/pkg/game/entities"
	"mazearena/pkg/game/world"
)

// MineTrigger detonates a mine on a cell a player is about to enter
type MineTrigger interface {
	CheckMineTrigger(p *entities.Player, target *world.Cell) []combat.Hit
}

// PlayerManager owns the roster, where every player stands, and the turn queue
type PlayerManager struct {
	narrator

	grid      *world.Grid
	rng       *rand.Rand
	roster    []*entities.Player
	locations map[*entities.Player]*world.Cell
	queue     *queue.Queue[*entities.Player]
	queued    mapset.Set[*entities.Player]
	current   *entities.Player
	mines     MineTrigger

	moveCost   int
	shieldCost int
}

// NewPlayerManager creates an empty roster on the given grid
func NewPlayerManager(grid *world.Grid, rng *rand.Rand, logger log.FieldLogger) *PlayerManager {
	return &PlayerManager{
		narrator:  narrator{log: logger},
		grid:      grid,
		rng:       rng,
		locations: make(map[*entities.Player]*world.Cell),
		queue:     queue.New[*entities.Player](),
		queued:    mapset.New[*entities.Player](),
	}
}

// SetMineTrigger wires the weapon manager in so moves can set off mines
func (m *PlayerManager) SetMineTrigger(t MineTrigger) {
	m.mines = t
}

// SetNotifier sets the sink for player-facing messages
func (m *PlayerManager) SetNotifier(n Notifier) {
	m.notify = n
}

// SetCosts sets the energy charged for a move and for raising a shield
func (m *PlayerManager) SetCosts(move, shield int) {
	m.moveCost = move
	m.shieldCost = shield
}

// Place puts a new player on a uniformly random open empty cell, adds it to
// the roster and queues it.
func (m *PlayerManager) Place(p *entities.Player) error {
	cells := m.grid.OpenEmptyCells()
	if len(cells) == 0 {
		return ErrNoOpenCell
	}
	cell := cells[m.rng.Intn(len(cells))]
	return m.PlaceAt(p, cell.Row, cell.Col)
}

// PlaceAt puts a new player on a specific open empty cell, adds it to the
// roster and queues it.
func (m *PlayerManager) PlaceAt(p *entities.Player, row, col int) error {
	if p == nil {
		return precondition("placing a nil player")
	}
	if _, ok := m.locations[p]; ok {
		return precondition("player %s is already placed", p.Name)
	}
	cell := m.grid.GetCell(row, col)
	if !cell.IsEmpty() {
		return fmt.Errorf("%w: (%d,%d) is not an open empty cell", ErrNoOpenCell, row, col)
	}

	cell.Put(p)
	m.locations[p] = cell
	m.roster = append(m.roster, p)
	m.Release(p)

	m.say(log.Fields{"player": p.Name, "row": row, "col": col}, "PLAYER_PLACED", p.Name, cell)
	return nil
}

// Location returns the cell a player stands on
func (m *PlayerManager) Location(p *entities.Player) (*world.Cell, bool) {
	cell, ok := m.locations[p]
	return cell, ok
}

func (m *PlayerManager) locate(p *entities.Player) (*world.Cell, error) {
	if p == nil {
		return nil, precondition("nil player")
	}
	cell, ok := m.locations[p]
	if !ok {
		return nil, precondition("player %s is not on the grid", p.Name)
	}
	return cell, nil
}

// Move steps a player one cell. Walls and the grid edge give ErrInvalidMove;
// other players and armed timed bombs give ErrBlocked. A mine on the target
// goes off before the player arrives, and a pickup there is consumed.
func (m *PlayerManager) Move(p *entities.Player, dir engineworld.Direction) error {
	src, err := m.locate(p)
	if err != nil {
		return err
	}
	fields := log.Fields{"player": p.Name, "direction": dir.String()}
	if !dir.IsValid() {
		return ErrInvalidDirection
	}

	target := m.grid.GetCellRelative(src, dir)
	if !target.IsOpen() {
		m.warn(fields, "MOVE_INVALID", p.Name, dir)
		return ErrInvalidMove
	}
	switch o := target.Occupant.(type) {
	case *entities.Player:
		m.warn(fields, "MOVE_BLOCKED", p.Name, dir)
		return ErrBlocked
	case *entities.Bomb:
		if !o.Mine {
			m.warn(fields, "MOVE_BLOCKED", p.Name, dir)
			return ErrBlocked
		}
	}

	if m.mines != nil {
		m.mines.CheckMineTrigger(p, target)
	}

	src.Clear()
	if o := target.Occupant; o != nil && entities.IsConsumable(o) {
		m.pickup(p, o)
		o.Contact(p)
	}
	target.Put(p)
	m.locations[p] = target

	fields["row"], fields["col"] = target.Row, target.Col
	m.say(fields, "PLAYER_MOVED", p.Name, dir, target)

	if p.Exert(m.moveCost) {
		m.say(fields, "PLAYER_DIED", p.Name)
	}
	return nil
}

func (m *PlayerManager) pickup(p *entities.Player, o entities.Occupant) {
	fields := log.Fields{"player": p.Name}
	switch o := o.(type) {
	case *entities.HealthPickup:
		m.say(fields, "PICKUP_HEALTH", p.Name, o.Amount)
	case *entities.AmmoPickup:
		m.say(fields, "PICKUP_AMMO", p.Name, o.Amount)
	}
}

// ActivateShield raises the player's shield. Raising it again is a logged
// no-op, never an error.
func (m *PlayerManager) ActivateShield(p *entities.Player) error {
	if _, err := m.locate(p); err != nil {
		return err
	}
	fields := log.Fields{"player": p.Name}
	if !p.ActivateShield() {
		m.warn(fields, "SHIELD_ALREADY_UP", p.Name)
		return nil
	}
	m.say(fields, "SHIELD_UP", p.Name)
	if p.Exert(m.shieldCost) {
		m.say(fields, "PLAYER_DIED", p.Name)
	}
	return nil
}

// Acquire takes the next player off the turn queue. Players that died since
// they were queued are dropped. Returns false when nobody is waiting.
func (m *PlayerManager) Acquire() (*entities.Player, bool) {
	for !m.queue.Empty() {
		p := m.queue.Dequeue()
		m.queued.Remove(p)
		if !p.Alive {
			continue
		}
		m.current = p
		return p, true
	}
	m.current = nil
	return nil, false
}

// Release puts a living roster member back at the tail of the queue.
// A player is never queued twice.
func (m *PlayerManager) Release(p *entities.Player) bool {
	if m.current == p {
		m.current = nil
	}
	if p == nil || !p.Alive || m.queued.Has(p) {
		return false
	}
	if _, ok := m.locations[p]; !ok {
		return false
	}
	m.queue.Enqueue(p)
	m.queued.Put(p)
	return true
}

// Current returns the player whose turn is in progress, if any
func (m *PlayerManager) Current() *entities.Player {
	return m.current
}

// IsQueued returns true if the player is waiting for a turn
func (m *PlayerManager) IsQueued(p *entities.Player) bool {
	return m.queued.Has(p)
}

// QueueLen returns the number of players waiting for a turn
func (m *PlayerManager) QueueLen() int {
	return m.queued.Size()
}

// Players returns the roster in placement order
func (m *PlayerManager) Players() []*entities.Player {
	roster := make([]*entities.Player, len(m.roster))
	copy(roster, m.roster)
	return roster
}

// Living returns the roster members that are still alive
func (m *PlayerManager) Living() []*entities.Player {
	var living []*entities.Player
	for _, p := range m.roster {
		if p.Alive {
			living = append(living, p)
		}
	}
	return living
}

// RemoveDeadPlayers drops every dead player from the roster, the location
// index, the queue and the grid. Returns the players removed.
func (m *PlayerManager) RemoveDeadPlayers() []*entities.Player {
	var dead []*entities.Player
	roster := m.roster[:0]
	for _, p := range m.roster {
		if p.Alive {
			roster = append(roster, p)
			continue
		}
		dead = append(dead, p)
		if cell, ok := m.locations[p]; ok {
			if cell.Occupant == entities.Occupant(p) {
				cell.Clear()
			}
			delete(m.locations, p)
		}
		if m.current == p {
			m.current = nil
		}
	}
	m.roster = roster

	if len(dead) > 0 {
		m.rebuildQueue()
	}
	return dead
}

func (m *PlayerManager) rebuildQueue() {
	next := queue.New[*entities.Player]()
	m.queue.Each(func(p *entities.Player) {
		if p.Alive {
			next.Enqueue(p)
		} else {
			m.queued.Remove(p)
		}
	})
	m.queue = next
}
