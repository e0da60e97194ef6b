package state

import (
	"mazearena/pkg/game/action"
	"mazearena/pkg/game/config"
	"mazearena/pkg/game/entities"
	"mazearena/pkg/game/world"
)

// CellView is a read-only rendering of one cell
type CellView struct {
	Wall    bool   `json:"wall,omitempty" msgpack:"w,omitempty"`
	Kind    string `json:"kind,omitempty" msgpack:"k,omitempty"`
	Player  string `json:"player,omitempty" msgpack:"p,omitempty"`
	Shield  bool   `json:"shield,omitempty" msgpack:"s,omitempty"`
	Timer   int    `json:"timer,omitempty" msgpack:"t,omitempty"`
	OwnerID int    `json:"owner,omitempty" msgpack:"o,omitempty"`
	Amount  int    `json:"amount,omitempty" msgpack:"a,omitempty"`
	Visited bool   `json:"visited,omitempty" msgpack:"v,omitempty"`
}

// Occupant kinds as reported in CellView.Kind
const (
	ViewPlayer = "player"
	ViewBomb   = "bomb"
	ViewMine   = "mine"
	ViewHealth = "health"
	ViewAmmo   = "ammo"
)

// Snapshot is a consistent read-only copy of the whole match
type Snapshot struct {
	Turn     int                    `json:"turn"`
	Status   string                 `json:"status"`
	Winner   string                 `json:"winner,omitempty"`
	Rows     int                    `json:"rows"`
	Cols     int                    `json:"cols"`
	Cells    [][]CellView           `json:"cells"`
	Players  []entities.PlayerState `json:"players"`
	Current  string                 `json:"current,omitempty"`
	Action   string                 `json:"action,omitempty"`
	Messages []string               `json:"messages"`
}

// viewCell renders c. Bombs for which show returns false are hidden.
func viewCell(c *world.Cell, show func(*entities.Bomb) bool) CellView {
	v := CellView{Wall: c.Wall, Visited: c.Visited}
	switch o := c.Occupant.(type) {
	case nil:
	case *entities.Player:
		v.Kind, v.Player, v.Shield = ViewPlayer, o.Name, o.ShieldActive
	case *entities.Bomb:
		if show != nil && !show(o) {
			return v
		}
		v.Kind, v.Timer, v.OwnerID = ViewBomb, o.Timer, o.OwnerID
		if o.Mine {
			v.Kind, v.Timer = ViewMine, 0
		}
	case *entities.HealthPickup:
		v.Kind, v.Amount = ViewHealth, o.Amount
	case *entities.AmmoPickup:
		v.Kind, v.Amount = ViewAmmo, o.Amount
	}
	return v
}

func (g *Game) cells(show func(*entities.Bomb) bool) [][]CellView {
	rows := make([][]CellView, g.grid.Rows())
	g.grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if rows[row] == nil {
			rows[row] = make([]CellView, g.grid.Cols())
		}
		rows[row][col] = viewCell(cell, show)
	})
	return rows
}

func (g *Game) snapshot(show func(*entities.Bomb) bool) Snapshot {
	s := Snapshot{
		Turn:     g.turn,
		Status:   g.status.String(),
		Rows:     g.grid.Rows(),
		Cols:     g.grid.Cols(),
		Cells:    g.cells(show),
		Players:  states(g.players.Players()),
		Messages: append([]string(nil), g.messages...),
	}
	if g.winner != nil {
		s.Winner = g.winner.Name
	}
	if g.current != nil {
		s.Current = g.current.Name
		s.Action = g.currentAction.String()
	}
	return s
}

// Snapshot copies the full, unredacted state of the match
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot(nil)
}

// VisibleGrid renders the grid as the given player sees it: bombs and
// mines placed by anyone else are hidden.
func (g *Game) VisibleGrid(viewerID int) [][]CellView {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cells(func(b *entities.Bomb) bool { return b.IsOwnedBy(viewerID) })
}

// Redact returns a copy of cells as viewerID sees them. It gives the same
// result as VisibleGrid for cells taken from a Snapshot.
func Redact(cells [][]CellView, viewerID int) [][]CellView {
	out := make([][]CellView, len(cells))
	for r, row := range cells {
		out[r] = append([]CellView(nil), row...)
		for c, v := range row {
			if (v.Kind == ViewBomb || v.Kind == ViewMine) && v.OwnerID != viewerID {
				out[r][c] = CellView{Wall: v.Wall, Visited: v.Visited}
			}
		}
	}
	return out
}

// FullGrid renders every cell with nothing hidden
func (g *Game) FullGrid() [][]CellView {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cells(nil)
}

// Grid returns the live arena. Callers must not use it while turns are
// being advanced on another goroutine.
func (g *Game) Grid() *world.Grid {
	return g.grid
}

// Config returns the settings the game was built with
func (g *Game) Config() config.Config {
	return g.cfg
}

// Players returns a snapshot of every roster member
func (g *Game) Players() []entities.PlayerState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return states(g.players.Players())
}

// CurrentPlayer returns the player who took the latest turn
func (g *Game) CurrentPlayer() (entities.PlayerState, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current == nil {
		return entities.PlayerState{}, false
	}
	return g.current.State(), true
}

// CurrentAction returns the action taken on the latest turn
func (g *Game) CurrentAction() action.Action {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentAction
}

// Messages returns the most recent HUD messages, oldest first
func (g *Game) Messages() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.messages...)
}

// Status reports whether the match is still running
func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// Finished returns true once at most one player is alive
func (g *Game) Finished() bool {
	return g.Status() == Finished
}

// Winner returns the last player standing, if the match ended with one
func (g *Game) Winner() (entities.PlayerState, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.winner == nil {
		return entities.PlayerState{}, false
	}
	return g.winner.State(), true
}

// Turn returns the number of turns played
func (g *Game) Turn() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.turn
}
