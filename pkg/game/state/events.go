package state

import (
	"mazearena/pkg/game/action"
	"mazearena/pkg/game/entities"
)

// Event is sent to observers once per completed action
type Event struct {
	Turn     int
	Player   entities.PlayerState
	Action   action.Action
	Skipped  bool
	Snapshot Snapshot
}

// TurnResult is everything that happened during one AdvanceTurn
type TurnResult struct {
	Event
	Casualties  []entities.PlayerState
	Detonations int
	Status      Status
	Winner      *entities.PlayerState
}

// Observer is told when the game state changes
type Observer interface {
	StateChanged(ev Event)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(ev Event)

// StateChanged implements Observer
func (f ObserverFunc) StateChanged(ev Event) { f(ev) }

// AddObserver registers an observer for every following action
func (g *Game) AddObserver(o Observer) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.observers = append(g.observers, o)
}

func (g *Game) notify(ev Event) {
	for _, o := range g.observers {
		o.StateChanged(ev)
	}
}
