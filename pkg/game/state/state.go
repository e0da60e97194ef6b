// Package state runs a match: it builds the arena and roster, then advances
// one player's turn at a time until at most one player is left standing.
package state

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"

	log "github.com/sirupsen/logrus"

	"mazearena/pkg/engine/logging"
	"mazearena/pkg/game/action"
	"mazearena/pkg/game/config"
	"mazearena/pkg/game/entities"
	"mazearena/pkg/game/gameplay"
	"mazearena/pkg/game/messages"
	"mazearena/pkg/game/setup"
	"mazearena/pkg/game/world"
)

// maxMessages is how many HUD messages are kept
const maxMessages = 5

var (
	// ErrGameOver is returned by AdvanceTurn once the match is finished
	ErrGameOver = errors.New("game is over")

	// ErrNoStrategy is returned when the acting player has no strategy
	ErrNoStrategy = entities.ErrNoStrategy

	// ErrUnknownAction rejects an action kind the engine cannot dispatch
	ErrUnknownAction = fmt.Errorf("%w: unknown action", gameplay.ErrRejected)
)

// Status is the state of the match
type Status int

const (
	Running Status = iota
	Finished
)

func (s Status) String() string {
	if s == Finished {
		return "finished"
	}
	return "running"
}

// Game is one independent match. All methods are safe for concurrent use;
// turns are serialised behind a single mutex.
type Game struct {
	mu sync.Mutex

	cfg config.Config
	rng *rand.Rand
	log log.FieldLogger

	grid    *world.Grid
	players *gameplay.PlayerManager
	weapons *gameplay.WeaponManager

	weaponIDs entities.IDs
	playerIDs entities.IDs

	observers []Observer
	messages  []string

	status        Status
	winner        *entities.Player
	turn          int
	current       *entities.Player
	currentAction action.Action
}

// Option customises a game before it is populated
type Option func(*options)

type options struct {
	logger    log.FieldLogger
	grid      *world.Grid
	players   []*entities.Player
	humans    []human
	observers []Observer
}

type human struct {
	name     string
	strategy entities.Strategy
}

// WithLogger sends the game's logs to logger
func WithLogger(logger log.FieldLogger) Option {
	return func(o *options) { o.logger = logger }
}

// WithGrid uses a prepared grid instead of generating one
func WithGrid(g *world.Grid) Option {
	return func(o *options) { o.grid = g }
}

// WithPlayers enters prebuilt players. Preset recruits only fill the
// roster up to the configured player count.
func WithPlayers(ps ...*entities.Player) Option {
	return func(o *options) { o.players = append(o.players, ps...) }
}

// WithHuman enters a player armed like a soldier and driven by s
func WithHuman(name string, s entities.Strategy) Option {
	return func(o *options) { o.humans = append(o.humans, human{name: name, strategy: s}) }
}

// WithObserver registers an observer before the first turn
func WithObserver(obs Observer) Option {
	return func(o *options) { o.observers = append(o.observers, obs) }
}

// NewGame generates an arena from cfg, recruits and places the players, and
// queues them in roster order.
func NewGame(cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.Discard()
	}

	g := &Game{
		cfg:           cfg,
		rng:           rand.New(rand.NewSource(cfg.Seed)),
		log:           logging.ForRun(o.logger, cfg.Seed),
		observers:     o.observers,
		currentAction: action.NoopAction(),
	}

	g.grid = o.grid
	if g.grid == nil {
		grid, err := world.Generate(cfg.Grid, g.rng)
		if err != nil {
			return nil, err
		}
		g.grid = grid
	}

	g.players = gameplay.NewPlayerManager(g.grid, g.rng, g.log)
	g.weapons = gameplay.NewWeaponManager(g.grid, g.players, g.log)
	g.players.SetMineTrigger(g.weapons)
	g.players.SetCosts(cfg.MoveCost, cfg.ShieldCost)
	g.players.SetNotifier(g.addMessage)
	g.weapons.SetNotifier(g.addMessage)

	recruiter := setup.NewRecruiter(cfg, setup.NewArmory(cfg, &g.weaponIDs, g.rng), &g.playerIDs, g.rng)
	roster := make([]*entities.Player, 0, cfg.Players)
	for _, h := range o.humans {
		roster = append(roster, recruiter.Human(h.name, h.strategy))
	}
	roster = append(roster, o.players...)
	for len(roster) < cfg.Players {
		roster = append(roster, recruiter.Any())
	}

	for _, p := range roster {
		if err := g.players.Place(p); err != nil {
			return nil, fmt.Errorf("placing %s: %w", p.Name, err)
		}
	}

	g.log.WithFields(log.Fields{"rows": g.grid.Rows(), "cols": g.grid.Cols(), "players": len(roster)}).
		Info(messages.Get("GAME_START", g.grid.Rows(), g.grid.Cols(), len(roster)))
	g.checkFinished()
	return g, nil
}

// AdvanceTurn plays one turn: the next queued player acts until an action
// succeeds, survivors are requeued, the dead are purged, hazards tick and
// the end condition is checked. Observers are notified from inside the turn
// and must not call back into the game.
func (g *Game) AdvanceTurn(ctx context.Context) (TurnResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status == Finished {
		return TurnResult{}, ErrGameOver
	}

	p, ok := g.players.Acquire()
	if !ok {
		g.checkFinished()
		return TurnResult{}, ErrGameOver
	}
	g.turn++
	g.current = p
	fields := log.Fields{"turn": g.turn, "player": p.Name}

	a, skipped, err := g.act(ctx, p)
	if err != nil {
		g.players.Release(p)
		g.current = nil
		g.log.WithFields(fields).WithError(err).Error("turn aborted")
		return TurnResult{}, err
	}

	ev := Event{Turn: g.turn, Player: p.State(), Action: a, Skipped: skipped}
	ev.Snapshot = g.snapshot(nil)
	g.notify(ev)

	g.players.Release(p)

	result := TurnResult{Event: ev}
	result.Casualties = append(result.Casualties, states(g.players.RemoveDeadPlayers())...)
	result.Detonations = len(g.weapons.TickHazards())
	result.Casualties = append(result.Casualties, states(g.players.RemoveDeadPlayers())...)

	g.checkFinished()
	result.Status = g.status
	if g.winner != nil {
		w := g.winner.State()
		result.Winner = &w
	}
	return result, nil
}

// act asks p for actions until one is accepted. Rejections are retried up
// to the configured cap, after which the turn is spent as a noop.
func (g *Game) act(ctx context.Context, p *entities.Player) (action.Action, bool, error) {
	for retries := 0; ; retries++ {
		if err := ctx.Err(); err != nil {
			return action.Action{}, false, err
		}
		if limit := g.cfg.MaxActionRetries; limit > 0 && retries > limit {
			g.log.WithField("player", p.Name).Warn(messages.Get("RETRIES_EXHAUSTED", p.Name, retries))
			g.addMessage(messages.Get("RETRIES_EXHAUSTED", p.Name, retries))
			g.currentAction = action.NoopAction()
			return g.currentAction, true, nil
		}

		a, err := p.Decide(ctx, g.rng)
		if err != nil {
			return action.Action{}, false, err
		}
		g.currentAction = a

		err = g.dispatch(p, a)
		switch {
		case err == nil:
			return a, false, nil
		case errors.Is(err, gameplay.ErrRejected):
			g.log.WithFields(log.Fields{"player": p.Name, "action": a.String()}).WithError(err).Debug("action rejected")
		default:
			return a, false, err
		}
	}
}

func (g *Game) dispatch(p *entities.Player, a action.Action) error {
	switch a.Kind {
	case action.Noop:
		g.addMessage(messages.Get("NOOP", p.Name))
		return nil
	case action.Move:
		return g.players.Move(p, a.Direction)
	case action.Shield:
		return g.players.ActivateShield(p)
	case action.Shoot:
		w, ok := p.Weapon(a.Weapon)
		if !ok {
			return gameplay.ErrNoSuchWeapon
		}
		_, err := g.weapons.Shoot(p, a.Direction, w)
		return err
	default:
		g.log.WithField("player", p.Name).Debug(messages.Get("UNKNOWN_ACTION", p.Name, a.Token))
		return ErrUnknownAction
	}
}

func (g *Game) checkFinished() {
	if g.status == Finished {
		return
	}
	living := g.players.Living()
	if len(living) > 1 {
		return
	}
	g.status = Finished
	if len(living) == 1 {
		g.winner = living[0]
		g.addMessage(messages.Get("WINNER", g.winner.Name))
		g.log.WithField("winner", g.winner.Name).Info(messages.Get("GAME_OVER"))
		return
	}
	g.addMessage(messages.Get("NO_WINNER"))
	g.log.Info(messages.Get("GAME_OVER"))
}

// Run advances turns until the match ends, ctx is cancelled or maxTurns
// turns have been played (0 for no limit).
func (g *Game) Run(ctx context.Context, maxTurns int) error {
	for n := 0; maxTurns == 0 || n < maxTurns; n++ {
		if _, err := g.AdvanceTurn(ctx); err != nil {
			if errors.Is(err, ErrGameOver) {
				return nil
			}
			return err
		}
	}
	return nil
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}

func states(ps []*entities.Player) []entities.PlayerState {
	out := make([]entities.PlayerState, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.State())
	}
	return out
}
