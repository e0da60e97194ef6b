package strategy

import (
	"context"
	"math/rand"

	"mazearena/pkg/engine/input"
	engineworld "mazearena/pkg/engine/world"
	"mazearena/pkg/game/action"
	"mazearena/pkg/game/entities"
	"mazearena/pkg/game/messages"
)

// Console asks a human for each action through a prompter. Weapon and
// direction are prompted for separately when a shoot token leaves them out.
type Console struct {
	Prompter *input.Prompter
}

// NewConsole creates a console strategy reading from p
func NewConsole(p *input.Prompter) *Console {
	return &Console{Prompter: p}
}

func (c *Console) Name() string { return "console" }

// Decide implements entities.Strategy. Input failures give a noop.
func (c *Console) Decide(s entities.PlayerState, rng *rand.Rand) action.Action {
	a, err := c.DecideContext(context.Background(), s, rng)
	if err != nil {
		return action.NoopAction()
	}
	return a
}

// DecideContext implements entities.Interactive
func (c *Console) DecideContext(ctx context.Context, s entities.PlayerState, _ *rand.Rand) (action.Action, error) {
	token, err := c.Prompter.Token(ctx, messages.Get("PROMPT_ACTION", s.Name), func(tok string) bool {
		return action.Parse(tok).Kind != action.Unknown
	})
	if err != nil {
		return action.Action{}, err
	}

	a := action.Parse(token)
	if a.Kind != action.Shoot || a.Complete() {
		return a, nil
	}

	if a.Weapon == action.NoWeapon && s.HasWeapons() {
		n, err := c.Prompter.Int(ctx, messages.Get("PROMPT_WEAPON", 1, len(s.Weapons)), 1, len(s.Weapons))
		if err != nil {
			return action.Action{}, err
		}
		a.Weapon = n - 1
	}
	if !a.Direction.IsValid() {
		dir, err := c.Prompter.Token(ctx, messages.Get("PROMPT_DIRECTION"), func(tok string) bool {
			return engineworld.ParseDirection(tok).IsValid()
		})
		if err != nil {
			return action.Action{}, err
		}
		a.Direction = engineworld.ParseDirection(dir)
	}
	return a, nil
}
