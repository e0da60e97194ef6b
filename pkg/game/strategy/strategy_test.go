package strategy

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	"mazearena/pkg/engine/input"
	engineworld "mazearena/pkg/engine/world"
	"mazearena/pkg/game/action"
	"mazearena/pkg/game/entities"
)

func armed(energy int) entities.PlayerState {
	p := entities.NewPlayer(1, "S1", energy, nil)
	p.AddWeapons(entities.NewGun(1, "pistol", 10, 5, 5), entities.NewBomb(2, "Grenade", 15, 3, 1))
	return p.State()
}

func unarmed(energy int) entities.PlayerState {
	return entities.NewPlayer(1, "S1", energy, nil).State()
}

func TestAggressive_ShootsWhenArmed(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		a := Aggressive{}.Decide(armed(100), rng)
		if a.Kind != action.Shoot || !a.Complete() {
			t.Fatalf("Aggressive armed = %v, want a complete shoot", a)
		}
		if a.Weapon < 0 || a.Weapon > 1 {
			t.Fatalf("weapon index %d out of range", a.Weapon)
		}
	}
}

func TestAggressive_MovesWhenUnarmed(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if a := (Aggressive{}).Decide(unarmed(100), rng); a.Kind != action.Move {
		t.Errorf("Aggressive unarmed = %v, want move", a)
	}
}

func TestDefensive_ShieldsBelowThreshold(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if a := (Defensive{}).Decide(armed(49), rng); a.Kind != action.Shield {
		t.Errorf("Defensive at 49 = %v, want shield", a)
	}
	if a := (Defensive{}).Decide(armed(50), rng); a.Kind != action.Move {
		t.Errorf("Defensive at 50 = %v, want move", a)
	}
}

func TestOffensive_Mix(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	counts := map[action.Kind]int{}
	for i := 0; i < 400; i++ {
		counts[Offensive{}.Decide(armed(100), rng).Kind]++
	}
	if counts[action.Shoot] < 100 || counts[action.Move] < 100 {
		t.Errorf("Offensive counts = %v, want a rough even split", counts)
	}
	for i := 0; i < 50; i++ {
		if a := (Offensive{}).Decide(unarmed(100), rng); a.Kind != action.Move {
			t.Fatalf("Offensive unarmed = %v, want move", a)
		}
	}
}

func TestRandom_CoversEveryKind(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := map[action.Kind]bool{}
	for i := 0; i < 200; i++ {
		seen[Random{}.Decide(armed(100), rng).Kind] = true
	}
	for _, k := range []action.Kind{action.Noop, action.Shield, action.Shoot, action.Move} {
		if !seen[k] {
			t.Errorf("Random never chose %v", k)
		}
	}
}

func TestRandom_UnarmedShootIsIncomplete(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 100; i++ {
		if a := (Random{}).Decide(unarmed(100), rng); a.Kind == action.Shoot && a.Complete() {
			t.Fatalf("unarmed Random produced a complete shoot %v", a)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"random", "aggressive", "defensive", "offensive"} {
		s, ok := ByName(name)
		if !ok || s.Name() != name {
			t.Errorf("ByName(%q) = %v, %v", name, s, ok)
		}
	}
	if _, ok := ByName("cowardly"); ok {
		t.Error("ByName accepted an unknown policy")
	}
}

func console(script string) *Console {
	return NewConsole(input.NewPrompter(strings.NewReader(script), io.Discard, ""))
}

func TestConsole_FullToken(t *testing.T) {
	a, err := console("dance\nmove left\n").DecideContext(context.Background(), armed(100), nil)
	if err != nil {
		t.Fatalf("DecideContext error = %v", err)
	}
	if a.Kind != action.Move || a.Direction != engineworld.West {
		t.Errorf("action = %v, want move left", a)
	}
}

func TestConsole_PromptsForShootDetails(t *testing.T) {
	a, err := console("shoot\n5\n2\nsideways\ndown\n").DecideContext(context.Background(), armed(100), nil)
	if err != nil {
		t.Fatalf("DecideContext error = %v", err)
	}
	if a.Kind != action.Shoot || a.Weapon != 1 || a.Direction != engineworld.South {
		t.Errorf("action = %v, want shoot 2 down", a)
	}
}

func TestConsole_EOF(t *testing.T) {
	_, err := console("").DecideContext(context.Background(), armed(100), nil)
	if !errors.Is(err, io.EOF) {
		t.Errorf("DecideContext error = %v, want EOF", err)
	}
	if a := console("").Decide(armed(100), nil); a.Kind != action.Noop {
		t.Errorf("Decide on EOF = %v, want noop", a)
	}
}
