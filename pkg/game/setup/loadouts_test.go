package setup

import (
	"math/rand"
	"testing"

	"mazearena/pkg/game/config"
	"mazearena/pkg/game/entities"
)

func newRecruiter(seed int64) *Recruiter {
	cfg := config.Default()
	rng := rand.New(rand.NewSource(seed))
	var weaponIDs, playerIDs entities.IDs
	return NewRecruiter(cfg, NewArmory(cfg, &weaponIDs, rng), &playerIDs, rng)
}

func TestSoldier_Loadout(t *testing.T) {
	p := newRecruiter(1).Soldier()
	if len(p.Weapons) != 3 {
		t.Fatalf("weapons = %d, want 3", len(p.Weapons))
	}
	grenade, ok := p.Weapons[2].(*entities.Bomb)
	if !ok || grenade.Mine || grenade.OwnerID != p.ID || grenade.Timer != 3 {
		t.Errorf("third weapon = %+v, want the soldier's grenade with timer 3", p.Weapons[2])
	}
	if p.StrategyName() != "aggressive" || p.Energy != 100 {
		t.Errorf("strategy=%s energy=%d", p.StrategyName(), p.Energy)
	}
}

func TestSniper_CarriesMine(t *testing.T) {
	p := newRecruiter(1).Sniper()
	if entities.KindOf(p.Weapons[2]) != entities.WeaponMine {
		t.Errorf("third weapon kind = %v, want mine", entities.KindOf(p.Weapons[2]))
	}
	if p.StrategyName() != "offensive" {
		t.Errorf("strategy = %s, want offensive", p.StrategyName())
	}
}

func TestRookie_ArsenalBound(t *testing.T) {
	r := newRecruiter(2)
	for i := 0; i < 50; i++ {
		p := r.Rookie()
		if len(p.Weapons) >= MaxRandomWeapons {
			t.Fatalf("rookie carries %d weapons", len(p.Weapons))
		}
		if p.StrategyName() != "random" {
			t.Fatalf("strategy = %s, want random", p.StrategyName())
		}
	}
}

func TestIDs_Unique(t *testing.T) {
	r := newRecruiter(3)
	players := map[int]bool{}
	weapons := map[int]bool{}
	for i := 0; i < 30; i++ {
		p := r.Any()
		if players[p.ID] {
			t.Fatalf("player id %d reused", p.ID)
		}
		players[p.ID] = true
		for _, w := range p.Weapons {
			if weapons[w.ID()] {
				t.Fatalf("weapon id %d reused", w.ID())
			}
			weapons[w.ID()] = true
		}
	}
}

func TestArmory_Presets(t *testing.T) {
	var ids entities.IDs
	a := NewArmory(config.Default(), &ids, rand.New(rand.NewSource(1)))
	pistol := a.Pistol()
	if pistol.Damage != 10 || pistol.Range != 5 || pistol.Munitions != 5 {
		t.Errorf("pistol = %v", pistol)
	}
	ak := a.Kalashnikov()
	if ak.Damage != 15 || ak.Range != 10 || ak.Munitions != 60 {
		t.Errorf("AK-47 = %v", ak)
	}
	mine := a.Mine(7)
	if !mine.Mine || mine.Damage != 15 || mine.Munitions != 1 {
		t.Errorf("mine = %+v", mine)
	}
}
