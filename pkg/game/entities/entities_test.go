package entities

import (
	"context"
	"testing"
)

func TestDamage_ShieldAbsorbsOnce(t *testing.T) {
	p := NewPlayer(1, "A", 100, nil)
	p.ActivateShield()

	absorbed, died := p.Damage(30)
	if !absorbed || died {
		t.Fatalf("Damage with shield = (%v,%v), want (true,false)", absorbed, died)
	}
	if p.Energy != 100 {
		t.Errorf("energy after shielded hit = %d, want 100", p.Energy)
	}
	if p.ShieldActive {
		t.Error("shield still active after absorbing a hit")
	}

	absorbed, _ = p.Damage(30)
	if absorbed {
		t.Error("second hit absorbed without a shield")
	}
	if p.Energy != 70 {
		t.Errorf("energy after unshielded hit = %d, want 70", p.Energy)
	}
}

func TestDamage_DeathReportedExactlyOnce(t *testing.T) {
	p := NewPlayer(1, "A", 10, nil)

	if _, died := p.Damage(15); !died {
		t.Fatal("lethal hit did not report death")
	}
	if p.Alive {
		t.Error("player alive after energy dropped to -5")
	}
	if _, died := p.Damage(15); died {
		t.Error("second hit on a dead player reported death again")
	}
}

func TestDamage_ZeroEnergyIsDeath(t *testing.T) {
	p := NewPlayer(1, "A", 20, nil)
	p.Damage(20)
	if p.Alive || p.Energy != 0 {
		t.Errorf("energy=%d alive=%v, want 0 and dead", p.Energy, p.Alive)
	}
}

func TestHeal_NoCap(t *testing.T) {
	p := NewPlayer(1, "A", 100, nil)
	p.Heal(20)
	p.Heal(-5)
	if p.Energy != 120 {
		t.Errorf("energy = %d, want 120", p.Energy)
	}
}

func TestExert_KillsAtThreshold(t *testing.T) {
	p := NewPlayer(1, "A", 5, nil)
	p.ActivateShield()
	if !p.Exert(5) {
		t.Error("exerting the last energy did not kill the player")
	}
	if !p.ShieldActive {
		t.Error("exertion consumed the shield")
	}
}

func TestActivateShield_Idempotent(t *testing.T) {
	p := NewPlayer(1, "A", 100, nil)
	if !p.ActivateShield() {
		t.Error("first activation reported no change")
	}
	if p.ActivateShield() {
		t.Error("second activation reported a change")
	}
	if !p.ShieldActive {
		t.Error("shield not active")
	}
}

func TestAmmoPickup_ResuppliesEveryWeapon(t *testing.T) {
	p := NewPlayer(1, "A", 100, nil)
	gun := NewGun(1, "pistol", 10, 5, 0)
	mine := NewMine(2, "Mine", 15, p.ID)
	p.AddWeapons(gun, mine)

	NewAmmoPickup(10).Contact(p)

	if gun.Munitions != 10 || mine.Munitions != 11 {
		t.Errorf("munitions = %d/%d, want 10/11", gun.Munitions, mine.Munitions)
	}
}

func TestHealthPickup_Heals(t *testing.T) {
	p := NewPlayer(1, "A", 50, nil)
	NewHealthPickup(20).Contact(p)
	if p.Energy != 70 {
		t.Errorf("energy = %d, want 70", p.Energy)
	}
}

func TestArms_ConsumeRefusesAtZero(t *testing.T) {
	g := NewGun(1, "pistol", 10, 5, 1)
	if !g.Consume() {
		t.Fatal("first use refused")
	}
	if g.Consume() {
		t.Error("use allowed with zero munitions")
	}
	if g.Munitions != 0 {
		t.Errorf("munitions = %d, want 0", g.Munitions)
	}
}

func TestBomb_TickAndReset(t *testing.T) {
	b := NewBomb(1, "Grenade", 15, 3, 7)
	if b.Tick() || b.Tick() {
		t.Fatal("bomb expired early")
	}
	if !b.Tick() {
		t.Fatal("bomb did not expire on the third tick")
	}
	b.Reset()
	if b.Timer != BombResetTimer {
		t.Errorf("timer after reset = %d, want %d", b.Timer, BombResetTimer)
	}
}

func TestMine_NeverTicks(t *testing.T) {
	m := NewMine(1, "Mine", 15, 7)
	for i := 0; i < 10; i++ {
		if m.Tick() {
			t.Fatal("mine expired from ticking")
		}
	}
	m.Reset()
	if m.Timer != MineTimer {
		t.Errorf("mine timer changed to %d", m.Timer)
	}
}

func TestState_SnapshotIsDetached(t *testing.T) {
	p := NewPlayer(3, "S3", 100, nil)
	p.AddWeapons(NewGun(1, "AK-47", 15, 10, 60), NewBomb(2, "Grenade", 15, 3, 3))

	s := p.State()
	p.Weapons[0].Stats().Munitions = 0

	if s.Weapons[0].Munitions != 60 {
		t.Errorf("snapshot changed with the player: %d", s.Weapons[0].Munitions)
	}
	if s.Weapons[1].Kind != WeaponBomb || s.Weapons[0].Kind != WeaponGun {
		t.Errorf("weapon kinds = %v/%v", s.Weapons[0].Kind, s.Weapons[1].Kind)
	}
	if s.Strategy != "none" {
		t.Errorf("strategy name = %q, want none", s.Strategy)
	}
}

func TestDecide_WithoutStrategy(t *testing.T) {
	p := NewPlayer(1, "A", 100, nil)
	if _, err := p.Decide(context.Background(), nil); err != ErrNoStrategy {
		t.Errorf("Decide error = %v, want ErrNoStrategy", err)
	}
}

func TestIDs_Increase(t *testing.T) {
	var ids IDs
	if a, b := ids.Next(), ids.Next(); a != 1 || b != 2 {
		t.Errorf("ids = %d,%d, want 1,2", a, b)
	}
}
