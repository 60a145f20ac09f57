package game

import (
	"math/rand"
	"testing"
)

func TestHealthStaysClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pc := played("C1 010") // 60 HP
	for i := 0; i < 1000; i++ {
		amount := rng.Intn(100) - 10
		if rng.Intn(2) == 0 {
			pc.Heal(amount)
		} else {
			pc.ApplyDamage(amount)
		}
		if pc.RemainingHP < 0 || pc.RemainingHP > pc.TotalHP {
			t.Fatalf("step %d: HP %d outside [0, %d]", i, pc.RemainingHP, pc.TotalHP)
		}
	}
}

func TestNewPlayedCardClamps(t *testing.T) {
	card := LookupCard("C1 010")
	if pc := NewPlayedCard(card, 500, 60, nil, false, nil); pc.RemainingHP != 60 {
		t.Errorf("expected 60, got %d", pc.RemainingHP)
	}
	if pc := NewPlayedCard(card, -5, 60, nil, false, nil); pc.RemainingHP != 0 {
		t.Errorf("expected 0, got %d", pc.RemainingHP)
	}
}

func TestHealAndDamageSaturate(t *testing.T) {
	pc := played("C1 010")
	pc.ApplyDamage(500)
	if pc.RemainingHP != 0 {
		t.Errorf("expected 0 HP, got %d", pc.RemainingHP)
	}
	pc.Heal(500)
	if pc.RemainingHP != pc.TotalHP {
		t.Errorf("expected full HP %d, got %d", pc.TotalHP, pc.RemainingHP)
	}
}

func TestEnergyAttachAndDiscard(t *testing.T) {
	pc := played("C1 010")
	pc.AttachEnergy(EnergyFire, 2)
	pc.AttachEnergy(EnergyWater, 1)
	if len(pc.AttachedEnergy) != 3 {
		t.Fatalf("expected 3 energy, got %v", pc.AttachedEnergy)
	}
	if !pc.DiscardEnergy(EnergyFire) {
		t.Fatal("expected a Fire energy to be discarded")
	}
	if pc.DiscardEnergy(EnergyGrass) {
		t.Error("no Grass energy was attached")
	}
	want := []EnergyType{EnergyFire, EnergyWater}
	for i, e := range want {
		if pc.AttachedEnergy[i] != e {
			t.Errorf("energy[%d] = %s, want %s", i, pc.AttachedEnergy[i], e)
		}
	}
}

func TestTimedEffectDurations(t *testing.T) {
	pc := played("C1 010")
	pc.AddEffect(TimedEffect{Kind: EffectCannotAttack}, 0)
	pc.AddEffect(TimedEffect{Kind: EffectReduceDamage, Amount: 20}, 1)
	pc.AddEffect(TimedEffect{Kind: EffectCannotUseAttack, Attack: 0}, 2)

	// Expected effect counts after each end of turn.
	want := []int{2, 1, 0, 0}
	for i, n := range want {
		pc.EndTurnMaintenance()
		if got := len(pc.ActiveEffects()); got != n {
			t.Fatalf("after %d maintenance passes: %d effects, want %d", i+1, got, n)
		}
	}
}

func TestMaintenanceResetsFlagsButNotStatus(t *testing.T) {
	pc := played("C1 010")
	pc.PlayedThisTurn = true
	pc.AbilityUsed = true
	pc.SetStatus(StatusPoisoned, true)
	pc.SetStatus(StatusAsleep, true)

	pc.EndTurnMaintenance()

	if pc.PlayedThisTurn || pc.AbilityUsed {
		t.Error("per-turn flags should reset")
	}
	if !pc.Poisoned || !pc.Asleep {
		t.Error("status conditions must survive maintenance")
	}
}

func TestCanUseAttack(t *testing.T) {
	pc := played("C1 082")
	pc.AddEffect(TimedEffect{Kind: EffectCannotUseAttack, Attack: 1}, 1)
	if !pc.CanUseAttack(0) || pc.CanUseAttack(1) {
		t.Error("only attack 1 should be disabled")
	}
	pc.AddEffect(TimedEffect{Kind: EffectCannotAttack}, 1)
	if pc.CanUseAttack(0) {
		t.Error("CannotAttack disables every attack")
	}
}

func TestPlayedCardCloneIsIndependent(t *testing.T) {
	pc := playedWith("C1 011", 100, EnergyFire)
	pc.AddEffect(TimedEffect{Kind: EffectReduceDamage, Amount: 10}, 1)
	pc.CardsBehind = []*Card{LookupCard("C1 010")}

	cp := pc.Clone()
	cp.AttachEnergy(EnergyFire, 1)
	cp.ApplyDamage(30)
	cp.EndTurnMaintenance()
	cp.EndTurnMaintenance()
	cp.CardsBehind[0] = LookupCard("C1 012")

	if len(pc.AttachedEnergy) != 1 || pc.RemainingHP != 100 {
		t.Error("clone mutation leaked into original")
	}
	if len(pc.ActiveEffects()) != 1 {
		t.Error("clone maintenance leaked into original effects")
	}
	if pc.CardsBehind[0].ID != "C1 010" {
		t.Error("clone lineage shares storage with original")
	}
}

func TestMustCreaturePanicsOnTrainer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	LookupCard("C1 201").MustCreature()
}
