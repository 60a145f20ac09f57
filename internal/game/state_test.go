package game

import "testing"

func TestNewStateDealsBasic(t *testing.T) {
	// Only 2 basics among 20 cards; every opening hand must still have one.
	deck := makeDeck(EnergyGrass, "C1 002", "C1 002", "C1 003", "C1 003", "C1 201", "C1 213", "C1 214", "C1 215", "C1 216", "C1 001")
	for seed := int64(0); seed < 50; seed++ {
		g := NewGame(GameConfig{Seed: seed}, firstChoicePlayer{deck}, firstChoicePlayer{deck})
		s := g.State()
		for p := 0; p < 2; p++ {
			if len(s.Hands[p]) != InitialHandSize {
				t.Fatalf("seed %d: P%d hand size %d", seed, p+1, len(s.Hands[p]))
			}
			if len(s.Decks[p].Cards) != DeckSize-InitialHandSize {
				t.Fatalf("seed %d: P%d deck size %d", seed, p+1, len(s.Decks[p].Cards))
			}
			hasBasic := false
			for _, c := range s.Hands[p] {
				hasBasic = hasBasic || c.IsBasic()
			}
			if !hasBasic {
				t.Fatalf("seed %d: P%d opening hand has no basic", seed, p+1)
			}
		}
	}
}

func TestStateCloneIsIndependent(t *testing.T) {
	s := midGameState(playedWith("C1 001", 40, EnergyGrass), played("C1 020"))
	s.InPlay[0][1] = played("C1 005")
	s.Hands[0] = []*Card{LookupCard("C1 201")}
	s.PlayerEffects[0] = []TimedEffect{{Kind: EffectIncreaseDamage, Amount: 10}}
	s.Enqueue(PendingDecision{Kind: DecisionAttachEnergy, Actor: 0, Energy: EnergyMetal, Amount: 1, Remaining: 2, Exclude: []int{1}})

	cp := s.Clone()
	cp.InPlay[0][0].ApplyDamage(10)
	cp.InPlay[0][0].AttachEnergy(EnergyGrass, 1)
	cp.InPlay[0][1] = nil
	cp.Hands[0] = append(cp.Hands[0][:0], LookupCard("C1 213"))
	cp.Decks[0].Draw()
	cp.PlayerEffects[0][0].Amount = 99
	cp.Pending[0].Exclude[0] = 3
	cp.Points[1] = 2

	if s.InPlay[0][0].RemainingHP != 40 || len(s.InPlay[0][0].AttachedEnergy) != 1 {
		t.Error("active mutated through clone")
	}
	if s.InPlay[0][1] == nil {
		t.Error("bench mutated through clone")
	}
	if s.Hands[0][0].ID != "C1 201" {
		t.Error("hand shares storage with clone")
	}
	if len(s.Decks[0].Cards) != DeckSize {
		t.Error("deck shares storage with clone")
	}
	if s.PlayerEffects[0][0].Amount != 10 {
		t.Error("player effects share storage with clone")
	}
	if s.Pending[0].Exclude[0] != 1 {
		t.Error("pending decisions share storage with clone")
	}
	if s.Points[1] != 0 {
		t.Error("points mutated through clone")
	}
}

func TestDeckDrawFromEnd(t *testing.T) {
	d := Deck{Cards: []*Card{LookupCard("C1 001"), LookupCard("C1 020")}}
	if c := d.Draw(); c.ID != "C1 020" {
		t.Errorf("expected top card C1 020, got %s", c.ID)
	}
	d.Draw()
	if c := d.Draw(); c != nil {
		t.Error("drawing from an empty deck should return nil")
	}
}

func TestEnumerateAndHelpers(t *testing.T) {
	s := midGameState(played("C1 001"), played("C1 020"))
	s.InPlay[0][2] = played("C1 004")
	if n := len(s.EnumerateInPlay(0)); n != 2 {
		t.Errorf("expected 2 in play, got %d", n)
	}
	bench := s.EnumerateBench(0)
	if len(bench) != 1 || bench[0].Index != 2 {
		t.Errorf("unexpected bench %v", bench)
	}
	if s.FreeBenchSlot(0) != 1 {
		t.Errorf("expected free slot 1, got %d", s.FreeBenchSlot(0))
	}
	if s.NumInPlayOfType(0, EnergyGrass) != 2 {
		t.Error("expected 2 Grass creatures")
	}
	if s.RemainingHP(1, 3) != 0 {
		t.Error("empty slot should report 0 HP")
	}
}

func TestActivePanicsWhenEmpty(t *testing.T) {
	s := DefaultState()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	s.Active(0)
}
