package game

import (
	"slices"
	"testing"
)

func TestImplementationStatus(t *testing.T) {
	tests := []struct {
		id   string
		want Status
	}{
		{"C1 001", StatusComplete},    // vanilla creature
		{"C1 070", StatusComplete},    // effect attack
		{"C1 004", StatusComplete},    // passive ability
		{"C1 201", StatusComplete},    // item
		{"C1 209", StatusComplete},    // supporter
		{"C1 251", StatusComplete},    // tool
		{"C1 090", StatusMissingAbility},
		{"C1 091", StatusMissingAttack},
		{"C1 290", StatusMissingTrainer},
		{"C1 291", StatusMissingTool},
		{"C9 999", StatusCardNotFound},
	}
	for _, tt := range tests {
		if got := ImplementationStatusByID(tt.id); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.id, got, tt.want)
		}
	}
}

func TestStatusDescriptions(t *testing.T) {
	for st := StatusComplete; st <= StatusMissingTool; st++ {
		if st.String() == "Unknown" || st.Description() == "Unknown status" {
			t.Errorf("status %d has no name or description", st)
		}
		if st.IsComplete() != (st == StatusComplete) {
			t.Errorf("%s: IsComplete = %v", st, st.IsComplete())
		}
	}
}

func TestSupportedCards(t *testing.T) {
	got := SupportedCards([]string{"C1 090", "C1 001", "C9 999", "C1 291", "C1 213"})
	want := []string{"C1 001", "C1 213"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEveryCatalogueCardClassifies(t *testing.T) {
	incomplete := 0
	for _, card := range AllCards() {
		if !ImplementationStatus(card).IsComplete() {
			incomplete++
		}
	}
	if incomplete != 4 {
		t.Errorf("expected exactly the 4 placeholder cards to be incomplete, got %d", incomplete)
	}
}

func TestUnimplementedAttackNeverOffered(t *testing.T) {
	s := midGameState(playedWith("C1 091", 70, EnergyFire, EnergyFire), played("C1 001"))
	_, actions := GenerateActions(s)
	if len(actionsOfType(actions, ActionAttack)) != 0 {
		t.Error("Needle Storm has no logic and must not be offered")
	}
}
