package game

import (
	"reflect"
	"strings"
	"testing"

	"github.com/peterkuimelis/tcgsim/internal/log"
)

func grassDeck() Deck {
	return makeDeck(EnergyGrass,
		"C1 001", "C1 002", "C1 003", "C1 004", "C1 005",
		"C1 006", "C1 201", "C1 202", "C1 213", "C1 214")
}

func stormDeck() Deck {
	d := makeDeck(EnergyWater,
		"C1 020", "C1 021", "C1 022", "C1 030", "C1 031",
		"C1 032", "C1 206", "C1 208", "C1 251", "C1 210")
	d.EnergyTypes = []EnergyType{EnergyWater, EnergyLightning}
	return d
}

func TestGameIsDeterministic(t *testing.T) {
	cfg := GameConfig{Seed: 7}
	g1, l1 := runGame(t, cfg, randomTestPlayer{grassDeck()}, randomTestPlayer{stormDeck()})
	g2, l2 := runGame(t, cfg, randomTestPlayer{grassDeck()}, randomTestPlayer{stormDeck()})

	if log.FormatAll(l1.Events()) != log.FormatAll(l2.Events()) {
		t.Fatal("same seed produced different event streams")
	}
	s1, s2 := g1.State(), g2.State()
	if g1.Outcome() != g2.Outcome() || s1.Points != s2.Points || s1.TurnCount != s2.TurnCount || g1.Ticks() != g2.Ticks() {
		t.Errorf("same seed produced different results: %s/%s", g1.Outcome(), g2.Outcome())
	}
	if !reflect.DeepEqual(s1, s2) {
		t.Error("same seed produced different final states")
	}
}

func TestRandomGamesFinish(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		g, logger := runGame(t, GameConfig{Seed: seed}, randomTestPlayer{grassDeck()}, randomTestPlayer{stormDeck()})
		s := g.State()
		last := logger.LastEvent().Type
		switch g.Outcome().Kind {
		case OutcomeWin:
			if last != log.EventWin {
				t.Errorf("seed %d: win without a Win event (last %s)", seed, last)
			}
		case OutcomeTie:
			if last != log.EventTie {
				t.Errorf("seed %d: tie without a Tie event (last %s)", seed, last)
			}
		case OutcomeTimeout:
			if last != log.EventTimeout {
				t.Errorf("seed %d: timeout without a Timeout event (last %s)", seed, last)
			}
		}
		for p := 0; p < 2; p++ {
			for _, sl := range s.EnumerateInPlay(p) {
				if sl.Card.RemainingHP <= 0 || sl.Card.RemainingHP > sl.Card.TotalHP {
					t.Errorf("seed %d: %s has %d/%d HP", seed, sl.Card, sl.Card.RemainingHP, sl.Card.TotalHP)
				}
			}
		}
	}
}

func TestTurnCapTimesOut(t *testing.T) {
	deck := makeDeck(EnergyGrass, "C1 001")
	g, logger := runGame(t, GameConfig{Seed: 1, MaxTurns: 3},
		NewScriptedPlayer(t, deck), NewScriptedPlayer(t, deck))

	if g.Outcome().Kind != OutcomeTimeout {
		t.Fatalf("expected a timeout, got %s", g.Outcome())
	}
	if logger.LastEvent().Type != log.EventTimeout {
		t.Error("timeout should be the last event")
	}
	if got := len(logger.EventsOfType(log.EventNewTurn)); got != 4 {
		t.Errorf("expected turns 1-4 to start, got %d", got)
	}
}

func TestTickCapTimesOut(t *testing.T) {
	deck := makeDeck(EnergyGrass, "C1 001")
	g, _ := runGame(t, GameConfig{Seed: 1, MaxTicks: 5},
		NewScriptedPlayer(t, deck), NewScriptedPlayer(t, deck))
	if g.Outcome().Kind != OutcomeTimeout || g.Ticks() != 5 {
		t.Errorf("expected a timeout after 5 ticks, got %s after %d", g.Outcome(), g.Ticks())
	}
}

func TestSingleActionSkipsPlayer(t *testing.T) {
	deck := makeDeck(EnergyGrass, "C1 001")
	p0, p1 := NewScriptedPlayer(t, deck), NewScriptedPlayer(t, deck)
	obs := &recordingObserver{}
	g := NewGame(GameConfig{Seed: 3, MaxTurns: 6, Observers: []Observer{obs}}, p0, p1)
	g.Play()

	if len(obs.actors) != g.Ticks() {
		t.Fatalf("observer saw %d of %d ticks", len(obs.actors), g.Ticks())
	}
	consulted := 0
	for _, n := range obs.offered {
		if n > 1 {
			consulted++
		}
	}
	if p0.calls+p1.calls != consulted {
		t.Errorf("players consulted %d times, want %d (only when there is a real choice)", p0.calls+p1.calls, consulted)
	}
	if obs.offered[0] != 1 || obs.chosen[0].Type != ActionPlace {
		t.Error("the first setup placement with a single basic is forced")
	}
}

func TestScriptedKnockoutWins(t *testing.T) {
	s := midGameState(playedWith("C1 020", 60, EnergyWater), playedWith("C1 001", 10))
	logger := log.NewMemoryLogger()
	p0 := NewScriptedPlayer(t, Deck{}).Add(ActionAttack, "")
	g := FromState(GameConfig{Seed: 1, Logger: logger}, s, p0, firstChoicePlayer{})

	if outcome := g.Play(); outcome != (Outcome{Kind: OutcomeWin, Winner: 0}) {
		t.Fatalf("expected P1 to win, got %s", outcome)
	}
	var types []log.EventType
	for _, e := range logger.Events() {
		types = append(types, e.Type)
	}
	want := []log.EventType{log.EventAttack, log.EventKnockout, log.EventWin}
	if len(types) != len(want) {
		t.Fatalf("expected %v, got %v", want, types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, types)
		}
	}
	if !strings.Contains(logger.LastEvent().Details, "no creature to promote") {
		t.Errorf("unexpected win reason %q", logger.LastEvent().Details)
	}
}

func TestKnockoutLoggedOnAttackTurn(t *testing.T) {
	newState := func() *State {
		s := midGameState(playedWith("C1 031", 90, EnergyLightning, EnergyLightning), played("C1 050"))
		s.InPlay[1][1] = playedWith("C1 020", 10)
		s.InPlay[1][2] = played("C1 021")
		return s
	}
	check := func(t *testing.T, logger *log.MemoryLogger) {
		t.Helper()
		attacks := logger.EventsOfType(log.EventAttack)
		knockouts := logger.EventsOfType(log.EventKnockout)
		turns := logger.EventsOfType(log.EventNewTurn)
		if len(attacks) != 1 || len(knockouts) != 1 || len(turns) != 1 {
			t.Fatalf("expected one attack, knockout and new turn, got:\n%s", log.FormatAll(logger.Events()))
		}
		if attacks[0].Turn != 3 || knockouts[0].Turn != 3 {
			t.Errorf("attack and knockout belong to turn 3, got %d and %d", attacks[0].Turn, knockouts[0].Turn)
		}
		if turns[0].Turn != 4 {
			t.Errorf("expected turn 4 to start, got %d", turns[0].Turn)
		}
	}

	t.Run("PlayTick", func(t *testing.T) {
		logger := log.NewMemoryLogger()
		p0 := NewScriptedPlayer(t, Deck{}).Add(ActionAttack, "")
		g := FromState(GameConfig{Seed: 1, Logger: logger}, newState(), p0, firstChoicePlayer{})
		if chosen, ok := g.PlayTick(); !ok || chosen.Type != ActionAttack {
			t.Fatalf("expected an attack, got %v", chosen)
		}
		check(t, logger)
	})
	t.Run("ApplyAction", func(t *testing.T) {
		logger := log.NewMemoryLogger()
		g := FromState(GameConfig{Seed: 1, Logger: logger}, newState(), firstChoicePlayer{}, firstChoicePlayer{})
		g.ApplyAction(Action{Actor: 0, Type: ActionAttack, Attack: 0})
		check(t, logger)
	})
}

func TestGameStateIsSnapshot(t *testing.T) {
	deck := makeDeck(EnergyGrass, "C1 001")
	g := NewGame(GameConfig{Seed: 1}, firstChoicePlayer{deck}, firstChoicePlayer{deck})
	snap := g.State()
	snap.Hands[0] = nil
	snap.Points[0] = 3
	if len(g.State().Hands[0]) != InitialHandSize || g.IsGameOver() {
		t.Error("mutating a snapshot must not affect the game")
	}
}

func TestForcedPassDropsStuckDecision(t *testing.T) {
	s := midGameState(played("C1 001"), played("C1 020"))
	s.Enqueue(PendingDecision{Kind: DecisionHeal, Actor: 0, Amount: 20})
	g := FromState(GameConfig{Seed: 1}, s, firstChoicePlayer{}, firstChoicePlayer{})

	chosen, ok := g.PlayTick()
	if !ok || chosen.Type != ActionEndTurn {
		t.Fatalf("expected a forced pass, got %v", chosen)
	}
	if len(g.State().Pending) != 0 || g.State().TurnCount != 3 {
		t.Error("the unanswerable decision is dropped without ending the turn")
	}
}
