package game

import (
	"math/rand"
	"testing"

	"github.com/peterkuimelis/tcgsim/internal/log"
)

// ScriptedPlayer follows a predefined script of actions. Used in tests to
// deterministically drive the game.
type ScriptedPlayer struct {
	t       *testing.T
	deck    Deck
	actions []ScriptedAction
	pos     int
	calls   int
}

type ScriptedAction struct {
	// Match by ActionType: picks the first action of this type
	Type ActionType
	// Optional: match by card name as well
	CardName string
	// Optional: match by slot (-1 = any)
	Slot int
}

func NewScriptedPlayer(t *testing.T, deck Deck) *ScriptedPlayer {
	return &ScriptedPlayer{t: t, deck: deck}
}

func (sp *ScriptedPlayer) Add(actionType ActionType, cardName string) *ScriptedPlayer {
	sp.actions = append(sp.actions, ScriptedAction{Type: actionType, CardName: cardName, Slot: -1})
	return sp
}

func (sp *ScriptedPlayer) AddSlot(actionType ActionType, slot int) *ScriptedPlayer {
	sp.actions = append(sp.actions, ScriptedAction{Type: actionType, Slot: slot})
	return sp
}

func (sp *ScriptedPlayer) Deck() Deck {
	return sp.deck
}

func (sp *ScriptedPlayer) ChooseAction(_ *rand.Rand, _ *State, actions []Action) Action {
	sp.calls++
	if sp.pos < len(sp.actions) {
		scripted := sp.actions[sp.pos]
		for _, a := range actions {
			if a.Type != scripted.Type {
				continue
			}
			if scripted.CardName != "" && (a.Card == nil || a.Card.Name != scripted.CardName) {
				continue
			}
			if scripted.Slot >= 0 && a.Slot != scripted.Slot {
				continue
			}
			sp.pos++
			return a
		}
	}
	// Scripted action not available yet: default to ending the turn.
	for _, a := range actions {
		if a.Type == ActionEndTurn {
			return a
		}
	}
	return actions[0]
}

// firstChoicePlayer always takes the first offered action.
type firstChoicePlayer struct{ deck Deck }

func (p firstChoicePlayer) Deck() Deck { return p.deck }

func (p firstChoicePlayer) ChooseAction(_ *rand.Rand, _ *State, actions []Action) Action {
	return actions[0]
}

// randomTestPlayer picks uniformly with the game's rng.
type randomTestPlayer struct{ deck Deck }

func (p randomTestPlayer) Deck() Deck { return p.deck }

func (p randomTestPlayer) ChooseAction(rng *rand.Rand, _ *State, actions []Action) Action {
	return actions[rng.Intn(len(actions))]
}

// recordingObserver captures every notification.
type recordingObserver struct {
	actors  []int
	offered []int
	chosen  []Action
}

func (o *recordingObserver) OnAction(actor int, actions []Action, chosen Action) {
	o.actors = append(o.actors, actor)
	o.offered = append(o.offered, len(actions))
	o.chosen = append(o.chosen, chosen)
}

// makeDeck builds a deck by repeating ids until DeckSize cards.
func makeDeck(energy EnergyType, ids ...string) Deck {
	deck := Deck{EnergyTypes: []EnergyType{energy}}
	for i := 0; len(deck.Cards) < DeckSize; i++ {
		deck.Cards = append(deck.Cards, LookupCard(ids[i%len(ids)]))
	}
	return deck
}

func played(id string) *PlayedCard {
	return ToPlayedCard(LookupCard(id), false)
}

func playedWith(id string, hp int, energy ...EnergyType) *PlayedCard {
	card := LookupCard(id)
	return NewPlayedCard(card, hp, card.MustCreature().HP, energy, false, nil)
}

// midGameState returns a state on turn 3 (player 0 to act) with the given
// actives and no pending decisions.
func midGameState(active0, active1 *PlayedCard) *State {
	s := DefaultState()
	s.Decks[0] = makeDeck(EnergyGrass, "C1 001")
	s.Decks[1] = makeDeck(EnergyWater, "C1 020")
	s.InPlay[0][0] = active0
	s.InPlay[1][0] = active1
	s.TurnCount = 3
	s.SetupDone = [2]bool{true, true}
	return s
}

func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func actionsOfType(actions []Action, t ActionType) []Action {
	var out []Action
	for _, a := range actions {
		if a.Type == t {
			out = append(out, a)
		}
	}
	return out
}

// runGame plays a full game with a memory logger and returns it.
func runGame(t *testing.T, cfg GameConfig, p0, p1 Player) (*Game, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	cfg.Logger = logger
	g := NewGame(cfg, p0, p1)
	g.Play()
	if !g.IsGameOver() {
		t.Fatal("game did not finish")
	}
	return g, logger
}
