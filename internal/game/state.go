package game

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
)

const (
	SlotsPerPlayer  = 4 // slot 0 is the active spot, the rest are bench
	BenchSize       = SlotsPerPlayer - 1
	InitialHandSize = 5
	DeckSize        = 20
	MaxCopies       = 2
	PointsToWin     = 3
	PoisonDamage    = 10
	WeaknessBonus   = 20
)

// Deck is a player's draw pile plus the energy types its energy zone generates.
// The top of the deck is the last element (pop from end).
type Deck struct {
	Cards       []*Card
	EnergyTypes []EnergyType
}

func (d Deck) Clone() Deck {
	return Deck{
		Cards:       slices.Clone(d.Cards),
		EnergyTypes: slices.Clone(d.EnergyTypes),
	}
}

// Draw removes the top card. Returns nil if the deck is empty.
func (d *Deck) Draw() *Card {
	if len(d.Cards) == 0 {
		return nil
	}
	card := d.Cards[len(d.Cards)-1]
	d.Cards = d.Cards[:len(d.Cards)-1]
	return card
}

// Shuffle randomizes the deck order using rng.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
}

// Remove takes the card at index i out of the deck.
func (d *Deck) Remove(i int) *Card {
	card := d.Cards[i]
	d.Cards = slices.Delete(d.Cards, i, i+1)
	return card
}

// --- State ---

// State is the full game snapshot. It is owned by a single caller; use Clone
// to branch hypothetical futures.
type State struct {
	Hands           [2][]*Card
	Decks           [2]Deck
	DiscardPiles    [2][]*Card
	DiscardEnergies [2][]EnergyType
	InPlay          [2][SlotsPerPlayer]*PlayedCard
	Points          [2]int

	TurnCount      int // 0 = setup
	CurrentPlayer  int
	StartingPlayer int
	SetupDone      [2]bool

	// Per-turn tracking
	CurrentEnergy    EnergyType // energy zone energy still available this turn
	HasPlayedSupport bool
	HasRetreated     bool
	PlayerEffects    [2][]TimedEffect

	// Forced follow-up decisions, answered head first.
	Pending              []PendingDecision
	EndTurnAfterPending  bool // an attack ended the turn; run the checkup once the queue drains
	NextTurnAfterPending bool // the checkup ran; start the next turn once the queue drains

	Outcome Outcome
}

// DefaultState returns an empty state at the setup turn.
func DefaultState() *State {
	return &State{}
}

// NewState shuffles both decks, deals opening hands that contain at least
// one basic creature, and picks the starting player.
func NewState(deckA, deckB Deck, rng *rand.Rand) *State {
	s := DefaultState()
	s.Decks[0] = deckA.Clone()
	s.Decks[1] = deckB.Clone()
	for p := 0; p < 2; p++ {
		s.Hands[p] = dealOpeningHand(&s.Decks[p], rng)
	}
	s.StartingPlayer = rng.Intn(2)
	s.CurrentPlayer = s.StartingPlayer
	return s
}

// dealOpeningHand draws InitialHandSize cards, guaranteeing a basic creature
// when the deck has one.
func dealOpeningHand(deck *Deck, rng *rand.Rand) []*Card {
	deck.Shuffle(rng)
	var hand []*Card
	basics := make([]int, 0, len(deck.Cards))
	for i, c := range deck.Cards {
		if c.IsBasic() {
			basics = append(basics, i)
		}
	}
	if len(basics) > 0 {
		hand = append(hand, deck.Remove(basics[rng.Intn(len(basics))]))
		deck.Shuffle(rng)
	}
	for len(hand) < InitialHandSize {
		card := deck.Draw()
		if card == nil {
			break
		}
		hand = append(hand, card)
	}
	return hand
}

// Clone returns a deep copy that shares no mutable storage with s.
func (s *State) Clone() *State {
	cp := *s
	for p := 0; p < 2; p++ {
		cp.Hands[p] = slices.Clone(s.Hands[p])
		cp.Decks[p] = s.Decks[p].Clone()
		cp.DiscardPiles[p] = slices.Clone(s.DiscardPiles[p])
		cp.DiscardEnergies[p] = slices.Clone(s.DiscardEnergies[p])
		cp.PlayerEffects[p] = slices.Clone(s.PlayerEffects[p])
		for i := range s.InPlay[p] {
			cp.InPlay[p][i] = s.InPlay[p][i].Clone()
		}
	}
	cp.Pending = make([]PendingDecision, len(s.Pending))
	for i, d := range s.Pending {
		cp.Pending[i] = d.clone()
	}
	return &cp
}

// Opponent returns the index of the other player.
func Opponent(player int) int {
	return 1 - player
}

// IsGameOver reports whether an outcome has been decided.
func (s *State) IsGameOver() bool {
	return s.Outcome.Decided()
}

// IsUsersFirstTurn reports whether the current player has not yet completed a turn.
func (s *State) IsUsersFirstTurn() bool {
	return s.TurnCount <= 2
}

// Slot is an occupied in-play position.
type Slot struct {
	Index int
	Card  *PlayedCard
}

// EnumerateInPlay returns every occupied slot of player, active first.
func (s *State) EnumerateInPlay(player int) []Slot {
	var out []Slot
	for i, pc := range s.InPlay[player] {
		if pc != nil {
			out = append(out, Slot{Index: i, Card: pc})
		}
	}
	return out
}

// EnumerateBench returns every occupied bench slot of player.
func (s *State) EnumerateBench(player int) []Slot {
	var out []Slot
	for i := 1; i < SlotsPerPlayer; i++ {
		if pc := s.InPlay[player][i]; pc != nil {
			out = append(out, Slot{Index: i, Card: pc})
		}
	}
	return out
}

// MaybeActive returns the active creature, or nil during the promotion window.
func (s *State) MaybeActive(player int) *PlayedCard {
	return s.InPlay[player][0]
}

// Active returns the active creature. Panics if the active spot is empty.
func (s *State) Active(player int) *PlayedCard {
	pc := s.InPlay[player][0]
	if pc == nil {
		panic(fmt.Sprintf("player %d has no active creature", player))
	}
	return pc
}

// RemainingHP returns the HP of the creature in slot, or 0 if empty.
func (s *State) RemainingHP(player, slot int) int {
	if pc := s.InPlay[player][slot]; pc != nil {
		return pc.RemainingHP
	}
	return 0
}

// NumInPlayOfType counts player's creatures of the given element.
func (s *State) NumInPlayOfType(player int, element EnergyType) int {
	n := 0
	for _, sl := range s.EnumerateInPlay(player) {
		if sl.Card.Element() == element {
			n++
		}
	}
	return n
}

// FreeBenchSlot returns the first empty bench slot, or -1.
func (s *State) FreeBenchSlot(player int) int {
	for i := 1; i < SlotsPerPlayer; i++ {
		if s.InPlay[player][i] == nil {
			return i
		}
	}
	return -1
}

// HasPendingPromotion reports whether a promotion for player is queued.
func (s *State) HasPendingPromotion(player int) bool {
	for _, d := range s.Pending {
		if d.Kind == DecisionPromote && d.Actor == player {
			return true
		}
	}
	return false
}

// AddPlayerEffect adds a turn-scoped effect on the player rather than a creature.
func (s *State) AddPlayerEffect(player int, effect TimedEffect, duration int) {
	effect.Remaining = duration
	s.PlayerEffects[player] = append(s.PlayerEffects[player], effect)
}

// removeFromHand removes the first card in player's hand with the same ID.
func (s *State) removeFromHand(player int, card *Card) bool {
	for i, c := range s.Hands[player] {
		if c.ID == card.ID {
			s.Hands[player] = slices.Delete(s.Hands[player], i, i+1)
			return true
		}
	}
	return false
}

// drawCard moves the top card of player's deck into their hand.
func (s *State) drawCard(player int) *Card {
	card := s.Decks[player].Draw()
	if card != nil {
		s.Hands[player] = append(s.Hands[player], card)
	}
	return card
}

// DebugString renders a compact one-line-per-player view of the board.
func (s *State) DebugString() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "turn=%d current=P%d points=%v pending=%d\n", s.TurnCount, s.CurrentPlayer+1, s.Points, len(s.Pending))
	for p := 0; p < 2; p++ {
		fmt.Fprintf(&sb, "P%d hand=%d deck=%d", p+1, len(s.Hands[p]), len(s.Decks[p].Cards))
		for i, pc := range s.InPlay[p] {
			fmt.Fprintf(&sb, " [%d]%s", i, pc)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
