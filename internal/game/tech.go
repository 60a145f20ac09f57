package game

import (
	"fmt"
	"math/rand"
)

// playTrainer moves the card out of hand and runs its play logic. Tools
// enqueue a decision for where to attach them instead.
func playTrainer(rng *rand.Rand, s *State, player int, card *Card) {
	s.takeFromHand(player, card)
	if card.IsTool() {
		s.Enqueue(PendingDecision{Kind: DecisionAttachTool, Actor: player, Tool: card})
		return
	}

	logic, ok := Capabilities.Trainer(card.ID)
	if !ok {
		panic(fmt.Sprintf("trainer %s has no registered logic", card.Name))
	}
	if card.IsSupporter() {
		s.HasPlayedSupport = true
	}
	s.DiscardPiles[player] = append(s.DiscardPiles[player], card)
	if logic.Play != nil {
		logic.Play(rng, s, player)
	}
}

// --- Shared trainer effects ---

// drawCards draws up to n cards for player.
func drawCards(s *State, player, n int) {
	for i := 0; i < n; i++ {
		if s.drawCard(player) == nil {
			return
		}
	}
}

// searchDeck moves a random deck card matching pred into player's hand and
// shuffles the deck. Reports whether a card was found.
func searchDeck(rng *rand.Rand, s *State, player int, pred func(*Card) bool) bool {
	deck := &s.Decks[player]
	var matches []int
	for i, c := range deck.Cards {
		if pred(c) {
			matches = append(matches, i)
		}
	}
	found := len(matches) > 0
	if found {
		card := deck.Remove(matches[rng.Intn(len(matches))])
		s.Hands[player] = append(s.Hands[player], card)
	}
	deck.Shuffle(rng)
	return found
}

// shuffleHandIntoDeck returns player's whole hand to the deck and draws n.
func shuffleHandIntoDeck(rng *rand.Rand, s *State, player, n int) {
	s.Decks[player].Cards = append(s.Decks[player].Cards, s.Hands[player]...)
	s.Hands[player] = nil
	s.Decks[player].Shuffle(rng)
	drawCards(s, player, n)
}

// flipUntilTails counts heads before the first tails.
func flipUntilTails(rng *rand.Rand) int {
	heads := 0
	for flipHeads(rng) {
		heads++
	}
	return heads
}
