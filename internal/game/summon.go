package game

import (
	"fmt"
	"slices"
)

// place puts a basic creature from hand into an empty slot.
func (s *State) place(player int, card *Card, slot int) {
	if !card.IsBasic() {
		panic(fmt.Sprintf("cannot place non-basic card %s", card.Name))
	}
	if s.InPlay[player][slot] != nil {
		panic(fmt.Sprintf("slot %d of P%d is occupied", slot, player+1))
	}
	s.takeFromHand(player, card)
	s.InPlay[player][slot] = ToPlayedCard(card, true)
}

// evolve replaces the creature in slot with card. Damage, energy and tool
// carry over; status and timed effects do not.
func (s *State) evolve(player, slot int, card *Card) {
	old := s.InPlay[player][slot]
	if old == nil || old.Name() != card.MustCreature().EvolvesFrom {
		panic(fmt.Sprintf("%s cannot evolve into %s", old, card.Name))
	}
	s.takeFromHand(player, card)

	total := card.Creature.HP + toolHPBonus(old)
	damage := old.TotalHP - old.RemainingHP
	behind := append(slices.Clone(old.CardsBehind), old.Card)
	pc := NewPlayedCard(card, total-damage, total, old.AttachedEnergy, true, behind)
	pc.AttachedTool = old.AttachedTool
	s.InPlay[player][slot] = pc
}

// retreat pays the retreat cost and swaps the active with the bench creature in slot.
func (s *State) retreat(player, slot int) {
	active := s.Active(player)
	cost := RetreatCost(s, player)
	if cost > len(active.AttachedEnergy) {
		panic(fmt.Sprintf("%s cannot pay retreat cost %d", active, cost))
	}
	keep := len(active.AttachedEnergy) - cost
	s.DiscardEnergies[player] = append(s.DiscardEnergies[player], active.AttachedEnergy[keep:]...)
	active.AttachedEnergy = slices.Clip(active.AttachedEnergy[:keep])
	s.switchActive(player, slot)
	s.HasRetreated = true
}

// returnActiveToHand picks the active creature and its lineage back up.
// Energy is discarded; a tool goes to the discard pile.
func (s *State) returnActiveToHand(player int) {
	active := s.Active(player)
	s.InPlay[player][0] = nil
	s.Hands[player] = append(s.Hands[player], active.CardsBehind...)
	s.Hands[player] = append(s.Hands[player], active.Card)
	if active.HasTool() {
		s.DiscardPiles[player] = append(s.DiscardPiles[player], active.AttachedTool)
	}
	s.DiscardEnergies[player] = append(s.DiscardEnergies[player], active.AttachedEnergy...)
}

func (s *State) takeFromHand(player int, card *Card) {
	if !s.removeFromHand(player, card) {
		panic(fmt.Sprintf("%s is not in P%d's hand", card.Name, player+1))
	}
}
