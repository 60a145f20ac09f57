package game

import "slices"

// GenerateActions returns the acting player and their full legal-action set.
// A non-empty pending-decision queue restricts the result to answers for its head.
func GenerateActions(s *State) (int, []Action) {
	if s.IsGameOver() {
		return s.CurrentPlayer, nil
	}
	if len(s.Pending) > 0 {
		head := s.Pending[0]
		return head.Actor, decisionActions(s, head)
	}

	player := s.CurrentPlayer
	if s.TurnCount == 0 {
		return player, setupActions(s, player)
	}

	var actions []Action
	actions = append(actions, attackActions(s, player)...)
	actions = append(actions, placeActions(s, player)...)
	actions = append(actions, evolveActions(s, player)...)
	actions = append(actions, energyActions(s, player)...)
	actions = append(actions, trainerPlayActions(s, player)...)
	actions = append(actions, retreatActions(s, player)...)
	actions = append(actions, abilityActions(s, player)...)
	actions = append(actions, Action{Actor: player, Type: ActionEndTurn})
	return player, actions
}

// setupActions: an active must be placed before anything else; then basics may
// be benched until the player ends setup.
func setupActions(s *State, player int) []Action {
	if s.MaybeActive(player) == nil {
		var actions []Action
		for _, card := range distinctCards(s.Hands[player]) {
			if card.IsBasic() {
				actions = append(actions, Action{Actor: player, Type: ActionPlace, Card: card, Slot: 0})
			}
		}
		return actions
	}
	actions := placeActions(s, player)
	return append(actions, Action{Actor: player, Type: ActionEndTurn})
}

func placeActions(s *State, player int) []Action {
	slot := s.FreeBenchSlot(player)
	if slot < 0 {
		return nil
	}
	var actions []Action
	for _, card := range distinctCards(s.Hands[player]) {
		if card.IsBasic() {
			actions = append(actions, Action{Actor: player, Type: ActionPlace, Card: card, Slot: slot})
		}
	}
	return actions
}

func attackActions(s *State, player int) []Action {
	active := s.MaybeActive(player)
	if active == nil || s.TurnCount == 1 {
		return nil
	}
	if active.Paralyzed || active.Asleep || active.HasEffect(EffectCannotAttack) {
		return nil
	}
	energy := EffectiveEnergy(s, player, active)
	var actions []Action
	for i, atk := range active.Attacks() {
		if !active.CanUseAttack(i) {
			continue
		}
		if atk.Effect != "" {
			if _, ok := Capabilities.Attack(active.ID(), i); !ok {
				continue
			}
		}
		if !CostSatisfied(atk.Cost, energy) {
			continue
		}
		actions = append(actions, Action{Actor: player, Type: ActionAttack, Attack: i})
	}
	return actions
}

func evolveActions(s *State, player int) []Action {
	if s.IsUsersFirstTurn() {
		return nil
	}
	var actions []Action
	for _, card := range distinctCards(s.Hands[player]) {
		if !card.IsCreature() || card.Creature.Stage == 0 {
			continue
		}
		for _, sl := range s.EnumerateInPlay(player) {
			if sl.Card.PlayedThisTurn || sl.Card.Name() != card.Creature.EvolvesFrom {
				continue
			}
			actions = append(actions, Action{Actor: player, Type: ActionEvolve, Card: card, Slot: sl.Index})
		}
	}
	return actions
}

func energyActions(s *State, player int) []Action {
	if s.CurrentEnergy == EnergyNone {
		return nil
	}
	var actions []Action
	for _, sl := range s.EnumerateInPlay(player) {
		actions = append(actions, Action{Actor: player, Type: ActionAttachEnergy, Slot: sl.Index, Energy: s.CurrentEnergy, Amount: 1})
	}
	return actions
}

func trainerPlayActions(s *State, player int) []Action {
	var actions []Action
	for _, card := range distinctCards(s.Hands[player]) {
		if !card.IsTrainer() {
			continue
		}
		played, _ := TrainerActions(s, card)
		actions = append(actions, played...)
	}
	return actions
}

func retreatActions(s *State, player int) []Action {
	active := s.MaybeActive(player)
	if active == nil || s.HasRetreated || active.Paralyzed || active.Asleep || active.HasEffect(EffectCannotRetreat) {
		return nil
	}
	if len(active.AttachedEnergy) < RetreatCost(s, player) {
		return nil
	}
	var actions []Action
	for _, sl := range s.EnumerateBench(player) {
		actions = append(actions, Action{Actor: player, Type: ActionRetreat, Slot: sl.Index})
	}
	return actions
}

func abilityActions(s *State, player int) []Action {
	var actions []Action
	for _, sl := range s.EnumerateInPlay(player) {
		if sl.Card.Card.Creature.Ability == nil || sl.Card.AbilityUsed {
			continue
		}
		logic, ok := Capabilities.Ability(sl.Card.ID())
		if !ok || logic.Passive || logic.Use == nil {
			continue
		}
		if logic.CanUse != nil && !logic.CanUse(s, player, sl.Index) {
			continue
		}
		actions = append(actions, Action{Actor: player, Type: ActionUseAbility, Slot: sl.Index})
	}
	return actions
}

// --- Costs ---

// RetreatCost is the energy the current active must discard to retreat,
// after tool and player-effect discounts.
func RetreatCost(s *State, player int) int {
	active := s.Active(player)
	cost := active.Card.MustCreature().RetreatCost
	if active.HasTool() {
		if tl, ok := Capabilities.Tool(active.AttachedTool.ID); ok {
			cost -= tl.RetreatDiscount
		}
	}
	cost -= sumEffect(s.PlayerEffects[player], EffectReduceRetreat)
	return max(cost, 0)
}

// EffectiveEnergy is the energy pc provides for attack costs once the
// passive abilities on player's side have been applied.
func EffectiveEnergy(s *State, player int, pc *PlayedCard) []EnergyType {
	energy := slices.Clone(pc.AttachedEnergy)
	var applied []string
	for _, sl := range s.EnumerateInPlay(player) {
		if sl.Card.Card.Creature.Ability == nil || slices.Contains(applied, sl.Card.ID()) {
			continue
		}
		logic, ok := Capabilities.Ability(sl.Card.ID())
		if !ok || logic.EnergyModifier == nil {
			continue
		}
		applied = append(applied, sl.Card.ID())
		energy = logic.EnergyModifier(pc, energy)
	}
	return energy
}

// CostSatisfied reports whether energy pays cost. Typed costs are matched
// first; Colorless accepts anything left over.
func CostSatisfied(cost, energy []EnergyType) bool {
	counts := make(map[EnergyType]int, len(energy))
	for _, e := range energy {
		counts[e]++
	}
	left := len(energy)
	colorless := 0
	for _, c := range cost {
		if c == EnergyColorless {
			colorless++
			continue
		}
		if counts[c] == 0 {
			return false
		}
		counts[c]--
		left--
	}
	return colorless <= left
}

// distinctCards returns the cards in hand with duplicate identities removed.
func distinctCards(hand []*Card) []*Card {
	var out []*Card
	for _, c := range hand {
		if !slices.ContainsFunc(out, func(o *Card) bool { return o.ID == c.ID }) {
			out = append(out, c)
		}
	}
	return out
}
