package game

import "slices"

// TrainerActions returns the play actions for a trainer card. supported is
// false when the card has no registered logic; the card must then never be
// offered. An empty result with supported=true means the card exists but
// cannot be played right now.
func TrainerActions(s *State, card *Card) (actions []Action, supported bool) {
	card.MustTrainer()
	var canPlay func(*State) bool
	if card.IsTool() {
		if _, ok := Capabilities.Tool(card.ID); !ok {
			return nil, false
		}
		canPlay = func(s *State) bool { return hasToolTarget(s, s.CurrentPlayer, card) }
	} else {
		logic, ok := Capabilities.Trainer(card.ID)
		if !ok {
			return nil, false
		}
		canPlay = logic.CanPlay
	}

	if s.TurnCount == 0 {
		return nil, true
	}
	if card.IsSupporter() && s.HasPlayedSupport {
		return nil, true
	}
	if canPlay != nil && !canPlay(s) {
		return nil, true
	}
	return []Action{{Actor: s.CurrentPlayer, Type: ActionPlayTrainer, Card: card}}, true
}

// canAttachTool reports whether tool may go on pc.
func canAttachTool(tool *Card, pc *PlayedCard) bool {
	if pc.HasTool() {
		return false
	}
	tl, ok := Capabilities.Tool(tool.ID)
	if !ok {
		return false
	}
	return tl.CanAttach == nil || tl.CanAttach(pc)
}

func hasToolTarget(s *State, player int, tool *Card) bool {
	for _, sl := range s.EnumerateInPlay(player) {
		if canAttachTool(tool, sl.Card) {
			return true
		}
	}
	return false
}

// --- Predicate building blocks ---

func alwaysPlayable(*State) bool { return true }

// anyInPlay reports whether some creature of the current player satisfies pred.
func anyInPlay(s *State, pred func(*PlayedCard) bool) bool {
	for _, sl := range s.EnumerateInPlay(s.CurrentPlayer) {
		if pred(sl.Card) {
			return true
		}
	}
	return false
}

func hasDamagedCreature(s *State) bool {
	return anyInPlay(s, (*PlayedCard).IsDamaged)
}

func hasDamagedOfElement(element EnergyType) func(*State) bool {
	return func(s *State) bool {
		return anyInPlay(s, func(pc *PlayedCard) bool {
			return pc.IsDamaged() && pc.Element() == element
		})
	}
}

func activeNamed(names ...string) func(*State) bool {
	return func(s *State) bool {
		active := s.MaybeActive(s.CurrentPlayer)
		return active != nil && slices.Contains(names, active.Name())
	}
}

func opponentHasBench(s *State) bool {
	return len(s.EnumerateBench(Opponent(s.CurrentPlayer))) > 0
}

func opponentHasDamagedBench(s *State) bool {
	for _, sl := range s.EnumerateBench(Opponent(s.CurrentPlayer)) {
		if sl.Card.IsDamaged() {
			return true
		}
	}
	return false
}

func benchHasEnergyOf(allowed ...EnergyType) func(*State) bool {
	return func(s *State) bool {
		if s.MaybeActive(s.CurrentPlayer) == nil {
			return false
		}
		for _, sl := range s.EnumerateBench(s.CurrentPlayer) {
			for _, e := range allowed {
				if sl.Card.HasEnergy(e) {
					return true
				}
			}
		}
		return false
	}
}

// lineageNotExhausted reports whether fewer than copies of each named card are
// accounted for in play (lineage stacks included) and in the discard pile,
// meaning some may still be in the deck.
func lineageNotExhausted(copies int, names ...string) func(*State) bool {
	return func(s *State) bool {
		player := s.CurrentPlayer
		counts := make(map[string]int, len(names))
		count := func(c *Card) {
			if slices.Contains(names, c.Name) {
				counts[c.Name]++
			}
		}
		for _, sl := range s.EnumerateInPlay(player) {
			count(sl.Card.Card)
			for _, behind := range sl.Card.CardsBehind {
				count(behind)
			}
		}
		for _, c := range s.DiscardPiles[player] {
			count(c)
		}
		for _, name := range names {
			if counts[name] < copies {
				return true
			}
		}
		return false
	}
}
