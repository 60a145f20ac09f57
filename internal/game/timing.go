package game

import "math/rand"

// endTurn closes the current turn. During setup it hands placement to the
// other player; afterwards it runs maintenance and the status checkup and
// schedules the next turn.
func endTurn(rng *rand.Rand, s *State, res *Resolution) {
	cur := s.CurrentPlayer
	if s.TurnCount == 0 {
		endSetup(s, cur)
		return
	}

	s.CurrentEnergy = EnergyNone
	for p := 0; p < 2; p++ {
		for _, sl := range s.EnumerateInPlay(p) {
			sl.Card.EndTurnMaintenance()
		}
		s.PlayerEffects[p] = decayEffects(s.PlayerEffects[p])
	}
	statusCheckup(rng, s, cur)
	sweepKnockouts(s, res)
	s.NextTurnAfterPending = true
}

func endSetup(s *State, player int) {
	if s.MaybeActive(player) == nil {
		s.Outcome = Outcome{Kind: OutcomeWin, Winner: Opponent(player)}
		return
	}
	s.SetupDone[player] = true
	if !s.SetupDone[Opponent(player)] {
		s.CurrentPlayer = Opponent(player)
		return
	}
	for p := 0; p < 2; p++ {
		for _, sl := range s.EnumerateInPlay(p) {
			sl.Card.PlayedThisTurn = false
		}
	}
	s.NextTurnAfterPending = true
}

// statusCheckup runs between turns for both players: poison damage, a wake-up
// flip for sleeping creatures, and paralysis wearing off for the player whose
// turn just ended.
func statusCheckup(rng *rand.Rand, s *State, endingPlayer int) {
	for p := 0; p < 2; p++ {
		for _, sl := range s.EnumerateInPlay(p) {
			pc := sl.Card
			if pc.Poisoned {
				pc.ApplyDamage(PoisonDamage)
			}
			if pc.Asleep && flipHeads(rng) {
				pc.Asleep = false
			}
			if p == endingPlayer {
				pc.Paralyzed = false
			}
		}
	}
}

// beginTurn passes the turn, draws a card, and generates the turn's energy.
func beginTurn(rng *rand.Rand, s *State) {
	next := Opponent(s.CurrentPlayer)
	if s.TurnCount == 0 {
		next = s.StartingPlayer
	}
	s.TurnCount++
	s.CurrentPlayer = next
	s.HasPlayedSupport = false
	s.HasRetreated = false
	s.drawCard(next)
	s.CurrentEnergy = generateEnergy(rng, s, next)
}

// generateEnergy picks this turn's energy from the player's energy zone.
// The starting player gets none on the first turn.
func generateEnergy(rng *rand.Rand, s *State, player int) EnergyType {
	types := s.Decks[player].EnergyTypes
	if s.TurnCount == 1 || len(types) == 0 {
		return EnergyNone
	}
	if len(types) == 1 {
		return types[0]
	}
	return types[rng.Intn(len(types))]
}

func flipHeads(rng *rand.Rand) bool {
	return rng.Intn(2) == 0
}
