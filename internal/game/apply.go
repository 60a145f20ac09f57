package game

import (
	"fmt"
	"math/rand"
)

// Knockout records a creature removed by the knockout sweep.
type Knockout struct {
	Player int // owner of the knocked out creature
	Slot   int
	Card   *Card
	Points int // awarded to the opponent
}

// Resolution summarizes what applying one action triggered beyond the action itself.
type Resolution struct {
	Knockouts    []Knockout
	TurnsStarted int
}

// ApplyAction mutates s by the chosen action and resolves everything it
// triggers. Stacked actions answer the head of the pending-decision queue.
func ApplyAction(rng *rand.Rand, s *State, a Action) Resolution {
	var res Resolution
	if a.Stacked {
		head := s.popPending()
		if head.Actor != a.Actor {
			panic(fmt.Sprintf("P%d answered a decision owned by P%d", a.Actor+1, head.Actor+1))
		}
		resolveDecision(s, head, a)
	} else {
		applyFresh(rng, s, a, &res)
	}
	settle(rng, s, &res)
	return res
}

// ForcePass handles an empty legal-action set: the queue head is dropped if
// one is pending, otherwise the current player's turn ends.
func ForcePass(rng *rand.Rand, s *State) Resolution {
	var res Resolution
	if len(s.Pending) > 0 {
		s.popPending()
	} else {
		endTurn(rng, s, &res)
	}
	settle(rng, s, &res)
	return res
}

func applyFresh(rng *rand.Rand, s *State, a Action, res *Resolution) {
	if len(s.Pending) > 0 {
		panic(fmt.Sprintf("fresh action %s while %d decisions are pending", a, len(s.Pending)))
	}
	if a.Actor != s.CurrentPlayer {
		panic(fmt.Sprintf("P%d acted on P%d's turn", a.Actor+1, s.CurrentPlayer+1))
	}

	switch a.Type {
	case ActionPlace:
		s.place(a.Actor, a.Card, a.Slot)
	case ActionEvolve:
		s.evolve(a.Actor, a.Slot, a.Card)
	case ActionAttachEnergy:
		s.InPlay[a.Actor][a.Slot].AttachEnergy(a.Energy, 1)
		s.CurrentEnergy = EnergyNone
	case ActionPlayTrainer:
		playTrainer(rng, s, a.Actor, a.Card)
	case ActionRetreat:
		s.retreat(a.Actor, a.Slot)
	case ActionUseAbility:
		useAbility(rng, s, a.Actor, a.Slot)
	case ActionAttack:
		resolveAttack(rng, s, a.Actor, a.Attack, res)
	case ActionEndTurn:
		endTurn(rng, s, res)
	default:
		panic(fmt.Sprintf("action %s is not a top-level action", a.Type))
	}
}

// settle drops queue heads that can no longer be answered and runs the turn
// transitions that were waiting for the queue to drain.
func settle(rng *rand.Rand, s *State, res *Resolution) {
	for !s.IsGameOver() {
		for len(s.Pending) > 0 && len(decisionActions(s, s.Pending[0])) == 0 {
			s.popPending()
		}
		if len(s.Pending) > 0 {
			return
		}
		switch {
		case s.EndTurnAfterPending:
			s.EndTurnAfterPending = false
			endTurn(rng, s, res)
		case s.NextTurnAfterPending:
			s.NextTurnAfterPending = false
			beginTurn(rng, s)
			res.TurnsStarted++
		default:
			return
		}
	}
}
