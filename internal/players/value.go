package players

import (
	"math"
	"math/rand"

	"github.com/peterkuimelis/tcgsim/internal/game"
)

// ValueFunction scores a state from player's point of view. Higher is better.
type ValueFunction func(s *game.State, player int) float64

// ValueFunctionPlayer looks one decision ahead: it applies each legal action
// to a clone of the state and keeps the best scoring result. Every candidate
// sees the same coin flips.
type ValueFunctionPlayer struct {
	deck  game.Deck
	value ValueFunction
}

func NewValueFunctionPlayer(deck game.Deck, value ValueFunction) *ValueFunctionPlayer {
	return &ValueFunctionPlayer{deck: deck, value: value}
}

func (p *ValueFunctionPlayer) Deck() game.Deck { return p.deck }

func (p *ValueFunctionPlayer) ChooseAction(rng *rand.Rand, s *game.State, actions []game.Action) game.Action {
	actor := actions[0].Actor
	seed := rng.Int63()
	best, bestScore := actions[0], math.Inf(-1)
	for _, a := range actions {
		next := s.Clone()
		game.ApplyAction(rand.New(rand.NewSource(seed)), next, a)
		if score := p.value(next, actor); score > bestScore {
			best, bestScore = a, score
		}
	}
	return best
}

const winScore = 1e6

// Evaluate is the default value function: points dominate, then the board.
func Evaluate(s *game.State, player int) float64 {
	switch s.Outcome.Kind {
	case game.OutcomeWin:
		if s.Outcome.Winner == player {
			return winScore
		}
		return -winScore
	case game.OutcomeTie, game.OutcomeTimeout:
		return 0
	}
	opp := game.Opponent(player)
	score := 100 * float64(s.Points[player]-s.Points[opp])
	return score + boardValue(s, player) - boardValue(s, opp)
}

func boardValue(s *game.State, player int) float64 {
	v := 0.5 * float64(len(s.Hands[player]))
	for _, sl := range s.EnumerateInPlay(player) {
		pc := sl.Card
		v += 10 + float64(pc.RemainingHP)/10 + 2*float64(len(pc.AttachedEnergy))
		v += 5 * float64(pc.Card.MustCreature().Stage)
		if pc.HasStatus() {
			v -= 5
		}
	}
	return v
}
