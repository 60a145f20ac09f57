package players

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/peterkuimelis/tcgsim/internal/game"
)

// Codes accepted by ParsePlayerCode.
const (
	CodeRandom       = "r"
	CodeEndTurn      = "e"
	CodeAttachAttack = "aa"
	CodeValue        = "v"
)

// ParsePlayerCode builds a strategy from its short command-line code.
func ParsePlayerCode(code string, deck game.Deck) (game.Player, error) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case CodeRandom:
		return NewRandomPlayer(deck), nil
	case CodeEndTurn:
		return NewEndTurnPlayer(deck), nil
	case CodeAttachAttack:
		return NewAttachAttackPlayer(deck), nil
	case CodeValue:
		return NewValueFunctionPlayer(deck, Evaluate), nil
	default:
		return nil, fmt.Errorf("unknown player code %q (want r, e, aa or v)", code)
	}
}

// --- RandomPlayer ---

// RandomPlayer picks uniformly among the legal actions.
type RandomPlayer struct {
	deck game.Deck
}

func NewRandomPlayer(deck game.Deck) *RandomPlayer {
	return &RandomPlayer{deck: deck}
}

func (p *RandomPlayer) Deck() game.Deck { return p.deck }

func (p *RandomPlayer) ChooseAction(rng *rand.Rand, _ *game.State, actions []game.Action) game.Action {
	return actions[rng.Intn(len(actions))]
}

// --- EndTurnPlayer ---

// EndTurnPlayer ends its turn whenever it may. Forced decisions and setup
// placements take the first offered answer.
type EndTurnPlayer struct {
	deck game.Deck
}

func NewEndTurnPlayer(deck game.Deck) *EndTurnPlayer {
	return &EndTurnPlayer{deck: deck}
}

func (p *EndTurnPlayer) Deck() game.Deck { return p.deck }

func (p *EndTurnPlayer) ChooseAction(_ *rand.Rand, _ *game.State, actions []game.Action) game.Action {
	if a, ok := firstOfType(actions, game.ActionEndTurn); ok {
		return a
	}
	return actions[0]
}

// --- AttachAttackPlayer ---

// AttachAttackPlayer attacks whenever it can, otherwise attaches the turn's
// energy to its active, otherwise fills the bench, then ends the turn.
type AttachAttackPlayer struct {
	deck game.Deck
}

func NewAttachAttackPlayer(deck game.Deck) *AttachAttackPlayer {
	return &AttachAttackPlayer{deck: deck}
}

func (p *AttachAttackPlayer) Deck() game.Deck { return p.deck }

func (p *AttachAttackPlayer) ChooseAction(rng *rand.Rand, _ *game.State, actions []game.Action) game.Action {
	if actions[0].Stacked {
		return actions[rng.Intn(len(actions))]
	}
	if a, ok := lastOfType(actions, game.ActionAttack); ok {
		return a
	}
	for _, a := range actions {
		if a.Type == game.ActionAttachEnergy && a.Slot == 0 {
			return a
		}
	}
	if a, ok := firstOfType(actions, game.ActionPlace); ok {
		return a
	}
	if a, ok := firstOfType(actions, game.ActionEndTurn); ok {
		return a
	}
	return actions[0]
}

func firstOfType(actions []game.Action, t game.ActionType) (game.Action, bool) {
	for _, a := range actions {
		if a.Type == t {
			return a, true
		}
	}
	return game.Action{}, false
}

// lastOfType prefers later attacks, which are usually the stronger ones.
func lastOfType(actions []game.Action, t game.ActionType) (game.Action, bool) {
	for i := len(actions) - 1; i >= 0; i-- {
		if actions[i].Type == t {
			return actions[i], true
		}
	}
	return game.Action{}, false
}
