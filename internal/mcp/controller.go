package mcp

import (
	"math/rand"

	"github.com/peterkuimelis/tcgsim/internal/game"
	"github.com/peterkuimelis/tcgsim/internal/view"
)

// MCPController implements game.Player by sending decisions to the MCP
// session's pending channel and blocking on a response channel.
type MCPController struct {
	player     int
	deck       game.Deck
	session    *GameSession
	responseCh chan ActionResponse

	// autopilot answers instead of the agent once the seat is abandoned.
	autopilot game.Player
}

// NewMCPController creates a controller for the given player.
func NewMCPController(player int, deck game.Deck, session *GameSession) *MCPController {
	return &MCPController{
		player:     player,
		deck:       deck,
		session:    session,
		responseCh: make(chan ActionResponse),
	}
}

func (c *MCPController) Deck() game.Deck { return c.deck }

// ChooseAction implements game.Player.
func (c *MCPController) ChooseAction(rng *rand.Rand, s *game.State, actions []game.Action) game.Action {
	if c.autopilot != nil {
		return c.autopilot.ChooseAction(rng, s, actions)
	}

	c.session.pendingCh <- &PendingDecision{
		Type:    DecisionChooseAction,
		Player:  c.player,
		State:   view.BuildStateView(s, c.player),
		Actions: view.Actions(actions),
	}

	resp := <-c.responseCh
	if resp.Abandon != nil {
		c.autopilot = resp.Abandon
		return c.autopilot.ChooseAction(rng, s, actions)
	}
	if resp.Index < 0 || resp.Index >= len(actions) {
		return actions[0]
	}
	return actions[resp.Index]
}
