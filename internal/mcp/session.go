package mcp

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peterkuimelis/tcgsim/internal/game"
	"github.com/peterkuimelis/tcgsim/internal/log"
	"github.com/peterkuimelis/tcgsim/internal/players"
	"github.com/peterkuimelis/tcgsim/internal/view"
)

// DecisionType identifies what the session is waiting for.
type DecisionType string

const (
	DecisionChooseAction DecisionType = "choose_action"
	DecisionGameOver     DecisionType = "game_over"
)

// PendingDecision represents a decision the game engine is waiting for.
type PendingDecision struct {
	Type    DecisionType      `json:"type"`
	Player  int               `json:"player"`
	State   *view.StateView   `json:"state"`
	Actions []view.ActionView `json:"actions,omitempty"`
}

// ActionResponse is sent from the tools to the controller. A non-nil
// Abandon hands the seat to that strategy for the rest of the game.
type ActionResponse struct {
	Index   int
	Abandon game.Player
}

// ToolResponse is the JSON envelope returned by the game tools.
type ToolResponse struct {
	SessionID string           `json:"session_id"`
	Events    []view.EventView `json:"events"`
	State     *view.StateView  `json:"state,omitempty"`
	Pending   *PendingView     `json:"pending,omitempty"`
	GameOver  bool             `json:"game_over"`
	Result    string           `json:"result,omitempty"`
}

// PendingView is the pending decision as presented in the tool response JSON.
type PendingView struct {
	Type    DecisionType      `json:"type"`
	Actions []view.ActionView `json:"actions,omitempty"`
}

// SessionConfig describes a game between the agent and a built-in strategy.
type SessionConfig struct {
	AgentDeck    game.Deck
	OpponentDeck game.Deck
	AgentPlayer  int    // seat the agent plays: 0 or 1
	Opponent     string // player code for the other seat
	Seed         int64
	MaxTurns     int
}

// GameSession holds the state of a single MCP game session.
type GameSession struct {
	id          string
	game        *game.Game
	agentCtrl   *MCPController
	agentPlayer int

	pendingCh      chan *PendingDecision
	currentPending *PendingDecision

	mu       sync.Mutex
	events   []view.EventView
	gameOver bool
	result   string
}

// NewGameSession deals the game and starts it in a goroutine. The game
// blocks whenever the agent has more than one legal action.
func NewGameSession(cfg SessionConfig, logger *zap.Logger) (*GameSession, error) {
	if cfg.AgentPlayer != 0 && cfg.AgentPlayer != 1 {
		return nil, fmt.Errorf("agent player must be 0 or 1, got %d", cfg.AgentPlayer)
	}
	opponent, err := players.ParsePlayerCode(cfg.Opponent, cfg.OpponentDeck)
	if err != nil {
		return nil, err
	}

	sess := &GameSession{
		id:          uuid.NewString(),
		agentPlayer: cfg.AgentPlayer,
		pendingCh:   make(chan *PendingDecision, 1),
	}
	sess.agentCtrl = NewMCPController(cfg.AgentPlayer, cfg.AgentDeck, sess)

	seats := [2]game.Player{sess.agentCtrl, opponent}
	if cfg.AgentPlayer == 1 {
		seats[0], seats[1] = seats[1], seats[0]
	}

	logger = logger.With(zap.String("session_id", sess.id))
	sess.game = game.NewGame(game.GameConfig{
		Seed:     cfg.Seed,
		MaxTurns: cfg.MaxTurns,
		Logger: log.NewFuncLogger(func(e log.GameEvent) {
			sess.appendEvent(view.Event(e))
		}),
		Debug: logger,
	}, seats[0], seats[1])

	logger.Info("game started",
		zap.Int("agent_player", cfg.AgentPlayer),
		zap.String("opponent", cfg.Opponent),
		zap.Int64("seed", cfg.Seed))

	go func() {
		outcome := sess.game.Play()
		logger.Info("game finished", zap.Stringer("outcome", outcome))

		sess.mu.Lock()
		sess.gameOver = true
		sess.result = outcome.String()
		sess.mu.Unlock()

		sess.pendingCh <- &PendingDecision{
			Type:   DecisionGameOver,
			Player: sess.agentPlayer,
			State:  view.BuildStateView(sess.game.State(), sess.agentPlayer),
		}
	}()

	return sess, nil
}

// ID is the session's unique identifier.
func (s *GameSession) ID() string { return s.id }

// appendEvent adds an event to the session's event log. Thread-safe.
func (s *GameSession) appendEvent(ev view.EventView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

// drainEvents returns all accumulated events and clears the buffer.
func (s *GameSession) drainEvents() []view.EventView {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.events
	s.events = nil
	if events == nil {
		events = []view.EventView{}
	}
	return events
}

// waitForPending blocks until the next decision arrives from the game engine,
// then builds a ToolResponse with accumulated events + the pending decision.
func (s *GameSession) waitForPending() *ToolResponse {
	pending := <-s.pendingCh
	s.currentPending = pending
	return s.snapshot()
}

// snapshot describes the last pending decision without waiting.
func (s *GameSession) snapshot() *ToolResponse {
	resp := &ToolResponse{
		SessionID: s.id,
		Events:    s.drainEvents(),
	}
	pending := s.currentPending
	if pending == nil {
		return resp
	}
	resp.State = pending.State
	if pending.Type == DecisionGameOver {
		s.mu.Lock()
		resp.GameOver = true
		resp.Result = s.result
		s.mu.Unlock()
		return resp
	}
	resp.Pending = &PendingView{
		Type:    pending.Type,
		Actions: pending.Actions,
	}
	return resp
}

// respond answers the current decision and waits for the next one.
func (s *GameSession) respond(r ActionResponse) *ToolResponse {
	s.agentCtrl.responseCh <- r
	return s.waitForPending()
}

// respondJSON marshals a tool response to a JSON string.
func respondJSON(resp any) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
