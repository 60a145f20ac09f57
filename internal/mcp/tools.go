package mcp

import (
	"context"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/peterkuimelis/tcgsim/internal/game"
	"github.com/peterkuimelis/tcgsim/internal/players"
	"github.com/peterkuimelis/tcgsim/internal/simulate"
	"github.com/peterkuimelis/tcgsim/internal/view"
)

var (
	// sessionMu serializes the game tools around activeSession.
	sessionMu sync.Mutex

	// activeSession is the singleton game session (one per stdio process).
	activeSession *GameSession
)

// decksFile is the path to the decks YAML file, set by main.
var decksFile = "decks.yaml"

// logger receives session and batch logs. Never stdout: that is the MCP transport.
var logger = zap.NewNop()

// SetDecksFile sets the path to the decks YAML file.
func SetDecksFile(path string) {
	decksFile = path
}

// SetLogger sets the logger for sessions and simulation batches.
func SetLogger(l *zap.Logger) {
	logger = l
}

// RegisterTools adds all tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(listCardsTool(), handleListCards)
	s.AddTool(cardStatusTool(), handleCardStatus)
	s.AddTool(listDecksTool(), handleListDecks)
	s.AddTool(simulateTool(), handleSimulate)
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(takeActionTool(), handleTakeAction)
	s.AddTool(getGameStateTool(), handleGetGameState)
	s.AddTool(abandonGameTool(), handleAbandonGame)
}

// --- Tool definitions ---

func listCardsTool() mcp.Tool {
	return mcp.NewTool("list_cards",
		mcp.WithDescription("List every known card with its kind and implementation status."),
		mcp.WithBoolean("incomplete_only", mcp.Description("Only list cards the engine cannot fully simulate")),
	)
}

func cardStatusTool() mcp.Tool {
	return mcp.NewTool("card_status",
		mcp.WithDescription("Report whether a card can be simulated, and what is missing if not."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Card identity, e.g. 'C1 001'")),
	)
}

func listDecksTool() mcp.Tool {
	return mcp.NewTool("list_decks",
		mcp.WithDescription("List the decks in decks.yaml with their 1-indexed numbers and energy types."),
	)
}

func simulateTool() mcp.Tool {
	return mcp.NewTool("simulate",
		mcp.WithDescription("Play a batch of games between two decks and two built-in strategies and report win rates. "+
			"Strategy codes: r = random, e = end turn, aa = attach and attack, v = value function."),
		mcp.WithNumber("deck1", mcp.Required(), mcp.Description("Deck number for player 1 (1-indexed from decks.yaml)")),
		mcp.WithNumber("deck2", mcp.Required(), mcp.Description("Deck number for player 2 (1-indexed from decks.yaml)")),
		mcp.WithString("player1", mcp.Description("Strategy code for player 1 (default aa)")),
		mcp.WithString("player2", mcp.Description("Strategy code for player 2 (default aa)")),
		mcp.WithNumber("games", mcp.Description("Number of games (default 100)")),
		mcp.WithNumber("seed", mcp.Description("Batch seed (default 0)")),
	)
}

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a game against a built-in strategy. Returns the initial game state and first pending decision. "+
			"Decisions with a single legal action are taken automatically."),
		mcp.WithNumber("agent_deck", mcp.Required(), mcp.Description("Deck number for the agent (1-indexed from decks.yaml)")),
		mcp.WithNumber("opponent_deck", mcp.Required(), mcp.Description("Deck number for the opponent")),
		mcp.WithNumber("agent_player", mcp.Required(), mcp.Description("Which seat the agent plays: 0 = player 1, 1 = player 2")),
		mcp.WithString("opponent", mcp.Description("Strategy code for the opponent (default aa)")),
		mcp.WithNumber("seed", mcp.Description("Game seed (default 0)")),
		mcp.WithNumber("max_turns", mcp.Description("Turn cap before the game is a timeout (default 100)")),
	)
}

func takeActionTool() mcp.Tool {
	return mcp.NewTool("take_action",
		mcp.WithDescription("Choose an action from the pending action list."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index of the action to take from the actions list")),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current game state, accumulated events, and pending decision without submitting a response. Read-only."),
	)
}

func abandonGameTool() mcp.Tool {
	return mcp.NewTool("abandon_game",
		mcp.WithDescription("Hand the agent's seat to a built-in strategy, play the game out and end the session."),
		mcp.WithString("strategy", mcp.Description("Strategy code that finishes the game (default e)")),
	)
}

// --- Tool handlers ---

type cardStatusView struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Status      string `json:"status"`
	Complete    bool   `json:"complete"`
	Description string `json:"description"`
}

type deckView struct {
	Number int      `json:"number"`
	Name   string   `json:"name"`
	Energy []string `json:"energy"`
	Cards  int      `json:"cards"`
	Valid  bool     `json:"valid"`
	Error  string   `json:"error,omitempty"`
}

type simulateView struct {
	RunID    string     `json:"run_id"`
	Games    int        `json:"games"`
	Wins     [2]int     `json:"wins"`
	WinRates [2]float64 `json:"win_rates"`
	Ties     int        `json:"ties"`
	Timeouts int        `json:"timeouts"`
	AvgTurns float64    `json:"avg_turns"`
	Summary  string     `json:"summary"`
}

func handleListCards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	incompleteOnly := request.GetBool("incomplete_only", false)
	cards := []view.CardView{}
	for _, c := range view.Cards() {
		if incompleteOnly && c.Status == game.StatusComplete.String() {
			continue
		}
		cards = append(cards, c)
	}
	return mcp.NewToolResultText(respondJSON(cards)), nil
}

func handleCardStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}
	st := game.ImplementationStatusByID(id)
	out := cardStatusView{
		ID:          id,
		Status:      st.String(),
		Complete:    st.IsComplete(),
		Description: st.Description(),
	}
	if card, ok := game.FindCard(id); ok {
		out.Name = card.Name
	}
	return mcp.NewToolResultText(respondJSON(out)), nil
}

func handleListDecks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	decks, err := game.ParseDeckFile(decksFile)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to load decks: %v", err), nil
	}
	out := make([]deckView, 0, len(decks))
	for i, d := range decks {
		dv := deckView{Number: i + 1, Name: d.Name, Cards: len(d.Deck.Cards), Valid: true}
		for _, e := range d.Deck.EnergyTypes {
			dv.Energy = append(dv.Energy, e.String())
		}
		if err := game.ValidateDeck(d.Deck); err != nil {
			dv.Valid = false
			dv.Error = err.Error()
		}
		out = append(out, dv)
	}
	return mcp.NewToolResultText(respondJSON(out)), nil
}

func handleSimulate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var decks [2]game.Deck
	for i, key := range []string{"deck1", "deck2"} {
		d, err := game.DeckByNumber(decksFile, request.GetInt(key, 0))
		if err != nil {
			return mcp.NewToolResultErrorf("Failed to load %s: %v", key, err), nil
		}
		if err := game.ValidateDeck(d.Deck); err != nil {
			return mcp.NewToolResultErrorf("Invalid %s %q: %v", key, d.Name, err), nil
		}
		decks[i] = d.Deck
	}
	games := request.GetInt("games", 100)
	if games <= 0 || games > simulate.MaxGames {
		return mcp.NewToolResultErrorf("games must be between 1 and %d", simulate.MaxGames), nil
	}

	res, err := simulate.RunBatch(ctx, simulate.Config{
		Decks: decks,
		Players: [2]string{
			request.GetString("player1", players.CodeAttachAttack),
			request.GetString("player2", players.CodeAttachAttack),
		},
		Games:  games,
		Seed:   int64(request.GetInt("seed", 0)),
		Logger: logger,
	})
	if err != nil {
		return mcp.NewToolResultErrorf("Simulation failed: %v", err), nil
	}

	return mcp.NewToolResultText(respondJSON(simulateView{
		RunID:    res.RunID,
		Games:    res.Games,
		Wins:     res.Wins,
		WinRates: [2]float64{res.WinRate(0), res.WinRate(1)},
		Ties:     res.Ties,
		Timeouts: res.Timeouts,
		AvgTurns: res.AvgTurns,
		Summary:  res.String(),
	})), nil
}

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionMu.Lock()
	defer sessionMu.Unlock()

	if activeSession != nil {
		return mcp.NewToolResultError("A game is already running. Only one game at a time is supported."), nil
	}

	agentDeck, err := game.DeckByNumber(decksFile, request.GetInt("agent_deck", 0))
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to load agent deck: %v", err), nil
	}
	opponentDeck, err := game.DeckByNumber(decksFile, request.GetInt("opponent_deck", 0))
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to load opponent deck: %v", err), nil
	}

	sess, err := NewGameSession(SessionConfig{
		AgentDeck:    agentDeck.Deck,
		OpponentDeck: opponentDeck.Deck,
		AgentPlayer:  request.GetInt("agent_player", -1),
		Opponent:     request.GetString("opponent", players.CodeAttachAttack),
		Seed:         int64(request.GetInt("seed", 0)),
		MaxTurns:     request.GetInt("max_turns", 0),
	}, logger)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}

	resp := sess.waitForPending()
	if !resp.GameOver {
		activeSession = sess
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleTakeAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionMu.Lock()
	defer sessionMu.Unlock()

	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	sess := activeSession
	pending := sess.currentPending
	if pending == nil || pending.Type != DecisionChooseAction {
		return mcp.NewToolResultError("No pending decision."), nil
	}

	index := request.GetInt("index", -1)
	if index < 0 || index >= len(pending.Actions) {
		return mcp.NewToolResultErrorf("Invalid index %d. Must be 0-%d.", index, len(pending.Actions)-1), nil
	}

	resp := sess.respond(ActionResponse{Index: index})
	if resp.GameOver {
		activeSession = nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func handleGetGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionMu.Lock()
	defer sessionMu.Unlock()

	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	return mcp.NewToolResultText(respondJSON(activeSession.snapshot())), nil
}

func handleAbandonGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionMu.Lock()
	defer sessionMu.Unlock()

	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	sess := activeSession
	strategy, err := players.ParsePlayerCode(request.GetString("strategy", players.CodeEndTurn), sess.agentCtrl.Deck())
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid strategy: %v", err), nil
	}

	resp := sess.respond(ActionResponse{Abandon: strategy})
	activeSession = nil
	return mcp.NewToolResultText(respondJSON(resp)), nil
}
