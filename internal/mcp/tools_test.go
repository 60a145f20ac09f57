package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/tcgsim/internal/view"
)

const testDecks = `
decks:
  - name: Verdant
    energy: [grass]
    cards:
      - { name: Sproutle, count: 2 }
      - { name: Bramblor, count: 2 }
      - { name: Verdigrant, count: 2 }
      - { name: Mossling, count: 2 }
      - { name: Sporeling, count: 2 }
      - { name: Brawlbeak, count: 2 }
      - { name: Potion, count: 2 }
      - { name: Professor's Notes, count: 2 }
      - { name: Capture Ball, count: 2 }
      - { name: Giant Cape, count: 2 }
  - name: Storm
    energy: [lightning]
    cards:
      - { name: Zappup, count: 2 }
      - { name: Voltaur, count: 2 }
      - { name: Dynamoth, count: 2 }
      - { name: Null Chimera, count: 2 }
      - { name: Brawlbeak, count: 2 }
      - { name: Rockmite, count: 2 }
      - { name: Potion, count: 2 }
      - { name: Professor's Notes, count: 2 }
      - { name: Capture Ball, count: 2 }
      - { name: Rocky Helmet, count: 2 }
  - name: Small
    energy: [water]
    cards:
      - { name: Ripplet, count: 3 }
`

func setupDecks(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "decks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDecks), 0o644))
	prev := decksFile
	SetDecksFile(path)
	t.Cleanup(func() {
		SetDecksFile(prev)
		activeSession = nil
	})
}

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return text.Text, res.IsError
}

func decode[T any](t *testing.T, text string) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal([]byte(text), &out), text)
	return out
}

func TestListCards(t *testing.T) {
	text, isErr := callTool(t, handleListCards, nil)
	require.False(t, isErr)
	all := decode[[]view.CardView](t, text)
	assert.Greater(t, len(all), 40)

	text, _ = callTool(t, handleListCards, map[string]any{"incomplete_only": true})
	incomplete := decode[[]view.CardView](t, text)
	require.Len(t, incomplete, 4)
	for _, c := range incomplete {
		assert.NotEqual(t, "Complete", c.Status)
	}
}

func TestCardStatus(t *testing.T) {
	text, isErr := callTool(t, handleCardStatus, map[string]any{"id": "C1 001"})
	require.False(t, isErr)
	st := decode[cardStatusView](t, text)
	assert.Equal(t, "Sproutle", st.Name)
	assert.True(t, st.Complete)

	text, _ = callTool(t, handleCardStatus, map[string]any{"id": "C1 291"})
	st = decode[cardStatusView](t, text)
	assert.Equal(t, "MissingTool", st.Status)
	assert.False(t, st.Complete)

	_, isErr = callTool(t, handleCardStatus, nil)
	assert.True(t, isErr)
}

func TestListDecks(t *testing.T) {
	setupDecks(t)
	text, isErr := callTool(t, handleListDecks, nil)
	require.False(t, isErr)
	decks := decode[[]deckView](t, text)
	require.Len(t, decks, 3)
	assert.Equal(t, deckView{Number: 2, Name: "Storm", Energy: []string{"Lightning"}, Cards: 20, Valid: true}, decks[1])
	assert.False(t, decks[2].Valid)
	assert.NotEmpty(t, decks[2].Error)
}

func TestSimulate(t *testing.T) {
	setupDecks(t)
	text, isErr := callTool(t, handleSimulate, map[string]any{
		"deck1": 1, "deck2": 2, "player1": "aa", "player2": "r", "games": 6, "seed": 3,
	})
	require.False(t, isErr, text)
	res := decode[simulateView](t, text)
	assert.Equal(t, 6, res.Games)
	assert.Equal(t, 6, res.Wins[0]+res.Wins[1]+res.Ties+res.Timeouts)
	assert.NotEmpty(t, res.RunID)

	text, isErr = callTool(t, handleSimulate, map[string]any{"deck1": 1, "deck2": 9})
	assert.True(t, isErr)
	assert.Contains(t, text, "deck2")
}

func TestSimulateRejectsBadBatch(t *testing.T) {
	setupDecks(t)
	text, isErr := callTool(t, handleSimulate, map[string]any{"deck1": 1, "deck2": 3, "games": 4})
	assert.True(t, isErr)
	assert.Contains(t, text, "Small")

	for _, games := range []int{4611686018427387904, 100001, -1} {
		text, isErr = callTool(t, handleSimulate, map[string]any{"deck1": 1, "deck2": 2, "games": games})
		assert.True(t, isErr, games)
		assert.Contains(t, text, "games must be between")
	}
}

func TestPlayGameToTheEnd(t *testing.T) {
	setupDecks(t)

	text, isErr := callTool(t, handleStartGame, map[string]any{
		"agent_deck": 1, "opponent_deck": 2, "agent_player": 1, "opponent": "aa", "seed": 7, "max_turns": 12,
	})
	require.False(t, isErr, text)
	resp := decode[ToolResponse](t, text)
	require.NotEmpty(t, resp.SessionID)

	if !resp.GameOver {
		_, isErr = callTool(t, handleStartGame, map[string]any{"agent_deck": 1, "opponent_deck": 2, "agent_player": 0})
		assert.True(t, isErr, "only one game at a time")
	}

	sawEvents := len(resp.Events) > 0
	for i := 0; !resp.GameOver; i++ {
		require.Less(t, i, 10000, "game did not finish")
		require.NotNil(t, resp.Pending)
		require.Greater(t, len(resp.Pending.Actions), 1, "single actions are taken automatically")
		require.NotNil(t, resp.State)

		text, isErr = callTool(t, handleTakeAction, map[string]any{"index": len(resp.Pending.Actions) - 1})
		require.False(t, isErr, text)
		resp = decode[ToolResponse](t, text)
		sawEvents = sawEvents || len(resp.Events) > 0
	}

	assert.True(t, sawEvents)
	assert.NotEmpty(t, resp.Result)
	assert.Nil(t, activeSession)

	_, isErr = callTool(t, handleTakeAction, map[string]any{"index": 0})
	assert.True(t, isErr)
}

func TestTakeActionValidatesIndex(t *testing.T) {
	setupDecks(t)
	text, isErr := callTool(t, handleStartGame, map[string]any{
		"agent_deck": 1, "opponent_deck": 2, "agent_player": 0, "seed": 1,
	})
	require.False(t, isErr, text)
	resp := decode[ToolResponse](t, text)
	if resp.GameOver {
		t.Skip("game finished without an agent decision")
	}

	text, isErr = callTool(t, handleTakeAction, map[string]any{"index": 99})
	assert.True(t, isErr)
	assert.Contains(t, text, "Invalid index 99")

	text, isErr = callTool(t, handleGetGameState, nil)
	require.False(t, isErr)
	state := decode[ToolResponse](t, text)
	assert.Equal(t, resp.SessionID, state.SessionID)
	assert.Equal(t, resp.Pending, state.Pending)

	text, isErr = callTool(t, handleAbandonGame, nil)
	require.False(t, isErr, text)
	final := decode[ToolResponse](t, text)
	assert.True(t, final.GameOver)
	assert.Nil(t, activeSession)
}

func TestStartGameRejectsBadSeat(t *testing.T) {
	setupDecks(t)
	text, isErr := callTool(t, handleStartGame, map[string]any{"agent_deck": 1, "opponent_deck": 2, "agent_player": 2})
	assert.True(t, isErr)
	assert.Contains(t, text, "agent player")

	text, isErr = callTool(t, handleStartGame, map[string]any{"agent_deck": 1, "opponent_deck": 2, "agent_player": 0, "opponent": "x"})
	assert.True(t, isErr)
	assert.Contains(t, text, "unknown player code")
	assert.Nil(t, activeSession)
}
