package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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
  - name: Small
    energy: [water]
    cards:
      - { name: Ripplet, count: 3 }
`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	path := filepath.Join(t.TempDir(), "decks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDecks), 0o644))
	ts := httptest.NewServer(NewServer(path, nil).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestCardsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	var cards []CardInfo
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/cards", &cards))

	byID := map[string]CardInfo{}
	for _, c := range cards {
		byID[c.ID] = c
	}
	sproutle := byID["C1 001"]
	assert.Equal(t, "Sproutle", sproutle.Name)
	assert.Equal(t, "Creature", sproutle.Kind)
	assert.Equal(t, "Grass", sproutle.Element)
	assert.Equal(t, 60, sproutle.HP)
	assert.Equal(t, "Complete", sproutle.Status)
	assert.NotEmpty(t, sproutle.Attacks)

	assert.Equal(t, "Trainer", byID["C1 201"].Kind)
	assert.NotEmpty(t, byID["C1 201"].Text)
	assert.Equal(t, "MissingTool", byID["C1 291"].Status)
}

func TestDecksEndpoint(t *testing.T) {
	ts := newTestServer(t)
	var decks []DeckInfo
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/decks", &decks))
	require.Len(t, decks, 2)

	assert.Equal(t, 1, decks[0].Number)
	assert.True(t, decks[0].Valid)
	assert.Equal(t, []string{"Grass"}, decks[0].Energy)
	assert.Len(t, decks[0].Cards, 10)

	assert.False(t, decks[1].Valid)
	assert.Contains(t, decks[1].Error, "copies of Ripplet")
}

func TestSimulateEndpoint(t *testing.T) {
	ts := newTestServer(t)
	var res map[string]any
	require.Equal(t, http.StatusOK, getJSON(t, ts.URL+"/api/simulate?deck1=1&deck2=1&p1=aa&p2=r&games=4&seed=2", &res))
	assert.EqualValues(t, 4, res["games"])
	assert.NotEmpty(t, res["run_id"])

	assert.Equal(t, http.StatusBadRequest, getJSON(t, ts.URL+"/api/simulate?deck1=1&deck2=7", &res))
	assert.Equal(t, http.StatusBadRequest, getJSON(t, ts.URL+"/api/simulate?deck1=1&deck2=1&p1=zz", &res))
}

func TestSimulateEndpointRejectsBadBatch(t *testing.T) {
	ts := newTestServer(t)
	for _, query := range []string{
		"deck1=1&deck2=1&games=4611686018427387904",
		"deck1=1&deck2=1&games=100001",
		"deck1=1&deck2=1&games=-3",
		"deck1=1&deck2=2&games=4",
		"deck1=2&deck2=1&games=4",
	} {
		resp, err := http.Get(ts.URL + "/api/simulate?" + query)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, query)
		assert.NotEmpty(t, strings.TrimSpace(string(body)), query)
	}
}

func dialGame(t *testing.T, ts *httptest.Server, start StartMessage) []ServerMessage {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws/game", nil)
	require.NoError(t, err)
	defer conn.CloseNow()
	conn.SetReadLimit(1 << 20)

	data, err := json.Marshal(start)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))

	var msgs []ServerMessage
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return msgs
		}
		var msg ServerMessage
		require.NoError(t, json.Unmarshal(data, &msg))
		msgs = append(msgs, msg)
	}
}

func TestWebSocketStreamsGame(t *testing.T) {
	ts := newTestServer(t)
	msgs := dialGame(t, ts, StartMessage{
		Type:    "start",
		Decks:   [2]int{1, 1},
		Players: [2]string{"aa", "r"},
		Seed:    5,
	})
	require.Greater(t, len(msgs), 2)

	last := msgs[len(msgs)-1]
	assert.Equal(t, "game_over", last.Type)
	assert.NotEmpty(t, last.Result)
	require.NotNil(t, last.State)

	first := msgs[0]
	require.Equal(t, "event", first.Type)
	require.NotNil(t, first.Event)
	for i := 1; i < len(msgs)-1; i++ {
		assert.Equal(t, "event", msgs[i].Type)
		assert.Greater(t, msgs[i].Event.Seq, msgs[i-1].Event.Seq)
	}

	again := dialGame(t, ts, StartMessage{Type: "start", Decks: [2]int{1, 1}, Players: [2]string{"aa", "r"}, Seed: 5})
	assert.Equal(t, msgs, again, "same seed streams the same game")
}

func TestWebSocketRejectsBadStart(t *testing.T) {
	ts := newTestServer(t)
	msgs := dialGame(t, ts, StartMessage{Type: "start", Decks: [2]int{1, 9}})
	require.Len(t, msgs, 1)
	assert.Equal(t, "error", msgs[0].Type)
	assert.Contains(t, msgs[0].Result, "deck 2")

	msgs = dialGame(t, ts, StartMessage{Type: "start", Decks: [2]int{1, 2}})
	require.Len(t, msgs, 1)
	assert.Equal(t, "error", msgs[0].Type)
	assert.Contains(t, msgs[0].Result, "Small")
}
