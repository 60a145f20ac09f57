package web

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/peterkuimelis/tcgsim/internal/game"
	"github.com/peterkuimelis/tcgsim/internal/log"
	"github.com/peterkuimelis/tcgsim/internal/players"
	"github.com/peterkuimelis/tcgsim/internal/simulate"
	"github.com/peterkuimelis/tcgsim/internal/view"
)

// CardInfo is the JSON representation of a card for the /api/cards endpoint.
type CardInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Kind        string   `json:"kind"`
	Status      string   `json:"status"`
	Element     string   `json:"element,omitempty"`
	HP          int      `json:"hp,omitempty"`
	Stage       int      `json:"stage,omitempty"`
	EvolvesFrom string   `json:"evolvesFrom,omitempty"`
	Attacks     []string `json:"attacks,omitempty"`
	Ability     string   `json:"ability,omitempty"`
	IsEx        bool     `json:"isEx,omitempty"`
	TrainerType string   `json:"trainerType,omitempty"`
	Text        string   `json:"text,omitempty"`
}

// ServerMessage is the envelope for every websocket message to the browser.
type ServerMessage struct {
	Type   string          `json:"type"` // "event", "game_over" or "error"
	Event  *view.EventView `json:"event,omitempty"`
	State  *view.StateView `json:"state,omitempty"`
	Result string          `json:"result,omitempty"`
}

// StartMessage is the first websocket message from the browser.
type StartMessage struct {
	Type     string    `json:"type"` // "start"
	Decks    [2]int    `json:"decks"`
	Players  [2]string `json:"players"`
	Seed     int64     `json:"seed"`
	MaxTurns int       `json:"max_turns"`
}

// Server is the tcgsim web API server.
type Server struct {
	decksFile string
	logger    *zap.Logger
	mux       *http.ServeMux
}

// NewServer creates a new web server. A nil logger disables logging.
func NewServer(decksFile string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		decksFile: decksFile,
		logger:    logger,
		mux:       http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/decks", s.handleDecks)
	s.mux.HandleFunc("GET /api/simulate", s.handleSimulate)
	s.mux.HandleFunc("GET /ws/game", s.handleWebSocket)
}

// Handler exposes the routes, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	var cards []CardInfo
	for _, c := range game.AllCards() {
		ci := CardInfo{
			ID:     c.ID,
			Name:   c.Name,
			Kind:   c.Kind.String(),
			Status: game.ImplementationStatus(c).String(),
		}
		if c.IsCreature() {
			cd := c.MustCreature()
			ci.Element = cd.Element.String()
			ci.HP = cd.HP
			ci.Stage = cd.Stage
			ci.EvolvesFrom = cd.EvolvesFrom
			ci.IsEx = cd.IsEx
			for _, a := range cd.Attacks {
				ci.Attacks = append(ci.Attacks, a.Name)
			}
			if cd.Ability != nil {
				ci.Ability = cd.Ability.Name
			}
		} else {
			td := c.MustTrainer()
			ci.TrainerType = td.Type.String()
			ci.Text = td.Text
		}
		cards = append(cards, ci)
	}
	writeJSON(w, cards)
}

func (s *Server) handleDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := loadDeckInfos(s.decksFile)
	if err != nil {
		s.logger.Warn("load decks", zap.String("path", s.decksFile), zap.Error(err))
		http.Error(w, "could not load decks file", http.StatusInternalServerError)
		return
	}
	writeJSON(w, decks)
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	decks, err := s.loadDecks(queryInt(q.Get("deck1"), 1), queryInt(q.Get("deck2"), 2))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	games := queryInt(q.Get("games"), 100)
	if games <= 0 || games > simulate.MaxGames {
		http.Error(w, fmt.Sprintf("games must be between 1 and %d", simulate.MaxGames), http.StatusBadRequest)
		return
	}
	res, err := simulate.RunBatch(r.Context(), simulate.Config{
		Decks:   decks,
		Players: [2]string{queryString(q.Get("p1"), players.CodeAttachAttack), queryString(q.Get("p2"), players.CodeAttachAttack)},
		Games:   games,
		Seed:    int64(queryInt(q.Get("seed"), 0)),
		Logger:  s.logger,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, map[string]any{
		"run_id":    res.RunID,
		"games":     res.Games,
		"wins":      res.Wins,
		"ties":      res.Ties,
		"timeouts":  res.Timeouts,
		"avg_turns": res.AvgTurns,
		"summary":   res.String(),
	})
}

// handleWebSocket plays one seeded game between two built-in strategies and
// streams its events to the browser.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		s.logger.Warn("websocket accept", zap.Error(err))
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()

	_, data, err := wsConn.Read(ctx)
	if err != nil {
		s.logger.Warn("websocket read start", zap.Error(err))
		return
	}
	var start StartMessage
	if err := json.Unmarshal(data, &start); err != nil || start.Type != "start" {
		wsConn.Close(websocket.StatusPolicyViolation, "expected start message")
		return
	}

	g, err := s.newGame(ctx, wsConn, start)
	if err != nil {
		s.send(ctx, wsConn, ServerMessage{Type: "error", Result: err.Error()})
		wsConn.Close(websocket.StatusNormalClosure, "bad start message")
		return
	}

	outcome := g.Play()
	s.send(ctx, wsConn, ServerMessage{
		Type:   "game_over",
		State:  view.BuildStateView(g.State(), 0),
		Result: outcome.String(),
	})
	wsConn.Close(websocket.StatusNormalClosure, "game ended")
}

func (s *Server) newGame(ctx context.Context, wsConn *websocket.Conn, start StartMessage) (*game.Game, error) {
	decks, err := s.loadDecks(start.Decks[0], start.Decks[1])
	if err != nil {
		return nil, err
	}
	var seats [2]game.Player
	for p := 0; p < 2; p++ {
		seats[p], err = players.ParsePlayerCode(queryString(start.Players[p], players.CodeAttachAttack), decks[p])
		if err != nil {
			return nil, err
		}
	}
	stream := log.NewFuncLogger(func(e log.GameEvent) {
		ev := view.Event(e)
		s.send(ctx, wsConn, ServerMessage{Type: "event", Event: &ev})
	})
	return game.NewGame(game.GameConfig{
		Seed:     start.Seed,
		MaxTurns: start.MaxTurns,
		Logger:   stream,
		Debug:    s.logger,
	}, seats[0], seats[1]), nil
}

// send writes one message. Failures are logged; the game runs to completion
// regardless.
func (s *Server) send(ctx context.Context, wsConn *websocket.Conn, msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		s.logger.Error("marshal message", zap.Error(err))
		return
	}
	if err := wsConn.Write(ctx, websocket.MessageText, data); err != nil {
		s.logger.Debug("websocket write", zap.Error(err))
	}
}

func (s *Server) loadDecks(n1, n2 int) ([2]game.Deck, error) {
	var decks [2]game.Deck
	for i, n := range []int{n1, n2} {
		d, err := game.DeckByNumber(s.decksFile, n)
		if err != nil {
			return decks, fmt.Errorf("deck %d: %w", i+1, err)
		}
		if err := game.ValidateDeck(d.Deck); err != nil {
			return decks, fmt.Errorf("deck %q: %w", d.Name, err)
		}
		decks[i] = d.Deck
	}
	return decks, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func queryInt(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

func queryString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
