package game

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/peterkuimelis/tcgsim/internal/log"
)

// Player is a decision strategy. ChooseAction must not mutate the state it
// is given; clone it to explore hypothetical futures.
type Player interface {
	ChooseAction(rng *rand.Rand, s *State, actions []Action) Action
	Deck() Deck
}

// Observer is notified after each resolved decision. It must not mutate state.
type Observer interface {
	OnAction(actor int, actions []Action, chosen Action)
}

const (
	DefaultMaxTurns = 100
	DefaultMaxTicks = 10000
)

// GameConfig holds configuration for creating a new game.
type GameConfig struct {
	Seed      int64
	MaxTurns  int // game is a timeout once this many turns have passed (0 = DefaultMaxTurns)
	MaxTicks  int // decision points before a timeout (0 = DefaultMaxTicks)
	Logger    log.EventLogger
	Debug     *zap.Logger // diagnostic traces; nil disables them
	Observers []Observer
}

// Game owns the state and the random source and drives the
// generate, decide, apply loop.
type Game struct {
	state     *State
	players   [2]Player
	rng       *rand.Rand
	logger    log.EventLogger
	debug     *zap.Logger
	observers []Observer
	maxTurns  int
	maxTicks  int
	ticks     int
}

// NewGame deals a fresh game from the players' decks.
func NewGame(cfg GameConfig, p0, p1 Player) *Game {
	g := newGame(cfg, p0, p1)
	g.state = NewState(p0.Deck(), p1.Deck(), g.rng)
	g.debug.Debug("new game",
		zap.Int64("seed", cfg.Seed),
		zap.Int("starting_player", g.state.StartingPlayer))
	return g
}

// FromState resumes play from a pre-built state. The game takes ownership of s.
func FromState(cfg GameConfig, s *State, p0, p1 Player) *Game {
	g := newGame(cfg, p0, p1)
	g.state = s
	return g
}

func newGame(cfg GameConfig, p0, p1 Player) *Game {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	debug := cfg.Debug
	if debug == nil {
		debug = zap.NewNop()
	}
	maxTurns := cfg.MaxTurns
	if maxTurns == 0 {
		maxTurns = DefaultMaxTurns
	}
	maxTicks := cfg.MaxTicks
	if maxTicks == 0 {
		maxTicks = DefaultMaxTicks
	}
	return &Game{
		players:   [2]Player{p0, p1},
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		logger:    logger,
		debug:     debug,
		observers: cfg.Observers,
		maxTurns:  maxTurns,
		maxTicks:  maxTicks,
	}
}

// State returns an independent snapshot of the current state.
func (g *Game) State() *State {
	return g.state.Clone()
}

// SetState replaces the current state. The game takes ownership of s.
func (g *Game) SetState(s *State) {
	g.state = s
}

func (g *Game) IsGameOver() bool {
	return g.state.IsGameOver()
}

func (g *Game) Outcome() Outcome {
	return g.state.Outcome
}

// Ticks is the number of decision points played so far.
func (g *Game) Ticks() int {
	return g.ticks
}

func (g *Game) Logger() log.EventLogger {
	return g.logger
}

// Play runs until the game is decided or a cap is hit.
func (g *Game) Play() Outcome {
	for {
		if _, ok := g.PlayTick(); !ok {
			break
		}
	}
	g.debug.Debug("game over",
		zap.Stringer("outcome", g.state.Outcome),
		zap.Int("turns", g.state.TurnCount),
		zap.Int("ticks", g.ticks))
	return g.state.Outcome
}

// PlayTick advances exactly one decision point and returns the action
// applied. ok is false once the game is over.
func (g *Game) PlayTick() (chosen Action, ok bool) {
	s := g.state
	if s.IsGameOver() {
		return Action{}, false
	}
	if g.ticks >= g.maxTicks || s.TurnCount > g.maxTurns {
		s.Outcome = Outcome{Kind: OutcomeTimeout}
		g.logger.Log(log.NewTimeoutEvent(s.TurnCount, g.ticks))
		return Action{}, false
	}

	actor, actions := GenerateActions(s)
	g.ticks++
	turn := s.TurnCount

	var res Resolution
	switch len(actions) {
	case 0:
		chosen = Action{Actor: actor, Type: ActionEndTurn}
		g.debug.Debug("forced pass", zap.Int("actor", actor), zap.Int("pending", len(s.Pending)))
		g.logAction(chosen)
		res = ForcePass(g.rng, s)
	case 1:
		chosen = actions[0]
		g.logAction(chosen)
		res = ApplyAction(g.rng, s, chosen)
	default:
		chosen = g.players[actor].ChooseAction(g.rng, s, actions)
		g.logAction(chosen)
		res = ApplyAction(g.rng, s, chosen)
	}

	g.debug.Debug("tick",
		zap.Int("tick", g.ticks),
		zap.Int("turn", s.TurnCount),
		zap.Int("actor", actor),
		zap.Int("choices", len(actions)),
		zap.Stringer("action", chosen))

	g.logResolution(turn, res)
	for _, o := range g.observers {
		o.OnAction(actor, actions, chosen)
	}
	return chosen, true
}

// ApplyAction applies an action directly, bypassing the players.
func (g *Game) ApplyAction(a Action) {
	turn := g.state.TurnCount
	g.logAction(a)
	g.logResolution(turn, ApplyAction(g.rng, g.state, a))
}

// logAction records the action before it is applied, while the cards it
// names are still where the action found them.
func (g *Game) logAction(a Action) {
	s := g.state
	turn, p := s.TurnCount, a.Actor
	switch a.Type {
	case ActionPlace:
		phase := "Main"
		if turn == 0 {
			phase = "Setup"
		}
		g.logger.Log(log.NewPlaceEvent(turn, phase, p, a.Card.Name, a.Slot))
	case ActionEvolve:
		g.logger.Log(log.NewEvolveEvent(turn, p, s.InPlay[p][a.Slot].Name(), a.Card.Name))
	case ActionAttachEnergy:
		phase := "Main"
		if a.Stacked {
			phase = "Decision"
		}
		g.logger.Log(log.NewAttachEnergyEvent(turn, phase, p, s.InPlay[p][a.Slot].Name(), a.Energy.String(), max(a.Amount, 1)))
	case ActionPlayTrainer:
		g.logger.Log(log.NewPlayTrainerEvent(turn, p, a.Card.Name))
	case ActionRetreat:
		g.logger.Log(log.NewRetreatEvent(turn, p, s.Active(p).Name(), s.InPlay[p][a.Slot].Name()))
	case ActionUseAbility:
		pc := s.InPlay[p][a.Slot]
		g.logger.Log(log.NewAbilityEvent(turn, p, pc.Name(), pc.Card.Creature.Ability.Name))
	case ActionAttack:
		attacker := s.Active(p)
		defender := "nothing"
		if d := s.MaybeActive(Opponent(p)); d != nil {
			defender = d.Name()
		}
		g.logger.Log(log.NewAttackEvent(turn, p, attacker.Name(), attacker.Attacks()[a.Attack].Name, defender))
	case ActionPromote:
		g.logger.Log(log.NewPromoteEvent(turn, p, s.InPlay[p][a.Slot].Name()))
	case ActionEndTurn:
		if len(s.Pending) == 0 {
			g.logger.Log(log.NewEndTurnEvent(turn, p))
		}
	default:
		g.logger.Log(log.NewDecisionEvent(turn, p, a.String()))
	}
}

// logResolution records what an action caused. Knockouts and the result are
// tagged with turn, the turn the action was taken on, even when the action
// already started the next turn.
func (g *Game) logResolution(turn int, res Resolution) {
	s := g.state
	for _, ko := range res.Knockouts {
		g.logger.Log(log.NewKnockoutEvent(turn, ko.Player, ko.Card.Name, ko.Points))
	}
	if res.TurnsStarted > 0 && !s.IsGameOver() {
		g.logger.Log(log.NewTurnEvent(s.TurnCount, s.CurrentPlayer))
	}
	switch s.Outcome.Kind {
	case OutcomeWin:
		g.logger.Log(log.NewWinEvent(turn, s.Outcome.Winner, g.winReason()))
	case OutcomeTie:
		g.logger.Log(log.NewTieEvent(turn, "both players reached the point threshold"))
	}
}

func (g *Game) winReason() string {
	s := g.state
	w := s.Outcome.Winner
	if s.Points[w] >= PointsToWin {
		return fmt.Sprintf("%d points", s.Points[w])
	}
	return "opponent has no creature to promote"
}
