package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- FuncLogger: forwards each event to a callback (streaming) ---

type FuncLogger struct {
	MemoryLogger
	fn func(GameEvent)
}

func NewFuncLogger(fn func(GameEvent)) *FuncLogger {
	return &FuncLogger{fn: fn}
}

func (l *FuncLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	l.fn(l.LastEvent())
}

// --- Formatting ---

// playerName returns "P1" or "P2" for display.
func playerName(p int) string {
	return fmt.Sprintf("P%d", p+1)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	return fmt.Sprintf("T%-3d %-9s| %s", e.Turn, e.Phase, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewTurnEvent(turn int, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Draw",
		Player:  player,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d (%s) ===", turn, playerName(player)),
	}
}

func NewPlaceEvent(turn int, phase string, player int, cardName string, slot int) GameEvent {
	where := "the bench"
	if slot == 0 {
		where = "the active spot"
	}
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventPlace,
		Card:    cardName,
		Details: fmt.Sprintf("%s places %s on %s", playerName(player), cardName, where),
	}
}

func NewEvolveEvent(turn int, player int, from, to string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Main",
		Player:  player,
		Type:    EventEvolve,
		Card:    to,
		Details: fmt.Sprintf("%s evolves %s into %s", playerName(player), from, to),
	}
}

func NewAttachEnergyEvent(turn int, phase string, player int, cardName string, energy string, amount int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Player:  player,
		Type:    EventAttachEnergy,
		Card:    cardName,
		Details: fmt.Sprintf("%s attaches %dx %s energy to %s", playerName(player), amount, energy, cardName),
	}
}

func NewPlayTrainerEvent(turn int, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Main",
		Player:  player,
		Type:    EventPlayTrainer,
		Card:    cardName,
		Details: fmt.Sprintf("%s plays %s", playerName(player), cardName),
	}
}

func NewRetreatEvent(turn int, player int, from, to string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Main",
		Player:  player,
		Type:    EventRetreat,
		Card:    from,
		Details: fmt.Sprintf("%s retreats %s for %s", playerName(player), from, to),
	}
}

func NewAbilityEvent(turn int, player int, cardName string, ability string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Main",
		Player:  player,
		Type:    EventAbility,
		Card:    cardName,
		Details: fmt.Sprintf("%s uses %s's %s", playerName(player), cardName, ability),
	}
}

func NewAttackEvent(turn int, player int, attacker, attack, defender string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Main",
		Player:  player,
		Type:    EventAttack,
		Card:    attacker,
		Details: fmt.Sprintf("%s's %s uses %s on %s", playerName(player), attacker, attack, defender),
	}
}

func NewDecisionEvent(turn int, player int, details string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Decision",
		Player:  player,
		Type:    EventDecision,
		Details: fmt.Sprintf("%s: %s", playerName(player), details),
	}
}

func NewKnockoutEvent(turn int, player int, cardName string, points int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Checkup",
		Player:  player,
		Type:    EventKnockout,
		Card:    cardName,
		Details: fmt.Sprintf("%s's %s is knocked out (+%d for %s)", playerName(player), cardName, points, playerName(1-player)),
	}
}

func NewPromoteEvent(turn int, player int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Decision",
		Player:  player,
		Type:    EventPromote,
		Card:    cardName,
		Details: fmt.Sprintf("%s promotes %s to the active spot", playerName(player), cardName),
	}
}

func NewEndTurnEvent(turn int, player int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Main",
		Player:  player,
		Type:    EventEndTurn,
		Details: fmt.Sprintf("%s ends the turn", playerName(player)),
	}
}

func NewWinEvent(turn int, winner int, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Checkup",
		Player:  winner,
		Type:    EventWin,
		Details: fmt.Sprintf("%s wins! (%s)", playerName(winner), reason),
	}
}

func NewTieEvent(turn int, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Checkup",
		Player:  -1,
		Type:    EventTie,
		Details: fmt.Sprintf("Tie (%s)", reason),
	}
}

func NewTimeoutEvent(turn int, ticks int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Checkup",
		Player:  -1,
		Type:    EventTimeout,
		Details: fmt.Sprintf("Game stopped without a winner after %d turns (%d decisions)", turn, ticks),
	}
}
