package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventNewTurn EventType = iota
	EventPlace
	EventEvolve
	EventAttachEnergy
	EventPlayTrainer
	EventRetreat
	EventAbility
	EventAttack
	EventDecision // answer to a forced follow-up decision
	EventKnockout
	EventPromote
	EventEndTurn
	EventWin
	EventTie
	EventTimeout
)

func (e EventType) String() string {
	switch e {
	case EventNewTurn:
		return "NewTurn"
	case EventPlace:
		return "Place"
	case EventEvolve:
		return "Evolve"
	case EventAttachEnergy:
		return "AttachEnergy"
	case EventPlayTrainer:
		return "PlayTrainer"
	case EventRetreat:
		return "Retreat"
	case EventAbility:
		return "Ability"
	case EventAttack:
		return "Attack"
	case EventDecision:
		return "Decision"
	case EventKnockout:
		return "Knockout"
	case EventPromote:
		return "Promote"
	case EventEndTurn:
		return "EndTurn"
	case EventWin:
		return "Win"
	case EventTie:
		return "Tie"
	case EventTimeout:
		return "Timeout"
	default:
		return "Unknown"
	}
}

func (e EventType) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// GameEvent represents a single observable event in a game.
type GameEvent struct {
	Seq     int       `json:"seq"`     // monotonic sequence number
	Turn    int       `json:"turn"`    // 0 is the setup turn
	Phase   string    `json:"phase"`   // "Setup", "Draw", "Main", "Decision" or "Checkup"
	Player  int       `json:"player"`  // acting player (0 or 1)
	Type    EventType `json:"type"`    // event type
	Card    string    `json:"card"`    // card name (if applicable)
	Details string    `json:"details"` // human-readable detail string
}
