package game

import (
	"fmt"
	"strings"
)

// --- Enums ---

type EnergyType int

const (
	EnergyNone EnergyType = iota
	EnergyGrass
	EnergyFire
	EnergyWater
	EnergyLightning
	EnergyPsychic
	EnergyFighting
	EnergyDarkness
	EnergyMetal
	EnergyDragon
	EnergyColorless
)

func (e EnergyType) String() string {
	switch e {
	case EnergyGrass:
		return "Grass"
	case EnergyFire:
		return "Fire"
	case EnergyWater:
		return "Water"
	case EnergyLightning:
		return "Lightning"
	case EnergyPsychic:
		return "Psychic"
	case EnergyFighting:
		return "Fighting"
	case EnergyDarkness:
		return "Darkness"
	case EnergyMetal:
		return "Metal"
	case EnergyDragon:
		return "Dragon"
	case EnergyColorless:
		return "Colorless"
	default:
		return "None"
	}
}

// ParseEnergyType parses a case-insensitive energy name such as "grass".
func ParseEnergyType(s string) (EnergyType, error) {
	for e := EnergyGrass; e <= EnergyColorless; e++ {
		if strings.EqualFold(e.String(), strings.TrimSpace(s)) {
			return e, nil
		}
	}
	return EnergyNone, fmt.Errorf("unknown energy type %q", s)
}

type CardKind int

const (
	CardKindCreature CardKind = iota
	CardKindTrainer
)

func (k CardKind) String() string {
	if k == CardKindCreature {
		return "Creature"
	}
	return "Trainer"
}

type TrainerType int

const (
	TrainerItem TrainerType = iota
	TrainerSupporter
	TrainerTool
)

func (t TrainerType) String() string {
	switch t {
	case TrainerItem:
		return "Item"
	case TrainerSupporter:
		return "Supporter"
	case TrainerTool:
		return "Tool"
	default:
		return "Unknown"
	}
}

type StatusCondition int

const (
	StatusPoisoned StatusCondition = iota
	StatusParalyzed
	StatusAsleep
)

func (s StatusCondition) String() string {
	switch s {
	case StatusPoisoned:
		return "poisoned"
	case StatusParalyzed:
		return "paralyzed"
	case StatusAsleep:
		return "asleep"
	default:
		return "unknown"
	}
}

// --- Outcome ---

type OutcomeKind int

const (
	OutcomeUndecided OutcomeKind = iota
	OutcomeWin
	OutcomeTie
	OutcomeTimeout
)

// Outcome is the terminal result of a game. Winner is only meaningful for OutcomeWin.
type Outcome struct {
	Kind   OutcomeKind
	Winner int
}

func (o Outcome) Decided() bool {
	return o.Kind != OutcomeUndecided
}

func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeWin:
		return fmt.Sprintf("P%d wins", o.Winner+1)
	case OutcomeTie:
		return "Tie"
	case OutcomeTimeout:
		return "Timeout"
	default:
		return "Undecided"
	}
}

// --- Action types ---

type ActionType int

const (
	ActionPlace ActionType = iota
	ActionEvolve
	ActionAttachEnergy
	ActionPlayTrainer
	ActionRetreat
	ActionUseAbility
	ActionAttack
	ActionEndTurn

	// Answers to queued forced decisions.
	ActionPromote
	ActionHeal
	ActionSwitch
	ActionAttachTool
	ActionMoveEnergy
	ActionDiscardEnergy
)

func (a ActionType) String() string {
	switch a {
	case ActionPlace:
		return "Place"
	case ActionEvolve:
		return "Evolve"
	case ActionAttachEnergy:
		return "Attach Energy"
	case ActionPlayTrainer:
		return "Play"
	case ActionRetreat:
		return "Retreat"
	case ActionUseAbility:
		return "Use Ability"
	case ActionAttack:
		return "Attack"
	case ActionEndTurn:
		return "End Turn"
	case ActionPromote:
		return "Promote"
	case ActionHeal:
		return "Heal"
	case ActionSwitch:
		return "Switch"
	case ActionAttachTool:
		return "Attach Tool"
	case ActionMoveEnergy:
		return "Move Energy"
	case ActionDiscardEnergy:
		return "Discard Energy"
	default:
		return "Unknown"
	}
}

// Action is one legal move. Stacked marks an answer to the head of the
// pending-decision queue rather than a fresh top-level choice.
type Action struct {
	Actor   int
	Type    ActionType
	Stacked bool
	Card    *Card      // placed, evolved or played card
	Slot    int        // target in-play slot
	Attack  int        // attack index
	Energy  EnergyType // energy attached, moved or discarded
	Amount  int        // energy count for attachments
}

func (a Action) String() string {
	switch a.Type {
	case ActionPlace, ActionEvolve:
		return fmt.Sprintf("%s %s (slot %d)", a.Type, a.Card.Name, a.Slot)
	case ActionPlayTrainer:
		return fmt.Sprintf("Play %s", a.Card.Name)
	case ActionAttachEnergy:
		if a.Amount > 1 {
			return fmt.Sprintf("Attach %dx %s to slot %d", a.Amount, a.Energy, a.Slot)
		}
		return fmt.Sprintf("Attach %s to slot %d", a.Energy, a.Slot)
	case ActionAttack:
		return fmt.Sprintf("Attack #%d", a.Attack)
	case ActionRetreat, ActionPromote, ActionHeal, ActionSwitch, ActionUseAbility:
		return fmt.Sprintf("%s slot %d", a.Type, a.Slot)
	case ActionAttachTool:
		return fmt.Sprintf("Attach %s to slot %d", a.Card.Name, a.Slot)
	case ActionMoveEnergy:
		return fmt.Sprintf("Move %s from slot %d to active", a.Energy, a.Slot)
	case ActionDiscardEnergy:
		return fmt.Sprintf("Discard %s", a.Energy)
	default:
		return a.Type.String()
	}
}
