package game

import (
	"fmt"
	"slices"
)

// DecisionKind tags a queued forced decision.
type DecisionKind int

const (
	DecisionPromote DecisionKind = iota
	DecisionAttachEnergy
	DecisionHeal
	DecisionSwitch
	DecisionAttachTool
	DecisionMoveEnergy
	DecisionDiscardEnergy
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionPromote:
		return "Promote"
	case DecisionAttachEnergy:
		return "AttachEnergy"
	case DecisionHeal:
		return "Heal"
	case DecisionSwitch:
		return "Switch"
	case DecisionAttachTool:
		return "AttachTool"
	case DecisionMoveEnergy:
		return "MoveEnergy"
	case DecisionDiscardEnergy:
		return "DiscardEnergy"
	default:
		return "Unknown"
	}
}

// answerType is the action type that answers each decision kind.
func (k DecisionKind) answerType() ActionType {
	switch k {
	case DecisionPromote:
		return ActionPromote
	case DecisionAttachEnergy:
		return ActionAttachEnergy
	case DecisionHeal:
		return ActionHeal
	case DecisionSwitch:
		return ActionSwitch
	case DecisionAttachTool:
		return ActionAttachTool
	case DecisionMoveEnergy:
		return ActionMoveEnergy
	case DecisionDiscardEnergy:
		return ActionDiscardEnergy
	default:
		panic(fmt.Sprintf("no answer for decision kind %d", k))
	}
}

// PendingDecision is a forced follow-up choice. Only the fields relevant to
// Kind are set.
type PendingDecision struct {
	Kind  DecisionKind
	Actor int // the player who answers

	// Owner is the player whose creatures are targeted (Switch, DiscardEnergy).
	Owner int

	// AttachEnergy: Amount copies of Energy per answer, Remaining answers.
	Energy    EnergyType
	Amount    int
	Remaining int
	BenchOnly bool
	Distinct  bool  // each answer must pick a different slot
	Exclude   []int // slots already chosen

	// Element restricts targets to creatures of this element (EnergyNone = any).
	Element EnergyType

	// Heal
	Cure bool

	// Switch
	DamagedOnly bool

	// AttachTool
	Tool *Card

	// MoveEnergy: energy types that may be moved from the bench to the active.
	Allowed []EnergyType

	// DiscardEnergy
	Slot int
}

func (d PendingDecision) String() string {
	switch d.Kind {
	case DecisionAttachEnergy:
		return fmt.Sprintf("P%d %s %dx%s (%d left)", d.Actor+1, d.Kind, d.Amount, d.Energy, d.Remaining)
	case DecisionHeal:
		return fmt.Sprintf("P%d %s %d", d.Actor+1, d.Kind, d.Amount)
	case DecisionAttachTool:
		return fmt.Sprintf("P%d %s %s", d.Actor+1, d.Kind, d.Tool.Name)
	default:
		return fmt.Sprintf("P%d %s", d.Actor+1, d.Kind)
	}
}

func (d PendingDecision) clone() PendingDecision {
	cp := d
	cp.Exclude = slices.Clone(d.Exclude)
	cp.Allowed = slices.Clone(d.Allowed)
	return cp
}

// Enqueue appends a forced decision to the back of the queue.
func (s *State) Enqueue(d PendingDecision) {
	s.Pending = append(s.Pending, d)
}

// pushFront puts a decision back at the head of the queue.
func (s *State) pushFront(d PendingDecision) {
	s.Pending = slices.Insert(s.Pending, 0, d)
}

// popPending removes and returns the head of the queue.
func (s *State) popPending() PendingDecision {
	if len(s.Pending) == 0 {
		panic("pop from empty pending-decision queue")
	}
	head := s.Pending[0]
	s.Pending = slices.Delete(s.Pending, 0, 1)
	return head
}

// --- Answers ---

// decisionActions computes the narrow action set answering d.
func decisionActions(s *State, d PendingDecision) []Action {
	var actions []Action
	add := func(a Action) {
		a.Actor = d.Actor
		a.Type = d.Kind.answerType()
		a.Stacked = true
		actions = append(actions, a)
	}

	switch d.Kind {
	case DecisionPromote:
		for _, sl := range s.EnumerateBench(d.Actor) {
			add(Action{Slot: sl.Index})
		}

	case DecisionAttachEnergy:
		slots := s.EnumerateInPlay(d.Actor)
		if d.BenchOnly {
			slots = s.EnumerateBench(d.Actor)
		}
		for _, sl := range slots {
			if slices.Contains(d.Exclude, sl.Index) {
				continue
			}
			if d.Element != EnergyNone && sl.Card.Element() != d.Element {
				continue
			}
			add(Action{Slot: sl.Index, Energy: d.Energy, Amount: d.Amount})
		}

	case DecisionHeal:
		for _, sl := range s.EnumerateInPlay(d.Actor) {
			if d.Element != EnergyNone && sl.Card.Element() != d.Element {
				continue
			}
			if sl.Card.IsDamaged() || (d.Cure && sl.Card.HasStatus()) {
				add(Action{Slot: sl.Index, Amount: d.Amount})
			}
		}

	case DecisionSwitch:
		if s.MaybeActive(d.Owner) == nil {
			break
		}
		for _, sl := range s.EnumerateBench(d.Owner) {
			if d.DamagedOnly && !sl.Card.IsDamaged() {
				continue
			}
			add(Action{Slot: sl.Index})
		}

	case DecisionAttachTool:
		for _, sl := range s.EnumerateInPlay(d.Actor) {
			if canAttachTool(d.Tool, sl.Card) {
				add(Action{Slot: sl.Index, Card: d.Tool})
			}
		}

	case DecisionMoveEnergy:
		if s.MaybeActive(d.Actor) == nil {
			break
		}
		for _, sl := range s.EnumerateBench(d.Actor) {
			for _, e := range d.Allowed {
				if sl.Card.HasEnergy(e) {
					add(Action{Slot: sl.Index, Energy: e})
				}
			}
		}

	case DecisionDiscardEnergy:
		pc := s.InPlay[d.Owner][d.Slot]
		if pc == nil {
			break
		}
		var seen []EnergyType
		for _, e := range pc.AttachedEnergy {
			if slices.Contains(seen, e) {
				continue
			}
			seen = append(seen, e)
			add(Action{Slot: d.Slot, Energy: e})
		}
	}
	return actions
}

// resolveDecision applies the answer a to the popped head d.
func resolveDecision(s *State, d PendingDecision, a Action) {
	if a.Type != d.Kind.answerType() {
		panic(fmt.Sprintf("stacked action %s does not answer pending %s", a.Type, d.Kind))
	}

	switch d.Kind {
	case DecisionPromote:
		s.promote(d.Actor, a.Slot)

	case DecisionAttachEnergy:
		s.InPlay[d.Actor][a.Slot].AttachEnergy(d.Energy, d.Amount)
		if d.Remaining > 1 {
			next := d.clone()
			next.Remaining--
			if d.Distinct {
				next.Exclude = append(next.Exclude, a.Slot)
			}
			if len(decisionActions(s, next)) > 0 {
				s.pushFront(next)
			}
		}

	case DecisionHeal:
		pc := s.InPlay[d.Actor][a.Slot]
		pc.Heal(d.Amount)
		if d.Cure {
			pc.CureStatus()
		}

	case DecisionSwitch:
		s.switchActive(d.Owner, a.Slot)

	case DecisionAttachTool:
		s.attachTool(d.Actor, a.Slot, d.Tool)

	case DecisionMoveEnergy:
		if s.InPlay[d.Actor][a.Slot].DiscardEnergy(a.Energy) {
			s.Active(d.Actor).AttachEnergy(a.Energy, 1)
		}

	case DecisionDiscardEnergy:
		if s.InPlay[d.Owner][d.Slot].DiscardEnergy(a.Energy) {
			s.DiscardEnergies[d.Owner] = append(s.DiscardEnergies[d.Owner], a.Energy)
		}
	}
}

// promote moves the bench creature in slot into the empty active spot.
func (s *State) promote(player, slot int) {
	if s.InPlay[player][0] != nil {
		panic(fmt.Sprintf("promote for player %d with an occupied active spot", player))
	}
	s.InPlay[player][0] = s.InPlay[player][slot]
	s.InPlay[player][slot] = nil
}

// switchActive swaps player's active with the bench creature in slot.
// The creature leaving the active spot loses its status and timed effects.
func (s *State) switchActive(player, slot int) {
	active := s.Active(player)
	active.ClearStatusAndEffects()
	s.InPlay[player][0], s.InPlay[player][slot] = s.InPlay[player][slot], active
}
