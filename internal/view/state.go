package view

import (
	"github.com/peterkuimelis/tcgsim/internal/game"
	"github.com/peterkuimelis/tcgsim/internal/log"
)

// BuildStateView creates a StateView from the perspective of the given player.
// The opponent's hand is reduced to a count.
func BuildStateView(s *game.State, player int) *StateView {
	me := player
	opp := game.Opponent(me)

	sv := &StateView{
		You:        buildPlayerView(s, me, true),
		Opponent:   buildPlayerView(s, opp, false),
		Turn:       s.TurnCount,
		IsYourTurn: s.CurrentPlayer == me,
	}
	if s.CurrentEnergy != game.EnergyNone {
		sv.Energy = s.CurrentEnergy.String()
	}
	for _, d := range s.Pending {
		sv.Pending = append(sv.Pending, d.String())
	}
	if s.Outcome.Decided() {
		sv.Outcome = s.Outcome.String()
	}
	return sv
}

func buildPlayerView(s *game.State, player int, isOwner bool) PlayerView {
	pv := PlayerView{
		Points:       s.Points[player],
		HandCount:    len(s.Hands[player]),
		InPlay:       []CreatureView{},
		DiscardCount: len(s.DiscardPiles[player]),
		DeckCount:    len(s.Decks[player].Cards),
	}
	if isOwner {
		for _, c := range s.Hands[player] {
			pv.Hand = append(pv.Hand, c.Name)
		}
	}
	for _, sl := range s.EnumerateInPlay(player) {
		pv.InPlay = append(pv.InPlay, Creature(sl.Index, sl.Card))
	}
	return pv
}

// Creature creates a CreatureView for an occupied slot.
func Creature(slot int, pc *game.PlayedCard) CreatureView {
	cv := CreatureView{
		Slot:    slot,
		Name:    pc.Name(),
		HP:      pc.RemainingHP,
		TotalHP: pc.TotalHP,
	}
	for _, e := range pc.AttachedEnergy {
		cv.Energy = append(cv.Energy, e.String())
	}
	if pc.AttachedTool != nil {
		cv.Tool = pc.AttachedTool.Name
	}
	if pc.Poisoned {
		cv.Status = append(cv.Status, game.StatusPoisoned.String())
	}
	if pc.Paralyzed {
		cv.Status = append(cv.Status, game.StatusParalyzed.String())
	}
	if pc.Asleep {
		cv.Status = append(cv.Status, game.StatusAsleep.String())
	}
	return cv
}

// Actions numbers a legal action list for display.
func Actions(actions []game.Action) []ActionView {
	views := make([]ActionView, 0, len(actions))
	for i, a := range actions {
		views = append(views, ActionView{Index: i, Desc: a.String()})
	}
	return views
}

// Event converts a logged event.
func Event(e log.GameEvent) EventView {
	return EventView{
		Seq:     e.Seq,
		Turn:    e.Turn,
		Phase:   e.Phase,
		Player:  e.Player,
		Type:    e.Type.String(),
		Card:    e.Card,
		Details: e.Details,
	}
}

// Cards describes every known card with its implementation status.
func Cards() []CardView {
	var views []CardView
	for _, c := range game.AllCards() {
		views = append(views, CardView{
			ID:     c.ID,
			Name:   c.Name,
			Kind:   c.Kind.String(),
			Status: game.ImplementationStatus(c).String(),
		})
	}
	return views
}
