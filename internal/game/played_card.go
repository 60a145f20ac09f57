package game

import (
	"fmt"
	"slices"
)

// PlayedCard is a creature in play. It points at its immutable Card and
// carries the runtime fields that change while it is on the mat.
type PlayedCard struct {
	Card           *Card
	RemainingHP    int
	TotalHP        int
	AttachedEnergy []EnergyType
	AttachedTool   *Card
	PlayedThisTurn bool
	AbilityUsed    bool
	Poisoned       bool
	Paralyzed      bool
	Asleep         bool
	CardsBehind    []*Card // previous evolution stages, oldest first

	// Cleared when the creature moves to the bench.
	effects []TimedEffect
}

// NewPlayedCard wraps a creature card with explicit runtime values.
func NewPlayedCard(card *Card, remainingHP, totalHP int, energy []EnergyType, playedThisTurn bool, behind []*Card) *PlayedCard {
	card.MustCreature()
	pc := &PlayedCard{
		Card:           card,
		TotalHP:        totalHP,
		AttachedEnergy: slices.Clone(energy),
		PlayedThisTurn: playedThisTurn,
		CardsBehind:    slices.Clone(behind),
	}
	pc.RemainingHP = max(0, min(remainingHP, totalHP))
	return pc
}

// ToPlayedCard puts a creature card into play at full health.
func ToPlayedCard(card *Card, playedThisTurn bool) *PlayedCard {
	hp := card.MustCreature().HP
	return NewPlayedCard(card, hp, hp, nil, playedThisTurn, nil)
}

func (pc *PlayedCard) String() string {
	if pc == nil {
		return "(empty)"
	}
	return fmt.Sprintf("%s(%dhp,%d)", pc.Card.Name, pc.RemainingHP, len(pc.AttachedEnergy))
}

func (pc *PlayedCard) ID() string {
	return pc.Card.ID
}

func (pc *PlayedCard) Name() string {
	return pc.Card.Name
}

func (pc *PlayedCard) Element() EnergyType {
	return pc.Card.Element()
}

func (pc *PlayedCard) Attacks() []Attack {
	return pc.Card.Attacks()
}

// Heal restores HP, never above TotalHP.
func (pc *PlayedCard) Heal(amount int) {
	if amount <= 0 {
		return
	}
	pc.RemainingHP = min(pc.RemainingHP+amount, pc.TotalHP)
}

// ApplyDamage removes HP, never below zero.
func (pc *PlayedCard) ApplyDamage(damage int) {
	if damage <= 0 {
		return
	}
	pc.RemainingHP = max(pc.RemainingHP-damage, 0)
}

// AttachEnergy attaches amount copies of energy.
func (pc *PlayedCard) AttachEnergy(energy EnergyType, amount int) {
	for i := 0; i < amount; i++ {
		pc.AttachedEnergy = append(pc.AttachedEnergy, energy)
	}
}

// DiscardEnergy removes one energy of the given type. Reports whether one was found.
func (pc *PlayedCard) DiscardEnergy(energy EnergyType) bool {
	i := slices.Index(pc.AttachedEnergy, energy)
	if i < 0 {
		return false
	}
	pc.AttachedEnergy = slices.Delete(pc.AttachedEnergy, i, i+1)
	return true
}

func (pc *PlayedCard) HasEnergy(energy EnergyType) bool {
	return slices.Contains(pc.AttachedEnergy, energy)
}

func (pc *PlayedCard) SetStatus(status StatusCondition, on bool) {
	switch status {
	case StatusPoisoned:
		pc.Poisoned = on
	case StatusParalyzed:
		pc.Paralyzed = on
	case StatusAsleep:
		pc.Asleep = on
	}
}

func (pc *PlayedCard) IsDamaged() bool {
	return pc.RemainingHP < pc.TotalHP
}

func (pc *PlayedCard) HasStatus() bool {
	return pc.Poisoned || pc.Paralyzed || pc.Asleep
}

func (pc *PlayedCard) HasTool() bool {
	return pc.AttachedTool != nil
}

// EvolvedFrom reports whether name appears in the lineage behind this creature.
func (pc *PlayedCard) EvolvedFrom(name string) bool {
	for _, c := range pc.CardsBehind {
		if c.Name == name {
			return true
		}
	}
	return false
}

// AddEffect adds a timed effect. See TimedEffect for duration semantics.
func (pc *PlayedCard) AddEffect(effect TimedEffect, duration int) {
	effect.Remaining = duration
	pc.effects = append(pc.effects, effect)
}

// ActiveEffects returns a copy of the timed effects currently on this creature.
func (pc *PlayedCard) ActiveEffects() []TimedEffect {
	return slices.Clone(pc.effects)
}

func (pc *PlayedCard) HasEffect(kind EffectKind) bool {
	return hasEffect(pc.effects, kind)
}

// CanUseAttack reports whether a timed effect forbids the attack at index.
func (pc *PlayedCard) CanUseAttack(index int) bool {
	for _, e := range pc.effects {
		if e.Kind == EffectCannotAttack {
			return false
		}
		if e.Kind == EffectCannotUseAttack && e.Attack == index {
			return false
		}
	}
	return true
}

func (pc *PlayedCard) CureStatus() {
	pc.Poisoned = false
	pc.Paralyzed = false
	pc.Asleep = false
}

func (pc *PlayedCard) ClearStatusAndEffects() {
	pc.CureStatus()
	pc.effects = nil
}

// EndTurnMaintenance decays timed effects and resets per-turn flags.
// Status conditions are left alone.
func (pc *PlayedCard) EndTurnMaintenance() {
	pc.effects = decayEffects(pc.effects)
	pc.PlayedThisTurn = false
	pc.AbilityUsed = false
}

// Clone returns an independent copy. Cards are immutable and stay shared.
func (pc *PlayedCard) Clone() *PlayedCard {
	if pc == nil {
		return nil
	}
	cp := *pc
	cp.AttachedEnergy = slices.Clone(pc.AttachedEnergy)
	cp.CardsBehind = slices.Clone(pc.CardsBehind)
	cp.effects = slices.Clone(pc.effects)
	return &cp
}
