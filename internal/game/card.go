package game

import "fmt"

// --- Card definition (static, shared by pointer, never mutated) ---

// Card is a tagged union: exactly one of Creature or Trainer is set, matching Kind.
type Card struct {
	ID       string // stable identity, e.g. "C1 001"
	Name     string
	Kind     CardKind
	Creature *CreatureData
	Trainer  *TrainerData
}

type CreatureData struct {
	Element     EnergyType
	HP          int
	Stage       int    // 0 = basic
	EvolvesFrom string // lineage name of the previous stage
	Attacks     []Attack
	Ability     *Ability // declared ability marker (nil if none)
	Weakness    EnergyType
	RetreatCost int
	IsEx        bool
}

// Attack is a creature attack. A non-empty Effect declares that the attack
// does more than deal Damage and needs a registered implementation.
type Attack struct {
	Name   string
	Cost   []EnergyType
	Damage int
	Effect string
}

type Ability struct {
	Name string
	Text string
}

type TrainerData struct {
	Type TrainerType
	Text string
}

func (c *Card) String() string {
	return c.Name
}

func (c *Card) IsCreature() bool {
	return c.Kind == CardKindCreature
}

func (c *Card) IsTrainer() bool {
	return c.Kind == CardKindTrainer
}

// MustCreature returns the creature data. Panics on trainer cards.
func (c *Card) MustCreature() *CreatureData {
	if c.Kind != CardKindCreature || c.Creature == nil {
		panic(fmt.Sprintf("card %s (%s) is not a creature", c.ID, c.Name))
	}
	return c.Creature
}

// MustTrainer returns the trainer data. Panics on creature cards.
func (c *Card) MustTrainer() *TrainerData {
	if c.Kind != CardKindTrainer || c.Trainer == nil {
		panic(fmt.Sprintf("card %s (%s) is not a trainer", c.ID, c.Name))
	}
	return c.Trainer
}

func (c *Card) Attacks() []Attack {
	return c.MustCreature().Attacks
}

// IsBasic reports whether the card is a basic creature.
func (c *Card) IsBasic() bool {
	return c.IsCreature() && c.Creature.Stage == 0
}

// Element returns the creature's element, or EnergyNone for trainers.
func (c *Card) Element() EnergyType {
	if !c.IsCreature() {
		return EnergyNone
	}
	return c.Creature.Element
}

func (c *Card) IsSupporter() bool {
	return c.IsTrainer() && c.Trainer.Type == TrainerSupporter
}

func (c *Card) IsTool() bool {
	return c.IsTrainer() && c.Trainer.Type == TrainerTool
}

// KnockoutPoints is the number of points the opponent scores for knocking this card out.
func (c *Card) KnockoutPoints() int {
	if c.MustCreature().IsEx {
		return 2
	}
	return 1
}
