package game

import (
	"fmt"
	"math/rand"
	"sort"
)

// AttackContext identifies the attack being resolved.
type AttackContext struct {
	Player int // attacking player
	Index  int
	Attack Attack
}

// AttackEffect resolves every declared effect of an attack, damage included.
// Knockouts are swept by the caller after it returns.
type AttackEffect func(rng *rand.Rand, s *State, ctx AttackContext)

// AbilityLogic implements a creature ability. Passive abilities are never
// offered as actions; they act through EnergyModifier or are read directly
// by the rules code.
type AbilityLogic struct {
	Passive bool
	CanUse  func(s *State, player, slot int) bool
	Use     func(rng *rand.Rand, s *State, player, slot int)

	// EnergyModifier rewrites the energy a creature of the ability holder's
	// side provides when paying attack costs.
	EnergyModifier func(pc *PlayedCard, energy []EnergyType) []EnergyType
}

// TrainerLogic implements an Item or Supporter. CanPlay must be a pure
// function of the state; it is evaluated for the current player.
type TrainerLogic struct {
	CanPlay func(s *State) bool
	Play    func(rng *rand.Rand, s *State, player int)
}

// ToolLogic implements a Tool. A nil CanAttach allows any creature.
type ToolLogic struct {
	CanAttach       func(pc *PlayedCard) bool
	HPBonus         int
	Retaliation     int // damage dealt to the attacker when the active bearer is damaged by an attack
	RetreatDiscount int
}

type AttackKey struct {
	CardID string
	Index  int
}

// Registry maps card identity to optional effect implementations.
// A missing entry is a normal result, reported through the ok return.
type Registry struct {
	attacks   map[AttackKey]AttackEffect
	abilities map[string]AbilityLogic
	trainers  map[string]TrainerLogic
	tools     map[string]ToolLogic
}

func NewRegistry() *Registry {
	return &Registry{
		attacks:   make(map[AttackKey]AttackEffect),
		abilities: make(map[string]AbilityLogic),
		trainers:  make(map[string]TrainerLogic),
		tools:     make(map[string]ToolLogic),
	}
}

// Capabilities is the registry used by move generation and resolution.
// It is filled once at init by the card catalogue and read-only afterwards.
var Capabilities = NewRegistry()

func (r *Registry) RegisterAttack(cardID string, index int, fn AttackEffect) {
	r.attacks[AttackKey{cardID, index}] = fn
}

func (r *Registry) RegisterAbility(cardID string, logic AbilityLogic) {
	r.abilities[cardID] = logic
}

func (r *Registry) RegisterTrainer(cardID string, logic TrainerLogic) {
	r.trainers[cardID] = logic
}

func (r *Registry) RegisterTool(cardID string, logic ToolLogic) {
	r.tools[cardID] = logic
}

func (r *Registry) Attack(cardID string, index int) (AttackEffect, bool) {
	fn, ok := r.attacks[AttackKey{cardID, index}]
	return fn, ok
}

func (r *Registry) Ability(cardID string) (AbilityLogic, bool) {
	logic, ok := r.abilities[cardID]
	return logic, ok
}

func (r *Registry) Trainer(cardID string) (TrainerLogic, bool) {
	logic, ok := r.trainers[cardID]
	return logic, ok
}

func (r *Registry) Tool(cardID string) (ToolLogic, bool) {
	logic, ok := r.tools[cardID]
	return logic, ok
}

// --- Card database ---

// cardDatabase maps card identity to its shared immutable definition.
var cardDatabase = map[string]*Card{}

func registerCard(card *Card) {
	if _, dup := cardDatabase[card.ID]; dup {
		panic(fmt.Sprintf("duplicate card id %q", card.ID))
	}
	cardDatabase[card.ID] = card
}

// LookupCard returns the card with the given identity.
// Panics if the card is not found.
func LookupCard(id string) *Card {
	card, ok := cardDatabase[id]
	if !ok {
		panic(fmt.Sprintf("card not found in database: %q", id))
	}
	return card
}

// FindCard is the checked variant of LookupCard.
func FindCard(id string) (*Card, bool) {
	card, ok := cardDatabase[id]
	return card, ok
}

// FindCardByName returns the first card (by identity order) with the given name.
func FindCardByName(name string) (*Card, bool) {
	for _, card := range AllCards() {
		if card.Name == name {
			return card, true
		}
	}
	return nil, false
}

// AllCards returns every known card sorted by identity.
func AllCards() []*Card {
	cards := make([]*Card, 0, len(cardDatabase))
	for _, c := range cardDatabase {
		cards = append(cards, c)
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })
	return cards
}
