package game

import "math/rand"

// catalogue lists every card constructor. Each constructor registers the
// card's logic in r and returns the shared card definition.
var catalogue = []func(r *Registry) *Card{
	Sproutle, Bramblor, ThornvaleEx, Verdigrant, Mossling, Sporeling,
	Emberkit, BlazefangEx, Cinderhorn,
	Ripplet, Tidecrest, MaelstrixEx,
	Zappup, Voltaur, Dynamoth,
	Dozewisp, Mindrake,
	Rockmite,
	Smogling, Fumelord, Sludgemaw,
	ChronodonEx, Ironshell,
	NullChimera, PrismChimera, Brawlbeak,
	Mirrorwing, Quillfire,

	Potion, GardenerFern, TidecallerMira, HarborKeeper, VenomTamer, MesmerSabine,
	CommanderCyra, ElementalSwitch, WardenGlade, Lyre, ClinicNurse, RepelSpray,
	ProfessorsNotes, CaptureBall, QuickBoots, BossGio, RedNotice, TrailGuideLeaf,
	GiantCape, RockyHelmet, LeafCape, InflatableBoat,
	FossilKit, LuckyCharm,
}

func init() {
	for _, ctor := range catalogue {
		registerCard(ctor(Capabilities))
	}
}

// --- Builders ---

func basic(id, name string, element EnergyType, hp int, weakness EnergyType, retreat int, attacks ...Attack) *Card {
	return &Card{
		ID:   id,
		Name: name,
		Kind: CardKindCreature,
		Creature: &CreatureData{
			Element:     element,
			HP:          hp,
			Attacks:     attacks,
			Weakness:    weakness,
			RetreatCost: retreat,
		},
	}
}

func evolution(stage int, from string, c *Card) *Card {
	c.Creature.Stage = stage
	c.Creature.EvolvesFrom = from
	return c
}

func ex(c *Card) *Card {
	c.Creature.IsEx = true
	return c
}

func withAbility(name, text string, c *Card) *Card {
	c.Creature.Ability = &Ability{Name: name, Text: text}
	return c
}

func attack(name string, damage int, cost ...EnergyType) Attack {
	return Attack{Name: name, Cost: cost, Damage: damage}
}

func effectAttack(name string, damage int, effect string, cost ...EnergyType) Attack {
	return Attack{Name: name, Cost: cost, Damage: damage, Effect: effect}
}

func trainer(id, name string, kind TrainerType, text string) *Card {
	return &Card{
		ID:      id,
		Name:    name,
		Kind:    CardKindTrainer,
		Trainer: &TrainerData{Type: kind, Text: text},
	}
}

// --- Grass ---

// Sproutle: basic Grass.
func Sproutle(r *Registry) *Card {
	return basic("C1 001", "Sproutle", EnergyGrass, 60, EnergyFire, 1,
		attack("Leaf Tap", 20, EnergyGrass))
}

// Bramblor: stage 1 from Sproutle.
func Bramblor(r *Registry) *Card {
	return evolution(1, "Sproutle", basic("C1 002", "Bramblor", EnergyGrass, 90, EnergyFire, 2,
		attack("Razor Leaf", 60, EnergyGrass, EnergyColorless, EnergyColorless)))
}

// ThornvaleEx: stage 2 from Bramblor. Giant Bloom heals 30.
func ThornvaleEx(r *Registry) *Card {
	c := ex(evolution(2, "Bramblor", basic("C1 003", "Thornvale ex", EnergyGrass, 190, EnergyFire, 3,
		effectAttack("Giant Bloom", 100, "Heal 30 damage from this creature.",
			EnergyGrass, EnergyGrass, EnergyColorless, EnergyColorless))))
	r.RegisterAttack(c.ID, 0, healAttacker(30))
	return c
}

// Verdigrant: each Grass energy on your Grass creatures provides 2 Grass energy.
func Verdigrant(r *Registry) *Card {
	c := withAbility("Canopy Totem", "Each Grass Energy attached to your Grass creatures provides 2 Grass Energy.",
		basic("C1 004", "Verdigrant", EnergyGrass, 90, EnergyFire, 2,
			attack("Branch Slam", 50, EnergyGrass, EnergyColorless, EnergyColorless)))
	r.RegisterAbility(c.ID, AbilityLogic{
		Passive:        true,
		EnergyModifier: doubleElementEnergy(EnergyGrass),
	})
	return c
}

// Mossling: Multiply benches another Mossling from the deck.
func Mossling(r *Registry) *Card {
	c := basic("C1 005", "Mossling", EnergyGrass, 50, EnergyFire, 1,
		effectAttack("Multiply", 0, "Put a random Mossling from your deck onto your bench.", EnergyGrass))
	r.RegisterAttack(c.ID, 0, benchBasicFromDeck("Mossling"))
	return c
}

// Sporeling: Toxic Spores poisons.
func Sporeling(r *Registry) *Card {
	c := basic("C1 006", "Sporeling", EnergyGrass, 70, EnergyFire, 1,
		effectAttack("Toxic Spores", 10, "The defending creature is now poisoned.", EnergyGrass, EnergyColorless))
	r.RegisterAttack(c.ID, 0, inflictStatus(StatusPoisoned))
	return c
}

// --- Fire ---

func Emberkit(r *Registry) *Card {
	c := basic("C1 010", "Emberkit", EnergyFire, 60, EnergyWater, 1,
		effectAttack("Ember", 40, "Discard a Fire Energy from this creature.", EnergyFire, EnergyColorless))
	r.RegisterAttack(c.ID, 0, discardAttackerEnergy(EnergyFire))
	return c
}

// BlazefangEx: Crimson Storm cannot be used again during your next turn.
func BlazefangEx(r *Registry) *Card {
	c := ex(basic("C1 011", "Blazefang ex", EnergyFire, 140, EnergyWater, 2,
		effectAttack("Crimson Storm", 110, "During your next turn, this creature can't use Crimson Storm.",
			EnergyFire, EnergyFire, EnergyColorless)))
	r.RegisterAttack(c.ID, 0, attackerEffect(TimedEffect{Kind: EffectCannotUseAttack, Attack: 0}, 2))
	return c
}

func Cinderhorn(r *Registry) *Card {
	c := basic("C1 012", "Cinderhorn", EnergyFire, 100, EnergyWater, 2,
		effectAttack("Scorch Horn", 50, "Discard an Energy of your choice from the defending creature.",
			EnergyFire, EnergyColorless, EnergyColorless))
	r.RegisterAttack(c.ID, 0, chooseDefenderEnergyToDiscard())
	return c
}

// --- Water ---

func Ripplet(r *Registry) *Card {
	return basic("C1 020", "Ripplet", EnergyWater, 60, EnergyLightning, 1,
		attack("Water Gun", 20, EnergyWater))
}

func Tidecrest(r *Registry) *Card {
	return evolution(1, "Ripplet", basic("C1 021", "Tidecrest", EnergyWater, 100, EnergyLightning, 2,
		attack("Surf", 50, EnergyWater, EnergyColorless)))
}

// MaelstrixEx: Tidal Crush flips 3 coins for +20 each.
func MaelstrixEx(r *Registry) *Card {
	c := ex(evolution(2, "Tidecrest", basic("C1 022", "Maelstrix ex", EnergyWater, 180, EnergyLightning, 3,
		effectAttack("Tidal Crush", 80, "Flip 3 coins. This attack does 20 more damage for each heads.",
			EnergyWater, EnergyWater, EnergyColorless))))
	r.RegisterAttack(c.ID, 0, flipsForBonus(3, 20))
	return c
}

// --- Lightning ---

func Zappup(r *Registry) *Card {
	c := basic("C1 030", "Zappup", EnergyLightning, 60, EnergyFighting, 1,
		effectAttack("Static Nip", 10, "Flip a coin. If heads, the defending creature is now paralyzed.", EnergyLightning))
	r.RegisterAttack(c.ID, 0, flipToInflict(StatusParalyzed))
	return c
}

func Voltaur(r *Registry) *Card {
	c := evolution(1, "Zappup", basic("C1 031", "Voltaur", EnergyLightning, 90, EnergyFighting, 1,
		effectAttack("Arc Burst", 40, "This attack also does 10 damage to each of your opponent's benched creatures.",
			EnergyLightning, EnergyLightning)))
	r.RegisterAttack(c.ID, 0, damageOpponentBench(10))
	return c
}

// Dynamoth: Charge Up attaches a Lightning energy to itself while active.
func Dynamoth(r *Registry) *Card {
	c := withAbility("Charge Up", "Once during your turn, if this creature is active, attach a Lightning Energy from your Energy Zone to it.",
		basic("C1 032", "Dynamoth", EnergyLightning, 80, EnergyFighting, 1,
			attack("Thunder Wing", 70, EnergyLightning, EnergyLightning, EnergyColorless)))
	r.RegisterAbility(c.ID, AbilityLogic{
		CanUse: func(s *State, player, slot int) bool { return slot == 0 },
		Use: func(_ *rand.Rand, s *State, player, slot int) {
			s.InPlay[player][slot].AttachEnergy(EnergyLightning, 1)
		},
	})
	return c
}

// --- Psychic ---

func Dozewisp(r *Registry) *Card {
	c := basic("C1 040", "Dozewisp", EnergyPsychic, 60, EnergyDarkness, 1,
		effectAttack("Hypnotic Hum", 10, "The defending creature is now asleep.", EnergyPsychic))
	r.RegisterAttack(c.ID, 0, inflictStatus(StatusAsleep))
	return c
}

// Mindrake: Soothing Aura heals 20 from your active creature.
func Mindrake(r *Registry) *Card {
	c := withAbility("Soothing Aura", "Once during your turn, heal 20 damage from your active creature.",
		basic("C1 041", "Mindrake", EnergyPsychic, 90, EnergyDarkness, 2,
			attack("Psy Pulse", 40, EnergyPsychic, EnergyColorless)))
	r.RegisterAbility(c.ID, AbilityLogic{
		CanUse: func(s *State, player, slot int) bool {
			active := s.MaybeActive(player)
			return active != nil && active.IsDamaged()
		},
		Use: func(_ *rand.Rand, s *State, player, slot int) {
			s.Active(player).Heal(20)
		},
	})
	return c
}

// --- Fighting ---

func Rockmite(r *Registry) *Card {
	return basic("C1 050", "Rockmite", EnergyFighting, 80, EnergyGrass, 2,
		attack("Rock Throw", 40, EnergyFighting, EnergyColorless))
}

// --- Darkness ---

func Smogling(r *Registry) *Card {
	return basic("C1 060", "Smogling", EnergyDarkness, 70, EnergyFighting, 1,
		attack("Gas Puff", 20, EnergyDarkness))
}

func Fumelord(r *Registry) *Card {
	c := evolution(1, "Smogling", basic("C1 061", "Fumelord", EnergyDarkness, 110, EnergyFighting, 2,
		effectAttack("Toxic Cloud", 30, "The defending creature is now poisoned.", EnergyDarkness, EnergyColorless)))
	r.RegisterAttack(c.ID, 0, inflictStatus(StatusPoisoned))
	return c
}

func Sludgemaw(r *Registry) *Card {
	return basic("C1 062", "Sludgemaw", EnergyDarkness, 100, EnergyFighting, 3,
		attack("Sludge Bomb", 70, EnergyDarkness, EnergyDarkness, EnergyColorless))
}

// --- Metal ---

// ChronodonEx: Temporal Turbo attaches Metal energy to 2 different benched creatures.
func ChronodonEx(r *Registry) *Card {
	c := ex(basic("C1 070", "Chronodon ex", EnergyMetal, 150, EnergyFire, 2,
		effectAttack("Temporal Turbo", 30, "Take 2 Metal Energy from your Energy Zone and attach 1 to each of 2 of your benched creatures.",
			EnergyMetal, EnergyMetal)))
	r.RegisterAttack(c.ID, 0, attachToBench(EnergyMetal, 2))
	return c
}

func Ironshell(r *Registry) *Card {
	c := basic("C1 071", "Ironshell", EnergyMetal, 110, EnergyFire, 2,
		effectAttack("Iron Guard", 30, "During your opponent's next turn, this creature takes 20 less damage from attacks.",
			EnergyMetal, EnergyColorless))
	r.RegisterAttack(c.ID, 0, attackerEffect(TimedEffect{Kind: EffectReduceDamage, Amount: 20}, 1))
	return c
}

// --- Colorless ---

func NullChimera(r *Registry) *Card {
	return basic("C1 080", "Null Chimera", EnergyColorless, 100, EnergyFighting, 2,
		attack("Assault", 40, EnergyColorless, EnergyColorless))
}

func PrismChimera(r *Registry) *Card {
	return evolution(1, "Null Chimera", basic("C1 081", "Prism Chimera", EnergyColorless, 140, EnergyFighting, 2,
		attack("Prism Strike", 90, EnergyColorless, EnergyColorless, EnergyColorless)))
}

// Brawlbeak: Menacing Screech stops the defender from attacking next turn.
func Brawlbeak(r *Registry) *Card {
	c := basic("C1 082", "Brawlbeak", EnergyColorless, 70, EnergyLightning, 1,
		attack("Peck", 10, EnergyColorless),
		effectAttack("Menacing Screech", 20, "During your opponent's next turn, the defending creature can't attack.",
			EnergyColorless, EnergyColorless))
	r.RegisterAttack(c.ID, 1, defenderEffect(TimedEffect{Kind: EffectCannotAttack}, 1))
	return c
}

// --- Not yet implemented ---

// Mirrorwing: Mirror Veil has no implementation.
func Mirrorwing(r *Registry) *Card {
	return withAbility("Mirror Veil", "Prevent all effects of attacks done to this creature.",
		basic("C1 090", "Mirrorwing", EnergyPsychic, 80, EnergyDarkness, 1,
			attack("Reflect Beam", 40, EnergyPsychic, EnergyColorless)))
}

// Quillfire: Needle Storm has no implementation.
func Quillfire(r *Registry) *Card {
	return basic("C1 091", "Quillfire", EnergyFire, 70, EnergyWater, 1,
		effectAttack("Needle Storm", 20, "Flip 4 coins. This attack does 20 damage for each heads to 1 of your opponent's creatures.",
			EnergyFire))
}

// --- Items and Supporters ---

// Potion: heal 20 from one of your creatures.
func Potion(r *Registry) *Card {
	c := trainer("C1 201", "Potion", TrainerItem, "Heal 20 damage from 1 of your creatures.")
	r.RegisterTrainer(c.ID, TrainerLogic{
		CanPlay: hasDamagedCreature,
		Play: func(_ *rand.Rand, s *State, player int) {
			s.Enqueue(PendingDecision{Kind: DecisionHeal, Actor: player, Amount: 20})
		},
	})
	return c
}

// GardenerFern: heal 50 from one of your Grass creatures.
func GardenerFern(r *Registry) *Card {
	c := trainer("C1 202", "Gardener Fern", TrainerSupporter, "Heal 50 damage from 1 of your Grass creatures.")
	r.RegisterTrainer(c.ID, TrainerLogic{
		CanPlay: hasDamagedOfElement(EnergyGrass),
		Play: func(_ *rand.Rand, s *State, player int) {
			s.Enqueue(PendingDecision{Kind: DecisionHeal, Actor: player, Amount: 50, Element: EnergyGrass})
		},
	})
	return c
}

// TidecallerMira: flip until tails, attach that many Water energy to a Water creature.
func TidecallerMira(r *Registry) *Card {
	c := trainer("C1 203", "Tidecaller Mira", TrainerSupporter,
		"Choose 1 of your Water creatures. Flip a coin until you get tails. For each heads, attach a Water Energy from your Energy Zone to it.")
	r.RegisterTrainer(c.ID, TrainerLogic{
		CanPlay: func(s *State) bool { return s.NumInPlayOfType(s.CurrentPlayer, EnergyWater) > 0 },
		Play: func(rng *rand.Rand, s *State, player int) {
			heads := flipUntilTails(rng)
			if heads == 0 {
				return
			}
			s.Enqueue(PendingDecision{
				Kind: DecisionAttachEnergy, Actor: player,
				Energy: EnergyWater, Amount: heads, Remaining: 1, Element: EnergyWater,
			})
		},
	})
	return c
}

// HarborKeeper: heal 40 from each creature with Water energy attached.
func HarborKeeper(r *Registry) *Card {
	c := trainer("C1 204", "Harbor Keeper", TrainerSupporter,
		"Heal 40 damage from each of your creatures that has any Water Energy attached.")
	r.RegisterTrainer(c.ID, TrainerLogic{
		CanPlay: func(s *State) bool {
			return anyInPlay(s, func(pc *PlayedCard) bool { return pc.IsDamaged() && pc.HasEnergy(EnergyWater) })
		},
		Play: func(_ *rand.Rand, s *State, player int) {
			for _, sl := range s.EnumerateInPlay(player) {
				if sl.Card.HasEnergy(EnergyWater) {
					sl.Card.Heal(40)
				}
			}
		},
	})
	return c
}

// VenomTamer: return an active Fumelord or Sludgemaw to hand, then promote.
func VenomTamer(r *Registry) *Card {
	c := trainer("C1 205", "Venom Tamer", TrainerSupporter,
		"Put your Fumelord or Sludgemaw in the active spot into your hand.")
	activeOK := activeNamed("Fumelord", "Sludgemaw")
	r.RegisterTrainer(c.ID, TrainerLogic{
		CanPlay: func(s *State) bool {
			return activeOK(s) && len(s.EnumerateBench(s.CurrentPlayer)) > 0
		},
		Play: func(_ *rand.Rand, s *State, player int) {
			s.returnActiveToHand(player)
			s.Enqueue(PendingDecision{Kind: DecisionPromote, Actor: player})
		},
	})
	return c
}

// MesmerSabine: the opponent switches their active with a benched creature of their choice.
func MesmerSabine(r *Registry) *Card {
	c := trainer("C1 206", "Mesmer Sabine", TrainerSupporter,
		"Switch out your opponent's active creature to the bench. Your opponent chooses the new active creature.")
	r.RegisterTrainer(c.ID, TrainerLogic{
		CanPlay: opponentHasBench,
		Play: func(_ *rand.Rand, s *State, player int) {
			opp := Opponent(player)
			s.Enqueue(PendingDecision{Kind: DecisionSwitch, Actor: opp, Owner: opp})
		},
	})
	return c
}

// CommanderCyra: switch in one of the opponent's damaged benched creatures.
func CommanderCyra(r *Registry) *Card {
	c := trainer("C1 207", "Commander Cyra", TrainerSupporter,
		"Switch in 1 of your opponent's benched creatures that has damage on it to the active spot.")
	r.RegisterTrainer(c.ID, TrainerLogic{
		CanPlay: opponentHasDamagedBench,
		Play: func(_ *rand.Rand, s *State, player int) {
			s.Enqueue(PendingDecision{Kind: DecisionSwitch, Actor: player, Owner: Opponent(player), DamagedOnly: true})
		},
	})
	return c
}

// ElementalSwitch: move a Fire, Water or Lightning energy from the bench to the active.
func ElementalSwitch(r *Registry) *Card {
	allowed := []EnergyType{EnergyFire, EnergyWater, EnergyLightning}
	c := trainer("C1 208", "Elemental Switch", TrainerItem,
		"Move a Fire, Water, or Lightning Energy from 1 of your benched creatures to your active creature.")
	r.RegisterTrainer(c.ID, TrainerLogic{
		CanPlay: benchHasEnergyOf(allowed...),
		Play: func(_ *rand.Rand, s *State, player int) {
			s.Enqueue(PendingDecision{Kind: DecisionMoveEnergy, Actor: player, Allowed: allowed})
		},
	})
	return c
}

// WardenGlade: search the deck for a Null Chimera or Prism Chimera.
func WardenGlade(r *Registry) *Card {
	c := trainer("C1 209", "Warden Glade", TrainerSupporter,
		"Put a random Null Chimera or Prism Chimera from your deck into your hand.")
	r.RegisterTrainer(c.ID, TrainerLogic{
		CanPlay: lineageNotExhausted(MaxCopies, "Null Chimera", "Prism Chimera"),
		Play: func(rng *rand.Rand, s *State, player int) {
			searchDeck(rng, s, player, func(c *Card) bool {
				return c.Name == "Null Chimera" || c.Name == "Prism Chimera"
			})
		},
	})
	return c
}

// Lyre: switch your damaged active with a benched creature.
func Lyre(r *Registry) *Card {
	c := trainer("C1 210", "Lyre", TrainerSupporter,
		"If your active creature has damage on it, switch it with 1 of your benched creatures.")
	r.RegisterTrainer(c.ID, TrainerLogic{
		CanPlay: func(s *State) bool {
			active := s.MaybeActive(s.CurrentPlayer)
			return active != nil && active.IsDamaged() && len(s.EnumerateBench(s.CurrentPlayer)) > 0
		},
		Play: func(_ *rand.Rand, s *State, player int) {
			s.Enqueue(PendingDecision{Kind: DecisionSwitch, Actor: player, Owner: player})
		},
	})
	return c
}

// ClinicNurse: heal 30 and cure every status from one creature.
func ClinicNurse(r *Registry) *Card {
	c := trainer("C1 211", "Clinic Nurse", TrainerSupporter,
		"Heal 30 damage from 1 of your creatures, and it recovers from all special conditions.")
	r.RegisterTrainer(c.ID, TrainerLogic{
		CanPlay: func(s *State) bool {
			return anyInPlay(s, func(pc *PlayedCard) bool { return pc.IsDamaged() || pc.HasStatus() })
		},
		Play: func(_ *rand.Rand, s *State, player int) {
			s.Enqueue(PendingDecision{Kind: DecisionHeal, Actor: player, Amount: 30, Cure: true})
		},
	})
	return c
}

// RepelSpray: the opponent switches out a basic active creature.
func RepelSpray(r *Registry) *Card {
	c := trainer("C1 212", "Repel Spray", TrainerItem,
		"Switch out your opponent's active basic creature to the bench. Your opponent chooses the new active creature.")
	r.RegisterTrainer(c.ID, TrainerLogic{
		CanPlay: func(s *State) bool {
			active := s.MaybeActive(Opponent(s.CurrentPlayer))
			return active != nil && active.Card.IsBasic() && opponentHasBench(s)
		},
		Play: func(_ *rand.Rand, s *State, player int) {
			opp := Opponent(player)
			s.Enqueue(PendingDecision{Kind: DecisionSwitch, Actor: opp, Owner: opp})
		},
	})
	return c
}

func ProfessorsNotes(r *Registry) *Card {
	c := trainer("C1 213", "Professor's Notes", TrainerSupporter, "Draw 2 cards.")
	r.RegisterTrainer(c.ID, TrainerLogic{
		CanPlay: alwaysPlayable,
		Play: func(_ *rand.Rand, s *State, player int) {
			drawCards(s, player, 2)
		},
	})
	return c
}

func CaptureBall(r *Registry) *Card {
	c := trainer("C1 214", "Capture Ball", TrainerItem, "Put a random basic creature from your deck into your hand.")
	r.RegisterTrainer(c.ID, TrainerLogic{
		CanPlay: alwaysPlayable,
		Play: func(rng *rand.Rand, s *State, player int) {
			searchDeck(rng, s, player, (*Card).IsBasic)
		},
	})
	return c
}

func QuickBoots(r *Registry) *Card {
	c := trainer("C1 215", "Quick Boots", TrainerItem, "During this turn, the retreat cost of your active creature is 1 less.")
	r.RegisterTrainer(c.ID, TrainerLogic{
		CanPlay: alwaysPlayable,
		Play: func(_ *rand.Rand, s *State, player int) {
			s.AddPlayerEffect(player, TimedEffect{Kind: EffectReduceRetreat, Amount: 1}, 0)
		},
	})
	return c
}

func BossGio(r *Registry) *Card {
	c := trainer("C1 216", "Boss Gio", TrainerSupporter,
		"During this turn, attacks used by your creatures do 10 more damage to your opponent's active creature.")
	r.RegisterTrainer(c.ID, TrainerLogic{
		CanPlay: alwaysPlayable,
		Play: func(_ *rand.Rand, s *State, player int) {
			s.AddPlayerEffect(player, TimedEffect{Kind: EffectIncreaseDamage, Amount: 10}, 0)
		},
	})
	return c
}

func RedNotice(r *Registry) *Card {
	c := trainer("C1 217", "Red Notice", TrainerItem, "Your opponent shuffles their hand into their deck and draws 3 cards.")
	r.RegisterTrainer(c.ID, TrainerLogic{
		CanPlay: alwaysPlayable,
		Play: func(rng *rand.Rand, s *State, player int) {
			shuffleHandIntoDeck(rng, s, Opponent(player), 3)
		},
	})
	return c
}

func TrailGuideLeaf(r *Registry) *Card {
	c := trainer("C1 218", "Trail Guide Leaf", TrainerSupporter, "During this turn, the retreat cost of your active creature is 2 less.")
	r.RegisterTrainer(c.ID, TrainerLogic{
		CanPlay: alwaysPlayable,
		Play: func(_ *rand.Rand, s *State, player int) {
			s.AddPlayerEffect(player, TimedEffect{Kind: EffectReduceRetreat, Amount: 2}, 0)
		},
	})
	return c
}

// --- Tools ---

func GiantCape(r *Registry) *Card {
	c := trainer("C1 250", "Giant Cape", TrainerTool, "The creature this card is attached to gets +20 HP.")
	r.RegisterTool(c.ID, ToolLogic{HPBonus: 20})
	return c
}

func RockyHelmet(r *Registry) *Card {
	c := trainer("C1 251", "Rocky Helmet", TrainerTool,
		"If the creature this card is attached to is in the active spot and is damaged by an attack, do 20 damage to the attacking creature.")
	r.RegisterTool(c.ID, ToolLogic{Retaliation: 20})
	return c
}

func LeafCape(r *Registry) *Card {
	c := trainer("C1 252", "Leaf Cape", TrainerTool, "The Grass creature this card is attached to gets +30 HP.")
	r.RegisterTool(c.ID, ToolLogic{
		CanAttach: func(pc *PlayedCard) bool { return pc.Element() == EnergyGrass },
		HPBonus:   30,
	})
	return c
}

func InflatableBoat(r *Registry) *Card {
	c := trainer("C1 253", "Inflatable Boat", TrainerTool, "The Water creature this card is attached to has a retreat cost 1 less.")
	r.RegisterTool(c.ID, ToolLogic{
		CanAttach:       func(pc *PlayedCard) bool { return pc.Element() == EnergyWater },
		RetreatDiscount: 1,
	})
	return c
}

// FossilKit has no implementation.
func FossilKit(r *Registry) *Card {
	return trainer("C1 290", "Fossil Kit", TrainerItem, "Play this card as if it were a 40-HP basic Colorless creature.")
}

// LuckyCharm has no implementation.
func LuckyCharm(r *Registry) *Card {
	return trainer("C1 291", "Lucky Charm", TrainerTool, "If the creature this card is attached to is knocked out, flip a coin.")
}
