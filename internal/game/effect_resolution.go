package game

import "math/rand"

// Attack effect building blocks. Each returns an AttackEffect that deals the
// attack's printed damage (or a computed amount) and applies its side effect.

// withDamage deals the printed damage, then runs after.
func withDamage(after func(rng *rand.Rand, s *State, ctx AttackContext)) AttackEffect {
	return func(rng *rand.Rand, s *State, ctx AttackContext) {
		DamageDefender(s, ctx, ctx.Attack.Damage)
		after(rng, s, ctx)
	}
}

func inflictStatus(status StatusCondition) AttackEffect {
	return withDamage(func(_ *rand.Rand, s *State, ctx AttackContext) {
		if defender := s.MaybeActive(Opponent(ctx.Player)); defender != nil {
			defender.SetStatus(status, true)
		}
	})
}

func flipToInflict(status StatusCondition) AttackEffect {
	return withDamage(func(rng *rand.Rand, s *State, ctx AttackContext) {
		defender := s.MaybeActive(Opponent(ctx.Player))
		if defender != nil && flipHeads(rng) {
			defender.SetStatus(status, true)
		}
	})
}

func healAttacker(amount int) AttackEffect {
	return withDamage(func(_ *rand.Rand, s *State, ctx AttackContext) {
		s.Active(ctx.Player).Heal(amount)
	})
}

// attackerEffect puts a timed effect on the attacking creature.
func attackerEffect(effect TimedEffect, duration int) AttackEffect {
	return withDamage(func(_ *rand.Rand, s *State, ctx AttackContext) {
		s.Active(ctx.Player).AddEffect(effect, duration)
	})
}

// defenderEffect puts a timed effect on the defending creature.
func defenderEffect(effect TimedEffect, duration int) AttackEffect {
	return withDamage(func(_ *rand.Rand, s *State, ctx AttackContext) {
		if defender := s.MaybeActive(Opponent(ctx.Player)); defender != nil {
			defender.AddEffect(effect, duration)
		}
	})
}

// flipsForBonus flips n coins and adds per to the printed damage for each heads.
func flipsForBonus(n, per int) AttackEffect {
	return func(rng *rand.Rand, s *State, ctx AttackContext) {
		dmg := ctx.Attack.Damage
		for i := 0; i < n; i++ {
			if flipHeads(rng) {
				dmg += per
			}
		}
		DamageDefender(s, ctx, dmg)
	}
}

func discardAttackerEnergy(energy EnergyType) AttackEffect {
	return withDamage(func(_ *rand.Rand, s *State, ctx AttackContext) {
		if s.Active(ctx.Player).DiscardEnergy(energy) {
			s.DiscardEnergies[ctx.Player] = append(s.DiscardEnergies[ctx.Player], energy)
		}
	})
}

// chooseDefenderEnergyToDiscard lets the attacker pick an energy to remove
// from the defending creature.
func chooseDefenderEnergyToDiscard() AttackEffect {
	return withDamage(func(_ *rand.Rand, s *State, ctx AttackContext) {
		s.Enqueue(PendingDecision{
			Kind:  DecisionDiscardEnergy,
			Actor: ctx.Player,
			Owner: Opponent(ctx.Player),
			Slot:  0,
		})
	})
}

// attachToBench has the attacker choose n different benched creatures to
// receive one energy each from the energy zone.
func attachToBench(energy EnergyType, n int) AttackEffect {
	return withDamage(func(_ *rand.Rand, s *State, ctx AttackContext) {
		s.Enqueue(PendingDecision{
			Kind:      DecisionAttachEnergy,
			Actor:     ctx.Player,
			Energy:    energy,
			Amount:    1,
			Remaining: n,
			BenchOnly: true,
			Distinct:  true,
		})
	})
}

func damageOpponentBench(amount int) AttackEffect {
	return withDamage(func(_ *rand.Rand, s *State, ctx AttackContext) {
		DamageBench(s, Opponent(ctx.Player), amount)
	})
}

// benchBasicFromDeck puts a random basic with the given name from the deck
// onto the bench.
func benchBasicFromDeck(name string) AttackEffect {
	return withDamage(func(rng *rand.Rand, s *State, ctx AttackContext) {
		slot := s.FreeBenchSlot(ctx.Player)
		if slot < 0 {
			return
		}
		deck := &s.Decks[ctx.Player]
		var matches []int
		for i, c := range deck.Cards {
			if c.IsBasic() && c.Name == name {
				matches = append(matches, i)
			}
		}
		if len(matches) > 0 {
			card := deck.Remove(matches[rng.Intn(len(matches))])
			s.InPlay[ctx.Player][slot] = ToPlayedCard(card, true)
		}
		deck.Shuffle(rng)
	})
}
