package game

import "math/rand"

// resolveAttack runs the attack protocol: every declared effect first, then
// the knockout sweep, then promotion requests. The turn ends once the
// pending-decision queue drains.
func resolveAttack(rng *rand.Rand, s *State, player, index int, res *Resolution) {
	attacker := s.Active(player)
	ctx := AttackContext{Player: player, Index: index, Attack: attacker.Attacks()[index]}

	if effect, ok := Capabilities.Attack(attacker.ID(), index); ok {
		effect(rng, s, ctx)
	} else {
		DamageDefender(s, ctx, ctx.Attack.Damage)
	}

	sweepKnockouts(s, res)
	s.EndTurnAfterPending = true
}

// AttackDamage computes the damage an attack with the given base deals to the
// opponent's active: damage boosts, weakness, then damage reduction.
func AttackDamage(s *State, player, base int) int {
	if base <= 0 {
		return 0
	}
	attacker := s.Active(player)
	defender := s.MaybeActive(Opponent(player))
	if defender == nil {
		return 0
	}
	dmg := base + sumEffect(s.PlayerEffects[player], EffectIncreaseDamage)
	if w := defender.Card.MustCreature().Weakness; w != EnergyNone && w == attacker.Element() {
		dmg += WeaknessBonus
	}
	dmg -= sumEffect(defender.effects, EffectReduceDamage)
	return max(dmg, 0)
}

// DamageDefender deals base attack damage to the opponent's active, including
// retaliation from the defender's tool.
func DamageDefender(s *State, ctx AttackContext, base int) {
	dealAttackDamage(s, ctx.Player, AttackDamage(s, ctx.Player, base))
}

func dealAttackDamage(s *State, player, dmg int) {
	defender := s.MaybeActive(Opponent(player))
	if defender == nil || dmg <= 0 {
		return
	}
	defender.ApplyDamage(dmg)
	if !defender.HasTool() {
		return
	}
	if tl, ok := Capabilities.Tool(defender.AttachedTool.ID); ok && tl.Retaliation > 0 {
		if attacker := s.MaybeActive(player); attacker != nil {
			attacker.ApplyDamage(tl.Retaliation)
		}
	}
}

// DamageBench deals flat damage to every creature on owner's bench.
func DamageBench(s *State, owner, amount int) {
	for _, sl := range s.EnumerateBench(owner) {
		sl.Card.ApplyDamage(amount)
	}
}

// sweepKnockouts removes every creature at zero HP, awards points, and either
// decides the game or enqueues promotions for players left without an active.
func sweepKnockouts(s *State, res *Resolution) {
	order := [2]int{Opponent(s.CurrentPlayer), s.CurrentPlayer}
	for _, p := range order {
		for slot, pc := range s.InPlay[p] {
			if pc != nil && pc.RemainingHP == 0 {
				res.Knockouts = append(res.Knockouts, s.knockout(p, slot))
			}
		}
	}

	won := [2]bool{s.Points[0] >= PointsToWin, s.Points[1] >= PointsToWin}
	if s.decide(won) {
		return
	}

	var stranded [2]bool
	for _, p := range order {
		if s.MaybeActive(p) == nil && !s.HasPendingPromotion(p) && len(s.EnumerateBench(p)) == 0 {
			stranded[p] = true
		}
	}
	// A stranded player loses, so their opponent wins.
	if s.decide([2]bool{stranded[1], stranded[0]}) {
		return
	}

	for _, p := range order {
		if s.MaybeActive(p) == nil && !s.HasPendingPromotion(p) {
			s.Enqueue(PendingDecision{Kind: DecisionPromote, Actor: p})
		}
	}
}

// decide sets the outcome from per-player win flags. Reports whether the game ended.
func (s *State) decide(won [2]bool) bool {
	switch {
	case won[0] && won[1]:
		s.Outcome = Outcome{Kind: OutcomeTie}
	case won[0]:
		s.Outcome = Outcome{Kind: OutcomeWin, Winner: 0}
	case won[1]:
		s.Outcome = Outcome{Kind: OutcomeWin, Winner: 1}
	default:
		return false
	}
	return true
}

// knockout moves the creature in slot, its lineage, its tool and its energy
// to the owner's discard and scores it for the opponent.
func (s *State) knockout(player, slot int) Knockout {
	pc := s.InPlay[player][slot]
	s.InPlay[player][slot] = nil
	s.DiscardPiles[player] = append(s.DiscardPiles[player], pc.CardsBehind...)
	s.DiscardPiles[player] = append(s.DiscardPiles[player], pc.Card)
	if pc.HasTool() {
		s.DiscardPiles[player] = append(s.DiscardPiles[player], pc.AttachedTool)
	}
	s.DiscardEnergies[player] = append(s.DiscardEnergies[player], pc.AttachedEnergy...)

	points := pc.Card.KnockoutPoints()
	s.Points[Opponent(player)] += points
	return Knockout{Player: player, Slot: slot, Card: pc.Card, Points: points}
}
