package game

// EffectKind categorizes timed effects.
type EffectKind int

const (
	EffectCannotAttack    EffectKind = iota // creature cannot attack at all
	EffectCannotUseAttack                   // creature cannot use the attack at index Attack
	EffectCannotRetreat
	EffectReduceDamage   // creature takes Amount less damage from attacks
	EffectIncreaseDamage // player's attacks deal Amount more damage to the opponent's active
	EffectReduceRetreat  // player's retreat cost is reduced by Amount
)

func (k EffectKind) String() string {
	switch k {
	case EffectCannotAttack:
		return "CannotAttack"
	case EffectCannotUseAttack:
		return "CannotUseAttack"
	case EffectCannotRetreat:
		return "CannotRetreat"
	case EffectReduceDamage:
		return "ReduceDamage"
	case EffectIncreaseDamage:
		return "IncreaseDamage"
	case EffectReduceRetreat:
		return "ReduceRetreat"
	default:
		return "Unknown"
	}
}

// TimedEffect is a modifier with a turn countdown. Remaining means:
//   - 0: only during this turn
//   - 1: through the opponent's next turn
//   - 2: through the owner's next turn
type TimedEffect struct {
	Kind      EffectKind
	Attack    int
	Amount    int
	Remaining int
}

// decayEffects removes effects at zero and decrements the rest. Filters in place.
func decayEffects(effects []TimedEffect) []TimedEffect {
	kept := effects[:0]
	for _, e := range effects {
		if e.Remaining > 0 {
			e.Remaining--
			kept = append(kept, e)
		}
	}
	return kept
}

// sumEffect adds up Amount for every effect of the given kind.
func sumEffect(effects []TimedEffect, kind EffectKind) int {
	total := 0
	for _, e := range effects {
		if e.Kind == kind {
			total += e.Amount
		}
	}
	return total
}

func hasEffect(effects []TimedEffect, kind EffectKind) bool {
	for _, e := range effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
