package game

import (
	"fmt"
	"math/rand"
)

// useAbility activates the ability of the creature in slot. Abilities can be
// used once per turn per creature.
func useAbility(rng *rand.Rand, s *State, player, slot int) {
	pc := s.InPlay[player][slot]
	logic, ok := Capabilities.Ability(pc.ID())
	if !ok || logic.Passive || logic.Use == nil {
		panic(fmt.Sprintf("%s has no activatable ability", pc.Name()))
	}
	if pc.AbilityUsed {
		panic(fmt.Sprintf("%s already used its ability this turn", pc.Name()))
	}
	pc.AbilityUsed = true
	logic.Use(rng, s, player, slot)
}

// doubleElementEnergy makes each energy of element attached to a creature of
// that element count twice.
func doubleElementEnergy(element EnergyType) func(*PlayedCard, []EnergyType) []EnergyType {
	return func(pc *PlayedCard, energy []EnergyType) []EnergyType {
		if pc.Element() != element {
			return energy
		}
		out := make([]EnergyType, 0, len(energy)*2)
		for _, e := range energy {
			out = append(out, e)
			if e == element {
				out = append(out, e)
			}
		}
		return out
	}
}
