package game

// Status reports whether a card can be simulated without missing logic.
type Status int

const (
	StatusComplete Status = iota
	StatusCardNotFound
	StatusMissingAttack
	StatusMissingAbility
	StatusMissingTrainer
	StatusMissingTool
)

func (st Status) IsComplete() bool {
	return st == StatusComplete
}

func (st Status) String() string {
	switch st {
	case StatusComplete:
		return "Complete"
	case StatusCardNotFound:
		return "CardNotFound"
	case StatusMissingAttack:
		return "MissingAttack"
	case StatusMissingAbility:
		return "MissingAbility"
	case StatusMissingTrainer:
		return "MissingTrainer"
	case StatusMissingTool:
		return "MissingTool"
	default:
		return "Unknown"
	}
}

func (st Status) Description() string {
	switch st {
	case StatusComplete:
		return "Fully implemented"
	case StatusCardNotFound:
		return "Card ID not found"
	case StatusMissingAttack:
		return "Attack effect not implemented"
	case StatusMissingAbility:
		return "Ability not implemented"
	case StatusMissingTrainer:
		return "Trainer logic not implemented"
	case StatusMissingTool:
		return "Tool not implemented"
	default:
		return "Unknown status"
	}
}

// ImplementationStatus classifies a card against the capability registry.
func ImplementationStatus(card *Card) Status {
	if card == nil {
		return StatusCardNotFound
	}
	switch card.Kind {
	case CardKindCreature:
		for i, atk := range card.Attacks() {
			if atk.Effect == "" {
				continue
			}
			if _, ok := Capabilities.Attack(card.ID, i); !ok {
				return StatusMissingAttack
			}
		}
		if card.Creature.Ability != nil {
			if _, ok := Capabilities.Ability(card.ID); !ok {
				return StatusMissingAbility
			}
		}
	case CardKindTrainer:
		if card.IsTool() {
			if _, ok := Capabilities.Tool(card.ID); !ok {
				return StatusMissingTool
			}
		}
		if _, supported := TrainerActions(DefaultState(), card); !supported {
			return StatusMissingTrainer
		}
	}
	return StatusComplete
}

// ImplementationStatusByID classifies the card with the given identity.
func ImplementationStatusByID(id string) Status {
	card, ok := FindCard(id)
	if !ok {
		return StatusCardNotFound
	}
	return ImplementationStatus(card)
}

// SupportedCards filters ids down to the fully implemented ones, preserving order.
func SupportedCards(ids []string) []string {
	var out []string
	for _, id := range ids {
		if ImplementationStatusByID(id).IsComplete() {
			out = append(out, id)
		}
	}
	return out
}
