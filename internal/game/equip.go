package game

import "fmt"

// attachTool puts tool on the creature in slot and applies its HP bonus.
func (s *State) attachTool(player, slot int, tool *Card) {
	pc := s.InPlay[player][slot]
	if !canAttachTool(tool, pc) {
		panic(fmt.Sprintf("%s cannot be attached to %s", tool.Name, pc))
	}
	pc.AttachedTool = tool
	if bonus := toolHPBonus(pc); bonus > 0 {
		pc.TotalHP += bonus
		pc.RemainingHP += bonus
	}
}

// toolHPBonus is the extra max HP granted by pc's tool, if any.
func toolHPBonus(pc *PlayedCard) int {
	if !pc.HasTool() {
		return 0
	}
	tl, ok := Capabilities.Tool(pc.AttachedTool.ID)
	if !ok {
		return 0
	}
	return tl.HPBonus
}
