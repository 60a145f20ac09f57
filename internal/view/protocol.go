package view

// JSON views shared by the MCP tools and the web API.

// EventView is a simplified game event for clients.
type EventView struct {
	Seq     int    `json:"seq"`
	Turn    int    `json:"turn"`
	Phase   string `json:"phase"`
	Player  int    `json:"player"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// ActionView is a numbered action choice.
type ActionView struct {
	Index int    `json:"index"`
	Desc  string `json:"desc"`
}

// StateView is the game state from one player's perspective.
type StateView struct {
	You        PlayerView `json:"you"`
	Opponent   PlayerView `json:"opponent"`
	Turn       int        `json:"turn"`
	IsYourTurn bool       `json:"is_your_turn"`
	Energy     string     `json:"energy,omitempty"` // energy zone energy still available this turn
	Pending    []string   `json:"pending,omitempty"`
	Outcome    string     `json:"outcome,omitempty"`
}

// PlayerView shows one side of the board.
type PlayerView struct {
	Points       int            `json:"points"`
	HandCount    int            `json:"hand_count"`
	Hand         []string       `json:"hand,omitempty"` // card names (only for "you")
	InPlay       []CreatureView `json:"in_play"`
	DiscardCount int            `json:"discard_count"`
	DeckCount    int            `json:"deck_count"`
}

// CreatureView describes a creature on the mat. Slot 0 is the active spot.
type CreatureView struct {
	Slot    int      `json:"slot"`
	Name    string   `json:"name"`
	HP      int      `json:"hp"`
	TotalHP int      `json:"total_hp"`
	Energy  []string `json:"energy,omitempty"`
	Tool    string   `json:"tool,omitempty"`
	Status  []string `json:"status,omitempty"`
}

// CardView describes a card in the catalogue.
type CardView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Status string `json:"status"`
}
