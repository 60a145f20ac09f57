package web

import (
	"github.com/peterkuimelis/tcgsim/internal/game"
)

// DeckInfo is the JSON representation of a deck for the /api/decks endpoint.
type DeckInfo struct {
	Number int      `json:"number"`
	Name   string   `json:"name"`
	Energy []string `json:"energy"`
	Cards  []string `json:"cards"`
	Valid  bool     `json:"valid"`
	Error  string   `json:"error,omitempty"`
}

func loadDeckInfos(path string) ([]DeckInfo, error) {
	decks, err := game.ParseDeckFile(path)
	if err != nil {
		return nil, err
	}
	infos := make([]DeckInfo, 0, len(decks))
	for i, d := range decks {
		di := DeckInfo{
			Number: i + 1,
			Name:   d.Name,
			Valid:  true,
		}
		for _, e := range d.Deck.EnergyTypes {
			di.Energy = append(di.Energy, e.String())
		}
		// Unique card names for display
		seen := make(map[string]bool)
		for _, c := range d.Deck.Cards {
			if !seen[c.Name] {
				di.Cards = append(di.Cards, c.Name)
				seen[c.Name] = true
			}
		}
		if err := game.ValidateDeck(d.Deck); err != nil {
			di.Valid = false
			di.Error = err.Error()
		}
		infos = append(infos, di)
	}
	return infos, nil
}
