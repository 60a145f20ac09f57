package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeckFile represents the top-level YAML structure.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks"`
}

// DeckEntry represents a single deck in the YAML file.
type DeckEntry struct {
	Name   string      `yaml:"name"`
	Energy []string    `yaml:"energy"`
	Cards  []CardEntry `yaml:"cards"`
}

// CardEntry represents a card and its count in a deck. ID takes precedence
// over Name when both are given.
type CardEntry struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// NamedDeck is a built deck with its name from the deck file.
type NamedDeck struct {
	Name string
	Deck Deck
}

// ParseDecks parses deck YAML. Unknown cards or energy types are errors.
func ParseDecks(data []byte) ([]NamedDeck, error) {
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}
	decks := make([]NamedDeck, 0, len(df.Decks))
	for _, entry := range df.Decks {
		deck, err := entry.build()
		if err != nil {
			return nil, fmt.Errorf("deck %q: %w", entry.Name, err)
		}
		decks = append(decks, NamedDeck{Name: entry.Name, Deck: deck})
	}
	return decks, nil
}

func (e DeckEntry) build() (Deck, error) {
	var deck Deck
	for _, name := range e.Energy {
		energy, err := ParseEnergyType(name)
		if err != nil {
			return Deck{}, err
		}
		deck.EnergyTypes = append(deck.EnergyTypes, energy)
	}
	for _, ce := range e.Cards {
		card, err := ce.resolve()
		if err != nil {
			return Deck{}, err
		}
		for i := 0; i < ce.Count; i++ {
			deck.Cards = append(deck.Cards, card)
		}
	}
	return deck, nil
}

func (ce CardEntry) resolve() (*Card, error) {
	if ce.ID != "" {
		if card, ok := FindCard(ce.ID); ok {
			return card, nil
		}
		return nil, fmt.Errorf("unknown card id %q", ce.ID)
	}
	if card, ok := FindCardByName(ce.Name); ok {
		return card, nil
	}
	return nil, fmt.Errorf("unknown card %q", ce.Name)
}

// ParseDeckFile parses a YAML deck file.
func ParseDeckFile(path string) ([]NamedDeck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDecks(data)
}

// DeckByNumber returns the Nth deck (1-indexed) from the deck file.
func DeckByNumber(path string, n int) (NamedDeck, error) {
	decks, err := ParseDeckFile(path)
	if err != nil {
		return NamedDeck{}, err
	}
	if n < 1 || n > len(decks) {
		return NamedDeck{}, fmt.Errorf("deck %d not found (have %d decks)", n, len(decks))
	}
	return decks[n-1], nil
}

// DeckByName returns the deck with the given name from the deck file.
func DeckByName(path, name string) (NamedDeck, error) {
	decks, err := ParseDeckFile(path)
	if err != nil {
		return NamedDeck{}, err
	}
	for _, d := range decks {
		if d.Name == name {
			return d, nil
		}
	}
	return NamedDeck{}, fmt.Errorf("deck %q not found", name)
}

// ValidateDeck checks deck construction rules: DeckSize cards, at most
// MaxCopies of any name, at least one basic creature, and an energy zone.
func ValidateDeck(d Deck) error {
	var errs []error
	if len(d.Cards) != DeckSize {
		errs = append(errs, fmt.Errorf("deck has %d cards, want %d", len(d.Cards), DeckSize))
	}
	if len(d.EnergyTypes) == 0 {
		errs = append(errs, errors.New("deck has no energy types"))
	}
	counts := make(map[string]int)
	hasBasic := false
	for _, c := range d.Cards {
		counts[c.Name]++
		if counts[c.Name] == MaxCopies+1 {
			errs = append(errs, fmt.Errorf("more than %d copies of %s", MaxCopies, c.Name))
		}
		hasBasic = hasBasic || c.IsBasic()
	}
	if !hasBasic {
		errs = append(errs, errors.New("deck has no basic creature"))
	}
	return errors.Join(errs...)
}
