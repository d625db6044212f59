package deck

import "fmt"

// Provider supplies the decks a viewer navigates. Decks returned by a
// Provider are never empty and are not mutated afterwards.
type Provider interface {
	Deck(name Name) (Deck, error)
}

// Set is an in-memory Provider holding both decks.
type Set struct {
	decks map[Name]Deck
}

var _ Provider = (*Set)(nil)

// NewSet builds a Set from the given decks. Every deck must have a known
// name and at least one card, and both terms and acronyms must be present.
func NewSet(decks ...Deck) (*Set, error) {
	s := &Set{decks: make(map[Name]Deck, len(decks))}
	for _, d := range decks {
		if !d.Name.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDeck, d.Name)
		}
		if _, dup := s.decks[d.Name]; dup {
			return nil, fmt.Errorf("duplicate deck %q", d.Name)
		}
		if d.Len() == 0 {
			return nil, fmt.Errorf("%s: %w", d.Name, ErrEmptyDeck)
		}
		cards := make([]Card, len(d.Cards))
		copy(cards, d.Cards)
		s.decks[d.Name] = Deck{Name: d.Name, Cards: cards}
	}
	for _, n := range Names() {
		if _, ok := s.decks[n]; !ok {
			return nil, fmt.Errorf("%s: %w", n, ErrEmptyDeck)
		}
	}
	return s, nil
}

// Deck returns the deck with the given name.
func (s *Set) Deck(name Name) (Deck, error) {
	d, ok := s.decks[name]
	if !ok {
		return Deck{}, fmt.Errorf("%w: %q", ErrUnknownDeck, name)
	}
	return d, nil
}

// Counts returns the number of cards in each deck.
func (s *Set) Counts() map[Name]int {
	counts := make(map[Name]int, len(s.decks))
	for n, d := range s.decks {
		counts[n] = d.Len()
	}
	return counts
}
