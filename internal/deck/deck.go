package deck

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDeck is returned when a deck has no cards. Navigation is
	// only defined for decks with at least one card.
	ErrEmptyDeck = errors.New("deck has no cards")

	// ErrUnknownDeck is returned for a deck name other than terms or acronyms.
	ErrUnknownDeck = errors.New("unknown deck")
)

// Name identifies one of the two fixed decks.
type Name string

const (
	Terms    Name = "terms"
	Acronyms Name = "acronyms"
)

// Names returns every deck name in display order.
func Names() []Name {
	return []Name{Terms, Acronyms}
}

// ParseName converts a string into a deck Name.
func ParseName(s string) (Name, error) {
	n := Name(s)
	if !n.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDeck, s)
	}
	return n, nil
}

// Valid reports whether n is one of the known decks.
func (n Name) Valid() bool {
	return n == Terms || n == Acronyms
}

// DisplayName returns the label used on deck tabs.
func (n Name) DisplayName() string {
	switch n {
	case Terms:
		return "General Jargon"
	case Acronyms:
		return "Acronyms"
	default:
		return string(n)
	}
}

// Icon returns the glyph shown on the front of a card.
func (n Name) Icon() string {
	if n == Acronyms {
		return "🏢"
	}
	return "🤔"
}

// BackLabel is the heading shown above the back label of a card.
func (n Name) BackLabel() string {
	if n == Acronyms {
		return "Full Name"
	}
	return "Definition"
}

// Noun is the word used in the self-rating prompt.
func (n Name) Noun() string {
	if n == Acronyms {
		return "acronym"
	}
	return "term"
}

// Card is one learnable unit. Front holds the term or acronym, Back the
// definition or full name.
type Card struct {
	Front    string
	Back     string
	Category string
	Example  string
}

// Deck is a named, ordered, read-only sequence of cards.
type Deck struct {
	Name  Name
	Cards []Card
}

// Len returns the number of cards in the deck.
func (d Deck) Len() int {
	return len(d.Cards)
}

// Card returns the card at index i. The caller keeps i in range.
func (d Deck) Card(i int) Card {
	return d.Cards[i]
}
