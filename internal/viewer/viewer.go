// Package viewer holds the interaction model of the flashcard viewer: which
// deck is active, which card is shown, whether it is flipped, and what
// happens when the learner rates a card.
//
// A Viewer is not safe for concurrent use. It is owned by the Bubble Tea
// update loop, which serialises every input event.
package viewer

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/owenfaulkner29/jargon/internal/deck"
)

// ErrNotFlipped is returned by Rate when the back of the card is not showing.
var ErrNotFlipped = errors.New("card must be flipped before rating")

// State is the transient view state of a Viewer.
type State struct {
	Deck    deck.Name
	Index   int
	Flipped bool
}

// Progress describes the position of the current card within its deck.
type Progress struct {
	Position int // 1-based
	Total    int
	Percent  int // rounded to the nearest whole percent
}

// Fraction returns Position/Total in [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Position) / float64(p.Total)
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithRand sets the random source used by Shuffle.
func WithRand(r *rand.Rand) Option {
	return func(v *Viewer) { v.rng = r }
}

// WithIndexReporter registers a reporter notified after every index change.
func WithIndexReporter(r IndexReporter) Option {
	return func(v *Viewer) { v.reporter = r }
}

// WithStartDeck selects the deck shown first. The default is deck.Terms.
func WithStartDeck(name deck.Name) Option {
	return func(v *Viewer) { v.state.Deck = name }
}

// Viewer navigates two decks of cards and records self-ratings.
type Viewer struct {
	decks    deck.Provider
	recorder Recorder
	reporter IndexReporter
	rng      *rand.Rand

	active deck.Deck
	state  State
}

// New creates a Viewer showing the first card of the start deck, unflipped.
// A nil recorder discards ratings.
func New(decks deck.Provider, recorder Recorder, opts ...Option) (*Viewer, error) {
	v := &Viewer{
		decks:    decks,
		recorder: recorder,
		state:    State{Deck: deck.Terms},
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.recorder == nil {
		v.recorder = RecorderFunc(func(string) {})
	}

	d, err := v.load(v.state.Deck)
	if err != nil {
		return nil, err
	}
	v.active = d
	return v, nil
}

func (v *Viewer) load(name deck.Name) (deck.Deck, error) {
	if !name.Valid() {
		return deck.Deck{}, fmt.Errorf("%w: %q", deck.ErrUnknownDeck, name)
	}
	d, err := v.decks.Deck(name)
	if err != nil {
		return deck.Deck{}, fmt.Errorf("load deck %s: %w", name, err)
	}
	if d.Len() == 0 {
		return deck.Deck{}, fmt.Errorf("%s: %w", name, deck.ErrEmptyDeck)
	}
	return d, nil
}

// State returns a copy of the current view state.
func (v *Viewer) State() State {
	return v.state
}

// Deck returns the active deck.
func (v *Viewer) Deck() deck.Deck {
	return v.active
}

// Current returns the card at the current index.
func (v *Viewer) Current() deck.Card {
	return v.active.Card(v.state.Index)
}

// SelectDeck makes name the active deck and shows its first card unflipped.
// Selecting the active deck again also resets to the first card.
func (v *Viewer) SelectDeck(name deck.Name) error {
	d, err := v.load(name)
	if err != nil {
		return err
	}
	v.active = d
	v.state.Deck = name
	v.state.Flipped = false
	v.setIndex(0)
	return nil
}

// Next advances to the following card, wrapping from the last to the first.
func (v *Viewer) Next() {
	n := v.active.Len()
	v.state.Flipped = false
	v.setIndex((v.state.Index + 1) % n)
}

// Prev goes back one card, wrapping from the first to the last.
func (v *Viewer) Prev() {
	n := v.active.Len()
	v.state.Flipped = false
	v.setIndex((v.state.Index - 1 + n) % n)
}

// Shuffle jumps to a uniformly random card. The current card may be drawn again.
func (v *Viewer) Shuffle() {
	n := v.active.Len()
	v.state.Flipped = false
	v.setIndex(v.intN(n))
}

// Flip toggles between the front and back of the current card.
func (v *Viewer) Flip() {
	v.state.Flipped = !v.state.Flipped
}

// Rate records how well the learner recalled the current card, then moves
// to the next card. The card must be flipped.
func (v *Viewer) Rate(d Difficulty) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, d)
	}
	if !v.state.Flipped {
		return ErrNotFlipped
	}

	ev := MasteryEvent{Deck: v.state.Deck, Index: v.state.Index, Difficulty: d}
	v.recorder.Record(ev.Key())
	v.Next()
	return nil
}

// Progress reports the position of the current card.
func (v *Viewer) Progress() Progress {
	n := v.active.Len()
	pos := v.state.Index + 1
	return Progress{
		Position: pos,
		Total:    n,
		Percent:  int(math.Round(float64(pos) / float64(n) * 100)),
	}
}

func (v *Viewer) setIndex(i int) {
	v.state.Index = i
	if v.reporter != nil {
		v.reporter.ReportIndex(v.state.Deck, i)
	}
}

func (v *Viewer) intN(n int) int {
	if v.rng != nil {
		return v.rng.IntN(n)
	}
	return rand.IntN(n)
}
