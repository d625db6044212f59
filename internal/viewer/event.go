package viewer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/owenfaulkner29/jargon/internal/deck"
)

var (
	// ErrInvalidDifficulty is returned for a rating other than easy, medium or hard.
	ErrInvalidDifficulty = errors.New("invalid difficulty")

	// ErrMalformedKey is returned when a mastery event key cannot be parsed.
	ErrMalformedKey = errors.New("malformed mastery event key")
)

// Difficulty is a self-reported recall rating.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties returns all ratings in the order they are offered.
func Difficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty converts a string into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	return d, nil
}

// Valid reports whether d is a known rating.
func (d Difficulty) Valid() bool {
	return d == Easy || d == Medium || d == Hard
}

// DisplayName returns the button label for d.
func (d Difficulty) DisplayName() string {
	switch d {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	default:
		return string(d)
	}
}

// MasteryEvent is a self-rating of one card.
type MasteryEvent struct {
	Deck       deck.Name
	Index      int
	Difficulty Difficulty
}

// Key renders the event as "{deck}-{index}-{difficulty}".
func (e MasteryEvent) Key() string {
	return fmt.Sprintf("%s-%d-%s", e.Deck, e.Index, e.Difficulty)
}

// ParseKey is the inverse of MasteryEvent.Key.
func ParseKey(key string) (MasteryEvent, error) {
	parts := strings.Split(key, "-")
	if len(parts) != 3 {
		return MasteryEvent{}, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}

	name, err := deck.ParseName(parts[0])
	if err != nil {
		return MasteryEvent{}, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}
	idx, err := strconv.Atoi(parts[1])
	if err != nil || idx < 0 {
		return MasteryEvent{}, fmt.Errorf("%w: bad index in %q", ErrMalformedKey, key)
	}
	d, err := ParseDifficulty(parts[2])
	if err != nil {
		return MasteryEvent{}, fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}

	return MasteryEvent{Deck: name, Index: idx, Difficulty: d}, nil
}

// Recorder receives mastery event keys. Record is fire-and-forget: the
// viewer neither waits on nor inspects the outcome.
type Recorder interface {
	Record(eventKey string)
}

// RecorderFunc adapts a plain function to Recorder.
type RecorderFunc func(eventKey string)

func (f RecorderFunc) Record(eventKey string) { f(eventKey) }

// IndexReporter is told about every change of the current card.
type IndexReporter interface {
	ReportIndex(name deck.Name, index int)
}
