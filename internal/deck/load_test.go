package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDecks(t *testing.T) {
	set, err := Default()
	require.NoError(t, err)

	for _, n := range Names() {
		d, err := set.Deck(n)
		require.NoError(t, err)
		assert.Equal(t, n, d.Name)
		assert.Greater(t, d.Len(), 0, "deck %s should not be empty", n)
		for i, c := range d.Cards {
			assert.NotEmpty(t, c.Front, "%s[%d] front", n, i)
			assert.NotEmpty(t, c.Back, "%s[%d] back", n, i)
		}
	}
}

func TestParseMapsFields(t *testing.T) {
	data := []byte(`
terms:
  - term: Deep dive
    definition: Detailed analysis.
    category: Analysis
    example: Let's deep dive.
acronyms:
  - acronym: KPI
    full_name: Key Performance Indicator
`)
	set, err := Parse(data)
	require.NoError(t, err)

	terms, err := set.Deck(Terms)
	require.NoError(t, err)
	require.Equal(t, 1, terms.Len())
	assert.Equal(t, Card{
		Front:    "Deep dive",
		Back:     "Detailed analysis.",
		Category: "Analysis",
		Example:  "Let's deep dive.",
	}, terms.Card(0))

	acronyms, err := set.Deck(Acronyms)
	require.NoError(t, err)
	assert.Equal(t, Card{Front: "KPI", Back: "Key Performance Indicator"}, acronyms.Card(0))

	assert.Equal(t, map[Name]int{Terms: 1, Acronyms: 1}, set.Counts())
}

func TestParseRejectsEmptyDeck(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty file", ""},
		{"no acronyms", "terms:\n  - term: a\n    definition: b\n"},
		{"no terms", "acronyms:\n  - acronym: a\n    full_name: b\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, ErrEmptyDeck)
		})
	}
}

func TestParseRejectsMissingFields(t *testing.T) {
	data := []byte(`
terms:
  - term: Deep dive
acronyms:
  - acronym: KPI
    full_name: Key Performance Indicator
`)
	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terms[0]")
}

func TestParseRejectsUnknownFields(t *testing.T) {
	data := []byte(`
terms:
  - term: Deep dive
    definition: Detailed analysis.
    colour: blue
acronyms:
  - acronym: KPI
    full_name: Key Performance Indicator
`)
	_, err := Parse(data)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decks.yaml")
	require.NoError(t, os.WriteFile(path, defaultData, 0o644))

	set, err := LoadFile(path)
	require.NoError(t, err)
	d, err := set.Deck(Acronyms)
	require.NoError(t, err)
	assert.Greater(t, d.Len(), 0)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestNewSet(t *testing.T) {
	terms := Deck{Name: Terms, Cards: []Card{{Front: "a", Back: "b"}}}
	acronyms := Deck{Name: Acronyms, Cards: []Card{{Front: "c", Back: "d"}}}

	_, err := NewSet(terms, acronyms)
	require.NoError(t, err)

	_, err = NewSet(terms, Deck{Name: Acronyms})
	assert.ErrorIs(t, err, ErrEmptyDeck)

	_, err = NewSet(terms, acronyms, Deck{Name: "idioms", Cards: terms.Cards})
	assert.ErrorIs(t, err, ErrUnknownDeck)

	_, err = NewSet(terms, terms, acronyms)
	assert.Error(t, err)

	_, err = NewSet(terms)
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestSetCopiesCards(t *testing.T) {
	cards := []Card{{Front: "a", Back: "b"}}
	set, err := NewSet(Deck{Name: Terms, Cards: cards}, Deck{Name: Acronyms, Cards: cards})
	require.NoError(t, err)

	cards[0].Front = "changed"
	d, err := set.Deck(Terms)
	require.NoError(t, err)
	assert.Equal(t, "a", d.Card(0).Front)
}

func TestParseName(t *testing.T) {
	n, err := ParseName("acronyms")
	require.NoError(t, err)
	assert.Equal(t, Acronyms, n)

	_, err = ParseName("idioms")
	assert.ErrorIs(t, err, ErrUnknownDeck)
}

func TestNameLabels(t *testing.T) {
	assert.Equal(t, "Definition", Terms.BackLabel())
	assert.Equal(t, "Full Name", Acronyms.BackLabel())
	assert.Equal(t, "General Jargon", Terms.DisplayName())
	assert.Equal(t, "term", Terms.Noun())
	assert.Equal(t, "acronym", Acronyms.Noun())
}
