package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owenfaulkner29/jargon/internal/deck"
)

func TestMasteryEventKey(t *testing.T) {
	ev := MasteryEvent{Deck: deck.Terms, Index: 0, Difficulty: Easy}
	assert.Equal(t, "terms-0-easy", ev.Key())

	ev = MasteryEvent{Deck: deck.Acronyms, Index: 12, Difficulty: Hard}
	assert.Equal(t, "acronyms-12-hard", ev.Key())
}

func TestParseKeyRoundTrip(t *testing.T) {
	for _, d := range Difficulties() {
		want := MasteryEvent{Deck: deck.Acronyms, Index: 7, Difficulty: d}
		got, err := ParseKey(want.Key())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseKeyMalformed(t *testing.T) {
	for _, key := range []string{
		"",
		"terms-0",
		"terms-x-easy",
		"terms--1-easy",
		"idioms-0-easy",
		"terms-0-trivial",
		"terms-0-easy-extra",
	} {
		_, err := ParseKey(key)
		assert.ErrorIs(t, err, ErrMalformedKey, "key %q", key)
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("medium")
	require.NoError(t, err)
	assert.Equal(t, Medium, d)
	assert.Equal(t, "Medium", d.DisplayName())

	_, err = ParseDifficulty("Medium")
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
}

func TestRecorderFunc(t *testing.T) {
	var got string
	var r Recorder = RecorderFunc(func(key string) { got = key })
	r.Record("terms-1-hard")
	assert.Equal(t, "terms-1-hard", got)
}
