package flashcards

import (
	"charm.land/bubbles/v2/key"

	"github.com/owenfaulkner29/jargon/internal/ui/layout"
)

type keyMap struct {
	Terms    key.Binding
	Acronyms key.Binding
	Switch   key.Binding
	Flip     key.Binding
	Prev     key.Binding
	Next     key.Binding
	Shuffle  key.Binding
	Easy     key.Binding
	Medium   key.Binding
	Hard     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Terms: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "Jargon"),
		),
		Acronyms: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Acronyms"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "Deck"),
		),
		Flip: key.NewBinding(
			key.WithKeys("space", "enter"),
			key.WithHelp("Space", "Flip"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "p", "h"),
			key.WithHelp("←", "Prev"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "n", "l"),
			key.WithHelp("→", "Next"),
		),
		Shuffle: key.NewBinding(
			key.WithKeys("r", "s"),
			key.WithHelp("R", "Shuffle"),
		),
		Easy: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "Easy"),
		),
		Medium: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "Medium"),
		),
		Hard: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "Hard"),
		),
	}
}

// hints converts bindings to footer hints.
func hints(bindings ...key.Binding) []layout.KeyHint {
	out := make([]layout.KeyHint, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		out = append(out, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return append(out, layout.KeyHint{Key: "Esc", Description: "Back"})
}
