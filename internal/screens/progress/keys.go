package progress

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Switch key.Binding
	Up     key.Binding
	Down   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "Decks/Sessions"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑↓", "Scroll"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
	}
}
