package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/owenfaulkner29/jargon/internal/ui/theme"
)

// Button is a styled, hotkey-labelled button.
type Button struct {
	Label  string
	Hotkey string
	Color  color.Color
}

// NewButton creates a new button. A nil color uses the primary color.
func NewButton(label, hotkey string, c color.Color) Button {
	if c == nil {
		c = theme.Primary
	}
	return Button{
		Label:  label,
		Hotkey: hotkey,
		Color:  c,
	}
}

// View renders the button.
func (b Button) View() string {
	label := b.Label
	if b.Hotkey != "" {
		label = "[" + b.Hotkey + "] " + label
	}
	return lipgloss.NewStyle().
		Background(b.Color).
		Foreground(theme.Text).
		Bold(true).
		Padding(0, 2).
		Render(label)
}

// ButtonRow renders buttons side by side with a gap between them.
func ButtonRow(buttons []Button) string {
	views := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			views = append(views, "  ")
		}
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, views...)
}
