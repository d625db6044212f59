package components

import (
	"charm.land/lipgloss/v2"

	"github.com/owenfaulkner29/jargon/internal/ui/theme"
)

// Tabs is a row of mutually exclusive choices.
type Tabs struct {
	Labels []string
	Active int
}

// NewTabs creates a tab row with the given active index.
func NewTabs(labels []string, active int) Tabs {
	return Tabs{Labels: labels, Active: active}
}

// View renders the tab row inside a rounded box.
func (t Tabs) View() string {
	views := make([]string, 0, len(t.Labels))
	for i, l := range t.Labels {
		if i == t.Active {
			views = append(views, theme.TabActive.Render(l))
		} else {
			views = append(views, theme.TabInactive.Render(l))
		}
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(lipgloss.JoinHorizontal(lipgloss.Center, views...))
}
