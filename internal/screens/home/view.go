package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/owenfaulkner29/jargon/internal/ui/theme"
)

const titleFull = `  ┬┌─┐┬─┐┌─┐┌─┐┌┐┌
  │├─┤├┬┘│ ┬│ ││││
└─┘┴ ┴┴└─└─┘└─┘┘└┘`

const titleCompact = "J · A · R · G · O · N"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	text := titleFull
	if compact {
		text = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(text))
}

func renderSubtitle(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("Consulting jargon and acronyms, one card at a time")
}

// renderStatsBar renders mastered counts per deck in a bordered box.
func renderStatsBar(stats []deckStat, cw int, compact bool) string {
	masteredStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(stats))
	for _, st := range stats {
		if compact {
			parts = append(parts, fmt.Sprintf("%s %s",
				st.Name.Icon(),
				masteredStyle.Render(fmt.Sprintf("%d/%d", st.Mastered, st.Cards))))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s %s",
			st.Name.Icon(),
			masteredStyle.Render(fmt.Sprintf("%d/%d", st.Mastered, st.Cards)),
			dimStyle.Render("mastered")))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(parts, "    "))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 34

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int, disabled map[int]bool) string {
	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	selectedBtn := base.
		Bold(true).
		Foreground(theme.Text).
		Background(theme.Primary).
		BorderForeground(theme.Primary)

	normalBtn := base.
		Foreground(theme.Text).
		BorderForeground(theme.Border)

	disabledBtn := base.
		Foreground(theme.TextDim).
		BorderForeground(theme.Border)

	var buttons []string
	for i, label := range items {
		switch {
		case disabled[i]:
			buttons = append(buttons, disabledBtn.Render(label))
		case i == selected:
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		default:
			buttons = append(buttons, normalBtn.Render(label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderFrame centers content in the available area.
func renderFrame(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
