package flashcards

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/owenfaulkner29/jargon/internal/deck"
	"github.com/owenfaulkner29/jargon/internal/ui/components"
	"github.com/owenfaulkner29/jargon/internal/ui/layout"
	"github.com/owenfaulkner29/jargon/internal/ui/theme"
	"github.com/owenfaulkner29/jargon/internal/viewer"
)

func (s *FlashcardsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if s.viewer == nil {
		return ""
	}

	cw := components.ContentWidth(width)
	state := s.viewer.State()
	p := s.viewer.Progress()

	var sections []string
	sections = append(sections, s.renderTabs(state.Deck))
	sections = append(sections, components.NewProgressBar(
		fmt.Sprintf("Card %d of %d", p.Position, p.Total),
		fmt.Sprintf("%d%% Complete", p.Percent),
		p.Fraction(),
		cw,
	).View())

	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)
	sections = append(sections, RenderCard(s.viewer.Current(), state.Flipped, state.Deck, cw, compact))

	if d, ok := s.lastRating(state); ok {
		sections = append(sections, lipgloss.NewStyle().Foreground(difficultyColor(d)).
			Render("Last rated: "+d.DisplayName()))
	}

	if state.Flipped {
		sections = append(sections, renderRatingPrompt(state.Deck))
	}
	sections = append(sections, renderNav())

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, "\n"+content)
}

func (s *FlashcardsScreen) lastRating(state viewer.State) (viewer.Difficulty, bool) {
	if s.tracker == nil {
		return "", false
	}
	return s.tracker.Rating(state.Deck, state.Index)
}

func (s *FlashcardsScreen) renderTabs(active deck.Name) string {
	names := deck.Names()
	labels := make([]string, len(names))
	idx := 0
	for i, n := range names {
		labels[i] = fmt.Sprintf("%s %s (%d)", n.Icon(), n.DisplayName(), s.counts[n])
		if n == active {
			idx = i
		}
	}
	return components.NewTabs(labels, idx).View()
}

// RenderCard renders one face of a card.
func RenderCard(c deck.Card, flipped bool, name deck.Name, cw int, compact bool) string {
	var lines []string
	if flipped {
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(name.BackLabel()+":"),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Width(cw-8).Align(lipgloss.Center).Render(c.Back),
		)
		if c.Example != "" {
			lines = append(lines, "",
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Width(cw-8).Align(lipgloss.Center).
					Render(fmt.Sprintf("%q", c.Example)),
			)
		}
		lines = append(lines, "", theme.Hint.Render("Press space to flip back"))
	} else {
		if !compact {
			lines = append(lines, name.Icon(), "")
		}
		lines = append(lines,
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw-8).Align(lipgloss.Center).Render(c.Front),
		)
		if c.Category != "" {
			lines = append(lines, "", theme.Badge.Render(c.Category))
		}
		lines = append(lines, "", theme.Hint.Render("Press space to reveal"))
	}

	style := theme.Card
	if flipped {
		style = theme.CardBack
	}
	pad := 2
	if compact {
		pad = 1
	}
	return style.
		Width(cw).
		Padding(pad, 2).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

func renderRatingPrompt(name deck.Name) string {
	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("How well did you know this %s?", name.Noun()))
	buttons := make([]components.Button, 0, 3)
	for i, d := range viewer.Difficulties() {
		buttons = append(buttons, components.NewButton(d.DisplayName(), fmt.Sprint(i+1), difficultyColor(d)))
	}
	return prompt + "\n\n" + components.ButtonRow(buttons)
}

func renderNav() string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	return dim.Render("← Prev") + "     " + dim.Render("⟳ Shuffle") + "     " + dim.Render("Next →")
}

func difficultyColor(d viewer.Difficulty) color.Color {
	switch d {
	case viewer.Easy:
		return theme.Success
	case viewer.Medium:
		return theme.Warning
	case viewer.Hard:
		return theme.Error
	default:
		return theme.Text
	}
}
