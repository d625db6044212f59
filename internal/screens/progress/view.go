package progress

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/owenfaulkner29/jargon/internal/deck"
	"github.com/owenfaulkner29/jargon/internal/mastery"
	"github.com/owenfaulkner29/jargon/internal/store"
	"github.com/owenfaulkner29/jargon/internal/ui/components"
	"github.com/owenfaulkner29/jargon/internal/ui/theme"
	"github.com/owenfaulkner29/jargon/internal/viewer"
)

func (s *ProgressScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading progress...")
	}

	cw := components.ContentWidth(width)
	tabs := components.NewTabs([]string{"Decks", "Sessions"}, int(s.tab)).View()

	var body string
	if s.tab == tabDecks {
		body = s.renderDecks(cw)
	} else {
		body = s.renderSessions(cw, height-lipgloss.Height(tabs)-2)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, tabs, "", body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, "\n"+content)
}

func (s *ProgressScreen) renderDecks(cw int) string {
	sections := make([]string, 0, len(s.summaries)+1)
	for _, sum := range s.summaries {
		sections = append(sections, renderDeckSummary(sum, cw))
	}
	sections = append(sections, s.renderRecent(cw))
	return strings.Join(sections, "\n")
}

func renderDeckSummary(sum mastery.DeckSummary, cw int) string {
	title := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%s %s", sum.Deck.Icon(), sum.Deck.DisplayName()))

	bar := components.NewProgressBar(
		fmt.Sprintf("Rated %d of %d", sum.Rated, sum.Cards),
		fmt.Sprintf("%.0f%% Covered", sum.Coverage()*100),
		sum.Coverage(),
		cw-8,
	).View()

	parts := []string{
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render(fmt.Sprintf("✓ %d mastered", sum.Mastered)),
	}
	for _, d := range viewer.Difficulties() {
		parts = append(parts, lipgloss.NewStyle().Foreground(difficultyColor(d)).
			Render(fmt.Sprintf("%s %d", d.DisplayName(), sum.Ratings[d])))
	}

	return components.Panel(title+"\n\n"+bar+"\n\n"+strings.Join(parts, "   "), cw)
}

func (s *ProgressScreen) renderRecent(cw int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	if len(s.recent) == 0 {
		return dim.Italic(true).Render("No ratings yet. Flip a card and rate it!")
	}

	lines := []string{lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Recent ratings")}
	for _, r := range s.recent {
		name := deck.Name(r.Deck)
		front := s.cardFront(name, r.CardIndex)
		if front == "" {
			front = fmt.Sprintf("%s #%d", name.Noun(), r.CardIndex+1)
		}
		d := viewer.Difficulty(r.Difficulty)
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			dim.Render(r.Timestamp.Local().Format("Jan 02 15:04")),
			lipgloss.NewStyle().Foreground(difficultyColor(d)).Width(6).Render(d.DisplayName()),
			lipgloss.NewStyle().Foreground(theme.Text).Render(front),
		))
	}
	return lipgloss.NewStyle().Width(cw).Render(strings.Join(lines, "\n"))
}

func (s *ProgressScreen) renderSessions(cw, height int) string {
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("No sessions yet. Start studying!")
	}

	visible := height
	if visible < 1 {
		visible = 1
	}
	end := s.offset + visible
	if end > len(s.sessions) {
		end = len(s.sessions)
	}

	lines := make([]string, 0, end-s.offset)
	for i := s.offset; i < end; i++ {
		line := sessionLine(s.sessions[i])
		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "  "
		if i == s.offset {
			style = style.Foreground(theme.Primary).Bold(true)
			prefix = "> "
		}
		lines = append(lines, style.Render(prefix+line))
	}
	return lipgloss.NewStyle().Width(cw).Render(strings.Join(lines, "\n"))
}

func sessionLine(sess store.SessionSummaryRecord) string {
	name := deck.Name(sess.Deck)
	label := sess.Deck
	if name.Valid() {
		label = name.DisplayName()
	}
	return fmt.Sprintf("%s  %-14s  %d cards  %d ratings  %d:%02d",
		sess.Timestamp.Local().Format("Jan 02 15:04"),
		label,
		sess.CardsViewed,
		sess.Ratings,
		sess.DurationSecs/60,
		sess.DurationSecs%60,
	)
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
