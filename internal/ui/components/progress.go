package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/owenfaulkner29/jargon/internal/ui/theme"
)

// ProgressBar displays a caption line above a horizontal bar.
type ProgressBar struct {
	Label   string  // left caption, e.g. "Card 3 of 12"
	Status  string  // right caption, e.g. "25% Complete"
	Percent float64 // 0..1
	Width   int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label, status string, percent float64, width int) ProgressBar {
	return ProgressBar{
		Label:   label,
		Status:  status,
		Percent: percent,
		Width:   width,
	}
}

// View renders the captions and the bar.
func (p ProgressBar) View() string {
	width := p.Width
	if width < 4 {
		width = 4
	}

	var result string
	if p.Label != "" || p.Status != "" {
		left := lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Label)
		right := lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Status)
		gap := width - lipgloss.Width(left) - lipgloss.Width(right)
		if gap < 1 {
			gap = 1
		}
		result = left + strings.Repeat(" ", gap) + right + "\n"
	}

	filled := int(float64(width) * p.Percent)
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	empty := width - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	return result + filledStr + emptyStr
}
