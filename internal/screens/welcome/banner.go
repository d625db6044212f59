package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/owenfaulkner29/jargon/internal/ui/theme"
)

const bannerArt = `
      ██╗ █████╗ ██████╗  ██████╗  ██████╗ ███╗   ██╗
      ██║██╔══██╗██╔══██╗██╔════╝ ██╔═══██╗████╗  ██║
      ██║███████║██████╔╝██║  ███╗██║   ██║██╔██╗ ██║
 ██   ██║██╔══██║██╔══██╗██║   ██║██║   ██║██║╚██╗██║
 ╚█████╔╝██║  ██║██║  ██║╚██████╔╝╚██████╔╝██║ ╚████║
  ╚════╝ ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝  ╚═════╝ ╚═╝  ╚═══╝`

const bannerCompact = "J A R G O N"

// RenderBanner returns the JARGON banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 56 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 56 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
