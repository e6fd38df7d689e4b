package tui

import "github.com/charmbracelet/lipgloss"

// truncate shortens text to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

var (
	// Colors
	colorPrimary   = lipgloss.Color("#818CF8")
	colorSecondary = lipgloss.Color("#A78BFA")
	colorSuccess   = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorWarn      = lipgloss.Color("#F59E0B")
	colorMuted     = lipgloss.Color("#6B7280")

	// Logo style
	styleLogo = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Subtitle
	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Step title
	styleStepTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Field label, with and without cursor
	styleLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9FAFB"))
	styleLabelActive = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	// Required marker
	styleRequired = lipgloss.NewStyle().
			Foreground(colorError)

	// Box
	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Error / warning banners
	styleError = lipgloss.NewStyle().
			Foreground(colorError)
	styleWarn = lipgloss.NewStyle().
			Foreground(colorWarn)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorMuted)
)
