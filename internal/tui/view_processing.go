package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderProcessing() string {
	var b strings.Builder

	logo := styleLogo.Render("Meta-Prompt Generator")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, logo))
	b.WriteString("\n\n")

	msg := "Menyusun prompt..."
	if a.sess.analyzing {
		msg = "Menganalisis input..."
	}
	box := styleBox.Copy().
		Width(min(50, max(a.width-4, 30))).
		BorderForeground(colorSecondary).
		Render(msg)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Ctrl+R] Reset  [Esc] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return b.String()
}
