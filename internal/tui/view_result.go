package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderResult() string {
	var b strings.Builder

	title := styleLogo.Render("Hasil Generate")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	art := a.sess.artifact
	if art == nil {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
			styleSubtitle.Render("(belum ada hasil)")))
		return b.String()
	}

	sections := []struct {
		title string
		body  string
	}{
		{"Ringkasan", art.Summary},
		{"Teknik", art.Techniques},
		{"Prompt Utama", art.MainPrompt},
		{"Varian A", art.VariantA},
		{"Varian B", art.VariantB},
		{"Spesifikasi UI", art.UISpec},
		{"Checklist", art.Checklist},
		{"Contoh", art.Example},
	}

	var body strings.Builder
	for i, s := range sections {
		if i > 0 {
			body.WriteString("\n\n")
		}
		body.WriteString(styleStepTitle.Render(s.title))
		body.WriteString("\n")
		body.WriteString(s.body)
	}

	// Clamp tall output so the status bar stays on screen.
	content := body.String()
	maxLines := max(a.height-10, 8)
	lines := strings.Split(content, "\n")
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines = append(lines, styleSubtitle.Render("..."))
		content = strings.Join(lines, "\n")
	}

	box := styleBox.Copy().
		Width(min(74, max(a.width-4, 40))).
		BorderForeground(colorSuccess).
		Render(content)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Esc] Kembali ke form  [Ctrl+R] Reset")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return b.String()
}
