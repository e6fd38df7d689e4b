package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := styleLogo.Render("Bantuan")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	help := strings.Join([]string{
		styleStepTitle.Render("Navigasi"),
		"  up/down      pindah antar field",
		"  left/right   ganti pilihan",
		"  space        toggle / centang",
		"  enter        edit teks atau commit",
		"",
		styleStepTitle.Render("Aksi"),
		"  ctrl+a       analisis file + instruksi untuk mengisi form",
		"  ctrl+g       generate meta-prompt dari form",
		"  ctrl+r       reset sesi",
		"",
		styleStepTitle.Render("Auto-fill"),
		"  Tambahkan file (txt, md, pdf, docx, pptx, xlsx) atau tulis",
		"  instruksi singkat, lalu tekan ctrl+a. Field yang cocok akan",
		"  terisi otomatis dan tetap bisa diedit.",
	}, "\n")

	box := styleBox.Copy().
		Width(min(70, max(a.width-4, 40))).
		Render(help)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Esc] Kembali")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return b.String()
}
