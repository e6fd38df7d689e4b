package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"metaprompt/internal/schema"
)

func (a *App) renderForm() string {
	var b strings.Builder

	logo := styleLogo.Render("Meta-Prompt Generator")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, logo))
	b.WriteString("\n")
	subtitle := styleSubtitle.Render("Isi kebutuhan Anda, lalu generate prompt")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subtitle))
	b.WriteString("\n\n")

	rows := a.rows()
	if a.cursor >= len(rows) {
		a.cursor = len(rows) - 1
	}

	var form strings.Builder
	lastStep := ""
	for i, r := range rows {
		active := i == a.cursor
		switch r.kind {
		case rowField:
			if r.step.ID != lastStep {
				if lastStep != "" {
					form.WriteString("\n")
				}
				form.WriteString(styleStepTitle.Render(r.step.Title))
				form.WriteString("\n")
				lastStep = r.step.ID
			}
			form.WriteString(a.renderFieldRow(r.field, active))
		case rowInstruction:
			form.WriteString("\n")
			form.WriteString(styleStepTitle.Render("Auto-fill"))
			form.WriteString("\n")
			form.WriteString(a.renderInstructionRow(active))
		case rowFilePath:
			form.WriteString(a.renderFileRow(active))
		}
		form.WriteString("\n")
	}

	box := styleBox.Copy().
		Width(min(74, max(a.width-4, 40))).
		Render(form.String())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, box))
	b.WriteString("\n")

	if a.sess.errText != "" {
		banner := styleError.Render(truncate(a.sess.errText, max(a.width-4, 20)))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, banner))
		b.WriteString("\n")
	}
	if a.sess.warnText != "" {
		banner := styleWarn.Render(truncate(a.sess.warnText, max(a.width-4, 20)))
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, banner))
		b.WriteString("\n")
	}

	var status string
	switch {
	case a.editing:
		status = "[Enter] Commit  [Esc] Cancel"
	case a.sess.analyzing:
		status = "Menganalisis...  [Ctrl+R] Reset"
	default:
		status = "[Ctrl+A] Analyze  [Ctrl+G] Generate  [Ctrl+R] Reset  [?] Help  [Esc] Quit"
	}
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleStatusBar.Render(status)))

	return b.String()
}

func (a *App) renderFieldRow(f schema.Field, active bool) string {
	label := styleLabel.Render(f.Label)
	if active {
		label = styleLabelActive.Render("> " + f.Label)
	} else {
		label = "  " + label
	}
	if f.Required {
		label += styleRequired.Render(" *")
	}

	var value string
	switch f.Kind {
	case schema.KindText, schema.KindTextArea:
		if active && a.editing {
			value = a.input.View()
		} else if v := a.sess.form.Get(f.ID).Str; v != "" {
			value = truncate(v, 56)
		} else {
			value = styleSubtitle.Render(helperOr(f, "(kosong)"))
		}
	case schema.KindSelect, schema.KindRadio, schema.KindButtons:
		value = a.renderChoices(f)
	case schema.KindToggle:
		if a.sess.form.Get(f.ID).Bool {
			value = "[x] ya"
		} else {
			value = "[ ] tidak"
		}
	case schema.KindCheckbox:
		value = a.renderChecklist(f, active)
	}

	return label + "\n    " + value
}

func (a *App) renderChoices(f schema.Field) string {
	current := a.sess.form.Get(f.ID).Str
	parts := make([]string, 0, len(f.Options))
	for _, opt := range f.Options {
		if opt.Value == current {
			parts = append(parts, styleLabelActive.Render("("+opt.Label+")"))
			continue
		}
		parts = append(parts, styleSubtitle.Render(" "+opt.Label+" "))
	}
	return strings.Join(parts, " ")
}

func (a *App) renderChecklist(f schema.Field, active bool) string {
	parts := make([]string, 0, len(f.Options))
	current := a.sess.form.Get(f.ID).List
	for i, opt := range f.Options {
		mark := "[ ]"
		for _, v := range current {
			if v == opt.Value {
				mark = "[x]"
				break
			}
		}
		item := fmt.Sprintf("%s %s", mark, opt.Label)
		if active && i == a.optCursor {
			item = styleLabelActive.Render(item)
		}
		parts = append(parts, item)
	}
	return strings.Join(parts, "  ")
}

func (a *App) renderInstructionRow(active bool) string {
	label := styleLabel.Render("Instruksi singkat")
	if active {
		label = styleLabelActive.Render("> Instruksi singkat")
	} else {
		label = "  " + label
	}

	var value string
	switch {
	case active && a.editing:
		value = a.input.View()
	case a.sess.instruction != "":
		value = truncate(a.sess.instruction, 56)
	default:
		value = styleSubtitle.Render("(kosong)")
	}
	return label + "\n    " + value
}

func (a *App) renderFileRow(active bool) string {
	label := styleLabel.Render("Tambah file")
	if active {
		label = styleLabelActive.Render("> Tambah file")
	} else {
		label = "  " + label
	}

	var value string
	switch {
	case active && a.editing:
		value = a.input.View()
	case len(a.sess.files) > 0:
		names := make([]string, len(a.sess.files))
		for i, f := range a.sess.files {
			names[i] = f.Name
		}
		value = truncate(strings.Join(names, ", "), 56)
	default:
		value = styleSubtitle.Render("(belum ada file)")
	}
	return label + "\n    " + value
}

func helperOr(f schema.Field, fallback string) string {
	if f.HelperText != "" {
		return truncate(f.HelperText, 56)
	}
	return fallback
}
