// Package tui renders the form front-end: a dynamically-shaped form whose
// steps and fields follow the task schema registry, plus the analyze,
// generate, and reset actions.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"metaprompt/internal/artifact"
	"metaprompt/internal/config"
	"metaprompt/internal/document"
	"metaprompt/internal/form"
	"metaprompt/internal/llm"
	"metaprompt/internal/pipeline"
	"metaprompt/internal/request"
	"metaprompt/internal/schema"
)

type view int

const (
	viewForm view = iota
	viewProcessing
	viewResult
	viewHelp
)

// rowKind distinguishes schema-driven fields from the two auto-fill inputs
// rendered below the form.
type rowKind int

const (
	rowField rowKind = iota
	rowInstruction
	rowFilePath
)

type row struct {
	kind  rowKind
	step  schema.Step
	field schema.Field
}

type App struct {
	width    int
	height   int
	view     view
	quitting bool

	sess      *session
	generator llm.Generator
	pipe      *pipeline.Pipeline
	logger    *slog.Logger

	cursor    int
	optCursor int
	editing   bool
	input     textinput.Model
}

// NewApp wires the client and pipeline from config and starts with a fresh
// session.
func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	opts := []llm.Option{llm.WithLogger(logger)}
	if cfg.BaseURL != "" {
		opts = append(opts, llm.WithBaseURL(cfg.BaseURL))
	}
	client := llm.NewClient(cfg.APIKey, cfg.Model, opts...)

	input := textinput.New()
	input.CharLimit = 4000
	input.Width = 60

	return &App{
		view:      viewForm,
		sess:      newSession(),
		generator: client,
		pipe:      pipeline.New(document.NewConverter(), client, logger),
		logger:    logger,
		input:     input,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

type analyzeDoneMsg struct {
	epoch  int
	result *pipeline.Result
	err    error
}

type generateDoneMsg struct {
	epoch    int
	artifact *artifact.Artifact
	err      error
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case analyzeDoneMsg:
		// Dropped when a reset happened while the call was in flight.
		if msg.epoch != a.sess.epoch {
			return a, nil
		}
		a.sess.analyzing = false
		// Aggregation inputs are single-use, success or failure.
		a.sess.clearPending()
		if msg.err != nil {
			a.sess.errText = msg.err.Error()
			return a, nil
		}
		msg.result.Apply(a.sess.form)
		if failed := msg.result.FailedFiles; len(failed) > 0 {
			a.sess.warnText = "sebagian file gagal diproses: " + strings.Join(failed, ", ")
		}
		return a, nil

	case generateDoneMsg:
		if msg.epoch != a.sess.epoch {
			return a, nil
		}
		a.sess.generating = false
		if msg.err != nil {
			a.sess.errText = msg.err.Error()
			a.view = viewForm
			return a, nil
		}
		a.sess.artifact = msg.artifact
		a.view = viewResult
		return a, nil
	}

	if a.editing {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if a.editing {
		switch {
		case key.Matches(msg, keys.Enter):
			a.commitEdit()
			return nil
		case msg.Type == tea.KeyEsc:
			a.stopEdit()
			return nil
		}
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return cmd
	}

	switch {
	case key.Matches(msg, keys.Quit):
		if a.view == viewHelp || a.view == viewResult {
			a.view = viewForm
			return nil
		}
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Help):
		if a.view == viewForm {
			a.view = viewHelp
		}
		return nil

	case key.Matches(msg, keys.Reset):
		a.resetSession()
		return nil

	case key.Matches(msg, keys.Analyze):
		return a.startAnalyze()

	case key.Matches(msg, keys.Generate):
		return a.startGenerate()
	}

	if a.view != viewForm {
		return nil
	}
	return a.handleFormKey(msg)
}

func (a *App) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	rows := a.rows()
	if len(rows) == 0 {
		return nil
	}
	if a.cursor >= len(rows) {
		a.cursor = len(rows) - 1
	}
	cur := rows[a.cursor]

	switch {
	case key.Matches(msg, keys.Up):
		if a.cursor > 0 {
			a.cursor--
			a.optCursor = 0
		}

	case key.Matches(msg, keys.Down):
		if a.cursor < len(rows)-1 {
			a.cursor++
			a.optCursor = 0
		}

	case key.Matches(msg, keys.Enter):
		switch cur.kind {
		case rowInstruction, rowFilePath:
			return a.beginEdit(cur)
		case rowField:
			switch cur.field.Kind {
			case schema.KindText, schema.KindTextArea:
				return a.beginEdit(cur)
			case schema.KindToggle:
				a.toggleBool(cur.field)
			}
		}

	case key.Matches(msg, keys.Left):
		a.cycle(cur, -1)

	case key.Matches(msg, keys.Right):
		a.cycle(cur, 1)

	case key.Matches(msg, keys.Space):
		if cur.kind != rowField {
			break
		}
		switch cur.field.Kind {
		case schema.KindToggle:
			a.toggleBool(cur.field)
		case schema.KindCheckbox:
			a.toggleOption(cur.field)
		}
	}
	return nil
}

// rows lists the focusable rows in collection order: every visible field,
// then the two auto-fill inputs.
func (a *App) rows() []row {
	var rows []row
	for _, st := range schema.StepsFor(a.sess.form.TaskType()) {
		for _, f := range st.Fields {
			if !a.sess.form.FieldVisible(st, f) {
				continue
			}
			rows = append(rows, row{kind: rowField, step: st, field: f})
		}
	}
	rows = append(rows, row{kind: rowInstruction}, row{kind: rowFilePath})
	return rows
}

func (a *App) beginEdit(cur row) tea.Cmd {
	a.editing = true
	switch cur.kind {
	case rowInstruction:
		a.input.SetValue(a.sess.instruction)
		a.input.Placeholder = "Jelaskan ide Anda dalam satu-dua kalimat..."
	case rowFilePath:
		a.input.SetValue("")
		a.input.Placeholder = "Path ke file (txt, md, pdf, docx, pptx, xlsx)..."
	default:
		a.input.SetValue(a.sess.form.Get(cur.field.ID).Str)
		a.input.Placeholder = cur.field.HelperText
	}
	a.input.CursorEnd()
	a.input.Focus()
	return textinput.Blink
}

func (a *App) commitEdit() {
	rows := a.rows()
	if a.cursor >= len(rows) {
		a.stopEdit()
		return
	}
	cur := rows[a.cursor]
	value := a.input.Value()

	switch cur.kind {
	case rowInstruction:
		a.sess.instruction = value
	case rowFilePath:
		a.attachFile(strings.TrimSpace(value))
	case rowField:
		a.sess.form.Set(cur.field.ID, form.StringValue(value))
	}
	a.stopEdit()
}

func (a *App) stopEdit() {
	a.editing = false
	a.input.Blur()
	a.input.Reset()
}

func (a *App) attachFile(path string) {
	if path == "" {
		return
	}
	file := document.File{Name: filepath.Base(path)}
	if !document.Supported(file.Ext()) {
		a.sess.errText = fmt.Sprintf("tipe file .%s tidak didukung", file.Ext())
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		a.sess.errText = "tidak bisa membaca file: " + err.Error()
		return
	}
	file.Data = data
	a.sess.errText = ""
	a.sess.addFile(file)
}

func (a *App) toggleBool(f schema.Field) {
	v := a.sess.form.Get(f.ID)
	a.sess.form.Set(f.ID, form.BoolValue(!v.Bool))
}

// toggleOption flips membership of the option under the sub-cursor,
// keeping the stored list in declared option order.
func (a *App) toggleOption(f schema.Field) {
	if a.optCursor >= len(f.Options) {
		return
	}
	target := f.Options[a.optCursor].Value
	current := a.sess.form.Get(f.ID).List
	selected := slices.Contains(current, target)

	var next []string
	for _, opt := range f.Options {
		in := slices.Contains(current, opt.Value)
		if opt.Value == target {
			in = !selected
		}
		if in {
			next = append(next, opt.Value)
		}
	}
	a.sess.form.Set(f.ID, form.ListValue(next...))
}

// cycle moves a single-choice field to its previous/next option, or moves
// the checkbox sub-cursor.
func (a *App) cycle(cur row, delta int) {
	if cur.kind != rowField {
		return
	}
	f := cur.field
	switch f.Kind {
	case schema.KindSelect, schema.KindRadio, schema.KindButtons:
		if len(f.Options) == 0 {
			return
		}
		idx := 0
		current := a.sess.form.Get(f.ID).Str
		for i, opt := range f.Options {
			if opt.Value == current {
				idx = i
				break
			}
		}
		idx = (idx + delta + len(f.Options)) % len(f.Options)
		a.sess.form.Set(f.ID, form.StringValue(f.Options[idx].Value))
	case schema.KindCheckbox:
		next := a.optCursor + delta
		if next >= 0 && next < len(f.Options) {
			a.optCursor = next
		}
	}
}

func (a *App) startAnalyze() tea.Cmd {
	if a.sess.busy() {
		return nil
	}
	if !a.sess.canAnalyze() {
		a.sess.errText = (&pipeline.ValidationError{}).Error()
		return nil
	}

	a.sess.analyzing = true
	a.sess.errText = ""
	a.sess.warnText = ""

	task := a.sess.form.TaskType()
	files := slices.Clone(a.sess.files)
	instruction := a.sess.instruction
	epoch := a.sess.epoch
	pipe := a.pipe

	return func() tea.Msg {
		result, err := pipe.Analyze(context.Background(), task, files, instruction)
		return analyzeDoneMsg{epoch: epoch, result: result, err: err}
	}
}

func (a *App) startGenerate() tea.Cmd {
	if a.sess.busy() {
		return nil
	}
	if missing := a.sess.form.MissingRequired(); len(missing) > 0 {
		a.sess.errText = "lengkapi field wajib: " + strings.Join(fieldLabels(missing), ", ")
		return nil
	}

	a.sess.generating = true
	a.sess.errText = ""
	a.view = viewProcessing

	// Snapshot the payload now; edits after dispatch do not leak in.
	req := request.Build(a.sess.form)
	epoch := a.sess.epoch
	gen := a.generator

	return func() tea.Msg {
		text, err := gen.Generate(context.Background(), req)
		if err != nil {
			return generateDoneMsg{epoch: epoch, err: err}
		}
		art, err := artifact.Parse(text)
		return generateDoneMsg{epoch: epoch, artifact: art, err: err}
	}
}

func fieldLabels(ids []string) []string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if f, ok := schema.FieldByID(id); ok {
			labels = append(labels, f.Label)
			continue
		}
		labels = append(labels, id)
	}
	return labels
}

func (a *App) resetSession() {
	a.sess.reset()
	a.stopEdit()
	a.cursor = 0
	a.optCursor = 0
	a.view = viewForm
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewProcessing:
		return a.renderProcessing()
	case viewResult:
		return a.renderResult()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderForm()
	}
}
