package tui

import (
	"strings"

	"metaprompt/internal/artifact"
	"metaprompt/internal/document"
	"metaprompt/internal/form"
)

// session is everything that lives for one form session: the form state,
// the pending auto-fill inputs, and the last generated artifact. All of it
// is in-memory only.
type session struct {
	form        *form.State
	files       []document.File
	instruction string

	artifact *artifact.Artifact

	analyzing  bool
	generating bool

	errText  string
	warnText string

	// epoch invalidates in-flight results across a reset: settle messages
	// from a previous epoch are dropped.
	epoch int
}

func newSession() *session {
	return &session{form: form.New()}
}

func (s *session) busy() bool { return s.analyzing || s.generating }

// canAnalyze gates the analyze action: pending input present, nothing in
// flight.
func (s *session) canAnalyze() bool {
	if s.busy() {
		return false
	}
	return len(s.files) > 0 || strings.TrimSpace(s.instruction) != ""
}

// canGenerate gates the generate action: nothing in flight, every visible
// required field filled.
func (s *session) canGenerate() bool {
	return !s.busy() && len(s.form.MissingRequired()) == 0
}

func (s *session) addFile(f document.File) {
	s.files = append(s.files, f)
}

// clearPending drops the aggregation inputs; they are single-use per
// analyze invocation.
func (s *session) clearPending() {
	s.files = nil
	s.instruction = ""
}

// reset reinitializes the whole session: fresh form defaults, no pending
// inputs, no artifact. In-flight calls are orphaned via the epoch bump.
func (s *session) reset() {
	s.form = form.New()
	s.files = nil
	s.instruction = ""
	s.artifact = nil
	s.analyzing = false
	s.generating = false
	s.errText = ""
	s.warnText = ""
	s.epoch++
}
