// Package request assembles the task-conditioned generation request from
// current form state.
package request

import (
	"fmt"
	"strings"

	"metaprompt/internal/artifact"
	"metaprompt/internal/form"
	"metaprompt/internal/llm"
	"metaprompt/internal/prompts"
	"metaprompt/internal/schema"
)

// NotSpecified is the placeholder rendered for fields the user left empty.
// A missing field is always stated explicitly, never omitted.
const NotSpecified = "Tidak ditentukan"

// Build assembles the generation request for the state's active task type:
// the fixed system instruction, the user payload, and the eight-field output
// schema.
func Build(st *form.State) *llm.Request {
	task := st.TaskType()

	var b strings.Builder
	b.WriteString("## INPUT YANG AKAN DITERIMA (diisi oleh pengguna/aplikasi)\n\n")
	writeLine(&b, "task_type", string(task))

	for _, id := range schema.TaskFields(task) {
		writeLine(&b, id, stringOr(st.Get(id), NotSpecified))
	}

	writeLine(&b, "risk_tolerance", stringOr(st.Get("risk_tolerance"), "sedang"))
	writeLine(&b, "need_citations", fmt.Sprintf("%t", st.Get("need_citations").Bool))
	writeLine(&b, "creativity_level", stringOr(st.Get("creativity_level"), "sedang"))
	writeLine(&b, "tools_available", toolsList(st.Get("tools_available")))
	writeLine(&b, "language", stringOr(st.Get("language"), "id"))

	b.WriteString("\nSilakan lanjutkan.\n")

	return &llm.Request{
		SystemInstruction: prompts.System,
		UserPayload:       b.String(),
		Schema:            artifact.Schema(),
	}
}

func writeLine(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "* **%s**: %s\n", key, value)
}

func stringOr(v form.Value, fallback string) string {
	if s := strings.TrimSpace(v.Str); s != "" {
		return s
	}
	return fallback
}

func toolsList(v form.Value) string {
	if len(v.List) == 0 {
		return "[Tidak ada]"
	}
	return "[" + strings.Join(v.List, ", ") + "]"
}
