// Package artifact holds the generated meta-prompt deliverable.
package artifact

import (
	"bytes"
	"encoding/json"

	"metaprompt/internal/llm"
)

// Fields lists the eight output fields, in the order the backend is asked to
// emit them.
var Fields = []string{
	"summary",
	"techniques",
	"mainPrompt",
	"variantA",
	"variantB",
	"uiSpec",
	"checklist",
	"example",
}

// Artifact is one successful generation result. A new success supersedes the
// previous instance wholesale.
type Artifact struct {
	Summary    string `json:"summary"`
	Techniques string `json:"techniques"`
	MainPrompt string `json:"mainPrompt"`
	VariantA   string `json:"variantA"`
	VariantB   string `json:"variantB"`
	// UISpec is itself stringified JSON. It is generated content and stays
	// opaque here; nothing parses it.
	UISpec    string `json:"uiSpec"`
	Checklist string `json:"checklist"`
	Example   string `json:"example"`
}

// Schema is the output constraint declared to the generation backend.
func Schema() *llm.ResponseSchema {
	return llm.NewResponseSchema(Fields...)
}

// Parse strictly decodes generation output into an Artifact. Exactly the
// eight declared string fields are accepted; anything else classifies as
// InvalidStructure.
func Parse(text string) (*Artifact, error) {
	raw := []byte(llm.StripFences(text))
	if err := Schema().Validate(raw); err != nil {
		return nil, invalidStructure()
	}

	var a Artifact
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&a); err != nil {
		return nil, invalidStructure()
	}
	return &a, nil
}

func invalidStructure() error {
	return &llm.Error{
		Kind:    llm.InvalidStructure,
		Message: "The AI returned an invalid data structure. Please try again.",
	}
}
