package llm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ResponseSchema declares the structured output contract of a generation
// call: an object with exactly the named string fields, all required.
type ResponseSchema struct {
	fields []string
}

// NewResponseSchema builds a schema over the given field names, in order.
func NewResponseSchema(fields ...string) *ResponseSchema {
	s := &ResponseSchema{fields: make([]string, len(fields))}
	copy(s.fields, fields)
	return s
}

// Fields returns the declared field names in order.
func (s *ResponseSchema) Fields() []string {
	out := make([]string, len(s.fields))
	copy(out, s.fields)
	return out
}

// Descriptor renders the schema in the wire format the generation backend
// expects as its output constraint.
func (s *ResponseSchema) Descriptor() map[string]any {
	props := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		props[f] = map[string]any{"type": "STRING"}
	}
	return map[string]any{
		"type":             "OBJECT",
		"properties":       props,
		"required":         s.Fields(),
		"propertyOrdering": s.Fields(),
	}
}

// jsonSchema renders the strict local twin of Descriptor: same fields, but
// with additionalProperties forbidden so extra keys fail validation.
func (s *ResponseSchema) jsonSchema() map[string]any {
	props := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		props[f] = map[string]any{"type": "string"}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             s.Fields(),
	}
}

// Validate checks raw JSON against the strict schema.
func (s *ResponseSchema) Validate(data []byte) error {
	b, err := json.Marshal(s.jsonSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := compiled.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// StripFences removes a surrounding markdown code fence from model output.
// Schema-constrained calls should not produce fences, but models still do.
func StripFences(text string) string {
	content := strings.TrimSpace(text)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	lines := strings.Split(content, "\n")
	var jsonLines []string
	in := false
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			in = !in
			continue
		}
		if in {
			jsonLines = append(jsonLines, line)
		}
	}
	return strings.TrimSpace(strings.Join(jsonLines, "\n"))
}
