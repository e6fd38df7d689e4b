package artifact

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaprompt/internal/llm"
)

func completeJSON(t *testing.T, mutate func(map[string]string)) string {
	t.Helper()
	out := map[string]string{}
	for _, f := range Fields {
		out[f] = "nilai " + f
	}
	if mutate != nil {
		mutate(out)
	}
	raw, err := json.Marshal(out)
	require.NoError(t, err)
	return string(raw)
}

func TestParse(t *testing.T) {
	art, err := Parse(completeJSON(t, nil))
	require.NoError(t, err)

	assert.Equal(t, "nilai summary", art.Summary)
	assert.Equal(t, "nilai mainPrompt", art.MainPrompt)
	assert.Equal(t, "nilai uiSpec", art.UISpec)
	assert.Equal(t, "nilai example", art.Example)
}

func TestParseStripsFences(t *testing.T) {
	art, err := Parse("```json\n" + completeJSON(t, nil) + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "nilai checklist", art.Checklist)
}

func TestParseEmptyStringsAllowed(t *testing.T) {
	art, err := Parse(completeJSON(t, func(m map[string]string) {
		m["variantB"] = ""
	}))
	require.NoError(t, err)
	assert.Equal(t, "", art.VariantB)
}

func TestParseRejectsInvalidStructure(t *testing.T) {
	for name, text := range map[string]string{
		"missing field": completeJSON(t, func(m map[string]string) { delete(m, "checklist") }),
		"extra field":   completeJSON(t, func(m map[string]string) { m["bonus"] = "x" }),
		"not json":      "maaf, berikut hasilnya:",
		"array":         `["summary"]`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(text)
			var llmErr *llm.Error
			require.True(t, errors.As(err, &llmErr))
			assert.Equal(t, llm.InvalidStructure, llmErr.Kind)
		})
	}
}

func TestParseRejectsNonStringField(t *testing.T) {
	_, err := Parse(`{"summary":1,"techniques":"","mainPrompt":"","variantA":"","variantB":"","uiSpec":"","checklist":"","example":""}`)
	var llmErr *llm.Error
	require.True(t, errors.As(err, &llmErr))
	assert.Equal(t, llm.InvalidStructure, llmErr.Kind)
}

func TestSchemaFieldOrder(t *testing.T) {
	assert.Equal(t, []string{
		"summary", "techniques", "mainPrompt", "variantA",
		"variantB", "uiSpec", "checklist", "example",
	}, Schema().Fields())
}
