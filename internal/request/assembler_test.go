package request

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaprompt/internal/artifact"
	"metaprompt/internal/form"
	"metaprompt/internal/prompts"
	"metaprompt/internal/schema"
)

func TestBuildDocumentDefaults(t *testing.T) {
	req := Build(form.New())

	assert.Equal(t, prompts.System, req.SystemInstruction)
	assert.Equal(t, artifact.Fields, req.Schema.Fields())

	p := req.UserPayload
	assert.Contains(t, p, "* **task_type**: document")
	assert.Contains(t, p, "* **goal**: Tidak ditentukan",
		"empty fields render the placeholder, never vanish")
	assert.Contains(t, p, "* **audience**: Tidak ditentukan")
	assert.Contains(t, p, "* **risk_tolerance**: sedang")
	assert.Contains(t, p, "* **need_citations**: false")
	assert.Contains(t, p, "* **creativity_level**: sedang")
	assert.Contains(t, p, "* **tools_available**: [Tidak ada]")
	assert.Contains(t, p, "* **language**: id")
	assert.True(t, strings.HasSuffix(p, "Silakan lanjutkan.\n"))
}

func TestBuildCarriesFilledValues(t *testing.T) {
	st := form.New()
	st.Set("goal", form.StringValue("tulis SOP onboarding"))
	st.Set("need_citations", form.BoolValue(true))
	st.Set("tools_available", form.ListValue("rag", "web_search"))

	p := Build(st).UserPayload
	assert.Contains(t, p, "* **goal**: tulis SOP onboarding")
	assert.Contains(t, p, "* **need_citations**: true")
	assert.Contains(t, p, "* **tools_available**: [rag, web_search]")
}

func TestBuildIsTaskConditioned(t *testing.T) {
	st := form.New()
	st.Set("goal", form.StringValue("seharusnya tidak ikut"))
	st.Set(schema.FieldTaskType, form.StringValue("agent"))
	st.Set("agent_goal", form.StringValue("triase email"))

	p := Build(st).UserPayload
	assert.Contains(t, p, "* **task_type**: agent")
	assert.Contains(t, p, "* **agent_goal**: triase email")
	assert.Contains(t, p, "* **agent_triggers**: Tidak ditentukan")
	assert.NotContains(t, p, "* **goal**:",
		"fields of other task types never appear in the payload")
	assert.NotContains(t, p, "app_description")
}

func TestBuildApplicationFields(t *testing.T) {
	st := form.New()
	st.Set(schema.FieldTaskType, form.StringValue("application"))
	st.Set("app_description", form.StringValue("aplikasi kasir UMKM"))

	p := Build(st).UserPayload
	require.Contains(t, p, "* **task_type**: application")
	assert.Contains(t, p, "* **app_description**: aplikasi kasir UMKM")
	assert.Contains(t, p, "* **app_features**: Tidak ditentukan")
	assert.Contains(t, p, "* **app_data_model**: Tidak ditentukan")
	assert.Contains(t, p, "* **app_tech_stack**: Tidak ditentukan")
}

func TestBuildWhitespaceCountsAsEmpty(t *testing.T) {
	st := form.New()
	st.Set("context", form.StringValue("   \t"))

	p := Build(st).UserPayload
	assert.Contains(t, p, "* **context**: Tidak ditentukan")
}
