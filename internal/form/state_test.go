package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metaprompt/internal/schema"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New()
	b := New()
	assert.True(t, a.Equal(b), "two fresh states must be deeply equal")
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestNewDefaults(t *testing.T) {
	s := New()

	assert.Equal(t, schema.TaskDocument, s.TaskType())
	assert.Equal(t, "id", s.Get("language").Str)
	assert.Equal(t, "sedang", s.Get("creativity_level").Str)
	assert.Equal(t, "sedang", s.Get("risk_tolerance").Str)
	assert.False(t, s.Get("need_citations").Bool)

	tools := s.Get("tools_available")
	assert.Equal(t, ValueList, tools.Kind)
	assert.Empty(t, tools.List)

	assert.Equal(t, "", s.Get("goal").Str)
}

func TestTaskSwitchResetsOldTaskFields(t *testing.T) {
	s := New()
	s.Set("goal", StringValue("tulis SOP onboarding"))
	s.Set("audience", StringValue("HR generalis"))
	s.Set("creativity_level", StringValue("tinggi"))

	s.Set(schema.FieldTaskType, StringValue("agent"))

	assert.Equal(t, schema.TaskAgent, s.TaskType())
	assert.Equal(t, "", s.Get("goal").Str, "document field must reset on switch")
	assert.Equal(t, "", s.Get("audience").Str)
	assert.Equal(t, "tinggi", s.Get("creativity_level").Str,
		"cross-task preference survives the switch")
}

func TestTaskSwitchLeavesNewTaskFieldsAlone(t *testing.T) {
	s := New()
	s.Set("agent_goal", StringValue("triase email masuk"))

	s.Set(schema.FieldTaskType, StringValue("agent"))

	assert.Equal(t, "triase email masuk", s.Get("agent_goal").Str,
		"only the previous task's fields reset, not the new task's")
}

func TestSetSameTaskTypeIsNoop(t *testing.T) {
	s := New()
	s.Set("goal", StringValue("desain API"))

	s.Set(schema.FieldTaskType, StringValue("document"))

	assert.Equal(t, "desain API", s.Get("goal").Str)
}

func TestMergeOverwrites(t *testing.T) {
	s := New()
	s.Set("goal", StringValue("nilai lama"))
	s.Set("context", StringValue("konteks lama"))

	s.Merge(map[string]string{
		"goal":     "nilai baru",
		"audience": "tim legal",
	})

	assert.Equal(t, "nilai baru", s.Get("goal").Str, "merge is last-write-wins")
	assert.Equal(t, "tim legal", s.Get("audience").Str)
	assert.Equal(t, "konteks lama", s.Get("context").Str, "untouched fields survive")
}

func TestVisibilityFollowsTaskType(t *testing.T) {
	s := New()
	var need, agent schema.Step
	for _, st := range schema.Steps() {
		switch st.ID {
		case "need":
			need = st
		case "agent":
			agent = st
		}
	}
	require.NotEmpty(t, need.ID)
	require.NotEmpty(t, agent.ID)

	assert.True(t, s.StepVisible(need))
	assert.False(t, s.StepVisible(agent))

	s.Set(schema.FieldTaskType, StringValue("agent"))
	assert.False(t, s.StepVisible(need))
	assert.True(t, s.StepVisible(agent))
}

func TestMissingRequired(t *testing.T) {
	s := New()
	assert.Equal(t, []string{"goal"}, s.MissingRequired(),
		"fresh document form misses only its required goal")

	s.Set("goal", StringValue("  \t "))
	assert.Equal(t, []string{"goal"}, s.MissingRequired(),
		"whitespace-only does not satisfy required")

	s.Set("goal", StringValue("tulis SOP"))
	assert.Empty(t, s.MissingRequired())

	// Hidden required fields never count.
	s.Set(schema.FieldTaskType, StringValue("application"))
	assert.Equal(t, []string{"app_description"}, s.MissingRequired())
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := New()
	s.Set("tools_available", ListValue("rag", "web_search"))

	snap := s.Snapshot()
	snap["tools_available"].List[0] = "mutated"

	assert.Equal(t, "rag", s.Get("tools_available").List[0])
}

func TestValueEqualAndEmpty(t *testing.T) {
	assert.True(t, StringValue("a").Equal(StringValue("a")))
	assert.False(t, StringValue("a").Equal(BoolValue(true)))
	assert.True(t, ListValue("x", "y").Equal(ListValue("x", "y")))
	assert.False(t, ListValue("x").Equal(ListValue("y")))

	assert.True(t, StringValue(" ").Empty())
	assert.False(t, BoolValue(false).Empty(), "a toggle always counts as filled")
	assert.True(t, ListValue().Empty())
	assert.False(t, ListValue("rag").Empty())
}
