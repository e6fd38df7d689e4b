// Package form holds the mutable state behind the input form: field values,
// the task-change reset rule, and visibility evaluation.
package form

import (
	"fmt"
	"sort"
	"strings"

	"metaprompt/internal/schema"
)

// ValueKind discriminates the shape a field value can take.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueBool
	ValueList
)

// Value is the closed variant of field values: string, bool, or string set.
type Value struct {
	Kind ValueKind
	Str  string
	Bool bool
	List []string
}

func StringValue(s string) Value { return Value{Kind: ValueString, Str: s} }
func BoolValue(b bool) Value     { return Value{Kind: ValueBool, Bool: b} }

func ListValue(items ...string) Value {
	v := Value{Kind: ValueList, List: make([]string, len(items))}
	copy(v.List, items)
	return v
}

// Equal compares two values by kind and content.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case ValueBool:
		return v.Bool == o.Bool
	case ValueList:
		if len(v.List) != len(o.List) {
			return false
		}
		for i := range v.List {
			if v.List[i] != o.List[i] {
				return false
			}
		}
		return true
	default:
		return v.Str == o.Str
	}
}

// Empty reports whether the value counts as unfilled for required validation.
func (v Value) Empty() bool {
	switch v.Kind {
	case ValueBool:
		return false
	case ValueList:
		return len(v.List) == 0
	default:
		return strings.TrimSpace(v.Str) == ""
	}
}

// State maps field ids to values. Create it with New; the zero value is not
// usable.
type State struct {
	values map[string]Value
}

// defaultValue builds the Initialize()-time value for a field.
func defaultValue(f schema.Field) Value {
	switch f.Kind {
	case schema.KindCheckbox:
		return ListValue()
	case schema.KindToggle:
		return BoolValue(f.BoolDefault)
	default:
		return StringValue(f.Default)
	}
}

// New returns a fresh state with every field at its declared default.
// Deterministic: two calls produce deeply equal states.
func New() *State {
	s := &State{values: make(map[string]Value)}
	for _, f := range schema.AllFields() {
		s.values[f.ID] = defaultValue(f)
	}
	return s
}

// Get returns the value at id, or a zero string value for unknown ids.
func (s *State) Get(id string) Value { return s.values[id] }

// TaskType returns the currently selected task type.
func (s *State) TaskType() schema.TaskType {
	return schema.TaskType(s.values[schema.FieldTaskType].Str)
}

// Set replaces the value at id. Setting the task selector to a different
// defined value resets every field task-specific to the previous type back to
// its default, so stale values cannot leak into a request for the new type.
func (s *State) Set(id string, v Value) {
	if id == schema.FieldTaskType {
		old := s.values[id].Str
		s.values[id] = v
		if old != "" && old != v.Str {
			s.resetTaskFields(schema.TaskType(old))
		}
		return
	}
	s.values[id] = v
}

func (s *State) resetTaskFields(old schema.TaskType) {
	for _, id := range schema.TaskFields(old) {
		if f, ok := schema.FieldByID(id); ok {
			s.values[id] = defaultValue(f)
		}
	}
}

// Merge overwrites fields from an extraction result. Pure last-write-wins:
// no concatenation with existing values.
func (s *State) Merge(fields map[string]string) {
	for id, val := range fields {
		s.values[id] = StringValue(val)
	}
}

// StepVisible evaluates a step's predicate against current state.
func (s *State) StepVisible(st schema.Step) bool { return s.showIf(st.ShowIf) }

// FieldVisible evaluates a field's predicate combined with its step's.
func (s *State) FieldVisible(st schema.Step, f schema.Field) bool {
	return s.StepVisible(st) && s.showIf(f.ShowIf)
}

func (s *State) showIf(cond *schema.ShowIf) bool {
	if cond == nil {
		return true
	}
	return s.values[cond.Field].Str == cond.Value
}

// MissingRequired returns the ids of visible required fields that are empty,
// in form order. Hidden fields are skipped regardless of their stored value.
func (s *State) MissingRequired() []string {
	var missing []string
	for _, st := range schema.Steps() {
		for _, f := range st.Fields {
			if !f.Required || !s.FieldVisible(st, f) {
				continue
			}
			if s.values[f.ID].Empty() {
				missing = append(missing, f.ID)
			}
		}
	}
	return missing
}

// Snapshot returns a deep copy of the current values.
func (s *State) Snapshot() map[string]Value {
	out := make(map[string]Value, len(s.values))
	for id, v := range s.values {
		if v.Kind == ValueList {
			out[id] = ListValue(v.List...)
			continue
		}
		out[id] = v
	}
	return out
}

// Equal reports whether two states hold identical values.
func (s *State) Equal(o *State) bool {
	if len(s.values) != len(o.values) {
		return false
	}
	for id, v := range s.values {
		if !v.Equal(o.values[id]) {
			return false
		}
	}
	return true
}

// String renders a compact debug form, fields sorted by id.
func (s *State) String() string {
	ids := make([]string, 0, len(s.values))
	for id := range s.values {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var b strings.Builder
	for _, id := range ids {
		v := s.values[id]
		switch v.Kind {
		case ValueBool:
			fmt.Fprintf(&b, "%s=%t ", id, v.Bool)
		case ValueList:
			fmt.Fprintf(&b, "%s=[%s] ", id, strings.Join(v.List, ","))
		default:
			fmt.Fprintf(&b, "%s=%q ", id, v.Str)
		}
	}
	return strings.TrimSpace(b.String())
}
