package schema

// TaskType is the top-level classification of what the user wants to build.
// It decides which form steps are shown and which extraction schema applies.
type TaskType string

const (
	TaskDocument    TaskType = "document"
	TaskAgent       TaskType = "agent"
	TaskApplication TaskType = "application"
)

// TaskTypes lists all task types in display order.
var TaskTypes = []TaskType{TaskDocument, TaskAgent, TaskApplication}

// Valid reports whether t is one of the known task types.
func (t TaskType) Valid() bool {
	switch t {
	case TaskDocument, TaskAgent, TaskApplication:
		return true
	}
	return false
}

// FieldKind is the closed set of control shapes a field can render as.
type FieldKind int

const (
	KindText FieldKind = iota
	KindTextArea
	KindSelect
	KindToggle
	KindRadio
	KindCheckbox
	KindButtons
)

func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTextArea:
		return "textarea"
	case KindSelect:
		return "select"
	case KindToggle:
		return "toggle"
	case KindRadio:
		return "radio"
	case KindCheckbox:
		return "checkbox"
	case KindButtons:
		return "buttons"
	default:
		return "unknown"
	}
}

// Option is a selectable choice with an optional description (buttons kind).
type Option struct {
	Value       string
	Label       string
	Description string
}

// ShowIf gates visibility of a field or step on another field's value.
type ShowIf struct {
	Field string
	Value string
}

// Field is the static definition of one form control. Loaded once, immutable.
type Field struct {
	ID          string
	Label       string
	Kind        FieldKind
	Required    bool
	Options     []Option
	Default     string
	BoolDefault bool
	HelperText  string
	ShowIf      *ShowIf
}

// Step is an ordered group of fields under a title.
type Step struct {
	ID     string
	Title  string
	Fields []Field
	ShowIf *ShowIf
}
