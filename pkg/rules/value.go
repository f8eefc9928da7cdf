package rules

// FieldKind is the closed set of control variants, each with its own
// value-read strategy. The kind is fixed at controller construction, never
// inferred at runtime.
type FieldKind int

const (
	// Text covers free-text controls: input, textarea, and input types
	// such as number or date that surface their value as text.
	Text FieldKind = iota
	// Checkbox carries a checked flag instead of text.
	Checkbox
	// RadioGroup carries the selected option's value, or nothing when no
	// option is selected.
	RadioGroup
	// Select carries the selected option's value.
	Select
)

// Value is the canonical current value of a field: raw text for text-like
// controls, a checked flag for checkboxes, the selected option (possibly
// none) for radio groups and selects.
type Value struct {
	kind FieldKind
	text string
	set  bool
}

// TextValue wraps free text.
func TextValue(s string) Value {
	return Value{kind: Text, text: s, set: s != ""}
}

// CheckboxValue wraps a checkbox's checked state.
func CheckboxValue(checked bool) Value {
	return Value{kind: Checkbox, set: checked}
}

// RadioValue wraps a radio group's selection. selected=false means no
// option is chosen and the option value is ignored.
func RadioValue(option string, selected bool) Value {
	if !selected {
		return Value{kind: RadioGroup}
	}
	return Value{kind: RadioGroup, text: option, set: true}
}

// SelectValue wraps a select control's chosen option.
func SelectValue(option string) Value {
	return Value{kind: Select, text: option, set: option != ""}
}

// Kind reports the control variant this value came from.
func (v Value) Kind() FieldKind { return v.kind }

// String returns the textual form of the value: the text or selected
// option, or the empty string for an unchecked checkbox or empty selection.
func (v Value) String() string { return v.text }

// Truthy reports whether the field holds something: checked, selected, or
// non-empty text.
func (v Value) Truthy() bool { return v.set }

// Len returns the value's length in runes.
func (v Value) Len() int { return len([]rune(v.text)) }

// Empty reports whether the textual form is empty.
func (v Value) Empty() bool { return v.text == "" }
