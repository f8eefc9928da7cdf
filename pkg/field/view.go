package field

import (
	"strings"
	"sync"

	"github.com/ariaform/ariaform/pkg/rules"
)

// View is the adapter between a controller and the host's actual control.
// The controller never touches markup directly; everything it needs from
// the rendering side goes through this interface. Implementations for a
// real UI translate these calls into DOM or widget operations; MemoryView
// is the headless implementation used in tests and server-side rendering.
type View interface {
	// ReadValue returns the control's current value in canonical form.
	ReadValue() rules.Value
	// WriteValue replaces the control's text, used by autoformatters.
	WriteValue(text string)
	// SelectionRange returns the caret or selection at event time.
	SelectionRange() rules.Selection
	// AddClass and RemoveClass toggle feedback classes on the field group.
	AddClass(name string)
	RemoveClass(name string)
	// SetAriaInvalid sets the control's aria-invalid state.
	SetAriaInvalid(invalid bool)
	// SetErrorMessageVisible shows or hides the field's error box.
	SetErrorMessageVisible(visible bool, text string)
	// SetSuccessMessageVisible shows or hides the field's success box.
	SetSuccessMessageVisible(visible bool, text string)
	// OnEvent binds handler to a space-separated list of (possibly
	// namespaced) event names. Multiple handlers per event are allowed and
	// run in binding order.
	OnEvent(events string, handler func(eventType string))
	// OffEvent removes every handler bound under the given event names.
	OffEvent(events string)
}

// Classes names the feedback classes a controller toggles on its field
// group.
type Classes struct {
	Valid string
	Error string
}

// DefaultClasses returns the standard feedback class names.
func DefaultClasses() Classes {
	return Classes{
		Valid: "field-group_valid",
		Error: "field-group_error",
	}
}

// MemoryView is an in-memory View for tests and headless validation. Tests
// drive it with SetText, SetChecked, SelectOption and Fire, and assert on
// the feedback state it records. Safe for concurrent use.
type MemoryView struct {
	mu          sync.Mutex
	kind        rules.FieldKind
	text        string
	checked     bool
	selection   rules.Selection
	classes     map[string]bool
	ariaInvalid bool
	errVisible  bool
	errText     string
	okVisible   bool
	okText      string
	bindings    []memBinding
}

type memBinding struct {
	names   []string
	handler func(eventType string)
}

// NewMemoryView returns an empty MemoryView for the given control kind.
func NewMemoryView(kind rules.FieldKind) *MemoryView {
	return &MemoryView{kind: kind, classes: map[string]bool{}}
}

// SetText sets the control's raw text. For RadioGroup and Select kinds it
// sets the selected option; use the empty string to clear the selection.
func (m *MemoryView) SetText(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
}

// SetChecked sets a checkbox control's checked state.
func (m *MemoryView) SetChecked(checked bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.checked = checked
}

// SelectOption selects an option on a radio group or select control.
func (m *MemoryView) SelectOption(value string) {
	m.SetText(value)
}

// SetSelection positions the caret or selection for subsequent events.
func (m *MemoryView) SetSelection(start, end int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selection = rules.Selection{Start: start, End: end}
}

// Fire delivers an event to every handler bound for eventType. A handler
// bound under a namespaced name ("blur.ariaform") receives events fired
// under the base name ("blur"). Handlers run synchronously in binding
// order.
func (m *MemoryView) Fire(eventType string) {
	m.mu.Lock()
	var handlers []func(string)
	for _, b := range m.bindings {
		for _, name := range b.names {
			if name == eventType || strings.HasPrefix(name, eventType+".") {
				handlers = append(handlers, b.handler)
				break
			}
		}
	}
	m.mu.Unlock()

	for _, h := range handlers {
		h(eventType)
	}
}

// HasClass reports whether a feedback class is currently set.
func (m *MemoryView) HasClass(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.classes[name]
}

// AriaInvalid reports the recorded aria-invalid state.
func (m *MemoryView) AriaInvalid() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ariaInvalid
}

// ErrorMessage returns the error box state.
func (m *MemoryView) ErrorMessage() (visible bool, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errVisible, m.errText
}

// SuccessMessage returns the success box state.
func (m *MemoryView) SuccessMessage() (visible bool, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.okVisible, m.okText
}

// Text returns the control's current raw text.
func (m *MemoryView) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

func (m *MemoryView) ReadValue() rules.Value {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.kind {
	case rules.Checkbox:
		return rules.CheckboxValue(m.checked)
	case rules.RadioGroup:
		return rules.RadioValue(m.text, m.text != "")
	case rules.Select:
		return rules.SelectValue(m.text)
	default:
		return rules.TextValue(m.text)
	}
}

func (m *MemoryView) WriteValue(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
}

func (m *MemoryView) SelectionRange() rules.Selection {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.selection
}

func (m *MemoryView) AddClass(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.classes[name] = true
}

func (m *MemoryView) RemoveClass(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.classes, name)
}

func (m *MemoryView) SetAriaInvalid(invalid bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ariaInvalid = invalid
}

func (m *MemoryView) SetErrorMessageVisible(visible bool, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errVisible, m.errText = visible, text
}

func (m *MemoryView) SetSuccessMessageVisible(visible bool, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.okVisible, m.okText = visible, text
}

func (m *MemoryView) OnEvent(events string, handler func(eventType string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bindings = append(m.bindings, memBinding{
		names:   strings.Fields(events),
		handler: handler,
	})
}

func (m *MemoryView) OffEvent(events string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	remove := strings.Fields(events)
	kept := m.bindings[:0]
	for _, b := range m.bindings {
		matched := false
		for _, name := range b.names {
			for _, r := range remove {
				if name == r {
					matched = true
				}
			}
		}
		if !matched {
			kept = append(kept, b)
		}
	}
	m.bindings = kept
}
