package form

import "sync"

// View is the adapter between the form aggregator and the host's rendering
// of the form chrome: the submit control and the form-level message boxes.
type View interface {
	// SetControlEnabled enables or disables the submit control.
	SetControlEnabled(enabled bool)
	// SetErrorMessageVisible shows or hides the form-level error box.
	SetErrorMessageVisible(visible bool, text string)
	// SetSuccessMessageVisible shows or hides the form-level success box.
	SetSuccessMessageVisible(visible bool, text string)
}

// MemoryView is an in-memory View for tests and headless use. The zero
// value reports the control as enabled. Safe for concurrent use.
type MemoryView struct {
	mu         sync.Mutex
	disabled   bool
	errVisible bool
	errText    string
	okVisible  bool
	okText     string
}

// NewMemoryView returns an empty MemoryView.
func NewMemoryView() *MemoryView {
	return &MemoryView{}
}

// ControlEnabled reports whether the submit control is enabled.
func (m *MemoryView) ControlEnabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.disabled
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

func (m *MemoryView) SetControlEnabled(enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.disabled = !enabled
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
