// Package spinner implements a bounded numeric counter widget: a value
// clamped to an inclusive range, stepped by increment and decrement
// operations, with typed input corrected to the nearest bound.
//
// Programmatic Set with an out-of-range value is a programming error and
// panics; values arriving from the user through the view are expected to
// be wrong and are corrected instead.
package spinner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/ariaform/ariaform/pkg/ids"
)

var (
	// ErrNoView is returned by New when no view adapter is supplied.
	ErrNoView = errors.New("spinner: view is required")
	// ErrInvalidBounds is returned by New when min exceeds max.
	ErrInvalidBounds = errors.New("spinner: min must not exceed max")
	// ErrOutOfRange is returned by New when the initial value is outside
	// the bounds.
	ErrOutOfRange = errors.New("spinner: initial value out of range")
)

// Event identifies a spinner notification.
type Event string

const (
	// EventChanged fires when the value changed to what was asked.
	EventChanged Event = "changed"
	// EventCorrected fires when user input was clamped or reverted.
	EventCorrected Event = "corrected"
)

// View is the adapter between the spinner and the host's control. The
// spinner binds to the "change" event for typed input; the host wires its
// step buttons to Increment and Decrement directly.
type View interface {
	Value() string
	SetValue(text string)
	OnEvent(events string, handler func(eventType string))
	OffEvent(events string)
}

// Spinner is a bounded counter. Safe for concurrent use.
type Spinner struct {
	view View
	min  int
	max  int
	step int

	mu          sync.Mutex
	value       int
	destroyed   bool
	boundEvents []string
	observers   []func(e Event, value int)
}

// Option configures a Spinner.
type Option func(*Spinner)

// WithStep sets the increment size. Defaults to 1; a step below 1 panics.
func WithStep(step int) Option {
	if step < 1 {
		panic(fmt.Sprintf("spinner: step must be positive, got %d", step))
	}
	return func(s *Spinner) { s.step = step }
}

// WithObserver registers a notification callback. Callbacks run
// synchronously and must not call back into the spinner.
func WithObserver(fn func(e Event, value int)) Option {
	return func(s *Spinner) { s.observers = append(s.observers, fn) }
}

// New builds a spinner over [min, max] starting at initial and binds it to
// the view's change event.
func New(view View, min, max, initial int, opts ...Option) (*Spinner, error) {
	if view == nil {
		return nil, ErrNoView
	}
	if min > max {
		return nil, ErrInvalidBounds
	}
	if initial < min || initial > max {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, initial, min, max)
	}

	s := &Spinner{view: view, min: min, max: max, step: 1, value: initial}
	for _, opt := range opts {
		opt(s)
	}

	events := ids.NamespaceEvents("change", "ariaform")
	s.view.OnEvent(events, func(string) { s.handleChange() })
	s.boundEvents = append(s.boundEvents, events)
	s.view.SetValue(strconv.Itoa(initial))

	return s, nil
}

// Value returns the current value.
func (s *Spinner) Value() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set moves the value to v. Calling Set with a value outside the bounds is
// a programming error and panics; user input goes through the view's
// change event and is corrected, never panicked on.
func (s *Spinner) Set(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return
	}
	if v < s.min || v > s.max {
		panic(fmt.Sprintf("spinner: value %d out of range [%d, %d]", v, s.min, s.max))
	}
	s.apply(v, EventChanged)
}

// Increment steps the value up, clamping at the upper bound.
func (s *Spinner) Increment() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return
	}
	s.apply(min(s.value+s.step, s.max), EventChanged)
}

// Decrement steps the value down, clamping at the lower bound.
func (s *Spinner) Decrement() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return
	}
	s.apply(max(s.value-s.step, s.min), EventChanged)
}

// Destroy unbinds the spinner from the view. Further calls are no-ops.
func (s *Spinner) Destroy() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return
	}
	s.destroyed = true
	for _, events := range s.boundEvents {
		s.view.OffEvent(events)
	}
	s.boundEvents = nil
}

// handleChange settles typed input: non-numeric text reverts to the
// current value, out-of-range numbers clamp to the nearest bound.
func (s *Spinner) handleChange() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.destroyed {
		return
	}

	raw := strings.TrimSpace(s.view.Value())
	typed, err := strconv.Atoi(raw)
	switch {
	case err != nil:
		s.apply(s.value, EventCorrected)
	case typed < s.min:
		s.apply(s.min, EventCorrected)
	case typed > s.max:
		s.apply(s.max, EventCorrected)
	default:
		s.apply(typed, EventChanged)
	}
}

func (s *Spinner) apply(v int, e Event) {
	s.value = v
	s.view.SetValue(strconv.Itoa(v))
	for _, fn := range s.observers {
		fn(e, v)
	}
}

// MemoryView is an in-memory View for tests and headless use.
type MemoryView struct {
	mu       sync.Mutex
	text     string
	bindings []memBinding
}

type memBinding struct {
	names   []string
	handler func(eventType string)
}

// NewMemoryView returns an empty MemoryView.
func NewMemoryView() *MemoryView {
	return &MemoryView{}
}

// SetText sets the control's raw text, as if the user typed it.
func (m *MemoryView) SetText(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
}

// Fire delivers an event to every matching handler, namespaced bindings
// included.
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

func (m *MemoryView) Value() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

func (m *MemoryView) SetValue(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
}

func (m *MemoryView) OnEvent(events string, handler func(eventType string)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bindings = append(m.bindings, memBinding{names: strings.Fields(events), handler: handler})
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
