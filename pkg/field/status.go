package field

// Status is the field's validation state. A field starts Unvalidated and
// moves to Valid or Invalid when its main behavior runs; explicit Reset
// returns it to Unvalidated.
type Status int

const (
	Unvalidated Status = iota
	Valid
	Invalid
)

func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	}
	return "unvalidated"
}

// Event identifies a controller lifecycle notification delivered to
// observers registered with Observe.
type Event string

const (
	// EventMarkupReady fires once when the controller finished binding.
	EventMarkupReady Event = "markupReady"
	// EventDirty fires when the field is marked dirty for the first time.
	EventDirty Event = "markedAsDirty"
	// EventBehaviorAdded fires for every behavior bound at construction.
	EventBehaviorAdded Event = "behaviorAdded"
	// EventUnbound fires when Destroy removed the event listeners.
	EventUnbound Event = "listenersRemoved"
	// EventInvalid fires when the field transitions to Invalid.
	EventInvalid Event = "isInvalid"
	// EventValid fires when the field transitions to Valid.
	EventValid Event = "isValid"
	// EventReset fires when the field's feedback is reset to neutral.
	EventReset Event = "resetted"
)
