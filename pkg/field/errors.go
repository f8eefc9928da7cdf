package field

import "errors"

var (
	// ErrNoView is returned by New when no view adapter is supplied.
	ErrNoView = errors.New("field: view is required")
	// ErrNoName is returned by New when the field name is empty. The name
	// keys the field's value during form serialization.
	ErrNoName = errors.New("field: field name is required")
	// ErrNoBehaviors is returned by New when no behavior is configured.
	ErrNoBehaviors = errors.New("field: at least one behavior is required")
	// ErrUnknownRule is returned by New when a behavior references a rule
	// name the registry does not know.
	ErrUnknownRule = errors.New("field: unknown rule")
)
