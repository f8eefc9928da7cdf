// Package field implements the per-field controller: it owns one input's
// cached value, dirty state and validation status, executes the field's
// configured behaviors (ordered bundles of trigger events, autoformat rules
// and validation rules), and drives visual feedback through a narrow view
// adapter interface.
//
// A controller is created per field group, bound to the view's events, and
// torn down with Destroy. Validation failures are values (failure codes
// rendered as messages), never errors; only structural configuration
// problems make New fail.
//
// Controllers are event-loop minded: events are expected to arrive from a
// single goroutine and the last write wins, with no built-in debouncing.
// The one concurrent path is the remote "ajax" rule, whose result is
// applied under the controller's lock and discarded when stale.
package field
