package field

import "github.com/ariaform/ariaform/pkg/param"

// DirtyGate restricts when a behavior's validation rules run.
type DirtyGate int

const (
	// GateAny runs the rules regardless of dirty state.
	GateAny DirtyGate = iota
	// GateDirtyOnly runs the rules only after the field was marked dirty,
	// e.g. "show errors only after the first blur".
	GateDirtyOnly
	// GateCleanOnly runs the rules only while the field is untouched.
	GateCleanOnly
)

// RuleUse names one rule together with its parameter. Slices of RuleUse
// preserve the declared rule order, which is the execution order.
type RuleUse struct {
	Name  string
	Param param.Param
}

// Behavior bundles trigger events with the rules to run when they fire.
type Behavior struct {
	// Events is a space-separated list of event names, e.g. "blur input".
	Events string
	// Autoformat rules run first, in order, each output feeding the next.
	Autoformat []RuleUse
	// Validate rules run in declared order; the first failure wins and the
	// remaining rules are skipped.
	Validate []RuleUse
	// Main marks the authoritative behavior: its success sets the field
	// Valid, and form aggregation reads the status it produces. A field
	// should have exactly one main behavior.
	Main bool
	// Gate restricts validation by dirty state. Autoformatting is not
	// gated.
	Gate DirtyGate
}
