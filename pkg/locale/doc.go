// Package locale converts regional date and time representations to and from
// their canonical ISO forms and carries the region settings the rest of the
// engine depends on (date/time formats, separators, decimal separator).
//
// All converters are pure functions. A conversion that cannot be performed
// reports ok=false instead of returning a partial result; the validation
// rules treat that as a failure of the rule being evaluated, never as a
// program error.
//
// # Usage
//
//	iso, ok := locale.DateToISO("24/12/2019", locale.DMY, "/")
//	// iso == "2019-12-24", ok == true
//
// Region settings can be populated from the environment:
//
//	region, err := locale.FromEnv()
package locale
