// Package rules provides the named rule functions the field controller
// interprets: validators, which check a field value and report a failure
// code, and autoformatters, which transform the value in place.
//
// Rules are looked up by name in a Registry. The built-in set covers the
// common cases (presence, character classes, numbers, locale dates and
// times, lengths, cross-field matching, patterns); hosts can register
// additional rules at startup. Validators never return Go errors: a
// validation failure is an expected value, represented by the Code of the
// rule that rejected the input, which the host maps to a user-facing
// message.
//
// Every validator except "required" and "bool" treats the empty string as
// valid. Absence is the concern of the required rule alone, so bounds and
// format rules do not fire on fields the user left blank. This mirrors the
// behavior of the system this package descends from and is a deliberate
// policy, not an accident: pair any bounded field with "required" when
// blank input must be rejected.
package rules
