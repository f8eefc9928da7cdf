// Package form aggregates field controllers into a submittable form. It
// validates every field on demand, serializes field values, posts them to
// the form's action endpoint, and classifies the response: success,
// rejection with a server-provided message, or server error. Wizard forms
// group fields into steps that validate independently.
//
// Submission is guarded against double fire: while one submission is in
// flight, or during the short window before the submit control is
// re-enabled, further Submit calls fail with ErrSubmitInFlight.
package form
