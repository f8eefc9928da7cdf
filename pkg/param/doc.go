// Package param models the polymorphic rule parameter used by comparison
// validators and autoformatters: a literal value, a zero-argument function
// evaluated at validation time, or a reference to another field whose
// current value is read when the rule runs.
//
// The three shapes are an explicit tagged union rather than type switches
// over arbitrary values, so every comparison rule ("must be at least",
// "must match", "must be after") shares one resolution algorithm while
// supporting constants, computed thresholds and cross-field references
// uniformly. Field references are late bound: a parameter such as "after
// the sibling field's date" is re-resolved on every validation pass.
package param
