package param

import (
	"regexp"
	"strconv"

	"github.com/ariaform/ariaform/pkg/locale"
)

// Source exposes a referenced field's value to parameter resolution.
// Implementations return the last canonical value the owning controller
// cached, not the live control value, so cross-field comparisons stay
// consistent with what was last validated.
type Source interface {
	NormalizedValue() string
}

// Kind discriminates the parameter shapes.
type Kind int

const (
	// KindNone marks the zero parameter used by rules that take none.
	KindNone Kind = iota
	// KindLiteral wraps a constant value.
	KindLiteral
	// KindFunc wraps a zero-argument function evaluated on every resolution.
	KindFunc
	// KindFieldRef references another field, with optional offset and fallback.
	KindFieldRef
)

// Param is the polymorphic rule parameter. The zero value is KindNone.
type Param struct {
	kind     Kind
	literal  any
	fn       func() any
	src      Source
	offset   int
	fallback string
}

// None returns the empty parameter.
func None() Param { return Param{} }

// Literal wraps a constant parameter value.
func Literal(v any) Param { return Param{kind: KindLiteral, literal: v} }

// Func wraps a late-bound parameter. fn runs on every resolution, never at
// configuration time.
func Func(fn func() any) Param { return Param{kind: KindFunc, fn: fn} }

// RefOption configures a field reference parameter.
type RefOption func(*Param)

// WithOffset shifts the resolved value: a numeric delta for number and
// length comparisons, a day count for date comparisons.
func WithOffset(n int) RefOption {
	return func(p *Param) { p.offset = n }
}

// WithFallback supplies the value used when the referenced field is empty.
func WithFallback(v string) RefOption {
	return func(p *Param) { p.fallback = v }
}

// FieldRef references another field's value, resolved when the rule runs.
func FieldRef(src Source, opts ...RefOption) Param {
	p := Param{kind: KindFieldRef, src: src}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// Kind reports the parameter's shape.
func (p Param) Kind() Kind { return p.kind }

// IsZero reports whether the parameter is the empty KindNone value.
func (p Param) IsZero() bool { return p.kind == KindNone }

// Any resolves the parameter to its raw value: the literal itself, the
// function's return value, or the referenced field's value (fallback
// applied when empty). Offsets are not applied; use the typed resolvers.
func (p Param) Any() any {
	switch p.kind {
	case KindLiteral:
		return p.literal
	case KindFunc:
		return p.fn()
	case KindFieldRef:
		v := p.src.NormalizedValue()
		if v == "" {
			return p.fallback
		}
		return v
	}
	return nil
}

// StringValue resolves the parameter to a string. Non-string values resolve
// to the empty string.
func (p Param) StringValue() string {
	s, _ := p.Any().(string)
	return s
}

// FloatValue resolves the parameter to a number for min/max comparisons.
// Field references parse the referenced value and apply the offset.
func (p Param) FloatValue() (float64, bool) {
	switch v := p.Any().(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		if p.kind == KindFieldRef {
			f += float64(p.offset)
		}
		return f, true
	}
	return 0, false
}

// LengthValue resolves the parameter to a character count for minLength and
// maxLength. Field references use the rune length of the referenced value
// plus the offset.
func (p Param) LengthValue() (int, bool) {
	switch v := p.Any().(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		if p.kind != KindFieldRef {
			n, err := strconv.Atoi(v)
			if err != nil {
				return 0, false
			}
			return n, true
		}
		return len([]rune(v)) + p.offset, true
	}
	return 0, false
}

// DateValue resolves the parameter to an ISO date for minDate and maxDate.
// The value may be in the region's format or already ISO; field reference
// offsets are applied as day counts.
func (p Param) DateValue(region locale.Region) (string, bool) {
	s, ok := p.Any().(string)
	if !ok {
		return "", false
	}
	iso, ok := locale.DateToISO(s, region.DateFormat, region.DateSeparator)
	if !ok || iso == "" {
		return "", false
	}
	if p.kind == KindFieldRef && p.offset != 0 {
		return locale.ShiftISODate(iso, p.offset)
	}
	return iso, true
}

// ListValue resolves the parameter to a list of accepted values for the
// tokens rule. The list itself may be late bound through Func.
func (p Param) ListValue() ([]string, bool) {
	switch v := p.Any().(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// PredicateValue resolves the parameter to a condition for conditional
// rules. ok is false when the parameter carries no predicate, which callers
// treat as unconditional.
func (p Param) PredicateValue() (value, ok bool) {
	b, ok := p.Any().(bool)
	return b, ok
}

// RegexpValue resolves the parameter to a compiled pattern.
func (p Param) RegexpValue() (*regexp.Regexp, bool) {
	re, ok := p.Any().(*regexp.Regexp)
	return re, ok && re != nil
}
