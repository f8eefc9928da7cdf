package rules

import (
	"slices"
	"strings"
	"unicode"

	"github.com/ariaform/ariaform/pkg/locale"
	"github.com/ariaform/ariaform/pkg/param"
)

// letters rejects values containing any digit.
func letters(v Value, _ param.Param, _ locale.Region) Code {
	if strings.ContainsFunc(v.String(), unicode.IsDigit) {
		return CodeLetters
	}
	return CodeOK
}

// onlyLetters accepts values made of letters alone, across Unicode letter
// ranges. The empty string passes.
func onlyLetters(v Value, _ param.Param, _ locale.Region) Code {
	if strings.ContainsFunc(v.String(), func(r rune) bool { return !unicode.IsLetter(r) }) {
		return CodeOnlyLetters
	}
	return CodeOK
}

// digits rejects values containing any letter.
func digits(v Value, _ param.Param, _ locale.Region) Code {
	if strings.ContainsFunc(v.String(), unicode.IsLetter) {
		return CodeDigits
	}
	return CodeOK
}

// onlyDigits accepts values made of decimal digits alone.
func onlyDigits(v Value, _ param.Param, _ locale.Region) Code {
	if strings.ContainsFunc(v.String(), func(r rune) bool { return !unicode.IsDigit(r) }) {
		return CodeOnlyDigits
	}
	return CodeOK
}

// required rejects absent values: empty text, an unchecked checkbox, a
// radio group with nothing selected. When the parameter carries a
// predicate, the field is required only while the predicate holds at
// validation time.
func required(v Value, p param.Param, _ locale.Region) Code {
	if cond, ok := p.PredicateValue(); ok && !cond {
		return CodeOK
	}
	if !v.Truthy() {
		return CodeRequired
	}
	return CodeOK
}

// minLength checks the rune length against the resolved lower bound,
// inclusive. Zero length passes; presence is required's concern.
func minLength(v Value, p param.Param, _ locale.Region) Code {
	if v.Len() == 0 {
		return CodeOK
	}
	bound, ok := p.LengthValue()
	if !ok || v.Len() < bound {
		return CodeMinLength
	}
	return CodeOK
}

// maxLength checks the rune length against the resolved upper bound,
// inclusive.
func maxLength(v Value, p param.Param, _ locale.Region) Code {
	if v.Len() == 0 {
		return CodeOK
	}
	bound, ok := p.LengthValue()
	if !ok || v.Len() > bound {
		return CodeMaxLength
	}
	return CodeOK
}

// tokens accepts values equal to one entry of the resolved list. The list
// may be late bound to support dynamically populated option sets.
func tokens(v Value, p param.Param, _ locale.Region) Code {
	list, ok := p.ListValue()
	if !ok || !slices.Contains(list, v.String()) {
		return CodeTokens
	}
	return CodeOK
}

// match accepts values equal to the referenced field's resolved value.
func match(v Value, p param.Param, _ locale.Region) Code {
	if v.String() != p.StringValue() {
		return CodeMatch
	}
	return CodeOK
}

// matchMain is match for references to optional fields: an empty referenced
// value matches automatically. It fails with CodeMatch.
func matchMain(v Value, p param.Param, _ locale.Region) Code {
	ref := p.StringValue()
	if ref == "" {
		return CodeOK
	}
	if v.String() != ref {
		return CodeMatch
	}
	return CodeOK
}

// customRegex tests the value against a caller-supplied pattern.
func customRegex(v Value, p param.Param, _ locale.Region) Code {
	re, ok := p.RegexpValue()
	if !ok || !re.MatchString(v.String()) {
		return CodeCustomRegex
	}
	return CodeOK
}
