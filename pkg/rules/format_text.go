package rules

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ariaform/ariaform/pkg/param"
)

// Replacement is one substitution applied by the replace autoformatter.
type Replacement struct {
	SearchFor   *regexp.Regexp
	ReplaceWith string
}

func trim(value string, _ param.Param, _ Context) string {
	return strings.TrimSpace(value)
}

func uppercase(value string, _ param.Param, _ Context) string {
	return strings.ToUpper(value)
}

func lowercase(value string, _ param.Param, _ Context) string {
	return strings.ToLower(value)
}

// capitalize uppercases the first letter of every word, leaving the rest of
// each word untouched.
func capitalize(value string, _ param.Param, _ Context) string {
	return cases.Title(language.Und, cases.NoLower).String(value)
}

// capitalizeFirst uppercases the first letter of the whole value.
func capitalizeFirst(value string, _ param.Param, _ Context) string {
	runes := []rune(value)
	if len(runes) == 0 {
		return value
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// replace applies one or an ordered list of substitutions. The parameter
// resolves to a Replacement or []Replacement.
func replace(value string, p param.Param, _ Context) string {
	if value == "" {
		return value
	}

	switch subs := p.Any().(type) {
	case Replacement:
		return applyReplacement(value, subs)
	case []Replacement:
		for _, sub := range subs {
			value = applyReplacement(value, sub)
		}
		return value
	}
	return value
}

func applyReplacement(value string, sub Replacement) string {
	if sub.SearchFor == nil {
		return value
	}
	return sub.SearchFor.ReplaceAllString(value, sub.ReplaceWith)
}
