// Package messages maps validation failure codes to user-facing text.
// The default catalog covers every built-in rule; hosts override entries
// per field or load whole catalogs from YAML.
package messages

import (
	"fmt"
	"io"
	"maps"

	"gopkg.in/yaml.v3"

	"github.com/ariaform/ariaform/pkg/rules"
)

// DefaultSuccess is the success message shown when a field's main behavior
// passes and no override is configured.
const DefaultSuccess = "Perfect! You told us exactly what we wanted to know!"

// Catalog maps failure codes to messages.
type Catalog map[rules.Code]string

// Default returns the built-in catalog. The returned map is a copy; callers
// may mutate it freely.
func Default() Catalog {
	return maps.Clone(defaults)
}

var defaults = Catalog{
	rules.CodeLetters:     "Digits are not allowed in this field",
	rules.CodeOnlyLetters: "Only letters are accepted",
	rules.CodeDigits:      "Letters are not allowed in this field",
	rules.CodeOnlyDigits:  "Only digits are accepted",
	rules.CodeInt:         "Enter a whole number (e.g. 12)",
	rules.CodeFloat:       "Enter a number (e.g. 12.168 or 16)",
	rules.CodeBool:        "You have to check this checkbox in order to continue",
	rules.CodeDate:        "Not a valid date",
	rules.CodeMinDate:     "The date entered is too far in the past",
	rules.CodeMaxDate:     "The date entered is too far in the future",
	rules.CodeTime:        "Enter a valid time (e.g. 10:30)",
	rules.CodeEmail:       "Enter a valid email address",
	rules.CodePassword:    "Password is not secure",
	rules.CodeMin:         "The entered number is too small",
	rules.CodeMax:         "The entered number is too big",
	rules.CodeMinLength:   "The length of the input is too short",
	rules.CodeMaxLength:   "Field length exceeds the maximum number of chars allowed",
	rules.CodeRequired:    "This field is required to successfully complete the form",
	rules.CodeTokens:      "Please choose a value from the list",
	rules.CodeMatch:       "No match",
	rules.CodeCustomRegex: "The value has an invalid format",
	rules.CodeAjax:        "The server rejected this value",
	rules.CodeAjaxError:   "Server error.",
}

// Lookup returns the message for code, falling back to the default catalog
// when the receiver has no entry.
func (c Catalog) Lookup(code rules.Code) string {
	if msg, ok := c[code]; ok {
		return msg
	}
	return defaults[code]
}

// Merge returns a copy of the receiver with overrides applied on top.
func (c Catalog) Merge(overrides Catalog) Catalog {
	merged := maps.Clone(c)
	if merged == nil {
		merged = Catalog{}
	}
	maps.Copy(merged, overrides)
	return merged
}

// LoadYAML reads a catalog from YAML, a flat mapping of failure code to
// message:
//
//	required: Dieses Feld ist ein Pflichtfeld
//	email: Geben Sie eine gültige E-Mail-Adresse ein
func LoadYAML(r io.Reader) (Catalog, error) {
	raw := map[string]string{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode message catalog: %w", err)
	}

	catalog := make(Catalog, len(raw))
	for code, msg := range raw {
		catalog[rules.Code(code)] = msg
	}
	return catalog, nil
}
