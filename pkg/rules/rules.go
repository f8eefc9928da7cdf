package rules

import (
	"fmt"

	"github.com/ariaform/ariaform/pkg/locale"
	"github.com/ariaform/ariaform/pkg/param"
)

// Code names a validation failure. The empty code means the value passed.
// Codes double as the key under which the host looks up the user-facing
// message for the failure.
type Code string

// CodeOK is the empty code reported by a passing validator.
const CodeOK Code = ""

// Failure codes of the built-in validators. Each validator is registered
// under the name matching its code, except matchMain which is registered as
// RuleMatchMain but fails with CodeMatch.
const (
	CodeLetters     Code = "letters"
	CodeOnlyLetters Code = "onlyLetters"
	CodeDigits      Code = "digits"
	CodeOnlyDigits  Code = "onlyDigits"
	CodeInt         Code = "int"
	CodeFloat       Code = "float"
	CodeBool        Code = "bool"
	CodeDate        Code = "date"
	CodeMinDate     Code = "minDate"
	CodeMaxDate     Code = "maxDate"
	CodeTime        Code = "time"
	CodeEmail       Code = "email"
	CodePassword    Code = "password"
	CodeMin         Code = "min"
	CodeMax         Code = "max"
	CodeMinLength   Code = "minLength"
	CodeMaxLength   Code = "maxLength"
	CodeRequired    Code = "required"
	CodeTokens      Code = "tokens"
	CodeMatch       Code = "match"
	CodeCustomRegex Code = "customRegex"
	CodeAjax        Code = "ajax"
	CodeAjaxError   Code = "ajaxError"
)

// RuleMatchMain is the registry name of the matchMain validator.
const RuleMatchMain = "matchMain"

// RuleAjax names the asynchronous remote validator. It is recognized by the
// field controller rather than executed through the synchronous registry
// table; see RemoteChecker.
const RuleAjax = "ajax"

// Names of the built-in autoformatters.
const (
	FmtTrim             = "trim"
	FmtUppercase        = "uppercase"
	FmtLowercase        = "lowercase"
	FmtCapitalize       = "capitalize"
	FmtCapitalizeFirst  = "capitalizeFirst"
	FmtReplace          = "replace"
	FmtAutocompleteDate = "autocompleteDate"
	FmtInsertCharAt     = "insertCharAt"
	FmtInsertCharEvery  = "insertCharEvery"
)

// Validator checks a field value against an optional parameter under the
// given region settings. It returns CodeOK for valid input and the failure
// code otherwise.
type Validator func(v Value, p param.Param, region locale.Region) Code

// Context carries the editing state an autoformatter may need.
type Context struct {
	Region locale.Region
	// IsAdding is true when the last value change grew the text. Mask
	// formatters suppress separator reinsertion while the user deletes.
	IsAdding bool
	// Selection is the control's caret/selection range at event time.
	Selection Selection
	// EventType is the name of the triggering event, e.g. "input" or "blur".
	EventType string
}

// Selection is a caret position or selected range within the control.
type Selection struct {
	Start int
	End   int
}

// Formatter transforms a field value. Formatters run in declared order,
// each output feeding the next.
type Formatter func(value string, p param.Param, fctx Context) string

// Registry maps rule names to rule functions for the two rule families.
// The zero value is unusable; NewRegistry returns one preloaded with the
// built-in rules, open for host extension.
type Registry struct {
	validators map[string]Validator
	formatters map[string]Formatter
}

// NewRegistry returns a registry with all built-in validators and
// autoformatters registered.
func NewRegistry() *Registry {
	r := &Registry{
		validators: make(map[string]Validator),
		formatters: make(map[string]Formatter),
	}

	for code, v := range map[Code]Validator{
		CodeLetters:     letters,
		CodeOnlyLetters: onlyLetters,
		CodeDigits:      digits,
		CodeOnlyDigits:  onlyDigits,
		CodeInt:         intRule,
		CodeFloat:       floatRule,
		CodeBool:        boolRule,
		CodeDate:        dateRule,
		CodeMinDate:     minDate,
		CodeMaxDate:     maxDate,
		CodeTime:        timeRule,
		CodeEmail:       email,
		CodePassword:    password,
		CodeMin:         minRule,
		CodeMax:         maxRule,
		CodeMinLength:   minLength,
		CodeMaxLength:   maxLength,
		CodeRequired:    required,
		CodeTokens:      tokens,
		CodeMatch:       match,
		CodeCustomRegex: customRegex,
	} {
		r.Register(string(code), v)
	}
	r.Register(RuleMatchMain, matchMain)

	for name, f := range map[string]Formatter{
		FmtTrim:             trim,
		FmtUppercase:        uppercase,
		FmtLowercase:        lowercase,
		FmtCapitalize:       capitalize,
		FmtCapitalizeFirst:  capitalizeFirst,
		FmtReplace:          replace,
		FmtAutocompleteDate: autocompleteDate,
		FmtInsertCharAt:     insertCharAt,
		FmtInsertCharEvery:  insertCharEvery,
	} {
		r.RegisterFormatter(name, f)
	}

	return r
}

// Register adds a validator under name. Registering an empty name, a nil
// function or a name already taken is a programming error and panics.
func (r *Registry) Register(name string, v Validator) {
	if name == "" || v == nil {
		panic("rules: validator registration requires a name and a function")
	}
	if _, exists := r.validators[name]; exists {
		panic(fmt.Sprintf("rules: validator %q already registered", name))
	}
	r.validators[name] = v
}

// RegisterFormatter adds an autoformatter under name, with the same
// fail-fast contract as Register.
func (r *Registry) RegisterFormatter(name string, f Formatter) {
	if name == "" || f == nil {
		panic("rules: formatter registration requires a name and a function")
	}
	if _, exists := r.formatters[name]; exists {
		panic(fmt.Sprintf("rules: formatter %q already registered", name))
	}
	r.formatters[name] = f
}

// Validator looks up a validator by name.
func (r *Registry) Validator(name string) (Validator, bool) {
	v, ok := r.validators[name]
	return v, ok
}

// Formatter looks up an autoformatter by name.
func (r *Registry) Formatter(name string) (Formatter, bool) {
	f, ok := r.formatters[name]
	return f, ok
}
