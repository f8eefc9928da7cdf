package rules_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaform/ariaform/pkg/locale"
	"github.com/ariaform/ariaform/pkg/param"
	"github.com/ariaform/ariaform/pkg/rules"
)

type refSource struct {
	value string
}

func (s *refSource) NormalizedValue() string { return s.value }

func check(t *testing.T, name string, v rules.Value, p param.Param) rules.Code {
	t.Helper()
	validator, ok := rules.NewRegistry().Validator(name)
	require.True(t, ok, "validator %q not registered", name)
	return validator(v, p, locale.DefaultRegion())
}

func TestCharacterClassRules(t *testing.T) {
	t.Parallel()

	t.Run("letters rejects digits anywhere", func(t *testing.T) {
		assert.Equal(t, rules.CodeOK, check(t, "letters", rules.TextValue("hello world!"), param.None()))
		assert.Equal(t, rules.CodeLetters, check(t, "letters", rules.TextValue("hello2"), param.None()))
		assert.Equal(t, rules.CodeOK, check(t, "letters", rules.TextValue(""), param.None()))
	})

	t.Run("onlyLetters accepts unicode letters", func(t *testing.T) {
		assert.Equal(t, rules.CodeOK, check(t, "onlyLetters", rules.TextValue("Grüße"), param.None()))
		assert.Equal(t, rules.CodeOnlyLetters, check(t, "onlyLetters", rules.TextValue("a b"), param.None()))
		assert.Equal(t, rules.CodeOK, check(t, "onlyLetters", rules.TextValue(""), param.None()))
	})

	t.Run("digits rejects letters anywhere", func(t *testing.T) {
		assert.Equal(t, rules.CodeOK, check(t, "digits", rules.TextValue("12-34"), param.None()))
		assert.Equal(t, rules.CodeDigits, check(t, "digits", rules.TextValue("12a"), param.None()))
	})

	t.Run("onlyDigits", func(t *testing.T) {
		assert.Equal(t, rules.CodeOK, check(t, "onlyDigits", rules.TextValue("0123"), param.None()))
		assert.Equal(t, rules.CodeOnlyDigits, check(t, "onlyDigits", rules.TextValue("12 34"), param.None()))
	})
}

func TestNumericRules(t *testing.T) {
	t.Parallel()

	t.Run("int", func(t *testing.T) {
		assert.Equal(t, rules.CodeOK, check(t, "int", rules.TextValue("42"), param.None()))
		assert.Equal(t, rules.CodeOK, check(t, "int", rules.TextValue("-7"), param.None()))
		assert.Equal(t, rules.CodeOK, check(t, "int", rules.TextValue(""), param.None()))
		assert.Equal(t, rules.CodeInt, check(t, "int", rules.TextValue("4.2"), param.None()))
		assert.Equal(t, rules.CodeInt, check(t, "int", rules.TextValue("abc"), param.None()))
	})

	t.Run("float honors region decimal separator", func(t *testing.T) {
		// Default region uses ',' as decimal separator.
		assert.Equal(t, rules.CodeOK, check(t, "float", rules.TextValue("12,168"), param.None()))
		assert.Equal(t, rules.CodeOK, check(t, "float", rules.TextValue("16"), param.None()))
		assert.Equal(t, rules.CodeFloat, check(t, "float", rules.TextValue("12.168"), param.None()))
		assert.Equal(t, rules.CodeFloat, check(t, "float", rules.TextValue("1,2,3"), param.None()))
		assert.Equal(t, rules.CodeOK, check(t, "float", rules.TextValue(""), param.None()))
	})

	t.Run("min and max are inclusive", func(t *testing.T) {
		assert.Equal(t, rules.CodeOK, check(t, "min", rules.TextValue("18"), param.Literal(18)))
		assert.Equal(t, rules.CodeMin, check(t, "min", rules.TextValue("17"), param.Literal(18)))
		assert.Equal(t, rules.CodeOK, check(t, "max", rules.TextValue("18"), param.Literal(18)))
		assert.Equal(t, rules.CodeMax, check(t, "max", rules.TextValue("19"), param.Literal(18)))
	})

	t.Run("empty value bypasses bounds", func(t *testing.T) {
		assert.Equal(t, rules.CodeOK, check(t, "min", rules.TextValue(""), param.Literal(18)))
		assert.Equal(t, rules.CodeOK, check(t, "max", rules.TextValue(""), param.Literal(18)))
	})

	t.Run("min against referenced field with offset", func(t *testing.T) {
		ref := param.FieldRef(&refSource{value: "10"}, param.WithOffset(5))
		assert.Equal(t, rules.CodeOK, check(t, "min", rules.TextValue("15"), ref))
		assert.Equal(t, rules.CodeMin, check(t, "min", rules.TextValue("14"), ref))
	})

	t.Run("bool requires a truthy value", func(t *testing.T) {
		assert.Equal(t, rules.CodeOK, check(t, "bool", rules.CheckboxValue(true), param.None()))
		assert.Equal(t, rules.CodeBool, check(t, "bool", rules.CheckboxValue(false), param.None()))
		assert.Equal(t, rules.CodeBool, check(t, "bool", rules.RadioValue("", false), param.None()))
		assert.Equal(t, rules.CodeOK, check(t, "bool", rules.RadioValue("yes", true), param.None()))
	})
}

func TestDateTimeRules(t *testing.T) {
	t.Parallel()

	t.Run("date requires a real calendar date", func(t *testing.T) {
		assert.Equal(t, rules.CodeOK, check(t, "date", rules.TextValue("24/12/2019"), param.None()))
		assert.Equal(t, rules.CodeDate, check(t, "date", rules.TextValue("31/02/2019"), param.None()))
		assert.Equal(t, rules.CodeDate, check(t, "date", rules.TextValue("24-12-2019"), param.None()))
		assert.Equal(t, rules.CodeOK, check(t, "date", rules.TextValue(""), param.None()))
	})

	t.Run("minDate and maxDate are inclusive", func(t *testing.T) {
		bound := param.Literal("2019-12-24")
		assert.Equal(t, rules.CodeOK, check(t, "minDate", rules.TextValue("24/12/2019"), bound))
		assert.Equal(t, rules.CodeMinDate, check(t, "minDate", rules.TextValue("23/12/2019"), bound))
		assert.Equal(t, rules.CodeOK, check(t, "maxDate", rules.TextValue("24/12/2019"), bound))
		assert.Equal(t, rules.CodeMaxDate, check(t, "maxDate", rules.TextValue("25/12/2019"), bound))
	})

	t.Run("minDate against sibling field with day offset", func(t *testing.T) {
		departure := &refSource{value: "24/12/2019"}
		ret := param.FieldRef(departure, param.WithOffset(1))
		assert.Equal(t, rules.CodeOK, check(t, "minDate", rules.TextValue("25/12/2019"), ret))
		assert.Equal(t, rules.CodeMinDate, check(t, "minDate", rules.TextValue("24/12/2019"), ret))
	})

	t.Run("time converts through the region settings", func(t *testing.T) {
		assert.Equal(t, rules.CodeOK, check(t, "time", rules.TextValue("09:30pm"), param.None()))
		assert.Equal(t, rules.CodeOK, check(t, "time", rules.TextValue("09:30"), param.Literal("am")))
		assert.Equal(t, rules.CodeTime, check(t, "time", rules.TextValue("13:30"), param.Literal("pm")))
		assert.Equal(t, rules.CodeTime, check(t, "time", rules.TextValue("0930"), param.None()))
		assert.Equal(t, rules.CodeOK, check(t, "time", rules.TextValue(""), param.None()))
	})
}

func TestFormatRules(t *testing.T) {
	t.Parallel()

	t.Run("email", func(t *testing.T) {
		assert.Equal(t, rules.CodeOK, check(t, "email", rules.TextValue("a@b.com"), param.None()))
		assert.Equal(t, rules.CodeOK, check(t, "email", rules.TextValue(""), param.None()))
		assert.Equal(t, rules.CodeEmail, check(t, "email", rules.TextValue("not-an-email"), param.None()))
		assert.Equal(t, rules.CodeEmail, check(t, "email", rules.TextValue("a@b"), param.None()))
	})

	t.Run("password", func(t *testing.T) {
		assert.Equal(t, rules.CodeOK, check(t, "password", rules.TextValue("Sup3rSecret!"), param.None()))
		assert.Equal(t, rules.CodePassword, check(t, "password", rules.TextValue("alllowercase1!"), param.None()))
		assert.Equal(t, rules.CodePassword, check(t, "password", rules.TextValue("Sh0rt!"), param.None()))
		assert.Equal(t, rules.CodePassword, check(t, "password", rules.TextValue("NoSymbol123"), param.None()))
	})
}

func TestPresenceAndMatchingRules(t *testing.T) {
	t.Parallel()

	t.Run("required", func(t *testing.T) {
		assert.Equal(t, rules.CodeOK, check(t, "required", rules.TextValue("x"), param.None()))
		assert.Equal(t, rules.CodeRequired, check(t, "required", rules.TextValue(""), param.None()))
		assert.Equal(t, rules.CodeRequired, check(t, "required", rules.CheckboxValue(false), param.None()))
	})

	t.Run("conditional required obeys the predicate", func(t *testing.T) {
		condition := false
		p := param.Func(func() any { return condition })

		assert.Equal(t, rules.CodeOK, check(t, "required", rules.TextValue(""), p))

		condition = true
		assert.Equal(t, rules.CodeRequired, check(t, "required", rules.TextValue(""), p))
		assert.Equal(t, rules.CodeOK, check(t, "required", rules.TextValue("x"), p))
	})

	t.Run("length bounds are inclusive and skip empty", func(t *testing.T) {
		assert.Equal(t, rules.CodeOK, check(t, "minLength", rules.TextValue("abc"), param.Literal(3)))
		assert.Equal(t, rules.CodeMinLength, check(t, "minLength", rules.TextValue("ab"), param.Literal(3)))
		assert.Equal(t, rules.CodeOK, check(t, "minLength", rules.TextValue(""), param.Literal(3)))
		assert.Equal(t, rules.CodeOK, check(t, "maxLength", rules.TextValue("abc"), param.Literal(3)))
		assert.Equal(t, rules.CodeMaxLength, check(t, "maxLength", rules.TextValue("abcd"), param.Literal(3)))
	})

	t.Run("tokens against a dynamic list", func(t *testing.T) {
		list := []string{"red", "green"}
		p := param.Func(func() any { return list })

		assert.Equal(t, rules.CodeOK, check(t, "tokens", rules.TextValue("red"), p))
		assert.Equal(t, rules.CodeTokens, check(t, "tokens", rules.TextValue("blue"), p))

		list = append(list, "blue")
		assert.Equal(t, rules.CodeOK, check(t, "tokens", rules.TextValue("blue"), p))
	})

	t.Run("match follows the referenced field", func(t *testing.T) {
		ref := &refSource{value: "a@b.com"}
		p := param.FieldRef(ref)

		assert.Equal(t, rules.CodeOK, check(t, "match", rules.TextValue("a@b.com"), p))
		assert.Equal(t, rules.CodeMatch, check(t, "match", rules.TextValue("x"), p))
	})

	t.Run("matchMain passes on empty reference", func(t *testing.T) {
		ref := &refSource{}
		p := param.FieldRef(ref)

		assert.Equal(t, rules.CodeOK, check(t, rules.RuleMatchMain, rules.TextValue("anything"), p))

		ref.value = "expected"
		assert.Equal(t, rules.CodeMatch, check(t, rules.RuleMatchMain, rules.TextValue("anything"), p))
		assert.Equal(t, rules.CodeOK, check(t, rules.RuleMatchMain, rules.TextValue("expected"), p))
	})

	t.Run("customRegex", func(t *testing.T) {
		p := param.Literal(regexp.MustCompile(`^[A-Z]{2}\d{4}$`))
		assert.Equal(t, rules.CodeOK, check(t, "customRegex", rules.TextValue("AB1234"), p))
		assert.Equal(t, rules.CodeCustomRegex, check(t, "customRegex", rules.TextValue("ab1234"), p))
	})
}

func TestRegistryExtension(t *testing.T) {
	t.Parallel()

	t.Run("host rules can be registered", func(t *testing.T) {
		r := rules.NewRegistry()
		r.Register("shouty", func(v rules.Value, _ param.Param, _ locale.Region) rules.Code {
			if v.String() != "" && v.String() != "LOUD" {
				return "shouty"
			}
			return rules.CodeOK
		})

		v, ok := r.Validator("shouty")
		require.True(t, ok)
		assert.Equal(t, rules.Code("shouty"), v(rules.TextValue("quiet"), param.None(), locale.DefaultRegion()))
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		r := rules.NewRegistry()
		assert.Panics(t, func() {
			r.Register("required", func(rules.Value, param.Param, locale.Region) rules.Code { return rules.CodeOK })
		})
	})
}
