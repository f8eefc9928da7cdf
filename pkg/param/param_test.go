package param_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaform/ariaform/pkg/locale"
	"github.com/ariaform/ariaform/pkg/param"
)

type stubSource struct {
	value string
}

func (s *stubSource) NormalizedValue() string { return s.value }

func TestLiteral(t *testing.T) {
	t.Parallel()

	t.Run("string literal", func(t *testing.T) {
		assert.Equal(t, "hello", param.Literal("hello").StringValue())
	})

	t.Run("numeric literal", func(t *testing.T) {
		f, ok := param.Literal(18).FloatValue()
		require.True(t, ok)
		assert.Equal(t, 18.0, f)
	})

	t.Run("zero value is none", func(t *testing.T) {
		var p param.Param
		assert.True(t, p.IsZero())
		assert.Nil(t, p.Any())
	})
}

func TestFunc(t *testing.T) {
	t.Parallel()

	t.Run("resolved on every call", func(t *testing.T) {
		n := 0
		p := param.Func(func() any {
			n++
			return n
		})

		first, ok := p.FloatValue()
		require.True(t, ok)
		second, ok := p.FloatValue()
		require.True(t, ok)
		assert.Equal(t, 1.0, first)
		assert.Equal(t, 2.0, second)
	})

	t.Run("predicate", func(t *testing.T) {
		v, ok := param.Func(func() any { return true }).PredicateValue()
		require.True(t, ok)
		assert.True(t, v)

		_, ok = param.None().PredicateValue()
		assert.False(t, ok)
	})
}

func TestFieldRef(t *testing.T) {
	t.Parallel()

	t.Run("reads the referenced field late", func(t *testing.T) {
		src := &stubSource{value: "first"}
		p := param.FieldRef(src)
		assert.Equal(t, "first", p.StringValue())

		src.value = "second"
		assert.Equal(t, "second", p.StringValue())
	})

	t.Run("fallback for empty reference", func(t *testing.T) {
		p := param.FieldRef(&stubSource{}, param.WithFallback("10"))
		f, ok := p.FloatValue()
		require.True(t, ok)
		assert.Equal(t, 10.0, f)
	})

	t.Run("numeric offset", func(t *testing.T) {
		p := param.FieldRef(&stubSource{value: "5"}, param.WithOffset(3))
		f, ok := p.FloatValue()
		require.True(t, ok)
		assert.Equal(t, 8.0, f)
	})

	t.Run("length offset", func(t *testing.T) {
		p := param.FieldRef(&stubSource{value: "abcd"}, param.WithOffset(-1))
		n, ok := p.LengthValue()
		require.True(t, ok)
		assert.Equal(t, 3, n)
	})

	t.Run("day offset", func(t *testing.T) {
		region := locale.DefaultRegion()
		p := param.FieldRef(&stubSource{value: "24/12/2019"}, param.WithOffset(8))
		iso, ok := p.DateValue(region)
		require.True(t, ok)
		assert.Equal(t, "2020-01-01", iso)
	})

	t.Run("unconvertible date fails", func(t *testing.T) {
		p := param.FieldRef(&stubSource{value: "not a date"})
		_, ok := p.DateValue(locale.DefaultRegion())
		assert.False(t, ok)
	})
}

func TestListValue(t *testing.T) {
	t.Parallel()

	list, ok := param.Literal([]string{"a", "b"}).ListValue()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, list)

	list, ok = param.Func(func() any { return []string{"x"} }).ListValue()
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, list)

	_, ok = param.Literal(42).ListValue()
	assert.False(t, ok)
}

func TestRegexpValue(t *testing.T) {
	t.Parallel()

	re := regexp.MustCompile(`^ab+$`)
	got, ok := param.Literal(re).RegexpValue()
	require.True(t, ok)
	assert.Same(t, re, got)

	_, ok = param.Literal("^ab+$").RegexpValue()
	assert.False(t, ok)
}
