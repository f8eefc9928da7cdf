package ids_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ariaform/ariaform/pkg/ids"
)

func TestSequence(t *testing.T) {
	t.Parallel()

	gen := ids.NewSequence("control--")
	assert.Equal(t, "control--0", gen.Next())
	assert.Equal(t, "control--1", gen.Next())
	assert.Equal(t, "control--2", gen.Next())

	other := ids.NewSequence("control--")
	assert.Equal(t, "control--0", other.Next(), "counters are instance-owned")
}

func TestUUID(t *testing.T) {
	t.Parallel()

	gen := ids.NewUUID("field-")
	first := gen.Next()
	second := gen.Next()
	assert.True(t, strings.HasPrefix(first, "field-"))
	assert.NotEqual(t, first, second)
}

func TestNamespaceEvents(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "blur.av input.av", ids.NamespaceEvents("blur input", "av"))
	assert.Equal(t, "change.av", ids.NamespaceEvents("change", "av"))
	assert.Empty(t, ids.NamespaceEvents("", "av"))
}
