// Package ids generates element identifiers and namespaced event names for
// controllers that have none assigned. Generators are instance-owned: a
// form aggregator injects one into its controllers instead of relying on a
// process-wide counter.
package ids

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique element identifiers.
type Generator interface {
	Next() string
}

// Sequence generates prefix-0, prefix-1, ... using a monotonic counter.
// Safe for concurrent use.
type Sequence struct {
	prefix  string
	counter atomic.Int64
}

// NewSequence returns a Sequence with the given id prefix.
func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) Next() string {
	n := s.counter.Add(1) - 1
	return s.prefix + strconv.FormatInt(n, 10)
}

// UUID generates random identifiers, for hosts that render controls from
// multiple independent engines into one document.
type UUID struct {
	prefix string
}

// NewUUID returns a UUID generator with the given id prefix.
func NewUUID(prefix string) *UUID {
	return &UUID{prefix: prefix}
}

func (u *UUID) Next() string {
	return u.prefix + uuid.NewString()
}

// NamespaceEvents suffixes every space-separated event name with
// ".namespace", so handlers bound by the engine can be unbound without
// touching the host's own listeners.
func NamespaceEvents(events, namespace string) string {
	names := strings.Fields(events)
	for i, name := range names {
		names[i] = name + "." + namespace
	}
	return strings.Join(names, " ")
}
