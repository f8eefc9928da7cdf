package rules

import (
	"strings"

	"github.com/ariaform/ariaform/pkg/param"
)

// CharInsertion places a separator string at a fixed rune offset; the
// parameter of insertCharAt resolves to one or an ordered list of these.
type CharInsertion struct {
	Position int
	Char     string
}

// CharInterval groups the value into fixed-size chunks joined by a
// separator; the parameter of insertCharEvery.
type CharInterval struct {
	Interval int
	Char     string
	// MaxGroups caps how many separators are inserted; 0 means no cap.
	MaxGroups int
}

// maskSuppressed reports whether mask reinsertion must be skipped: while
// the user is deleting characters during an input event, reinserting the
// separator would fight the caret.
func maskSuppressed(fctx Context) bool {
	return !fctx.IsAdding && fctx.EventType == "input"
}

// insertCharAt strips previously inserted separator strings and reinserts
// them at their fixed offsets, skipping offsets past the end of the value.
func insertCharAt(value string, p param.Param, fctx Context) string {
	if value == "" || maskSuppressed(fctx) {
		return value
	}

	var insertions []CharInsertion
	switch v := p.Any().(type) {
	case CharInsertion:
		insertions = []CharInsertion{v}
	case []CharInsertion:
		insertions = v
	default:
		return value
	}

	for _, ins := range insertions {
		value = strings.ReplaceAll(value, ins.Char, "")
	}

	length := len([]rune(value))
	for _, ins := range insertions {
		if length >= ins.Position {
			runes := []rune(value)
			value = string(runes[:ins.Position]) + ins.Char + string(runes[ins.Position:])
			length += len([]rune(ins.Char))
		}
	}
	return value
}

// insertCharEvery strips the separator and reinserts it between fixed-size
// chunks. A trailing partial chunk stays unseparated; a trailing full chunk
// gets a trailing separator so the next typed character starts a new group.
func insertCharEvery(value string, p param.Param, fctx Context) string {
	interval, ok := p.Any().(CharInterval)
	if !ok || interval.Interval <= 0 {
		return value
	}
	if len([]rune(value)) < interval.Interval || maskSuppressed(fctx) {
		return value
	}

	stripped := []rune(strings.ReplaceAll(value, interval.Char, ""))

	var b strings.Builder
	groups := 0
	for start := 0; start < len(stripped); start += interval.Interval {
		end := min(start+interval.Interval, len(stripped))
		b.WriteString(string(stripped[start:end]))

		full := end-start == interval.Interval
		capped := interval.MaxGroups > 0 && groups >= interval.MaxGroups
		if full && !capped {
			b.WriteString(interval.Char)
			groups++
		}
	}
	return b.String()
}
