package rules

import (
	"strings"

	"github.com/ariaform/ariaform/pkg/locale"
	"github.com/ariaform/ariaform/pkg/param"
)

// defaultCentury is prepended to two-digit years when the host does not
// configure a century prefix.
const defaultCentury = "20"

// autocompleteDate expands partial date input to full zero-padded
// components: one-digit days and months gain a leading zero, two-digit
// years gain the century prefix carried by the parameter. Input that does
// not split into three components is returned unchanged.
func autocompleteDate(value string, p param.Param, fctx Context) string {
	if value == "" {
		return value
	}

	century := p.StringValue()
	if century == "" {
		century = defaultCentury
	}

	sep := fctx.Region.DateSeparator
	parts := strings.Split(value, sep)
	if len(parts) != 3 {
		return value
	}

	if fctx.Region.DateFormat == locale.YMD {
		if len(parts[0]) == 2 {
			parts[0] = century + parts[0]
		}
		parts[1] = zeroPad(parts[1])
		parts[2] = zeroPad(parts[2])
	} else {
		parts[0] = zeroPad(parts[0])
		parts[1] = zeroPad(parts[1])
		if len(parts[2]) == 2 {
			parts[2] = century + parts[2]
		}
	}

	return strings.Join(parts, sep)
}

func zeroPad(component string) string {
	if len(component) == 1 {
		return "0" + component
	}
	return component
}
