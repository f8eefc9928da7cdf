package rules

import (
	"github.com/ariaform/ariaform/pkg/locale"
	"github.com/ariaform/ariaform/pkg/param"
)

// dateRule accepts values that convert to a real calendar date. Shape-valid
// but impossible dates such as 31/02 are rejected.
func dateRule(v Value, _ param.Param, region locale.Region) Code {
	iso, ok := locale.DateToISO(v.String(), region.DateFormat, region.DateSeparator)
	if !ok {
		return CodeDate
	}
	if iso == "" {
		return CodeOK
	}
	if !locale.ValidISODate(iso) {
		return CodeDate
	}
	return CodeOK
}

// timeRule accepts values that convert to a real clock time. The parameter,
// when present, resolves to the meridiem for 12 hour regions; otherwise the
// meridiem is parsed from the value itself.
func timeRule(v Value, p param.Param, region locale.Region) Code {
	meridiem := p.StringValue()
	iso, ok := locale.TimeToISO(v.String(), region.TimeFormat, region.TimeSeparator, meridiem)
	if !ok {
		return CodeTime
	}
	if iso == "" {
		return CodeOK
	}
	if !locale.ValidISOTime(iso) {
		return CodeTime
	}
	return CodeOK
}

// minDate compares the value chronologically against the resolved lower
// bound, inclusive. Empty values pass.
func minDate(v Value, p param.Param, region locale.Region) Code {
	if v.Empty() {
		return CodeOK
	}
	iso, ok := locale.DateToISO(v.String(), region.DateFormat, region.DateSeparator)
	if !ok {
		return CodeMinDate
	}
	// ISO dates order chronologically as strings.
	bound, ok := p.DateValue(region)
	if !ok || iso < bound {
		return CodeMinDate
	}
	return CodeOK
}

// maxDate compares the value chronologically against the resolved upper
// bound, inclusive.
func maxDate(v Value, p param.Param, region locale.Region) Code {
	if v.Empty() {
		return CodeOK
	}
	iso, ok := locale.DateToISO(v.String(), region.DateFormat, region.DateSeparator)
	if !ok {
		return CodeMaxDate
	}
	bound, ok := p.DateValue(region)
	if !ok || iso > bound {
		return CodeMaxDate
	}
	return CodeOK
}
