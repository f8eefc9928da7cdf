package rules

import (
	"strconv"
	"strings"

	"github.com/ariaform/ariaform/pkg/locale"
	"github.com/ariaform/ariaform/pkg/param"
)

// intRule accepts absent values and values that parse to an integer.
func intRule(v Value, _ param.Param, _ locale.Region) Code {
	if v.Empty() {
		return CodeOK
	}
	if _, err := strconv.Atoi(v.String()); err != nil {
		return CodeInt
	}
	return CodeOK
}

// floatRule accepts numbers written with the region's decimal separator.
// The non-configured separator may not appear at all, and the configured
// one at most once; the value is normalized to '.' before parsing.
func floatRule(v Value, _ param.Param, region locale.Region) Code {
	s := v.String()
	if s == "" {
		return CodeOK
	}

	other := ","
	if region.DecimalSeparator == "," {
		other = "."
	}
	if strings.Contains(s, other) || strings.Count(s, region.DecimalSeparator) > 1 {
		return CodeFloat
	}

	s = strings.Replace(s, region.DecimalSeparator, ".", 1)
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return CodeFloat
	}
	return CodeOK
}

// boolRule accepts truthy values: a checked checkbox or a radio group with
// a selection.
func boolRule(v Value, _ param.Param, _ locale.Region) Code {
	if !v.Truthy() {
		return CodeBool
	}
	return CodeOK
}

// minRule compares the value numerically against the resolved lower bound,
// inclusive. Empty values pass.
func minRule(v Value, p param.Param, region locale.Region) Code {
	if v.Empty() {
		return CodeOK
	}
	value, ok := parseRegionFloat(v.String(), region)
	if !ok {
		return CodeMin
	}
	bound, ok := p.FloatValue()
	if !ok || value < bound {
		return CodeMin
	}
	return CodeOK
}

// maxRule compares the value numerically against the resolved upper bound,
// inclusive.
func maxRule(v Value, p param.Param, region locale.Region) Code {
	if v.Empty() {
		return CodeOK
	}
	value, ok := parseRegionFloat(v.String(), region)
	if !ok {
		return CodeMax
	}
	bound, ok := p.FloatValue()
	if !ok || value > bound {
		return CodeMax
	}
	return CodeOK
}

func parseRegionFloat(s string, region locale.Region) (float64, bool) {
	s = strings.Replace(s, region.DecimalSeparator, ".", 1)
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
