package locale

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateFormat identifies the ordering of day, month and year in a regional
// date representation.
type DateFormat string

const (
	// DMY is day/month/year, e.g. 24/12/2019.
	DMY DateFormat = "dmy"
	// MDY is month/day/year, e.g. 12/24/2019.
	MDY DateFormat = "mdy"
	// YMD is year/month/day, e.g. 2019/12/24.
	YMD DateFormat = "ymd"
)

// TimeFormat identifies a 12 or 24 hour clock.
type TimeFormat string

const (
	Time12 TimeFormat = "12"
	Time24 TimeFormat = "24"
)

// Region carries the locale-dependent format parameters used by validators
// and autoformatters.
type Region struct {
	DateFormat       DateFormat
	DateSeparator    string
	TimeFormat       TimeFormat
	TimeSeparator    string
	DecimalSeparator string
}

// DefaultRegion returns the default region settings: dd/mm/yyyy dates,
// 12 hour clock with ':' separator and ',' as decimal separator.
func DefaultRegion() Region {
	return Region{
		DateFormat:       DMY,
		DateSeparator:    "/",
		TimeFormat:       Time12,
		TimeSeparator:    ":",
		DecimalSeparator: ",",
	}
}

const isoDateLayout = "2006-01-02"

var (
	isoDateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	twoDigitRegex = regexp.MustCompile(`^\d{2}$`)
	meridiemRegex = regexp.MustCompile(`^(\d{2})([a-zA-Z]{2})$`)
)

// DateToISO converts a regional date representation to ISO YYYY-MM-DD.
// Values already in ISO form and empty values pass through unchanged.
// The input must split on sep into exactly three components sized 2/2/4
// (or 4/2/2 for YMD); anything else reports ok=false.
func DateToISO(value string, format DateFormat, sep string) (string, bool) {
	if value == "" || isoDateRegex.MatchString(value) {
		return value, true
	}

	parts := strings.Split(value, sep)
	if len(parts) != 3 {
		return "", false
	}

	switch {
	case len(parts[0]) == 2 && len(parts[1]) == 2 && len(parts[2]) == 4:
		switch format {
		case DMY:
			return parts[2] + "-" + parts[1] + "-" + parts[0], true
		case MDY:
			return parts[2] + "-" + parts[0] + "-" + parts[1], true
		}
	case len(parts[0]) == 4 && len(parts[1]) == 2 && len(parts[2]) == 2 && format == YMD:
		return parts[0] + "-" + parts[1] + "-" + parts[2], true
	}

	return "", false
}

// ISODateToLocale converts an ISO YYYY-MM-DD date to its regional
// representation, the inverse of DateToISO. Empty values pass through.
func ISODateToLocale(iso string, format DateFormat, sep string) (string, bool) {
	if iso == "" {
		return "", true
	}
	if !isoDateRegex.MatchString(iso) {
		return "", false
	}

	year, month, day := iso[0:4], iso[5:7], iso[8:10]
	switch format {
	case DMY:
		return day + sep + month + sep + year, true
	case MDY:
		return month + sep + day + sep + year, true
	case YMD:
		return year + sep + month + sep + day, true
	}
	return "", false
}

// TimeToISO converts a regional clock time to ISO HH:MM.
//
// For the 12 hour format the meridiem ("am" or "pm") is taken from the
// meridiem argument or, when that is empty, parsed from a trailing
// two-letter suffix on the minutes component ("09:30pm"). A missing or
// unrecognized meridiem makes the conversion fail, as does an hour above
// 12 in 12 hour mode. 12am maps to 00, 12pm stays 12. The returned hour
// is always zero-padded to two digits.
func TimeToISO(value string, format TimeFormat, sep string, meridiem string) (string, bool) {
	if value == "" {
		return "", true
	}

	parts := strings.Split(value, sep)
	if len(parts) != 2 {
		return "", false
	}

	hourPart, minutePart := parts[0], parts[1]
	if !twoDigitRegex.MatchString(hourPart) {
		return "", false
	}

	if format == Time24 {
		if !twoDigitRegex.MatchString(minutePart) {
			return "", false
		}
		return hourPart + ":" + minutePart, true
	}

	// 12 hour format: the meridiem may ride on the minutes component.
	if meridiem == "" {
		m := meridiemRegex.FindStringSubmatch(minutePart)
		if m == nil {
			return "", false
		}
		minutePart, meridiem = m[1], m[2]
	}
	if !twoDigitRegex.MatchString(minutePart) {
		return "", false
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour > 12 {
		return "", false
	}

	switch strings.ToLower(meridiem) {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	default:
		return "", false
	}

	return fmt.Sprintf("%02d:%s", hour, minutePart), true
}

// ValidISODate reports whether iso is a real calendar date in YYYY-MM-DD
// form. Shape-valid but impossible dates such as 2019-02-31 are rejected.
func ValidISODate(iso string) bool {
	_, err := time.Parse(isoDateLayout, iso)
	return err == nil
}

// ValidISOTime reports whether s is a real clock time in HH:MM form.
func ValidISOTime(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}

// ShiftISODate adds days (which may be negative) to an ISO date.
func ShiftISODate(iso string, days int) (string, bool) {
	t, err := time.Parse(isoDateLayout, iso)
	if err != nil {
		return "", false
	}
	return t.AddDate(0, 0, days).Format(isoDateLayout), true
}
