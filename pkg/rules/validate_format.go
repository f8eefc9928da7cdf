package rules

import (
	"regexp"
	"strings"

	"github.com/ariaform/ariaform/pkg/locale"
	"github.com/ariaform/ariaform/pkg/param"
)

var emailRegex = regexp.MustCompile(`^[\w.+-]+@([\w-]+\.)+[\w-]{2,}$`)

// passwordSymbols is the fixed set of accepted special characters.
const passwordSymbols = "!@#$%^&*"

// email performs an RFC-light single-regex check. The empty string passes:
// an email field is optional unless also marked required.
func email(v Value, _ param.Param, _ locale.Region) Code {
	if v.Empty() {
		return CodeOK
	}
	if !emailRegex.MatchString(v.String()) {
		return CodeEmail
	}
	return CodeOK
}

// password requires at least one lowercase letter, one uppercase letter,
// one digit and one symbol from a fixed set, with a total length between
// 8 and 100 characters.
func password(v Value, _ param.Param, _ locale.Region) Code {
	s := v.String()
	if v.Len() < 8 || v.Len() > 100 {
		return CodePassword
	}

	var lower, upper, digit, symbol bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		}
	}
	if !lower || !upper || !digit || !symbol {
		return CodePassword
	}
	return CodeOK
}
