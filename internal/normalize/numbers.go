package normalize

import "strings"

// ParseOptionalInt parses the leading base-10 integer of s, tolerating
// surrounding whitespace, an optional sign, and trailing junk ("120 beds"
// parses as 120). Returns nil when s is empty or carries no digits.
func ParseOptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	i := 0
	neg := false
	if s[0] == '+' || s[0] == '-' {
		neg = s[0] == '-'
		i++
	}

	n := 0
	digits := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		digits++
	}
	if digits == 0 {
		return nil
	}
	if neg {
		n = -n
	}
	return &n
}

// ParseTriState maps the literal strings "true" and "false" to booleans and
// anything else to nil (unknown).
func ParseTriState(s string) *bool {
	switch s {
	case "true":
		v := true
		return &v
	case "false":
		v := false
		return &v
	}
	return nil
}
