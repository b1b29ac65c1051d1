package normalize

import (
	"strings"
	"unicode"
)

// CleanSpecialty turns a camelCase specialty label into a readable one:
// "bloodBank" becomes "Blood Bank". A space goes before every uppercase
// letter past position 0, the first character is uppercased, and the result
// is trimmed.
func CleanSpecialty(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	out := []rune(b.String())
	if len(out) > 0 {
		out[0] = unicode.ToUpper(out[0])
	}
	return strings.TrimSpace(string(out))
}
