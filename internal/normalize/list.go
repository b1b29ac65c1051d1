package normalize

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var quotedValue = regexp.MustCompile(`"([^"]+)"`)

// ParseList turns a JSON-array-like CSV value into a string list. The export
// mixes real JSON arrays, single-quoted pseudo-JSON, the literal "null", and
// bare scalars, so parsing degrades in stages and never fails:
// structured parse first, then quoted-substring extraction, then the whole
// raw value as a single element.
func ParseList(raw string) []string {
	if raw == "" || raw == "null" || raw == "[]" {
		return nil
	}
	if !strings.HasPrefix(raw, "[") {
		return []string{raw}
	}

	var parsed []any
	if err := json.Unmarshal([]byte(strings.ReplaceAll(raw, "'", `"`)), &parsed); err == nil {
		out := make([]string, 0, len(parsed))
		for _, v := range parsed {
			switch x := v.(type) {
			case string:
				if x != "" {
					out = append(out, x)
				}
			case float64:
				if x != 0 {
					out = append(out, strconv.FormatFloat(x, 'f', -1, 64))
				}
			case bool:
				if x {
					out = append(out, "true")
				}
			}
		}
		return out
	}

	// Malformed bracket syntax: salvage any double-quoted substrings.
	if ms := quotedValue.FindAllStringSubmatch(raw, -1); ms != nil {
		out := make([]string, 0, len(ms))
		for _, m := range ms {
			out = append(out, m[1])
		}
		return out
	}
	return []string{raw}
}
