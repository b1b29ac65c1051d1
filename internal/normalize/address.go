package normalize

// BuildAddress joins the address sub-fields with ", ", skipping empty ones.
// When every part is empty the address is the literal "Unknown".
func BuildAddress(line1, line2, line3, city, region string) string {
	var out string
	for _, part := range []string{line1, line2, line3, city, region} {
		if part == "" {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += part
	}
	if out == "" {
		return "Unknown"
	}
	return out
}
