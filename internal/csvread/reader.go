// Package csvread tokenizes the facility CSV export into typed rows.
//
// The export is not RFC 4180 clean: fields carry surrounding whitespace,
// quotes are sometimes unbalanced, and rows can be ragged. The line parser
// is deliberately lenient and never returns an error: fields are trimmed,
// missing trailing fields default to empty, and extra fields are dropped,
// so the column accessors stay total.
package csvread

import (
	"fmt"
	"strings"
)

// Row is one data row, accessed by known column. Unrecognized header names
// are dropped during parsing.
type Row struct {
	values map[Column]string
}

// Lookup returns the raw value for col and whether the column carried a
// non-empty value in this row.
func (r Row) Lookup(col Column) (string, bool) {
	v, ok := r.values[col]
	if !ok || v == "" {
		return v, false
	}
	return v, true
}

// Value returns the raw value for col, or "" when absent.
func (r Row) Value(col Column) string {
	return r.values[col]
}

// Table is the parsed document: the raw header names plus the data rows.
type Table struct {
	Headers []string
	Rows    []Row
}

// Parse splits raw CSV text into a Table. The first line is the header; each
// subsequent non-blank line is zipped with it positionally. Fewer than two
// lines yields an empty table, not an error.
func Parse(text string) Table {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return Table{}
	}

	headers := parseLine(lines[0])
	rows := make([]Row, 0, len(lines)-1)

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		values := parseLine(line)
		row := Row{values: make(map[Column]string, len(headers))}
		for i, h := range headers {
			if !Known(h) {
				continue
			}
			var v string
			if i < len(values) {
				v = values[i]
			}
			row.values[Column(h)] = v
		}
		rows = append(rows, row)
	}

	return Table{Headers: headers, Rows: rows}
}

// Validate checks that the header row carries at least one recognized
// column. A header with none means the file is not a facility export.
func (t Table) Validate() error {
	for _, h := range t.Headers {
		if Known(h) {
			return nil
		}
	}
	return fmt.Errorf("no recognized columns in header (got %d headers)", len(t.Headers))
}

// parseLine tokenizes one CSV line with a quote-aware state machine.
// A doubled quote inside a quoted field emits one literal quote; commas
// inside quotes do not split; every field is trimmed of surrounding
// whitespace.
func parseLine(line string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		switch c := line[i]; c {
		case '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ',':
			if inQuotes {
				current.WriteByte(c)
			} else {
				fields = append(fields, strings.TrimSpace(current.String()))
				current.Reset()
			}
		default:
			current.WriteByte(c)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}
