package catalog

import (
	"strings"
)

// Row maps header names to the values of one data line.
type Row map[string]string

// Get returns the value for column, or "" when the column is absent.
func (r Row) Get(column string) string {
	return r[column]
}

// ParseCSV splits content into rows keyed by the first line's headers.
// Blank lines are skipped and short lines are padded with "". Content with
// fewer than two lines yields no rows. A leading UTF-8 byte order mark is
// dropped.
func ParseCSV(content string) []Row {
	content = strings.TrimPrefix(content, "\ufeff")
	lines := strings.Split(content, "\n")
	if len(lines) < 2 {
		return nil
	}

	headers := ParseCSVLine(lines[0])
	rows := make([]Row, 0, len(lines)-1)

	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		rows = append(rows, newRow(headers, ParseCSVLine(line)))
	}

	return rows
}

func newRow(headers, values []string) Row {
	row := make(Row, len(headers))

	for i, header := range headers {
		if i < len(values) {
			row[header] = values[i]
		} else {
			row[header] = ""
		}
	}

	return row
}

// ParseCSVLine tokenizes one line. A quote toggles quoted mode, a doubled
// quote inside quotes is a literal quote, and a comma outside quotes ends
// the field. Fields are trimmed.
func ParseCSVLine(line string) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(line); i++ {
		ch := line[i]

		switch {
		case ch == '"' && !inQuotes:
			inQuotes = true
		case ch == '"' && inQuotes:
			if i+1 < len(line) && line[i+1] == '"' {
				current.WriteByte('"')
				i++
			} else {
				inQuotes = false
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteByte(ch)
		}
	}

	return append(fields, strings.TrimSpace(current.String()))
}
