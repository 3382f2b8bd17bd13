package bulk

import (
	"strings"
)

// Row is one parsed line of the batch input: a column-name-to-value mapping
// with the column order of the header line preserved. Rows are built once by
// Parse and never mutated afterwards.
type Row struct {
	columns []string
	values  map[string]string
}

// Columns returns the header column names in input order.
func (r Row) Columns() []string {
	return r.columns
}

// Get looks a column up by name. ok is false when the line had fewer fields
// than the header, which is the explicit "missing" marker: a short row never
// crashes, it just lacks trailing columns.
func (r Row) Get(col string) (string, bool) {
	v, ok := r.values[col]
	return v, ok
}

// Value returns the column value, or the empty string when missing.
func (r Row) Value(col string) string {
	return r.values[col]
}

// Parse splits delimited text into ordered rows. The first line is the
// header and defines column names and order; every later non-empty line is
// split on commas outside quoted fields and mapped onto those names.
func Parse(text string) []Row {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	if len(lines) == 0 || strings.TrimSpace(lines[0]) == "" {
		return nil
	}

	header := splitLine(lines[0])
	for i, col := range header {
		header[i] = unquote(col)
	}

	var rows []Row
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitLine(line)
		values := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(fields) {
				values[col] = unquote(fields[i])
			}
		}
		rows = append(rows, Row{columns: header, values: values})
	}
	return rows
}

// splitLine splits on commas outside double-quoted fields. A comma is a
// delimiter exactly when an even number of quote characters follows it on
// the line; escaped-quote ("") unescaping is deliberately not performed.
func splitLine(line string) []string {
	var fields []string
	start := 0
	for i := 0; i < len(line); i++ {
		if line[i] == ',' && strings.Count(line[i+1:], `"`)%2 == 0 {
			fields = append(fields, line[start:i])
			start = i + 1
		}
	}
	return append(fields, line[start:])
}

// unquote strips a single matching pair of wrapping double quotes, leaving
// interior content untouched.
func unquote(field string) string {
	if len(field) >= 2 && field[0] == '"' && field[len(field)-1] == '"' {
		return field[1 : len(field)-1]
	}
	return field
}
