// Package decoder turns raw delimited statement text into header-keyed rows.
// It infers the field delimiter from the header line and tolerates the loose
// quoting found in real bank exports; it is deliberately not a full RFC-4180
// reader. Malformed rows are dropped silently — the pipeline's contract is
// "import what you can", not "reject the file".
package decoder

import "strings"

// Row maps a column header (verbatim, trimmed) to the raw cell value.
type Row map[string]string

// Table is a decoded statement: ordered headers plus rows keyed by header.
// Header order matters downstream — the schema inferrer resolves name-match
// ties by first header in order.
type Table struct {
	Headers []string
	Rows    []Row
}

// IsEmpty reports whether the table holds no data rows.
func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// delimiters in tie-break priority order. Semicolon beats comma on equal
// counts: European exports are semicolon-delimited and often carry commas
// inside free text.
var delimiters = []rune{';', ',', '\t', '|'}

// Decode splits raw statement text into a Table. Blank lines are discarded;
// fewer than two non-blank lines (header plus at least one data line) yields
// an empty table. Data lines whose field count differs from the header's are
// dropped entirely — no padding, no partial rows.
func Decode(raw string) Table {
	var lines []string
	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if i == 0 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) < 2 {
		return Table{}
	}

	delimiter := detectDelimiter(lines[0])

	headers := splitFields(lines[0], delimiter)
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := splitFields(line, delimiter)
		if len(fields) != len(headers) {
			continue
		}
		row := make(Row, len(headers))
		for i, h := range headers {
			row[h] = fields[i]
		}
		rows = append(rows, row)
	}

	return Table{Headers: headers, Rows: rows}
}

// detectDelimiter counts candidate delimiters on the header line only and
// picks the most frequent, defaulting to comma when none appear.
func detectDelimiter(header string) rune {
	best := ','
	bestCount := 0
	for _, d := range delimiters {
		if count := strings.Count(header, string(d)); count > bestCount {
			best = d
			bestCount = count
		}
	}
	return best
}

// splitFields splits a line on the delimiter, respecting double-quoted spans.
// A double quote toggles quote state unless preceded by a backslash
// (best-effort escape handling). Each field is trimmed and has one leading
// and one trailing quote stripped.
func splitFields(line string, delimiter rune) []string {
	var (
		fields   []string
		current  strings.Builder
		inQuotes bool
		prev     rune
	)

	for _, r := range line {
		switch {
		case r == '"' && prev != '\\':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == delimiter && !inQuotes:
			fields = append(fields, cleanField(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
		prev = r
	}
	fields = append(fields, cleanField(current.String()))

	return fields
}

func cleanField(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return strings.TrimSpace(s)
}
