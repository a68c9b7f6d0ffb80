// Package dataset loads the two uploaded spreadsheets into memory and
// normalizes their human-entered column headers to the canonical names the
// rest of the pipeline expects.
package dataset

// Table is a spreadsheet held in memory. Rows may be ragged: csv and xlsx
// readers both truncate trailing empty cells.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Index returns the position of a header, or -1.
func (t *Table) Index(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, col), or "" when the row is shorter.
func (t *Table) Cell(row, col int) string {
	if col < 0 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	if col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// HasColumn reports whether a canonical column is present after normalization.
func (t *Table) HasColumn(name string) bool {
	return t.Index(name) >= 0
}
