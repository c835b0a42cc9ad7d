package models

// Row maps a column name to the cell value of one data row.
type Row map[string]string

// Table is a parsed sheet: the header row and the data rows beneath it.
type Table struct {
	Columns []string
	Rows    []Row
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether name is one of the header columns.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Head returns at most n leading rows.
func (t Table) Head(n int) []Row {
	if n >= len(t.Rows) {
		return t.Rows
	}
	return t.Rows[:n]
}

// Records converts the rows to plain maps for JSON encoding.
func (t Table) Records() []map[string]string {
	out := make([]map[string]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		out = append(out, r)
	}
	return out
}
