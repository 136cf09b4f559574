package etl

// RawTable holds one source table as an ordered header row plus string cells,
// independent of whether it came from a spreadsheet or a delimited file.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// ColumnIndex maps header name to column position.
func (t *RawTable) ColumnIndex() map[string]int {
	idx := make(map[string]int, len(t.Headers))
	for i, h := range t.Headers {
		idx[h] = i
	}
	return idx
}

// Cell returns the named column of a row, or "" when the row is short or the
// column is absent.
func (t *RawTable) Cell(row []string, idx map[string]int, col string) string {
	i, ok := idx[col]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
