package types

import "slices"

// Table is raw tabular roster input.
//
// Column names are not contractually fixed; the normalizer resolves them onto
// the canonical student fields. Rows may be ragged, missing cells read as "".
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTableFromRecords builds a table from key/value records.
//
// The column set is the union of all record keys, sorted so that the
// resulting table does not depend on map iteration order.
//
// Parameters:
//   - records: One map per student row
//
// Returns:
//   - Table: Table with sorted columns and one row per record
func NewTableFromRecords(records []map[string]string) Table {
	colSet := make(map[string]struct{})
	for _, rec := range records {
		for k := range rec {
			colSet[k] = struct{}{}
		}
	}
	columns := make([]string, 0, len(colSet))
	for k := range colSet {
		columns = append(columns, k)
	}
	slices.Sort(columns)

	rows := make([][]string, len(records))
	for i, rec := range records {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = rec[col]
		}
		rows[i] = row
	}

	return Table{Columns: columns, Rows: rows}
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Cell returns the value at row/col, or "" when the row is shorter than the header.
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}

	return t.Rows[row][col]
}

// Records converts the table into key/value records keyed by column name.
func (t Table) Records() []map[string]string {
	records := make([]map[string]string, len(t.Rows))
	for i := range t.Rows {
		rec := make(map[string]string, len(t.Columns))
		for j, col := range t.Columns {
			rec[col] = t.Cell(i, j)
		}
		records[i] = rec
	}

	return records
}
