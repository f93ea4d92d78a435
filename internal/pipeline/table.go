package pipeline

// Row is one logical record from an ingested file, keyed by column name.
// Values are string, float64, int, bool or nil (missing). Columns are not
// strictly typed; a column may hold mixed representations until validated.
type Row map[string]any

// Table is an ordered sequence of rows sharing the column set produced by
// the source file header.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// NewTable creates an empty table with the given column order.
func NewTable(columns []string) *Table {
	return &Table{
		Columns: columns,
		Rows:    make([]Row, 0),
	}
}

// RowCount returns the number of data rows in the table.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the number of columns declared by the header.
func (t *Table) ColumnCount() int {
	return len(t.Columns)
}
