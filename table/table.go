package table

import "fmt"

// Table is an immutable set of rows over named float64 columns.
// Every row has exactly one value per column, in header order.
// Storage is columnar since downstream analysis is column-wise.
type Table struct {
	names   []string
	indexOf map[string]int
	columns [][]float64
	numRows int
}

func newTable(names []string) (*Table, error) {
	indexOf := make(map[string]int, len(names))
	for i, name := range names {
		if _, ok := indexOf[name]; ok {
			return nil, &SchemaError{Reason: "duplicate column name " + name}
		}
		indexOf[name] = i
	}
	columns := make([][]float64, len(names))
	return &Table{
		names:   names,
		indexOf: indexOf,
		columns: columns,
		numRows: 0,
	}, nil
}

// New builds a table from column names and rows. Each row must have
// one value per column.
func New(names []string, rows [][]float64) (*Table, error) {
	t, err := newTable(append([]string(nil), names...))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := t.appendRow(i+1, row); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// appendRow adds one row; line is the number reported on arity errors.
func (t *Table) appendRow(line int, values []float64) error {
	if len(values) != len(t.names) {
		return &ParseError{
			Line: line,
			Reason: fmt.Sprintf("expected %d values, got %d",
				len(t.names), len(values)),
		}
	}
	for i, v := range values {
		t.columns[i] = append(t.columns[i], v)
	}
	t.numRows++
	return nil
}

func (t *Table) NumRows() int {
	return t.numRows
}

func (t *Table) NumColumns() int {
	return len(t.names)
}

// ColumnNames returns the header names in order.
func (t *Table) ColumnNames() []string {
	return append([]string(nil), t.names...)
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.indexOf[name]
	return ok
}

// Column returns all values of the named column, in row order.
func (t *Table) Column(name string) ([]float64, error) {
	i, ok := t.indexOf[name]
	if !ok {
		return nil, &ColumnNotFoundError{Name: name}
	}
	return append([]float64(nil), t.columns[i]...), nil
}

// Row returns the mapping of column name to value for one row.
func (t *Table) Row(index int) (map[string]float64, error) {
	if index < 0 || index >= t.numRows {
		return nil, &IndexError{Index: index, NumRows: t.numRows}
	}
	row := make(map[string]float64, len(t.names))
	for i, name := range t.names {
		row[name] = t.columns[i][index]
	}
	return row, nil
}
