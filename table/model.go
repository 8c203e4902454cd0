/*
  model.go
  Description: the read-only rectangular grid of cell values a Table renders
  -----------------------------------------------------------------------------
*/

// Package table implements a terminal table rendering engine: a width
// constrained, border-decorated, multi-line textual representation of a
// rectangular grid of arbitrary cell values.
//
// Rendering is a pipeline: cell value -> formatter -> pre-wrap lines -> size
// constraints -> extents -> column-width solver -> column widths -> wrapper
// -> wrapped lines -> alignment -> padded lines. Border composition runs
// independently over the row/column grid and is woven into the final output.
package table

// CellCoord identifies a single cell by its zero-based row and column.
type CellCoord struct {
	Row, Column int
}

// TableModel is an immutable, rectangular view of cell values. Implementations
// must return the same value from Value(r, c) across repeated calls for the
// same (r, c) -- the engine relies on this for render() to remain a pure
// function of (model, rules, borders, width).
type TableModel interface {
	RowCount() int
	ColumnCount() int
	Value(row, column int) any
}

// arrayModel wraps a rectangular slice of slices. Rows shorter than the
// widest row are padded with nil values.
type arrayModel struct {
	rows [][]any
	cols int
}

// NewArrayModel builds a TableModel directly from a rectangular array of
// values. The column count is the length of the longest row; shorter rows
// read as nil beyond their own length.
func NewArrayModel(rows [][]any) TableModel {
	cols := 0
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return &arrayModel{rows: rows, cols: cols}
}

func (m *arrayModel) RowCount() int    { return len(m.rows) }
func (m *arrayModel) ColumnCount() int { return m.cols }
func (m *arrayModel) Value(row, column int) any {
	if column >= len(m.rows[row]) {
		return nil
	}
	return m.rows[row][column]
}

// recordModel is a header row (index 0) followed by one data row per input
// record, in the order the header names the columns.
//
// Grounded on pgntools.PgnCollection.GetTable (pgntools/pgncollection.go),
// which builds a table from a declared header plus a slice of per-game field
// values looked up by name.
type recordModel struct {
	header  []string
	records []map[string]any
}

// NewRecordModel builds a TableModel whose row 0 holds the column headers and
// whose subsequent rows hold, for each record, the values keyed by each
// header name (nil if a record omits a key).
func NewRecordModel(header []string, records []map[string]any) TableModel {
	return &recordModel{header: header, records: records}
}

func (m *recordModel) RowCount() int    { return 1 + len(m.records) }
func (m *recordModel) ColumnCount() int { return len(m.header) }
func (m *recordModel) Value(row, column int) any {
	if row == 0 {
		return m.header[column]
	}
	return m.records[row-1][m.header[column]]
}

// NewRowStreamModel materializes a TableModel from an iterator of rows. The
// iterator is consumed exactly once, at construction time; the resulting
// model is as immutable and random-access as any other TableModel -- only
// the *source* is a stream, never the rendering.
func NewRowStreamModel(columns int, rows func(yield func([]any) bool)) TableModel {
	var collected [][]any
	rows(func(row []any) bool {
		collected = append(collected, row)
		return true
	})
	m := &arrayModel{rows: collected, cols: columns}
	for _, row := range collected {
		if len(row) > m.cols {
			m.cols = len(row)
		}
	}
	return m
}
