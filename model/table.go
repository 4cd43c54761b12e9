package model

import (
	"fmt"
	"strings"

	"github.com/tsawler/greedytable/listtree"
)

// Table represents a list table with its columns and row sections
type Table struct {
	Title   string
	Names   []string
	Classes []string
	Columns []ColumnSpec
	Header  []Row
	Body    []Row
}

// ColumnSpec describes one output column
type ColumnSpec struct {
	Width int  // relative width weight
	Stub  bool // stub columns hold row labels
}

// Row is one table row
type Row struct {
	Cells []Cell
}

// Span returns the number of columns the row covers.
func (r Row) Span() int {
	n := 0
	for _, c := range r.Cells {
		n += c.ColSpan()
	}
	return n
}

// Content is the host content of a cell. It is never copied or inspected.
type Content []listtree.Node

// Cell represents a table cell
type Cell struct {
	Content  Content
	MoreCols int // extra columns covered beyond the cell's own
}

// ColSpan returns the number of columns the cell covers.
func (c Cell) ColSpan() int {
	return 1 + c.MoreCols
}

// Text returns the plain text of the cell content.
func (c Cell) Text() string {
	parts := make([]string, len(c.Content))
	for i, n := range c.Content {
		parts[i] = listtree.TextContent(n)
	}
	return strings.Join(parts, "\n\n")
}

// ColCount returns the number of columns
func (t *Table) ColCount() int {
	return len(t.Columns)
}

// RowCount returns the number of rows across both sections
func (t *Table) RowCount() int {
	return len(t.Header) + len(t.Body)
}

// Rows returns the header rows followed by the body rows.
func (t *Table) Rows() []Row {
	rows := make([]Row, 0, t.RowCount())
	rows = append(rows, t.Header...)
	return append(rows, t.Body...)
}

// GetCell returns the cell at the given row and cell index (0-indexed),
// counting header rows first. The cell index is a position in the row, not
// a column number.
func (t *Table) GetCell(row, cell int) *Cell {
	if row < 0 || row >= t.RowCount() {
		return nil
	}
	r := &t.Body
	if row < len(t.Header) {
		r = &t.Header
	} else {
		row -= len(t.Header)
	}
	if cell < 0 || cell >= len((*r)[row].Cells) {
		return nil
	}
	return &(*r)[row].Cells[cell]
}

// StubColumns returns the number of columns marked as stubs.
func (t *Table) StubColumns() int {
	n := 0
	for _, c := range t.Columns {
		if c.Stub {
			n++
		}
	}
	return n
}

// Validate checks that every row covers exactly ColCount columns.
func (t *Table) Validate() error {
	cols := t.ColCount()
	for i, row := range t.Rows() {
		if span := row.Span(); span != cols {
			return fmt.Errorf("row %d spans %d columns, table has %d", i+1, span, cols)
		}
	}
	return nil
}
