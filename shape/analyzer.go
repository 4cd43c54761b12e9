package shape

import (
	"github.com/tsawler/greedytable/listtree"
	"github.com/tsawler/greedytable/model"
)

// Result holds the measured shape of a list table
type Result struct {
	NumCols   int
	ColWidths []int
	Rows      [][]model.Content
}

// Analyze validates the two-level nesting under root and measures it.
// widths, when non-nil, must hold one weight per column.
func Analyze(root listtree.Node, widths []int) (*Result, error) {
	if root == nil {
		return nil, &ShapeError{}
	}
	children := root.Children()
	if len(children) != 1 || !listtree.IsBulletList(children[0]) {
		return nil, &ShapeError{}
	}

	items := children[0].Children()
	rows := make([][]model.Content, 0, len(items))
	numCols := 0

	for i, item := range items {
		if item == nil {
			return nil, &ShapeError{Row: i + 1}
		}
		sub := item.Children()
		if len(sub) != 1 || !listtree.IsBulletList(sub[0]) {
			return nil, &ShapeError{Row: i + 1}
		}

		cells := sub[0].Children()
		row := make([]model.Content, len(cells))
		for j, cell := range cells {
			if cell != nil {
				row[j] = cell.Children()
			}
		}
		rows = append(rows, row)
		numCols = max(numCols, len(cells))
	}

	colWidths, err := ColumnWidths(numCols, widths)
	if err != nil {
		return nil, err
	}

	return &Result{
		NumCols:   numCols,
		ColWidths: colWidths,
		Rows:      rows,
	}, nil
}

// ColumnWidths returns explicit when it matches numCols, or an even
// integer split of 100 otherwise. The division remainder is dropped.
func ColumnWidths(numCols int, explicit []int) ([]int, error) {
	if explicit != nil {
		if len(explicit) != numCols {
			return nil, &WidthMismatchError{Widths: len(explicit), Columns: numCols}
		}
		return explicit, nil
	}

	widths := make([]int, numCols)
	for i := range widths {
		widths[i] = 100 / numCols
	}
	return widths, nil
}
