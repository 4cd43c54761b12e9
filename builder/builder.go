package builder

import "github.com/tsawler/greedytable/model"

// Build creates a table with one column per width. The first headerRows
// rows go to the header section and the first stubColumns columns are
// marked as stubs; excess counts are ignored.
func Build(rows [][]model.Content, numCols int, colWidths []int, headerRows, stubColumns int, bias model.Bias) *model.Table {
	table := &model.Table{
		Columns: make([]model.ColumnSpec, 0, len(colWidths)),
	}

	stubs := stubColumns
	for _, width := range colWidths {
		spec := model.ColumnSpec{Width: width}
		if stubs > 0 {
			spec.Stub = true
			stubs--
		}
		table.Columns = append(table.Columns, spec)
	}

	built := make([]model.Row, 0, len(rows))
	for _, row := range rows {
		built = append(built, buildRow(row, numCols, bias))
	}

	split := min(headerRows, len(built))
	if split > 0 {
		table.Header = built[:split:split]
	}
	table.Body = built[split:]
	return table
}

// buildRow wraps each content in a cell and widens the biased end cell.
func buildRow(row []model.Content, numCols int, bias model.Bias) model.Row {
	cells := make([]model.Cell, len(row))
	for i, content := range row {
		cells[i] = model.Cell{Content: content}
	}

	remainder := numCols - len(row)
	if remainder > 0 && len(cells) > 0 {
		target := len(cells) - 1
		if bias == model.BiasLeft {
			target = 0
		}
		cells[target].MoreCols = remainder
	}

	return model.Row{Cells: cells}
}
