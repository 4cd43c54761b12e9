// Package model provides the table tree produced by greedytable.
//
// A [Table] holds one [ColumnSpec] per column and its rows split into a
// header section and a body section. Each [Row] holds [Cell] values whose
// [Content] is the host's cell content, relocated unmodified.
//
// # Column Spans
//
// A cell that must cover more than one column records the number of extra
// columns in MoreCols, following the docutils "morecols" convention:
//
//	cell.MoreCols == 0  // spans one column
//	cell.MoreCols == 2  // spans three columns
//
// Every row of a well-formed table spans exactly [Table.ColCount] columns;
// [Table.Validate] checks this.
//
// # Bias
//
// [Bias] selects which end of a short row absorbs the missing columns.
// [BiasRight] is the zero value and the default.
package model
