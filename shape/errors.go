package shape

import "fmt"

// ShapeError reports a malformed nested list. Row is the 1-based index of
// the offending row, or 0 when the outer list itself is wrong.
type ShapeError struct {
	Row int
}

func (e *ShapeError) Error() string {
	if e.Row == 0 {
		return "exactly one bullet list expected"
	}
	return fmt.Sprintf("two-level bullet list expected, but row %d does not contain a second-level bullet list", e.Row)
}

// WidthMismatchError reports explicit widths that do not match the column count.
type WidthMismatchError struct {
	Widths  int
	Columns int
}

func (e *WidthMismatchError) Error() string {
	return fmt.Sprintf("%d widths do not match the number of columns in table (%d)", e.Widths, e.Columns)
}
