// Package shape validates and measures a two-level nested list.
//
// [Analyze] checks that a parsed tree holds exactly one list whose items
// each hold exactly one second-level list, finds the widest row, and
// allocates column widths. Cell content is collected but never inspected.
//
// Basic usage:
//
//	res, err := shape.Analyze(root, nil)
//	if err != nil {
//	    var se *shape.ShapeError
//	    if errors.As(err, &se) && se.Row > 0 {
//	        log.Printf("row %d is not a list", se.Row)
//	    }
//	    return err
//	}
//	fmt.Println(res.NumCols, res.ColWidths)
package shape
