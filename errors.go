package greedytable

import (
	"errors"
	"fmt"

	"github.com/tsawler/greedytable/model"
	"github.com/tsawler/greedytable/shape"
)

// EmptyContentError is returned when a directive has no content.
type EmptyContentError struct {
	Directive string
}

func (e *EmptyContentError) Error() string {
	return fmt.Sprintf("The %q directive is empty; content required.", e.Directive)
}

// OptionError reports an unknown or malformed directive option.
type OptionError struct {
	Option string
	Value  string
	Err    error
}

func (e *OptionError) Error() string {
	if errors.Is(e.Err, ErrUnknownOption) {
		return fmt.Sprintf("unknown option: %q", e.Option)
	}
	return fmt.Sprintf("invalid option value: (option: %q; value: %q) %v", e.Option, e.Value, e.Err)
}

func (e *OptionError) Unwrap() error { return e.Err }

// Diagnostic is the error Build returns. It carries a user-facing message
// in place of the table, and wraps the underlying error for errors.As.
type Diagnostic struct {
	Directive string
	Line      int    // 0 when unknown
	Message   string
	Block     string // source text of the directive, if known
	Err       error
}

func (d *Diagnostic) Error() string {
	if d.Line > 0 {
		return fmt.Sprintf("line %d: %s", d.Line, d.Message)
	}
	return d.Message
}

func (d *Diagnostic) Unwrap() error { return d.Err }

// diagnose converts a build failure into a Diagnostic.
func (t *ListTable) diagnose(err error) *Diagnostic {
	var (
		emptyErr  *EmptyContentError
		biasErr   *model.InvalidBiasError
		shapeErr  *shape.ShapeError
		widthErr  *shape.WidthMismatchError
		optionErr *OptionError
		msg       string
	)

	switch {
	case errors.As(err, &emptyErr):
		msg = emptyErr.Error()
	case errors.As(err, &biasErr):
		msg = fmt.Sprintf("Unable to recognise %s bias %q. Expecting \"left\" or \"right\".", t.directive, biasErr.Value)
	case errors.As(err, &shapeErr):
		msg = fmt.Sprintf("Error parsing content block for the %q directive: %s.", t.directive, shapeErr)
	case errors.As(err, &widthErr):
		msg = fmt.Sprintf("%q widths (%d) do not match the number of columns in table (%d).", t.directive, widthErr.Widths, widthErr.Columns)
	case errors.As(err, &optionErr):
		msg = fmt.Sprintf("Error in %q directive: %s.", t.directive, optionErr)
	default:
		msg = fmt.Sprintf("Error in %q directive: %v.", t.directive, err)
	}

	return &Diagnostic{
		Directive: t.directive,
		Line:      t.line,
		Message:   msg,
		Block:     t.block,
		Err:       err,
	}
}
