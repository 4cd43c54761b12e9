package greedytable

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/tsawler/greedytable/builder"
	"github.com/tsawler/greedytable/listtree"
	"github.com/tsawler/greedytable/logging"
	"github.com/tsawler/greedytable/model"
	"github.com/tsawler/greedytable/shape"
)

// ListTable provides a fluent interface for building a table from a nested
// list. Each configuration method returns a new ListTable instance, making
// it safe for concurrent use and allowing method chaining.
type ListTable struct {
	// Source
	root listtree.Node

	// Configuration
	options   Options
	title     string
	directive string
	line      int
	block     string

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the ListTable with a deep copy of options.
// The tree itself is shared; nothing here modifies it.
func (t *ListTable) clone() *ListTable {
	return &ListTable{
		root:      t.root,
		options:   t.options.clone(),
		title:     t.title,
		directive: t.directive,
		line:      t.line,
		block:     t.block,
		err:       t.err,
	}
}

// ============================================================================
// Configuration Methods (return new ListTable instance)
// ============================================================================

// HeaderRows sets how many leading rows form the header section. Counts
// beyond the number of rows leave the body empty.
//
// Example:
//
//	table, err := greedytable.FromText(content).HeaderRows(1).Build()
func (t *ListTable) HeaderRows(n int) *ListTable {
	newT := t.clone()
	if n < 0 {
		newT.setErr(&OptionError{Option: "header-rows", Value: strconv.Itoa(n), Err: errNegative})
		return newT
	}
	newT.options.HeaderRows = n
	return newT
}

// StubColumns sets how many leading columns are stub columns.
//
// Example:
//
//	table, err := greedytable.FromText(content).StubColumns(1).Build()
func (t *ListTable) StubColumns(n int) *ListTable {
	newT := t.clone()
	if n < 0 {
		newT.setErr(&OptionError{Option: "stub-columns", Value: strconv.Itoa(n), Err: errNegative})
		return newT
	}
	newT.options.StubColumns = n
	return newT
}

// Widths sets explicit column width weights, one per column.
//
// Example:
//
//	table, err := greedytable.FromText(content).Widths(30, 70).Build()
func (t *ListTable) Widths(widths ...int) *ListTable {
	newT := t.clone()
	for _, w := range widths {
		if w <= 0 {
			newT.setErr(&OptionError{Option: "widths", Value: strconv.Itoa(w), Err: errNotPositive})
			return newT
		}
	}
	if len(widths) == 0 {
		newT.options.Widths = nil
		return newT
	}
	newT.options.Widths = append([]int{}, widths...)
	return newT
}

// Bias selects which cell of a short row is widened.
//
// Example:
//
//	table, err := greedytable.FromText(content).Bias(model.BiasLeft).Build()
func (t *ListTable) Bias(b model.Bias) *ListTable {
	newT := t.clone()
	newT.options.Bias = b
	return newT
}

// Classes adds CSS class names to the table. Multiple calls are cumulative.
func (t *ListTable) Classes(classes ...string) *ListTable {
	newT := t.clone()
	newT.options.Classes = append(newT.options.Classes, classes...)
	return newT
}

// Name sets the reference name of the table.
func (t *ListTable) Name(name string) *ListTable {
	newT := t.clone()
	newT.options.Name = name
	return newT
}

// Title sets the table title.
func (t *ListTable) Title(title string) *ListTable {
	newT := t.clone()
	newT.title = title
	return newT
}

// WithOptions replaces all directive options, typically with the result
// of ParseOptions or LoadOptions.
//
// Example:
//
//	opts, err := greedytable.LoadOptionsFile("table.yaml")
//	table, err := greedytable.FromText(content).WithOptions(opts).Build()
func (t *ListTable) WithOptions(opts Options) *ListTable {
	newT := t.clone()
	newT.options = opts.clone()
	return newT
}

// WithOptionBag parses a directive option bag and applies it. A malformed
// bag is reported by Build.
//
// Example:
//
//	table, err := greedytable.FromText(content).
//	    WithOptionBag(map[string]string{"bias": "left"}).
//	    Build()
func (t *ListTable) WithOptionBag(bag map[string]string) *ListTable {
	opts, err := ParseOptions(bag)
	if err != nil {
		newT := t.clone()
		newT.setErr(err)
		return newT
	}
	return t.WithOptions(opts)
}

// Directive sets the directive name used in diagnostics.
func (t *ListTable) Directive(name string) *ListTable {
	newT := t.clone()
	newT.directive = name
	return newT
}

// Line sets the source line reported in diagnostics.
func (t *ListTable) Line(n int) *ListTable {
	newT := t.clone()
	newT.line = n
	return newT
}

// Block sets the directive source text attached to diagnostics.
func (t *ListTable) Block(text string) *ListTable {
	newT := t.clone()
	newT.block = text
	return newT
}

// setErr records the first configuration error.
func (t *ListTable) setErr(err error) {
	if t.err == nil {
		t.err = err
	}
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Build validates the list and assembles the table. On failure it returns
// a *Diagnostic wrapping one of *EmptyContentError, *model.InvalidBiasError,
// *shape.ShapeError, *shape.WidthMismatchError or *OptionError, and no
// table.
//
// Example:
//
//	table, err := greedytable.FromText(content).Build()
//	var se *shape.ShapeError
//	if errors.As(err, &se) {
//	    log.Printf("row %d is not a list", se.Row)
//	}
func (t *ListTable) Build() (*model.Table, error) {
	log := logging.Logger()

	table, err := t.build()
	if err != nil {
		diag := t.diagnose(err)
		log.Debug("list table rejected",
			zap.String("directive", t.directive),
			zap.Int("line", t.line),
			zap.Error(err))
		return nil, diag
	}

	log.Debug("list table built",
		zap.String("directive", t.directive),
		zap.Int("rows", table.RowCount()),
		zap.Int("columns", table.ColCount()),
		zap.Int("header_rows", len(table.Header)),
		zap.Stringer("bias", t.options.Bias))
	return table, nil
}

func (t *ListTable) build() (*model.Table, error) {
	if t.err != nil {
		return nil, t.err
	}
	if t.root == nil || len(t.root.Children()) == 0 {
		return nil, &EmptyContentError{Directive: t.directive}
	}
	if !t.options.Bias.Valid() {
		return nil, &model.InvalidBiasError{Value: t.options.Bias.String()}
	}

	res, err := shape.Analyze(t.root, t.options.Widths)
	if err != nil {
		return nil, err
	}
	if len(res.Rows) == 0 {
		return nil, &EmptyContentError{Directive: t.directive}
	}

	table := builder.Build(res.Rows, res.NumCols, res.ColWidths,
		t.options.HeaderRows, t.options.StubColumns, t.options.Bias)

	table.Title = t.title
	table.Classes = append(table.Classes, t.options.Classes...)
	if t.options.Name != "" {
		table.Names = append(table.Names, normalizeName(t.options.Name))
	}
	return table, nil
}
