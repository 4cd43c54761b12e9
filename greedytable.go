// Package greedytable builds rectangular tables from ragged two-level lists.
//
// A list table is written as a bullet list whose items are bullet lists;
// each inner list is a row and each of its items is a cell. Rows may have
// different lengths. The widest row sets the column count, and every
// shorter row has its last cell (or first, with a left bias) widened to
// fill the missing columns.
//
// Basic usage:
//
//	table, err := greedytable.FromText(`
//	* - Name
//	  - Value
//	* - Only one cell
//	`).HeaderRows(1).Build()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(table.ColCount(), table.Body[0].Cells[0].ColSpan()) // 2 2
//
// With options from a directive:
//
//	opts, err := greedytable.ParseOptions(map[string]string{
//	    "header-rows": "1",
//	    "bias":        "left",
//	    "widths":      "30 70",
//	})
//	table, err := greedytable.FromTree(root).WithOptions(opts).Build()
//
// For lower-level control, use the shape and builder packages directly.
package greedytable

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/greedytable/format"
	"github.com/tsawler/greedytable/htmldoc"
	"github.com/tsawler/greedytable/listtree"
	"github.com/tsawler/greedytable/rstlist"
)

// DefaultDirective is the directive name used in diagnostics.
const DefaultDirective = "greedy-list-table"

// FromTree returns a ListTable for a tree the caller has already parsed.
//
// Example:
//
//	table, err := greedytable.FromTree(root).Bias(model.BiasLeft).Build()
func FromTree(root listtree.Node) *ListTable {
	return &ListTable{
		root:      root,
		directive: DefaultDirective,
		options:   defaultOptions(),
	}
}

// FromText parses reStructuredText bullet-list content.
//
// Example:
//
//	table, err := greedytable.FromText("* - A\n  - B\n* - C").Build()
func FromText(content string) *ListTable {
	var root listtree.Node
	if !rstlist.IsBlank(content) {
		root = rstlist.Parse(content)
	}
	t := FromTree(root)
	t.block = content
	return t
}

// FromHTML parses an HTML document. The body must hold exactly one bullet
// list and nothing else; any other content is rejected by Build.
//
// Example:
//
//	f, _ := os.Open("table.html")
//	defer f.Close()
//	table, err := greedytable.FromHTML(f).Build()
func FromHTML(r io.Reader) *ListTable {
	hr, err := htmldoc.OpenReader(r)
	if err != nil {
		t := FromTree(nil)
		t.err = err
		return t
	}
	defer hr.Close()

	return FromTree(hr.Tree())
}

// Open reads a file and parses it according to its format. Files without a
// recognized extension are sniffed; anything that is not HTML is parsed as
// reStructuredText.
//
// Example:
//
//	table, err := greedytable.Open("table.rst").HeaderRows(1).Build()
func Open(filename string) *ListTable {
	data, err := os.ReadFile(filename)
	if err != nil {
		t := FromTree(nil)
		t.err = fmt.Errorf("reading %s: %w", filename, err)
		return t
	}

	f := format.Detect(filename)
	if f == format.Unknown {
		f = format.DetectFromContent(data)
	}

	if f == format.HTML {
		return FromHTML(bytes.NewReader(data))
	}
	return FromText(string(data))
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	table := greedytable.Must(greedytable.FromText(content).Build())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
