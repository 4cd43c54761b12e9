// Package rstlist parses reStructuredText bullet lists into a list tree.
//
// It covers the part of reStructuredText a list-table directive body uses:
// bullet lists ("*", "+", "-", "•", "‣", "⁃") nested by indentation, and
// blank-line separated paragraphs. Indented blocks that follow other content
// become [listtree.KindOther] nodes holding their parsed children. Inline
// markup is left untouched.
//
// Example:
//
//	root := rstlist.Parse(`
//	* - Name
//	  - Value
//	* - Only one cell
//	`)
//
// The result is a [listtree.KindRoot] element whose single child is the
// outer list.
package rstlist
