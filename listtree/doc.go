// Package listtree defines the nested-list tree that greedytable reads.
//
// A document host parses directive content into its own node types. This
// package reduces that tree to the few capabilities the table normalizer
// needs: the kind of a node, its children in document order, and the plain
// text of leaf paragraphs. Hosts either wrap their nodes in the [Node]
// interface or build an [Element] tree directly.
//
// # Shape
//
// A list table is expected to look like this:
//
//	Root
//	└── List                 (exactly one)
//	    ├── Item             (one per row)
//	    │   └── List         (exactly one)
//	    │       ├── Item     (one per cell)
//	    │       │   └── ...  (cell content, opaque)
//	    │       └── Item
//	    └── Item
//	        └── List
//	            └── Item
//
// The constructors make such trees easy to write by hand:
//
//	root := listtree.Root(
//	    listtree.List(
//	        listtree.Item(listtree.List(
//	            listtree.Item(listtree.Paragraph("A")),
//	            listtree.Item(listtree.Paragraph("B")),
//	        )),
//	    ),
//	)
package listtree
