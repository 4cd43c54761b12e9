package listtree

import "strings"

// Kind represents the kind of a tree node
type Kind int

const (
	KindOther Kind = iota
	KindRoot
	KindList
	KindItem
	KindParagraph
	KindEnumeratedList
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindList:
		return "List"
	case KindItem:
		return "Item"
	case KindParagraph:
		return "Paragraph"
	case KindEnumeratedList:
		return "EnumeratedList"
	default:
		return "Other"
	}
}

// Node is the interface for all tree nodes
type Node interface {
	Kind() Kind
	Children() []Node
	// Text returns the node's own text. Only paragraphs carry text.
	Text() string
}

// Element is the in-memory Node implementation
type Element struct {
	kind     Kind
	children []Node
	text     string
}

// Kind returns the node kind. A nil element is an empty KindOther node.
func (e *Element) Kind() Kind {
	if e == nil {
		return KindOther
	}
	return e.kind
}

func (e *Element) Children() []Node {
	if e == nil {
		return nil
	}
	return e.children
}

func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	return e.text
}

// Append adds children to the element.
func (e *Element) Append(children ...Node) {
	e.children = append(e.children, children...)
}

// NewElement creates an element of the given kind.
func NewElement(kind Kind, children ...Node) *Element {
	return &Element{kind: kind, children: children}
}

// Root creates the anonymous container a host parses directive content into.
func Root(children ...Node) *Element {
	return NewElement(KindRoot, children...)
}

// List creates a bullet list whose children are list items.
func List(items ...Node) *Element {
	return NewElement(KindList, items...)
}

// EnumeratedList creates a numbered list whose children are list items.
func EnumeratedList(items ...Node) *Element {
	return NewElement(KindEnumeratedList, items...)
}

// Item creates a list item.
func Item(children ...Node) *Element {
	return NewElement(KindItem, children...)
}

// Paragraph creates a leaf text node.
func Paragraph(text string) *Element {
	return &Element{kind: KindParagraph, text: text}
}

// IsList reports whether n is a bullet or enumerated list.
func IsList(n Node) bool {
	if n == nil {
		return false
	}
	k := n.Kind()
	return k == KindList || k == KindEnumeratedList
}

// IsBulletList reports whether n is a bullet list.
func IsBulletList(n Node) bool {
	return n != nil && n.Kind() == KindList
}

// TextContent returns the text of n and all its descendants, with
// paragraphs separated by blank lines.
func TextContent(n Node) string {
	if n == nil {
		return ""
	}
	var parts []string
	collectText(n, &parts)
	return strings.Join(parts, "\n\n")
}

func collectText(n Node, parts *[]string) {
	if t := n.Text(); t != "" {
		*parts = append(*parts, t)
	}
	for _, c := range n.Children() {
		if c != nil {
			collectText(c, parts)
		}
	}
}
