// Package htmldoc reads nested HTML lists into a list tree.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/greedytable/listtree"
)

// Reader provides access to the lists of an HTML document.
type Reader struct {
	doc  *html.Node
	body *html.Node
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	body := findElement(doc, "body")
	if body == nil {
		// No body tag, use the root
		body = doc
	}

	return &Reader{doc: doc, body: body}, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Tree returns the block content of the body as a list tree root.
func (r *Reader) Tree() *listtree.Element {
	return listtree.Root(convertBlocks(r.body)...)
}

// convertList converts a ul or ol element. Children other than li are
// dropped, as browsers do when rendering.
func convertList(n *html.Node) *listtree.Element {
	list := listtree.List()
	if n.Data == "ol" {
		list = listtree.EnumeratedList()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "li" {
			list.Append(listtree.Item(convertBlocks(c)...))
		}
	}
	return list
}

// convertBlocks converts the children of n. Runs of inline content become
// paragraphs; lists are converted recursively; block containers are
// flattened into their children.
func convertBlocks(n *html.Node) []listtree.Node {
	var nodes []listtree.Node
	var inline strings.Builder

	flush := func() {
		if text := collapseSpace(inline.String()); text != "" {
			nodes = append(nodes, listtree.Paragraph(text))
		}
		inline.Reset()
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			inline.WriteString(c.Data)
		case html.ElementNode:
			switch {
			case shouldSkipElement(c.Data):
			case isList(c):
				flush()
				nodes = append(nodes, convertList(c))
			case isBlockElement(c.Data):
				flush()
				if isBlockContainer(c) {
					nodes = append(nodes, convertBlocks(c)...)
				} else if text := collapseSpace(getTextContent(c)); text != "" {
					nodes = append(nodes, listtree.Paragraph(text))
				}
			default:
				getTextContentRecursive(c, &inline)
			}
		}
	}
	flush()

	return nodes
}

func isList(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.Data == "ul" || n.Data == "ol")
}

// shouldSkipElement returns true if the element should be skipped during content extraction.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed", "head":
		return true
	}
	return false
}

func isBlockElement(tagName string) bool {
	switch tagName {
	case "div", "p", "table", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pre",
		"article", "section", "main", "header", "footer", "nav", "aside", "figure":
		return true
	}
	return false
}

// isBlockContainer returns true if the element is a block container with block-level children.
func isBlockContainer(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (isList(c) || isBlockElement(c.Data)) {
			return true
		}
	}
	return false
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// getTextContent extracts all text content from a node and its descendants.
func getTextContent(n *html.Node) string {
	var result strings.Builder
	getTextContentRecursive(n, &result)
	return strings.TrimSpace(result.String())
}

func getTextContentRecursive(n *html.Node, result *strings.Builder) {
	if n.Type == html.TextNode {
		result.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		// Skip script/style content
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			result.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		getTextContentRecursive(c, result)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr", "td", "th":
			result.WriteString(" ")
		}
	}
}

// collapseSpace replaces runs of whitespace with a single space.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
