package rstlist

import (
	"strings"

	"github.com/tsawler/greedytable/listtree"
)

// BulletCharacters are the characters recognized as bullets
var BulletCharacters = []rune{'*', '+', '-', '•', '‣', '⁃'}

const tabWidth = 8

// Parse parses directive content into a list tree.
func Parse(content string) *listtree.Element {
	return ParseLines(strings.Split(content, "\n"))
}

// ParseLines parses directive content lines into a list tree.
func ParseLines(lines []string) *listtree.Element {
	cleaned := make([]string, len(lines))
	for i, line := range lines {
		cleaned[i] = strings.TrimRight(expandTabs(line), " \r")
	}
	return listtree.Root(parseBlock(cleaned)...)
}

// IsBlank reports whether content holds no text at all.
func IsBlank(content string) bool {
	return strings.TrimSpace(content) == ""
}

// parseBlock parses lines that share a common left margin.
func parseBlock(lines []string) []listtree.Node {
	lines = dedent(lines)

	var nodes []listtree.Node
	i := 0
	for i < len(lines) {
		line := lines[i]
		if line == "" {
			i++
			continue
		}

		if indentOf(line) > 0 {
			end := i
			for end < len(lines) && (lines[end] == "" || indentOf(lines[end]) > 0) {
				end++
			}
			nodes = append(nodes, listtree.NewElement(listtree.KindOther, parseBlock(lines[i:end])...))
			i = end
			continue
		}

		if marker, ok := bulletOf(line); ok {
			list, next := parseList(lines, i, marker)
			nodes = append(nodes, list)
			i = next
			continue
		}

		end := i
		for end < len(lines) && lines[end] != "" {
			end++
		}
		nodes = append(nodes, paragraph(lines[i:end]))
		i = end
	}
	return nodes
}

// parseList collects consecutive items that use the same bullet. A
// different bullet at the same margin starts a new list.
func parseList(lines []string, start int, marker rune) (*listtree.Element, int) {
	list := listtree.List()
	i := start
	for i < len(lines) {
		m, ok := bulletOf(lines[i])
		if !ok || m != marker {
			break
		}

		// Replacing the bullet with a space keeps the item text in its column.
		body := []string{strings.TrimRight(strings.Replace(lines[i], string(marker), " ", 1), " ")}
		i++
		for i < len(lines) && (lines[i] == "" || indentOf(lines[i]) > 0) {
			body = append(body, lines[i])
			i++
		}
		list.Append(listtree.Item(parseBlock(body)...))
	}
	return list, i
}

// bulletOf returns the bullet that starts line, if any.
func bulletOf(line string) (rune, bool) {
	runes := []rune(line)
	if len(runes) == 0 {
		return 0, false
	}
	for _, bullet := range BulletCharacters {
		if runes[0] == bullet && (len(runes) == 1 || runes[1] == ' ') {
			return bullet, true
		}
	}
	return 0, false
}

func paragraph(lines []string) *listtree.Element {
	trimmed := make([]string, len(lines))
	for i, line := range lines {
		trimmed[i] = strings.TrimSpace(line)
	}
	return listtree.Paragraph(strings.Join(trimmed, "\n"))
}

// dedent removes the smallest indentation shared by all non-blank lines.
func dedent(lines []string) []string {
	margin := -1
	for _, line := range lines {
		if line == "" {
			continue
		}
		if n := indentOf(line); margin < 0 || n < margin {
			margin = n
		}
	}
	if margin <= 0 {
		return lines
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if line != "" {
			out[i] = line[margin:]
		}
	}
	return out
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

func expandTabs(line string) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var sb strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := tabWidth - col%tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col++
	}
	return sb.String()
}
