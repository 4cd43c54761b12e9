// Package format provides content format detection for greedytable.
package format

import (
	"path/filepath"
	"strings"
)

// Format represents a supported content format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// RST indicates reStructuredText bullet-list content.
	RST
	// HTML indicates an HTML document or fragment.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case RST:
		return "RST"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case RST:
		return ".rst"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

// Detect determines content format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".rst", ".rest", ".txt":
		return RST
	case ".html", ".htm", ".xhtml":
		return HTML
	default:
		return Unknown
	}
}

// DetectFromContent inspects the leading bytes of data. Markup that opens
// with a document, list, or body tag is HTML; anything else that is not
// blank is treated as reStructuredText.
func DetectFromContent(data []byte) Format {
	if detectHTMLMagic(data) {
		return HTML
	}
	if strings.TrimSpace(string(data)) == "" {
		return Unknown
	}
	return RST
}

// detectHTMLMagic checks if the data looks like HTML content.
func detectHTMLMagic(data []byte) bool {
	trimmed := strings.TrimLeft(string(data), " \t\r\n")
	if trimmed == "" {
		return false
	}

	// Check for common HTML signatures (case-insensitive)
	upper := strings.ToUpper(trimmed[:min(512, len(trimmed))])
	for _, prefix := range []string{"<!DOCTYPE HTML", "<HTML", "<BODY", "<UL", "<OL"} {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	// XML declaration followed by html-like content could be XHTML
	return strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML")
}
