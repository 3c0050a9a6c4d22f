package assemble

import (
	"strings"
	"unicode"

	"github.com/harrison/mdconcat/internal/models"
)

const (
	// preamble opens a non-empty output document.
	preamble = "\n"
	// separator precedes every file.
	separator = "\n"
	// headingMarker is the prefix that counts as a top-level heading.
	headingMarker = "# "
)

// Document is a discovered file paired with its normalized content.
type Document struct {
	Entry   models.FileEntry
	Content string
	Lossy   bool // Invalid UTF-8 was replaced while decoding
}

// NeedsHeading reports whether a synthetic heading is emitted for d.
func (d Document) NeedsHeading() bool {
	return !HasTopLevelHeading(d.Content)
}

// HasTopLevelHeading reports whether content, ignoring leading whitespace,
// starts with "# ".
func HasTopLevelHeading(content string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(content, isSpace), headingMarker)
}

// isSpace matches the ECMAScript WhiteSpace and LineTerminator sets: the
// Zs category plus tab, line feed, vertical tab, form feed, carriage return,
// U+FEFF and the line and paragraph separators. Unlike unicode.IsSpace it
// includes U+FEFF and excludes U+0085.
func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// Heading returns the synthetic heading block for relPath.
func Heading(relPath string) string {
	return headingMarker + relPath + "\n\n"
}

// Assemble concatenates docs in the given order.
//
// The output is a single newline followed, for each document, by a newline
// separator, a synthetic heading when the document lacks one, and the content
// with trailing whitespace removed plus one newline. No documents yield the
// empty string.
func Assemble(docs []Document) string {
	if len(docs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(preamble)

	for _, doc := range docs {
		b.WriteString(separator)
		if doc.NeedsHeading() {
			b.WriteString(Heading(doc.Entry.RelPath))
		}
		b.WriteString(strings.TrimRightFunc(doc.Content, isSpace))
		b.WriteString("\n")
	}

	return b.String()
}
