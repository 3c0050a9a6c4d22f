// Package assemble turns Markdown files into the single concatenated document.
//
// Each file is read and normalized independently (byte-order mark removed,
// CRLF rewritten to LF), then Assemble joins the normalized documents in the
// order given. A file that does not open with a top-level heading gets a
// synthetic "# <relative/path>" heading so every section of the output is
// labelled.
//
// Files are memory-mapped. Invalid UTF-8 is decoded with one U+FFFD per
// ill-formed sequence and the document is marked Lossy. A file truncated by
// another process during the read fails with ErrFileChanged.
//
// The package never parses Markdown. Heading detection is a prefix check on
// the left-trimmed text.
package assemble
