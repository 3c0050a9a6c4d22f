package assemble

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"golang.org/x/exp/mmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/harrison/mdconcat/internal/models"
)

const byteOrderMark = "\uFEFF"

// ErrFileChanged is returned when a file shrinks while it is being read.
var ErrFileChanged = errors.New("file changed while reading")

// Normalize removes one leading byte-order mark and rewrites every CRLF
// sequence to LF. A lone CR is left as is.
func Normalize(s string) string {
	s = strings.TrimPrefix(s, byteOrderMark)
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// Decode decodes data as UTF-8. Every maximal ill-formed subsequence is
// replaced with one U+FFFD, so "\xff\xfe" yields two replacement characters.
// lossy reports whether any replacement happened.
func Decode(data []byte) (text string, lossy bool, err error) {
	if utf8.Valid(data) {
		return string(data), false, nil
	}
	decoded, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return "", true, err
	}
	return string(decoded), true, nil
}

// ReadFile returns the raw contents of path.
//
// The file is memory-mapped. A file truncated by another process while it
// is mapped faults on access; the fault is turned into ErrFileChanged
// instead of crashing the process.
func ReadFile(path string) ([]byte, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file %q: %w", path, err)
	}
	defer reader.Close()

	// Zero-length maps have no backing data and ReadAt would fail
	if reader.Len() == 0 {
		return nil, nil
	}

	data := make([]byte, reader.Len())
	if err := readMapped(reader, data); err != nil {
		return nil, fmt.Errorf("read file %q: %w", path, err)
	}
	return data, nil
}

// readMapped fills data from the start of r, converting a memory fault
// into an error.
func readMapped(r *mmap.ReaderAt, data []byte) (err error) {
	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	defer func() {
		if rec := recover(); rec != nil {
			if _, ok := rec.(interface{ Addr() uintptr }); !ok {
				panic(rec)
			}
			err = ErrFileChanged
		}
	}()

	_, err = r.ReadAt(data, 0)
	return err
}

// ReadDocument reads, decodes and normalizes the file behind entry.
func ReadDocument(entry models.FileEntry) (Document, error) {
	data, err := ReadFile(entry.AbsPath)
	if err != nil {
		return Document{}, err
	}

	text, lossy, err := Decode(data)
	if err != nil {
		return Document{}, fmt.Errorf("decode file %q: %w", entry.AbsPath, err)
	}

	return Document{
		Entry:   entry,
		Content: Normalize(text),
		Lossy:   lossy,
	}, nil
}
