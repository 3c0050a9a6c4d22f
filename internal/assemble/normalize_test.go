package assemble

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/mmap"

	"github.com/harrison/mdconcat/internal/models"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "hello", "hello"},
		{"crlf", "line1\r\nline2", "line1\nline2"},
		{"trailing crlf", "a\r\nb\r\n", "a\nb\n"},
		{"lone cr kept", "a\rb", "a\rb"},
		{"cr cr lf", "a\r\r\nb", "a\r\nb"},
		{"bom stripped", "\uFEFF# Title", "# Title"},
		{"only one bom stripped", "\uFEFF\uFEFFx", "\uFEFFx"},
		{"bom not at start kept", "x\uFEFF", "x\uFEFF"},
		{"bom and crlf", "\uFEFFa\r\nb", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		want      string
		wantLossy bool
	}{
		{"valid", "naïve café", "naïve café", false},
		{"empty", "", "", false},
		{"one replacement per invalid byte", "\xff\xfe\xfd", "\uFFFD\uFFFD\uFFFD", true},
		{"invalid bytes between text", "ok \xff\xfe end", "ok \uFFFD\uFFFD end", true},
		{"truncated sequence is one replacement", "a\xe6\x97b", "a\uFFFDb", true},
		{"truncated sequence at end", "a\xe6\x97", "a\uFFFD", true},
		{"bom is kept for Normalize", "\xEF\xBB\xBF# T", "\uFEFF# T", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, lossy, err := Decode([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantLossy, lossy)
		})
	}
}

func TestReadDocument(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, data []byte) models.FileEntry {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, data, 0644))
		return models.FileEntry{AbsPath: path, RelPath: name}
	}

	t.Run("bom and crlf", func(t *testing.T) {
		entry := write("bom.md", []byte("\xEF\xBB\xBFline1\r\nline2\r\n"))
		doc, err := ReadDocument(entry)
		require.NoError(t, err)
		assert.Equal(t, entry, doc.Entry)
		assert.Equal(t, "line1\nline2\n", doc.Content)
		assert.False(t, doc.Lossy)
	})

	t.Run("empty file", func(t *testing.T) {
		doc, err := ReadDocument(write("empty.md", nil))
		require.NoError(t, err)
		assert.Equal(t, "", doc.Content)
		assert.False(t, doc.Lossy)
	})

	t.Run("invalid utf8 replaced per sequence", func(t *testing.T) {
		doc, err := ReadDocument(write("bad.md", []byte("# A\n\xff\xfe\xfd")))
		require.NoError(t, err)
		assert.Equal(t, "# A\n\uFFFD\uFFFD\uFFFD", doc.Content)
		assert.True(t, doc.Lossy)
	})

	t.Run("multibyte content preserved", func(t *testing.T) {
		doc, err := ReadDocument(write("utf8.md", []byte("# Überblick\r\nnaïve café 日本語")))
		require.NoError(t, err)
		assert.Equal(t, "# Überblick\nnaïve café 日本語", doc.Content)
		assert.False(t, doc.Lossy)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadDocument(models.FileEntry{AbsPath: filepath.Join(dir, "missing.md"), RelPath: "missing.md"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing.md")
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})
}

func TestReadMapped_TruncatedFile(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("relies on SIGBUS for pages past the end of a truncated mapping")
	}

	path := filepath.Join(t.TempDir(), "shrinking.md")
	size := 3 * os.Getpagesize()
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0644))

	reader, err := mmap.Open(path)
	require.NoError(t, err)
	defer reader.Close()

	require.NoError(t, os.Truncate(path, 0))

	err = readMapped(reader, make([]byte, size))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileChanged), "got %v", err)
}
