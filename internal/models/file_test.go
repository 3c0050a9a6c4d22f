package models

import (
	"testing"
)

func TestFileEntry_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entry   FileEntry
		wantErr bool
	}{
		{"valid nested", FileEntry{AbsPath: "/docs/sub/a.md", RelPath: "sub/a.md"}, false},
		{"valid top level", FileEntry{AbsPath: "/docs/b.md", RelPath: "b.md"}, false},
		{"missing abs path", FileEntry{RelPath: "b.md"}, true},
		{"missing rel path", FileEntry{AbsPath: "/docs/b.md"}, true},
		{"backslash separator", FileEntry{AbsPath: `C:\docs\sub\a.md`, RelPath: `sub\a.md`}, true},
		{"escapes root", FileEntry{AbsPath: "/a.md", RelPath: "../a.md"}, true},
		{"absolute rel path", FileEntry{AbsPath: "/a.md", RelPath: "/a.md"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRelPaths(t *testing.T) {
	entries := []FileEntry{
		{AbsPath: "/d/sub/a.md", RelPath: "sub/a.md"},
		{AbsPath: "/d/b.md", RelPath: "b.md"},
	}

	got := RelPaths(entries)
	want := []string{"sub/a.md", "b.md"}
	if len(got) != len(want) {
		t.Fatalf("RelPaths() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RelPaths()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if empty := RelPaths(nil); len(empty) != 0 {
		t.Errorf("RelPaths(nil) = %v, want empty", empty)
	}
}
