package models

import (
	"errors"
	"path"
	"strings"
)

// FileEntry is a Markdown file discovered under the scan root.
type FileEntry struct {
	AbsPath string // Absolute path on the host filesystem
	RelPath string // Path relative to the scan root, always with "/" separators
}

// Validate checks that both paths are set and that RelPath is a clean,
// forward-slash path that stays inside the root.
func (e FileEntry) Validate() error {
	if e.AbsPath == "" {
		return errors.New("absolute path is required")
	}
	if e.RelPath == "" {
		return errors.New("relative path is required")
	}
	if strings.Contains(e.RelPath, `\`) {
		return errors.New("relative path must use forward slashes")
	}
	if path.IsAbs(e.RelPath) || e.RelPath == ".." || strings.HasPrefix(e.RelPath, "../") {
		return errors.New("relative path must stay inside the scan root")
	}
	return nil
}

// RelPaths returns the relative paths of entries in order.
func RelPaths(entries []FileEntry) []string {
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = e.RelPath
	}
	return paths
}
