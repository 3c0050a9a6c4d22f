package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/mdconcat/internal/models"
)

// MarkdownExtensions lists the accepted Markdown file extensions.
var MarkdownExtensions = []string{".md", ".markdown", ".mdx"}

// DefaultIgnoreDirs lists directory names that are never descended into.
var DefaultIgnoreDirs = []string{"node_modules", ".git", ".github", ".next", "dist", "build", ".cache"}

// ErrNotDirectory is returned when the scan root exists but is not a directory.
var ErrNotDirectory = errors.New("path is not a directory")

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Extensions is a list of file extensions to include (e.g., ".md", ".mdx")
	Extensions []string
	// ExcludeDirs is a list of directory names to exclude (e.g., ".git", "node_modules")
	ExcludeDirs []string
	// OnSkipDir is called with the relative path of every excluded directory
	OnSkipDir func(relPath string)
}

// CheckDirectory verifies that dir exists and is a directory.
func CheckDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	return nil
}

// ScanMarkdown scans dir for Markdown files, skipping the default ignore set.
// onSkipDir may be nil.
func ScanMarkdown(dir string, onSkipDir func(relPath string)) ([]models.FileEntry, error) {
	return ScanDirectory(dir, ScanOptions{
		Extensions:  MarkdownExtensions,
		ExcludeDirs: DefaultIgnoreDirs,
		OnSkipDir:   onSkipDir,
	})
}

// ScanDirectory walks dir depth-first and returns an entry for every regular
// file whose extension is in opts.Extensions. The result is in traversal
// order; use SortEntries for a deterministic order.
//
// A root that is itself a symbolic link is resolved before walking; links
// below the root are never followed. AbsPath keeps the root as given.
func ScanDirectory(dir string, opts ScanOptions) ([]models.FileEntry, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}
	if err := CheckDirectory(root); err != nil {
		return nil, err
	}

	// WalkDir does not descend into a root that is a symlink
	walkRoot, err := filepath.EvalSymlinks(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}

	extMap := make(map[string]bool)
	for _, ext := range opts.Extensions {
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extMap[strings.ToLower(ext)] = true
	}

	excludeMap := make(map[string]bool)
	for _, name := range opts.ExcludeDirs {
		excludeMap[name] = true
	}

	entries := make([]models.FileEntry, 0)

	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error accessing %s: %w", path, err)
		}

		if path == walkRoot {
			return nil
		}

		rel := relSlash(walkRoot, path)

		if d.IsDir() {
			if excludeMap[d.Name()] {
				if opts.OnSkipDir != nil {
					opts.OnSkipDir(rel)
				}
				return filepath.SkipDir
			}
			return nil
		}

		// Symlinks, sockets and devices are never candidates.
		if !d.Type().IsRegular() {
			return nil
		}

		if len(extMap) > 0 && !extMap[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}

		entry := models.FileEntry{
			AbsPath: filepath.Join(root, filepath.FromSlash(rel)),
			RelPath: rel,
		}
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("invalid entry for %s: %w", path, err)
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	return entries, nil
}

// relSlash returns path relative to root with forward-slash separators.
// path always lies under root, so filepath.Rel cannot fail here.
func relSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = strings.TrimPrefix(path, root+string(filepath.Separator))
	}
	return filepath.ToSlash(rel)
}
