// Package fileutil provides Markdown discovery, deterministic ordering and
// output writing for mdconcat.
//
// # Purpose
//
// The fileutil package is the filesystem layer of the concatenation pipeline:
//   - Recursive discovery of Markdown files under a root directory
//   - Exclusion of tooling and build directories (node_modules, .git, dist, ...)
//   - Case-insensitive extension filtering (.md, .markdown, .mdx)
//   - Locale-aware, case-insensitive ordering by relative path
//   - Writing the assembled document without leaving truncated output behind
//
// # Main Components
//
// ScanOptions - Configuration for directory scanning:
//   - Extensions: file extensions to include (case-insensitive, e.g. ".md")
//   - ExcludeDirs: directory names whose whole subtree is skipped
//   - OnSkipDir: optional callback invoked for every excluded directory
//
// ScanDirectory() walks a root and returns one models.FileEntry per matched
// file. ScanMarkdown() is ScanDirectory with the fixed Markdown extension set
// and ignore set, plus an optional callback for skipped directories.
//
// SortEntries() orders entries by relative path using the Unicode collation
// algorithm at primary strength, so "B.md" sorts between "a.md" and "c.md".
//
// WriteOutput() creates parent directories and writes data through a
// temporary file that is renamed over the destination.
//
// # Usage Examples
//
//	entries, err := fileutil.ScanMarkdown("/path/to/docs", nil)
//	if err != nil {
//	    return err
//	}
//	fileutil.SortEntries(entries)
//	for _, e := range entries {
//	    fmt.Println(e.RelPath)
//	}
//
// # Symbolic Links
//
// A root that is a symbolic link is resolved before traversal, and entries
// keep the root path as given. Below the root, traversal uses
// filepath.WalkDir, which does not follow symbolic links: symlinked
// directories are not descended into and symlinked files are not included,
// because only regular files are candidates.
//
// # Error Handling
//
// A root that does not exist or is not a directory fails before traversal
// begins. Any error while walking (for example permission denied on a
// subdirectory) aborts the scan; there is no partial result.
package fileutil
