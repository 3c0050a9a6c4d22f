// Package concat runs the Markdown concatenation pipeline: discover, sort,
// read and normalize, assemble, write.
package concat

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/harrison/mdconcat/internal/assemble"
	"github.com/harrison/mdconcat/internal/fileutil"
	"github.com/harrison/mdconcat/internal/models"
)

// Logger is the logging surface the pipeline needs.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogComplete(files int, duration time.Duration)
}

// Options configures a single run.
type Options struct {
	// InputDir is the root to scan, resolved against the working directory.
	InputDir string
	// OutputFile is the destination, resolved against the working directory.
	OutputFile string
	// Workers bounds concurrent file reads; values below 1 mean sequential.
	Workers int
	// Logger receives progress messages; nil discards them.
	Logger Logger
}

// Result describes a completed run.
type Result struct {
	Files    int                // Number of files concatenated
	Output   string             // Absolute path of the written file
	Entries  []models.FileEntry // Files in output order
	Injected int                // Files that received a synthetic heading
	Bytes    int                // Size of the written output
}

// Empty reports whether no Markdown files were found.
func (r *Result) Empty() bool {
	return r.Files == 0
}

// Run executes the pipeline. On any error no output file is written, except
// for ErrWrite where the destination is left as it was.
func Run(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()
	log := opts.Logger
	if log == nil {
		log = nopLogger{}
	}

	if opts.InputDir == "" || opts.OutputFile == "" {
		return nil, ErrUsage
	}

	inDir, err := filepath.Abs(opts.InputDir)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInaccessible, opts.InputDir, err)
	}
	outFile, err := filepath.Abs(opts.OutputFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if err := checkInput(opts.InputDir, inDir); err != nil {
		return nil, err
	}

	log.LogInfo(fmt.Sprintf("Scanning %s", inDir))
	entries, err := fileutil.ScanMarkdown(inDir, func(rel string) {
		log.LogTrace(fmt.Sprintf("Skipping directory %s", rel))
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScan, err)
	}

	fileutil.SortEntries(entries)
	log.LogDebug(fmt.Sprintf("Found %d Markdown files", len(entries)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docs, err := readDocuments(ctx, entries, opts.Workers)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Output:  outFile,
		Entries: entries,
		Files:   len(entries),
	}
	for _, doc := range docs {
		if doc.Lossy {
			log.LogWarn(fmt.Sprintf("%s is not valid UTF-8; invalid bytes were replaced with U+FFFD", doc.Entry.RelPath))
		}
		if doc.NeedsHeading() {
			result.Injected++
			log.LogDebug(fmt.Sprintf("Included %s (heading injected)", doc.Entry.RelPath))
		} else {
			log.LogDebug(fmt.Sprintf("Included %s", doc.Entry.RelPath))
		}
	}

	output := assemble.Assemble(docs)
	result.Bytes = len(output)

	if err := fileutil.WriteOutput(outFile, []byte(output)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	log.LogComplete(result.Files, time.Since(start))
	return result, nil
}

// checkInput classifies a bad input root before any traversal.
func checkInput(display, abs string) error {
	err := fileutil.CheckDirectory(abs)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fileutil.ErrNotDirectory):
		return fmt.Errorf("%s is %w", display, ErrNotDirectory)
	default:
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			err = pathErr
		}
		return fmt.Errorf("%w %q: %w", ErrInaccessible, display, err)
	}
}

type nopLogger struct{}

func (nopLogger) LogTrace(string) {}
func (nopLogger) LogDebug(string) {}
func (nopLogger) LogInfo(string) {}
func (nopLogger) LogWarn(string) {}
func (nopLogger) LogComplete(int, time.Duration) {}
