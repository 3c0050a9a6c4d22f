package concat

import "errors"

// Error categories of a run. Every error returned by Run wraps exactly one of
// these together with the underlying cause; test with errors.Is.
var (
	// ErrUsage means the command was invoked without both required arguments.
	ErrUsage = errors.New("usage: mdconcat <inputDir> <outputFile>")

	// ErrInaccessible means the input directory could not be stat'ed.
	ErrInaccessible = errors.New("cannot access input directory")

	// ErrNotDirectory means the input path exists but is not a directory.
	ErrNotDirectory = errors.New("not a directory")

	// ErrScan means traversal of the input tree failed.
	ErrScan = errors.New("failed to scan input directory")

	// ErrRead means a discovered file could not be read. No output is written.
	ErrRead = errors.New("failed to read input file")

	// ErrWrite means the output file could not be written.
	ErrWrite = errors.New("failed to write output file")
)
