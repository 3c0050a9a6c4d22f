// Package display renders the user-facing messages of an mdconcat run.
//
// # Warnings
//
// Warning prints a titled warning with optional details, in yellow when the
// destination is a terminal:
//
//	display.EmptyTreeWarning(inputDir).Display(os.Stderr)
//
// # Completion Report
//
// Report summarizes a successful run. The text layout is the classic
// two-line message:
//
//	Done. Wrote 12 files into:
//	/abs/path/to/all-docs.md
//
// The yaml layout is meant for scripts and lists every included file in
// output order.
//
// All functions accept io.Writer for testability.
package display
