package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/harrison/mdconcat/internal/logger"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string // Main warning title
	Message    string // Detailed explanation (optional)
	Suggestion string // Action to take (optional)
}

// Display writes the warning to out, in yellow when out is a terminal.
func (w Warning) Display(out io.Writer) {
	var b strings.Builder

	b.WriteString("Warning: ")
	b.WriteString(w.Title)
	b.WriteString("\n")

	if w.Message != "" {
		b.WriteString("    ")
		b.WriteString(w.Message)
		b.WriteString("\n")
	}

	if w.Suggestion != "" {
		b.WriteString("    Suggestion: ")
		b.WriteString(w.Suggestion)
		b.WriteString("\n")
	}

	text := b.String()
	if logger.ColorEnabled(out) {
		yellow := color.New(color.FgYellow)
		yellow.EnableColor()
		text = yellow.Sprint(text)
	}

	fmt.Fprint(out, text)
}

// EmptyTreeWarning creates the warning shown when no Markdown files exist
// under inputDir.
func EmptyTreeWarning(inputDir string) Warning {
	return Warning{
		Title:      "No Markdown files found. Creating an empty output file.",
		Message:    fmt.Sprintf("Scanned %s for .md, .markdown and .mdx files", inputDir),
		Suggestion: "Files inside node_modules, .git, .github, .next, dist, build and .cache are skipped",
	}
}
