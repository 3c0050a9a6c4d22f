package display

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/harrison/mdconcat/internal/concat"
	"github.com/harrison/mdconcat/internal/models"
)

// Report is the completion summary of a run.
type Report struct {
	Files            int      `yaml:"files"`
	Output           string   `yaml:"output"`
	InjectedHeadings int      `yaml:"injected_headings"`
	Bytes            int      `yaml:"bytes"`
	Entries          []string `yaml:"entries"`
}

// NewReport builds a Report from a pipeline result.
func NewReport(result *concat.Result) Report {
	entries := models.RelPaths(result.Entries)
	return Report{
		Files:            result.Files,
		Output:           result.Output,
		InjectedHeadings: result.Injected,
		Bytes:            result.Bytes,
		Entries:          entries,
	}
}

// WriteText writes the human-readable completion message.
func (r Report) WriteText(out io.Writer) error {
	_, err := fmt.Fprintf(out, "Done. Wrote %d files into:\n%s\n", r.Files, r.Output)
	return err
}

// WriteYAML writes the report as a YAML document.
func (r Report) WriteYAML(out io.Writer) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

// Write renders the report in the given format ("text" or "yaml").
func (r Report) Write(out io.Writer, format string) error {
	switch format {
	case "", "text":
		return r.WriteText(out)
	case "yaml":
		return r.WriteYAML(out)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
