package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/harrison/mdconcat/internal/concat"
	"github.com/harrison/mdconcat/internal/models"
)

func sampleResult() *concat.Result {
	return &concat.Result{
		Files:  2,
		Output: "/work/out.md",
		Entries: []models.FileEntry{
			{AbsPath: "/work/docs/b.md", RelPath: "b.md"},
			{AbsPath: "/work/docs/sub/a.md", RelPath: "sub/a.md"},
		},
		Injected: 1,
		Bytes:    30,
	}
}

func TestNewReport(t *testing.T) {
	r := NewReport(sampleResult())

	assert.Equal(t, 2, r.Files)
	assert.Equal(t, "/work/out.md", r.Output)
	assert.Equal(t, 1, r.InjectedHeadings)
	assert.Equal(t, 30, r.Bytes)
	assert.Equal(t, []string{"b.md", "sub/a.md"}, r.Entries)
}

func TestReportWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReport(sampleResult()).Write(&buf, "text"))
	assert.Equal(t, "Done. Wrote 2 files into:\n/work/out.md\n", buf.String())

	buf.Reset()
	require.NoError(t, NewReport(sampleResult()).Write(&buf, ""))
	assert.Equal(t, "Done. Wrote 2 files into:\n/work/out.md\n", buf.String())
}

func TestReportWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReport(sampleResult()).Write(&buf, "yaml"))

	want := "files: 2\n" +
		"output: /work/out.md\n" +
		"injected_headings: 1\n" +
		"bytes: 30\n" +
		"entries:\n" +
		"  - b.md\n" +
		"  - sub/a.md\n"
	assert.Equal(t, want, buf.String())

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, NewReport(sampleResult()), decoded)
}

func TestReportWriteYAML_Empty(t *testing.T) {
	var buf bytes.Buffer
	r := NewReport(&concat.Result{Output: "/work/out.md"})
	require.NoError(t, r.WriteYAML(&buf))
	assert.Contains(t, buf.String(), "files: 0\n")
	assert.Contains(t, buf.String(), "entries: []\n")
}

func TestReportWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewReport(sampleResult()).Write(&buf, "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown report format")
	assert.Zero(t, buf.Len())
}
