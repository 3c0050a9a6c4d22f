package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/mdconcat/internal/concat"
	"github.com/harrison/mdconcat/internal/config"
	"github.com/harrison/mdconcat/internal/display"
	"github.com/harrison/mdconcat/internal/logger"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the mdconcat command
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdconcat <inputDir> <outputFile>",
		Short: "Concatenate all Markdown files under a directory into one file",
		Long: `mdconcat recursively collects every .md, .markdown and .mdx file under
<inputDir>, orders them by relative path (case-insensitive) and writes them
into <outputFile> as a single document.

Directories named node_modules, .git, .github, .next, dist, build and .cache
are skipped. Files that do not start with a top-level heading get one made
from their relative path. Byte-order marks are removed and CRLF line endings
become LF. Both paths are resolved against the current directory.

Example:
  mdconcat ./docs ./all-docs.md`,
		Version: Version,
		Args:    exactArgs,
		RunE:    runConcat,
		// Errors are printed by Execute
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().String("log-level", "info", "Log verbosity: trace, debug, info, warn, error")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress log output and warnings")
	cmd.Flags().Int("concurrency", 0, "Number of files read in parallel (0 = number of CPUs)")
	cmd.Flags().String("report", config.ReportText, "Completion report format: text, yaml")

	return cmd
}

// exactArgs requires both positional arguments.
func exactArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected 2 arguments, got %d", concat.ErrUsage, len(args))
	}
	return nil
}

func runConcat(cmd *cobra.Command, args []string) error {
	cfg, err := configFromFlags(cmd)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()

	var log concat.Logger = logger.NewNoOpLogger()
	if !cfg.Quiet {
		log = logger.NewConsoleLogger(stderr, cfg.LogLevel)
	}

	inputDir, outputFile := args[0], args[1]
	result, err := concat.Run(cmd.Context(), concat.Options{
		InputDir:   inputDir,
		OutputFile: outputFile,
		Workers:    cfg.Workers(),
		Logger:     log,
	})
	if err != nil {
		return err
	}

	if result.Empty() {
		if !cfg.Quiet {
			display.EmptyTreeWarning(inputDir).Display(stderr)
		}
		if cfg.ReportFormat == config.ReportText {
			return nil
		}
	}

	return display.NewReport(result).Write(cmd.OutOrStdout(), cfg.ReportFormat)
}

// configFromFlags builds the run configuration; only flags set on the
// command line override defaults.
func configFromFlags(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	logLevelFlag, _ := cmd.Flags().GetString("log-level")
	quietFlag, _ := cmd.Flags().GetBool("quiet")
	concurrencyFlag, _ := cmd.Flags().GetInt("concurrency")
	reportFlag, _ := cmd.Flags().GetString("report")

	var logLevelPtr *string
	if cmd.Flags().Changed("log-level") {
		logLevelPtr = &logLevelFlag
	}

	var quietPtr *bool
	if cmd.Flags().Changed("quiet") {
		quietPtr = &quietFlag
	}

	var concurrencyPtr *int
	if cmd.Flags().Changed("concurrency") {
		concurrencyPtr = &concurrencyFlag
	}

	var reportPtr *string
	if cmd.Flags().Changed("report") {
		reportPtr = &reportFlag
	}

	cfg.MergeWithFlags(logLevelPtr, quietPtr, concurrencyPtr, reportPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Execute runs the command with args and returns the process exit code.
// Usage errors print the usage text to stderr; every other error is printed
// as "Error: <cause>".
func Execute(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, concat.ErrUsage) {
			fmt.Fprintf(stderr, "Usage: %s\n", cmd.UseLine())
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
