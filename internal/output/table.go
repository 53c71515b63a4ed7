package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/graphol-dev/grapholint/internal/engine"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

// TableFormatter formats validation reports as a human-readable table.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes the validation report as a table.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) Format(report *engine.Report) error {
	// Print header
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
	fmt.Fprintf(f.writer, "Profile: %s\n", f.colorize(string(report.Profile), colorBold))
	fmt.Fprintf(f.writer, "Executed: %s\n", report.StartTime.Format(time.RFC3339))
	fmt.Fprintf(f.writer, "Duration: %s\n", report.Duration.Round(time.Millisecond))
	fmt.Fprintln(f.writer)

	if len(report.Diagnostics) == 0 {
		fmt.Fprintln(f.writer, f.colorize("No violations found.", colorGreen))
	} else {
		fmt.Fprintln(f.writer, f.colorize("Violations:", colorBold))
		fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
		for _, d := range report.Diagnostics {
			f.formatDiagnostic(d)
		}
		fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
	}
	fmt.Fprintln(f.writer)

	f.formatSummary(report.Summary)

	return nil
}

// formatDiagnostic formats a single violation.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatDiagnostic(d engine.Diagnostic) {
	symbol := f.colorize("✗", colorRed)
	element := f.colorize(d.Element, colorRed)

	fmt.Fprintf(f.writer, "%s %s (%s)\n", symbol, element, d.Kind)
	if d.File != "" {
		fmt.Fprintf(f.writer, "  File: %s\n", d.File)
	}
	fmt.Fprintf(f.writer, "  Diagram: %s\n", d.Diagram)
	fmt.Fprintf(f.writer, "  Rule: %s\n", f.colorize(d.Rule, colorCyan))
	fmt.Fprintf(f.writer, "  Message: %s\n", d.Message)
	fmt.Fprintln(f.writer)
}

// formatSummary formats the summary statistics.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) formatSummary(summary engine.Summary) {
	fmt.Fprintln(f.writer, f.colorize("Summary:", colorBold))
	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))

	fmt.Fprintf(f.writer, "Checks:     %d total\n", summary.Checked)
	fmt.Fprintf(f.writer, "  %s Passed:   %d\n", f.colorize("✓", colorGreen), summary.Passed)
	fmt.Fprintf(f.writer, "  %s Failed:   %d\n", f.colorize("✗", colorRed), summary.Failed)

	fmt.Fprintln(f.writer, f.colorize(strings.Repeat("─", 80), colorGray))
}
