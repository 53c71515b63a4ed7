package output

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/graphol-dev/grapholint/internal/engine"
	"github.com/graphol-dev/grapholint/internal/version"
)

// SARIFFormatter formats validation reports as SARIF 2.1.0 JSON.
// It maps profile rules to SARIF reporting descriptors and diagnostics to
// results with file locations.
//
// Usage:
//
//	formatter := output.NewSARIFFormatter(os.Stdout)
//	if err := formatter.Format(report); err != nil {
//	    log.Fatal(err)
//	}
type SARIFFormatter struct {
	writer io.Writer
}

// NewSARIFFormatter creates a new SARIF formatter.
func NewSARIFFormatter(writer io.Writer) *SARIFFormatter {
	return &SARIFFormatter{writer: writer}
}

// Format writes the validation report as SARIF 2.1.0 JSON.
// Returns error if SARIF creation or marshaling fails.
func (f *SARIFFormatter) Format(report *engine.Report) error {
	doc := sarif.NewReport()

	run := sarif.NewRunWithInformationURI("grapholint", "https://github.com/graphol-dev/grapholint")
	toolVersion := version.Get().Version
	run.Tool.Driver.Version = &toolVersion
	run.Tool.Driver.Organization = ptrString("graphol-dev")

	mapper := newSARIFMapper(report)
	mapper.mapToRun(run)

	doc.AddRun(run)

	if err := doc.Write(f.writer); err != nil {
		return fmt.Errorf("failed to write SARIF output: %w", err)
	}

	// Trailing newline for terminal output
	_, err := f.writer.Write([]byte("\n"))
	return err
}

func ptrString(s string) *string {
	return &s
}
