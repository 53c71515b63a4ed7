// Package output provides formatters for grapholint validation reports.
package output

import (
	"fmt"
	"io"

	"github.com/graphol-dev/grapholint/internal/engine"
)

// Formatter writes a validation report to an output stream.
type Formatter interface {
	Format(report *engine.Report) error
}

// Options carries formatter construction options.
type Options struct {
	// Indent enables pretty-printing for structured formats.
	Indent bool
	// NoColor disables ANSI colors in terminal output.
	NoColor bool
}

// New returns a formatter for the given format name.
func New(format string, writer io.Writer, options Options) (Formatter, error) {
	switch format {
	case "table":
		f := NewTableFormatter(writer)
		f.EnableColor = !options.NoColor
		return f, nil
	case "json":
		return NewJSONFormatter(writer, options.Indent), nil
	case "yaml":
		return NewYAMLFormatter(writer), nil
	case "sarif":
		return NewSARIFFormatter(writer), nil
	default:
		return nil, fmt.Errorf(
			"unknown format: %s (supported: %v)",
			format, SupportedFormats(),
		)
	}
}

// SupportedFormats returns list of available format names.
func SupportedFormats() []string {
	return []string{"table", "json", "yaml", "sarif"}
}
