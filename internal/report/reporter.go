// internal/report/reporter.go

// Package report turns measured grids into wire and console summaries.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/nkrahm/boxgrid/api/schemas"
)

// Reporter writes grid reports to an output sink.
type Reporter interface {
	// Write emits a single grid report.
	Write(report *schemas.GridReport) error
	// Close finalizes the report and releases the underlying sink.
	Close() error
}

// nopWriteCloser wraps an io.Writer and provides a no-op Close method.
type nopWriteCloser struct {
	io.Writer
}

func (nwc *nopWriteCloser) Close() error {
	return nil
}

// New creates a reporter for the given format writing to outputPath. An
// empty path or "stdout" selects standard output, which Close leaves
// open.
func New(format, outputPath string) (Reporter, error) {
	var writer io.WriteCloser
	isStdout := outputPath == "" || outputPath == "stdout"

	if isStdout {
		writer = &nopWriteCloser{os.Stdout}
	} else {
		f, err := os.Create(outputPath)
		if err != nil {
			return nil, fmt.Errorf("creating output file %s: %w", outputPath, err)
		}
		writer = f
	}

	switch format {
	case "json":
		return NewJSONReporter(writer), nil
	case "text":
		return NewTextReporter(writer), nil
	default:
		if !isStdout {
			writer.Close()
		}
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
