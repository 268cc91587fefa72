// internal/report/json_reporter.go
package report

import (
	"fmt"
	"io"
	"sync"

	json "github.com/json-iterator/go"

	"github.com/nkrahm/boxgrid/api/schemas"
)

// JSONReporter streams each report as an indented JSON document followed
// by a newline. It is safe for concurrent use.
type JSONReporter struct {
	mu     sync.Mutex
	writer io.WriteCloser
}

// NewJSONReporter wraps writer. The reporter takes ownership of it.
func NewJSONReporter(writer io.WriteCloser) *JSONReporter {
	return &JSONReporter{writer: writer}
}

// Write implements Reporter.
func (r *JSONReporter) Write(report *schemas.GridReport) error {
	if report == nil {
		return nil
	}
	out, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding grid report: %w", err)
	}
	out = append(out, '\n')

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.writer.Write(out); err != nil {
		return fmt.Errorf("writing grid report: %w", err)
	}
	return nil
}

// Close implements Reporter.
func (r *JSONReporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writer.Close()
}
