// internal/report/text_reporter.go
package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"sync"
	"text/tabwriter"

	"github.com/nkrahm/boxgrid/api/schemas"
)

// TextReporter renders reports as aligned console tables.
type TextReporter struct {
	mu     sync.Mutex
	writer io.WriteCloser
}

// NewTextReporter wraps writer. The reporter takes ownership of it.
func NewTextReporter(writer io.WriteCloser) *TextReporter {
	return &TextReporter{writer: writer}
}

// Write implements Reporter. Each report renders fully into memory first
// so concurrent writers cannot interleave lines.
func (r *TextReporter) Write(report *schemas.GridReport) error {
	if report == nil {
		return nil
	}
	var buf bytes.Buffer
	renderText(&buf, report)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.writer.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing grid report: %w", err)
	}
	return nil
}

// Close implements Reporter.
func (r *TextReporter) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.writer.Close()
}

func renderText(buf *bytes.Buffer, report *schemas.GridReport) {
	source := report.Source
	if source == "" {
		source = "(unnamed)"
	}
	if report.Format != "" {
		source += " [" + report.Format + "]"
	}
	fmt.Fprintf(buf, "grid %s\n", source)
	fmt.Fprintf(buf, "rows %d (%d extra), columns %d (%d extra)\n",
		report.RowCount, report.ExtraRowCount,
		report.ColumnCount, report.ExtraColumnCount)
	fmt.Fprintf(buf, "min %s  pref %s  max %s\n",
		formatSize(report.MinSize), formatSize(report.PrefSize), formatSize(report.MaxSize))

	if len(report.Rows) == 0 && len(report.Columns) == 0 {
		return
	}
	tw := tabwriter.NewWriter(buf, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "axis\tidx\tkind\ttag\tmin\tpref\tmax\trect")
	for _, track := range report.Rows {
		writeTrack(tw, track)
	}
	for _, track := range report.Columns {
		writeTrack(tw, track)
	}
	// Flushing into a bytes.Buffer cannot fail.
	_ = tw.Flush()
}

func writeTrack(w io.Writer, track schemas.TrackReport) {
	fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
		track.Axis, track.Index, track.Kind, track.Tag,
		formatExtent(track.Min), formatExtent(track.Pref), formatExtent(track.Max),
		formatRect(track.Rect))
}

// formatExtent prints "-" for an unconstrained extent.
func formatExtent(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func formatSize(s schemas.SizeReport) string {
	return formatExtent(s.Width) + "x" + formatExtent(s.Height)
}

func formatRect(r schemas.RectReport) string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.Width, r.Height)
}
