// internal/report/builder.go
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/nkrahm/boxgrid/api/schemas"
	"github.com/nkrahm/boxgrid/internal/box"
	"github.com/nkrahm/boxgrid/internal/grid"
)

// Options carries the per-run metadata stamped onto a report.
type Options struct {
	// Source labels where the grid came from, usually a file path.
	Source string
	// Format names the markup dialect the source was parsed as.
	Format string
}

// Build snapshots a grid into a GridReport. Tracks are measured and
// placed here when no layout pass has run yet; the reported rectangles
// are relative to the grid's own origin.
func Build(state *box.LayoutState, g *grid.Grid, opts Options) *schemas.GridReport {
	if g == nil {
		return nil
	}
	g.EnsureGeometry(state)

	r := &schemas.GridReport{
		RunID:       uuid.New().String(),
		Source:      opts.Source,
		Format:      opts.Format,
		GeneratedAt: time.Now().UTC(),

		RowCount:         g.RowCount(state, true),
		ColumnCount:      g.ColumnCount(state, true),
		ExtraRowCount:    g.ExtraRowCount(state, true),
		ExtraColumnCount: g.ExtraColumnCount(state, true),

		MinSize:  sizeReport(g.MinSize(state)),
		PrefSize: sizeReport(g.PrefSize(state)),
		MaxSize:  sizeReport(g.MaxSize(state)),
	}
	r.Rows = trackReports(state, g, true, r.RowCount, r.ExtraRowCount)
	r.Columns = trackReports(state, g, false, r.ColumnCount, r.ExtraColumnCount)
	return r
}

// trackReports walks one axis of the track table. horizontal selects the
// physical rows; each track's rectangle spans the other axis's placed
// tracks.
func trackReports(state *box.LayoutState, g *grid.Grid, horizontal bool, count, extra int) []schemas.TrackReport {
	if count <= 0 {
		return nil
	}
	axis := schemas.AxisColumn
	if horizontal {
		axis = schemas.AxisRow
	}
	cross := axisSpan(state, g, !horizontal)

	tracks := make([]schemas.TrackReport, 0, count)
	for i := 0; i < count; i++ {
		row := g.RowAt(state, i, horizontal)
		if row == nil {
			continue
		}
		track := schemas.TrackReport{
			Axis:  axis,
			Index: i,
			Kind:  trackKind(row, i >= count-extra),
			Min:   extentValue(g.MinRowHeight(state, i, horizontal)),
			Pref:  extentValue(g.PrefRowHeight(state, i, horizontal)),
			Max:   extentValue(g.MaxRowHeight(state, i, horizontal)),
		}
		if row.Box != nil {
			track.Tag = row.Box.Tag()
		}
		if horizontal {
			track.Rect = schemas.RectReport{Y: int(row.Start), Width: int(cross), Height: int(row.Size)}
		} else {
			track.Rect = schemas.RectReport{X: int(row.Start), Width: int(row.Size), Height: int(cross)}
		}
		tracks = append(tracks, track)
	}
	return tracks
}

// axisSpan is the placed length of one axis: where its last track ends.
func axisSpan(state *box.LayoutState, g *grid.Grid, horizontal bool) box.Extent {
	n := g.RowCount(state, horizontal)
	if n == 0 {
		return 0
	}
	last := g.RowAt(state, n-1, horizontal)
	if last == nil {
		return 0
	}
	return last.Start + last.Size
}

func trackKind(row *grid.Row, extra bool) schemas.TrackKind {
	switch {
	case extra:
		return schemas.TrackExtra
	case row.Bogus:
		return schemas.TrackBogus
	default:
		return schemas.TrackDeclared
	}
}

// extentValue maps the unconstrained sentinel to nil so it survives
// serialization without leaking the platform's integer width.
func extentValue(e box.Extent) *int {
	if e.IsUnconstrained() {
		return nil
	}
	v := int(e)
	return &v
}

func sizeReport(s box.Size) schemas.SizeReport {
	return schemas.SizeReport{
		Width:  extentValue(s.Width),
		Height: extentValue(s.Height),
	}
}
