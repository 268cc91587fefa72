// internal/render/svg.go

// Package render draws grid reports as SVG diagrams.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/nkrahm/boxgrid/api/schemas"
)

const trackStrokeWidth = 0.4

var (
	rowFill        = canvas.RGBA(0.26, 0.52, 0.96, 0.16)
	columnFill     = canvas.RGBA(0.20, 0.66, 0.33, 0.16)
	declaredStroke = canvas.Hex("#5f6368")
	bogusStroke    = canvas.Hex("#f9ab00")
	extraStroke    = canvas.Hex("#d93025")
)

// Options tunes the rendered output.
type Options struct {
	// Scale multiplies app units into canvas millimeters. Zero or a
	// negative value means 1.
	Scale float64
	// Padding is a margin around the grid, in canvas millimeters.
	Padding float64
}

// SVG draws the report's placed tracks into w as one SVG document.
// Column bands go down first and row bands over them, so cells show up
// where the two fills overlap. Bogus and extra tracks keep the band
// fill but take their own outline color.
func SVG(w io.Writer, report *schemas.GridReport, opts Options) error {
	if report == nil {
		return errors.New("nil grid report")
	}
	width, height := span(report)
	if width <= 0 || height <= 0 {
		return errors.New("grid report has no placed tracks")
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	pad := opts.Padding
	if pad < 0 {
		pad = 0
	}
	cw := float64(width)*scale + 2*pad
	ch := float64(height)*scale + 2*pad

	c := canvas.New(cw, ch)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	ctx.SetFillColor(canvas.White)
	ctx.SetStrokeColor(color.RGBA{})
	ctx.DrawPath(0, 0, canvas.Rectangle(cw, ch))

	drawTracks(ctx, report.Columns, columnFill, scale, pad)
	drawTracks(ctx, report.Rows, rowFill, scale, pad)

	writer := svg.New(w, cw, ch, nil)
	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}

func drawTracks(ctx *canvas.Context, tracks []schemas.TrackReport, fill color.Color, scale, pad float64) {
	for _, track := range tracks {
		if track.Rect.Width <= 0 || track.Rect.Height <= 0 {
			continue
		}
		ctx.SetFillColor(fill)
		ctx.SetStrokeColor(strokeFor(track.Kind))
		ctx.SetStrokeWidth(trackStrokeWidth)
		x := float64(track.Rect.X)*scale + pad
		y := float64(track.Rect.Y)*scale + pad
		ctx.DrawPath(x, y, canvas.Rectangle(float64(track.Rect.Width)*scale, float64(track.Rect.Height)*scale))
	}
}

func strokeFor(kind schemas.TrackKind) color.Color {
	switch kind {
	case schemas.TrackBogus:
		return bogusStroke
	case schemas.TrackExtra:
		return extraStroke
	default:
		return declaredStroke
	}
}

// span is the extent of the drawn area: where the outermost track rect
// ends on each axis.
func span(report *schemas.GridReport) (width, height int) {
	for _, track := range report.Rows {
		width = max(width, track.Rect.X+track.Rect.Width)
		height = max(height, track.Rect.Y+track.Rect.Height)
	}
	for _, track := range report.Columns {
		width = max(width, track.Rect.X+track.Rect.Width)
		height = max(height, track.Rect.Y+track.Rect.Height)
	}
	return width, height
}
