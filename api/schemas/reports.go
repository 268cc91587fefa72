// api/schemas/reports.go
package schemas

import "time"

// Axis names the direction a track runs across.
type Axis string

const (
	AxisRow    Axis = "row"
	AxisColumn Axis = "column"
)

// TrackKind classifies how a track came to exist in the grid.
type TrackKind string

const (
	// TrackDeclared is a track backed by a real row or column box.
	TrackDeclared TrackKind = "declared"
	// TrackBogus is a synthetic track wrapping a plain child that sits
	// inside a row group without speaking the row protocol.
	TrackBogus TrackKind = "bogus"
	// TrackExtra is a track implied by cells on the opposite axis beyond
	// the declared count. It has no backing box.
	TrackExtra TrackKind = "extra"
)

// -- Geometry --

// RectReport is a placed rectangle in app units.
type RectReport struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// SizeReport carries a two-axis size. A nil extent means the axis is
// unconstrained rather than zero.
type SizeReport struct {
	Width  *int `json:"width"`
	Height *int `json:"height"`
}

// -- Tracks --

// TrackReport describes a single row or column of the laid-out grid.
type TrackReport struct {
	Axis  Axis      `json:"axis"`
	Index int       `json:"index"`
	Kind  TrackKind `json:"kind"`
	// Tag is the markup tag of the backing box, empty for extra tracks.
	Tag string `json:"tag,omitempty"`
	// Min, Pref and Max are the track's extents along its axis. A nil
	// value means unconstrained.
	Min  *int       `json:"min"`
	Pref *int       `json:"pref"`
	Max  *int       `json:"max"`
	Rect RectReport `json:"rect"`
}

// -- Grid --

// GridReport is the full inspection result for one grid document.
type GridReport struct {
	RunID       string    `json:"run_id"`
	Source      string    `json:"source,omitempty"`
	Format      string    `json:"format,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`

	RowCount         int `json:"row_count"`
	ColumnCount      int `json:"column_count"`
	ExtraRowCount    int `json:"extra_row_count"`
	ExtraColumnCount int `json:"extra_column_count"`

	MinSize  SizeReport `json:"min_size"`
	PrefSize SizeReport `json:"pref_size"`
	MaxSize  SizeReport `json:"max_size"`

	Rows    []TrackReport `json:"rows"`
	Columns []TrackReport `json:"columns"`
}
