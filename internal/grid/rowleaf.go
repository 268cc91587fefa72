// internal/grid/rowleaf.go
package grid

import (
	"github.com/nkrahm/boxgrid/internal/box"
)

// RowLeafLayout manages a single row (or column): the box whose children
// are the grid's cells. It contributes itself to the track table as one
// real row and tells the grid how many cells it spans so the column
// count can grow past what the opposite axis declares.
type RowLeafLayout struct {
	rowLayout
}

var _ box.LayoutManager = (*RowLeafLayout)(nil)
var _ Part = (*RowLeafLayout)(nil)

// NewRowLeafLayout returns a leaf-row manager. The manager holds no
// per-box state and may be shared across boxes.
func NewRowLeafLayout() *RowLeafLayout {
	return &RowLeafLayout{}
}

// ChildAddedOrRemoved reports a cell mutation to the enclosing grid.
func (l *RowLeafLayout) ChildAddedOrRemoved(b *box.Box, state *box.LayoutState) {
	if b == nil {
		return
	}
	g, index := l.LocateGrid(b, state, nil)
	if g == nil {
		return
	}
	g.CellAddedOrRemoved(state, index, b.IsHorizontal())
}

// CountRowsColumns counts this leaf as one row and raises the column
// accumulator to its cell count.
func (l *RowLeafLayout) CountRowsColumns(b *box.Box, state *box.LayoutState, rowCount, colCount *int) {
	if b == nil {
		return
	}
	if n := b.ChildCount(); n > *colCount {
		*colCount = n
	}
	*rowCount++
}

// BuildRows appends this leaf as one real row.
func (l *RowLeafLayout) BuildRows(b *box.Box, state *box.LayoutState, rows *[]Row) int {
	if b == nil {
		return 0
	}
	*rows = append(*rows, Row{Box: b, Bogus: false})
	return 1
}

// DirtyRows marks the leaf dirty. Cells are not parts; there is nothing
// to recurse into.
func (l *RowLeafLayout) DirtyRows(b *box.Box, state *box.LayoutState) {
	if b == nil {
		return
	}
	b.MarkDirty()
}

// RowCount of a leaf is always one.
func (l *RowLeafLayout) RowCount(b *box.Box, state *box.LayoutState) int {
	return 1
}

// Layout places the leaf's cells on the grid's cross-axis tracks when an
// enclosing grid exists, so cells line up across rows. Detached leaves
// fall back to plain stacking.
func (l *RowLeafLayout) Layout(b *box.Box, state *box.LayoutState) {
	if b == nil {
		return
	}
	g, _ := l.LocateGrid(b, state, nil)
	if g == nil {
		l.rowLayout.Layout(b, state)
		return
	}
	g.EnsureGeometry(state)

	horizontal := b.IsHorizontal()
	breadth := b.Bounds.Size().Axis(!horizontal)
	i := 0
	for child := b.FirstChild(); child != nil; child = child.NextSibling() {
		track := g.ColumnAt(state, i, horizontal)
		if track == nil {
			break
		}
		if horizontal {
			child.Bounds = box.Rect{X: b.Bounds.X + track.Start, Y: b.Bounds.Y, Width: track.Size, Height: breadth}
		} else {
			child.Bounds = box.Rect{X: b.Bounds.X, Y: b.Bounds.Y + track.Start, Width: breadth, Height: track.Size}
		}
		child.DoLayout(state)
		i++
	}
}

// CastToRowGroupLayout returns nil; a leaf is not a group.
func (l *RowLeafLayout) CastToRowGroupLayout() *RowGroupLayout { return nil }

// CastToGridLayout returns nil; a leaf is not a grid.
func (l *RowLeafLayout) CastToGridLayout() *GridLayout { return nil }
