// internal/grid/gridlayout.go

package grid

import (
	"errors"
	"fmt"

	"github.com/nkrahm/boxgrid/internal/box"
)

// ErrNotGrid reports that a box is not managed by a grid layout.
var ErrNotGrid = errors.New("box is not managed by a grid layout")

// ContextFor returns the grid context owned by b's layout manager,
// binding the context to b on first use.
func ContextFor(b *box.Box) (*Grid, error) {
	if b == nil {
		return nil, ErrNotGrid
	}
	gl, ok := b.LayoutManager().(*GridLayout)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotGrid, b.Tag())
	}
	gl.grid.attach(b)
	return gl.grid, nil
}

// GridLayout manages a grid box. It owns the grid context outright;
// the row groups and leaves below it borrow the context through
// LocateGrid and never retain it.
//
// The grid stacks its direct children over its full bounds and then
// places each tracked row and column at its computed rect, so the row
// region and the column region overlay the same area.
type GridLayout struct {
	grid *Grid
}

var (
	_ box.LayoutManager = (*GridLayout)(nil)
	_ Part              = (*GridLayout)(nil)
)

// NewGridLayout returns a grid manager with a fresh context.
func NewGridLayout() *GridLayout {
	return &GridLayout{grid: NewGrid()}
}

// Grid exposes the owned context.
func (l *GridLayout) Grid() *Grid {
	return l.grid
}

// GetPrefSize sums the preferred extents of the grid's tracks.
func (l *GridLayout) GetPrefSize(b *box.Box, state *box.LayoutState) box.Size {
	l.grid.attach(b)
	return l.grid.PrefSize(state)
}

// GetMinSize sums the minimum extents of the grid's tracks.
func (l *GridLayout) GetMinSize(b *box.Box, state *box.LayoutState) box.Size {
	l.grid.attach(b)
	return l.grid.MinSize(state)
}

// GetMaxSize sums the maximum extents of the grid's tracks.
func (l *GridLayout) GetMaxSize(b *box.Box, state *box.LayoutState) box.Size {
	l.grid.attach(b)
	return l.grid.MaxSize(state)
}

// Layout stacks the direct children over the grid's bounds, then places
// every tracked row and column at its rect. Group children are sized
// but not recursed into here; their rows are laid out individually so
// each lands on its own track instead of restacking.
func (l *GridLayout) Layout(b *box.Box, state *box.LayoutState) {
	l.grid.attach(b)
	g := l.grid
	g.EnsureGeometry(state)

	for child := b.FirstChild(); child != nil; child = child.NextSibling() {
		rc := resolveChild(child, state)
		child.Bounds = b.Bounds
		if rc.Box != child {
			rc.Box.Bounds = b.Bounds
		}
		if rc.Part != nil && rc.Part.CastToRowGroupLayout() != nil {
			continue
		}
		child.DoLayout(state)
	}

	for i := range g.rows {
		r := &g.rows[i]
		if r.Box == nil {
			continue
		}
		rect := box.Rect{
			X:      b.Bounds.X,
			Y:      b.Bounds.Y + r.Start,
			Width:  b.Bounds.Width,
			Height: r.Size,
		}
		placeTrackBox(state, r.Box, rect)
	}
	for j := range g.cols {
		c := &g.cols[j]
		if c.Box == nil {
			continue
		}
		rect := box.Rect{
			X:      b.Bounds.X + c.Start,
			Y:      b.Bounds.Y,
			Width:  c.Size,
			Height: b.Bounds.Height,
		}
		placeTrackBox(state, c.Box, rect)
	}
}

// placeTrackBox puts a tracked box at rect and lays it out. A box
// scrolled inside a wrapper is placed through the wrapper so the
// scroll layout keeps control of the inner bounds.
func placeTrackBox(state *box.LayoutState, b *box.Box, rect box.Rect) {
	target := b
	if parent := b.Parent(); parent != nil {
		if _, ok := parent.LayoutManager().(box.Scroller); ok {
			target = parent
		}
	}
	target.Bounds = rect
	target.DoLayout(state)
}

// ChildAddedOrRemoved invalidates the tables; a mutated child may be a
// row group appearing or vanishing.
func (l *GridLayout) ChildAddedOrRemoved(b *box.Box, state *box.LayoutState) {
	l.grid.attach(b)
	b.MarkDirty()
	l.grid.NeedsRebuild(state)
}

// -- Part --

// CountRowsColumns contributes nothing: a nested grid is opaque to the
// grid above it.
func (l *GridLayout) CountRowsColumns(b *box.Box, state *box.LayoutState, rowCount, colCount *int) {
}

// BuildRows appends nothing, matching the zero count.
func (l *GridLayout) BuildRows(b *box.Box, state *box.LayoutState, rows *[]Row) int {
	return 0
}

// DirtyRows marks the grid box dirty and stops. From above, a nested
// grid is opaque; its internals re-measure when its own layout runs.
func (l *GridLayout) DirtyRows(b *box.Box, state *box.LayoutState) {
	if b == nil {
		return
	}
	b.MarkDirty()
}

// LocateGrid answers with the owned context; the grid is its own base,
// so a requestor's rows start at index zero plus whatever the caller
// accumulated below.
func (l *GridLayout) LocateGrid(b *box.Box, state *box.LayoutState, requestor *box.Box) (*Grid, int) {
	l.grid.attach(b)
	return l.grid, 0
}

// ParentGridPart returns the part above this grid, letting nested grids
// sit inside plain rows without joining the outer protocol.
func (l *GridLayout) ParentGridPart(b *box.Box) (Part, *box.Box) {
	return parentGridPart(b)
}

// RowCount is zero: the grid's rows are its own, not its parent's.
func (l *GridLayout) RowCount(b *box.Box, state *box.LayoutState) int {
	return 0
}

// CastToRowGroupLayout returns nil.
func (l *GridLayout) CastToRowGroupLayout() *RowGroupLayout {
	return nil
}

// CastToGridLayout returns the receiver.
func (l *GridLayout) CastToGridLayout() *GridLayout {
	return l
}
