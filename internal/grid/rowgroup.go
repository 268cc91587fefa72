// internal/grid/rowgroup.go
package grid

import (
	"github.com/nkrahm/boxgrid/internal/box"
)

// RowGroupLayout manages a row or column group: the box whose children
// are the grid's rows (or columns, when the group is horizontal). It
// flattens its subtree into the enclosing grid's track table, recursing
// into parts and turning every plain child into one bogus row, and it
// answers size queries with the group's stacking baseline plus the
// extra tracks the grid carries beyond the group's own.
type RowGroupLayout struct {
	rowLayout
}

var _ box.LayoutManager = (*RowGroupLayout)(nil)
var _ Part = (*RowGroupLayout)(nil)

// NewRowGroupLayout returns a row-group manager. The manager holds no
// per-box state and may be shared across boxes.
func NewRowGroupLayout() *RowGroupLayout {
	return &RowGroupLayout{}
}

// ChildAddedOrRemoved reacts to a structural mutation of the group's
// child list by telling the enclosing grid which row position changed on
// which axis. Without an enclosing grid it does nothing.
func (l *RowGroupLayout) ChildAddedOrRemoved(b *box.Box, state *box.LayoutState) {
	if b == nil {
		return
	}
	g, index := l.LocateGrid(b, state, nil)
	if g == nil {
		return
	}
	g.RowAddedOrRemoved(state, index, b.IsHorizontal())
}

// GetPrefSize is the stacking baseline plus preferred extents of the
// grid's extra tracks.
func (l *RowGroupLayout) GetPrefSize(b *box.Box, state *box.LayoutState) box.Size {
	size := l.rowLayout.GetPrefSize(b, state)
	l.addExtraTracks(b, state, &size, extentPref)
	return size
}

// GetMinSize is the stacking baseline plus minimum extents of the grid's
// extra tracks.
func (l *RowGroupLayout) GetMinSize(b *box.Box, state *box.LayoutState) box.Size {
	size := l.rowLayout.GetMinSize(b, state)
	l.addExtraTracks(b, state, &size, extentMin)
	return size
}

// GetMaxSize is the stacking baseline plus maximum extents of the grid's
// extra tracks. An unconstrained extra track leaves the whole axis
// unconstrained.
func (l *RowGroupLayout) GetMaxSize(b *box.Box, state *box.LayoutState) box.Size {
	size := l.rowLayout.GetMaxSize(b, state)
	l.addExtraTracks(b, state, &size, extentMax)
	return size
}

// addExtraTracks folds the grid's extra tracks into size. The extras
// occupy the tail of the track table, [count-extra, count). Each is
// measured by asking the grid for its row height on the opposite
// orientation and added on this group's own axis, saturating: a group's
// extent along the grid's cross axis depends on per-track sizes computed
// as if those tracks were rows.
func (l *RowGroupLayout) addExtraTracks(b *box.Box, state *box.LayoutState, size *box.Size, which extentKind) {
	if b == nil {
		return
	}
	g, _ := l.LocateGrid(b, state, nil)
	if g == nil {
		return
	}
	horizontal := b.IsHorizontal()
	extra := g.ExtraColumnCount(state, horizontal)
	if extra == 0 {
		return
	}
	start := g.ColumnCount(state, horizontal) - extra
	for i := 0; i < extra; i++ {
		height := g.rowExtent(state, i+start, which, !horizontal)
		size.AddToAxis(height, horizontal)
	}
}

// DirtyRows marks the group dirty and relays the dirtying into every
// part below it. Plain children need no individual visit; the group-level
// mark covers them.
func (l *RowGroupLayout) DirtyRows(b *box.Box, state *box.LayoutState) {
	if b == nil {
		return
	}
	b.MarkDirty()
	for child := b.FirstChild(); child != nil; child = child.NextSibling() {
		rc := resolveChild(child, state)
		if rc.Part != nil {
			rc.Part.DirtyRows(rc.Box, state)
		}
	}
}

// CountRowsColumns tallies the group's subtree in a single pass: a part
// child is delegated to and may raise both accumulators; a plain child
// counts as exactly one future bogus row.
func (l *RowGroupLayout) CountRowsColumns(b *box.Box, state *box.LayoutState, rowCount, colCount *int) {
	if b == nil {
		return
	}
	for child := b.FirstChild(); child != nil; child = child.NextSibling() {
		rc := resolveChild(child, state)
		if rc.Part != nil {
			rc.Part.CountRowsColumns(rc.Box, state, rowCount, colCount)
			continue
		}
		*rowCount++
	}
}

// BuildRows appends the group's row descriptors to rows, mirroring the
// counting walk: part children append their own descriptors, every plain
// child appends one bogus row backed by the resolved box. Returns the
// number appended.
func (l *RowGroupLayout) BuildRows(b *box.Box, state *box.LayoutState, rows *[]Row) int {
	if b == nil {
		return 0
	}
	built := 0
	for child := b.FirstChild(); child != nil; child = child.NextSibling() {
		rc := resolveChild(child, state)
		if rc.Part != nil {
			built += rc.Part.BuildRows(rc.Box, state, rows)
			continue
		}
		*rows = append(*rows, Row{Box: rc.Box, Bogus: true})
		built++
	}
	return built
}

// RowCount recounts the rows this group contributes. Nested groups pass
// their rows through, so the contribution is the full subtree tally.
func (l *RowGroupLayout) RowCount(b *box.Box, state *box.LayoutState) int {
	rows, cols := 0, 0
	l.CountRowsColumns(b, state, &rows, &cols)
	return rows
}

// CastToRowGroupLayout narrows to the row-group capability.
func (l *RowGroupLayout) CastToRowGroupLayout() *RowGroupLayout { return l }

// CastToGridLayout returns nil; a row group is not a grid.
func (l *RowGroupLayout) CastToGridLayout() *GridLayout { return nil }
