// internal/grid/grid.go

// Package grid implements a box-model grid: layout managers for grids,
// row groups, and leaf rows that flatten an arbitrarily nested box tree
// into ordered row and column tables, plus the shared context that owns
// those tables and answers per-track size queries.
//
// Orientation runs through the package as a plain bool. Context
// accessors take a `horizontal` flag describing the caller's frame:
// true reads row/column physically, false swaps them, so a vertical
// group asking for its "columns" transparently reads the physical rows.
package grid

import (
	"go.uber.org/zap"

	"github.com/nkrahm/boxgrid/internal/box"
)

// extentKind selects which of the three track measures a query wants.
type extentKind int

const (
	extentPref extentKind = iota
	extentMin
	extentMax
)

// Grid is the shared context for one grid box: the physical row and
// column tables, the extra-track counts, and the cached per-track
// extents. It is owned by the grid's layout manager; row groups and
// leaves only borrow it for the duration of a single call.
//
// All accessors rebuild lazily, so the tables always describe the
// current tree by the time a caller reads them.
type Grid struct {
	gridBox *box.Box

	rowsBox  *box.Box
	colsBox  *box.Box
	rowsPart Part
	colsPart Part

	rows []Row
	cols []Row

	extraRows int
	extraCols int

	cells []Cell

	needsRebuild  bool
	geometryValid bool
}

// NewGrid returns an empty context that rebuilds on first use.
func NewGrid() *Grid {
	return &Grid{needsRebuild: true}
}

// attach binds the context to its grid box the first time the box is
// seen. The binding never changes afterwards.
func (g *Grid) attach(b *box.Box) {
	if g.gridBox == nil && b != nil {
		g.gridBox = b
	}
}

// Box returns the grid box this context describes, nil before first use.
func (g *Grid) Box() *box.Box {
	return g.gridBox
}

// NeedsRebuild discards the tables; the next query rebuilds them. The
// group boxes are rebound first since the mutation may have replaced
// them, and dirtying is relayed through both so every part below
// re-measures.
func (g *Grid) NeedsRebuild(state *box.LayoutState) {
	if g.needsRebuild {
		return
	}
	g.needsRebuild = true
	g.geometryValid = false

	if g.gridBox == nil {
		return
	}
	g.rowsBox, g.colsBox = nil, nil
	g.rowsPart, g.colsPart = nil, nil
	g.findGroups(state)
	if g.rowsPart != nil {
		g.rowsPart.DirtyRows(g.rowsBox, state)
	}
	if g.colsPart != nil {
		g.colsPart.DirtyRows(g.colsBox, state)
	}
}

// RowAddedOrRemoved records a row mutation at index on the given
// orientation. Full rebuild; nothing has needed finer invalidation.
func (g *Grid) RowAddedOrRemoved(state *box.LayoutState, index int, horizontal bool) {
	stateLogger(state).Debug("grid row mutated",
		zap.Int("index", index), zap.Bool("horizontal", horizontal))
	g.NeedsRebuild(state)
}

// CellAddedOrRemoved records a cell mutation in the row at index on the
// given orientation. Full rebuild, as above.
func (g *Grid) CellAddedOrRemoved(state *box.LayoutState, index int, horizontal bool) {
	stateLogger(state).Debug("grid cell mutated",
		zap.Int("index", index), zap.Bool("horizontal", horizontal))
	g.NeedsRebuild(state)
}

// RowCount returns the number of rows in the caller's frame, extra
// tracks included.
func (g *Grid) RowCount(state *box.LayoutState, horizontal bool) int {
	g.rebuildIfNeeded(state)
	if horizontal {
		return len(g.rows)
	}
	return len(g.cols)
}

// ColumnCount returns the number of columns in the caller's frame, extra
// tracks included.
func (g *Grid) ColumnCount(state *box.LayoutState, horizontal bool) int {
	return g.RowCount(state, !horizontal)
}

// ExtraRowCount returns how many trailing rows in the caller's frame
// have no backing box.
func (g *Grid) ExtraRowCount(state *box.LayoutState, horizontal bool) int {
	g.rebuildIfNeeded(state)
	if horizontal {
		return g.extraRows
	}
	return g.extraCols
}

// ExtraColumnCount returns how many trailing columns in the caller's
// frame have no backing box.
func (g *Grid) ExtraColumnCount(state *box.LayoutState, horizontal bool) int {
	return g.ExtraRowCount(state, !horizontal)
}

// RowAt returns the row descriptor at index in the caller's frame, nil
// when out of range. The descriptor is borrowed from the context's
// table and is invalidated by the next rebuild.
func (g *Grid) RowAt(state *box.LayoutState, index int, horizontal bool) *Row {
	g.rebuildIfNeeded(state)
	table := g.cols
	if horizontal {
		table = g.rows
	}
	if index < 0 || index >= len(table) {
		return nil
	}
	return &table[index]
}

// ColumnAt returns the column descriptor at index in the caller's frame,
// nil when out of range.
func (g *Grid) ColumnAt(state *box.LayoutState, index int, horizontal bool) *Row {
	return g.RowAt(state, index, !horizontal)
}

// PrefRowHeight returns the preferred breadth of the track at index in
// the caller's frame. With horizontal == false this is a physical
// column's preferred width.
func (g *Grid) PrefRowHeight(state *box.LayoutState, index int, horizontal bool) box.Extent {
	return g.rowExtent(state, index, extentPref, horizontal)
}

// MinRowHeight returns the minimum breadth of the track at index in the
// caller's frame.
func (g *Grid) MinRowHeight(state *box.LayoutState, index int, horizontal bool) box.Extent {
	return g.rowExtent(state, index, extentMin, horizontal)
}

// MaxRowHeight returns the maximum breadth of the track at index in the
// caller's frame.
func (g *Grid) MaxRowHeight(state *box.LayoutState, index int, horizontal bool) box.Extent {
	return g.rowExtent(state, index, extentMax, horizontal)
}

// PrefSize sums preferred track extents on both axes.
func (g *Grid) PrefSize(state *box.LayoutState) box.Size {
	return g.totalSize(state, extentPref)
}

// MinSize sums minimum track extents on both axes.
func (g *Grid) MinSize(state *box.LayoutState) box.Size {
	return g.totalSize(state, extentMin)
}

// MaxSize sums maximum track extents on both axes; one unconstrained
// track leaves the axis unconstrained.
func (g *Grid) MaxSize(state *box.LayoutState) box.Size {
	return g.totalSize(state, extentMax)
}

func (g *Grid) totalSize(state *box.LayoutState, which extentKind) box.Size {
	g.rebuildIfNeeded(state)
	var s box.Size
	for j := range g.cols {
		s.Width = box.AddExtent(s.Width, g.rowExtent(state, j, which, false))
	}
	for i := range g.rows {
		s.Height = box.AddExtent(s.Height, g.rowExtent(state, i, which, true))
	}
	return s
}

// EnsureGeometry assigns each track its placed Start and Size: the
// preferred extent clamped into [min, max], with unconstrained results
// collapsing to the minimum. Offsets accumulate in table order.
func (g *Grid) EnsureGeometry(state *box.LayoutState) {
	g.rebuildIfNeeded(state)
	if g.geometryValid {
		return
	}
	g.placeTracks(state, true, g.rows)
	g.placeTracks(state, false, g.cols)
	g.geometryValid = true
}

func (g *Grid) placeTracks(state *box.LayoutState, horizontal bool, table []Row) {
	cursor := box.Extent(0)
	for i := range table {
		min := g.rowExtent(state, i, extentMin, horizontal)
		pref := g.rowExtent(state, i, extentPref, horizontal)
		max := g.rowExtent(state, i, extentMax, horizontal)
		size := box.BoundsCheck(min, pref, max)
		if size == box.Unconstrained {
			size = min
		}
		if size == box.Unconstrained {
			size = 0
		}
		table[i].Start = cursor
		table[i].Size = size
		cursor += size
	}
}

// rowExtent computes and caches one track measure. A track's breadth
// combines its backing box (when any) with every cell crossing it:
// lower bounds combine by max, the upper bound by min.
func (g *Grid) rowExtent(state *box.LayoutState, index int, which extentKind, horizontal bool) box.Extent {
	row := g.RowAt(state, index, horizontal)
	if row == nil {
		return 0
	}
	switch which {
	case extentPref:
		if row.prefSet {
			return row.pref
		}
	case extentMin:
		if row.minSet {
			return row.min
		}
	case extentMax:
		if row.maxSet {
			return row.max
		}
	}

	acc := box.Extent(0)
	if which == extentMax {
		acc = box.Unconstrained
	}
	combine := func(e box.Extent) {
		if which == extentMax {
			acc = box.MinExtent(acc, e)
		} else {
			acc = box.MaxExtent(acc, e)
		}
	}
	measure := func(b *box.Box) box.Extent {
		var s box.Size
		switch which {
		case extentMin:
			s = b.MinSize(state)
		case extentMax:
			s = b.MaxSize(state)
		default:
			s = b.PrefSize(state)
		}
		// A physical row's breadth is its height, a column's its width.
		return s.Axis(!horizontal)
	}

	if row.Box != nil {
		combine(measure(row.Box))
	}
	across := len(g.rows)
	if horizontal {
		across = len(g.cols)
	}
	for k := 0; k < across; k++ {
		var cell *Cell
		if horizontal {
			cell = g.cellAt(index, k)
		} else {
			cell = g.cellAt(k, index)
		}
		if cell == nil {
			continue
		}
		if cell.BoxInRow != nil {
			combine(measure(cell.BoxInRow))
		}
		if cell.BoxInColumn != nil {
			combine(measure(cell.BoxInColumn))
		}
	}

	switch which {
	case extentPref:
		row.pref, row.prefSet = acc, true
	case extentMin:
		row.min, row.minSet = acc, true
	case extentMax:
		row.max, row.maxSet = acc, true
	}
	return acc
}

// rebuildIfNeeded re-derives the tables: find the row and column groups
// among the grid box's children, count, build, pad with extra tracks,
// and map cells. Counting precedes building so the build pass appends
// into a right-sized table; the growable build is the ground truth and
// any divergence from the count is reported.
func (g *Grid) rebuildIfNeeded(state *box.LayoutState) {
	if !g.needsRebuild || g.gridBox == nil {
		return
	}
	g.needsRebuild = false
	g.geometryValid = false
	g.rowsBox, g.colsBox = nil, nil
	g.rowsPart, g.colsPart = nil, nil
	g.rows, g.cols = nil, nil
	g.extraRows, g.extraCols = 0, 0
	g.cells = nil

	g.findGroups(state)

	var rowCount, computedCols, colCount, computedRows int
	if g.rowsPart != nil {
		g.rowsPart.CountRowsColumns(g.rowsBox, state, &rowCount, &computedCols)
	}
	if g.colsPart != nil {
		g.colsPart.CountRowsColumns(g.colsBox, state, &colCount, &computedRows)
	}

	totalRows, totalCols := rowCount, colCount
	if computedRows > totalRows {
		g.extraRows = computedRows - totalRows
		totalRows = computedRows
	}
	if computedCols > totalCols {
		g.extraCols = computedCols - totalCols
		totalCols = computedCols
	}

	g.rows = make([]Row, 0, totalRows)
	if g.rowsPart != nil {
		if built := g.rowsPart.BuildRows(g.rowsBox, state, &g.rows); built != rowCount {
			stateLogger(state).Warn("row build diverged from count",
				zap.Int("counted", rowCount), zap.Int("built", built))
		}
	}
	for len(g.rows) < totalRows {
		g.rows = append(g.rows, Row{})
	}

	g.cols = make([]Row, 0, totalCols)
	if g.colsPart != nil {
		if built := g.colsPart.BuildRows(g.colsBox, state, &g.cols); built != colCount {
			stateLogger(state).Warn("column build diverged from count",
				zap.Int("counted", colCount), zap.Int("built", built))
		}
	}
	for len(g.cols) < totalCols {
		g.cols = append(g.cols, Row{})
	}

	g.buildCells()
}

// findGroups binds the first vertical row group to the row axis and the
// first horizontal one to the column axis, looking through scroll
// wrappers on the way.
func (g *Grid) findGroups(state *box.LayoutState) {
	for child := g.gridBox.FirstChild(); child != nil; child = child.NextSibling() {
		rc := resolveChild(child, state)
		if rc.Part == nil || rc.Part.CastToRowGroupLayout() == nil {
			continue
		}
		if rc.Box.IsHorizontal() {
			if g.colsBox == nil {
				g.colsBox, g.colsPart = rc.Box, rc.Part
			}
		} else {
			if g.rowsBox == nil {
				g.rowsBox, g.rowsPart = rc.Box, rc.Part
			}
		}
	}
}

func stateLogger(state *box.LayoutState) *zap.Logger {
	if state != nil && state.Logger != nil {
		return state.Logger
	}
	return zap.NewNop()
}
