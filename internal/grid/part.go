// internal/grid/part.go
package grid

import (
	"github.com/nkrahm/boxgrid/internal/box"
)

// Part is the grid-part capability. A layout manager implementing it
// participates in the grid protocol: it contributes rows to an enclosing
// grid's tables and relays counting, building, and dirtying through its
// subtree. Any box whose manager is a Part is treated as an opaque
// sub-structure by its parent group, never as a single synthetic row.
type Part interface {
	// CountRowsColumns accumulates the rows this part contributes into
	// rowCount and raises colCount to the widest row seen. A nil box
	// contributes nothing.
	CountRowsColumns(b *box.Box, state *box.LayoutState, rowCount, colCount *int)

	// BuildRows appends this part's row descriptors to rows and returns
	// how many were appended. The append order matches the counting
	// walk exactly.
	BuildRows(b *box.Box, state *box.LayoutState, rows *[]Row) int

	// DirtyRows marks b dirty and propagates dirtying into every part
	// reachable below it.
	DirtyRows(b *box.Box, state *box.LayoutState)

	// LocateGrid resolves the enclosing grid context and the index of
	// this part's first row within it. With a nil requestor the part
	// asks upward on its own behalf; a non-nil requestor is a child box
	// asking where its rows begin. Returns (nil, -1) when no grid
	// encloses b.
	LocateGrid(b *box.Box, state *box.LayoutState, requestor *box.Box) (*Grid, int)

	// ParentGridPart returns the nearest ancestor part and its box,
	// looking through scroll wrappers; (nil, nil) at the protocol root.
	ParentGridPart(b *box.Box) (Part, *box.Box)

	// RowCount reports how many rows this part contributes to its
	// parent's frame of reference.
	RowCount(b *box.Box, state *box.LayoutState) int

	// CastToRowGroupLayout narrows to the row-group capability, nil for
	// other parts.
	CastToRowGroupLayout() *RowGroupLayout

	// CastToGridLayout narrows to the grid capability, nil for other
	// parts.
	CastToGridLayout() *GridLayout
}

// parentGridPart walks up from b to the nearest ancestor whose layout
// manager is a Part. A scroll wrapper between b and that ancestor is
// transparent: the wrapper's own parent is considered instead.
func parentGridPart(b *box.Box) (Part, *box.Box) {
	if b == nil {
		return nil, nil
	}
	parent := b.Parent()
	if parent == nil {
		return nil, nil
	}
	if _, ok := parent.LayoutManager().(box.Scroller); ok {
		parent = parent.Parent()
		if parent == nil {
			return nil, nil
		}
	}
	if part, ok := parent.LayoutManager().(Part); ok {
		return part, parent
	}
	return nil, nil
}
