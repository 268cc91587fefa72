// internal/grid/row.go
package grid

import (
	"github.com/nkrahm/boxgrid/internal/box"
)

// Row describes one track of a grid: a physical row or, by symmetry, a
// physical column. Rows live exclusively in the grid context's tables;
// layout parts only append descriptors during a build pass and read them
// back through the context.
type Row struct {
	// Box backs the track. It is the row leaf for a real row, the plain
	// child for a bogus row, and nil for an extra track implied by the
	// opposite axis's cells.
	Box *box.Box

	// Bogus marks a synthetic row created for a plain child that takes
	// no part in the grid protocol.
	Bogus bool

	// Start and Size place the track along its axis, valid once the
	// context's geometry pass has run.
	Start box.Extent
	Size  box.Extent

	pref, min, max          box.Extent
	prefSet, minSet, maxSet bool
}
