// internal/grid/cells.go

package grid

import (
	"github.com/nkrahm/boxgrid/internal/box"
)

// Cell is one intersection of the row and column tables. A cell can be
// occupied twice over: the box that a leaf row placed there and the box
// that a leaf column placed there overlay the same rect.
type Cell struct {
	BoxInRow    *box.Box
	BoxInColumn *box.Box
}

// CellAt returns the cell at (row, column) in the physical frame, nil
// when out of range. Borrowed from the table, invalidated on rebuild.
func (g *Grid) CellAt(state *box.LayoutState, row, column int) *Cell {
	g.rebuildIfNeeded(state)
	return g.cellAt(row, column)
}

func (g *Grid) cellAt(row, column int) *Cell {
	nc := len(g.cols)
	if row < 0 || row >= len(g.rows) || column < 0 || column >= nc {
		return nil
	}
	return &g.cells[row*nc+column]
}

// buildCells maps each leaf row's children into the row slots of the
// table and each leaf column's children into the column slots. Bogus
// and extra tracks carry no cells of their own; children beyond the
// table edge are ignored.
func (g *Grid) buildCells() {
	nr, nc := len(g.rows), len(g.cols)
	if nr == 0 || nc == 0 {
		g.cells = nil
		return
	}
	g.cells = make([]Cell, nr*nc)

	for i := range g.rows {
		rb := g.rows[i].Box
		if rb == nil || g.rows[i].Bogus {
			continue
		}
		if _, ok := rb.LayoutManager().(*RowLeafLayout); !ok {
			continue
		}
		j := 0
		for child := rb.FirstChild(); child != nil && j < nc; child = child.NextSibling() {
			g.cells[i*nc+j].BoxInRow = child
			j++
		}
	}

	for j := range g.cols {
		cb := g.cols[j].Box
		if cb == nil || g.cols[j].Bogus {
			continue
		}
		if _, ok := cb.LayoutManager().(*RowLeafLayout); !ok {
			continue
		}
		i := 0
		for child := cb.FirstChild(); child != nil && i < nr; child = child.NextSibling() {
			g.cells[i*nc+j].BoxInColumn = child
			i++
		}
	}
}
