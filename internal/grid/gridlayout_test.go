// internal/grid/gridlayout_test.go
package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkrahm/boxgrid/internal/box"
	"github.com/nkrahm/boxgrid/internal/grid"
)

func TestContextFor(t *testing.T) {
	state := newState(t)
	gridBox := newGridBox(state)
	mgr := gridBox.LayoutManager().(*grid.GridLayout)

	g, err := grid.ContextFor(gridBox)
	require.NoError(t, err)
	assert.Same(t, mgr.Grid(), g)
	assert.Same(t, gridBox, g.Box())

	_, err = grid.ContextFor(box.New("plain", false))
	assert.ErrorIs(t, err, grid.ErrNotGrid)

	_, err = grid.ContextFor(nil)
	assert.ErrorIs(t, err, grid.ErrNotGrid)
}

func TestLocateGridIndices(t *testing.T) {
	state := newState(t)
	leafA := leafRow(state, cellBox(7, 11))
	leafB := leafRow(state, cellBox(7, 11))
	leafC := leafRow(state, cellBox(7, 11))
	leafD := leafRow(state, cellBox(7, 11))
	inner := rowsGroup(state, leafB, leafC)
	rowsBox := rowsGroup(state, box.New("plain", false), leafA, inner, leafD)
	gridBox := newGridBox(state, rowsBox)
	want := contextOf(t, gridBox)

	tests := []struct {
		name  string
		b     *box.Box
		index int
	}{
		{"leaf after one bogus row", leafA, 1},
		{"first nested leaf", leafB, 2},
		{"second nested leaf", leafC, 3},
		{"leaf after the nested group", leafD, 4},
		{"the nested group itself", inner, 2},
		{"the outer group", rowsBox, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, idx := partOf(t, tt.b).LocateGrid(tt.b, state, nil)
			assert.Same(t, want, g)
			assert.Equal(t, tt.index, idx)
		})
	}
}

func TestLocateGridThroughScrollWrapper(t *testing.T) {
	state := newState(t)
	leafA := leafRow(state, cellBox(7, 11))
	leafB := leafRow(state, cellBox(7, 11))
	rowsBox := rowsGroup(state, scrollWrap(state, leafA), leafB)
	gridBox := newGridBox(state, rowsBox)
	want := contextOf(t, gridBox)

	g, idx := partOf(t, leafA).LocateGrid(leafA, state, nil)
	assert.Same(t, want, g)
	assert.Equal(t, 0, idx, "the wrapper is invisible to the index walk")

	g, idx = partOf(t, leafB).LocateGrid(leafB, state, nil)
	assert.Same(t, want, g)
	assert.Equal(t, 1, idx)
}

func TestLocateGridOutsideAnyGrid(t *testing.T) {
	state := newState(t)
	leaf := leafRow(state, cellBox(7, 11))
	rowsGroup(state, leaf)

	g, idx := partOf(t, leaf).LocateGrid(leaf, state, nil)
	assert.Nil(t, g)
	assert.Equal(t, -1, idx)
}

func TestNestedGridContributesNoRows(t *testing.T) {
	state := newState(t)
	innerGrid := newGridBox(state, rowsGroup(state,
		leafRow(state, cellBox(7, 11)),
		leafRow(state, cellBox(7, 11)),
	))
	leafA := leafRow(state, cellBox(7, 11))
	rowsBox := rowsGroup(state, leafA, innerGrid)
	outer := newGridBox(state, rowsBox)

	g := contextOf(t, outer)
	assert.Equal(t, 1, g.RowCount(state, true), "a nested grid is opaque to the outer one")

	inner := contextOf(t, innerGrid)
	assert.Equal(t, 2, inner.RowCount(state, true), "the nested grid still counts its own rows")
	assert.NotSame(t, g, inner)
}

func TestGridLayoutSizesMatchTotals(t *testing.T) {
	state := newState(t)
	gridBox, _, _ := threeByFive(t, state)
	g := contextOf(t, gridBox)

	assert.Equal(t, g.PrefSize(state), gridBox.PrefSize(state))
	assert.Equal(t, g.MinSize(state), gridBox.MinSize(state))
	assert.Equal(t, g.MaxSize(state), gridBox.MaxSize(state))
}

func TestGridLayoutPlacesTracks(t *testing.T) {
	state := newState(t)
	r1 := leafRow(state, cellBox(7, 11), cellBox(7, 11))
	r2 := leafRow(state, cellBox(7, 11), cellBox(7, 11))
	c1 := leafColumn(state)
	c1.SetAttr(box.AttrWidth, "10")
	c2 := leafColumn(state)
	c2.SetAttr(box.AttrWidth, "20")
	rowsBox := rowsGroup(state, r1, r2)
	colsBox := colsGroup(state, c1, c2)
	gridBox := newGridBox(state, rowsBox, colsBox)

	gridBox.Bounds = box.Rect{X: 0, Y: 0, Width: 100, Height: 50}
	gridBox.DoLayout(state)

	// groups overlay the whole grid area
	assert.Equal(t, gridBox.Bounds, rowsBox.Bounds)
	assert.Equal(t, gridBox.Bounds, colsBox.Bounds)

	// rows land on their tracks, full width
	assert.Equal(t, box.Rect{X: 0, Y: 0, Width: 100, Height: 11}, r1.Bounds)
	assert.Equal(t, box.Rect{X: 0, Y: 11, Width: 100, Height: 11}, r2.Bounds)

	// columns land on theirs, full height
	assert.Equal(t, box.Rect{X: 0, Y: 0, Width: 10, Height: 50}, c1.Bounds)
	assert.Equal(t, box.Rect{X: 10, Y: 0, Width: 20, Height: 50}, c2.Bounds)

	// cells sit at the track intersections
	assert.Equal(t, box.Rect{X: 0, Y: 0, Width: 10, Height: 11}, r1.FirstChild().Bounds)
	assert.Equal(t, box.Rect{X: 10, Y: 0, Width: 20, Height: 11}, r1.FirstChild().NextSibling().Bounds)
	assert.Equal(t, box.Rect{X: 0, Y: 11, Width: 10, Height: 11}, r2.FirstChild().Bounds)
	assert.Equal(t, box.Rect{X: 10, Y: 11, Width: 20, Height: 11}, r2.FirstChild().NextSibling().Bounds)
}

func TestGridLayoutPlacesWrappedRowThroughScroller(t *testing.T) {
	state := newState(t)
	inner := leafRow(state, cellBox(7, 11), cellBox(7, 11))
	wrapper := scrollWrap(state, inner)
	gridBox := newGridBox(state, rowsGroup(state, wrapper))

	gridBox.Bounds = box.Rect{X: 0, Y: 0, Width: 100, Height: 40}
	gridBox.DoLayout(state)

	want := box.Rect{X: 0, Y: 0, Width: 100, Height: 11}
	assert.Equal(t, want, wrapper.Bounds, "the wrapper owns the track rect")
	assert.Equal(t, want, inner.Bounds, "the scroll layout hands it to the content")
	assert.Equal(t, box.Rect{X: 0, Y: 0, Width: 7, Height: 11}, inner.FirstChild().Bounds)
	assert.Equal(t, box.Rect{X: 7, Y: 0, Width: 7, Height: 11}, inner.FirstChild().NextSibling().Bounds)
}

func TestGridLayoutOffsetOrigin(t *testing.T) {
	state := newState(t)
	r1 := leafRow(state, cellBox(7, 11))
	gridBox := newGridBox(state, rowsGroup(state, r1))

	gridBox.Bounds = box.Rect{X: 30, Y: 20, Width: 60, Height: 40}
	gridBox.DoLayout(state)

	assert.Equal(t, box.Rect{X: 30, Y: 20, Width: 60, Height: 11}, r1.Bounds)
	assert.Equal(t, box.Rect{X: 30, Y: 20, Width: 7, Height: 11}, r1.FirstChild().Bounds)
}

func TestGridLayoutStacksPlainChildren(t *testing.T) {
	state := newState(t)
	badge := box.New("badge", false)
	gridBox := newGridBox(state, rowsGroup(state, leafRow(state, cellBox(7, 11))), badge)

	gridBox.Bounds = box.Rect{X: 0, Y: 0, Width: 50, Height: 30}
	gridBox.DoLayout(state)

	assert.Equal(t, gridBox.Bounds, badge.Bounds, "non-grid children overlay the whole area")
	assert.False(t, badge.IsDirty())
}
