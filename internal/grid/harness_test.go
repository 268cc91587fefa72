// internal/grid/harness_test.go
package grid_test

import (
	"strconv"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/nkrahm/boxgrid/internal/box"
	"github.com/nkrahm/boxgrid/internal/grid"
)

func newState(t *testing.T) *box.LayoutState {
	t.Helper()
	return box.NewLayoutState(zaptest.NewLogger(t), nil)
}

// observedState returns a state whose log output can be asserted on.
func observedState(t *testing.T) (*box.LayoutState, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return box.NewLayoutState(zap.New(core), nil), logs
}

// cellBox is a plain content box with fixed attribute sizes.
func cellBox(w, h int) *box.Box {
	b := box.New("label", false)
	b.SetAttr(box.AttrWidth, strconv.Itoa(w))
	b.SetAttr(box.AttrHeight, strconv.Itoa(h))
	return b
}

// leafRow is a horizontal row of cells managed by a leaf-row layout.
func leafRow(state *box.LayoutState, cells ...*box.Box) *box.Box {
	b := box.New("row", true)
	b.SetLayoutManager(grid.NewRowLeafLayout())
	for _, c := range cells {
		b.AppendChild(state, c)
	}
	return b
}

// leafColumn is a vertical column of cells managed by a leaf-row layout.
func leafColumn(state *box.LayoutState, cells ...*box.Box) *box.Box {
	b := box.New("column", false)
	b.SetLayoutManager(grid.NewRowLeafLayout())
	for _, c := range cells {
		b.AppendChild(state, c)
	}
	return b
}

// rowsGroup is a vertical group of rows.
func rowsGroup(state *box.LayoutState, children ...*box.Box) *box.Box {
	b := box.New("rows", false)
	b.SetLayoutManager(grid.NewRowGroupLayout())
	for _, c := range children {
		b.AppendChild(state, c)
	}
	return b
}

// colsGroup is a horizontal group of columns.
func colsGroup(state *box.LayoutState, children ...*box.Box) *box.Box {
	b := box.New("columns", true)
	b.SetLayoutManager(grid.NewRowGroupLayout())
	for _, c := range children {
		b.AppendChild(state, c)
	}
	return b
}

// newGridBox is a grid box owning a fresh context.
func newGridBox(state *box.LayoutState, children ...*box.Box) *box.Box {
	b := box.New("grid", false)
	b.SetLayoutManager(grid.NewGridLayout())
	for _, c := range children {
		b.AppendChild(state, c)
	}
	return b
}

// scrollWrap puts content inside a scrollable wrapper.
func scrollWrap(state *box.LayoutState, content *box.Box) *box.Box {
	b := box.New("scrollbox", false)
	b.SetLayoutManager(box.ScrollLayout{})
	if content != nil {
		b.AppendChild(state, content)
	}
	return b
}

// partOf asserts its way to the grid-part capability of a box.
func partOf(t *testing.T, b *box.Box) grid.Part {
	t.Helper()
	part, ok := b.LayoutManager().(grid.Part)
	if !ok {
		t.Fatalf("box %q has no grid part", b.Tag())
	}
	return part
}

// contextOf resolves the grid context owned by a grid box.
func contextOf(t *testing.T, b *box.Box) *grid.Grid {
	t.Helper()
	g, err := grid.ContextFor(b)
	if err != nil {
		t.Fatalf("ContextFor(%q): %v", b.Tag(), err)
	}
	return g
}
