// internal/box/sprocket_test.go
package box_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nkrahm/boxgrid/internal/box"
)

// stubManager reports canned sizes; layout behavior stays the stock one.
type stubManager struct {
	box.Sprocket
	pref box.Size
}

func (m stubManager) GetPrefSize(b *box.Box, state *box.LayoutState) box.Size { return m.pref }

func sizedBox(t *testing.T, w, h int) *box.Box {
	t.Helper()
	b := box.New("item", false)
	b.SetAttr(box.AttrWidth, strconv.Itoa(w))
	b.SetAttr(box.AttrHeight, strconv.Itoa(h))
	return b
}

func stacked(t *testing.T, horizontal bool, children ...*box.Box) (*box.Box, *box.LayoutState) {
	t.Helper()
	state := newState(t)
	parent := box.New("stack", horizontal)
	parent.SetLayoutManager(box.Sprocket{})
	for _, c := range children {
		parent.AppendChild(state, c)
	}
	return parent, state
}

func TestSprocketPrefSumsMainAxis(t *testing.T) {
	h, state := stacked(t, true, sizedBox(t, 10, 5), sizedBox(t, 20, 9))
	assert.Equal(t, box.NewSize(30, 9), h.PrefSize(state))

	v, state := stacked(t, false, sizedBox(t, 10, 5), sizedBox(t, 20, 9))
	assert.Equal(t, box.NewSize(20, 14), v.PrefSize(state))
}

func TestSprocketMinSums(t *testing.T) {
	a := box.New("a", false)
	a.SetAttr(box.AttrMinWidth, "8")
	a.SetAttr(box.AttrMinHeight, "3")
	b := box.New("b", false)
	b.SetAttr(box.AttrMinWidth, "4")
	b.SetAttr(box.AttrMinHeight, "6")

	parent, state := stacked(t, true, a, b)
	assert.Equal(t, box.NewSize(12, 6), parent.MinSize(state))
}

func TestSprocketMaxLeavesMainUnbounded(t *testing.T) {
	a := box.New("a", false)
	a.SetAttr(box.AttrMaxHeight, "30")
	b := box.New("b", false)

	parent, state := stacked(t, true, a, b)
	max := parent.MaxSize(state)
	assert.True(t, max.Width.IsUnconstrained())
	assert.Equal(t, box.Extent(30), max.Height)
}

func TestSprocketLayoutPlacesSequentially(t *testing.T) {
	a := sizedBox(t, 10, 5)
	b := sizedBox(t, 20, 5)
	parent, state := stacked(t, true, a, b)
	parent.Bounds = box.Rect{X: 0, Y: 0, Width: 100, Height: 40}

	parent.DoLayout(state)

	assert.Equal(t, box.Rect{X: 0, Y: 0, Width: 10, Height: 40}, a.Bounds)
	assert.Equal(t, box.Rect{X: 10, Y: 0, Width: 20, Height: 40}, b.Bounds)
	assert.False(t, a.IsDirty())
}

func TestSprocketLayoutVertical(t *testing.T) {
	a := sizedBox(t, 10, 5)
	b := sizedBox(t, 20, 7)
	parent, state := stacked(t, false, a, b)
	parent.Bounds = box.Rect{X: 2, Y: 3, Width: 50, Height: 100}

	parent.DoLayout(state)

	assert.Equal(t, box.Rect{X: 2, Y: 3, Width: 50, Height: 5}, a.Bounds)
	assert.Equal(t, box.Rect{X: 2, Y: 8, Width: 50, Height: 7}, b.Bounds)
}

func TestSprocketLayoutRespectsChildMax(t *testing.T) {
	a := sizedBox(t, 10, 5)
	a.SetAttr(box.AttrMaxHeight, "12")
	parent, state := stacked(t, true, a)
	parent.Bounds = box.Rect{X: 0, Y: 0, Width: 100, Height: 40}

	parent.DoLayout(state)

	assert.Equal(t, box.Extent(12), a.Bounds.Height)
}

func TestSprocketLayoutUnconstrainedPrefCollapses(t *testing.T) {
	child := box.New("greedy", false)
	child.SetLayoutManager(stubManager{pref: box.UnconstrainedSize()})
	parent, state := stacked(t, true, child)
	parent.Bounds = box.Rect{X: 0, Y: 0, Width: 100, Height: 40}

	parent.DoLayout(state)

	assert.Equal(t, box.Extent(0), child.Bounds.Width)
}
