// internal/box/box.go

// Package box implements the generic box tree the grid layout engine runs
// against: linked boxes with an orientation, an optional layout manager,
// attribute-driven size overrides, and a per-pass layout state.
package box

import (
	"strconv"

	"go.uber.org/zap"
)

// Common attribute names recognized by the size resolution pipeline.
const (
	AttrWidth     = "width"
	AttrHeight    = "height"
	AttrMinWidth  = "minwidth"
	AttrMinHeight = "minheight"
	AttrMaxWidth  = "maxwidth"
	AttrMaxHeight = "maxheight"
	AttrFlex      = "flex"
	AttrOrient    = "orient"
	AttrValue     = "value"
)

// LayoutManager computes sizes and places children for one box. A box
// without a manager is plain content: it measures itself and has no
// layout behavior of its own.
type LayoutManager interface {
	// GetPrefSize returns the preferred size of b's content.
	GetPrefSize(b *Box, state *LayoutState) Size
	// GetMinSize returns the minimum size of b's content.
	GetMinSize(b *Box, state *LayoutState) Size
	// GetMaxSize returns the maximum size of b's content.
	GetMaxSize(b *Box, state *LayoutState) Size
	// Layout places b's children inside b.Bounds. The tree is expected
	// to be fully attached; Layout never mutates structure.
	Layout(b *Box, state *LayoutState)
	// ChildAddedOrRemoved is fired after a structural mutation of b's
	// child list so the manager can invalidate derived state.
	ChildAddedOrRemoved(b *Box, state *LayoutState)
}

// LayoutState carries per-pass context through a layout traversal. It is
// created once per top-level operation and shared down the call stack;
// it holds no results.
type LayoutState struct {
	Logger   *zap.Logger
	Measurer Measurer
}

// NewLayoutState returns a state with nil-safe defaults: a nop logger and
// the text measurer.
func NewLayoutState(logger *zap.Logger, m Measurer) *LayoutState {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = TextMeasurer{}
	}
	return &LayoutState{Logger: logger, Measurer: m}
}

// Box is one node of the box tree. Links are owned by the tree; layout
// managers only ever borrow references and never free or detach boxes.
type Box struct {
	tag     string
	attrs   map[string]string
	content string

	horizontal bool

	parent      *Box
	firstChild  *Box
	lastChild   *Box
	nextSibling *Box
	prevSibling *Box
	childCount  int

	layout LayoutManager
	dirty  bool

	// Bounds is the placed rectangle, valid after a layout pass.
	Bounds Rect
}

// New returns a detached box for the given element tag.
func New(tag string, horizontal bool) *Box {
	return &Box{tag: tag, horizontal: horizontal}
}

// Tag returns the element name this box was created from.
func (b *Box) Tag() string { return b.tag }

// Content returns the text content used for leaf measurement.
func (b *Box) Content() string { return b.content }

// SetContent sets the text content used for leaf measurement.
func (b *Box) SetContent(s string) { b.content = s }

// IsHorizontal reports the box's primary axis.
func (b *Box) IsHorizontal() bool { return b.horizontal }

// SetHorizontal sets the box's primary axis.
func (b *Box) SetHorizontal(h bool) { b.horizontal = h }

// Parent returns the parent box, nil at the root.
func (b *Box) Parent() *Box { return b.parent }

// FirstChild returns the head of the child chain, nil for a leaf.
func (b *Box) FirstChild() *Box { return b.firstChild }

// NextSibling returns the next box in the parent's child chain.
func (b *Box) NextSibling() *Box { return b.nextSibling }

// ChildCount returns the number of direct children.
func (b *Box) ChildCount() int { return b.childCount }

// LayoutManager returns the attached manager, nil for plain content.
func (b *Box) LayoutManager() LayoutManager { return b.layout }

// SetLayoutManager attaches a manager. Managers are shared, stateless
// values; per-box state lives on the box or in the grid context.
func (b *Box) SetLayoutManager(lm LayoutManager) { b.layout = lm }

// MarkDirty flags the box as needing layout. Managers clear it when they
// place the box.
func (b *Box) MarkDirty() { b.dirty = true }

// IsDirty reports whether the box needs layout.
func (b *Box) IsDirty() bool { return b.dirty }

// AppendChild links child at the end of b's child chain and notifies b's
// layout manager. The child must be detached.
func (b *Box) AppendChild(state *LayoutState, child *Box) {
	if child == nil || child.parent != nil {
		return
	}
	child.parent = b
	child.prevSibling = b.lastChild
	if b.lastChild != nil {
		b.lastChild.nextSibling = child
	} else {
		b.firstChild = child
	}
	b.lastChild = child
	b.childCount++
	b.MarkDirty()
	if b.layout != nil {
		b.layout.ChildAddedOrRemoved(b, state)
	}
}

// RemoveChild unlinks child from b's chain and notifies b's layout
// manager. A child belonging to another parent is left untouched.
func (b *Box) RemoveChild(state *LayoutState, child *Box) {
	if child == nil || child.parent != b {
		return
	}
	if child.prevSibling != nil {
		child.prevSibling.nextSibling = child.nextSibling
	} else {
		b.firstChild = child.nextSibling
	}
	if child.nextSibling != nil {
		child.nextSibling.prevSibling = child.prevSibling
	} else {
		b.lastChild = child.prevSibling
	}
	child.parent = nil
	child.nextSibling = nil
	child.prevSibling = nil
	b.childCount--
	b.MarkDirty()
	if b.layout != nil {
		b.layout.ChildAddedOrRemoved(b, state)
	}
}

// Attr returns the raw attribute value and whether it was set.
func (b *Box) Attr(name string) (string, bool) {
	v, ok := b.attrs[name]
	return v, ok
}

// SetAttr sets a raw attribute value.
func (b *Box) SetAttr(name, value string) {
	if b.attrs == nil {
		b.attrs = make(map[string]string)
	}
	b.attrs[name] = value
}

// extentAttr parses a non-negative integer attribute as an Extent.
func (b *Box) extentAttr(name string) (Extent, bool) {
	raw, ok := b.attrs[name]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return Extent(n), true
}

// Flex returns the box's flex weight, zero when absent or malformed.
func (b *Box) Flex() int {
	raw, ok := b.attrs[AttrFlex]
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// PrefSize resolves the box's preferred size: attribute overrides win,
// then the layout manager, then leaf measurement. The result is clamped
// into [MinSize, MaxSize].
func (b *Box) PrefSize(state *LayoutState) Size {
	var pref Size
	switch {
	case b.layout != nil:
		pref = b.layout.GetPrefSize(b, state)
	default:
		pref = state.Measurer.Measure(b)
	}
	if w, ok := b.extentAttr(AttrWidth); ok {
		pref.Width = w
	}
	if h, ok := b.extentAttr(AttrHeight); ok {
		pref.Height = h
	}
	return BoundsCheckSize(b.MinSize(state), pref, b.MaxSize(state))
}

// MinSize resolves the box's minimum size; zero on an axis unless the
// manager or a minwidth/minheight attribute raises it.
func (b *Box) MinSize(state *LayoutState) Size {
	var min Size
	if b.layout != nil {
		min = b.layout.GetMinSize(b, state)
	}
	if w, ok := b.extentAttr(AttrMinWidth); ok {
		min.Width = w
	}
	if h, ok := b.extentAttr(AttrMinHeight); ok {
		min.Height = h
	}
	return min
}

// MaxSize resolves the box's maximum size; Unconstrained on an axis
// unless the manager or a maxwidth/maxheight attribute lowers it.
func (b *Box) MaxSize(state *LayoutState) Size {
	max := UnconstrainedSize()
	if b.layout != nil {
		max = b.layout.GetMaxSize(b, state)
	}
	if w, ok := b.extentAttr(AttrMaxWidth); ok {
		max.Width = w
	}
	if h, ok := b.extentAttr(AttrMaxHeight); ok {
		max.Height = h
	}
	return max
}

// DoLayout runs the box's layout manager inside the current Bounds and
// clears the dirty flag. Leaves only clear the flag.
func (b *Box) DoLayout(state *LayoutState) {
	if b.layout != nil {
		b.layout.Layout(b, state)
	}
	b.dirty = false
}
