// internal/box/sprocket.go
package box

// Sprocket is the stock stacking layout: children are laid end to end
// along the box's primary axis and stretched across it. It is the
// baseline behavior every richer manager builds on.
type Sprocket struct{}

// GetPrefSize sums child preferred extents along the primary axis and
// takes the largest across it.
func (Sprocket) GetPrefSize(b *Box, state *LayoutState) Size {
	horizontal := b.IsHorizontal()
	var pref Size
	for child := b.FirstChild(); child != nil; child = child.NextSibling() {
		cp := child.PrefSize(state)
		pref.AddToAxis(cp.Axis(horizontal), horizontal)
		cross := MaxExtent(pref.Axis(!horizontal), cp.Axis(!horizontal))
		pref.SetAxis(!horizontal, cross)
	}
	return pref
}

// GetMinSize sums child minimum extents along the primary axis and takes
// the largest across it.
func (Sprocket) GetMinSize(b *Box, state *LayoutState) Size {
	horizontal := b.IsHorizontal()
	var min Size
	for child := b.FirstChild(); child != nil; child = child.NextSibling() {
		cm := child.MinSize(state)
		min.AddToAxis(cm.Axis(horizontal), horizontal)
		cross := MaxExtent(min.Axis(!horizontal), cm.Axis(!horizontal))
		min.SetAxis(!horizontal, cross)
	}
	return min
}

// GetMaxSize leaves the primary axis unbounded (trailing space is always
// allowed) and takes the smallest child maximum across it, since
// stretched children cannot grow past their own cap.
func (Sprocket) GetMaxSize(b *Box, state *LayoutState) Size {
	horizontal := b.IsHorizontal()
	max := UnconstrainedSize()
	for child := b.FirstChild(); child != nil; child = child.NextSibling() {
		cm := child.MaxSize(state)
		cross := MinExtent(max.Axis(!horizontal), cm.Axis(!horizontal))
		max.SetAxis(!horizontal, cross)
	}
	return max
}

// Layout places children sequentially along the primary axis at their
// clamped preferred extents and stretches them across it, capped by each
// child's own maximum.
func (Sprocket) Layout(b *Box, state *LayoutState) {
	horizontal := b.IsHorizontal()
	cursor := Extent(0)
	avail := b.Bounds.Size().Axis(!horizontal)
	for child := b.FirstChild(); child != nil; child = child.NextSibling() {
		main := child.PrefSize(state).Axis(horizontal)
		if main == Unconstrained {
			main = 0
		}
		cross := MinExtent(avail, child.MaxSize(state).Axis(!horizontal))
		cross = MaxExtent(cross, child.MinSize(state).Axis(!horizontal))

		if horizontal {
			child.Bounds = Rect{X: b.Bounds.X + cursor, Y: b.Bounds.Y, Width: main, Height: cross}
		} else {
			child.Bounds = Rect{X: b.Bounds.X, Y: b.Bounds.Y + cursor, Width: cross, Height: main}
		}
		cursor += main
		child.DoLayout(state)
	}
}

// ChildAddedOrRemoved invalidates the box; the sprocket keeps no caches.
func (Sprocket) ChildAddedOrRemoved(b *Box, state *LayoutState) {
	b.MarkDirty()
}
