// internal/box/scroll.go
package box

// Scroller is the capability exposed by scroll-frame layout managers.
// Scroll frames are layout-transparent wrappers: other components reason
// about the scrolled content, not the wrapper.
type Scroller interface {
	// ScrolledBox returns the content box the wrapper scrolls, nil when
	// the wrapper is empty.
	ScrolledBox(b *Box) *Box
}

// ScrollLayout wraps a single content child and viewports it. Sizes pass
// through to the content except the minimum, which collapses because
// scrolling absorbs overflow.
type ScrollLayout struct{}

var _ Scroller = ScrollLayout{}

// ScrolledBox returns the wrapped content box, nil for an empty wrapper.
func (ScrollLayout) ScrolledBox(b *Box) *Box {
	if b == nil {
		return nil
	}
	return b.FirstChild()
}

// GetPrefSize passes through to the scrolled content.
func (s ScrollLayout) GetPrefSize(b *Box, state *LayoutState) Size {
	if content := s.ScrolledBox(b); content != nil {
		return content.PrefSize(state)
	}
	return Size{}
}

// GetMinSize collapses to zero; a scroll frame can always shrink.
func (ScrollLayout) GetMinSize(b *Box, state *LayoutState) Size {
	return Size{}
}

// GetMaxSize passes through to the scrolled content.
func (s ScrollLayout) GetMaxSize(b *Box, state *LayoutState) Size {
	if content := s.ScrolledBox(b); content != nil {
		return content.MaxSize(state)
	}
	return UnconstrainedSize()
}

// Layout gives the content the whole viewport rectangle.
func (s ScrollLayout) Layout(b *Box, state *LayoutState) {
	content := s.ScrolledBox(b)
	if content == nil {
		return
	}
	content.Bounds = b.Bounds
	content.DoLayout(state)
}

// ChildAddedOrRemoved invalidates the wrapper.
func (ScrollLayout) ChildAddedOrRemoved(b *Box, state *LayoutState) {
	b.MarkDirty()
}
