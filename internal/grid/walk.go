// internal/grid/walk.go
package grid

import (
	"go.uber.org/zap"

	"github.com/nkrahm/boxgrid/internal/box"
)

// childKind discriminates how a traversal treats one child after
// capability resolution.
type childKind int

const (
	// plainBox is an ordinary child: it becomes one synthetic row.
	plainBox childKind = iota
	// scrollWrapper is a transparent wrapper whose content is plain.
	scrollWrapper
	// monument is a child whose (resolved) manager joins the grid
	// protocol; traversal delegates to it.
	monument
)

// resolvedChild is the result of resolving one child exactly once. Origin
// is the sibling-chain box iteration advances from; Box is the box all
// capability reasoning applies to. They differ only across a scroll
// wrapper.
type resolvedChild struct {
	Origin *box.Box
	Box    *box.Box
	Kind   childKind
	Part   Part
}

// resolveChild applies the two wrapper rules to a child: scroll-frame
// pass-through, then monument detection on whatever that yielded.
//
// A scrollable wrapper with no scrolled content is malformed; the walk
// reports it and deliberately falls back to the wrapper itself as the
// resolved box, so counts stay stable instead of guessing.
func resolveChild(child *box.Box, state *box.LayoutState) resolvedChild {
	rc := resolvedChild{Origin: child, Box: child, Kind: plainBox}
	if child == nil {
		return rc
	}
	if s, ok := child.LayoutManager().(box.Scroller); ok {
		if content := s.ScrolledBox(child); content != nil {
			rc.Box = content
			rc.Kind = scrollWrapper
		} else if state != nil && state.Logger != nil {
			state.Logger.Error("scrollable wrapper has no scrolled content, treating it as a plain box",
				zap.String("tag", child.Tag()))
		}
	}
	if part, ok := rc.Box.LayoutManager().(Part); ok {
		rc.Kind = monument
		rc.Part = part
	}
	return rc
}
