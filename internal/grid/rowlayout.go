// internal/grid/rowlayout.go
package grid

import (
	"github.com/nkrahm/boxgrid/internal/box"
)

// rowLayout carries the behavior every row-ish layout manager shares:
// the stock stacking computation for sizes and placement, and the
// plumbing that resolves which grid a box belongs to and at which index
// its rows begin.
type rowLayout struct {
	box.Sprocket
}

// ParentGridPart returns the nearest enclosing part and its box.
func (rowLayout) ParentGridPart(b *box.Box) (Part, *box.Box) {
	return parentGridPart(b)
}

// LocateGrid implements the two-sided location protocol. Asking on our
// own behalf (requestor == nil) walks upward until some ancestor part
// answers. Answering for a child (requestor != nil) sums the rows of the
// siblings preceding it — a part contributes its own row count, a plain
// child contributes one future bogus row — and adds our own base index.
func (l rowLayout) LocateGrid(b *box.Box, state *box.LayoutState, requestor *box.Box) (*Grid, int) {
	if b == nil {
		return nil, -1
	}
	if requestor == nil {
		part, parentBox := parentGridPart(b)
		if part == nil {
			return nil, -1
		}
		return part.LocateGrid(parentBox, state, b)
	}

	offset := 0
	found := false
	for child := b.FirstChild(); child != nil; child = child.NextSibling() {
		rc := resolveChild(child, state)
		if rc.Box == requestor {
			found = true
			break
		}
		if rc.Part != nil {
			offset += rc.Part.RowCount(rc.Box, state)
		} else {
			offset++
		}
	}
	if !found {
		return nil, -1
	}
	g, base := l.LocateGrid(b, state, nil)
	if g == nil {
		return nil, -1
	}
	return g, base + offset
}
