// internal/document/xul.go
package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/nkrahm/boxgrid/internal/box"
	"github.com/nkrahm/boxgrid/internal/grid"
)

// LoadXUL parses the XML grid dialect and returns the box for the root
// element. Element tags choose the layout manager, attributes are copied
// verbatim onto the box, and the text before the first child element
// becomes the box content.
func LoadXUL(state *box.LayoutState, data []byte) (*box.Box, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing grid document: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, errors.New("grid document has no root element")
	}
	return buildElement(state, root), nil
}

func buildElement(state *box.LayoutState, el *etree.Element) *box.Box {
	tag := strings.ToLower(el.Tag)
	b := box.New(tag, defaultHorizontal(tag))
	for _, attr := range el.Attr {
		b.SetAttr(attr.Key, attr.Value)
	}
	if orient, ok := b.Attr(box.AttrOrient); ok {
		switch strings.ToLower(orient) {
		case "horizontal":
			b.SetHorizontal(true)
		case "vertical":
			b.SetHorizontal(false)
		}
	}
	children := el.ChildElements()
	b.SetLayoutManager(managerFor(tag, len(children) > 0))
	if text := strings.TrimSpace(el.Text()); text != "" {
		b.SetContent(text)
	}
	for _, child := range children {
		b.AppendChild(state, buildElement(state, child))
	}
	return b
}

// managerFor binds a tag to its layout manager. Unbound tags stack their
// children like any plain box; unbound leaves stay unmanaged so the
// measurer sizes their content.
func managerFor(tag string, container bool) box.LayoutManager {
	switch tag {
	case "grid":
		return grid.NewGridLayout()
	case "rows", "columns":
		return grid.NewRowGroupLayout()
	case "row", "column":
		return grid.NewRowLeafLayout()
	case "scrollbox":
		return box.ScrollLayout{}
	}
	if container {
		return box.Sprocket{}
	}
	return nil
}

// defaultHorizontal encodes the dialect's per-tag orientation defaults:
// a <rows> stacks its rows top to bottom while each <row> runs left to
// right, and <columns>/<column> mirror that. Anything else lays out
// horizontally unless its orient attribute says otherwise.
func defaultHorizontal(tag string) bool {
	switch tag {
	case "grid", "rows", "column", "vbox", "scrollbox":
		return false
	case "columns", "row", "hbox":
		return true
	}
	return true
}
