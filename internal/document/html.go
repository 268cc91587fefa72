// internal/document/html.go
package document

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/nkrahm/boxgrid/internal/box"
	"github.com/nkrahm/boxgrid/internal/grid"
)

// LoadHTML parses an HTML document and rewrites its first table into a
// grid box tree. The table becomes the grid; thead, tbody and tfoot
// become nested row groups under one enclosing rows box; colgroup and
// col become column groups the same way; tr elements become leaf rows
// and their cells become content boxes. The returned box is the grid
// itself.
//
// html.Parse already normalizes table markup (stray rows get an implied
// tbody, stray cells an implied tr), so the walk below only deals with
// the shapes the parser can produce.
func LoadHTML(state *box.LayoutState, data []byte) (*box.Box, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing table document: %w", err)
	}
	table := findTable(doc)
	if table == nil {
		return nil, fmt.Errorf("table document: %w", ErrNoGrid)
	}
	return buildTable(state, table), nil
}

func findTable(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, "table") {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTable(c); t != nil {
			return t
		}
	}
	return nil
}

// buildTable converts one table element. A grid binds a single group
// per axis, so every row section nests under one enclosing rows box and
// every colgroup under one enclosing columns box; the groups delegate
// to their nested sections from there. Anything else the parser left as
// a table child (caption, script and the like) rides along as a plain
// child of the grid and contributes no track.
func buildTable(state *box.LayoutState, table *html.Node) *box.Box {
	gridBox := box.New("grid", false)
	gridBox.SetLayoutManager(grid.NewGridLayout())
	copyNodeAttrs(gridBox, table)

	var rows, columns *box.Box
	ensureRows := func() *box.Box {
		if rows == nil {
			rows = box.New("rows", false)
			rows.SetLayoutManager(grid.NewRowGroupLayout())
			gridBox.AppendChild(state, rows)
		}
		return rows
	}
	ensureColumns := func() *box.Box {
		if columns == nil {
			columns = box.New("columns", true)
			columns.SetLayoutManager(grid.NewRowGroupLayout())
			gridBox.AppendChild(state, columns)
		}
		return columns
	}

	for c := table.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch strings.ToLower(c.Data) {
		case "thead", "tbody", "tfoot":
			ensureRows().AppendChild(state, buildSection(state, c))
		case "colgroup":
			ensureColumns().AppendChild(state, buildColumnGroup(state, c))
		default:
			gridBox.AppendChild(state, buildCell(c))
		}
	}
	return gridBox
}

// buildSection converts thead, tbody or tfoot. Non-row children (the
// parser admits script, style and template here) become plain boxes,
// which the grid treats as synthesized rows.
func buildSection(state *box.LayoutState, sec *html.Node) *box.Box {
	b := box.New(strings.ToLower(sec.Data), false)
	b.SetLayoutManager(grid.NewRowGroupLayout())
	copyNodeAttrs(b, sec)
	for c := sec.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if strings.EqualFold(c.Data, "tr") {
			b.AppendChild(state, buildRow(state, c))
		} else {
			b.AppendChild(state, buildCell(c))
		}
	}
	return b
}

// buildColumnGroup converts a colgroup into a nested column group whose
// col children are childless leaf columns. A col carries no cells of
// its own; its width attribute still sizes the track it declares. The
// span attribute is copied but not expanded.
func buildColumnGroup(state *box.LayoutState, cg *html.Node) *box.Box {
	b := box.New("colgroup", true)
	b.SetLayoutManager(grid.NewRowGroupLayout())
	copyNodeAttrs(b, cg)
	for c := cg.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if strings.EqualFold(c.Data, "col") {
			col := box.New("col", false)
			col.SetLayoutManager(grid.NewRowLeafLayout())
			copyNodeAttrs(col, c)
			b.AppendChild(state, col)
		} else {
			b.AppendChild(state, buildCell(c))
		}
	}
	return b
}

func buildRow(state *box.LayoutState, tr *html.Node) *box.Box {
	b := box.New("tr", true)
	b.SetLayoutManager(grid.NewRowLeafLayout())
	copyNodeAttrs(b, tr)
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		b.AppendChild(state, buildCell(c))
	}
	return b
}

// buildCell flattens one element into a leaf box: its attributes carry
// over and all descendant text collapses into the box content.
func buildCell(n *html.Node) *box.Box {
	b := box.New(strings.ToLower(n.Data), true)
	copyNodeAttrs(b, n)
	if text := strings.TrimSpace(collectText(n)); text != "" {
		b.SetContent(text)
	}
	return b
}

func copyNodeAttrs(b *box.Box, n *html.Node) {
	for _, attr := range n.Attr {
		b.SetAttr(attr.Key, attr.Val)
	}
}

func collectText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(collectText(c))
	}
	return sb.String()
}
