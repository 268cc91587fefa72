// internal/document/html_test.go
package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nkrahm/boxgrid/internal/box"
	"github.com/nkrahm/boxgrid/internal/document"
	"github.com/nkrahm/boxgrid/internal/grid"
)

func TestLoadHTMLBuildsGridStructure(t *testing.T) {
	state := newState(t)
	src := `<html><body><table id="t">
  <thead><tr><th>h1</th><th>h2</th></tr></thead>
  <tbody><tr><td>aa</td><td>bbbb</td></tr><tr><td>c</td></tr></tbody>
</table></body></html>`
	root, err := document.LoadHTML(state, []byte(src))
	require.NoError(t, err)

	assert.Equal(t, "grid", root.Tag())
	assert.IsType(t, &grid.GridLayout{}, root.LayoutManager())
	id, ok := root.Attr("id")
	require.True(t, ok)
	assert.Equal(t, "t", id)

	// Both sections nest under one enclosing rows box.
	require.Equal(t, []string{"rows"}, childTags(root))
	rows := childAt(t, root, 0)
	assert.IsType(t, &grid.RowGroupLayout{}, rows.LayoutManager())
	assert.False(t, rows.IsHorizontal())
	assert.Equal(t, []string{"thead", "tbody"}, childTags(rows))

	thead := childAt(t, rows, 0)
	assert.IsType(t, &grid.RowGroupLayout{}, thead.LayoutManager())
	headerRow := childAt(t, thead, 0)
	assert.IsType(t, &grid.RowLeafLayout{}, headerRow.LayoutManager())
	assert.True(t, headerRow.IsHorizontal())
	assert.Equal(t, []string{"th", "th"}, childTags(headerRow))
	assert.Equal(t, "h1", childAt(t, headerRow, 0).Content())
	assert.Equal(t, "h2", childAt(t, headerRow, 1).Content())

	tbody := childAt(t, rows, 1)
	assert.Equal(t, 2, tbody.ChildCount())
	assert.Equal(t, "aa", childAt(t, childAt(t, tbody, 0), 0).Content())
	assert.Equal(t, "c", childAt(t, childAt(t, tbody, 1), 0).Content())

	ctx, err := grid.ContextFor(root)
	require.NoError(t, err)
	assert.Equal(t, 3, ctx.RowCount(state, true))
	assert.Equal(t, 2, ctx.ColumnCount(state, true))
	assert.Equal(t, 0, ctx.ExtraRowCount(state, true))
	assert.Equal(t, 2, ctx.ExtraColumnCount(state, true))
	assert.Equal(t, box.NewSize(66, 54), ctx.PrefSize(state))
}

func TestLoadHTMLColgroupDeclaresColumns(t *testing.T) {
	state := newState(t)
	src := `<table>
  <colgroup><col width="30"/><col width="50"/></colgroup>
  <tr><td>aa</td><td>bbbb</td></tr>
  <tr><td>c</td></tr>
</table>`
	root, err := document.LoadHTML(state, []byte(src))
	require.NoError(t, err)

	require.Equal(t, []string{"columns", "rows"}, childTags(root))
	columns := childAt(t, root, 0)
	assert.True(t, columns.IsHorizontal())
	colgroup := childAt(t, columns, 0)
	assert.IsType(t, &grid.RowGroupLayout{}, colgroup.LayoutManager())
	assert.Equal(t, []string{"col", "col"}, childTags(colgroup))
	assert.IsType(t, &grid.RowLeafLayout{}, childAt(t, colgroup, 0).LayoutManager())

	ctx, err := grid.ContextFor(root)
	require.NoError(t, err)
	assert.Equal(t, 2, ctx.RowCount(state, true))
	assert.Equal(t, 2, ctx.ColumnCount(state, true))
	assert.Equal(t, 0, ctx.ExtraColumnCount(state, true))

	// Declared column widths hold against narrower cells.
	assert.Equal(t, box.Extent(30), ctx.PrefRowHeight(state, 0, false))
	assert.Equal(t, box.Extent(50), ctx.PrefRowHeight(state, 1, false))
	assert.Equal(t, box.NewSize(80, 36), ctx.PrefSize(state))
}

func TestLoadHTMLCaptionStaysOutOfRows(t *testing.T) {
	state := newState(t)
	root, err := document.LoadHTML(state, []byte(`<table><caption>title</caption><tr><td>x</td></tr></table>`))
	require.NoError(t, err)

	require.Equal(t, []string{"caption", "rows"}, childTags(root))
	caption := childAt(t, root, 0)
	assert.Nil(t, caption.LayoutManager())
	assert.Equal(t, "title", caption.Content())

	ctx, err := grid.ContextFor(root)
	require.NoError(t, err)
	assert.Equal(t, 1, ctx.RowCount(state, true))
}

func TestLoadHTMLImpliedSections(t *testing.T) {
	state := newState(t)

	// The HTML parser itself supplies the implied tbody and tr, so bare
	// rows and bare cells still arrive as a complete section tree.
	root, err := document.LoadHTML(state, []byte(`<table><tr><td>a</td></tr></table>`))
	require.NoError(t, err)
	rows := childAt(t, root, 0)
	require.Equal(t, []string{"tbody"}, childTags(rows))
	require.Equal(t, []string{"tr"}, childTags(childAt(t, rows, 0)))

	root, err = document.LoadHTML(state, []byte(`<table><td>a</td><td>b</td></table>`))
	require.NoError(t, err)
	ctx, err := grid.ContextFor(root)
	require.NoError(t, err)
	assert.Equal(t, 1, ctx.RowCount(state, true))
	assert.Equal(t, 2, ctx.ColumnCount(state, true))
}

func TestLoadHTMLNestedMarkupFlattens(t *testing.T) {
	state := newState(t)
	root, err := document.LoadHTML(state, []byte(`<table><tr><td>a <b>bold</b> z</td><td><span>only</span></td></tr></table>`))
	require.NoError(t, err)

	tr := childAt(t, childAt(t, childAt(t, root, 0), 0), 0)
	assert.Equal(t, "a bold z", childAt(t, tr, 0).Content())
	assert.Equal(t, "only", childAt(t, tr, 1).Content())
}

func TestLoadHTMLFirstTableWins(t *testing.T) {
	state := newState(t)
	src := `<div><table><tr><td>first</td></tr></table></div><table><tr><td>second</td></tr></table>`
	root, err := document.LoadHTML(state, []byte(src))
	require.NoError(t, err)

	tr := childAt(t, childAt(t, childAt(t, root, 0), 0), 0)
	assert.Equal(t, "first", childAt(t, tr, 0).Content())
}

func TestLoadHTMLNoTable(t *testing.T) {
	state := newState(t)
	_, err := document.LoadHTML(state, []byte(`<html><body><p>no tables here</p></body></html>`))
	assert.ErrorIs(t, err, document.ErrNoGrid)
}

func TestLoadHTMLEmptyTable(t *testing.T) {
	state := newState(t)
	root, err := document.LoadHTML(state, []byte(`<table></table>`))
	require.NoError(t, err)
	assert.Equal(t, 0, root.ChildCount())

	ctx, err := grid.ContextFor(root)
	require.NoError(t, err)
	assert.Equal(t, 0, ctx.RowCount(state, true))
	assert.Equal(t, 0, ctx.ColumnCount(state, true))
	assert.Equal(t, box.Size{}, ctx.PrefSize(state))
}

func TestLoadHTMLEndToEndLayout(t *testing.T) {
	state := newState(t)
	src := `<table>
  <colgroup><col width="30"/><col width="50"/></colgroup>
  <tr><td>aa</td><td>bbbb</td></tr>
  <tr><td>c</td></tr>
</table>`
	root, err := document.LoadHTML(state, []byte(src))
	require.NoError(t, err)

	root.Bounds = box.Rect{X: 0, Y: 0, Width: 80, Height: 36}
	root.DoLayout(state)

	rows := childAt(t, root, 1)
	assert.Equal(t, box.Rect{X: 0, Y: 0, Width: 80, Height: 36}, rows.Bounds)

	tbody := childAt(t, rows, 0)
	tr0, tr1 := childAt(t, tbody, 0), childAt(t, tbody, 1)
	assert.Equal(t, box.Rect{X: 0, Y: 0, Width: 80, Height: 18}, tr0.Bounds)
	assert.Equal(t, box.Rect{X: 0, Y: 18, Width: 80, Height: 18}, tr1.Bounds)

	assert.Equal(t, box.Rect{X: 0, Y: 0, Width: 30, Height: 18}, childAt(t, tr0, 0).Bounds)
	assert.Equal(t, box.Rect{X: 30, Y: 0, Width: 50, Height: 18}, childAt(t, tr0, 1).Bounds)
	assert.Equal(t, box.Rect{X: 0, Y: 18, Width: 30, Height: 18}, childAt(t, tr1, 0).Bounds)

	colgroup := childAt(t, childAt(t, root, 0), 0)
	assert.Equal(t, box.Rect{X: 0, Y: 0, Width: 30, Height: 36}, childAt(t, colgroup, 0).Bounds)
	assert.Equal(t, box.Rect{X: 30, Y: 0, Width: 50, Height: 36}, childAt(t, colgroup, 1).Bounds)
}
