// internal/document/document.go

// Package document builds box trees from markup. Two front ends feed the
// same model: an XML dialect whose <grid>, <rows>, <columns>, <row> and
// <column> elements bind the grid layout managers directly, and HTML
// tables, which are rewritten into the equivalent grid structure.
package document

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nkrahm/boxgrid/internal/box"
	"github.com/nkrahm/boxgrid/internal/grid"
)

// Format selects the front end used to interpret raw document bytes.
type Format int

const (
	// FormatXUL parses the XML grid dialect.
	FormatXUL Format = iota
	// FormatHTML parses an HTML document and adopts its first table.
	FormatHTML
)

var (
	// ErrNoGrid reports a well-formed document with no grid in it.
	ErrNoGrid = errors.New("document contains no grid")
	// ErrUnknownFormat reports a format the loaders cannot dispatch on.
	ErrUnknownFormat = errors.New("unknown document format")
)

func (f Format) String() string {
	switch f {
	case FormatXUL:
		return "xul"
	case FormatHTML:
		return "html"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "xul", "xml":
		return FormatXUL, nil
	case "html", "htm":
		return FormatHTML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatForPath infers the document format from a file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xul", ".xml":
		return FormatXUL, nil
	case ".html", ".htm":
		return FormatHTML, nil
	}
	return 0, fmt.Errorf("%w: no loader for %q", ErrUnknownFormat, path)
}

// Load parses data with the front end named by f and returns the root of
// the resulting box tree. The state is threaded into tree mutations so
// construction-time diagnostics reach its logger; nil is accepted.
func Load(state *box.LayoutState, data []byte, f Format) (*box.Box, error) {
	switch f {
	case FormatXUL:
		return LoadXUL(state, data)
	case FormatHTML:
		return LoadHTML(state, data)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// FindGrid locates the first grid box in document order under root,
// including root itself. It returns ErrNoGrid when the tree has none.
func FindGrid(root *box.Box) (*box.Box, error) {
	if g := findGrid(root); g != nil {
		return g, nil
	}
	return nil, ErrNoGrid
}

func findGrid(b *box.Box) *box.Box {
	if b == nil {
		return nil
	}
	if _, ok := b.LayoutManager().(*grid.GridLayout); ok {
		return b
	}
	for c := b.FirstChild(); c != nil; c = c.NextSibling() {
		if g := findGrid(c); g != nil {
			return g
		}
	}
	return nil
}
