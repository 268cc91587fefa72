// internal/box/measure.go
package box

import "unicode/utf8"

// Text measurement constants. Real text shaping is out of scope; the
// heuristic is deterministic so layout results are reproducible.
const (
	charWidth   = 7
	lineHeight  = 18
	textPadding = 6
)

// Measurer supplies intrinsic sizes for plain content boxes. It is the
// seam where a host with real font metrics plugs in.
type Measurer interface {
	Measure(b *Box) Size
}

// TextMeasurer estimates a leaf's size from its text content using fixed
// per-character metrics. Boxes without content get a zero size and rely
// on attributes. The zero value uses the package defaults; positive
// field values override them.
type TextMeasurer struct {
	CharWidth   int
	LineHeight  int
	TextPadding int
}

var _ Measurer = TextMeasurer{}

// Measure returns the estimated content size of b.
func (m TextMeasurer) Measure(b *Box) Size {
	text := b.Content()
	if text == "" {
		if v, ok := b.Attr(AttrValue); ok {
			text = v
		}
	}
	if text == "" {
		return Size{}
	}
	cw, lh, pad := charWidth, lineHeight, textPadding
	if m.CharWidth > 0 {
		cw = m.CharWidth
	}
	if m.LineHeight > 0 {
		lh = m.LineHeight
	}
	if m.TextPadding > 0 {
		pad = m.TextPadding
	}
	n := utf8.RuneCountInString(text)
	return Size{
		Width:  Extent(n*cw + 2*pad),
		Height: Extent(lh),
	}
}

// FixedMeasurer returns the same size for every leaf. Useful in tests
// and for hosts that treat leaves as uniform placeholders.
type FixedMeasurer struct {
	Size Size
}

// Measure returns the fixed size.
func (m FixedMeasurer) Measure(b *Box) Size {
	return m.Size
}
