// internal/box/geometry.go
package box

import "math"

// Extent is a one-axis measure in app units. It is either a finite
// non-negative value or the Unconstrained sentinel.
type Extent int

// Unconstrained marks an extent with no upper bound (an intrinsic size).
// It poisons addition: any sum involving it is Unconstrained.
const Unconstrained Extent = math.MaxInt

// IsUnconstrained reports whether e is the sentinel.
func (e Extent) IsUnconstrained() bool {
	return e == Unconstrained
}

// AddExtent returns a+b with saturating sentinel semantics. The sentinel
// is never ordered against finite values, only propagated.
func AddExtent(a, b Extent) Extent {
	if a == Unconstrained || b == Unconstrained {
		return Unconstrained
	}
	return a + b
}

// MaxExtent combines two lower bounds. The sentinel dominates.
func MaxExtent(a, b Extent) Extent {
	if a == Unconstrained || b == Unconstrained {
		return Unconstrained
	}
	if a > b {
		return a
	}
	return b
}

// MinExtent combines two upper bounds. The sentinel is the identity, so a
// finite bound always wins without comparing against the sentinel.
func MinExtent(a, b Extent) Extent {
	if a == Unconstrained {
		return b
	}
	if b == Unconstrained {
		return a
	}
	if a < b {
		return a
	}
	return b
}

// Size is a two-axis extent pair.
type Size struct {
	Width  Extent
	Height Extent
}

// NewSize returns a Size with both axes set.
func NewSize(w, h Extent) Size {
	return Size{Width: w, Height: h}
}

// UnconstrainedSize returns a Size left unbounded on both axes.
func UnconstrainedSize() Size {
	return Size{Width: Unconstrained, Height: Unconstrained}
}

// Axis returns the extent along the given orientation: width when
// horizontal, height otherwise.
func (s Size) Axis(horizontal bool) Extent {
	if horizontal {
		return s.Width
	}
	return s.Height
}

// SetAxis sets the extent along the given orientation.
func (s *Size) SetAxis(horizontal bool, e Extent) {
	if horizontal {
		s.Width = e
	} else {
		s.Height = e
	}
}

// AddToAxis adds e onto the width when horizontal, the height otherwise,
// saturating per AddExtent.
func (s *Size) AddToAxis(e Extent, horizontal bool) {
	if horizontal {
		s.Width = AddExtent(s.Width, e)
	} else {
		s.Height = AddExtent(s.Height, e)
	}
}

// BoundsCheck clamps pref into [min, max]. The max bound applies first so
// a min above max still wins, matching the box model's precedence.
func BoundsCheck(min, pref, max Extent) Extent {
	pref = MinExtent(pref, max)
	return MaxExtent(pref, min)
}

// BoundsCheckSize clamps both axes of pref into [min, max].
func BoundsCheckSize(min, pref, max Size) Size {
	return Size{
		Width:  BoundsCheck(min.Width, pref.Width, max.Width),
		Height: BoundsCheck(min.Height, pref.Height, max.Height),
	}
}

// Rect is a placed rectangle in app units.
type Rect struct {
	X, Y          Extent
	Width, Height Extent
}

// Size returns the rectangle's extents.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}
