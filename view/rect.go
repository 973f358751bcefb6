package view

import "math/big"

// Rect is an axis-aligned rectangle in exact rational coordinates.
// Invariant: Left <= Right and Top <= Bottom. The invariant is a soft one:
// it is checked at construction time (NewRect) but never re-enforced
// afterward — the solver's own containment axioms are what ultimately
// keep re-solved layouts sane.
type Rect struct {
	Left, Top, Right, Bottom *big.Rat
}

// NewRect builds a Rect from four rationals, returning ErrInvertedRect if
// left > right or top > bottom.
func NewRect(left, top, right, bottom *big.Rat) (Rect, error) {
	if left.Cmp(right) > 0 || top.Cmp(bottom) > 0 {
		return Rect{}, ErrInvertedRect
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}, nil
}

// Width returns Right - Left.
func (r Rect) Width() *big.Rat {
	return new(big.Rat).Sub(r.Right, r.Left)
}

// Height returns Bottom - Top.
func (r Rect) Height() *big.Rat {
	return new(big.Rat).Sub(r.Bottom, r.Top)
}

// CenterX returns (Left + Right) / 2.
func (r Rect) CenterX() *big.Rat {
	sum := new(big.Rat).Add(r.Left, r.Right)
	return sum.Quo(sum, big.NewRat(2, 1))
}

// CenterY returns (Top + Bottom) / 2.
func (r Rect) CenterY() *big.Rat {
	sum := new(big.Rat).Add(r.Top, r.Bottom)
	return sum.Quo(sum, big.NewRat(2, 1))
}

// Field returns the rational value of the given attribute on r.
func (r Rect) Field(attr Attribute) *big.Rat {
	switch attr {
	case AttrLeft:
		return new(big.Rat).Set(r.Left)
	case AttrTop:
		return new(big.Rat).Set(r.Top)
	case AttrRight:
		return new(big.Rat).Set(r.Right)
	case AttrBottom:
		return new(big.Rat).Set(r.Bottom)
	case AttrCenterX:
		return r.CenterX()
	case AttrCenterY:
		return r.CenterY()
	case AttrWidth:
		return r.Width()
	case AttrHeight:
		return r.Height()
	default:
		return nil
	}
}

// ContainsOrTouches reports whether child lies within r, allowing shared
// edges (the soft containment invariant).
func (r Rect) ContainsOrTouches(child Rect) bool {
	return r.Left.Cmp(child.Left) <= 0 &&
		r.Top.Cmp(child.Top) <= 0 &&
		r.Right.Cmp(child.Right) >= 0 &&
		r.Bottom.Cmp(child.Bottom) >= 0
}
