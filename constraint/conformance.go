package constraint

import "math/big"

// Conformance is the outer-rectangle "size context" sampled during SMT
// solving: (w, h, x, y) of rationals.
type Conformance struct {
	W, H, X, Y *big.Rat
}

// NewConformance builds a Conformance from four rationals.
func NewConformance(w, h, x, y *big.Rat) Conformance {
	return Conformance{W: w, H: h, X: x, Y: y}
}

// Midpoint returns the pointwise average of lo and hi, used as the third
// conformance the SMT driver samples from the range alongside the two
// endpoints.
func Midpoint(lo, hi Conformance) Conformance {
	mid := func(a, b *big.Rat) *big.Rat {
		sum := new(big.Rat).Add(a, b)
		return sum.Quo(sum, big.NewRat(2, 1))
	}
	return Conformance{
		W: mid(lo.W, hi.W),
		H: mid(lo.H, hi.H),
		X: mid(lo.X, hi.X),
		Y: mid(lo.Y, hi.Y),
	}
}

// Rect derives the outer rectangle (left=x, top=y, right=x+w, bottom=y+h)
// implied by this conformance.
func (c Conformance) Rect() (left, top, right, bottom *big.Rat) {
	left = new(big.Rat).Set(c.X)
	top = new(big.Rat).Set(c.Y)
	right = new(big.Rat).Add(c.X, c.W)
	bottom = new(big.Rat).Add(c.Y, c.H)
	return
}
