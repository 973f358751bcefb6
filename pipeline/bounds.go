package pipeline

import (
	"math/big"

	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/view"
)

// deriveBounds computes the min and max Conformance the pruner samples
// from: the componentwise min/max, across every example's root rect, of
// (width, height, left, top).
func deriveBounds(examples []*view.Example) (lo, hi constraint.Conformance) {
	root := examples[0].Root.Rect
	minW, maxW := root.Width(), root.Width()
	minH, maxH := root.Height(), root.Height()
	minX, maxX := new(big.Rat).Set(root.Left), new(big.Rat).Set(root.Left)
	minY, maxY := new(big.Rat).Set(root.Top), new(big.Rat).Set(root.Top)

	for _, ex := range examples[1:] {
		r := ex.Root.Rect
		if w := r.Width(); w.Cmp(minW) < 0 {
			minW = w
		} else if w.Cmp(maxW) > 0 {
			maxW = w
		}
		if h := r.Height(); h.Cmp(minH) < 0 {
			minH = h
		} else if h.Cmp(maxH) > 0 {
			maxH = h
		}
		if r.Left.Cmp(minX) < 0 {
			minX = new(big.Rat).Set(r.Left)
		} else if r.Left.Cmp(maxX) > 0 {
			maxX = new(big.Rat).Set(r.Left)
		}
		if r.Top.Cmp(minY) < 0 {
			minY = new(big.Rat).Set(r.Top)
		} else if r.Top.Cmp(maxY) > 0 {
			maxY = new(big.Rat).Set(r.Top)
		}
	}

	lo = constraint.NewConformance(minW, minH, minX, minY)
	hi = constraint.NewConformance(maxW, maxH, maxX, maxY)
	return lo, hi
}
