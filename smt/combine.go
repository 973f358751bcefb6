package smt

import (
	"math/big"

	"github.com/katalvlaran/layoutsynth/constraint"
)

// DefaultBoundsCombineTolerance is the literal the original combine-bounds
// pass used unexposed; callers may override it
// through pipeline.WithBoundsCombineTolerance.
func DefaultBoundsCombineTolerance() *big.Rat {
	return big.NewRat(5, 1)
}

// combineKey identifies the (Kind, Y, X) triple a Le/Ge pair must share to
// be combine-eligible — same relation, opposite direction.
type combineKey struct {
	Kind constraint.ConstraintKind
	Y    string
	X    string
}

func keyOf(c constraint.Constraint) combineKey {
	k := combineKey{Kind: c.Kind, Y: c.Y.String()}
	if c.X != nil {
		k.X = c.X.String()
	}
	return k
}

// CombineBounds merges an OpLe/OpGe pair on the same (Kind, Y, X) relation
// into a single OpEq constraint whenever their bound terms (A, B) are
// within tolerance of each other, in a "combine bounds" pass. A
// selected set normally carries at most one direction per relation (the
// solver never needs both to express a single layout), but the bound
// pruner can legitimately emit both when min- and max-conformance solves
// settle on complementary inequalities for the same pair of anchors; this
// pass is where those collapse back into the single equality a human
// reading the result would expect.
func CombineBounds(selected []constraint.Constraint, tolerance *big.Rat) []constraint.Constraint {
	if tolerance == nil {
		tolerance = DefaultBoundsCombineTolerance()
	}

	byKey := make(map[combineKey][]int)
	for i, c := range selected {
		if c.Op == constraint.OpLe || c.Op == constraint.OpGe {
			byKey[keyOf(c)] = append(byKey[keyOf(c)], i)
		}
	}

	consumed := make(map[int]bool)
	out := make([]constraint.Constraint, 0, len(selected))

	for _, idxs := range byKey {
		for i := 0; i < len(idxs); i++ {
			if consumed[idxs[i]] {
				continue
			}
			ci := selected[idxs[i]]
			for j := i + 1; j < len(idxs); j++ {
				if consumed[idxs[j]] {
					continue
				}
				cj := selected[idxs[j]]
				if ci.Op == cj.Op {
					continue
				}
				if !withinCombineTolerance(ci.A, cj.A, tolerance) || !withinCombineTolerance(ci.B, cj.B, tolerance) {
					continue
				}
				merged := ci
				merged.Op = constraint.OpEq
				merged.A = averageRat(ci.A, cj.A)
				merged.B = averageRat(ci.B, cj.B)
				merged.SampleCount = ci.SampleCount + cj.SampleCount
				out = append(out, merged)
				consumed[idxs[i]] = true
				consumed[idxs[j]] = true
				break
			}
		}
	}

	for i, c := range selected {
		if !consumed[i] {
			out = append(out, c)
		}
	}
	return out
}

func withinCombineTolerance(a, b, tolerance *big.Rat) bool {
	if a == nil || b == nil {
		return a == b
	}
	diff := new(big.Rat).Sub(a, b)
	diff.Abs(diff)
	return diff.Cmp(tolerance) < 0
}

func averageRat(a, b *big.Rat) *big.Rat {
	sum := new(big.Rat).Add(a, b)
	return sum.Quo(sum, big.NewRat(2, 1))
}
