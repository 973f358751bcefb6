package learn

import "math/big"

// withinTolerance reports whether a and b differ by no more than tol,
// inclusive — the banded-equality comparator used by noise-tolerant
// learning and by debug_noise-injected inputs. This is the simplest,
// zero-length-alignment
// special case, a single point compared against a single point rather
// than a warp path across two sequences.
func withinTolerance(a, b, tol *big.Rat) bool {
	diff := new(big.Rat).Sub(a, b)
	diff.Abs(diff)
	return diff.Cmp(tol) <= 0
}
