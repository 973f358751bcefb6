package learn

import "math/big"

// SimplestRational returns the rational of lowest Stern–Brocot depth
// lying in the closed interval [lo, hi], via bounded Stern–Brocot-tree
// descent (the classical "simplest fraction in a range" algorithm). Used
// by the noise-tolerant ratio fit to pick a representative `a` from a
// noisy observation band rather than keeping the raw, usually-ugly
// exact quotient.
func SimplestRational(lo, hi *big.Rat) *big.Rat {
	if lo.Cmp(hi) > 0 {
		lo, hi = hi, lo
	}
	switch {
	case lo.Sign() >= 0:
		return simplestNonNegative(lo, hi)
	case hi.Sign() <= 0:
		negLo := new(big.Rat).Neg(hi)
		negHi := new(big.Rat).Neg(lo)
		r := simplestNonNegative(negLo, negHi)
		return r.Neg(r)
	default:
		// The interval straddles zero; zero is always the simplest
		// rational available.
		return big.NewRat(0, 1)
	}
}

// simplestNonNegative implements the descent for 0 <= lo <= hi: if an
// integer lies in the range, it is simplest; otherwise recurse on the
// reciprocal of the fractional remainder, which is how the Stern–Brocot
// tree represents the next level of mediants.
func simplestNonNegative(lo, hi *big.Rat) *big.Rat {
	floorLo := floorRat(lo)
	floorLoRat := new(big.Rat).SetInt(floorLo)
	if floorLoRat.Cmp(lo) == 0 {
		return floorLoRat
	}
	next := new(big.Int).Add(floorLo, big.NewInt(1))
	nextRat := new(big.Rat).SetInt(next)
	if nextRat.Cmp(hi) <= 0 {
		return nextRat
	}

	loFrac := new(big.Rat).Sub(lo, floorLoRat)
	hiFrac := new(big.Rat).Sub(hi, floorLoRat)
	// The fractional parts are in (0,1]; the next mediant level inverts
	// them, swapping which bound is which.
	invLo := new(big.Rat).Inv(hiFrac)
	invHi := new(big.Rat).Inv(loFrac)
	inner := simplestNonNegative(invLo, invHi)

	result := new(big.Rat).Inv(inner)
	result.Add(result, floorLoRat)
	return result
}

// floorRat returns the floor of r as a big.Int, using Euclidean
// division (big.Int.DivMod always yields a non-negative remainder since
// a big.Rat's denominator is always positive, which is exactly floor
// division semantics).
func floorRat(r *big.Rat) *big.Int {
	q, m := new(big.Int), new(big.Int)
	q.DivMod(r.Num(), r.Denom(), m)
	return q
}
