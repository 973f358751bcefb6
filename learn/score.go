package learn

import "math/big"

// sampleCountBoost is the additive per-sample score bonus: sample count
// additively boosts score.
const sampleCountBoost = 0.01

// ContinuedFraction returns the continued-fraction coefficients of r via
// the Euclidean algorithm: r = a0 + 1/(a1 + 1/(a2 + ...)).
func ContinuedFraction(r *big.Rat) []int64 {
	a := new(big.Int).Set(r.Num())
	b := new(big.Int).Set(r.Denom())
	var terms []int64
	for b.Sign() != 0 {
		q, m := new(big.Int), new(big.Int)
		q.DivMod(a, b, m)
		terms = append(terms, q.Int64())
		a, b = b, m
	}
	return terms
}

// SternBrocotDepth is the sum of r's continued-fraction coefficients —
// a "Stern–Brocot depth," a proxy for how far down the
// Stern–Brocot tree r sits (small depth = simple rational).
func SternBrocotDepth(r *big.Rat) int64 {
	var sum int64
	for _, t := range ContinuedFraction(r) {
		if t < 0 {
			t = -t
		}
		sum += t
	}
	return sum
}

// Score combines Stern–Brocot depth (smaller denominator/depth scores
// higher) with a sample-count boost. The result
// normalizes downstream into SMT soft-clause weights (see smt/weights.go).
func Score(representative *big.Rat, sampleCount int) float64 {
	depth := SternBrocotDepth(representative)
	base := 1.0 / (1.0 + float64(depth))
	return base + float64(sampleCount)*sampleCountBoost
}

// clampDenominator returns the best rational approximation of a whose
// denominator does not exceed maxDenom: the nearer to a of the last
// continued-fraction convergent that fits and the largest semiconvergent
// that fits, i.e. the nearest rational with denominator <= maxDenom. If a
// already satisfies the bound, or maxDenom is non-positive (meaning "no
// bound"), a is returned unchanged.
func clampDenominator(a *big.Rat, maxDenom int64) *big.Rat {
	if maxDenom <= 0 || a.Denom().Cmp(big.NewInt(maxDenom)) <= 0 {
		return a
	}

	terms := ContinuedFraction(a)
	hPrev2, hPrev1 := big.NewInt(0), big.NewInt(1)
	kPrev2, kPrev1 := big.NewInt(1), big.NewInt(0)
	maxD := big.NewInt(maxDenom)

	best := new(big.Rat).Set(a)
	for _, t := range terms {
		ti := big.NewInt(t)
		h := new(big.Int).Add(new(big.Int).Mul(ti, hPrev1), hPrev2)
		k := new(big.Int).Add(new(big.Int).Mul(ti, kPrev1), kPrev2)
		if k.Sign() == 0 || k.CmpAbs(maxD) > 0 {
			m := new(big.Int).Quo(new(big.Int).Sub(maxD, kPrev2), kPrev1)
			semi := new(big.Rat).SetFrac(
				new(big.Int).Add(new(big.Int).Mul(m, hPrev1), hPrev2),
				new(big.Int).Add(new(big.Int).Mul(m, kPrev1), kPrev2))
			dSemi := new(big.Rat).Sub(semi, a)
			dBest := new(big.Rat).Sub(best, a)
			if dSemi.Abs(dSemi).Cmp(dBest.Abs(dBest)) < 0 {
				best = semi
			}
			break
		}
		best = new(big.Rat).SetFrac(h, k)
		hPrev2, hPrev1 = hPrev1, h
		kPrev2, kPrev1 = kPrev1, k
	}
	return best
}
