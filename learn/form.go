package learn

import (
	"math/big"

	"github.com/katalvlaran/layoutsynth/constraint"
)

// pairSample is one observed (x, y) pair for a template, taken from a
// single example. X is nil for Constant-form kinds, which carry no X
// anchor.
type pairSample struct {
	X *big.Rat
	Y *big.Rat
}

// zeroTol is the exact-equality tolerance used by the simple and
// heuristic strategies, which never consult Config.Tolerance.
var zeroTol = big.NewRat(0, 1)

// evalForm returns a*x+b, or just b for Constant-form kinds that carry
// no X.
func evalForm(kind constraint.ConstraintKind, a, b, x *big.Rat) *big.Rat {
	if !kind.HasX() {
		return new(big.Rat).Set(b)
	}
	rhs := new(big.Rat).Mul(a, x)
	rhs.Add(rhs, b)
	return rhs
}

// formHolds reports whether sample s is consistent with (a,b) within tol.
func formHolds(kind constraint.ConstraintKind, a, b *big.Rat, s pairSample, tol *big.Rat) bool {
	rhs := evalForm(kind, a, b, s.X)
	return withinTolerance(s.Y, rhs, tol)
}

// scoreSubject picks which of (a,b) should drive the Stern–Brocot depth
// score: for mul-only/general forms the interesting, possibly-irrational
// quantity is the slope a; for constant/add-only forms a is a fixed
// canonical value (0 or 1) carrying no information, so b — the only free
// parameter — is scored instead.
func scoreSubject(kind constraint.ConstraintKind, a, b *big.Rat) *big.Rat {
	if kind.IsConstantForm() || kind.IsAddOnlyForm() {
		return b
	}
	return a
}

// computeExact solves kind's canonical form using the minimum number of
// samples the form requires: one for Constant/Mul-only/Add-only kinds,
// the first two with distinct x values for the General form. It returns
// ErrInsufficientSamples or ErrDivisionByZero rather
// than guessing when the data can't support the form.
func computeExact(kind constraint.ConstraintKind, samples []pairSample) (a, b *big.Rat, used int, err error) {
	switch {
	case kind.IsConstantForm():
		if len(samples) == 0 {
			return nil, nil, 0, ErrInsufficientSamples
		}
		return big.NewRat(0, 1), new(big.Rat).Set(samples[0].Y), 1, nil

	case kind.IsAddOnlyForm():
		if len(samples) == 0 {
			return nil, nil, 0, ErrInsufficientSamples
		}
		s := samples[0]
		b = new(big.Rat).Sub(s.Y, s.X)
		return big.NewRat(1, 1), b, 1, nil

	case kind.IsMulOnlyForm():
		if len(samples) == 0 {
			return nil, nil, 0, ErrInsufficientSamples
		}
		s := samples[0]
		if s.X.Sign() == 0 {
			return nil, nil, 0, ErrDivisionByZero
		}
		a = new(big.Rat).Quo(s.Y, s.X)
		return a, big.NewRat(0, 1), 1, nil

	default: // General form: solve the 2x2 system from two distinct-x samples.
		var first, second *pairSample
		for i := range samples {
			if first == nil {
				first = &samples[i]
				continue
			}
			if samples[i].X.Cmp(first.X) != 0 {
				second = &samples[i]
				break
			}
		}
		if first == nil || second == nil {
			return nil, nil, 0, ErrInsufficientSamples
		}
		dx := new(big.Rat).Sub(second.X, first.X)
		dy := new(big.Rat).Sub(second.Y, first.Y)
		a = new(big.Rat).Quo(dy, dx)
		b = new(big.Rat).Sub(first.Y, new(big.Rat).Mul(a, first.X))
		return a, b, 2, nil
	}
}
