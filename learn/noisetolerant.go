package learn

import (
	"math/big"

	"github.com/katalvlaran/layoutsynth/constraint"
)

// fitNoiseTolerant is the canonical learning strategy.
// It dispatches on the template's form: constant/offset forms use banded
// equality directly on the observed b values, mul-only forms search a
// Stern–Brocot neighbourhood of the observed ratio, and the general form
// solves the 2x2 system exactly and verifies the remainder within
// tolerance.
func fitNoiseTolerant(tmpl constraint.Constraint, samples []pairSample, cfg Config) (constraint.Candidate, bool, error) {
	if len(samples) == 0 {
		return constraint.Candidate{}, false, nil
	}
	tol := cfg.Tolerance
	if tol == nil {
		tol = zeroTol
	}

	switch {
	case tmpl.Kind.IsConstantForm(), tmpl.Kind.IsAddOnlyForm():
		return fitBandedForm(tmpl, samples, tol)
	case tmpl.Kind.IsMulOnlyForm():
		return fitRatioForm(tmpl, samples, tol)
	default:
		return fitGeneralForm(tmpl, samples, tol)
	}
}

// fitBandedForm handles Constant (`y=b`) and Add-only (`y=x+b`) forms:
// every example's implied b must lie within tol of the first, relaxed
// from an exact-match requirement to a tolerance band since
// noise-tolerant learning is specifically meant to absorb debug_noise).
func fitBandedForm(tmpl constraint.Constraint, samples []pairSample, tol *big.Rat) (constraint.Candidate, bool, error) {
	a, b, _, err := computeExact(tmpl.Kind, samples)
	if err != nil {
		return constraint.Candidate{}, false, err
	}
	for _, s := range samples {
		if !formHolds(tmpl.Kind, a, b, s, tol) {
			return constraint.Candidate{}, false, nil
		}
	}
	bound := tmpl.Subst(a, b, len(samples))
	score := Score(scoreSubject(tmpl.Kind, a, b), len(samples))
	return constraint.Candidate{Constraint: bound, Score: score}, true, nil
}

// fitRatioForm handles Mul-only forms (`y=a*x`): it searches the
// Stern–Brocot neighbourhood of the first sample's exact ratio within
// tol for the simplest rational a, then requires every sample to fit
// that single a within tol.
func fitRatioForm(tmpl constraint.Constraint, samples []pairSample, tol *big.Rat) (constraint.Candidate, bool, error) {
	s0 := samples[0]
	if s0.X.Sign() == 0 {
		return constraint.Candidate{}, false, ErrDivisionByZero
	}
	target := new(big.Rat).Quo(s0.Y, s0.X)
	lo := new(big.Rat).Sub(target, tol)
	hi := new(big.Rat).Add(target, tol)
	a := target
	if tol.Sign() > 0 {
		a = SimplestRational(lo, hi)
	}
	b := big.NewRat(0, 1)

	for _, s := range samples {
		if s.X.Sign() == 0 {
			return constraint.Candidate{}, false, ErrDivisionByZero
		}
		if !formHolds(tmpl.Kind, a, b, s, tol) {
			return constraint.Candidate{}, false, nil
		}
	}
	bound := tmpl.Subst(a, b, len(samples))
	score := Score(a, len(samples))
	return constraint.Candidate{Constraint: bound, Score: score}, true, nil
}

// fitGeneralForm handles the General form (`y=a*x+b`, both free): solve
// the 2x2 system exactly from two distinct-x samples, then verify the
// remaining samples fit within tol.
func fitGeneralForm(tmpl constraint.Constraint, samples []pairSample, tol *big.Rat) (constraint.Candidate, bool, error) {
	a, b, _, err := computeExact(tmpl.Kind, samples)
	if err != nil {
		return constraint.Candidate{}, false, err
	}
	for _, s := range samples {
		if !formHolds(tmpl.Kind, a, b, s, tol) {
			return constraint.Candidate{}, false, nil
		}
	}
	bound := tmpl.Subst(a, b, len(samples))
	score := Score(scoreSubject(tmpl.Kind, a, b), len(samples))
	return constraint.Candidate{Constraint: bound, Score: score}, true, nil
}
