package learn

import "github.com/katalvlaran/layoutsynth/constraint"

// fitHeuristic behaves like fitSimple, except that for mul-only and
// general forms the fitted slope a is first clamped to the nearest
// rational whose denominator does not exceed cfg.MaxDenominator.
// Agreement with every sample is still exact, not
// tolerance-banded — only the representative a is smoothed, never the
// fit check.
func fitHeuristic(tmpl constraint.Constraint, samples []pairSample, cfg Config) (constraint.Candidate, bool, error) {
	a, b, _, err := computeExact(tmpl.Kind, samples)
	if err != nil {
		return constraint.Candidate{}, false, err
	}
	for _, s := range samples {
		if !formHolds(tmpl.Kind, a, b, s, zeroTol) {
			return constraint.Candidate{}, false, nil
		}
	}
	if tmpl.Kind.IsMulOnlyForm() || tmpl.Kind.IsGeneralForm() {
		a = clampDenominator(a, cfg.MaxDenominator)
	}
	bound := tmpl.Subst(a, b, len(samples))
	score := Score(scoreSubject(tmpl.Kind, a, b), len(samples))
	return constraint.Candidate{Constraint: bound, Score: score}, true, nil
}
