package learn

import "github.com/katalvlaran/layoutsynth/constraint"

// fitSimple accepts the exact rational implied by the minimal required
// samples and demands every other sample agree exactly — no tolerance,
// no rational-approximation search.
func fitSimple(tmpl constraint.Constraint, samples []pairSample, cfg Config) (constraint.Candidate, bool, error) {
	a, b, _, err := computeExact(tmpl.Kind, samples)
	if err != nil {
		return constraint.Candidate{}, false, err
	}
	for _, s := range samples {
		if !formHolds(tmpl.Kind, a, b, s, zeroTol) {
			return constraint.Candidate{}, false, nil
		}
	}
	bound := tmpl.Subst(a, b, len(samples))
	score := Score(scoreSubject(tmpl.Kind, a, b), len(samples))
	return constraint.Candidate{Constraint: bound, Score: score}, true, nil
}
