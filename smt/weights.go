package smt

import "github.com/katalvlaran/layoutsynth/constraint"

// normalizedWeight implements the soft-clause weight: proportional to
// s/s_min + epsilon. sMin is the minimum score
// across the candidate set being weighted (never zero — Score always
// returns a positive value).
func normalizedWeight(score, sMin, epsilon float64) float64 {
	return score/sMin + epsilon
}

// minScore returns the smallest score among cands, or 1 if cands is
// empty (so normalizedWeight never divides by zero on a degenerate,
// candidate-free axis).
func minScore(cands []constraint.Candidate) float64 {
	min := -1.0
	for _, c := range cands {
		if min < 0 || c.Score < min {
			min = c.Score
		}
	}
	if min <= 0 {
		return 1
	}
	return min
}

// isParentRelative reports whether c is a KindSizeRatio candidate, the
// kind the instantiator only emits between a child's size and its
// parent's — the candidates CEGIS prefers in unambig mode, to nudge the
// search toward determinate layouts. KindPosOffset candidates are never
// counted, including those that offset a child from its parent.
func isParentRelative(c constraint.Constraint) bool {
	return c.Kind == constraint.KindSizeRatio
}
