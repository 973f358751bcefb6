package smt

import (
	"context"
	"math/big"

	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/view"
)

// refine runs solveAxis, and, when cfg.Unambig is set, wraps it in the
// CEGIS unambiguity loop: after each solve,
// check whether the selected subset, together with the layout axioms,
// fully determines every target anchor at the middle conformance. If it
// does, the placement is unique and the result is accepted. If it
// doesn't, some other placement of the (unpinned) target anchors also
// satisfies the selection, so the exact selector combination is blocked
// and the search retries, excluding it.
func refine(ctx context.Context, cands []candidateRef, axis Axis, target Target, bounds Bounds, cfg Config, seeds []map[view.AnchorID]*big.Rat) ([]int, error) {
	blocked := make(map[string]bool)
	limit := cfg.MaxRefinements
	if limit <= 0 {
		limit = 1
	}
	for attempt := 0; attempt < limit; attempt++ {
		included, _, err := solveAxis(ctx, cands, axis, target, bounds, cfg.Unambig, blocked, seeds)
		if err != nil {
			return nil, err
		}
		if !cfg.Unambig {
			return included, nil
		}

		selected := make([]constraint.Constraint, len(included))
		for i, idx := range included {
			selected[i] = cands[idx].Constraint
		}
		mid := constraint.Midpoint(bounds.Lo, bounds.Hi)
		var seed map[view.AnchorID]*big.Rat
		if seeds != nil && len(seeds) > 1 {
			seed = seeds[1] // Conformances() order is [lo, mid, hi].
		}
		known := valuationsAt(axis, target, mid, selected, seed)
		if fullyDetermined(known, axis, target) {
			return included, nil
		}
		blocked[comboKey(included)] = true
	}
	return nil, ErrAmbiguityLimitExceeded
}
