package smt

import (
	"context"
	"math/big"

	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/view"
)

// Prune selects the subset of candidates that is jointly satisfiable
// with the layout axioms over bounds, maximizing total score. The
// horizontal instance is always solved first so its
// resolved width anchors can be fed as pinned constants into the
// vertical instance's KindSizeAspectRatio candidates (see partition.go).
func Prune(ctx context.Context, candidates []constraint.Candidate, target Target, bounds Bounds, cfg Config) (Result, error) {
	hIdx, vIdx, err := partitionIndices(candidates)
	if err != nil {
		return Result{}, err
	}

	hRefs := toCandidateRefs(candidates, hIdx, cfg)
	hLocalSelected, err := refine(ctx, hRefs, AxisHorizontal, target, bounds, cfg, nil)
	if err != nil {
		return Result{}, err
	}
	hSelected := selectConstraints(candidates, hIdx, hLocalSelected)

	seeds := buildAspectSeeds(target, bounds, hSelected)

	vRefs := toCandidateRefs(candidates, vIdx, cfg)
	vLocalSelected, err := refine(ctx, vRefs, AxisVertical, target, bounds, cfg, seeds)
	if err != nil {
		return Result{}, err
	}
	vSelected := selectConstraints(candidates, vIdx, vLocalSelected)

	selected := make([]constraint.Constraint, 0, len(hSelected)+len(vSelected))
	selected = append(selected, hSelected...)
	selected = append(selected, vSelected...)

	confs := bounds.Conformances()
	minVals := mergeValuations(
		valuationsAt(AxisHorizontal, target, confs[0], hSelected, nil),
		valuationsAt(AxisVertical, target, confs[0], vSelected, seedAt(seeds, 0)),
	)
	maxVals := mergeValuations(
		valuationsAt(AxisHorizontal, target, confs[2], hSelected, nil),
		valuationsAt(AxisVertical, target, confs[2], vSelected, seedAt(seeds, 2)),
	)

	return Result{Selected: selected, MinVals: minVals, MaxVals: maxVals}, nil
}

// partitionIndices is Partition's logic restated over a Candidate list,
// preserving original indices so scores survive the split.
func partitionIndices(candidates []constraint.Candidate) (horizontal, vertical []int, err error) {
	for i, cand := range candidates {
		c := cand.Constraint
		if c.Kind == constraint.KindSizeAspectRatio {
			if c.X == nil || !c.X.Attr.IsHorizontal() {
				continue
			}
			vertical = append(vertical, i)
			continue
		}
		if c.Y.Attr.IsHorizontal() {
			if c.X != nil && !c.X.Attr.IsHorizontal() {
				return nil, nil, ErrAxisAmbiguous
			}
			horizontal = append(horizontal, i)
		} else {
			if c.X != nil && c.X.Attr.IsHorizontal() {
				return nil, nil, ErrAxisAmbiguous
			}
			vertical = append(vertical, i)
		}
	}
	return horizontal, vertical, nil
}

// toCandidateRefs builds the solver's working weight for each candidate
// at idx: its learner score normalized against the smallest score in
// candidates (normalizedWeight), boosted by cfg.ParentRelativeBias when
// unambig mode is active and isParentRelative accepts the candidate.
func toCandidateRefs(candidates []constraint.Candidate, idx []int, cfg Config) []candidateRef {
	refs := make([]candidateRef, len(idx))
	sMin := minScore(candidates)
	for i, origIdx := range idx {
		cand := candidates[origIdx]
		weight := normalizedWeight(cand.Score, sMin, cfg.ScoreEpsilon)
		if cfg.Unambig && isParentRelative(cand.Constraint) {
			weight *= cfg.ParentRelativeBias
		}
		refs[i] = candidateRef{Constraint: cand.Constraint, Weight: weight}
	}
	return refs
}

func selectConstraints(candidates []constraint.Candidate, idx []int, localSelected []int) []constraint.Constraint {
	out := make([]constraint.Constraint, len(localSelected))
	for i, local := range localSelected {
		out[i] = candidates[idx[local]].Constraint
	}
	return out
}

// buildAspectSeeds resolves every horizontal target anchor at each
// sampled conformance, so the vertical instance can treat them as
// pinned constants for KindSizeAspectRatio candidates.
func buildAspectSeeds(target Target, bounds Bounds, hSelected []constraint.Constraint) []map[view.AnchorID]*big.Rat {
	confs := bounds.Conformances()
	seeds := make([]map[view.AnchorID]*big.Rat, len(confs))
	for i, conf := range confs {
		seeds[i] = valuationsAt(AxisHorizontal, target, conf, hSelected, nil)
	}
	return seeds
}

func seedAt(seeds []map[view.AnchorID]*big.Rat, i int) map[view.AnchorID]*big.Rat {
	if seeds == nil || i >= len(seeds) {
		return nil
	}
	return seeds[i]
}

func mergeValuations(a, b map[view.AnchorID]*big.Rat) map[view.AnchorID]*big.Rat {
	out := make(map[view.AnchorID]*big.Rat, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
