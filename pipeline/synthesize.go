package pipeline

import (
	"context"
	"fmt"
	"math/big"

	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/decompose"
	"github.com/katalvlaran/layoutsynth/instantiate"
	"github.com/katalvlaran/layoutsynth/learn"
	"github.com/katalvlaran/layoutsynth/smt"
	"github.com/katalvlaran/layoutsynth/view"
	"github.com/katalvlaran/layoutsynth/visibility"
)

// Result is what Synthesize returns: the pruned constraint list and the
// anchor valuations observed at the min/max conformances.
type Result struct {
	Selected []constraint.Constraint
	MinVals  map[view.AnchorID]*big.Rat
	MaxVals  map[view.AnchorID]*big.Rat
}

// Synthesize runs the full pipeline — optional debug-noise injection,
// isomorphism validation, visibility, template instantiation, parameter
// learning, and Max-SMT pruning (direct or hierarchical) — over examples
// and returns the synthesized constraint set. It is a pure function of
// (ctx, examples, opts): no package-level state is read or mutated.
func Synthesize(ctx context.Context, examples []*view.Example, opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.DebugNoiseMagnitude != nil {
		noised, err := applyDebugNoise(examples, cfg.DebugNoiseMagnitude, cfg.DebugNoiseRand)
		if err != nil {
			return Result{}, fmt.Errorf("pipeline: debug noise: %w", err)
		}
		examples = noised
	}

	if err := view.Validate(examples); err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}

	rel, err := visibility.Compute(examples)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: visibility: %w", err)
	}

	instCtx := instantiate.NewContext(examples[0], rel)
	templates := instantiate.Instantiate(instCtx, cfg.InstantiationMethod)

	learned, err := learn.Learn(templates, examples, cfg.LearningMethod, cfg.LearnConfig)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: learn: %w", err)
	}
	candidates := flattenCandidates(learned)

	lo, hi := deriveBounds(examples)
	root := examples[0].Root

	var selected []constraint.Constraint
	var minVals, maxVals map[view.AnchorID]*big.Rat

	switch cfg.PruningMethod {
	case PruningHierarchical:
		result, err := decompose.Decompose(ctx, root, candidates, lo, hi, cfg.SMTConfig)
		if err != nil {
			return Result{}, fmt.Errorf("pipeline: decompose: %w", err)
		}
		if cfg.IntegrationPass {
			result, err = decompose.Integrate(ctx, root, result, candidates, lo, hi, cfg.SMTConfig)
			if err != nil {
				return Result{}, fmt.Errorf("pipeline: integrate: %w", err)
			}
		}
		selected, minVals, maxVals = result.Selected, result.MinVals, result.MaxVals
	default:
		target := smt.Target{Focus: root.Name, Children: descendantNames(root)}
		bounds := smt.Bounds{Lo: lo, Hi: hi}
		result, err := smt.Prune(ctx, candidates, target, bounds, cfg.SMTConfig)
		if err != nil {
			return Result{}, fmt.Errorf("pipeline: prune: %w", err)
		}
		selected, minVals, maxVals = result.Selected, result.MinVals, result.MaxVals
	}

	if cfg.BoundsCombineTolerance != nil {
		selected = smt.CombineBounds(selected, cfg.BoundsCombineTolerance)
	}

	return Result{Selected: selected, MinVals: minVals, MaxVals: maxVals}, nil
}

func descendantNames(root *view.View) []string {
	descendants := view.Descendants(root)
	names := make([]string, len(descendants))
	for i, v := range descendants {
		names[i] = v.Name
	}
	return names
}

// flattenCandidates concatenates every template's candidate list, in
// template order, skipping templates that yielded none.
func flattenCandidates(learned [][]constraint.Candidate) []constraint.Candidate {
	out := make([]constraint.Candidate, 0, len(learned))
	for _, cands := range learned {
		out = append(out, cands...)
	}
	return out
}
