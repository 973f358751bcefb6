package decompose

import (
	"context"
	"fmt"

	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/smt"
	"github.com/katalvlaran/layoutsynth/view"
)

// Integrate re-solves the whole tree in a single root-level pruner call
// and reconciles it against a hierarchical decomposition's union: any
// decomposed constraint the whole-tree solve does not itself select is
// not discarded outright but re-admitted at PriorityStrong, a soft
// preference rather than a hard requirement. This is the optional
// "integration" post-pass; callers gate it behind a flag, since whether
// it's compensating for an over-aggressive per-subtree pruner or is a
// genuine fixed point of the two-level search is an open question.
func Integrate(ctx context.Context, root *view.View, decomposed Result, candidates []constraint.Candidate, minConf, maxConf constraint.Conformance, cfg smt.Config) (Result, error) {
	descendants := view.Descendants(root)
	children := make([]string, len(descendants))
	for i, v := range descendants {
		children[i] = v.Name
	}

	target := smt.Target{Focus: root.Name, Children: children}
	bounds := smt.Bounds{Lo: minConf, Hi: maxConf}

	rootResult, err := smt.Prune(ctx, candidates, target, bounds, cfg)
	if err != nil {
		return Result{}, fmt.Errorf("decompose: integration pass: %w", err)
	}

	rootKeys := make(map[constraint.Key]bool, len(rootResult.Selected))
	for _, c := range rootResult.Selected {
		rootKeys[constraint.KeyOf(c)] = true
	}

	merged := append([]constraint.Constraint(nil), rootResult.Selected...)
	for _, c := range decomposed.Selected {
		if rootKeys[constraint.KeyOf(c)] {
			continue
		}
		merged = append(merged, c.WithPriority(constraint.PriorityStrong))
	}

	return Result{Selected: merged, MinVals: rootResult.MinVals, MaxVals: rootResult.MaxVals}, nil
}
