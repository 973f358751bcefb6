package decompose

import (
	"context"
	"fmt"
	"math/big"

	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/smt"
	"github.com/katalvlaran/layoutsynth/view"
)

// workItem is one entry of the FIFO worklist: a subtree's focus view
// together with the conformance bounds it inherited from its parent's
// pruner call. The root's item is seeded with the
// pipeline's own min/max conformance.
type workItem struct {
	focus  *view.View
	lo, hi constraint.Conformance
}

// Decompose runs a worklist algorithm: solve root's
// subtree with the pruner (package smt), read back each child's resolved
// min/max anchor values as its own conformance bounds, and push it onto
// the worklist in turn — draining breadth-first, explicit-queue style
// (FIFO slice, a processed set guarding
// against double work, a deadline check every iteration).
//
// candidates is the full, already-learned candidate set (instantiate +
// learn have already run); Decompose filters it per subtree rather than
// re-instantiating or re-learning anything.
func Decompose(ctx context.Context, root *view.View, candidates []constraint.Candidate, minConf, maxConf constraint.Conformance, cfg smt.Config) (Result, error) {
	queue := []workItem{{focus: root, lo: minConf, hi: maxConf}}
	processed := make(map[string]bool)

	selected := make([]constraint.Constraint, 0)
	seenKeys := make(map[constraint.Key]bool)
	minVals := make(map[view.AnchorID]*big.Rat)
	maxVals := make(map[view.AnchorID]*big.Rat)

	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]
		if processed[item.focus.Name] {
			continue
		}
		processed[item.focus.Name] = true

		if len(item.focus.Children) == 0 {
			continue
		}

		children := childNames(item.focus)
		allowed := allowedSet(item.focus.Name, children)
		target := smt.Target{Focus: item.focus.Name, Children: children}
		bounds := smt.Bounds{Lo: item.lo, Hi: item.hi}

		result, err := smt.Prune(ctx, filterCandidates(candidates, allowed), target, bounds, cfg)
		if err != nil {
			return Result{}, fmt.Errorf("decompose: subtree %q: %w", item.focus.Name, err)
		}

		for _, c := range result.Selected {
			key := constraint.KeyOf(c)
			if seenKeys[key] {
				continue
			}
			seenKeys[key] = true
			selected = append(selected, c)
		}
		mergeInto(minVals, result.MinVals)
		mergeInto(maxVals, result.MaxVals)

		for _, child := range item.focus.Children {
			lo, okLo := childConformance(result.MinVals, child.Name)
			hi, okHi := childConformance(result.MaxVals, child.Name)
			if !okLo || !okHi {
				return Result{}, ErrChildBoundsUnresolved
			}
			queue = append(queue, workItem{focus: child, lo: lo, hi: hi})
		}
	}

	return Result{Selected: selected, MinVals: minVals, MaxVals: maxVals}, nil
}

func childNames(focus *view.View) []string {
	names := make([]string, len(focus.Children))
	for i, c := range focus.Children {
		names[i] = c.Name
	}
	return names
}

func allowedSet(focus string, children []string) map[string]bool {
	set := make(map[string]bool, len(children)+1)
	set[focus] = true
	for _, c := range children {
		set[c] = true
	}
	return set
}

// filterCandidates keeps only candidates whose Y view (and X view, if
// present) both lie in allowed: candidates are filtered down to those
// whose both endpoints' views are in focus ∪ focus.children.
func filterCandidates(candidates []constraint.Candidate, allowed map[string]bool) []constraint.Candidate {
	out := make([]constraint.Candidate, 0, len(candidates))
	for _, cand := range candidates {
		c := cand.Constraint
		if !allowed[c.Y.View] {
			continue
		}
		if c.X != nil && !allowed[c.X.View] {
			continue
		}
		out = append(out, cand)
	}
	return out
}

// childConformance reads back child's four resolved anchors from vals and
// assembles the conformance its subtree solve should use as a bound.
func childConformance(vals map[view.AnchorID]*big.Rat, child string) (constraint.Conformance, bool) {
	left, ok1 := vals[view.AnchorID{View: child, Attr: view.AttrLeft}]
	top, ok2 := vals[view.AnchorID{View: child, Attr: view.AttrTop}]
	width, ok3 := vals[view.AnchorID{View: child, Attr: view.AttrWidth}]
	height, ok4 := vals[view.AnchorID{View: child, Attr: view.AttrHeight}]
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return constraint.Conformance{}, false
	}
	return constraint.NewConformance(width, height, left, top), true
}

func mergeInto(dst, src map[view.AnchorID]*big.Rat) {
	for k, v := range src {
		dst[k] = v
	}
}
