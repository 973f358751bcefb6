package smt

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"strings"

	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/view"
)

// candidateRef is one axis instance's view of a candidate: its
// constraint plus the (possibly bias-adjusted) weight the search
// maximizes.
type candidateRef struct {
	Constraint constraint.Constraint
	Weight     float64
}

// candidateEquation lowers a concrete candidate into the affine equation
// shape propagate understands.
func candidateEquation(c constraint.Constraint) equation {
	if c.X == nil {
		return equation{Y: c.Y, Const: new(big.Rat).Set(c.B)}
	}
	return equation{
		Y:     c.Y,
		Terms: []term{{Coef: new(big.Rat).Set(c.A), ID: *c.X}},
		Const: new(big.Rat).Set(c.B),
	}
}

func axisSize(conf constraint.Conformance, axis Axis) *big.Rat {
	if axis == AxisHorizontal {
		return conf.W
	}
	return conf.H
}

func axisPos(conf constraint.Conformance, axis Axis) *big.Rat {
	if axis == AxisHorizontal {
		return conf.X
	}
	return conf.Y
}

// feasible reports whether selected, together with the layout axioms and
// the focus pin, propagates to a consistent, in-bounds assignment at
// every sampled conformance.
// seeds, if non-nil, holds one extra-knowns map per sampled conformance
// (same order as bounds.Conformances()) — how the vertical instance
// receives the horizontal instance's already-resolved width values for
// KindSizeAspectRatio candidates (see partition.go, pruner.go).
func feasible(axis Axis, target Target, bounds Bounds, selected []constraint.Constraint, seeds []map[view.AnchorID]*big.Rat) bool {
	axioms := axiomsFor(axis, target.Views())
	for i, conf := range bounds.Conformances() {
		eqs := make([]equation, 0, len(axioms)+len(selected)+2)
		eqs = append(eqs, axioms...)
		eqs = append(eqs, pinFocus(axis, target.Focus, axisSize(conf, axis), axisPos(conf, axis))...)
		for _, c := range selected {
			eqs = append(eqs, candidateEquation(c))
		}
		known := seededKnown(seeds, i, len(eqs))
		if !propagate(eqs, known) {
			return false
		}
		if !checkBounds(known, axis, target) {
			return false
		}
	}
	return true
}

// valuationsAt extracts every target-view anchor's resolved value at
// conf, given selected candidates, for use building Result.MinVals /
// MaxVals. Anchors propagate could not resolve are simply absent.
func valuationsAt(axis Axis, target Target, conf constraint.Conformance, selected []constraint.Constraint, seed map[view.AnchorID]*big.Rat) map[view.AnchorID]*big.Rat {
	axioms := axiomsFor(axis, target.Views())
	eqs := make([]equation, 0, len(axioms)+len(selected)+2)
	eqs = append(eqs, axioms...)
	eqs = append(eqs, pinFocus(axis, target.Focus, axisSize(conf, axis), axisPos(conf, axis))...)
	for _, c := range selected {
		eqs = append(eqs, candidateEquation(c))
	}
	known := make(map[view.AnchorID]*big.Rat, len(eqs)+len(seed))
	for id, v := range seed {
		known[id] = v
	}
	propagate(eqs, known)
	return known
}

// seededKnown builds the initial knowns map for sampled conformance
// index i, pre-populated from seeds[i] when seeds is supplied.
func seededKnown(seeds []map[view.AnchorID]*big.Rat, i int, capHint int) map[view.AnchorID]*big.Rat {
	known := make(map[view.AnchorID]*big.Rat, capHint)
	if seeds == nil || i >= len(seeds) || seeds[i] == nil {
		return known
	}
	for id, v := range seeds[i] {
		known[id] = v
	}
	return known
}

func checkDeterminism(c constraint.Constraint, target Target, definedCount map[string]int, definedAnchor map[view.AnchorID]bool) bool {
	if definedAnchor[c.Y] {
		return false
	}
	for _, child := range target.Children {
		if child == c.Y.View && definedCount[child] >= 2 {
			return false
		}
	}
	return true
}

func applyDeterminism(c constraint.Constraint, target Target, definedCount map[string]int, definedAnchor map[view.AnchorID]bool) {
	definedAnchor[c.Y] = true
	for _, child := range target.Children {
		if child == c.Y.View {
			definedCount[child]++
			return
		}
	}
}

func cloneCount(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneAnchor(m map[view.AnchorID]bool) map[view.AnchorID]bool {
	out := make(map[view.AnchorID]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// comboKey canonicalizes a set of candidate indices for blocked-
// combination membership tests in the CEGIS loop (unambig.go).
func comboKey(idx []int) string {
	sorted := append([]int(nil), idx...)
	sort.Ints(sorted)
	var sb strings.Builder
	for _, i := range sorted {
		fmt.Fprintf(&sb, "%d,", i)
	}
	return sb.String()
}

// solveAxis is the weighted branch-and-bound search: maximize the sum of
// included candidates' weights subject to feasibility (and, when
// useDeterminism is set, the determinism clauses), skipping any subset
// whose canonical key appears in blocked: incumbent tracking, an
// additive upper-bound prune, periodic context-deadline checks, and a
// single exit path releasing no
// external resource (there is none to release here; the "resource" the
// teacher scopes is a solver handle, this driver has no such handle).
func solveAxis(ctx context.Context, cands []candidateRef, axis Axis, target Target, bounds Bounds, useDeterminism bool, blocked map[string]bool, seeds []map[view.AnchorID]*big.Rat) ([]int, float64, error) {
	n := len(cands)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return cands[order[i]].Weight > cands[order[j]].Weight })

	suffix := make([]float64, n+1)
	for i := n - 1; i >= 0; i-- {
		suffix[i] = suffix[i+1] + cands[order[i]].Weight
	}

	bestScore := -1.0
	var bestIncluded []int
	nodeCount := 0
	var solverErr error

	var recurse func(pos int, included []int, score float64, definedCount map[string]int, definedAnchor map[view.AnchorID]bool)
	recurse = func(pos int, included []int, score float64, definedCount map[string]int, definedAnchor map[view.AnchorID]bool) {
		if solverErr != nil {
			return
		}
		nodeCount++
		if nodeCount%2048 == 0 {
			select {
			case <-ctx.Done():
				solverErr = ErrSolverUnknown
				return
			default:
			}
		}
		if pos == n {
			if score > bestScore {
				key := comboKey(included)
				if blocked[key] {
					return
				}
				selected := make([]constraint.Constraint, len(included))
				for i, idx := range included {
					selected[i] = cands[idx].Constraint
				}
				if feasible(axis, target, bounds, selected, seeds) {
					bestScore = score
					bestIncluded = append([]int(nil), included...)
				}
			}
			return
		}
		if score+suffix[pos] <= bestScore {
			return
		}

		idx := order[pos]
		c := cands[idx]

		ok := true
		nextDefinedCount, nextDefinedAnchor := definedCount, definedAnchor
		if useDeterminism {
			ok = checkDeterminism(c.Constraint, target, definedCount, definedAnchor)
			if ok {
				nextDefinedCount = cloneCount(definedCount)
				nextDefinedAnchor = cloneAnchor(definedAnchor)
				applyDeterminism(c.Constraint, target, nextDefinedCount, nextDefinedAnchor)
			}
		}
		if ok {
			includedNext := append(append([]int(nil), included...), idx)
			selected := make([]constraint.Constraint, len(includedNext))
			for i, id2 := range includedNext {
				selected[i] = cands[id2].Constraint
			}
			if feasible(axis, target, bounds, selected, seeds) {
				recurse(pos+1, includedNext, score+c.Weight, nextDefinedCount, nextDefinedAnchor)
			}
		}

		recurse(pos+1, included, score, definedCount, definedAnchor)
	}

	recurse(0, nil, 0, map[string]int{}, map[view.AnchorID]bool{})
	if solverErr != nil {
		return nil, 0, solverErr
	}
	if bestScore < 0 {
		return nil, 0, ErrInfeasible
	}
	return bestIncluded, bestScore, nil
}
