package smt

import (
	"math/big"

	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/view"
)

// Axis is which independent Max-SMT instance a candidate belongs to.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

// Target names the focus view and the subtree the pruner is solving for:
// the focus itself plus its direct children.
type Target struct {
	Focus    string
	Children []string
}

// Views returns the focus and its children together, focus first.
func (t Target) Views() []string {
	out := make([]string, 0, len(t.Children)+1)
	out = append(out, t.Focus)
	out = append(out, t.Children...)
	return out
}

// Bounds is the size-bound range the pruner samples conformances from
// two Conformance values, min and max.
type Bounds struct {
	Lo, Hi constraint.Conformance
}

// Conformances returns the three sampled conformances in the order
// [Lo, midpoint, Hi]. The midpoint is included even when it coincides
// with an endpoint (Lo == Hi), so callers index the result by position.
func (b Bounds) Conformances() []constraint.Conformance {
	mid := constraint.Midpoint(b.Lo, b.Hi)
	return []constraint.Conformance{b.Lo, mid, b.Hi}
}

// Config tunes the pruning search (pruning_method / unambig options).
type Config struct {
	// Unambig enables the CEGIS unambiguity refinement loop and the
	// determinism clauses that accompany it.
	Unambig bool

	// MaxRefinements bounds the CEGIS loop's blocked-combination retries
	// before giving up with ErrAmbiguityLimitExceeded.
	MaxRefinements int

	// ScoreEpsilon is the epsilon added to the score ratio when deriving
	// soft-clause weights (proportional to s/s_min + epsilon).
	ScoreEpsilon float64

	// ParentRelativeBias is the weight multiplier applied, in Unambig
	// mode only, to candidates isParentRelative accepts (KindSizeRatio,
	// a child's size relative to its parent's) — the bias nudges CEGIS
	// toward determinate layouts.
	ParentRelativeBias float64
}

// DefaultConfig returns the pruner configuration used when the caller
// supplies none of the §6 pruning-tuning flags.
func DefaultConfig() Config {
	return Config{
		Unambig:            true,
		MaxRefinements:     32,
		ScoreEpsilon:       1e-6,
		ParentRelativeBias: 1.25,
	}
}

// Result is what Prune returns: the subset of candidates selected, and
// the anchor valuations extracted at the min/max conformances.
type Result struct {
	Selected []constraint.Constraint
	MinVals  map[view.AnchorID]*big.Rat
	MaxVals  map[view.AnchorID]*big.Rat
}
