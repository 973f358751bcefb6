package decompose

import (
	"math/big"

	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/view"
)

// Result is what a full decomposition run returns: every constraint
// selected across every subtree's pruner call, plus the merged anchor
// valuations at the min/max conformances.
type Result struct {
	Selected []constraint.Constraint
	MinVals  map[view.AnchorID]*big.Rat
	MaxVals  map[view.AnchorID]*big.Rat
}
