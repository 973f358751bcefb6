package instantiate

import (
	"github.com/katalvlaran/layoutsynth/constraint"
	"github.com/katalvlaran/layoutsynth/view"
)

// ruleAspectRatio emits `y = a*x` (KindSizeAspectRatio, a free, b=0) for
// the same-view, one-horizontal-one-vertical size pair: width vs height
// of a single view ("y = a*x", aspect ratio).
//
// Predicate mask: same_view ∧ both_size ∧ one_h_one_v.
func ruleAspectRatio(ctx *Context, i, j view.AnchorID) (constraint.Constraint, bool) {
	if !ctx.sameView(i, j) || !bothSize(i, j) || !oneHoneV(i, j) {
		return constraint.Constraint{}, false
	}
	tmpl, err := constraint.NewTemplate(constraint.KindSizeAspectRatio, j, &i, constraint.OpEq)
	if err != nil {
		return constraint.Constraint{}, false
	}
	return tmpl, true
}
